// Package http_server assembles the gin engine: middleware, CORS, static
// mounts and the API routes.
package http_server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"school_hub_server/internal/config"
	"school_hub_server/internal/handler"
	"school_hub_server/internal/infrastructure/logger"
	"school_hub_server/internal/infrastructure/middleware"
	"school_hub_server/internal/router"
)

// Init builds the engine. Handlers come injected so tests can assemble an
// engine around stub services.
func Init(handlers *handler.Handlers) *gin.Engine {
	conf := config.GetConfig()
	if conf.MainConfig.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(logger.GinLogger())
	engine.Use(logger.GinRecovery(true))
	if conf.MainConfig.TlsRedirect {
		engine.Use(middleware.TlsHandler(conf.MainConfig.Host, conf.MainConfig.Port))
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	engine.Use(cors.New(corsConfig))

	// Public avatars for users; chat avatars and attachments go through
	// authenticated API endpoints instead.
	engine.Static("/static/avatars", conf.StaticAvatarPath)

	rt := router.NewRouter(handlers)
	rt.RegisterRoutes(engine)

	return engine
}
