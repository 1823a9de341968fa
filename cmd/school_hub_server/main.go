package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"school_hub_server/internal/config"
	dao "school_hub_server/internal/dao/mysql"
	myredis "school_hub_server/internal/dao/redis"
	"school_hub_server/internal/gateway/websocket"
	"school_hub_server/internal/handler"
	"school_hub_server/internal/http_server"
	"school_hub_server/internal/infrastructure/logger"
	"school_hub_server/internal/service"
	"school_hub_server/internal/service/message"
	"school_hub_server/pkg/util/jwt"
)

func main() {
	conf := config.GetConfig()

	if err := logger.Init(&conf.LogConfig, conf.MainConfig.Mode); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	zap.L().Info("logger ready")

	dao.Init()
	zap.L().Info("mysql ready")

	myredis.Init()
	zap.L().Info("redis ready")

	jwt.Init(conf.JWTConfig.Secret, conf.JWTConfig.AccessTokenExpiry, conf.JWTConfig.RefreshTokenExpiry)

	service.InitServices(dao.Repos)
	zap.L().Info("services ready")

	if err := handler.InitTrans("en"); err != nil {
		zap.L().Fatal("init validator translations failed", zap.Error(err))
	}

	// The gateway pushes finished messages out; the message service only
	// knows the Publisher interface.
	message.SetPublisher(websocket.ChatServer)
	go websocket.ChatServer.Start()
	zap.L().Info("websocket gateway ready")

	engine := http_server.Init(handler.NewHandlers(service.Svc))

	go func() {
		addr := fmt.Sprintf("%s:%d", conf.MainConfig.Host, conf.MainConfig.Port)
		if err := engine.Run(addr); err != nil {
			zap.L().Fatal("server stopped", zap.Error(err))
		}
	}()
	zap.L().Info("server listening",
		zap.String("host", conf.MainConfig.Host), zap.Int("port", conf.MainConfig.Port))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	websocket.ChatServer.Close()
	zap.L().Info("server shut down")
}
