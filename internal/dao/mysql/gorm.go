// Package dao owns the MySQL connection and the repository layer built on
// top of it.
package dao

import (
	"fmt"

	"school_hub_server/internal/config"
	"school_hub_server/internal/dao/mysql/repository"
	"school_hub_server/internal/model"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// GormDB is the global gorm handle, used by the repository layer and tests.
var GormDB *gorm.DB

// Repos is the global repository aggregate injected into the service layer.
var Repos *repository.Repositories

// Init connects to MySQL, migrates the schema and builds the repositories.
// TranslateError is on so unique-constraint violations surface as
// gorm.ErrDuplicatedKey; the chat service depends on that to detect a
// concurrent duplicate private chat.
func Init() {
	conf := config.GetConfig()

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		conf.MysqlConfig.User,
		conf.MysqlConfig.Password,
		conf.MysqlConfig.Host,
		conf.MysqlConfig.Port,
		conf.MysqlConfig.DatabaseName,
	)

	var err error
	GormDB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		zap.L().Fatal(err.Error())
	}

	err = GormDB.AutoMigrate(
		&model.User{},
		&model.UserRole{},
		&model.School{},
		&model.Class{},
		&model.Subject{},
		&model.Chat{},
		&model.ChatParticipant{},
		&model.Message{},
		&model.ChatAvatar{},
		&model.AcademicPeriod{},
	)
	if err != nil {
		zap.L().Fatal(err.Error())
	}

	Repos = repository.NewRepositories(GormDB)
}
