package postgres

import (
	"log"
	"os"
	"time"

	"github.com/brigatacurvasud/bcs-service/internal/config"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func MustInitDB(cfg *config.ServiceConfig) *gorm.DB {
	logLevel := logger.Warn
	if cfg.LogConfig.LogLevel == "debug" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DB.Dsn), &gorm.Config{
		Logger: logger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			logger.Config{
				SlowThreshold:             200 * time.Millisecond,
				LogLevel:                  logLevel,
				IgnoreRecordNotFoundError: true,
				Colorful:                  cfg.Env == "local",
			},
		),
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v\n", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Without a migrations directory the schema is derived from the models.
	if cfg.DB.MigrationsPath == "" {
		if err := db.AutoMigrate(models.All()...); err != nil {
			log.Fatalf("failed to automigrate: %v\n", err)
		}
	}

	return db
}
