package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/samyog8/community-events-backend/config"
	"github.com/samyog8/community-events-backend/controllers"
	"github.com/samyog8/community-events-backend/database"
	"github.com/samyog8/community-events-backend/routes"
	"github.com/samyog8/community-events-backend/utils"
)

func main() {
	// A missing .env file is fine; the environment may already be set.
	if err := godotenv.Load(); err == nil {
		logrus.Info("loaded configuration from .env")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	db := database.Connect(cfg)
	if err := database.Migrate(db); err != nil {
		logrus.WithError(err).Fatal("migration failed")
	}

	tokens := utils.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	controllers.Init(db, cfg, tokens)

	gin.SetMode(cfg.GinMode)
	router := gin.Default()
	routes.SetupRoutes(router)

	logrus.WithField("port", cfg.Port).Info("server starting")
	if err := router.Run("0.0.0.0:" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
