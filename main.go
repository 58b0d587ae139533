package main

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/sirupsen/logrus"
	v1 "github.com/workforce-hub/api/v1"
	"github.com/workforce-hub/config"
	"github.com/workforce-hub/database"
	"github.com/workforce-hub/logging"
	"github.com/workforce-hub/services"
)

func main() {
	cfg := config.Load()

	logging.InitLogger(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	})
	for _, warning := range cfg.Warnings {
		logging.Logger.Warn(warning)
	}

	if cfg.JWTSecret == "" {
		logging.Logger.Fatal("JWT_SECRET must be set")
	}

	gin.SetMode(cfg.GinMode)
	// Payloads carrying fields the server owns, such as progress, are rejected
	binding.EnableDecoderDisallowUnknownFields = true

	conn, err := database.NewDBConnection("primary", database.Options{
		Driver:   cfg.DBDriver,
		URL:      cfg.DatabaseURL,
		LogLevel: cfg.DBLogLevel,
	})
	if err != nil {
		logging.Logger.WithError(err).Fatal("failed to connect to database")
	}

	if err := conn.Migrate(); err != nil {
		logging.Logger.WithError(err).Fatal("failed to migrate database")
	}

	router := v1.NewRouter(conn.DB, v1.RouterOptions{
		JWTSecret:      cfg.JWTSecret,
		TokenTTL:       cfg.TokenTTL,
		Clock:          services.SystemClock{Location: cfg.Timezone},
		AllowedOrigins: cfg.AllowedOrigins,
		SecureCookies:  cfg.GinMode == gin.ReleaseMode,
	})

	logging.Logger.WithFields(logrus.Fields{
		"port":     cfg.Port,
		"driver":   cfg.DBDriver,
		"timezone": cfg.Timezone.String(),
	}).Info("workforce hub API starting")

	if err := router.Run(":" + cfg.Port); err != nil {
		logging.Logger.WithError(err).Fatal("failed to start server")
	}
}
