package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/yeremiapane/bar-api/config"
	"github.com/yeremiapane/bar-api/database"
	"github.com/yeremiapane/bar-api/events"
	"github.com/yeremiapane/bar-api/kds"
	"github.com/yeremiapane/bar-api/queue"
	"github.com/yeremiapane/bar-api/router"
	"github.com/yeremiapane/bar-api/utils"
)

func main() {
	// .env is optional; the environment wins when both are set
	envErr := godotenv.Load()

	cfg := config.Load()
	utils.InitLogger()
	utils.SetLogLevel(cfg.LogLevel)
	if envErr != nil && !os.IsNotExist(envErr) {
		utils.ErrorLogger.Printf("Warning: could not load .env: %v", envErr)
	}

	if cfg.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Open(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")

	hub := kds.NewHub()
	publisher := events.Multi{hub}
	if cfg.AMQPURL != "" {
		amqpPublisher, err := queue.NewPublisher(cfg.AMQPURL, cfg.AMQPQueue)
		if err != nil {
			utils.ErrorLogger.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer amqpPublisher.Close()
		publisher = append(publisher, amqpPublisher)
		utils.InfoLogger.Printf("Publishing order events to queue %s", cfg.AMQPQueue)
	}

	if cfg.AdminPasswordHash == "" {
		utils.ErrorLogger.Println("Warning: ADMIN_PASSWORD_HASH is not set, admin login is disabled")
	}

	r := router.SetupRouter(db, cfg, publisher, hub)

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
