package main

import (
	"log"
	"net/http"
	"os"

	"clinichr/config"
	"clinichr/jobs"
	"clinichr/routes"
	"clinichr/services"
	"clinichr/services/logger"
	"clinichr/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	mailer := services.NewSMTPMailer()
	notifier := notification.NewMelodyService(m)

	salaryService := services.NewSalaryService(services.SalaryServiceOptions{
		DB:       config.DB,
		Logger:   logger.NewDefaultLogger(logger.InfoLevel),
		Gateway:  services.NewStripeGateway(os.Getenv("STRIPE_SECRET_KEY")),
		Receipts: services.NewPDFReceiptBuilder("pdfs"),
		Mailer:   mailer,
		Notifier: notifier,
	})

	jobs.SetDueSalaryNotifier(salaryService)
	if err := jobs.InitCronJobs(c, m); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, config.DB, config.RedisClient, config.Cloudinary, m, salaryService, mailer, notifier)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
