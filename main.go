package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rehobothspace/venue-booking/config"
	"github.com/rehobothspace/venue-booking/internal/handler"
	"github.com/rehobothspace/venue-booking/internal/middleware"
	"github.com/rehobothspace/venue-booking/internal/repository"
	"github.com/rehobothspace/venue-booking/internal/service"
	"github.com/rehobothspace/venue-booking/pkg/database"
	"github.com/rehobothspace/venue-booking/pkg/paystack"
	"github.com/rehobothspace/venue-booking/pkg/rabbitmq"
	"github.com/rehobothspace/venue-booking/pkg/sms"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// Optional lifecycle event publishing; disabled when no broker is
	// configured.
	var publisher *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		var err error
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	}

	paystackClient := paystack.NewClient(paystack.Config{
		SecretKey: cfg.PaystackSecretKey,
		PublicKey: cfg.PaystackPublicKey,
	})
	smsClient := sms.NewClient(sms.Config{
		APIKey:   cfg.MNotifyAPIKey,
		SenderID: cfg.MNotifySenderID,
	})

	// Repositories
	eventRepo := repository.NewEventRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	// Services
	callbackURL := cfg.BaseURL + "/api/v1/payments/callback"
	eventSvc := service.NewEventService(eventRepo)
	bookingSvc := service.NewBookingService(bookingRepo, eventRepo, paystackClient, smsClient, publisher, callbackURL)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "venue-booking"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	handler.NewEventHandler(eventSvc, paystackClient.PublicKey()).RegisterRoutes(e)
	handler.NewBookingHandler(bookingSvc).RegisterRoutes(e)
	handler.NewAdminHandler(eventSvc, bookingSvc).RegisterRoutes(e)

	log.Printf("Venue Booking Service starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
