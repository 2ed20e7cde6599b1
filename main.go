package main

import (
	"log"

	"github.com/evently/hotel-booking-service/config"
	"github.com/evently/hotel-booking-service/internal/consumer"
	"github.com/evently/hotel-booking-service/internal/handler"
	"github.com/evently/hotel-booking-service/internal/middleware"
	"github.com/evently/hotel-booking-service/internal/repository"
	"github.com/evently/hotel-booking-service/internal/service"
	"github.com/evently/hotel-booking-service/pkg/database"
	"github.com/evently/hotel-booking-service/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// RabbitMQ consumer: sync enrollments and tickets from the registration service
	mqConsumer, err := rabbitmq.NewConsumer(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ: %v", err)
	}
	defer mqConsumer.Close()

	msgs, err := mqConsumer.Consume()
	if err != nil {
		log.Fatalf("failed to start consuming: %v", err)
	}

	regConsumer := consumer.NewRegistrationConsumer(db)
	regConsumer.Start(msgs)

	// Repositories
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	// Services
	eligibilitySvc := service.NewEligibilityService(enrollmentRepo, ticketRepo)
	bookingSvc := service.NewBookingService(bookingRepo, roomRepo, eligibilitySvc)

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
		return c.JSON(200, map[string]string{"status": "ok", "service": "hotel-booking-service"})
	})

	handler.NewBookingHandler(bookingSvc).RegisterRoutes(e, cfg.JWTSecret)

	log.Printf("Hotel Booking Service starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
