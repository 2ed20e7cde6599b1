//go:build integration

package integration

import (
	"fmt"
	"log"
	"os"
	"testing"

	"github.com/evently/hotel-booking-service/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getEnv("TEST_DB_HOST", "localhost"),
		getEnv("TEST_DB_PORT", "5434"),
		getEnv("TEST_DB_USER", "postgres"),
		getEnv("TEST_DB_PASSWORD", "postgres"),
		getEnv("TEST_DB_NAME", "hotel_booking_test_db"),
	)

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect to test database: %v", err)
	}

	// Drop and recreate tables for clean state
	dropTables()

	if err := testDB.AutoMigrate(
		&models.Enrollment{},
		&models.TicketType{},
		&models.Ticket{},
		&models.Hotel{},
		&models.Room{},
		&models.Booking{},
	); err != nil {
		log.Fatalf("failed to auto-migrate test database: %v", err)
	}

	code := m.Run()

	dropTables()

	os.Exit(code)
}

func dropTables() {
	for _, table := range []string{"bookings", "rooms", "hotels", "tickets", "ticket_types", "enrollments"} {
		testDB.Exec("DROP TABLE IF EXISTS " + table + " CASCADE")
	}
}

func cleanTables() {
	for _, table := range []string{"bookings", "rooms", "hotels", "tickets", "ticket_types", "enrollments"} {
		testDB.Exec("DELETE FROM " + table)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
