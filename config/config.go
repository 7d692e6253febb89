package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// RabbitURL is optional; empty disables lifecycle event publishing.
	RabbitURL string

	// BaseURL is the public URL of this service, used to build the payment
	// callback address handed to the gateway.
	BaseURL string

	PaystackSecretKey string
	PaystackPublicKey string

	MNotifyAPIKey   string
	MNotifySenderID string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort: getenv("SERVER_PORT", "8080"),

		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: getenv("DB_PASSWORD", "postgres"),
		DBName:     getenv("DB_NAME", "venue_booking"),

		RabbitURL: os.Getenv("RABBITMQ_URL"),

		BaseURL: getenv("BASE_URL", "http://localhost:8080"),

		PaystackSecretKey: os.Getenv("PAYSTACK_SECRET_KEY"),
		PaystackPublicKey: os.Getenv("PAYSTACK_PUBLIC_KEY"),

		MNotifyAPIKey:   os.Getenv("MNOTIFY_API_KEY"),
		MNotifySenderID: getenv("MNOTIFY_SENDER_ID", "Rehoboth"),
	}
}

func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
