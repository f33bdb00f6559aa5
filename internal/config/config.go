package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port             string
	MongoURI         string
	MongoDatabase    string
	RabbitMQURI      string
	RabbitMQExchange string
	JWTSecret        string
	TokenExpiryHours int64
	AdminUsername    string
	AdminPassword    string
	FEAddress        string
}

func New() *Config {
	expiryStr := getEnv("TOKEN_EXPIRY_HOURS", "24")
	expiry, err := strconv.ParseInt(expiryStr, 10, 64)
	if err != nil {
		expiry = 24
	}

	return &Config{
		Port:             getEnv("PORT", "8080"),
		MongoURI:         getEnv("MONGO_URI", ""),
		MongoDatabase:    getEnv("MONGO_DATABASE", "exam_portal"),
		RabbitMQURI:      getEnv("RABBITMQ_URI", ""),
		RabbitMQExchange: getEnv("RABBITMQ_EXCHANGE", ""),
		JWTSecret:        getEnv("JWT_SECRET", "exam-portal-dev-secret"),
		TokenExpiryHours: expiry,
		AdminUsername:    getEnv("ADMIN_USERNAME", "omkar"),
		AdminPassword:    getEnv("ADMIN_PASSWORD", "omkar"),
		FEAddress:        getEnv("FE_ADDR", "http://localhost:3000"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
