package config

import (
	"os"
)

type ServerConfig struct {
	Addr string
}

type DatabaseConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
}

type AfricaTalkingConfig struct {
	Username string
	APIKey   string
	SMSURL   string
	SenderID string
	// StorePhone receives the order-placed SMS. Empty disables SMS.
	StorePhone string
}

type EmailConfig struct {
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSRegion          string
	SenderEmail        string
	// StoreEmail receives the order-placed email. Empty disables email.
	StoreEmail string
}

func LoadServerConfig() ServerConfig {
	return ServerConfig{
		Addr: getEnvOrDefault("HTTP_ADDR", ":3000"),
	}
}

func LoadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnvOrDefault("POSTGRES_HOST", "localhost"),
		User:     getEnvOrDefault("POSTGRES_USER", "test"),
		Password: getEnvOrDefault("POSTGRES_PASSWORD", "test"),
		Name:     getEnvOrDefault("POSTGRES_DB", "student_store"),
		Port:     getEnvOrDefault("DB_PORT", "5432"),
		SSLMode:  getEnvOrDefault("DB_SSLMODE", "disable"),
	}
}

func LoadAfricaTalkingConfig() AfricaTalkingConfig {
	return AfricaTalkingConfig{
		Username:   os.Getenv("AT_USERNAME"),
		APIKey:     os.Getenv("AT_API_KEY"),
		SMSURL:     getEnvOrDefault("AT_SMS_URL", "https://api.sandbox.africastalking.com/version1/messaging"),
		SenderID:   getEnvOrDefault("AT_SENDER_ID", "AFRICASTKNG"),
		StorePhone: os.Getenv("STORE_PHONE"),
	}
}

func LoadEmailConfig() EmailConfig {
	return EmailConfig{
		AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		AWSRegion:          getEnvOrDefault("AWS_REGION", "us-east-1"),
		SenderEmail:        os.Getenv("AWS_SENDER_ADDRESS"),
		StoreEmail:         os.Getenv("STORE_EMAIL"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
