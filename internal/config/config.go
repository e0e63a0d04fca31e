package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config содержит все настройки приложения
type Config struct {
	// Server
	Port string
	Host string

	// Database
	DBDriver string // sqlite | postgres
	DBDSN    string

	// File Storage
	UploadPath  string
	MaxFileSize int64

	// Security
	JWTSecret     string
	JWTExpiration time.Duration

	// Default admin account
	AdminUsername string
	AdminPassword string
}

// Load загружает конфигурацию из переменных окружения
func Load() (*Config, error) {
	// Загружаем .env файл если он существует
	_ = godotenv.Load()

	config := &Config{
		Port:          getEnv("PORT", "8080"),
		Host:          getEnv("HOST", "0.0.0.0"),
		DBDriver:      getEnv("DB_DRIVER", "sqlite"),
		DBDSN:         getEnv("DB_DSN", "/tmp/informatics.db"),
		UploadPath:    getEnv("UPLOAD_PATH", "/tmp/uploads"),
		JWTSecret:     getEnv("JWT_SECRET", "informatics_secret_key"),
		JWTExpiration: 24 * time.Hour,
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
	}

	if maxFileSize, err := strconv.ParseInt(getEnv("MAX_FILE_SIZE", "52428800"), 10, 64); err == nil {
		config.MaxFileSize = maxFileSize
	} else {
		config.MaxFileSize = 50 * 1024 * 1024 // 50MB по умолчанию
	}

	if exp, err := time.ParseDuration(getEnv("JWT_EXPIRATION", "24h")); err == nil {
		config.JWTExpiration = exp
	}

	return config, nil
}

// getEnv получает переменную окружения или возвращает значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
