package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/raqazhet/informatics/internal/models"
)

// Database представляет подключение к базе данных
type Database struct {
	DB *gorm.DB
}

// NewDatabase создает новое подключение к базе данных.
// Драйвер выбирается конфигурацией: sqlite (по умолчанию) или postgres
func NewDatabase(driver, dsn string) (*Database, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite", "":
		if err := os.MkdirAll(filepath.Dir(dsn), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}

	// Ошибки драйвера не транслируются GORM: репозиториям нужен
	// исходный текст ошибки, чтобы назвать нарушенное ограничение
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	database := &Database{DB: db}
	if err := database.Migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return database, nil
}

// Migrate выполняет миграцию схемы
func (d *Database) Migrate() error {
	return d.DB.AutoMigrate(
		&models.User{},
		&models.StudentProfile{},
		&models.TeacherProfile{},
		&models.School{},
		&models.Course{},
		&models.Lesson{},
		&models.Assignment{},
		&models.Submission{},
		&models.Recommendation{},
		&models.ClassGroup{},
		&models.ClassStudent{},
	)
}

// Close закрывает подключение к базе данных
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// CreateDefaultAdmin создает администратора по умолчанию, если его еще нет
func (d *Database) CreateDefaultAdmin(username, password string) error {
	if username == "" || password == "" {
		return nil
	}

	var user models.User
	result := d.DB.Where("username = ?", username).First(&user)
	if result.Error == gorm.ErrRecordNotFound {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}
		admin := models.User{
			ID:           uuid.New(),
			Username:     username,
			FullName:     "Администратор",
			Role:         models.RoleAdmin,
			PasswordHash: string(hash),
		}
		if err := d.DB.Create(&admin).Error; err != nil {
			return fmt.Errorf("failed to create default admin: %w", err)
		}
	}
	return nil
}
