package db

import (
	"fmt"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	config "github.com/bfarinango/student-store/configs"
	"github.com/bfarinango/student-store/internal/models"
)

// Open connects to Postgres and migrates the schema. The returned
// handle is the process's only persistence state; callers own it and
// must Close it on shutdown.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, cfg.SSLMode,
	)

	handle, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "connect to database")
	}

	if err := Migrate(handle); err != nil {
		return nil, err
	}
	return handle, nil
}

// Migrate creates or updates the schema. Exposed separately so tests
// can run it against their own sqlite handles.
func Migrate(handle *gorm.DB) error {
	err := handle.AutoMigrate(
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	)
	return errors.Wrap(err, "migrate database")
}

func Close(handle *gorm.DB) error {
	sqlDB, err := handle.DB()
	if err != nil {
		return errors.Wrap(err, "unwrap sql.DB")
	}
	return sqlDB.Close()
}
