package database

import (
	"fmt"

	"github.com/ttylabs/tty/backend/internal/config"
	"github.com/ttylabs/tty/backend/internal/video"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Logger defines the logging operations needed by the database package
type Logger interface {
	LogInfo(msg string, fields map[string]interface{})
	LogError(err error, msg string) error
}

// Connect opens the Postgres connection, applies pool settings and runs
// the schema migration.
func Connect(cfg *config.DatabaseConfig, logger Logger) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=%s",
		cfg.Host, cfg.User, cfg.Password, cfg.Dbname, cfg.Port, cfg.Sslmode, cfg.Timezone)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, logger.LogError(err, "failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, logger.LogError(err, "failed to access database pool")
	}
	sqlDB.SetMaxOpenConns(cfg.Pool.MaxOpen)
	sqlDB.SetMaxIdleConns(cfg.Pool.MaxIdle)

	if err := db.AutoMigrate(&video.Video{}); err != nil {
		return nil, logger.LogError(err, "failed to migrate schema")
	}

	logger.LogInfo("Database connection established", map[string]interface{}{
		"host":   cfg.Host,
		"dbname": cfg.Dbname,
	})
	return db, nil
}

// Close releases the underlying connection pool
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
