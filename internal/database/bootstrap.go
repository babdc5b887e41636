package database

import (
	"embed"
	"fmt"
	"log/slog"

	"rare/internal/config"
	"rare/internal/middleware"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

//go:embed schema/schema.sql
var schemaFS embed.FS

// EnsureDatabase creates the application database if it does not exist.
// It connects to the admin database (usually "postgres") to run the check,
// since CREATE DATABASE cannot run inside the target database itself.
func EnsureDatabase(cfg *config.Config) error {
	adminDB, err := gorm.Open(postgres.Open(BuildDSN(cfg, cfg.DBAdminName)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to admin database: %w", err)
	}
	sqlDB, err := adminDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	var count int64
	if err := adminDB.Raw("SELECT COUNT(*) FROM pg_database WHERE datname = ?", cfg.DBName).Scan(&count).Error; err != nil {
		return fmt.Errorf("failed to check database existence: %w", err)
	}
	if count > 0 {
		return nil
	}

	// CREATE DATABASE does not support bind parameters.
	if err := adminDB.Exec(fmt.Sprintf("CREATE DATABASE %q", cfg.DBName)).Error; err != nil {
		return fmt.Errorf("failed to create database %s: %w", cfg.DBName, err)
	}
	middleware.Logger.Info("Database created", slog.String("name", cfg.DBName))
	return nil
}

// EnsureSchema applies the embedded DDL script. Every statement uses
// IF NOT EXISTS so repeated startups are safe.
func EnsureSchema(db *gorm.DB) error {
	script, err := schemaFS.ReadFile("schema/schema.sql")
	if err != nil {
		return fmt.Errorf("failed to read embedded schema: %w", err)
	}

	if err := db.Exec(string(script)).Error; err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	middleware.Logger.Info("Database schema ensured")
	return nil
}
