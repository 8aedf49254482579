package services

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"hospital-records/internal/config"
)

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS doctors (
	    id INTEGER PRIMARY KEY AUTOINCREMENT,
	    name TEXT NOT NULL,
	    specialty TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS patients (
	    id INTEGER PRIMARY KEY AUTOINCREMENT,
	    name TEXT NOT NULL,
	    ailment TEXT,
	    doctor_id INTEGER DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_patients_doctor_id ON patients (doctor_id)`,
}

var mysqlSchema = []string{
	"CREATE TABLE IF NOT EXISTS `doctors` (" +
		"`id` BIGINT AUTO_INCREMENT PRIMARY KEY," +
		"`name` VARCHAR(255) NOT NULL," +
		"`specialty` TEXT" +
		")",
	"CREATE TABLE IF NOT EXISTS `patients` (" +
		"`id` BIGINT AUTO_INCREMENT PRIMARY KEY," +
		"`name` VARCHAR(255) NOT NULL," +
		"`ailment` TEXT," +
		"`doctor_id` BIGINT DEFAULT 0," +
		"INDEX `idx_patients_doctor_id` (`doctor_id`)" +
		")",
}

type SchemaService struct {
	db     *sql.DB
	driver string
}

func NewSchemaService(db *sql.DB, driver string) *SchemaService {
	return &SchemaService{
		db:     db,
		driver: driver,
	}
}

// EnsureSchema creates the doctors and patients tables when they are missing.
// It is safe to run on every start.
func (s *SchemaService) EnsureSchema(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	statements := sqliteSchema
	if s.driver == config.DriverMySQL {
		statements = mysqlSchema
	}

	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	log.Println("Schema ready (doctors, patients)")
	return nil
}

func (s *SchemaService) TableExists(ctx context.Context, tableName string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	query := `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`
	if s.driver == config.DriverMySQL {
		query = `SELECT COUNT(*)
		          FROM information_schema.TABLES
		          WHERE TABLE_SCHEMA = DATABASE()
		          AND TABLE_NAME = ?`
	}

	var count int
	if err := s.db.QueryRowContext(ctx, query, tableName).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check table %s: %w", tableName, err)
	}

	return count > 0, nil
}
