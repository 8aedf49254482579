package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// DataSource returns the database/sql driver name and DSN for cfg.
func DataSource(cfg DatabaseConfig) (string, string, error) {
	switch cfg.Driver {
	case DriverSQLite:
		if cfg.Path == "" {
			return "", "", fmt.Errorf("sqlite database path is empty")
		}
		return DriverSQLite, "file:" + cfg.Path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", nil
	case DriverMySQL:
		return DriverMySQL, fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true",
			cfg.User,
			cfg.Password,
			cfg.Host,
			cfg.Port,
			cfg.Name,
		), nil
	default:
		return "", "", fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// InitDatabase opens the long-lived connection pool for the configured store.
//
// A nil handle means the configuration itself is unusable. A non-nil handle
// returned together with an error means the store is currently unreachable;
// callers may keep serving and let /health report the fault.
func InitDatabase(cfg DatabaseConfig) (*sql.DB, error) {
	driver, dsn, err := DataSource(cfg)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	switch driver {
	case DriverSQLite:
		// One connection: sqlite serializes writers anyway and this keeps
		// every request queued on the pool instead of failing with SQLITE_BUSY.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)

		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
			return db, fmt.Errorf("failed to create data directory: %w", err)
		}
	default:
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	if err = db.Ping(); err != nil {
		return db, fmt.Errorf("failed to ping database: %w", err)
	}

	if driver == DriverSQLite {
		log.Printf("Connected to SQLite database (%s)", cfg.Path)
	} else {
		log.Printf("Connected to MySQL database (%s:%s/%s)", cfg.Host, cfg.Port, cfg.Name)
	}

	return db, nil
}
