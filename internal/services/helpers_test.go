package services_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"hospital-records/internal/config"
	"hospital-records/internal/services"

	"github.com/stretchr/testify/require"
)

const testQueryTimeout = 5 * time.Second

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := config.InitDatabase(config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "data", "hospital.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, services.NewSchemaService(db, config.DriverSQLite).EnsureSchema(context.Background()))
	return db
}
