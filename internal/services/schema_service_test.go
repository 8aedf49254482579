package services_test

import (
	"context"
	"testing"

	"hospital-records/internal/config"
	"hospital-records/internal/services"

	"github.com/stretchr/testify/require"
)

func TestSchemaService_EnsureSchemaIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	schema := services.NewSchemaService(db, config.DriverSQLite)

	doctors := services.NewDoctorService(db, testQueryTimeout)
	_, err := doctors.Create(ctx, doctorInput())
	require.NoError(t, err)

	require.NoError(t, schema.EnsureSchema(ctx))

	list, err := doctors.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestSchemaService_TableExists(t *testing.T) {
	ctx := context.Background()
	schema := services.NewSchemaService(newTestDB(t), config.DriverSQLite)

	for _, table := range []string{"doctors", "patients"} {
		exists, err := schema.TableExists(ctx, table)
		require.NoError(t, err)
		require.True(t, exists, table)
	}

	exists, err := schema.TableExists(ctx, "nurses")
	require.NoError(t, err)
	require.False(t, exists)
}
