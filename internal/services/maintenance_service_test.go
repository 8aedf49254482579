package services_test

import (
	"context"
	"testing"

	"hospital-records/internal/config"
	"hospital-records/internal/models"
	"hospital-records/internal/services"

	"github.com/stretchr/testify/require"
)

func seedOrphans(t *testing.T, ctx context.Context, doctors *services.DoctorService, patients *services.PatientService) int64 {
	t.Helper()

	doctorID, err := doctors.Create(ctx, doctorInput())
	require.NoError(t, err)

	_, err = patients.Create(ctx, models.PatientInput{Name: "Assigned", DoctorID: doctorID})
	require.NoError(t, err)
	_, err = patients.Create(ctx, models.PatientInput{Name: "Unassigned"})
	require.NoError(t, err)
	orphan, err := patients.Create(ctx, models.PatientInput{Name: "Orphan", DoctorID: doctorID + 10})
	require.NoError(t, err)

	return orphan
}

func TestMaintenanceService_RunOnceReportsOrphans(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	doctors := services.NewDoctorService(db, testQueryTimeout)
	patients := services.NewPatientService(db, testQueryTimeout)
	maintenance := services.NewMaintenanceService(db, services.NewSchemaService(db, config.DriverSQLite), "", false, testQueryTimeout)

	orphan := seedOrphans(t, ctx, doctors, patients)

	report, err := maintenance.RunOnce(ctx)
	require.NoError(t, err)
	require.True(t, report.TablesPresent)
	require.Equal(t, 1, report.Orphans)
	require.Zero(t, report.Repaired)

	got, err := patients.Get(ctx, orphan)
	require.NoError(t, err)
	require.NotEqual(t, models.UnassignedDoctorID, got.DoctorID)

	status := maintenance.GetStatus()
	require.Equal(t, false, status["isRunning"])
	require.NotEmpty(t, status["lastRun"])
	require.Equal(t, &report, status["lastReport"])
}

func TestMaintenanceService_RunOnceRepairsOrphans(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	doctors := services.NewDoctorService(db, testQueryTimeout)
	patients := services.NewPatientService(db, testQueryTimeout)
	maintenance := services.NewMaintenanceService(db, services.NewSchemaService(db, config.DriverSQLite), "", true, testQueryTimeout)

	orphan := seedOrphans(t, ctx, doctors, patients)

	report, err := maintenance.RunOnce(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, report.Orphans)
	require.EqualValues(t, 1, report.Repaired)

	got, err := patients.Get(ctx, orphan)
	require.NoError(t, err)
	require.Equal(t, models.UnassignedDoctorID, got.DoctorID)

	remaining, err := maintenance.CountOrphans(ctx)
	require.NoError(t, err)
	require.Zero(t, remaining)
}

func TestMaintenanceService_RunOnceFailsOnMissingTable(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	maintenance := services.NewMaintenanceService(db, services.NewSchemaService(db, config.DriverSQLite), "", false, testQueryTimeout)

	_, err := db.ExecContext(ctx, `DROP TABLE patients`)
	require.NoError(t, err)

	report, err := maintenance.RunOnce(ctx)
	require.Error(t, err)
	require.False(t, report.TablesPresent)
	require.NotEmpty(t, report.Error)
}

func TestMaintenanceService_StartStop(t *testing.T) {
	db := newTestDB(t)
	schema := services.NewSchemaService(db, config.DriverSQLite)

	unscheduled := services.NewMaintenanceService(db, schema, "", false, testQueryTimeout)
	require.Error(t, unscheduled.Start())
	require.Error(t, unscheduled.Stop())

	maintenance := services.NewMaintenanceService(db, schema, "@every 1h", false, testQueryTimeout)
	require.NoError(t, maintenance.Start())
	require.True(t, maintenance.IsRunning())
	require.Error(t, maintenance.Start())
	require.NotEmpty(t, maintenance.GetStatus()["nextRun"])

	require.NoError(t, maintenance.Stop())
	require.False(t, maintenance.IsRunning())

	require.NoError(t, maintenance.Start())
	require.NoError(t, maintenance.Stop())
}

func TestMaintenanceService_UpdateConfig(t *testing.T) {
	db := newTestDB(t)
	maintenance := services.NewMaintenanceService(db, services.NewSchemaService(db, config.DriverSQLite), "", false, testQueryTimeout)

	require.Error(t, maintenance.UpdateConfig("not a schedule", nil))

	repair := true
	require.NoError(t, maintenance.UpdateConfig("*/5 * * * *", &repair))

	status := maintenance.GetStatus()
	require.Equal(t, "*/5 * * * *", status["cronSchedule"])
	require.Equal(t, true, status["repairOrphans"])
}
