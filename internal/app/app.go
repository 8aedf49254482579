package app

import (
	"database/sql"
	"log"

	"hospital-records/internal/config"
	"hospital-records/internal/services"
)

type Application struct {
	Config             *config.AppConfig
	DB                 *sql.DB
	SchemaService      *services.SchemaService
	DoctorService      *services.DoctorService
	PatientService     *services.PatientService
	ChartService       *services.ChartService
	MaintenanceService *services.MaintenanceService
}

func NewApplication(cfg *config.AppConfig, db *sql.DB) *Application {
	timeout := cfg.Database.QueryTimeout

	app := &Application{
		Config: cfg,
		DB:     db,
	}

	app.SchemaService = services.NewSchemaService(db, cfg.Database.Driver)
	app.DoctorService = services.NewDoctorService(db, timeout)
	app.PatientService = services.NewPatientService(db, timeout)
	app.ChartService = services.NewChartService(db, timeout)
	app.MaintenanceService = services.NewMaintenanceService(
		db,
		app.SchemaService,
		cfg.Maintenance.Schedule,
		cfg.Maintenance.RepairOrphans,
		timeout,
	)

	return app
}

func (app *Application) Close() {
	if app.MaintenanceService.IsRunning() {
		if err := app.MaintenanceService.Stop(); err != nil {
			log.Printf("Failed to stop maintenance: %v", err)
		}
	}

	if app.DB != nil {
		app.DB.Close()
	}
}
