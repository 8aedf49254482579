package handlers

import (
	"net/http"

	"hospital-records/internal/middleware"

	"github.com/julienschmidt/httprouter"
)

// NewRouter builds the full HTTP surface, middleware included.
func NewRouter(h *Handler) http.Handler {
	router := httprouter.New()

	router.GET("/", h.IndexHandler)
	router.GET("/health", h.HealthHandler)
	router.GET("/api", h.RootHandler)

	router.GET("/api/doctors", h.ListDoctorsHandler)
	router.POST("/api/doctors", h.CreateDoctorHandler)
	router.GET("/api/doctors/:id", h.GetDoctorHandler)
	router.PUT("/api/doctors/:id", h.UpdateDoctorHandler)
	router.DELETE("/api/doctors/:id", h.DeleteDoctorHandler)

	router.GET("/api/patients", h.ListPatientsHandler)
	router.POST("/api/patients", h.CreatePatientHandler)
	router.GET("/api/patients/:id", h.GetPatientHandler)
	router.PUT("/api/patients/:id", h.UpdatePatientHandler)
	router.DELETE("/api/patients/:id", h.DeletePatientHandler)

	router.GET("/api/chart", h.ChartHandler)

	router.GET("/api/maintenance/status", h.MaintenanceStatusHandler)
	router.POST("/api/maintenance/start", h.StartMaintenanceHandler)
	router.POST("/api/maintenance/stop", h.StopMaintenanceHandler)
	router.POST("/api/maintenance/run", h.RunMaintenanceHandler)
	router.PUT("/api/maintenance/config", h.MaintenanceConfigHandler)

	return middleware.Logging(middleware.Recover(middleware.CORS(router)))
}
