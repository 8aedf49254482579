package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"hospital-records/internal/app"
	"hospital-records/internal/middleware"
	"hospital-records/internal/services"
	"hospital-records/internal/web"

	"github.com/julienschmidt/httprouter"
)

// Handler holds service dependencies
type Handler struct {
	db                 *sql.DB
	doctorService      *services.DoctorService
	patientService     *services.PatientService
	chartService       *services.ChartService
	maintenanceService *services.MaintenanceService
}

func NewHandler(application *app.Application) *Handler {
	return &Handler{
		db:                 application.DB,
		doctorService:      application.DoctorService,
		patientService:     application.PatientService,
		chartService:       application.ChartService,
		maintenanceService: application.MaintenanceService,
	}
}

type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp string      `json:"timestamp,omitempty"`
	Error     string      `json:"error,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

const (
	healthOK      = "ok"
	healthDBError = "db_error"
)

func (h *Handler) IndexHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(web.IndexHTML)
}

// HealthHandler reports whether the store is reachable. The service keeps
// running either way.
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if h.db == nil {
		writeJSON(w, http.StatusInternalServerError, HealthResponse{Status: healthDBError})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		log.Printf("Health check failed [%s]: %v", middleware.RequestIDFrom(r.Context()), err)
		writeJSON(w, http.StatusInternalServerError, HealthResponse{Status: healthDBError})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{Status: healthOK})
}

func (h *Handler) RootHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	endpoints := map[string]string{
		"client":            "GET /",
		"health":            "GET /health",
		"listDoctors":       "GET /api/doctors",
		"getDoctor":         "GET /api/doctors/:id",
		"createDoctor":      "POST /api/doctors",
		"updateDoctor":      "PUT /api/doctors/:id",
		"deleteDoctor":      "DELETE /api/doctors/:id",
		"listPatients":      "GET /api/patients",
		"getPatient":        "GET /api/patients/:id",
		"createPatient":     "POST /api/patients",
		"updatePatient":     "PUT /api/patients/:id",
		"deletePatient":     "DELETE /api/patients/:id",
		"chart":             "GET /api/chart",
		"maintenanceStatus": "GET /api/maintenance/status",
		"maintenanceStart":  "POST /api/maintenance/start",
		"maintenanceStop":   "POST /api/maintenance/stop",
		"maintenanceRun":    "POST /api/maintenance/run",
		"maintenanceConfig": "PUT /api/maintenance/config",
	}

	sendSuccessResponse(w, "Hospital Records Service", map[string]interface{}{"endpoints": endpoints})
}

// parseID reads the :id path parameter. Anything but a positive integer is
// treated as an unmatched route.
func parseID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) (int64, bool) {
	id, err := strconv.ParseInt(ps.ByName("id"), 10, 64)
	if err != nil || id <= 0 {
		http.NotFound(w, r)
		return 0, false
	}
	return id, true
}

// decodeBody decodes a JSON request body into v and validates it. On failure
// it writes a 400 response and reports false.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{ Validate() error }) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		sendErrorResponse(w, "Invalid request body", http.StatusBadRequest)
		return false
	}
	if err := v.Validate(); err != nil {
		sendErrorResponse(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// internalError logs the cause and answers with an opaque 500.
func internalError(w http.ResponseWriter, r *http.Request, err error) {
	log.Printf("Request failed %s %s [%s]: %v", r.Method, r.URL.Path, middleware.RequestIDFrom(r.Context()), err)
	sendErrorResponse(w, "Internal server error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func sendSuccessResponse(w http.ResponseWriter, message string, data interface{}) {
	response := Response{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().Format(time.RFC3339),
	}

	writeJSON(w, http.StatusOK, response)
}

func sendErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	response := Response{
		Success: false,
		Error:   message,
	}

	writeJSON(w, statusCode, response)
}
