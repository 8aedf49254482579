package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type MaintenanceConfigRequest struct {
	CronSchedule  string `json:"cronSchedule,omitempty"`
	RepairOrphans *bool  `json:"repairOrphans,omitempty"`
}

func (h *Handler) MaintenanceStatusHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sendSuccessResponse(w, "", h.maintenanceService.GetStatus())
}

func (h *Handler) StartMaintenanceHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := h.maintenanceService.Start(); err != nil {
		sendErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	sendSuccessResponse(w, "Maintenance started", h.maintenanceService.GetStatus())
}

func (h *Handler) StopMaintenanceHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := h.maintenanceService.Stop(); err != nil {
		sendErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	sendSuccessResponse(w, "Maintenance stopped", nil)
}

func (h *Handler) RunMaintenanceHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	report, err := h.maintenanceService.RunOnce(r.Context())
	if err != nil {
		internalError(w, r, err)
		return
	}

	sendSuccessResponse(w, "Maintenance completed", report)
}

func (h *Handler) MaintenanceConfigHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req MaintenanceConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorResponse(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.maintenanceService.UpdateConfig(req.CronSchedule, req.RepairOrphans); err != nil {
		log.Printf("Maintenance config rejected: %v", err)
		sendErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	sendSuccessResponse(w, "Configuration updated", h.maintenanceService.GetStatus())
}
