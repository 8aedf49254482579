package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"hospital-records/internal/models"
	"hospital-records/internal/services"

	"github.com/julienschmidt/httprouter"
)

func (h *Handler) ListPatientsHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	patients, err := h.patientService.List(r.Context())
	if err != nil {
		internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, patients)
}

func (h *Handler) GetPatientHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, ok := parseID(w, r, ps)
	if !ok {
		return
	}

	patient, err := h.patientService.Get(r.Context(), id)
	if errors.Is(err, services.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, patient)
}

func (h *Handler) CreatePatientHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in models.PatientInput
	if !decodeBody(w, r, &in) {
		return
	}

	id, err := h.patientService.Create(r.Context(), in)
	if err != nil {
		internalError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/patients/%d", id))
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) UpdatePatientHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, ok := parseID(w, r, ps)
	if !ok {
		return
	}

	var in models.PatientInput
	if !decodeBody(w, r, &in) {
		return
	}

	if err := h.patientService.Update(r.Context(), id, in); err != nil {
		internalError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) DeletePatientHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, ok := parseID(w, r, ps)
	if !ok {
		return
	}

	if err := h.patientService.Delete(r.Context(), id); err != nil {
		internalError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
