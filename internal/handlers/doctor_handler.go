package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"hospital-records/internal/models"
	"hospital-records/internal/services"

	"github.com/julienschmidt/httprouter"
)

func (h *Handler) ListDoctorsHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	doctors, err := h.doctorService.List(r.Context())
	if err != nil {
		internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, doctors)
}

func (h *Handler) GetDoctorHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, ok := parseID(w, r, ps)
	if !ok {
		return
	}

	doctor, err := h.doctorService.Get(r.Context(), id)
	if errors.Is(err, services.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, doctor)
}

func (h *Handler) CreateDoctorHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in models.DoctorInput
	if !decodeBody(w, r, &in) {
		return
	}

	id, err := h.doctorService.Create(r.Context(), in)
	if err != nil {
		internalError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/doctors/%d", id))
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) UpdateDoctorHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, ok := parseID(w, r, ps)
	if !ok {
		return
	}

	var in models.DoctorInput
	if !decodeBody(w, r, &in) {
		return
	}

	if err := h.doctorService.Update(r.Context(), id, in); err != nil {
		internalError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) DeleteDoctorHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, ok := parseID(w, r, ps)
	if !ok {
		return
	}

	unassigned, err := h.doctorService.Delete(r.Context(), id)
	if err != nil {
		internalError(w, r, err)
		return
	}
	if unassigned > 0 {
		log.Printf("Doctor %d deleted, %d patients unassigned", id, unassigned)
	}

	w.WriteHeader(http.StatusOK)
}
