package handlers

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (h *Handler) ChartHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	summary, err := h.chartService.Summary(r.Context())
	if err != nil {
		internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
