package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/alexanderramin/praxis/internal/contract"
)

func (a *API) SubmitRealityCheck(w http.ResponseWriter, r *http.Request) {
	var req contract.RealityCheckRequest
	if err := decodeJSON(r, &req); err != nil {
		a.badJSON(w)
		return
	}

	report, err := a.reality.Submit(r.Context(), req)
	if err != nil {
		a.respondWithServiceError(w, err)
		return
	}
	a.respondWithJSON(w, http.StatusCreated, report)
}

func (a *API) GetDeviationReport(w http.ResponseWriter, r *http.Request) {
	report, err := a.reality.Report(r.Context(), chi.URLParam(r, "weekID"))
	if err != nil {
		a.respondWithServiceError(w, err)
		return
	}
	a.respondWithJSON(w, http.StatusOK, report)
}

func (a *API) GetHistory(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			a.respondWithError(w, http.StatusUnprocessableEntity, contract.APIError{
				Type:    "validation_error",
				Message: "limit must be an integer",
				Field:   "limit",
			})
			return
		}
		limit = n
	}

	entries, err := a.reality.History(r.Context(), limit)
	if err != nil {
		a.respondWithServiceError(w, err)
		return
	}
	a.respondWithJSON(w, http.StatusOK, entries)
}

func (a *API) GetHistoryEntry(w http.ResponseWriter, r *http.Request) {
	entry, err := a.reality.HistoryEntry(r.Context(), chi.URLParam(r, "weekID"))
	if err != nil {
		a.respondWithServiceError(w, err)
		return
	}
	a.respondWithJSON(w, http.StatusOK, entry)
}
