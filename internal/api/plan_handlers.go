package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/alexanderramin/praxis/internal/contract"
)

func (a *API) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	var req contract.PlanGenerateRequest
	// An empty body means "plan the current week".
	if r.ContentLength != 0 {
		if err := decodeJSON(r, &req); err != nil {
			a.badJSON(w)
			return
		}
	}

	plan, err := a.plans.Generate(r.Context(), req)
	if err != nil {
		a.respondWithServiceError(w, err)
		return
	}
	a.respondWithJSON(w, http.StatusCreated, plan)
}

func (a *API) ListPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := a.plans.List(r.Context())
	if err != nil {
		a.respondWithServiceError(w, err)
		return
	}
	a.respondWithJSON(w, http.StatusOK, plans)
}

func (a *API) LatestPlan(w http.ResponseWriter, r *http.Request) {
	plan, err := a.plans.Latest(r.Context())
	if err != nil {
		a.respondWithServiceError(w, err)
		return
	}
	a.respondWithJSON(w, http.StatusOK, plan)
}

func (a *API) GetPlan(w http.ResponseWriter, r *http.Request) {
	plan, err := a.plans.Get(r.Context(), chi.URLParam(r, "weekID"))
	if err != nil {
		a.respondWithServiceError(w, err)
		return
	}
	a.respondWithJSON(w, http.StatusOK, plan)
}

func (a *API) AdjustPlan(w http.ResponseWriter, r *http.Request) {
	var req contract.AdjustmentRequest
	if err := decodeJSON(r, &req); err != nil {
		a.badJSON(w)
		return
	}

	plan, err := a.plans.Adjust(r.Context(), req)
	if err != nil {
		a.respondWithServiceError(w, err)
		return
	}
	a.respondWithJSON(w, http.StatusCreated, plan)
}
