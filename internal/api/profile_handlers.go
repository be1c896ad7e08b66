package api

import (
	"net/http"

	"github.com/alexanderramin/praxis/internal/contract"
)

// CreateProfile stores or replaces the singleton profile. Re-posting
// bumps the objective version.
func (a *API) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var req contract.ProfileCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		a.badJSON(w)
		return
	}

	profile, err := a.profiles.Save(r.Context(), req)
	if err != nil {
		a.respondWithServiceError(w, err)
		return
	}
	a.respondWithJSON(w, http.StatusCreated, profile)
}

func (a *API) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := a.profiles.Get(r.Context())
	if err != nil {
		a.respondWithServiceError(w, err)
		return
	}
	a.respondWithJSON(w, http.StatusOK, profile)
}
