package api

import "net/http"

func (a *API) GetStatus(w http.ResponseWriter, r *http.Request) {
	status, err := a.status.Status(r.Context())
	if err != nil {
		a.respondWithServiceError(w, err)
		return
	}
	a.respondWithJSON(w, http.StatusOK, status)
}

func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	health, err := a.status.Health(r.Context())
	if err != nil {
		a.respondWithServiceError(w, err)
		return
	}
	a.respondWithJSON(w, http.StatusOK, health)
}
