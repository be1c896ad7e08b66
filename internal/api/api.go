package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/alexanderramin/praxis/internal/contract"
	"github.com/alexanderramin/praxis/internal/intelligence"
	"github.com/alexanderramin/praxis/internal/logger"
	"github.com/alexanderramin/praxis/internal/service"
	"github.com/alexanderramin/praxis/internal/store"
)

// API holds the services the HTTP handlers delegate to. Handlers stay
// thin: decode, call, encode.
type API struct {
	profiles service.ProfileService
	plans    service.PlanService
	reality  service.RealityService
	status   service.StatusService
}

func NewAPI(profiles service.ProfileService, plans service.PlanService, reality service.RealityService, status service.StatusService) *API {
	return &API{
		profiles: profiles,
		plans:    plans,
		reality:  reality,
		status:   status,
	}
}

func (a *API) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"type":"internal_error","message":"failed to encode response"}}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func (a *API) respondWithError(w http.ResponseWriter, code int, apiErr contract.APIError) {
	a.respondWithJSON(w, code, contract.ErrorResponse{Error: apiErr})
}

// respondWithServiceError maps the error taxonomy onto status codes:
// validation 422, missing entity 404, provider failure 502 with the
// raw completion attached, store failure 500.
func (a *API) respondWithServiceError(w http.ResponseWriter, err error) {
	var verr *contract.ValidationError
	var nfe *contract.NotFoundError
	var gerr *intelligence.GenerationError
	var serr *store.StoreError

	switch {
	case errors.As(err, &verr):
		a.respondWithError(w, http.StatusUnprocessableEntity, contract.APIError{
			Type:    "validation_error",
			Message: verr.Message,
			Field:   verr.Field,
		})
	case errors.As(err, &nfe):
		a.respondWithError(w, http.StatusNotFound, contract.APIError{
			Type:    "not_found",
			Message: nfe.Message,
		})
	case errors.As(err, &gerr):
		a.respondWithError(w, http.StatusBadGateway, contract.APIError{
			Type:    "generation_error",
			Message: gerr.Error(),
			Raw:     gerr.Raw,
		})
	case errors.As(err, &serr):
		logger.Error("store failure", "op", serr.Op, "error", serr.Err)
		a.respondWithError(w, http.StatusInternalServerError, contract.APIError{
			Type:    "store_error",
			Message: serr.Error(),
		})
	default:
		logger.Error("unhandled service error", "error", err)
		a.respondWithError(w, http.StatusInternalServerError, contract.APIError{
			Type:    "internal_error",
			Message: err.Error(),
		})
	}
}

func decodeJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func (a *API) badJSON(w http.ResponseWriter) {
	a.respondWithError(w, http.StatusBadRequest, contract.APIError{
		Type:    "bad_request",
		Message: "invalid JSON body",
	})
}
