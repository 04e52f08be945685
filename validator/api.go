package validator

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tefway/ferramentas/internal/acquirer"
	"github.com/tefway/ferramentas/validator/models"
)

// API is the HTTP API of the validation service
type API struct{}

func NewAPI() *API {
	return &API{}
}

func (a *API) AppendRoutes(r chi.Router) {
	r.Post("/validate-logic-number", a.validateLogicNumber)
	r.Get("/acquirers", a.listAcquirers)
}

func (a *API) validateLogicNumber(w http.ResponseWriter, r *http.Request) {
	req := models.ValidationRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ValidationResponse{Error: "invalid JSON body"})
		return
	}

	result := acquirer.Validate(acquirer.Record{
		Acquirer:      req.Acquirer,
		LogicalNumber: req.LogicalNumber,
		Code:          req.Code,
	})
	if !result.OK {
		writeJSON(w, http.StatusBadRequest, models.ValidationResponse{Error: result.Message})
		return
	}

	writeJSON(w, http.StatusOK, models.ValidationResponse{
		Success:       result.Message,
		LogicalNumber: result.LogicalNumber,
	})
}

func (a *API) listAcquirers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, acquirer.Supported())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
