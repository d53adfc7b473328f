package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/api-sage/bank-account-console/src/internal/adapter/http/models"
	"github.com/api-sage/bank-account-console/src/internal/commons"
	"github.com/api-sage/bank-account-console/src/internal/usecase/service_interfaces"
	"github.com/api-sage/bank-account-console/src/internal/usecase/services"
)

const maxRequestBytes = 1 << 20

type SessionController struct {
	service service_interfaces.SessionService
}

func NewSessionController(service service_interfaces.SessionService) *SessionController {
	return &SessionController{service: service}
}

func (c *SessionController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/sessions", c.runSession)
}

func (c *SessionController) runSession(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		c.write(w, r, start, http.StatusMethodNotAllowed, commons.ErrorResponse[models.RunSessionResponse]("method not allowed"))
		return
	}

	var req models.RunSessionRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(&req); err != nil {
		logError(r, err, nil)
		c.write(w, r, start, http.StatusBadRequest, commons.ErrorResponse[models.RunSessionResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, map[string]any{"lines": len(req.Input)})

	if err := req.Validate(); err != nil {
		c.write(w, r, start, http.StatusBadRequest, commons.ErrorResponse[models.RunSessionResponse]("validation failed", err.Error()))
		return
	}

	response, err := c.service.RunSession(r.Context(), req)
	if err != nil {
		logError(r, err, nil)
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, services.ErrSessionTimeout):
			status = http.StatusRequestTimeout
		case response.Message == "validation failed":
			status = http.StatusBadRequest
		}
		c.write(w, r, start, status, response)
		return
	}

	c.write(w, r, start, http.StatusOK, response)
}

func (c *SessionController) write(w http.ResponseWriter, r *http.Request, start time.Time, status int, payload any) {
	writeJSON(w, status, payload)
	logResponse(r, status, start)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
