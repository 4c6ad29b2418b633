package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/ekaya-inc/statusboard/pkg/session"
)

// SessionDefaultsResponse carries the remembered form defaults. Fields are
// empty strings until the first status log is submitted.
type SessionDefaultsResponse struct {
	Employee string `json:"employee"`
	Status   string `json:"status"`
}

// SessionHandler serves the form defaults remembered in the session cookie.
type SessionHandler struct {
	logger *zap.Logger
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(logger *zap.Logger) *SessionHandler {
	return &SessionHandler{logger: logger}
}

// RegisterRoutes registers the session handler's routes on the given mux.
func (h *SessionHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/session/defaults", h.Defaults)
}

// Defaults handles GET /api/session/defaults
// Returns the employee and status of the last submitted log for this
// browser, so the status form can preselect them.
func (h *SessionHandler) Defaults(w http.ResponseWriter, r *http.Request) {
	response := SessionDefaultsResponse{}

	if session.Store != nil {
		sess, err := session.Get(r)
		if err != nil {
			h.logger.Warn("Failed to decode session cookie", zap.Error(err))
		}
		if sess != nil {
			if employee, ok := sess.Values[session.KeyDefaultEmployee].(string); ok {
				response.Employee = employee
			}
			if status, ok := sess.Values[session.KeyDefaultStatus].(string); ok {
				response.Status = status
			}
		}
	}

	if err := WriteJSON(w, http.StatusOK, response); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
