package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/ekaya-inc/statusboard/pkg/apperrors"
	"github.com/ekaya-inc/statusboard/pkg/models"
	"github.com/ekaya-inc/statusboard/pkg/reports"
	"github.com/ekaya-inc/statusboard/pkg/services"
	"github.com/ekaya-inc/statusboard/pkg/session"
)

// dateLayout is the wire format for projected end dates.
const dateLayout = "2006-01-02"

// CreateLogRequest is the body of POST /api/logs. The project can be
// referenced by id or by name; id wins when both are present.
type CreateLogRequest struct {
	Employee         string `json:"employee"`
	ProjectID        int64  `json:"project_id,omitempty"`
	ProjectName      string `json:"project_name,omitempty"`
	Status           string `json:"status"`
	ProjectedEndDate string `json:"projected_end_date"`
}

// LogResponse is the representation of a stored status log.
type LogResponse struct {
	ID               int64  `json:"id"`
	Employee         string `json:"employee"`
	ProjectID        int64  `json:"project_id"`
	Status           string `json:"status"`
	CommitTime       string `json:"commit_time"`
	ProjectedEndDate string `json:"projected_end_date"`
}

// LogEntryResponse is one row of the log listing, joined with the project
// name and carrying the icon-decorated status for display.
type LogEntryResponse struct {
	ID               int64  `json:"id"`
	Employee         string `json:"employee"`
	ProjectName      string `json:"project_name"`
	Status           string `json:"status"`
	DisplayStatus    string `json:"display_status"`
	CommitTime       string `json:"commit_time"`
	ProjectedEndDate string `json:"projected_end_date"`
}

// ListLogsResponse wraps the log listing endpoint.
type ListLogsResponse struct {
	Logs []LogEntryResponse `json:"logs"`
}

// LogsHandler handles status log HTTP requests.
type LogsHandler struct {
	tracker services.TrackerService
	logger  *zap.Logger
}

// NewLogsHandler creates a new logs handler.
func NewLogsHandler(tracker services.TrackerService, logger *zap.Logger) *LogsHandler {
	return &LogsHandler{tracker: tracker, logger: logger}
}

// RegisterRoutes registers the logs handler's routes on the given mux.
func (h *LogsHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/logs", h.List)
	mux.HandleFunc("POST /api/logs", h.Create)
	mux.HandleFunc("DELETE /api/logs/{id}", h.Delete)
}

// List handles GET /api/logs
// Returns all status log entries oldest first, each decorated with the
// status icon used by the dashboard.
func (h *LogsHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.tracker.ListLogs(r.Context())
	if err != nil {
		h.logger.Error("Failed to list status logs", zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "internal_error", "Failed to list status logs"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	response := ListLogsResponse{Logs: make([]LogEntryResponse, len(entries))}
	for i, entry := range entries {
		response.Logs[i] = LogEntryResponse{
			ID:               entry.ID,
			Employee:         entry.Employee,
			ProjectName:      entry.ProjectName,
			Status:           string(entry.Status),
			DisplayStatus:    reports.DecorateStatus(entry.Status),
			CommitTime:       entry.CommitTime.Format("2006-01-02T15:04:05Z07:00"),
			ProjectedEndDate: entry.ProjectedEndDate.Format(dateLayout),
		}
	}

	if err := WriteJSON(w, http.StatusOK, response); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Create handles POST /api/logs
// Stores a status log entry and remembers the submitted employee and
// status as the session's form defaults.
func (h *LogsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	projectedEnd, err := time.Parse(dateLayout, req.ProjectedEndDate)
	if err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_date", "Projected end date must be formatted YYYY-MM-DD"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	projectID := req.ProjectID
	if projectID == 0 && req.ProjectName != "" {
		project, err := h.tracker.FindProjectByName(r.Context(), req.ProjectName)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				if err := ErrorResponse(w, http.StatusBadRequest, "unknown_project", "Project does not exist"); err != nil {
					h.logger.Error("Failed to write error response", zap.Error(err))
				}
				return
			}
			if errors.Is(err, apperrors.ErrInvalidInput) {
				if err := ErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error()); err != nil {
					h.logger.Error("Failed to write error response", zap.Error(err))
				}
				return
			}
			h.logger.Error("Failed to resolve project name", zap.String("name", req.ProjectName), zap.Error(err))
			if err := ErrorResponse(w, http.StatusInternalServerError, "internal_error", "Failed to resolve project"); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
			return
		}
		projectID = project.ID
	}

	log, err := h.tracker.SubmitLog(r.Context(), req.Employee, projectID, models.Status(req.Status), projectedEnd)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidInput) {
			if err := ErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error()); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
			return
		}
		h.logger.Error("Failed to submit status log",
			zap.String("employee", req.Employee),
			zap.Int64("project_id", projectID),
			zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "submit_failed", "Failed to submit status log"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	h.rememberFormDefaults(w, r, log)

	response := LogResponse{
		ID:               log.ID,
		Employee:         log.Employee,
		ProjectID:        log.ProjectID,
		Status:           string(log.Status),
		CommitTime:       log.CommitTime.Format("2006-01-02T15:04:05Z07:00"),
		ProjectedEndDate: log.ProjectedEndDate.Format(dateLayout),
	}
	if err := WriteJSON(w, http.StatusCreated, response); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Delete handles DELETE /api/logs/{id}
// Removes a status log entry. Deleting an absent id still returns 204.
func (h *LogsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_id", "Invalid log ID format"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := h.tracker.DeleteLog(r.Context(), id); err != nil {
		h.logger.Error("Failed to delete status log", zap.Int64("id", id), zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "delete_failed", "Failed to delete status log"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// rememberFormDefaults stores the submitted employee and status in the
// session cookie so the form can preselect them on the next visit.
// Session failures are logged and otherwise ignored; the log entry is
// already stored.
func (h *LogsHandler) rememberFormDefaults(w http.ResponseWriter, r *http.Request, log *models.StatusLog) {
	if session.Store == nil {
		return
	}

	sess, err := session.Get(r)
	if err != nil {
		// A stale or tampered cookie yields a fresh session alongside the
		// error; keep going with that session.
		h.logger.Warn("Failed to decode session cookie", zap.Error(err))
	}
	if sess == nil {
		return
	}

	sess.Values[session.KeyDefaultEmployee] = log.Employee
	sess.Values[session.KeyDefaultStatus] = string(log.Status)
	if err := session.Save(r, w, sess); err != nil {
		h.logger.Warn("Failed to save session cookie", zap.Error(err))
	}
}
