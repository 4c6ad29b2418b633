package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/ekaya-inc/statusboard/pkg/apperrors"
	"github.com/ekaya-inc/statusboard/pkg/models"
	"github.com/ekaya-inc/statusboard/pkg/services"
)

// CreateProjectRequest is the body of POST /api/projects.
type CreateProjectRequest struct {
	Name string `json:"name"`
}

// ListProjectsResponse wraps the project list endpoints.
type ListProjectsResponse struct {
	Projects []*models.Project `json:"projects"`
}

// ProjectsHandler handles project HTTP requests.
type ProjectsHandler struct {
	tracker  services.TrackerService
	reporter services.ReportService
	logger   *zap.Logger
}

// NewProjectsHandler creates a new projects handler.
func NewProjectsHandler(tracker services.TrackerService, reporter services.ReportService, logger *zap.Logger) *ProjectsHandler {
	return &ProjectsHandler{
		tracker:  tracker,
		reporter: reporter,
		logger:   logger,
	}
}

// RegisterRoutes registers the projects handler's routes on the given mux.
func (h *ProjectsHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/projects", h.List)
	mux.HandleFunc("POST /api/projects", h.Create)
	mux.HandleFunc("GET /api/projects/not-done", h.ListNotDone)
}

// List handles GET /api/projects
// Returns all projects; with ?format=html it returns the project table
// fragment rendered server-side.
func (h *ProjectsHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("format") == "html" {
		fragment, err := h.reporter.ProjectTableHTML(r.Context())
		if err != nil {
			h.logger.Error("Failed to render project table", zap.Error(err))
			if err := ErrorResponse(w, http.StatusInternalServerError, "internal_error", "Failed to render project table"); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
			return
		}
		if err := WriteHTML(w, http.StatusOK, fragment); err != nil {
			h.logger.Error("Failed to write response", zap.Error(err))
		}
		return
	}

	projects, err := h.tracker.ListProjects(r.Context())
	if err != nil {
		h.logger.Error("Failed to list projects", zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "internal_error", "Failed to list projects"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	h.writeProjectList(w, projects)
}

// ListNotDone handles GET /api/projects/not-done
// Returns projects that have no Done status log yet.
func (h *ProjectsHandler) ListNotDone(w http.ResponseWriter, r *http.Request) {
	projects, err := h.tracker.ListNotDoneProjects(r.Context())
	if err != nil {
		h.logger.Error("Failed to list not-done projects", zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "internal_error", "Failed to list projects"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	h.writeProjectList(w, projects)
}

// Create handles POST /api/projects
// Creates a new project with a unique name.
func (h *ProjectsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	project, err := h.tracker.AddProject(r.Context(), req.Name)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidInput) {
			if err := ErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error()); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
			return
		}
		if errors.Is(err, apperrors.ErrConflict) {
			if err := ErrorResponse(w, http.StatusConflict, "duplicate_name", "A project with this name already exists"); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
			return
		}
		h.logger.Error("Failed to create project", zap.String("name", req.Name), zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "create_failed", "Failed to create project"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusCreated, project); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

func (h *ProjectsHandler) writeProjectList(w http.ResponseWriter, projects []*models.Project) {
	response := ListProjectsResponse{Projects: make([]*models.Project, 0, len(projects))}
	response.Projects = append(response.Projects, projects...)

	if err := WriteJSON(w, http.StatusOK, response); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
