package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/ekaya-inc/statusboard/pkg/apperrors"
	"github.com/ekaya-inc/statusboard/pkg/models"
	"github.com/ekaya-inc/statusboard/pkg/services"
)

// CreateEmployeeRequest is the body of POST /api/employees.
type CreateEmployeeRequest struct {
	Name string `json:"name"`
}

// ListEmployeesResponse wraps the employee list endpoint.
type ListEmployeesResponse struct {
	Employees []*models.Employee `json:"employees"`
}

// EmployeesHandler handles employee HTTP requests.
type EmployeesHandler struct {
	tracker services.TrackerService
	logger  *zap.Logger
}

// NewEmployeesHandler creates a new employees handler.
func NewEmployeesHandler(tracker services.TrackerService, logger *zap.Logger) *EmployeesHandler {
	return &EmployeesHandler{tracker: tracker, logger: logger}
}

// RegisterRoutes registers the employees handler's routes on the given mux.
func (h *EmployeesHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/employees", h.List)
	mux.HandleFunc("POST /api/employees", h.Create)
	mux.HandleFunc("DELETE /api/employees/{id}", h.Delete)
}

// List handles GET /api/employees
// Returns all employees sorted by name.
func (h *EmployeesHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.tracker.ListEmployees(r.Context())
	if err != nil {
		h.logger.Error("Failed to list employees", zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "internal_error", "Failed to list employees"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	response := ListEmployeesResponse{Employees: make([]*models.Employee, 0, len(employees))}
	response.Employees = append(response.Employees, employees...)

	if err := WriteJSON(w, http.StatusOK, response); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Create handles POST /api/employees
// Creates a new employee with a unique name.
func (h *EmployeesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	employee, err := h.tracker.AddEmployee(r.Context(), req.Name)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidInput) {
			if err := ErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error()); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
			return
		}
		if errors.Is(err, apperrors.ErrConflict) {
			if err := ErrorResponse(w, http.StatusConflict, "duplicate_name", "An employee with this name already exists"); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
			return
		}
		h.logger.Error("Failed to create employee", zap.String("name", req.Name), zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "create_failed", "Failed to create employee"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusCreated, employee); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Delete handles DELETE /api/employees/{id}
// Removes an employee. Deleting an absent id still returns 204.
func (h *EmployeesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_id", "Invalid employee ID format"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := h.tracker.DeleteEmployee(r.Context(), id); err != nil {
		h.logger.Error("Failed to delete employee", zap.Int64("id", id), zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "delete_failed", "Failed to delete employee"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
