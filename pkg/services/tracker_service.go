package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ekaya-inc/statusboard/pkg/apperrors"
	"github.com/ekaya-inc/statusboard/pkg/metrics"
	"github.com/ekaya-inc/statusboard/pkg/models"
	"github.com/ekaya-inc/statusboard/pkg/repositories"
)

// TrackerService orchestrates project, employee, and status log CRUD for
// the dashboard. Validation failures surface as apperrors.ErrInvalidInput
// so handlers can map them to client errors; storage conflicts propagate
// as apperrors.ErrConflict.
type TrackerService interface {
	// ListProjects returns all projects in storage order.
	ListProjects(ctx context.Context) ([]*models.Project, error)

	// ListNotDoneProjects returns projects without a Done log entry,
	// recomputed on every call.
	ListNotDoneProjects(ctx context.Context) ([]*models.Project, error)

	// AddProject creates a project with the given name.
	AddProject(ctx context.Context, name string) (*models.Project, error)

	// FindProjectByName resolves a project by its display name.
	FindProjectByName(ctx context.Context, name string) (*models.Project, error)

	// ListEmployees returns all employees sorted by name.
	ListEmployees(ctx context.Context) ([]*models.Employee, error)

	// AddEmployee creates an employee with the given name.
	AddEmployee(ctx context.Context, name string) (*models.Employee, error)

	// DeleteEmployee removes an employee. Unknown ids are a no-op.
	DeleteEmployee(ctx context.Context, id int64) error

	// ListLogs returns all status log entries, oldest first.
	ListLogs(ctx context.Context) ([]*models.LogEntry, error)

	// SubmitLog records a status log entry after verifying the project
	// exists. The commit time is assigned by storage.
	SubmitLog(ctx context.Context, employee string, projectID int64, status models.Status, projectedEnd time.Time) (*models.StatusLog, error)

	// DeleteLog removes a log entry. Unknown ids are a no-op.
	DeleteLog(ctx context.Context, id int64) error
}

type trackerService struct {
	projects  repositories.ProjectRepository
	employees repositories.EmployeeRepository
	logs      repositories.StatusLogRepository
	logger    *zap.Logger
}

// NewTrackerService creates a new TrackerService.
func NewTrackerService(
	projects repositories.ProjectRepository,
	employees repositories.EmployeeRepository,
	logs repositories.StatusLogRepository,
	logger *zap.Logger,
) TrackerService {
	return &trackerService{
		projects:  projects,
		employees: employees,
		logs:      logs,
		logger:    logger.Named("tracker-service"),
	}
}

var _ TrackerService = (*trackerService)(nil)

func (s *trackerService) ListProjects(ctx context.Context) ([]*models.Project, error) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list projects", zap.Error(err))
		return nil, err
	}
	return projects, nil
}

func (s *trackerService) ListNotDoneProjects(ctx context.Context) ([]*models.Project, error) {
	projects, err := s.projects.ListNotDone(ctx)
	if err != nil {
		s.logger.Error("Failed to list not-done projects", zap.Error(err))
		return nil, err
	}
	return projects, nil
}

func (s *trackerService) AddProject(ctx context.Context, name string) (*models.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: project name is required", apperrors.ErrInvalidInput)
	}

	project := &models.Project{Name: name}
	if err := s.projects.Create(ctx, project); err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			s.logger.Error("Failed to create project", zap.String("name", name), zap.Error(err))
		}
		return nil, err
	}
	metrics.IncrementProjectsCreated()
	return project, nil
}

func (s *trackerService) FindProjectByName(ctx context.Context, name string) (*models.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: project name is required", apperrors.ErrInvalidInput)
	}

	project, err := s.projects.FindByName(ctx, name)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.logger.Error("Failed to find project", zap.String("name", name), zap.Error(err))
		}
		return nil, err
	}
	return project, nil
}

func (s *trackerService) ListEmployees(ctx context.Context) ([]*models.Employee, error) {
	employees, err := s.employees.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list employees", zap.Error(err))
		return nil, err
	}
	return employees, nil
}

func (s *trackerService) AddEmployee(ctx context.Context, name string) (*models.Employee, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: employee name is required", apperrors.ErrInvalidInput)
	}

	employee := &models.Employee{Name: name}
	if err := s.employees.Create(ctx, employee); err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			s.logger.Error("Failed to create employee", zap.String("name", name), zap.Error(err))
		}
		return nil, err
	}
	return employee, nil
}

func (s *trackerService) DeleteEmployee(ctx context.Context, id int64) error {
	if err := s.employees.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete employee", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *trackerService) ListLogs(ctx context.Context) ([]*models.LogEntry, error) {
	entries, err := s.logs.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list status logs", zap.Error(err))
		return nil, err
	}
	return entries, nil
}

func (s *trackerService) SubmitLog(ctx context.Context, employee string, projectID int64, status models.Status, projectedEnd time.Time) (*models.StatusLog, error) {
	employee = strings.TrimSpace(employee)
	if employee == "" {
		return nil, fmt.Errorf("%w: employee is required", apperrors.ErrInvalidInput)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrInvalidInput, status)
	}
	if projectedEnd.IsZero() {
		return nil, fmt.Errorf("%w: projected end date is required", apperrors.ErrInvalidInput)
	}

	// No foreign key backs project_id, so the reference is checked here.
	exists, err := s.projects.Exists(ctx, projectID)
	if err != nil {
		s.logger.Error("Failed to check project existence", zap.Int64("project_id", projectID), zap.Error(err))
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: project %d does not exist", apperrors.ErrInvalidInput, projectID)
	}

	log := &models.StatusLog{
		Employee:         employee,
		ProjectID:        projectID,
		Status:           status,
		ProjectedEndDate: projectedEnd,
	}
	if err := s.logs.Create(ctx, log); err != nil {
		s.logger.Error("Failed to create status log",
			zap.String("employee", employee),
			zap.Int64("project_id", projectID),
			zap.Error(err))
		return nil, err
	}
	metrics.IncrementStatusLogsSubmitted(string(status))
	return log, nil
}

func (s *trackerService) DeleteLog(ctx context.Context, id int64) error {
	if err := s.logs.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete status log", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}
