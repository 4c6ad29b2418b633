// Package repositories provides PostgreSQL data access for statusboard.
package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ekaya-inc/statusboard/pkg/apperrors"
	"github.com/ekaya-inc/statusboard/pkg/database"
	"github.com/ekaya-inc/statusboard/pkg/models"
)

// ProjectRepository defines the interface for project data access.
type ProjectRepository interface {
	// Create inserts a new project and assigns its ID. Returns
	// apperrors.ErrConflict when the name already exists.
	Create(ctx context.Context, project *models.Project) error

	// List retrieves all projects. Row order is not defined and must not
	// be relied on.
	List(ctx context.Context) ([]*models.Project, error)

	// ListNotDone retrieves projects that have no Done log entry yet.
	ListNotDone(ctx context.Context) ([]*models.Project, error)

	// FindByName retrieves a project by exact name. Returns
	// apperrors.ErrNotFound when no project matches.
	FindByName(ctx context.Context, name string) (*models.Project, error)

	// Exists reports whether a project with the given id exists.
	Exists(ctx context.Context, id int64) (bool, error)
}

// projectRepository implements ProjectRepository using PostgreSQL.
type projectRepository struct {
	db *database.DB
}

// NewProjectRepository creates a new project repository.
func NewProjectRepository(db *database.DB) ProjectRepository {
	return &projectRepository{db: db}
}

// Create inserts a new project.
func (r *projectRepository) Create(ctx context.Context, project *models.Project) error {
	query := `
		INSERT INTO projects (name)
		VALUES ($1)
		RETURNING id`

	err := r.db.Pool.QueryRow(ctx, query, project.Name).Scan(&project.ID)
	if err != nil {
		// Check for unique constraint violation (PostgreSQL error code 23505)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("failed to create project: %w", err)
	}

	return nil
}

// List retrieves all projects.
func (r *projectRepository) List(ctx context.Context) ([]*models.Project, error) {
	query := `SELECT id, name FROM projects`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		var project models.Project
		if err := rows.Scan(&project.ID, &project.Name); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, &project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate projects: %w", err)
	}

	return projects, nil
}

// ListNotDone retrieves projects without a Done log entry. A project with
// no log entries at all counts as not done.
func (r *projectRepository) ListNotDone(ctx context.Context) ([]*models.Project, error) {
	query := `
		SELECT id, name
		FROM projects
		WHERE id NOT IN (
			SELECT project_id FROM project_status WHERE status = $1
		)`

	rows, err := r.db.Pool.Query(ctx, query, string(models.StatusDone))
	if err != nil {
		return nil, fmt.Errorf("failed to list not-done projects: %w", err)
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		var project models.Project
		if err := rows.Scan(&project.ID, &project.Name); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, &project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate projects: %w", err)
	}

	return projects, nil
}

// FindByName retrieves a project by exact name.
func (r *projectRepository) FindByName(ctx context.Context, name string) (*models.Project, error) {
	query := `SELECT id, name FROM projects WHERE name = $1`

	var project models.Project
	err := r.db.Pool.QueryRow(ctx, query, name).Scan(&project.ID, &project.Name)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find project by name: %w", err)
	}

	return &project, nil
}

// Exists reports whether a project with the given id exists.
func (r *projectRepository) Exists(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM projects WHERE id = $1)`

	var exists bool
	if err := r.db.Pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check project existence: %w", err)
	}

	return exists, nil
}

// Ensure projectRepository implements ProjectRepository at compile time.
var _ ProjectRepository = (*projectRepository)(nil)
