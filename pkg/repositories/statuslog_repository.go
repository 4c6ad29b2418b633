package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/ekaya-inc/statusboard/pkg/database"
	"github.com/ekaya-inc/statusboard/pkg/models"
)

// StatusLogRepository defines the interface for status log data access.
type StatusLogRepository interface {
	// Create inserts a new status log entry, stamping CommitTime with the
	// current time and assigning the entry's ID.
	Create(ctx context.Context, log *models.StatusLog) error

	// List retrieves all log entries joined with their project names,
	// sorted by commit time ascending. Entries whose project no longer
	// exists are omitted by the join.
	List(ctx context.Context) ([]*models.LogEntry, error)

	// Delete removes a log entry by id. Deleting an id that does not
	// exist is a no-op, not an error.
	Delete(ctx context.Context, id int64) error
}

// statusLogRepository implements StatusLogRepository using PostgreSQL.
type statusLogRepository struct {
	db *database.DB
}

// NewStatusLogRepository creates a new status log repository.
func NewStatusLogRepository(db *database.DB) StatusLogRepository {
	return &statusLogRepository{db: db}
}

// Create inserts a new status log entry. The commit time is assigned
// here, not by the caller.
func (r *statusLogRepository) Create(ctx context.Context, log *models.StatusLog) error {
	log.CommitTime = time.Now()

	query := `
		INSERT INTO project_status (employee, project_id, status, commit_time, projected_end_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := r.db.Pool.QueryRow(ctx, query,
		log.Employee,
		log.ProjectID,
		string(log.Status),
		log.CommitTime,
		log.ProjectedEndDate,
	).Scan(&log.ID)
	if err != nil {
		return fmt.Errorf("failed to create status log: %w", err)
	}

	return nil
}

// List retrieves all log entries with project names, oldest first.
func (r *statusLogRepository) List(ctx context.Context) ([]*models.LogEntry, error) {
	query := `
		SELECT project_status.id, employee, projects.name, status, commit_time, projected_end_date
		FROM project_status
		JOIN projects ON project_status.project_id = projects.id
		ORDER BY commit_time ASC`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list status logs: %w", err)
	}
	defer rows.Close()

	var entries []*models.LogEntry
	for rows.Next() {
		var entry models.LogEntry
		err := rows.Scan(
			&entry.ID,
			&entry.Employee,
			&entry.ProjectName,
			&entry.Status,
			&entry.CommitTime,
			&entry.ProjectedEndDate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan status log: %w", err)
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate status logs: %w", err)
	}

	return entries, nil
}

// Delete removes a log entry by id.
func (r *statusLogRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM project_status WHERE id = $1`

	if _, err := r.db.Pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete status log: %w", err)
	}

	return nil
}

// Ensure statusLogRepository implements StatusLogRepository at compile time.
var _ StatusLogRepository = (*statusLogRepository)(nil)
