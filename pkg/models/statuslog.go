package models

import "time"

// StatusLog is one immutable status report: an employee reporting a
// project's status at a point in time, with a projected completion date.
// Employee is free text, not a reference into the employees table, and
// ProjectID carries no enforced foreign key, so a log can outlive its project.
type StatusLog struct {
	ID               int64     `json:"id"`
	Employee         string    `json:"employee"`
	ProjectID        int64     `json:"project_id"`
	Status           Status    `json:"status"`
	CommitTime       time.Time `json:"commit_time"`
	ProjectedEndDate time.Time `json:"projected_end_date"`
}

// LogEntry is a StatusLog joined with its project's display name. The
// listing endpoint and the aggregation engine both consume this shape, in
// commit-time ascending order.
type LogEntry struct {
	ID               int64     `json:"id"`
	Employee         string    `json:"employee"`
	ProjectName      string    `json:"project_name"`
	Status           Status    `json:"status"`
	CommitTime       time.Time `json:"commit_time"`
	ProjectedEndDate time.Time `json:"projected_end_date"`
}
