package handlers

import (
	"context"
	"time"

	"github.com/ekaya-inc/statusboard/pkg/models"
	"github.com/ekaya-inc/statusboard/pkg/reports"
)

// mockTrackerService is a configurable mock for all handler tests.
type mockTrackerService struct {
	projects  []*models.Project
	notDone   []*models.Project
	project   *models.Project
	employees []*models.Employee
	entries   []*models.LogEntry

	listErr   error
	createErr error
	findErr   error
	submitErr error
	deleteErr error

	deletedID          int64
	submittedEmployee  string
	submittedProjectID int64
	submittedStatus    models.Status
}

func (m *mockTrackerService) ListProjects(ctx context.Context) ([]*models.Project, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.projects, nil
}

func (m *mockTrackerService) ListNotDoneProjects(ctx context.Context) ([]*models.Project, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.notDone, nil
}

func (m *mockTrackerService) AddProject(ctx context.Context, name string) (*models.Project, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	return &models.Project{ID: 1, Name: name}, nil
}

func (m *mockTrackerService) FindProjectByName(ctx context.Context, name string) (*models.Project, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	if m.project != nil {
		return m.project, nil
	}
	return &models.Project{ID: 1, Name: name}, nil
}

func (m *mockTrackerService) ListEmployees(ctx context.Context) ([]*models.Employee, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.employees, nil
}

func (m *mockTrackerService) AddEmployee(ctx context.Context, name string) (*models.Employee, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	return &models.Employee{ID: 1, Name: name}, nil
}

func (m *mockTrackerService) DeleteEmployee(ctx context.Context, id int64) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletedID = id
	return nil
}

func (m *mockTrackerService) ListLogs(ctx context.Context) ([]*models.LogEntry, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.entries, nil
}

func (m *mockTrackerService) SubmitLog(ctx context.Context, employee string, projectID int64, status models.Status, projectedEnd time.Time) (*models.StatusLog, error) {
	if m.submitErr != nil {
		return nil, m.submitErr
	}
	m.submittedEmployee = employee
	m.submittedProjectID = projectID
	m.submittedStatus = status
	return &models.StatusLog{
		ID:               42,
		Employee:         employee,
		ProjectID:        projectID,
		Status:           status,
		CommitTime:       time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
		ProjectedEndDate: projectedEnd,
	}, nil
}

func (m *mockTrackerService) DeleteLog(ctx context.Context, id int64) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletedID = id
	return nil
}

// mockReportService is a configurable mock for report endpoint tests.
type mockReportService struct {
	summary   string
	grid      reports.Grid
	gridHTML  string
	counts    []reports.WeekStatusCount
	scatter   []reports.DurationSummary
	tableHTML string

	err error
}

func (m *mockReportService) SummaryText(ctx context.Context) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.summary, nil
}

func (m *mockReportService) WeeklyGrid(ctx context.Context) (reports.Grid, error) {
	if m.err != nil {
		return reports.Grid{}, m.err
	}
	return m.grid, nil
}

func (m *mockReportService) WeeklyGridHTML(ctx context.Context) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.gridHTML, nil
}

func (m *mockReportService) StatusBarSeries(ctx context.Context) ([]reports.WeekStatusCount, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.counts, nil
}

func (m *mockReportService) ScatterSeries(ctx context.Context) ([]reports.DurationSummary, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.scatter, nil
}

func (m *mockReportService) ProjectTableHTML(ctx context.Context) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.tableHTML, nil
}
