package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/ekaya-inc/statusboard/pkg/models"
	"github.com/ekaya-inc/statusboard/pkg/reports"
	"github.com/ekaya-inc/statusboard/pkg/repositories"
)

// ReportService derives the dashboard's aggregate views from the status
// log. Aggregation itself lives in pkg/reports; this service loads the
// inputs and never fails on empty data, only on storage errors.
type ReportService interface {
	// SummaryText renders the projected-vs-actual duration summary, one
	// line per completed (employee, project) pair.
	SummaryText(ctx context.Context) (string, error)

	// WeeklyGrid computes the week-by-employee status color grid.
	WeeklyGrid(ctx context.Context) (reports.Grid, error)

	// WeeklyGridHTML renders WeeklyGrid as an HTML table.
	WeeklyGridHTML(ctx context.Context) (string, error)

	// StatusBarSeries computes per-week, per-status entry counts for the
	// grouped bar chart.
	StatusBarSeries(ctx context.Context) ([]reports.WeekStatusCount, error)

	// ScatterSeries computes projected-vs-actual points for completed
	// work.
	ScatterSeries(ctx context.Context) ([]reports.DurationSummary, error)

	// ProjectTableHTML renders the full project list as an HTML table.
	ProjectTableHTML(ctx context.Context) (string, error)
}

type reportService struct {
	projects  repositories.ProjectRepository
	employees repositories.EmployeeRepository
	logs      repositories.StatusLogRepository
	logger    *zap.Logger
}

// NewReportService creates a new ReportService.
func NewReportService(
	projects repositories.ProjectRepository,
	employees repositories.EmployeeRepository,
	logs repositories.StatusLogRepository,
	logger *zap.Logger,
) ReportService {
	return &reportService{
		projects:  projects,
		employees: employees,
		logs:      logs,
		logger:    logger.Named("report-service"),
	}
}

var _ ReportService = (*reportService)(nil)

func (s *reportService) SummaryText(ctx context.Context) (string, error) {
	entries, err := s.listLogs(ctx)
	if err != nil {
		return "", err
	}
	return reports.SummaryText(entries), nil
}

func (s *reportService) WeeklyGrid(ctx context.Context) (reports.Grid, error) {
	entries, err := s.listLogs(ctx)
	if err != nil {
		return reports.Grid{}, err
	}

	employees, err := s.employees.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list employees for grid", zap.Error(err))
		return reports.Grid{}, err
	}

	names := make([]string, 0, len(employees))
	for _, employee := range employees {
		names = append(names, employee.Name)
	}
	return reports.WeeklyStatusGrid(entries, names), nil
}

func (s *reportService) WeeklyGridHTML(ctx context.Context) (string, error) {
	grid, err := s.WeeklyGrid(ctx)
	if err != nil {
		return "", err
	}
	return reports.GridHTML(grid), nil
}

func (s *reportService) StatusBarSeries(ctx context.Context) ([]reports.WeekStatusCount, error) {
	entries, err := s.listLogs(ctx)
	if err != nil {
		return nil, err
	}
	return reports.WeeklyStatusCounts(entries), nil
}

func (s *reportService) ScatterSeries(ctx context.Context) ([]reports.DurationSummary, error) {
	entries, err := s.listLogs(ctx)
	if err != nil {
		return nil, err
	}
	return reports.ScatterSeries(entries), nil
}

func (s *reportService) ProjectTableHTML(ctx context.Context) (string, error) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list projects for table", zap.Error(err))
		return "", err
	}
	return reports.ProjectTableHTML(projects), nil
}

func (s *reportService) listLogs(ctx context.Context) ([]*models.LogEntry, error) {
	entries, err := s.logs.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list status logs for report", zap.Error(err))
		return nil, err
	}
	return entries, nil
}
