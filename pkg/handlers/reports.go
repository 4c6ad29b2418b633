package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/ekaya-inc/statusboard/pkg/reports"
	"github.com/ekaya-inc/statusboard/pkg/services"
)

// SummaryResponse wraps the duration summary text.
type SummaryResponse struct {
	Summary string `json:"summary"`
}

// WeeklyGridRow is one employee's row of week colors.
type WeeklyGridRow struct {
	Employee string   `json:"employee"`
	Colors   []string `json:"colors"`
}

// WeeklyGridResponse is the employee-by-week color grid.
type WeeklyGridResponse struct {
	Weeks []string        `json:"weeks"`
	Rows  []WeeklyGridRow `json:"rows"`
}

// StatusBarPoint is one bar of the weekly status chart.
type StatusBarPoint struct {
	Week   string `json:"week"`
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// StatusBarsResponse wraps the weekly status count series.
type StatusBarsResponse struct {
	Series []StatusBarPoint `json:"series"`
}

// ScatterResponse wraps the projected-versus-actual duration points.
type ScatterResponse struct {
	Points []reports.DurationSummary `json:"points"`
}

// ReportsHandler serves the aggregated report endpoints.
type ReportsHandler struct {
	reporter services.ReportService
	logger   *zap.Logger
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(reporter services.ReportService, logger *zap.Logger) *ReportsHandler {
	return &ReportsHandler{reporter: reporter, logger: logger}
}

// RegisterRoutes registers the reports handler's routes on the given mux.
func (h *ReportsHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/reports/summary", h.Summary)
	mux.HandleFunc("GET /api/reports/weekly-grid", h.WeeklyGrid)
	mux.HandleFunc("GET /api/reports/status-bars", h.StatusBars)
	mux.HandleFunc("GET /api/reports/scatter", h.Scatter)
}

// Summary handles GET /api/reports/summary
// Returns the per-project duration summary text.
func (h *ReportsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reporter.SummaryText(r.Context())
	if err != nil {
		h.logger.Error("Failed to build duration summary", zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "internal_error", "Failed to build duration summary"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, SummaryResponse{Summary: summary}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// WeeklyGrid handles GET /api/reports/weekly-grid
// Returns the employee-by-week color grid; with ?format=html it returns
// the table fragment rendered server-side.
func (h *ReportsHandler) WeeklyGrid(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("format") == "html" {
		fragment, err := h.reporter.WeeklyGridHTML(r.Context())
		if err != nil {
			h.logger.Error("Failed to render weekly grid", zap.Error(err))
			if err := ErrorResponse(w, http.StatusInternalServerError, "internal_error", "Failed to render weekly grid"); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
			return
		}
		if err := WriteHTML(w, http.StatusOK, fragment); err != nil {
			h.logger.Error("Failed to write response", zap.Error(err))
		}
		return
	}

	grid, err := h.reporter.WeeklyGrid(r.Context())
	if err != nil {
		h.logger.Error("Failed to build weekly grid", zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "internal_error", "Failed to build weekly grid"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	response := WeeklyGridResponse{
		Weeks: make([]string, len(grid.Weeks)),
		Rows:  make([]WeeklyGridRow, len(grid.Rows)),
	}
	for i, week := range grid.Weeks {
		response.Weeks[i] = week.Format(dateLayout)
	}
	for i, row := range grid.Rows {
		response.Rows[i] = WeeklyGridRow{Employee: row.Employee, Colors: row.Colors}
	}

	if err := WriteJSON(w, http.StatusOK, response); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// StatusBars handles GET /api/reports/status-bars
// Returns per-week, per-status entry counts for the bar chart.
func (h *ReportsHandler) StatusBars(w http.ResponseWriter, r *http.Request) {
	counts, err := h.reporter.StatusBarSeries(r.Context())
	if err != nil {
		h.logger.Error("Failed to build status bar series", zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "internal_error", "Failed to build status bar series"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	response := StatusBarsResponse{Series: make([]StatusBarPoint, len(counts))}
	for i, count := range counts {
		response.Series[i] = StatusBarPoint{
			Week:   count.Week.Format(dateLayout),
			Status: string(count.Status),
			Count:  count.Count,
		}
	}

	if err := WriteJSON(w, http.StatusOK, response); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Scatter handles GET /api/reports/scatter
// Returns projected-versus-actual duration points for completed projects.
func (h *ReportsHandler) Scatter(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.reporter.ScatterSeries(r.Context())
	if err != nil {
		h.logger.Error("Failed to build scatter series", zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "internal_error", "Failed to build scatter series"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	response := ScatterResponse{Points: make([]reports.DurationSummary, 0, len(summaries))}
	response.Points = append(response.Points, summaries...)

	if err := WriteJSON(w, http.StatusOK, response); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
