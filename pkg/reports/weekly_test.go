package reports

import (
	"testing"
	"time"

	"github.com/ekaya-inc/statusboard/pkg/models"
)

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "monday maps to itself",
			in:   time.Date(2024, 1, 1, 15, 30, 0, 0, time.UTC), // Monday
			want: date(2024, 1, 1),
		},
		{
			name: "wednesday maps back to monday",
			in:   time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC),
			want: date(2024, 1, 1),
		},
		{
			name: "sunday maps back to the previous monday",
			in:   time.Date(2024, 1, 7, 23, 59, 0, 0, time.UTC),
			want: date(2024, 1, 1),
		},
		{
			name: "crosses a month boundary",
			in:   time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC), // Friday
			want: date(2024, 1, 29),
		},
		{
			name: "crosses a year boundary",
			in:   time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC), // Wednesday
			want: date(2024, 12, 30),
		},
		{
			name: "non-UTC input normalizes to UTC midnight",
			in:   time.Date(2024, 1, 3, 9, 0, 0, 0, time.FixedZone("UTC+5", 5*60*60)),
			want: date(2024, 1, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeekStart(tt.in); !got.Equal(tt.want) {
				t.Errorf("WeekStart(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestWeeklyStatusCounts(t *testing.T) {
	end := date(2024, 2, 1)
	entries := []*models.LogEntry{
		// Week of Jan 1: two In Progress, one Blocked.
		entry("alice", "Apollo", models.StatusInProgress, at(2024, 1, 1, 9), end),
		entry("bob", "Borealis", models.StatusInProgress, at(2024, 1, 3, 9), end),
		entry("alice", "Apollo", models.StatusBlocked, at(2024, 1, 5, 9), end),
		// Week of Jan 15: one Done. The week of Jan 8 stays absent.
		entry("alice", "Apollo", models.StatusDone, at(2024, 1, 15, 9), end),
	}

	counts := WeeklyStatusCounts(entries)

	want := []WeekStatusCount{
		{Week: date(2024, 1, 1), Status: models.StatusInProgress, Count: 2},
		{Week: date(2024, 1, 1), Status: models.StatusBlocked, Count: 1},
		{Week: date(2024, 1, 15), Status: models.StatusDone, Count: 1},
	}
	if len(counts) != len(want) {
		t.Fatalf("expected %d rows, got %d: %+v", len(want), len(counts), counts)
	}
	for i, w := range want {
		if !counts[i].Week.Equal(w.Week) || counts[i].Status != w.Status || counts[i].Count != w.Count {
			t.Errorf("row %d: got %+v, want %+v", i, counts[i], w)
		}
	}
}

func TestWeeklyStatusCounts_CanonicalStatusOrderWithinWeek(t *testing.T) {
	end := date(2024, 2, 1)
	// Inserted in reverse canonical order within one week.
	entries := []*models.LogEntry{
		entry("alice", "Apollo", models.StatusDone, at(2024, 1, 1, 9), end),
		entry("alice", "Apollo", models.StatusOffTrack, at(2024, 1, 2, 9), end),
		entry("alice", "Apollo", models.StatusNotStarted, at(2024, 1, 3, 9), end),
	}

	counts := WeeklyStatusCounts(entries)
	wantOrder := []models.Status{models.StatusNotStarted, models.StatusOffTrack, models.StatusDone}
	if len(counts) != len(wantOrder) {
		t.Fatalf("expected %d rows, got %d", len(wantOrder), len(counts))
	}
	for i, status := range wantOrder {
		if counts[i].Status != status {
			t.Errorf("row %d: expected status %q, got %q", i, status, counts[i].Status)
		}
	}
}

func TestWeeklyStatusCounts_Empty(t *testing.T) {
	if counts := WeeklyStatusCounts(nil); len(counts) != 0 {
		t.Errorf("expected no rows for empty input, got %d", len(counts))
	}
}

func TestWeeklyStatusGrid_ContinuousWeekRange(t *testing.T) {
	end := date(2024, 2, 1)
	// Entries in week of Jan 1 and week of Jan 15; nothing in between.
	entries := []*models.LogEntry{
		entry("alice", "Apollo", models.StatusInProgress, at(2024, 1, 2, 9), end),
		entry("alice", "Apollo", models.StatusDone, at(2024, 1, 16, 9), end),
	}

	grid := WeeklyStatusGrid(entries, []string{"alice"})

	wantWeeks := []time.Time{date(2024, 1, 1), date(2024, 1, 8), date(2024, 1, 15)}
	if len(grid.Weeks) != len(wantWeeks) {
		t.Fatalf("expected %d weeks, got %d", len(wantWeeks), len(grid.Weeks))
	}
	for i, want := range wantWeeks {
		if !grid.Weeks[i].Equal(want) {
			t.Errorf("week %d: got %v, want %v", i, grid.Weeks[i], want)
		}
	}

	if len(grid.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(grid.Rows))
	}
	wantColors := []string{ColorGreen, ColorLightGrey, ColorGreen}
	for i, want := range wantColors {
		if grid.Rows[0].Colors[i] != want {
			t.Errorf("cell %d: got %q, want %q", i, grid.Rows[0].Colors[i], want)
		}
	}
}

func TestWeeklyStatusGrid_EmptyEntries(t *testing.T) {
	expectedWeek := WeekStart(time.Now())
	grid := WeeklyStatusGrid(nil, []string{"alice", "bob"})

	if len(grid.Weeks) != 1 {
		t.Fatalf("expected a single week, got %d", len(grid.Weeks))
	}
	if !grid.Weeks[0].Equal(expectedWeek) {
		t.Errorf("week = %v, want current week %v", grid.Weeks[0], expectedWeek)
	}
	if len(grid.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(grid.Rows))
	}
	for _, row := range grid.Rows {
		if len(row.Colors) != 1 || row.Colors[0] != ColorLightGrey {
			t.Errorf("row %q: expected a single light grey cell, got %v", row.Employee, row.Colors)
		}
	}
}

func TestWeeklyStatusGrid_NoEmployees(t *testing.T) {
	grid := WeeklyStatusGrid(nil, nil)
	if len(grid.Rows) != 0 {
		t.Errorf("expected no rows without employees, got %d", len(grid.Rows))
	}
	if len(grid.Weeks) != 1 {
		t.Errorf("expected the single current week, got %d", len(grid.Weeks))
	}
}

func TestWeeklyStatusGrid_RowsFollowEmployeeOrder(t *testing.T) {
	end := date(2024, 2, 1)
	entries := []*models.LogEntry{
		entry("bob", "Apollo", models.StatusInProgress, at(2024, 1, 1, 9), end),
	}

	grid := WeeklyStatusGrid(entries, []string{"alice", "bob", "carol"})
	wantRows := []string{"alice", "bob", "carol"}
	if len(grid.Rows) != len(wantRows) {
		t.Fatalf("expected %d rows, got %d", len(wantRows), len(grid.Rows))
	}
	for i, want := range wantRows {
		if grid.Rows[i].Employee != want {
			t.Errorf("row %d: expected %q, got %q", i, want, grid.Rows[i].Employee)
		}
	}
	// Only bob logged anything this week.
	if grid.Rows[0].Colors[0] != ColorLightGrey {
		t.Errorf("alice's cell = %q, want light grey", grid.Rows[0].Colors[0])
	}
	if grid.Rows[1].Colors[0] != ColorGreen {
		t.Errorf("bob's cell = %q, want green", grid.Rows[1].Colors[0])
	}
}

// TestWeeklyStatusGrid_UnknownEmployeeRowsStayGrey covers log entries
// from employees that are not in the roster: they get no row.
func TestWeeklyStatusGrid_UnknownEmployeeRowsStayGrey(t *testing.T) {
	end := date(2024, 2, 1)
	entries := []*models.LogEntry{
		entry("ghost", "Apollo", models.StatusBlocked, at(2024, 1, 1, 9), end),
	}

	grid := WeeklyStatusGrid(entries, []string{"alice"})
	if len(grid.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(grid.Rows))
	}
	if grid.Rows[0].Colors[0] != ColorLightGrey {
		t.Errorf("alice's cell = %q, want light grey", grid.Rows[0].Colors[0])
	}
}

func TestCellColor(t *testing.T) {
	tests := []struct {
		name     string
		statuses []models.Status
		want     string
	}{
		{
			name:     "empty cell is light grey",
			statuses: nil,
			want:     ColorLightGrey,
		},
		{
			name:     "blocked wins over done",
			statuses: []models.Status{models.StatusBlocked, models.StatusDone},
			want:     ColorRed,
		},
		{
			name:     "at risk is red",
			statuses: []models.Status{models.StatusAtRisk},
			want:     ColorRed,
		},
		{
			name:     "at risk wins over off track",
			statuses: []models.Status{models.StatusOffTrack, models.StatusAtRisk},
			want:     ColorRed,
		},
		{
			name:     "off track wins over done",
			statuses: []models.Status{models.StatusOffTrack, models.StatusDone},
			want:     ColorYellow,
		},
		{
			name:     "in progress alone is green",
			statuses: []models.Status{models.StatusInProgress},
			want:     ColorGreen,
		},
		{
			name:     "done alone is green",
			statuses: []models.Status{models.StatusDone},
			want:     ColorGreen,
		},
		{
			name:     "in progress plus done is green",
			statuses: []models.Status{models.StatusInProgress, models.StatusDone},
			want:     ColorGreen,
		},
		{
			name:     "not started alone is white",
			statuses: []models.Status{models.StatusNotStarted},
			want:     ColorWhite,
		},
		{
			name:     "canceled with done is white",
			statuses: []models.Status{models.StatusCanceled, models.StatusDone},
			want:     ColorWhite,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CellColor(tt.statuses); got != tt.want {
				t.Errorf("CellColor(%v) = %q, want %q", tt.statuses, got, tt.want)
			}
		})
	}
}
