package reports

import (
	"sort"
	"time"

	"github.com/ekaya-inc/statusboard/pkg/models"
)

// Cell color tokens for the weekly status grid.
const (
	ColorRed       = "red"
	ColorYellow    = "yellow"
	ColorGreen     = "green"
	ColorWhite     = "white"
	ColorLightGrey = "lightgrey"
)

// WeekStart returns the Monday of the calendar week containing t,
// normalized to midnight UTC so week values compare with ==.
func WeekStart(t time.Time) time.Time {
	year, month, day := t.Date()
	offset := (int(t.Weekday()) + 6) % 7 // Monday = 0 ... Sunday = 6
	return time.Date(year, month, day-offset, 0, 0, 0, 0, time.UTC)
}

// WeekStatusCount is the number of log entries for one status in one
// commit week.
type WeekStatusCount struct {
	Week   time.Time     `json:"week"`
	Status models.Status `json:"status"`
	Count  int           `json:"count"`
}

// WeeklyStatusCounts buckets every entry by its commit week and counts
// occurrences per (week, status) pair. Weeks with no entries are absent
// rather than zero-filled. Output is ordered by week ascending, then by
// the canonical status order.
func WeeklyStatusCounts(entries []*models.LogEntry) []WeekStatusCount {
	type countKey struct {
		week   time.Time
		status models.Status
	}

	counts := make(map[countKey]int)
	weekSet := make(map[time.Time]bool)
	for _, entry := range entries {
		week := WeekStart(entry.CommitTime)
		counts[countKey{week: week, status: entry.Status}]++
		weekSet[week] = true
	}

	weeks := make([]time.Time, 0, len(weekSet))
	for week := range weekSet {
		weeks = append(weeks, week)
	}
	sort.Slice(weeks, func(i, j int) bool { return weeks[i].Before(weeks[j]) })

	var series []WeekStatusCount
	for _, week := range weeks {
		for _, status := range models.AllStatuses {
			if count := counts[countKey{week: week, status: status}]; count > 0 {
				series = append(series, WeekStatusCount{Week: week, Status: status, Count: count})
			}
		}
	}
	return series
}

// Grid is the weekly status color table: one row per employee, one
// column per week, each cell a color token.
type Grid struct {
	Weeks []time.Time `json:"weeks"`
	Rows  []GridRow   `json:"rows"`
}

// GridRow holds one employee's cell colors, index-aligned with
// Grid.Weeks.
type GridRow struct {
	Employee string   `json:"employee"`
	Colors   []string `json:"colors"`
}

// WeeklyStatusGrid builds the color grid for the continuous week range
// spanning all entries. With no entries the grid covers the single week
// containing today, and every cell is light grey. Employees appear as
// rows in the order given.
func WeeklyStatusGrid(entries []*models.LogEntry, employees []string) Grid {
	weeks := weekRange(entries)

	type cellKey struct {
		employee string
		week     time.Time
	}
	statusesByCell := make(map[cellKey][]models.Status)
	for _, entry := range entries {
		key := cellKey{employee: entry.Employee, week: WeekStart(entry.CommitTime)}
		statusesByCell[key] = append(statusesByCell[key], entry.Status)
	}

	rows := make([]GridRow, 0, len(employees))
	for _, employee := range employees {
		colors := make([]string, len(weeks))
		for i, week := range weeks {
			colors[i] = CellColor(statusesByCell[cellKey{employee: employee, week: week}])
		}
		rows = append(rows, GridRow{Employee: employee, Colors: colors})
	}

	return Grid{Weeks: weeks, Rows: rows}
}

// weekRange returns every Monday from the earliest to the latest commit
// week, stepping by exactly 7 days so gaps stay visible as grey columns.
func weekRange(entries []*models.LogEntry) []time.Time {
	if len(entries) == 0 {
		return []time.Time{WeekStart(time.Now())}
	}

	first := WeekStart(entries[0].CommitTime)
	last := first
	for _, entry := range entries[1:] {
		week := WeekStart(entry.CommitTime)
		if week.Before(first) {
			first = week
		}
		if week.After(last) {
			last = week
		}
	}

	var weeks []time.Time
	for current := first; !current.After(last); current = current.AddDate(0, 0, 7) {
		weeks = append(weeks, current)
	}
	return weeks
}

// CellColor classifies the statuses in one grid cell. The branches form
// a severity ordering and must be evaluated in this sequence: any
// Blocked or At Risk makes the cell red even if a Done is present.
func CellColor(statuses []models.Status) string {
	if len(statuses) == 0 {
		return ColorLightGrey
	}

	for _, status := range statuses {
		if status == models.StatusBlocked || status == models.StatusAtRisk {
			return ColorRed
		}
	}

	for _, status := range statuses {
		if status == models.StatusOffTrack {
			return ColorYellow
		}
	}

	for _, status := range statuses {
		if status != models.StatusInProgress && status != models.StatusDone {
			return ColorWhite
		}
	}
	return ColorGreen
}
