package reports

import (
	"fmt"
	"strings"
	"time"

	"github.com/ekaya-inc/statusboard/pkg/models"
)

// EmptySummaryText is returned when no group has a Done entry yet.
const EmptySummaryText = "No completed projects yet."

// DurationSummary compares projected and actual completion time for one
// completed (employee, project) group.
type DurationSummary struct {
	Employee       string  `json:"employee"`
	Project        string  `json:"project"`
	ProjectedHours float64 `json:"projected_hours"`
	ActualHours    float64 `json:"actual_hours"`
}

// DurationSummaries computes one summary per group that contains at
// least one Done entry. Groups without a Done entry contribute nothing:
// in-progress work is deliberately excluded rather than reported with a
// partial duration.
func DurationSummaries(groups []*Group) []DurationSummary {
	var summaries []DurationSummary
	for _, group := range groups {
		summary, ok := summarize(group)
		if ok {
			summaries = append(summaries, summary)
		}
	}
	return summaries
}

// summarize derives the projected and actual durations for a group.
// Reports false when the group has no Done entry.
//
// The actual duration runs from the earliest commit across all entries
// to the latest Done commit. The projected duration runs from that same
// start to midnight of the projected end date recorded on the group's
// first entry. Later entries may carry revised projections; those are
// ignored on purpose, matching the dashboard's historical behavior.
func summarize(group *Group) (DurationSummary, bool) {
	var doneEntries []*models.LogEntry
	for _, entry := range group.Entries {
		if entry.Status == models.StatusDone {
			doneEntries = append(doneEntries, entry)
		}
	}
	if len(doneEntries) == 0 {
		return DurationSummary{}, false
	}

	start := group.Entries[0].CommitTime
	for _, entry := range group.Entries[1:] {
		if entry.CommitTime.Before(start) {
			start = entry.CommitTime
		}
	}

	finish := doneEntries[0].CommitTime
	for _, entry := range doneEntries[1:] {
		if entry.CommitTime.After(finish) {
			finish = entry.CommitTime
		}
	}

	year, month, day := group.Entries[0].ProjectedEndDate.Date()
	projectedEnd := time.Date(year, month, day, 0, 0, 0, 0, start.Location())

	return DurationSummary{
		Employee:       group.Employee,
		Project:        group.Project,
		ProjectedHours: projectedEnd.Sub(start).Hours(),
		ActualHours:    finish.Sub(start).Hours(),
	}, true
}

// SummaryText renders the duration summaries as one line per completed
// group, in group order. With no completed groups it returns
// EmptySummaryText.
func SummaryText(entries []*models.LogEntry) string {
	summaries := DurationSummaries(GroupByEmployeeProject(entries))
	if len(summaries) == 0 {
		return EmptySummaryText
	}

	lines := make([]string, 0, len(summaries))
	for _, s := range summaries {
		lines = append(lines, fmt.Sprintf(
			"Employee: %s, Project: %s, Projected: %.2f hrs, Actual: %.2f hrs",
			s.Employee, s.Project, s.ProjectedHours, s.ActualHours,
		))
	}
	return strings.Join(lines, "\n")
}

// ScatterSeries computes the projected-vs-actual points for the scatter
// chart, one per completed group. The chart draws these against an
// identity line, so a point above the diagonal ran over its projection.
func ScatterSeries(entries []*models.LogEntry) []DurationSummary {
	return DurationSummaries(GroupByEmployeeProject(entries))
}
