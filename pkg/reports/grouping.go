// Package reports contains the status log aggregation engine and the
// formatters that turn its output into display payloads. Everything here
// is a pure function over log entries already loaded from storage.
package reports

import (
	"github.com/ekaya-inc/statusboard/pkg/models"
)

// Group holds the log entries for one (employee, project) pair,
// preserving their original commit-time order.
type Group struct {
	Employee string
	Project  string
	Entries  []*models.LogEntry
}

type groupKey struct {
	employee string
	project  string
}

// GroupByEmployeeProject partitions entries into groups keyed by
// (employee, project name). Group order follows the first appearance of
// each key in the input, which for commit-time-sorted input means the
// group whose earliest entry is oldest comes first.
func GroupByEmployeeProject(entries []*models.LogEntry) []*Group {
	index := make(map[groupKey]int)
	var groups []*Group
	for _, entry := range entries {
		key := groupKey{employee: entry.Employee, project: entry.ProjectName}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, &Group{Employee: entry.Employee, Project: entry.ProjectName})
		}
		groups[i].Entries = append(groups[i].Entries, entry)
	}
	return groups
}
