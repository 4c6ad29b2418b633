package models

// Status is one of the fixed project status values an employee can report.
type Status string

const (
	StatusNotStarted Status = "Not Started"
	StatusInProgress Status = "In Progress"
	StatusBlocked    Status = "Blocked"
	StatusAtRisk     Status = "At Risk"
	StatusOffTrack   Status = "Off Track"
	StatusCanceled   Status = "Canceled"
	StatusDone       Status = "Done"
)

// AllStatuses lists every status in canonical order. Chart series and other
// deterministic output sort statuses by their position in this slice.
var AllStatuses = []Status{
	StatusNotStarted,
	StatusInProgress,
	StatusBlocked,
	StatusAtRisk,
	StatusOffTrack,
	StatusCanceled,
	StatusDone,
}

// IsValid reports whether s is one of the known status values.
func (s Status) IsValid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}
