package reports

import (
	"github.com/ekaya-inc/statusboard/pkg/models"
)

var statusIcons = map[models.Status]string{
	models.StatusBlocked:    "⛔",
	models.StatusAtRisk:     "⚠️",
	models.StatusOffTrack:   "🚫",
	models.StatusNotStarted: "⏸",
	models.StatusInProgress: "🔄",
	models.StatusCanceled:   "❌",
	models.StatusDone:       "✅",
}

// DecorateStatus prefixes a status with its display icon. Unknown
// statuses come back unchanged. Strictly presentational: aggregation
// always works on the bare status value.
func DecorateStatus(status models.Status) string {
	icon, ok := statusIcons[status]
	if !ok {
		return string(status)
	}
	return icon + " " + string(status)
}
