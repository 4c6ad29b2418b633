// Package models contains domain types for statusboard.
package models

// Project is a tracked project. Names are unique within the project set.
// Projects are created by explicit user action and never updated; deleting
// projects is intentionally unsupported.
type Project struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
