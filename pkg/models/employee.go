package models

// Employee is a person who can submit status logs. Names are unique within
// the employee set.
type Employee struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
