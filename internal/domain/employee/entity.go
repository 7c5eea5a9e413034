package employee

import "time"

// Employee is a row of the Employee Directory. ID is assigned by the
// organization and never changes.
type Employee struct {
	ID           string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}
