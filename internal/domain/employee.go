package domain

import "time"

// Employee is the domain model for staff who claim enquiries.
type Employee struct {
	ID           int64
	Name         *string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
