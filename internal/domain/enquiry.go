package domain

import "time"

// Enquiry is an inbound interest record submitted through the public form.
// ClaimedBy is nil until exactly one employee claims it; once set it never
// changes.
type Enquiry struct {
	ID             int64
	Name           *string
	Email          string
	Phone          *string
	CourseInterest *string
	Message        *string
	CreatedAt      time.Time
	ClaimedBy      *int64
}

// Claimed reports whether the enquiry has been claimed.
func (e *Enquiry) Claimed() bool {
	return e.ClaimedBy != nil
}

// VisibleTo applies the detail access rule: unclaimed enquiries are visible
// to any authenticated employee, claimed ones only to their claimer.
func (e *Enquiry) VisibleTo(employeeID int64) bool {
	return e.ClaimedBy == nil || *e.ClaimedBy == employeeID
}
