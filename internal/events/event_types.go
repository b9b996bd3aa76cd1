package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventEnquirySubmitted EventType = "enquiry_submitted"
	EventEnquiryClaimed   EventType = "enquiry_claimed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	EnquiryID int64       `json:"enquiry_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// EnquirySubmittedPayload payload.
type EnquirySubmittedPayload struct {
	Email          string  `json:"email"`
	CourseInterest *string `json:"course_interest,omitempty"`
}

// EnquiryClaimedPayload payload.
type EnquiryClaimedPayload struct {
	EmployeeID int64 `json:"employee_id"`
}
