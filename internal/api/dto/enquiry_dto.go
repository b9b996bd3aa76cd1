package dto

import (
	"time"

	"github.com/spec-kit/crm-service/internal/domain"
)

// CreateEnquiryRequest payload for the public submission form.
type CreateEnquiryRequest struct {
	Name           *string `json:"name"`
	Email          string  `json:"email"`
	Phone          *string `json:"phone"`
	CourseInterest *string `json:"course_interest"`
	Message        *string `json:"message"`
}

// EnquiryResponse represents one enquiry record.
type EnquiryResponse struct {
	ID             int64     `json:"id"`
	Name           *string   `json:"name"`
	Email          string    `json:"email"`
	Phone          *string   `json:"phone"`
	CourseInterest *string   `json:"course_interest"`
	Message        *string   `json:"message"`
	CreatedAt      time.Time `json:"created_at"`
	ClaimedBy      *int64    `json:"claimed_by"`
}

// FromEnquiry maps a domain enquiry to its response shape.
func FromEnquiry(enquiry *domain.Enquiry) EnquiryResponse {
	return EnquiryResponse{
		ID:             enquiry.ID,
		Name:           enquiry.Name,
		Email:          enquiry.Email,
		Phone:          enquiry.Phone,
		CourseInterest: enquiry.CourseInterest,
		Message:        enquiry.Message,
		CreatedAt:      enquiry.CreatedAt,
		ClaimedBy:      enquiry.ClaimedBy,
	}
}

// FromEnquiries maps a listing.
func FromEnquiries(enquiries []domain.Enquiry) []EnquiryResponse {
	result := make([]EnquiryResponse, 0, len(enquiries))
	for i := range enquiries {
		result = append(result, FromEnquiry(&enquiries[i]))
	}
	return result
}
