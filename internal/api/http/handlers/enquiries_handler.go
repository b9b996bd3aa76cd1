package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/crm-service/internal/api/dto"
	"github.com/spec-kit/crm-service/internal/auth"
	"github.com/spec-kit/crm-service/internal/service"
	apperrors "github.com/spec-kit/crm-service/pkg/util"
)

// EnquiriesHandler exposes enquiry intake, listings and claiming.
type EnquiriesHandler struct {
	enquiries *service.EnquiryService
}

// NewEnquiriesHandler constructs handler.
func NewEnquiriesHandler(enquiryService *service.EnquiryService) *EnquiriesHandler {
	return &EnquiriesHandler{enquiries: enquiryService}
}

// Submit handles POST /api/enquiries (public form).
func (h *EnquiriesHandler) Submit(c *fiber.Ctx) error {
	var req dto.CreateEnquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	enquiry, err := h.enquiries.Submit(c.Context(), req.Name, req.Email, req.Phone, req.CourseInterest, req.Message)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{"enquiry": dto.FromEnquiry(enquiry)},
	})
}

// ListPublic handles GET /api/enquiries/public.
func (h *EnquiriesHandler) ListPublic(c *fiber.Ctx) error {
	enquiries, err := h.enquiries.ListUnclaimed(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{"enquiries": dto.FromEnquiries(enquiries)},
	})
}

// ListMine handles GET /api/enquiries/mine.
func (h *EnquiriesHandler) ListMine(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	enquiries, err := h.enquiries.ListClaimedBy(c.Context(), identity.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{"enquiries": dto.FromEnquiries(enquiries)},
	})
}

// Get handles GET /api/enquiries/:id.
func (h *EnquiriesHandler) Get(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	enquiryID, err := parseEnquiryID(c)
	if err != nil {
		return err
	}

	enquiry, err := h.enquiries.GetByID(c.Context(), enquiryID, identity.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{"enquiry": dto.FromEnquiry(enquiry)},
	})
}

// Claim handles POST /api/enquiries/:id/claim.
func (h *EnquiriesHandler) Claim(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	enquiryID, err := parseEnquiryID(c)
	if err != nil {
		return err
	}

	enquiry, err := h.enquiries.Claim(c.Context(), enquiryID, identity.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{"enquiry": dto.FromEnquiry(enquiry)},
	})
}

func parseEnquiryID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid enquiry id", nil)
	}
	return id, nil
}
