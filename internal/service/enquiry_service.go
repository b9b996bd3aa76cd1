package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/crm-service/internal/domain"
	"github.com/spec-kit/crm-service/internal/events"
	"github.com/spec-kit/crm-service/internal/observability"
	"github.com/spec-kit/crm-service/internal/repository"
	apperrors "github.com/spec-kit/crm-service/pkg/util"
)

const unclaimedCacheKey = "enquiries:unclaimed"

// EnquiryService coordinates enquiry intake, listings and the exclusive claim
// transition. It holds no in-process locks: claim correctness rests entirely
// on the repository's conditional write, so the service can run replicated.
type EnquiryService struct {
	enquiries  repository.EnquiryRepository
	cache      *redis.Client
	cacheTTL   time.Duration
	dispatcher events.Dispatcher
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// EnquiryDependencies bundles collaborators for the service.
type EnquiryDependencies struct {
	EnquiryRepo repository.EnquiryRepository
	Cache       *redis.Client
	CacheTTL    time.Duration
	Dispatcher  events.Dispatcher
	Metrics     *observability.Metrics
	Logger      *zap.Logger
}

// NewEnquiryService creates the service.
func NewEnquiryService(deps EnquiryDependencies) *EnquiryService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnquiryService{
		enquiries:  deps.EnquiryRepo,
		cache:      deps.Cache,
		cacheTTL:   deps.CacheTTL,
		dispatcher: deps.Dispatcher,
		metrics:    deps.Metrics,
		logger:     logger,
	}
}

// Submit records a public enquiry. Every submission creates a new unclaimed
// row; repeat submissions from the same email are not deduplicated.
func (s *EnquiryService) Submit(ctx context.Context, name *string, email string, phone, courseInterest, message *string) (*domain.Enquiry, error) {
	if email == "" {
		return nil, apperrors.NewValidationError("email is required for enquiry", nil)
	}

	enquiry := &domain.Enquiry{
		Name:           name,
		Email:          email,
		Phone:          phone,
		CourseInterest: courseInterest,
		Message:        message,
	}
	if err := s.enquiries.Create(ctx, enquiry); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.invalidateUnclaimedCache(ctx)
	s.publish(ctx, events.EventEnquirySubmitted, enquiry.ID, events.EnquirySubmittedPayload{
		Email:          enquiry.Email,
		CourseInterest: enquiry.CourseInterest,
	})
	return enquiry, nil
}

// ListUnclaimed returns unclaimed enquiries, newest first. The listing is
// advisory: a listed row may be claimed before the caller acts on it. A short
// redis cache fronts the query and degrades to the store on any cache error.
func (s *EnquiryService) ListUnclaimed(ctx context.Context) ([]domain.Enquiry, error) {
	if cached, ok := s.readUnclaimedCache(ctx); ok {
		return cached, nil
	}

	enquiries, err := s.enquiries.ListUnclaimed(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	s.writeUnclaimedCache(ctx, enquiries)
	return enquiries, nil
}

// ListClaimedBy returns the employee's private queue, newest first.
func (s *EnquiryService) ListClaimedBy(ctx context.Context, employeeID int64) ([]domain.Enquiry, error) {
	enquiries, err := s.enquiries.ListClaimedBy(ctx, employeeID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return enquiries, nil
}

// GetByID returns the enquiry when it is unclaimed or claimed by the
// requester; claimed-by-another yields FORBIDDEN so the requester learns the
// row exists but not its content.
func (s *EnquiryService) GetByID(ctx context.Context, enquiryID, requesterID int64) (*domain.Enquiry, error) {
	if enquiryID <= 0 {
		return nil, apperrors.NewValidationError("invalid enquiry id", nil)
	}

	enquiry, err := s.enquiries.GetByID(ctx, enquiryID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("enquiry", map[string]any{"enquiry_id": enquiryID})
		}
		return nil, apperrors.MapError(err)
	}
	if !enquiry.VisibleTo(requesterID) {
		return nil, apperrors.NewForbidden("enquiry claimed by another employee")
	}
	return enquiry, nil
}

// Claim executes the at-most-once claim transition. The write is a single
// conditional UPDATE; when it affects no rows the outcome is disambiguated
// with a follow-up read. Losers get a terminal ALREADY_CLAIMED, never a
// retry, even when the requester is the current claimer.
func (s *EnquiryService) Claim(ctx context.Context, enquiryID, requesterID int64) (*domain.Enquiry, error) {
	if enquiryID <= 0 {
		return nil, apperrors.NewValidationError("invalid enquiry id", nil)
	}

	claimed, err := s.enquiries.TryClaim(ctx, enquiryID, requesterID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	if !claimed {
		if _, err := s.enquiries.GetByID(ctx, enquiryID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				s.metrics.RecordClaim(observability.ClaimOutcomeNotFound)
				return nil, apperrors.NewNotFound("enquiry", map[string]any{"enquiry_id": enquiryID})
			}
			return nil, apperrors.MapError(err)
		}
		s.metrics.RecordClaim(observability.ClaimOutcomeLost)
		return nil, apperrors.NewAlreadyClaimed(map[string]any{"enquiry_id": enquiryID})
	}

	enquiry, err := s.enquiries.GetByID(ctx, enquiryID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	s.metrics.RecordClaim(observability.ClaimOutcomeWon)
	s.invalidateUnclaimedCache(ctx)
	s.publish(ctx, events.EventEnquiryClaimed, enquiry.ID, events.EnquiryClaimedPayload{
		EmployeeID: requesterID,
	})
	s.logger.Info("enquiry claimed",
		zap.Int64("enquiry_id", enquiry.ID),
		zap.Int64("employee_id", requesterID))
	return enquiry, nil
}

func (s *EnquiryService) readUnclaimedCache(ctx context.Context) ([]domain.Enquiry, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, unclaimedCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Debug("unclaimed cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var enquiries []domain.Enquiry
	if err := json.Unmarshal(raw, &enquiries); err != nil {
		return nil, false
	}
	return enquiries, true
}

func (s *EnquiryService) writeUnclaimedCache(ctx context.Context, enquiries []domain.Enquiry) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return
	}
	raw, err := json.Marshal(enquiries)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, unclaimedCacheKey, raw, s.cacheTTL).Err(); err != nil {
		s.logger.Debug("unclaimed cache write failed", zap.Error(err))
	}
}

func (s *EnquiryService) invalidateUnclaimedCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, unclaimedCacheKey).Err(); err != nil {
		s.logger.Debug("unclaimed cache invalidation failed", zap.Error(err))
	}
}

func (s *EnquiryService) publish(ctx context.Context, eventType events.EventType, enquiryID int64, payload any) {
	if s.dispatcher == nil {
		return
	}
	event := events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		EnquiryID: enquiryID,
		Timestamp: time.Now(),
		Payload:   payload,
	}
	_ = s.dispatcher.Publish(ctx, event)
}
