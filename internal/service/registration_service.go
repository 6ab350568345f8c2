package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/alimehmetoglu-sipsy/frigya-sub000/internal/dto"
	"github.com/alimehmetoglu-sipsy/frigya-sub000/internal/form"
	"github.com/alimehmetoglu-sipsy/frigya-sub000/internal/models"
	appErrors "github.com/alimehmetoglu-sipsy/frigya-sub000/pkg/errors"
)

// submissionRepository describes the persistence layer required by RegistrationService.
type submissionRepository interface {
	CreateSubmission(ctx context.Context, user *models.User, reg *models.Registration) (*models.Registration, error)
	FindByID(ctx context.Context, id string) (*models.Registration, error)
	List(ctx context.Context, filter models.RegistrationFilter) ([]models.RegistrationRow, int, error)
}

// draftDiscarder clears the server-side draft copy once a submission lands.
type draftDiscarder interface {
	Discard(ctx context.Context, sessionID string) error
}

// RegistrationService validates and persists trail applications. The rule
// table mirrors the form's per-step checks so a payload that passed the
// client cannot fail here for a different reason.
type RegistrationService struct {
	repo      submissionRepository
	analytics *AnalyticsService
	drafts    draftDiscarder
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewRegistrationService constructs a RegistrationService instance.
func NewRegistrationService(repo submissionRepository, analytics *AnalyticsService, drafts draftDiscarder, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *RegistrationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = NewValidator()
	}
	return &RegistrationService{
		repo:      repo,
		analytics: analytics,
		drafts:    drafts,
		metrics:   metrics,
		validator: validate,
		logger:    logger,
	}
}

// Submit validates the payload, persists the user and registration in one
// transaction and records the submission fact. Field failures come back as
// a VALIDATION_ERROR carrying per-field messages.
func (s *RegistrationService) Submit(ctx context.Context, sessionID string, req dto.SubmissionRequest, meta ClientMeta) (*models.Registration, error) {
	if fields := s.checkSubmission(req); len(fields) > 0 {
		return nil, appErrors.Validation(fields)
	}

	user, reg := req.ToModels()

	start := time.Now()
	stored, err := s.repo.CreateSubmission(ctx, user, reg)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store registration")
	}
	s.metrics.ObserveDBQuery("registration_submit", time.Since(start))
	s.metrics.IncRegistration()

	s.logger.Info("registration submitted",
		zap.String("registration_id", stored.ID),
		zap.String("session_id", sessionID),
		zap.String("interested_in", string(stored.InterestedIn)))

	if s.analytics != nil && sessionID != "" {
		s.analytics.RecordSubmission(ctx, sessionID, stored, meta)
	}
	if s.drafts != nil && sessionID != "" {
		if err := s.drafts.Discard(ctx, sessionID); err != nil {
			s.logger.Warn("discard draft after submission", zap.String("session_id", sessionID), zap.Error(err))
		}
	}

	return stored, nil
}

// Get returns a stored registration by identifier.
func (s *RegistrationService) Get(ctx context.Context, id string) (*models.Registration, error) {
	reg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "registration not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load registration")
	}
	return reg, nil
}

// List returns registrations for the admin dashboard with the total count.
func (s *RegistrationService) List(ctx context.Context, filter models.RegistrationFilter) ([]models.RegistrationRow, int, error) {
	rows, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list registrations")
	}
	return rows, total, nil
}

// checkSubmission applies the form rule table to the wire payload, then adds
// structural failures the form never produces (unknown enum values and the
// like) from validator tags.
func (s *RegistrationService) checkSubmission(req dto.SubmissionRequest) map[string]string {
	fields := make(map[string]string)

	if req.InterestedIn == "" {
		fields["interested_in"] = "Please select a trail section"
	}
	if req.Timeframe == "" {
		fields["timeframe"] = "Please select a timeframe"
	}
	if req.GroupType == "" {
		fields["group_type"] = "Please select a group type"
	}
	if len(req.FirstName) < 2 {
		fields["first_name"] = "First name must be at least 2 characters"
	}
	if len(req.LastName) < 2 {
		fields["last_name"] = "Last name must be at least 2 characters"
	}
	if !form.ValidEmail(req.NormalizedEmail()) {
		fields["email"] = "Please enter a valid email address"
	}
	if len(req.Phone) < 10 {
		fields["phone"] = "Phone number must be at least 10 digits"
	}
	if req.Age != nil && (*req.Age < 18 || *req.Age > 75) {
		fields["age"] = "Age must be between 18 and 75"
	}
	if req.FitnessLevel == 0 {
		fields["fitness_level"] = "Please rate your fitness level"
	}
	if req.HikingExperience == "" {
		fields["hiking_experience"] = "Please select your hiking experience"
	}
	if form.CountWords(req.Motivation) < form.MinMotivationWords {
		fields["motivation"] = "Please write at least 50 words about your motivation"
	}
	if len(req.Goals) == 0 {
		fields["goals"] = "Please select at least one goal"
	}
	if req.HowDidYouHear == "" {
		fields["how_did_you_hear"] = "Please tell us how you heard about the trail"
	}
	if !req.TermsAccepted {
		fields["terms_accepted"] = "You must accept the terms and conditions"
	}
	if !req.DataProcessing {
		fields["data_processing"] = "You must consent to data processing"
	}

	if err := s.validator.Struct(req); err != nil {
		fields = validationFields(err, fields)
	}
	return fields
}
