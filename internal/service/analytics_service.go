package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/alimehmetoglu-sipsy/frigya-sub000/internal/dto"
	"github.com/alimehmetoglu-sipsy/frigya-sub000/internal/models"
	"github.com/alimehmetoglu-sipsy/frigya-sub000/pkg/clientinfo"
	"github.com/alimehmetoglu-sipsy/frigya-sub000/pkg/config"
	appErrors "github.com/alimehmetoglu-sipsy/frigya-sub000/pkg/errors"
	"github.com/alimehmetoglu-sipsy/frigya-sub000/pkg/jobs"
)

// funnelCacheKey stores the cached funnel summary.
const funnelCacheKey = "analytics:funnel"

// analyticsEventRepository describes the persistence layer required by AnalyticsService.
type analyticsEventRepository interface {
	Insert(ctx context.Context, event *models.AnalyticsEvent) error
	FunnelSummary(ctx context.Context) (*models.FunnelSummary, error)
}

// funnelCache is the cache surface used for funnel reports.
type funnelCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// ClientMeta carries request-derived enrichment attached to every event.
type ClientMeta struct {
	IP        string
	UserAgent string
	Referrer  string
}

// AnalyticsService ingests form interaction events and serves funnel
// aggregates. Writes go through an in-memory queue so intake never blocks
// on the database; the endpoint acknowledges before the row lands.
type AnalyticsService struct {
	repo      analyticsEventRepository
	cache     funnelCache
	metrics   *MetricsService
	queue     *jobs.Queue
	validator *validator.Validate
	logger    *zap.Logger
	cfg       config.AnalyticsConfig
}

// NewAnalyticsService constructs the analytics service and its write queue.
// Start must be called before events are accepted.
func NewAnalyticsService(repo analyticsEventRepository, cache funnelCache, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger, cfg config.AnalyticsConfig) *AnalyticsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = NewValidator()
	}
	s := &AnalyticsService{
		repo:      repo,
		cache:     cache,
		metrics:   metrics,
		validator: validate,
		logger:    logger,
		cfg:       cfg,
	}
	s.queue = jobs.NewQueue("analytics-events", s.persistEvent, jobs.QueueConfig{
		Workers:    2,
		BufferSize: 256,
		Logger:     logger,
	})
	return s
}

// Start launches the write workers.
func (s *AnalyticsService) Start(ctx context.Context) {
	s.queue.Start(ctx)
}

// Stop drains the write workers.
func (s *AnalyticsService) Stop() {
	s.queue.Stop()
}

// Record validates and enqueues a tracked event. Unknown event types are
// rejected; everything else is accepted immediately and persisted by a
// worker. When the queue is unavailable the event is written inline.
func (s *AnalyticsService) Record(ctx context.Context, req dto.AnalyticsEventRequest, meta ClientMeta) error {
	if !s.cfg.Enabled {
		return nil
	}

	if err := s.validator.Struct(req); err != nil {
		return appErrors.Validation(validationFields(err, nil))
	}
	if _, known := models.KnownEventTypes[models.EventType(req.EventType)]; !known {
		return appErrors.Validation(map[string]string{"event_type": "Unknown event type"})
	}
	if req.SessionID == "" {
		return appErrors.Validation(map[string]string{"session_id": "This field is required"})
	}

	data := make(models.JSONMap, len(req.EventData)+1)
	for k, v := range req.EventData {
		data[k] = v
	}
	if meta.UserAgent != "" {
		data["device"] = clientinfo.ParseUserAgent(meta.UserAgent)
	}

	event := &models.AnalyticsEvent{
		ID:        uuid.NewString(),
		EventType: models.EventType(req.EventType),
		EventData: data,
		SessionID: req.SessionID,
		UserID:    req.UserID,
		IPAddress: meta.IP,
		UserAgent: meta.UserAgent,
		Referrer:  req.Referrer,
		CreatedAt: time.Now().UTC(),
	}
	if event.Referrer == "" {
		event.Referrer = meta.Referrer
	}

	if err := s.queue.Enqueue(jobs.Job{ID: event.ID, Type: req.EventType, Payload: event}); err != nil {
		s.logger.Warn("analytics queue unavailable, writing inline", zap.Error(err))
		if err := s.repo.Insert(ctx, event); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record event")
		}
	}

	s.metrics.IncFormEvent(req.EventType)
	return nil
}

// RecordSubmission appends the server-side form_submitted fact after a
// successful registration. Failures are logged, never surfaced; a lost
// analytics row must not fail a submission.
func (s *AnalyticsService) RecordSubmission(ctx context.Context, sessionID string, reg *models.Registration, meta ClientMeta) {
	err := s.Record(ctx, dto.AnalyticsEventRequest{
		EventType: string(models.EventFormSubmitted),
		EventData: map[string]interface{}{"registrationId": reg.ID},
		SessionID: sessionID,
	}, meta)
	if err != nil {
		s.logger.Warn("record submission event", zap.String("registration_id", reg.ID), zap.Error(err))
	}
}

// Funnel returns the aggregated funnel summary. The boolean indicates
// whether data originated from cache.
func (s *AnalyticsService) Funnel(ctx context.Context) (*models.FunnelSummary, bool, error) {
	if s.cache != nil {
		var cached models.FunnelSummary
		err := s.cache.Get(ctx, funnelCacheKey, &cached)
		switch {
		case err == nil:
			s.metrics.RecordCacheLookup(true)
			return &cached, true, nil
		case errors.Is(err, appErrors.ErrCacheMiss):
			s.metrics.RecordCacheLookup(false)
		default:
			s.logger.Warn("funnel cache lookup", zap.Error(err))
		}
	}

	start := time.Now()
	summary, err := s.repo.FunnelSummary(ctx)
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to aggregate funnel")
	}
	s.metrics.ObserveDBQuery("analytics_funnel", time.Since(start))

	if s.cache != nil {
		if err := s.cache.Set(ctx, funnelCacheKey, summary, s.cfg.CacheTTL); err != nil {
			s.logger.Warn("cache funnel summary", zap.Error(err))
		}
	}
	return summary, false, nil
}

func (s *AnalyticsService) persistEvent(ctx context.Context, job jobs.Job) error {
	event, ok := job.Payload.(*models.AnalyticsEvent)
	if !ok {
		return fmt.Errorf("unexpected analytics job payload %T", job.Payload)
	}
	start := time.Now()
	if err := s.repo.Insert(ctx, event); err != nil {
		return err
	}
	s.metrics.ObserveDBQuery("analytics_insert", time.Since(start))
	return nil
}
