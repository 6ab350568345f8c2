package service

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"github.com/alimehmetoglu-sipsy/frigya-sub000/internal/form"
	appErrors "github.com/alimehmetoglu-sipsy/frigya-sub000/pkg/errors"
)

// maxDraftBytes caps stored drafts; a legitimate draft is a few kilobytes.
const maxDraftBytes = 64 * 1024

// draftStore is the keyed blob storage behind DraftService.
type draftStore interface {
	Get(ctx context.Context, sessionID string) (string, error)
	Set(ctx context.Context, sessionID, raw string) error
	Delete(ctx context.Context, sessionID string) error
}

// DraftService syncs in-progress drafts keyed by session so a hiker can
// resume on another device. The draft body is stored opaquely; only the
// envelope version is inspected, matching the form's own rehydration rule
// that a version mismatch discards rather than merges.
type DraftService struct {
	store   draftStore
	metrics *MetricsService
	logger  *zap.Logger
}

// NewDraftService constructs a DraftService instance.
func NewDraftService(store draftStore, metrics *MetricsService, logger *zap.Logger) *DraftService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DraftService{store: store, metrics: metrics, logger: logger}
}

// Save stores the raw draft envelope for the session after checking its
// version tag.
func (s *DraftService) Save(ctx context.Context, sessionID string, raw []byte) error {
	if sessionID == "" {
		return appErrors.Validation(map[string]string{"session_id": "This field is required"})
	}
	if len(raw) == 0 {
		return appErrors.Validation(map[string]string{"draft": "Draft body is empty"})
	}
	if len(raw) > maxDraftBytes {
		return appErrors.Validation(map[string]string{"draft": "Draft body is too large"})
	}

	var head struct {
		Version int `json:"version"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return appErrors.Validation(map[string]string{"draft": "Draft body is not valid JSON"})
	}
	if head.Version != form.DraftVersion {
		return appErrors.Validation(map[string]string{"version": "Unsupported draft version"})
	}

	if err := s.store.Set(ctx, sessionID, string(raw)); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store draft")
	}
	s.metrics.IncDraftSync("save")
	return nil
}

// Load returns the stored draft envelope for the session.
func (s *DraftService) Load(ctx context.Context, sessionID string) (json.RawMessage, error) {
	if sessionID == "" {
		return nil, appErrors.Validation(map[string]string{"session_id": "This field is required"})
	}

	raw, err := s.store.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, appErrors.ErrCacheMiss) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "no draft for session")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load draft")
	}
	s.metrics.IncDraftSync("load")
	return json.RawMessage(raw), nil
}

// Discard removes the stored draft for the session. Removing an absent
// draft is not an error.
func (s *DraftService) Discard(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return appErrors.Validation(map[string]string{"session_id": "This field is required"})
	}
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to discard draft")
	}
	s.metrics.IncDraftSync("discard")
	return nil
}
