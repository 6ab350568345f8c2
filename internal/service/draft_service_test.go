package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/alimehmetoglu-sipsy/frigya-sub000/pkg/errors"
)

type fakeDraftStore struct {
	drafts map[string]string
	err    error
}

func newFakeDraftStore() *fakeDraftStore {
	return &fakeDraftStore{drafts: make(map[string]string)}
}

func (s *fakeDraftStore) Get(_ context.Context, sessionID string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	raw, ok := s.drafts[sessionID]
	if !ok {
		return "", appErrors.ErrCacheMiss
	}
	return raw, nil
}

func (s *fakeDraftStore) Set(_ context.Context, sessionID, raw string) error {
	if s.err != nil {
		return s.err
	}
	s.drafts[sessionID] = raw
	return nil
}

func (s *fakeDraftStore) Delete(_ context.Context, sessionID string) error {
	if s.err != nil {
		return s.err
	}
	delete(s.drafts, sessionID)
	return nil
}

func TestDraftServiceSaveAndLoad(t *testing.T) {
	store := newFakeDraftStore()
	svc := NewDraftService(store, nil, nil)

	raw := []byte(`{"version":1,"draft":{"firstName":"Elif"},"lastStep":2}`)
	require.NoError(t, svc.Save(context.Background(), "sess-1", raw))

	loaded, err := svc.Load(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, raw, []byte(loaded))
}

func TestDraftServiceSaveRejectsVersionMismatch(t *testing.T) {
	svc := NewDraftService(newFakeDraftStore(), nil, nil)

	err := svc.Save(context.Background(), "sess-1", []byte(`{"version":2,"draft":{}}`))
	appErr := asAppError(t, err)
	assert.Equal(t, "Unsupported draft version", appErr.Fields["version"])
}

func TestDraftServiceSaveRejectsBadInput(t *testing.T) {
	svc := NewDraftService(newFakeDraftStore(), nil, nil)
	ctx := context.Background()

	err := svc.Save(ctx, "", []byte(`{"version":1}`))
	assert.Contains(t, asAppError(t, err).Fields, "session_id")

	err = svc.Save(ctx, "sess-1", nil)
	assert.Contains(t, asAppError(t, err).Fields, "draft")

	err = svc.Save(ctx, "sess-1", []byte("{broken"))
	assert.Contains(t, asAppError(t, err).Fields, "draft")

	oversized := append([]byte(`{"version":1,"draft":"`), bytes.Repeat([]byte("x"), maxDraftBytes)...)
	err = svc.Save(ctx, "sess-1", append(oversized, []byte(`"}`)...))
	assert.Equal(t, "Draft body is too large", asAppError(t, err).Fields["draft"])
}

func TestDraftServiceLoadMissing(t *testing.T) {
	svc := NewDraftService(newFakeDraftStore(), nil, nil)

	_, err := svc.Load(context.Background(), "sess-unknown")
	appErr := asAppError(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestDraftServiceDiscard(t *testing.T) {
	store := newFakeDraftStore()
	svc := NewDraftService(store, nil, nil)

	require.NoError(t, svc.Save(context.Background(), "sess-1", []byte(`{"version":1}`)))
	require.NoError(t, svc.Discard(context.Background(), "sess-1"))

	_, err := svc.Load(context.Background(), "sess-1")
	assert.Error(t, err)

	require.NoError(t, svc.Discard(context.Background(), "sess-1"), "discarding an absent draft is not an error")
}
