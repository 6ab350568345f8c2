package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	appErrors "github.com/alimehmetoglu-sipsy/frigya-sub000/pkg/errors"
)

// DraftRepository stores in-progress form drafts server-side, keyed by
// session, so a hiker can resume on another device. Entries expire after the
// configured TTL; abandoned drafts are not kept forever.
type DraftRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDraftRepository instantiates the repository.
func NewDraftRepository(client *redis.Client, ttl time.Duration) *DraftRepository {
	return &DraftRepository{client: client, ttl: ttl}
}

func draftKey(sessionID string) string {
	return "draft:" + sessionID
}

// Get returns the raw stored draft blob for a session.
func (r *DraftRepository) Get(ctx context.Context, sessionID string) (string, error) {
	raw, err := r.client.Get(ctx, draftKey(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", appErrors.ErrCacheMiss
		}
		return "", fmt.Errorf("get draft: %w", err)
	}
	return raw, nil
}

// Set stores the raw draft blob for a session, refreshing the TTL.
func (r *DraftRepository) Set(ctx context.Context, sessionID, raw string) error {
	if err := r.client.Set(ctx, draftKey(sessionID), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("set draft: %w", err)
	}
	return nil
}

// Delete removes the stored draft for a session.
func (r *DraftRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, draftKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}
