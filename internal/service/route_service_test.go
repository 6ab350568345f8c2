package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alimehmetoglu-sipsy/frigya-sub000/internal/models"
	appErrors "github.com/alimehmetoglu-sipsy/frigya-sub000/pkg/errors"
)

type fakeRouteRepo struct {
	seeded []models.Route
	routes []models.Route
	bySlug *models.Route
	err    error
}

func (r *fakeRouteRepo) Seed(_ context.Context, routes []models.Route) error {
	r.seeded = routes
	return r.err
}

func (r *fakeRouteRepo) List(_ context.Context) ([]models.Route, error) {
	return r.routes, r.err
}

func (r *fakeRouteRepo) FindBySlug(_ context.Context, _ string) (*models.Route, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.bySlug, nil
}

func TestRouteServiceSeed(t *testing.T) {
	repo := &fakeRouteRepo{}
	svc := NewRouteService(repo, nil, nil)

	require.NoError(t, svc.Seed(context.Background()))
	assert.Equal(t, DefaultRoutes(), repo.seeded)
}

func TestRouteServiceGetNotFound(t *testing.T) {
	repo := &fakeRouteRepo{err: sql.ErrNoRows}
	svc := NewRouteService(repo, nil, nil)

	_, err := svc.Get(context.Background(), "atlantis")
	appErr := asAppError(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestDefaultRoutes(t *testing.T) {
	routes := DefaultRoutes()
	require.Len(t, routes, 4)

	slugs := make(map[string]models.Route, len(routes))
	var total float64
	for _, r := range routes {
		slugs[r.Slug] = r
		assert.NotEmpty(t, r.Name)
		assert.NotEmpty(t, r.Markers)
		if r.Slug != "full-trail" {
			total += r.DistanceKm
		}
	}

	full, ok := slugs["full-trail"]
	require.True(t, ok)
	assert.Equal(t, full.DistanceKm, total, "branch distances sum to the full trail")
}
