package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/alimehmetoglu-sipsy/frigya-sub000/internal/models"
)

const routeColumns = `id, slug, name, description, distance_km, difficulty, gpx_data, markers, created_at, updated_at`

// RouteRepository provides read-mostly access to the trail catalog.
type RouteRepository struct {
	db *sqlx.DB
}

// NewRouteRepository creates a new instance of RouteRepository.
func NewRouteRepository(db *sqlx.DB) *RouteRepository {
	return &RouteRepository{db: db}
}

// Seed inserts catalog entries, silently skipping slugs that already exist.
// Only this path ignores the unique constraint; regular creates propagate it.
func (r *RouteRepository) Seed(ctx context.Context, routes []models.Route) error {
	const query = `INSERT OR IGNORE INTO routes (id, slug, name, description, distance_km, difficulty, gpx_data, markers, created_at, updated_at)
		VALUES (:id, :slug, :name, :description, :distance_km, :difficulty, :gpx_data, :markers, :created_at, :updated_at)`

	now := time.Now().UTC()
	for i := range routes {
		route := routes[i]
		if route.ID == "" {
			route.ID = uuid.NewString()
		}
		route.CreatedAt = now
		route.UpdatedAt = now
		if _, err := r.db.NamedExecContext(ctx, query, route); err != nil {
			return fmt.Errorf("seed route %s: %w", route.Slug, err)
		}
	}
	return nil
}

// List returns all catalog entries ordered by name.
func (r *RouteRepository) List(ctx context.Context) ([]models.Route, error) {
	query := fmt.Sprintf(`SELECT %s FROM routes ORDER BY name ASC`, routeColumns)
	var routes []models.Route
	if err := r.db.SelectContext(ctx, &routes, query); err != nil {
		return nil, fmt.Errorf("list routes: %w", err)
	}
	return routes, nil
}

// FindBySlug returns a catalog entry by its slug.
func (r *RouteRepository) FindBySlug(ctx context.Context, slug string) (*models.Route, error) {
	query := fmt.Sprintf(`SELECT %s FROM routes WHERE slug = ? LIMIT 1`, routeColumns)
	var route models.Route
	if err := r.db.GetContext(ctx, &route, query, slug); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find route by slug: %w", err)
	}
	return &route, nil
}
