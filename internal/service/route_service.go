package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/alimehmetoglu-sipsy/frigya-sub000/internal/models"
	appErrors "github.com/alimehmetoglu-sipsy/frigya-sub000/pkg/errors"
)

// routeRepository describes the persistence layer required by RouteService.
type routeRepository interface {
	Seed(ctx context.Context, routes []models.Route) error
	List(ctx context.Context) ([]models.Route, error)
	FindBySlug(ctx context.Context, slug string) (*models.Route, error)
}

// RouteService serves the static trail catalog shown alongside the form.
type RouteService struct {
	repo    routeRepository
	metrics *MetricsService
	logger  *zap.Logger
}

// NewRouteService constructs a RouteService instance.
func NewRouteService(repo routeRepository, metrics *MetricsService, logger *zap.Logger) *RouteService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RouteService{repo: repo, metrics: metrics, logger: logger}
}

// Seed inserts the built-in trail sections, skipping slugs that already
// exist. Safe to run on every startup.
func (s *RouteService) Seed(ctx context.Context) error {
	if err := s.repo.Seed(ctx, DefaultRoutes()); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to seed routes")
	}
	s.logger.Info("trail catalog seeded", zap.Int("routes", len(DefaultRoutes())))
	return nil
}

// List returns every trail section ordered by name.
func (s *RouteService) List(ctx context.Context) ([]models.Route, error) {
	start := time.Now()
	routes, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list routes")
	}
	s.metrics.ObserveDBQuery("route_list", time.Since(start))
	return routes, nil
}

// Get returns a trail section by slug.
func (s *RouteService) Get(ctx context.Context, slug string) (*models.Route, error) {
	route, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if isNoRows(err) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "route not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load route")
	}
	return route, nil
}

// DefaultRoutes is the built-in Phrygian Way catalog. The three branches
// meet at Yazilikaya; the full trail walks all of them.
func DefaultRoutes() []models.Route {
	return []models.Route{
		{
			Slug:        "full-trail",
			Name:        "Phrygian Way Full Trail",
			Description: "The complete 506 km network from Gordion to Seydiler, joining all three branches at Yazilikaya, the heart of the Phrygian highlands.",
			DistanceKm:  506,
			Difficulty:  models.DifficultyHard,
			Markers: models.MarkerList{
				{Name: "Gordion", Latitude: 39.6555, Longitude: 31.9930, Kind: "trailhead"},
				{Name: "Yazilikaya (Midas City)", Latitude: 39.0252, Longitude: 30.3910, Kind: "landmark"},
				{Name: "Seydiler", Latitude: 38.4891, Longitude: 30.5447, Kind: "trailhead"},
			},
		},
		{
			Slug:        "eastern-route",
			Name:        "Eastern Route",
			Description: "From Gordion through the Sivrihisar mountains to Yazilikaya. Roughly 219 km of steppe, rock-cut monuments and shepherd villages.",
			DistanceKm:  219,
			Difficulty:  models.DifficultyModerate,
			Markers: models.MarkerList{
				{Name: "Gordion", Latitude: 39.6555, Longitude: 31.9930, Kind: "trailhead"},
				{Name: "Pessinus", Latitude: 39.3311, Longitude: 31.5809, Kind: "landmark"},
				{Name: "Yazilikaya (Midas City)", Latitude: 39.0252, Longitude: 30.3910, Kind: "trailhead"},
			},
		},
		{
			Slug:        "southern-route",
			Name:        "Southern Route",
			Description: "From Seydiler past the Afyonkarahisar rock churches to Yazilikaya. About 140 km through fairy-chimney valleys.",
			DistanceKm:  140,
			Difficulty:  models.DifficultyModerate,
			Markers: models.MarkerList{
				{Name: "Seydiler", Latitude: 38.4891, Longitude: 30.5447, Kind: "trailhead"},
				{Name: "Ayazini", Latitude: 38.9817, Longitude: 30.6534, Kind: "landmark"},
				{Name: "Yazilikaya (Midas City)", Latitude: 39.0252, Longitude: 30.3910, Kind: "trailhead"},
			},
		},
		{
			Slug:        "western-route",
			Name:        "Western Route",
			Description: "From Yenice Ciftligi near Kutahya to Yazilikaya. Around 147 km of pine forest and the gentlest grades on the network.",
			DistanceKm:  147,
			Difficulty:  models.DifficultyEasy,
			Markers: models.MarkerList{
				{Name: "Yenice Ciftligi", Latitude: 39.3571, Longitude: 30.0867, Kind: "trailhead"},
				{Name: "Zahran Valley", Latitude: 39.2110, Longitude: 30.2413, Kind: "landmark"},
				{Name: "Yazilikaya (Midas City)", Latitude: 39.0252, Longitude: 30.3910, Kind: "trailhead"},
			},
		},
	}
}
