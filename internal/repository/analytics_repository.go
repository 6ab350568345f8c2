package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/alimehmetoglu-sipsy/frigya-sub000/internal/models"
)

// AnalyticsRepository appends form interaction events and aggregates them
// for funnel reporting. Events are never updated or deleted.
type AnalyticsRepository struct {
	db *sqlx.DB
}

// NewAnalyticsRepository instantiates the repository.
func NewAnalyticsRepository(db *sqlx.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// Insert appends one event row.
func (r *AnalyticsRepository) Insert(ctx context.Context, event *models.AnalyticsEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	const query = `INSERT INTO analytics_events (id, event_type, event_data, session_id, user_id, ip_address, user_agent, referrer, created_at)
		VALUES (:id, :event_type, :event_data, :session_id, :user_id, :ip_address, :user_agent, :referrer, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, event); err != nil {
		return fmt.Errorf("insert analytics event: %w", err)
	}
	return nil
}

// FunnelSummary aggregates per-type event counts and distinct session
// progression between form start and submission.
func (r *AnalyticsRepository) FunnelSummary(ctx context.Context) (*models.FunnelSummary, error) {
	type countRow struct {
		EventType models.EventType `db:"event_type"`
		Count     int              `db:"count"`
	}

	var counts []countRow
	if err := r.db.SelectContext(ctx, &counts,
		`SELECT event_type, COUNT(*) AS count FROM analytics_events GROUP BY event_type`); err != nil {
		return nil, fmt.Errorf("count analytics events: %w", err)
	}

	summary := &models.FunnelSummary{
		EventCounts: make(map[models.EventType]int, len(counts)),
		GeneratedAt: time.Now().UTC(),
	}
	for _, row := range counts {
		summary.EventCounts[row.EventType] = row.Count
	}

	if err := r.db.GetContext(ctx, &summary.SessionsStarted,
		`SELECT COUNT(DISTINCT session_id) FROM analytics_events WHERE event_type = ?`,
		models.EventFormStarted); err != nil {
		return nil, fmt.Errorf("count started sessions: %w", err)
	}

	if err := r.db.GetContext(ctx, &summary.SessionsSubmitted,
		`SELECT COUNT(DISTINCT session_id) FROM analytics_events WHERE event_type = ?`,
		models.EventFormSubmitted); err != nil {
		return nil, fmt.Errorf("count submitted sessions: %w", err)
	}

	return summary, nil
}
