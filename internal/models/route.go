package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// RouteDifficulty grades a trail section.
type RouteDifficulty string

const (
	DifficultyEasy     RouteDifficulty = "easy"
	DifficultyModerate RouteDifficulty = "moderate"
	DifficultyHard     RouteDifficulty = "hard"
	DifficultyExpert   RouteDifficulty = "expert"
)

// Marker is a point of interest rendered on the interactive map.
type Marker struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	Kind      string  `json:"kind"`
}

// MarkerList stores route markers as a JSON array column.
type MarkerList []Marker

// Value implements driver.Valuer.
func (l MarkerList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *MarkerList) Scan(src interface{}) error {
	if src == nil {
		*l = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into MarkerList", src)
	}
}

// Route is static descriptive metadata for a trail or trail segment.
// Read-mostly; seeded once at startup, never mutated by the registration flow.
type Route struct {
	ID          string          `db:"id" json:"id"`
	Slug        string          `db:"slug" json:"slug"`
	Name        string          `db:"name" json:"name"`
	Description string          `db:"description" json:"description"`
	DistanceKm  float64         `db:"distance_km" json:"distance_km"`
	Difficulty  RouteDifficulty `db:"difficulty" json:"difficulty"`
	GPXData     *string         `db:"gpx_data" json:"gpx_data,omitempty"`
	Markers     MarkerList      `db:"markers" json:"markers"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}
