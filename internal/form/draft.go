// Package form implements the four-step trail registration form: a single
// controller owning the in-progress draft, per-step validation, local draft
// autosave and best-effort analytics emission. Persistence and transport are
// injected so the controller stays testable offline.
package form

import (
	"encoding/json"
	"fmt"
)

// DraftVersion tags persisted drafts. Rehydration discards stored drafts
// whose version does not match, instead of merging naively.
const DraftVersion = 1

// DraftKey is the well-known local storage key for the autosaved draft.
const DraftKey = "phrygian_way_registration_draft"

// NoneSentinel marks the explicit "none" choice in the medical and dietary
// sets; it is mutually exclusive with every other value.
const NoneSentinel = "none"

// EmergencyContact mirrors the persisted contact structure.
type EmergencyContact struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

// Draft is the in-memory representation of a prospective hiker's application
// before submission. Field names follow the local-draft wire shape.
type Draft struct {
	InterestedIn        string           `json:"interestedIn"`
	Timeframe           string           `json:"timeframe"`
	GroupType           string           `json:"groupType"`
	FirstName           string           `json:"firstName"`
	LastName            string           `json:"lastName"`
	Email               string           `json:"email"`
	Phone               string           `json:"phone"`
	Country             string           `json:"country"`
	Age                 *int             `json:"age,omitempty"`
	EmergencyContact    EmergencyContact `json:"emergencyContact"`
	FitnessLevel        int              `json:"fitnessLevel"`
	HikingExperience    string           `json:"hikingExperience"`
	LongestHike         float64          `json:"longestHike"`
	MedicalConditions   []string         `json:"medicalConditions"`
	DietaryRequirements []string         `json:"dietaryRequirements"`
	SpecialNeeds        string           `json:"specialNeeds"`
	PreferredDates      []string         `json:"preferredDates"`
	Motivation          string           `json:"motivation"`
	Goals               []string         `json:"goals"`
	HowDidYouHear       string           `json:"howDidYouHear"`
	Newsletter          bool             `json:"newsletter"`
	TermsAccepted       bool             `json:"termsAccepted"`
	DataProcessing      bool             `json:"dataProcessing"`
}

// NewDraft returns a draft with the documented field defaults.
func NewDraft() Draft {
	return Draft{
		GroupType:           "solo",
		FitnessLevel:        3,
		HikingExperience:    "day_hikes",
		MedicalConditions:   []string{NoneSentinel},
		DietaryRequirements: []string{NoneSentinel},
		Newsletter:          true,
	}
}

// envelope is the persisted autosave shape: the full draft plus the step the
// hiker last had open.
type envelope struct {
	Version  int   `json:"version"`
	Draft    Draft `json:"draft"`
	LastStep int   `json:"lastStep"`
}

func encodeEnvelope(d Draft, step int) (string, error) {
	raw, err := json.Marshal(envelope{Version: DraftVersion, Draft: d, LastStep: step})
	if err != nil {
		return "", fmt.Errorf("encode draft: %w", err)
	}
	return string(raw), nil
}

func decodeEnvelope(raw string) (*envelope, error) {
	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return nil, fmt.Errorf("decode draft: %w", err)
	}
	if env.Version != DraftVersion {
		return nil, fmt.Errorf("draft version %d does not match %d", env.Version, DraftVersion)
	}
	return &env, nil
}
