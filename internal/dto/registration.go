package dto

import (
	"strings"

	"github.com/alimehmetoglu-sipsy/frigya-sub000/internal/models"
)

// EmergencyContact is the wire shape of the optional emergency contact block.
type EmergencyContact struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

// SubmissionRequest is the registration intake payload. Structural rules are
// enforced through validator tags; the word count and email shape checks live
// in the registration service because they mirror the client-side form rules.
type SubmissionRequest struct {
	InterestedIn        string            `json:"interested_in" validate:"required,oneof=full_trail eastern southern western undecided"`
	Timeframe           string            `json:"timeframe" validate:"required,oneof=next_3_months 3_6_months 6_12_months just_exploring"`
	GroupType           string            `json:"group_type" validate:"required,oneof=solo couple friends family organized"`
	FirstName           string            `json:"first_name" validate:"required,min=2"`
	LastName            string            `json:"last_name" validate:"required,min=2"`
	Email               string            `json:"email" validate:"required"`
	Phone               string            `json:"phone" validate:"required,min=10"`
	Country             string            `json:"country"`
	Age                 *int              `json:"age" validate:"omitempty,gte=18,lte=75"`
	EmergencyContact    *EmergencyContact `json:"emergency_contact"`
	FitnessLevel        int               `json:"fitness_level" validate:"required,gte=1,lte=5"`
	HikingExperience    string            `json:"hiking_experience" validate:"required,oneof=none day_hikes multi_day expert"`
	LongestHike         float64           `json:"longest_hike" validate:"gte=0"`
	MedicalConditions   []string          `json:"medical_conditions"`
	DietaryRequirements []string          `json:"dietary_requirements"`
	SpecialNeeds        string            `json:"special_needs"`
	PreferredDates      []string          `json:"preferred_dates"`
	Motivation          string            `json:"motivation" validate:"required"`
	Goals               []string          `json:"goals" validate:"required,min=1"`
	HowDidYouHear       string            `json:"how_did_you_hear" validate:"required"`
	Newsletter          bool              `json:"newsletter"`
	TermsAccepted       bool              `json:"terms_accepted"`
	DataProcessing      bool              `json:"data_processing"`
}

// NormalizedEmail returns the email trimmed and lowercased. Deduplication of
// registrants keys on this form.
func (r SubmissionRequest) NormalizedEmail() string {
	return strings.ToLower(strings.TrimSpace(r.Email))
}

// ToModels maps the request into the persistence models. The registration is
// returned without a user_id; the repository resolves or creates the user
// inside the submission transaction.
func (r SubmissionRequest) ToModels() (*models.User, *models.Registration) {
	user := &models.User{
		Email:     r.NormalizedEmail(),
		FirstName: strings.TrimSpace(r.FirstName),
		LastName:  strings.TrimSpace(r.LastName),
		Phone:     strings.TrimSpace(r.Phone),
		Country:   strings.TrimSpace(r.Country),
		Age:       r.Age,
	}
	if r.EmergencyContact != nil {
		user.EmergencyContact = &models.EmergencyContact{
			Name:         r.EmergencyContact.Name,
			Phone:        r.EmergencyContact.Phone,
			Relationship: r.EmergencyContact.Relationship,
		}
	}

	reg := &models.Registration{
		Status:              models.StatusPending,
		Step:                4,
		InterestedIn:        models.TrailInterest(r.InterestedIn),
		Timeframe:           models.Timeframe(r.Timeframe),
		GroupType:           models.GroupType(r.GroupType),
		FitnessLevel:        r.FitnessLevel,
		HikingExperience:    models.HikingExperience(r.HikingExperience),
		LongestHike:         r.LongestHike,
		MedicalConditions:   models.StringList(r.MedicalConditions),
		DietaryRequirements: models.StringList(r.DietaryRequirements),
		SpecialNeeds:        r.SpecialNeeds,
		PreferredDates:      models.StringList(r.PreferredDates),
		Motivation:          r.Motivation,
		Goals:               models.StringList(r.Goals),
		HowDidYouHear:       r.HowDidYouHear,
		Newsletter:          r.Newsletter,
		TermsAccepted:       r.TermsAccepted,
		DataProcessing:      r.DataProcessing,
	}

	return user, reg
}

// SubmissionResponse is the body returned on successful intake.
type SubmissionResponse struct {
	RegistrationID string `json:"registration_id"`
}
