package form

// SubmissionPayload is the wire shape POSTed to the registration endpoint:
// the draft renamed to snake_case with empty optional fields dropped.
type SubmissionPayload struct {
	InterestedIn        string            `json:"interested_in"`
	Timeframe           string            `json:"timeframe"`
	GroupType           string            `json:"group_type"`
	FirstName           string            `json:"first_name"`
	LastName            string            `json:"last_name"`
	Email               string            `json:"email"`
	Phone               string            `json:"phone"`
	Country             string            `json:"country,omitempty"`
	Age                 *int              `json:"age,omitempty"`
	EmergencyContact    *EmergencyContact `json:"emergency_contact,omitempty"`
	FitnessLevel        int               `json:"fitness_level"`
	HikingExperience    string            `json:"hiking_experience"`
	LongestHike         float64           `json:"longest_hike"`
	MedicalConditions   []string          `json:"medical_conditions,omitempty"`
	DietaryRequirements []string          `json:"dietary_requirements,omitempty"`
	SpecialNeeds        string            `json:"special_needs,omitempty"`
	PreferredDates      []string          `json:"preferred_dates,omitempty"`
	Motivation          string            `json:"motivation"`
	Goals               []string          `json:"goals"`
	HowDidYouHear       string            `json:"how_did_you_hear"`
	Newsletter          bool              `json:"newsletter"`
	TermsAccepted       bool              `json:"terms_accepted"`
	DataProcessing      bool              `json:"data_processing"`
}

// BuildPayload maps a draft into its submission wire shape.
func BuildPayload(d Draft) SubmissionPayload {
	p := SubmissionPayload{
		InterestedIn:        d.InterestedIn,
		Timeframe:           d.Timeframe,
		GroupType:           d.GroupType,
		FirstName:           d.FirstName,
		LastName:            d.LastName,
		Email:               d.Email,
		Phone:               d.Phone,
		Country:             d.Country,
		Age:                 d.Age,
		FitnessLevel:        d.FitnessLevel,
		HikingExperience:    d.HikingExperience,
		LongestHike:         d.LongestHike,
		MedicalConditions:   d.MedicalConditions,
		DietaryRequirements: d.DietaryRequirements,
		SpecialNeeds:        d.SpecialNeeds,
		PreferredDates:      d.PreferredDates,
		Motivation:          d.Motivation,
		Goals:               d.Goals,
		HowDidYouHear:       d.HowDidYouHear,
		Newsletter:          d.Newsletter,
		TermsAccepted:       d.TermsAccepted,
		DataProcessing:      d.DataProcessing,
	}
	if d.EmergencyContact != (EmergencyContact{}) {
		contact := d.EmergencyContact
		p.EmergencyContact = &contact
	}
	return p
}
