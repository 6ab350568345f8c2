package form

// Step describes one of the four sequential screens. Step views render these
// fields and report edits upward as Patches; they own no state of their own.
type Step struct {
	Number int
	Name   string
	Fields []string
}

const (
	StepInterest   = 1
	StepPersonal   = 2
	StepExperience = 3
	StepMotivation = 4

	FirstStep = StepInterest
	LastStep  = StepMotivation
)

// Steps returns the fixed step sequence of the registration form.
func Steps() []Step {
	return []Step{
		{Number: StepInterest, Name: "interest", Fields: []string{"interestedIn", "timeframe", "groupType"}},
		{Number: StepPersonal, Name: "personal", Fields: []string{"firstName", "lastName", "email", "phone", "country", "age", "emergencyContact"}},
		{Number: StepExperience, Name: "experience", Fields: []string{"fitnessLevel", "hikingExperience", "longestHike", "medicalConditions", "dietaryRequirements", "specialNeeds"}},
		{Number: StepMotivation, Name: "motivation", Fields: []string{"motivation", "goals", "howDidYouHear", "newsletter", "termsAccepted", "dataProcessing"}},
	}
}

// Patch is a partial field set reported by a step view. Nil pointers leave
// the corresponding draft field untouched.
type Patch struct {
	InterestedIn        *string
	Timeframe           *string
	GroupType           *string
	FirstName           *string
	LastName            *string
	Email               *string
	Phone               *string
	Country             *string
	Age                 **int
	EmergencyContact    *EmergencyContact
	FitnessLevel        *int
	HikingExperience    *string
	LongestHike         *float64
	MedicalConditions   *[]string
	DietaryRequirements *[]string
	SpecialNeeds        *string
	PreferredDates      *[]string
	Motivation          *string
	Goals               *[]string
	HowDidYouHear       *string
	Newsletter          *bool
	TermsAccepted       *bool
	DataProcessing      *bool
}

func (p Patch) apply(d *Draft) {
	if p.InterestedIn != nil {
		d.InterestedIn = *p.InterestedIn
	}
	if p.Timeframe != nil {
		d.Timeframe = *p.Timeframe
	}
	if p.GroupType != nil {
		d.GroupType = *p.GroupType
	}
	if p.FirstName != nil {
		d.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		d.LastName = *p.LastName
	}
	if p.Email != nil {
		d.Email = *p.Email
	}
	if p.Phone != nil {
		d.Phone = *p.Phone
	}
	if p.Country != nil {
		d.Country = *p.Country
	}
	if p.Age != nil {
		d.Age = *p.Age
	}
	if p.EmergencyContact != nil {
		d.EmergencyContact = *p.EmergencyContact
	}
	if p.FitnessLevel != nil {
		d.FitnessLevel = *p.FitnessLevel
	}
	if p.HikingExperience != nil {
		d.HikingExperience = *p.HikingExperience
	}
	if p.LongestHike != nil {
		d.LongestHike = *p.LongestHike
	}
	if p.MedicalConditions != nil {
		d.MedicalConditions = normalizeSentinelSet(*p.MedicalConditions)
	}
	if p.DietaryRequirements != nil {
		d.DietaryRequirements = normalizeSentinelSet(*p.DietaryRequirements)
	}
	if p.SpecialNeeds != nil {
		d.SpecialNeeds = *p.SpecialNeeds
	}
	if p.PreferredDates != nil {
		d.PreferredDates = *p.PreferredDates
	}
	if p.Motivation != nil {
		d.Motivation = *p.Motivation
	}
	if p.Goals != nil {
		d.Goals = *p.Goals
	}
	if p.HowDidYouHear != nil {
		d.HowDidYouHear = *p.HowDidYouHear
	}
	if p.Newsletter != nil {
		d.Newsletter = *p.Newsletter
	}
	if p.TermsAccepted != nil {
		d.TermsAccepted = *p.TermsAccepted
	}
	if p.DataProcessing != nil {
		d.DataProcessing = *p.DataProcessing
	}
}

// normalizeSentinelSet enforces mutual exclusion between the "none" sentinel
// and any concrete values: picking a concrete value drops the sentinel, and
// the sentinel alone clears everything else.
func normalizeSentinelSet(values []string) []string {
	if len(values) <= 1 {
		return values
	}
	last := values[len(values)-1]
	if last == NoneSentinel {
		return []string{NoneSentinel}
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != NoneSentinel {
			out = append(out, v)
		}
	}
	return out
}
