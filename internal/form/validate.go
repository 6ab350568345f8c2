package form

import (
	"regexp"
	"strings"
)

// MinMotivationWords gates the step-4 motivation text.
const MinMotivationWords = 50

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// CountWords counts whitespace-separated words, excluding empty tokens.
func CountWords(s string) int {
	return len(strings.Fields(s))
}

// ValidEmail reports whether the value matches the email shape used by both
// the form and the intake endpoint.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidateStep evaluates the named step's rules against the draft and
// returns an error map keyed by field name. An empty map means the step
// passes. The function is pure; it never mutates the draft.
func ValidateStep(d Draft, step int) map[string]string {
	errs := make(map[string]string)

	switch step {
	case StepInterest:
		if d.InterestedIn == "" {
			errs["interestedIn"] = "Please select a trail section"
		}
		if d.Timeframe == "" {
			errs["timeframe"] = "Please select a timeframe"
		}
		if d.GroupType == "" {
			errs["groupType"] = "Please select a group type"
		}

	case StepPersonal:
		if len(d.FirstName) < 2 {
			errs["firstName"] = "First name must be at least 2 characters"
		}
		if len(d.LastName) < 2 {
			errs["lastName"] = "Last name must be at least 2 characters"
		}
		if !emailPattern.MatchString(d.Email) {
			errs["email"] = "Please enter a valid email address"
		}
		if len(d.Phone) < 10 {
			errs["phone"] = "Phone number must be at least 10 digits"
		}
		if d.Age != nil && (*d.Age < 18 || *d.Age > 75) {
			errs["age"] = "Age must be between 18 and 75"
		}

	case StepExperience:
		if d.FitnessLevel == 0 {
			errs["fitnessLevel"] = "Please rate your fitness level"
		}
		if d.HikingExperience == "" {
			errs["hikingExperience"] = "Please select your hiking experience"
		}

	case StepMotivation:
		if CountWords(d.Motivation) < MinMotivationWords {
			errs["motivation"] = "Please write at least 50 words about your motivation"
		}
		if len(d.Goals) == 0 {
			errs["goals"] = "Please select at least one goal"
		}
		if d.HowDidYouHear == "" {
			errs["howDidYouHear"] = "Please tell us how you heard about the trail"
		}
		if !d.TermsAccepted {
			errs["termsAccepted"] = "You must accept the terms and conditions"
		}
		if !d.DataProcessing {
			errs["dataProcessing"] = "You must consent to data processing"
		}
	}

	return errs
}
