package models

import "time"

// TrailInterest identifies which section of the trail a hiker wants to walk.
type TrailInterest string

const (
	InterestFullTrail TrailInterest = "full_trail"
	InterestEastern   TrailInterest = "eastern"
	InterestSouthern  TrailInterest = "southern"
	InterestWestern   TrailInterest = "western"
	InterestUndecided TrailInterest = "undecided"
)

// Timeframe is the planned departure window.
type Timeframe string

const (
	TimeframeNext3Months   Timeframe = "next_3_months"
	Timeframe3To6Months    Timeframe = "3_6_months"
	Timeframe6To12Months   Timeframe = "6_12_months"
	TimeframeJustExploring Timeframe = "just_exploring"
)

// GroupType describes who the hiker is traveling with.
type GroupType string

const (
	GroupSolo      GroupType = "solo"
	GroupCouple    GroupType = "couple"
	GroupFriends   GroupType = "friends"
	GroupFamily    GroupType = "family"
	GroupOrganized GroupType = "organized"
)

// HikingExperience grades prior long-distance experience.
type HikingExperience string

const (
	ExperienceNone     HikingExperience = "none"
	ExperienceDayHikes HikingExperience = "day_hikes"
	ExperienceMultiDay HikingExperience = "multi_day"
	ExperienceExpert   HikingExperience = "expert"
)

// RegistrationStatus is the review state of a submitted application.
// Only the initial pending state is set by this system; the approval
// workflow is not implemented.
type RegistrationStatus string

const (
	StatusDraft     RegistrationStatus = "draft"
	StatusPending   RegistrationStatus = "pending"
	StatusApproved  RegistrationStatus = "approved"
	StatusRejected  RegistrationStatus = "rejected"
	StatusCancelled RegistrationStatus = "cancelled"
)

// Registration is the durable record of a submitted application. One row per
// submission; never mutated afterwards. user_id is a non-owning reference to
// an existing users row, enforced by foreign key.
type Registration struct {
	ID                  string             `db:"id" json:"id"`
	UserID              string             `db:"user_id" json:"user_id"`
	Status              RegistrationStatus `db:"status" json:"status"`
	Step                int                `db:"step" json:"step"`
	InterestedIn        TrailInterest      `db:"interested_in" json:"interested_in"`
	Timeframe           Timeframe          `db:"timeframe" json:"timeframe"`
	GroupType           GroupType          `db:"group_type" json:"group_type"`
	FitnessLevel        int                `db:"fitness_level" json:"fitness_level"`
	HikingExperience    HikingExperience   `db:"hiking_experience" json:"hiking_experience"`
	LongestHike         float64            `db:"longest_hike" json:"longest_hike"`
	MedicalConditions   StringList         `db:"medical_conditions" json:"medical_conditions"`
	DietaryRequirements StringList         `db:"dietary_requirements" json:"dietary_requirements"`
	SpecialNeeds        string             `db:"special_needs" json:"special_needs"`
	PreferredDates      StringList         `db:"preferred_dates" json:"preferred_dates"`
	Motivation          string             `db:"motivation" json:"motivation"`
	Goals               StringList         `db:"goals" json:"goals"`
	HowDidYouHear       string             `db:"how_did_you_hear" json:"how_did_you_hear"`
	Newsletter          bool               `db:"newsletter" json:"newsletter"`
	TermsAccepted       bool               `db:"terms_accepted" json:"terms_accepted"`
	DataProcessing      bool               `db:"data_processing" json:"data_processing"`
	CreatedAt           time.Time          `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time          `db:"updated_at" json:"updated_at"`
}

// RegistrationFilter captures filtering criteria for the admin listing.
type RegistrationFilter struct {
	Status   *RegistrationStatus
	Search   string
	Page     int
	PageSize int
}

// RegistrationRow joins a registration with its user for admin views
// and exports.
type RegistrationRow struct {
	Registration
	Email     string `db:"email" json:"email"`
	FirstName string `db:"first_name" json:"first_name"`
	LastName  string `db:"last_name" json:"last_name"`
	Country   string `db:"country" json:"country"`
}
