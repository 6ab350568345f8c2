package repository

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alimehmetoglu-sipsy/frigya-sub000/internal/models"
)

func newRegistrationMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func registrationRow(id, userID string) *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows([]string{
		"id", "user_id", "status", "step", "interested_in", "timeframe", "group_type",
		"fitness_level", "hiking_experience", "longest_hike", "medical_conditions",
		"dietary_requirements", "special_needs", "preferred_dates", "motivation", "goals",
		"how_did_you_hear", "newsletter", "terms_accepted", "data_processing", "created_at", "updated_at",
	}).AddRow(
		id, userID, "pending", 4, "eastern", "next_3_months", "solo",
		3, "day_hikes", 25.0, `["none"]`,
		`["none"]`, "", `["2026-09-12"]`, "Fifty words of motivation", `["adventure"]`,
		"friend", true, true, true, now, now,
	)
}

func sampleSubmission() (*models.User, *models.Registration) {
	user := &models.User{
		Email:     "zeynep@example.com",
		FirstName: "Zeynep",
		LastName:  "Arslan",
		Phone:     "+905551234567",
	}
	reg := &models.Registration{
		Status:              models.StatusPending,
		Step:                4,
		InterestedIn:        models.InterestEastern,
		Timeframe:           models.TimeframeNext3Months,
		GroupType:           models.GroupSolo,
		FitnessLevel:        3,
		HikingExperience:    models.ExperienceDayHikes,
		MedicalConditions:   models.StringList{"none"},
		DietaryRequirements: models.StringList{"none"},
		Motivation:          "Fifty words of motivation",
		Goals:               models.StringList{"adventure"},
		HowDidYouHear:       "friend",
		Newsletter:          true,
		TermsAccepted:       true,
		DataProcessing:      true,
	}
	return user, reg
}

func TestRegistrationRepositoryCreateSubmissionNewUser(t *testing.T) {
	db, mock, cleanup := newRegistrationMock(t)
	defer cleanup()
	repo := NewRegistrationRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM users WHERE email").
		WithArgs("zeynep@example.com").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("INSERT INTO users").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO registrations").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()
	mock.ExpectQuery("SELECT (.+) FROM registrations WHERE id").
		WillReturnRows(registrationRow("reg-1", "user-1"))

	user, reg := sampleSubmission()
	stored, err := repo.CreateSubmission(context.Background(), user, reg)
	require.NoError(t, err)
	assert.Equal(t, "reg-1", stored.ID)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, user.ID, reg.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegistrationRepositoryCreateSubmissionExistingUser(t *testing.T) {
	db, mock, cleanup := newRegistrationMock(t)
	defer cleanup()
	repo := NewRegistrationRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM users WHERE email").
		WithArgs("zeynep@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("user-7"))
	mock.ExpectExec("INSERT INTO registrations").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()
	mock.ExpectQuery("SELECT (.+) FROM registrations WHERE id").
		WillReturnRows(registrationRow("reg-2", "user-7"))

	user, reg := sampleSubmission()
	stored, err := repo.CreateSubmission(context.Background(), user, reg)
	require.NoError(t, err)
	assert.Equal(t, "user-7", reg.UserID)
	assert.Equal(t, "user-7", stored.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegistrationRepositoryCreateSubmissionRollsBackOnFailure(t *testing.T) {
	db, mock, cleanup := newRegistrationMock(t)
	defer cleanup()
	repo := NewRegistrationRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM users WHERE email").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("user-7"))
	mock.ExpectExec("INSERT INTO registrations").WillReturnError(fmt.Errorf("disk I/O error"))
	mock.ExpectRollback()

	user, reg := sampleSubmission()
	_, err := repo.CreateSubmission(context.Background(), user, reg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create registration")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegistrationRepositoryList(t *testing.T) {
	db, mock, cleanup := newRegistrationMock(t)
	defer cleanup()
	repo := NewRegistrationRepository(db)

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "status", "step", "interested_in", "timeframe", "group_type",
		"fitness_level", "hiking_experience", "longest_hike", "medical_conditions",
		"dietary_requirements", "special_needs", "preferred_dates", "motivation", "goals",
		"how_did_you_hear", "newsletter", "terms_accepted", "data_processing", "created_at", "updated_at",
		"email", "first_name", "last_name", "country",
	}).AddRow(
		"reg-1", "user-1", "pending", 4, "eastern", "next_3_months", "solo",
		3, "day_hikes", 25.0, `["none"]`,
		`["none"]`, "", nil, "words", `["adventure"]`,
		"friend", true, true, true, now, now,
		"zeynep@example.com", "Zeynep", "Arslan", "TR",
	)
	mock.ExpectQuery("SELECT (.+) FROM registrations reg JOIN users u").
		WithArgs("pending").
		WillReturnRows(rows)
	mock.ExpectQuery("SELECT COUNT").
		WithArgs("pending").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	status := models.StatusPending
	list, total, err := repo.List(context.Background(), models.RegistrationFilter{Status: &status})
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, 1, total)
	assert.Equal(t, "zeynep@example.com", list[0].Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}
