package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/alimehmetoglu-sipsy/frigya-sub000/internal/models"
)

const registrationColumns = `id, user_id, status, step, interested_in, timeframe, group_type, fitness_level,
	hiking_experience, longest_hike, medical_conditions, dietary_requirements, special_needs,
	preferred_dates, motivation, goals, how_did_you_hear, newsletter, terms_accepted, data_processing,
	created_at, updated_at`

const registrationRowColumns = `reg.id, reg.user_id, reg.status, reg.step, reg.interested_in, reg.timeframe,
	reg.group_type, reg.fitness_level, reg.hiking_experience, reg.longest_hike, reg.medical_conditions,
	reg.dietary_requirements, reg.special_needs, reg.preferred_dates, reg.motivation, reg.goals,
	reg.how_did_you_hear, reg.newsletter, reg.terms_accepted, reg.data_processing, reg.created_at, reg.updated_at`

const registrationInsert = `INSERT INTO registrations (id, user_id, status, step, interested_in, timeframe,
	group_type, fitness_level, hiking_experience, longest_hike, medical_conditions, dietary_requirements,
	special_needs, preferred_dates, motivation, goals, how_did_you_hear, newsletter, terms_accepted,
	data_processing, created_at, updated_at)
	VALUES (:id, :user_id, :status, :step, :interested_in, :timeframe, :group_type, :fitness_level,
	:hiking_experience, :longest_hike, :medical_conditions, :dietary_requirements, :special_needs,
	:preferred_dates, :motivation, :goals, :how_did_you_hear, :newsletter, :terms_accepted,
	:data_processing, :created_at, :updated_at)`

// RegistrationRepository provides database access for submitted applications.
type RegistrationRepository struct {
	db *sqlx.DB
}

// NewRegistrationRepository creates a new instance of RegistrationRepository.
func NewRegistrationRepository(db *sqlx.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// CreateSubmission persists a submission atomically: the registrant identity
// is looked up by email and created when missing, then the registration row
// is inserted, all inside one transaction. A failure rolls back both writes
// so no orphaned user or registration can remain.
func (r *RegistrationRepository) CreateSubmission(ctx context.Context, user *models.User, reg *models.Registration) (*models.Registration, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin submission tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	now := time.Now().UTC()

	var existing models.User
	err = tx.GetContext(ctx, &existing, `SELECT id FROM users WHERE email = ? LIMIT 1`, user.Email)
	switch {
	case err == nil:
		reg.UserID = existing.ID
	case err == sql.ErrNoRows:
		if user.ID == "" {
			user.ID = uuid.NewString()
		}
		user.CreatedAt = now
		user.UpdatedAt = now
		const insertUser = `INSERT INTO users (id, email, first_name, last_name, phone, country, age, emergency_contact, created_at, updated_at)
			VALUES (:id, :email, :first_name, :last_name, :phone, :country, :age, :emergency_contact, :created_at, :updated_at)`
		if _, err := tx.NamedExecContext(ctx, insertUser, user); err != nil {
			return nil, fmt.Errorf("create submission user: %w", err)
		}
		reg.UserID = user.ID
	default:
		return nil, fmt.Errorf("find submission user: %w", err)
	}

	if reg.ID == "" {
		reg.ID = uuid.NewString()
	}
	if reg.Status == "" {
		reg.Status = models.StatusPending
	}
	if reg.Step == 0 {
		reg.Step = 4
	}
	reg.CreatedAt = now
	reg.UpdatedAt = now

	if _, err := tx.NamedExecContext(ctx, registrationInsert, reg); err != nil {
		return nil, fmt.Errorf("create registration: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit submission: %w", err)
	}

	return r.FindByID(ctx, reg.ID)
}

// Create inserts a registration row and returns it re-read by primary key.
func (r *RegistrationRepository) Create(ctx context.Context, reg *models.Registration) (*models.Registration, error) {
	if reg.ID == "" {
		reg.ID = uuid.NewString()
	}
	if reg.Status == "" {
		reg.Status = models.StatusPending
	}
	now := time.Now().UTC()
	reg.CreatedAt = now
	reg.UpdatedAt = now

	if _, err := r.db.NamedExecContext(ctx, registrationInsert, reg); err != nil {
		return nil, fmt.Errorf("create registration: %w", err)
	}

	return r.FindByID(ctx, reg.ID)
}

// FindByID returns a registration by identifier.
func (r *RegistrationRepository) FindByID(ctx context.Context, id string) (*models.Registration, error) {
	query := fmt.Sprintf(`SELECT %s FROM registrations WHERE id = ? LIMIT 1`, registrationColumns)
	var reg models.Registration
	if err := r.db.GetContext(ctx, &reg, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find registration by id: %w", err)
	}
	return &reg, nil
}

// List returns registrations joined with registrant identity for admin
// views, filtered and paginated, with the total count.
func (r *RegistrationRepository) List(ctx context.Context, filter models.RegistrationFilter) ([]models.RegistrationRow, int, error) {
	baseQuery := `FROM registrations reg JOIN users u ON u.id = reg.user_id WHERE 1=1`
	var conditions []string
	var args []interface{}

	if filter.Status != nil {
		conditions = append(conditions, "reg.status = ?")
		args = append(args, *filter.Status)
	}
	if filter.Search != "" {
		conditions = append(conditions, "(LOWER(u.email) LIKE ? OR LOWER(u.first_name) LIKE ? OR LOWER(u.last_name) LIKE ?)")
		needle := "%" + strings.ToLower(filter.Search) + "%"
		args = append(args, needle, needle, needle)
	}

	if len(conditions) > 0 {
		baseQuery += " AND " + strings.Join(conditions, " AND ")
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	listQuery := fmt.Sprintf(`SELECT %s, u.email, u.first_name, u.last_name, u.country %s ORDER BY reg.created_at DESC LIMIT %d OFFSET %d`,
		registrationRowColumns, baseQuery, pageSize, offset)

	var rows []models.RegistrationRow
	if err := r.db.SelectContext(ctx, &rows, listQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("list registrations: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s", baseQuery)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count registrations: %w", err)
	}

	return rows, total, nil
}
