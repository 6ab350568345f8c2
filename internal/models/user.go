package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// EmergencyContact is the contact a hiker designates for the trail office.
// It is stored as a JSON-encoded column on the users table.
type EmergencyContact struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

// Value implements driver.Valuer.
func (c EmergencyContact) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// Scan implements sql.Scanner.
func (c *EmergencyContact) Scan(src interface{}) error {
	if src == nil {
		*c = EmergencyContact{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	default:
		return fmt.Errorf("cannot scan %T into EmergencyContact", src)
	}
}

// User is the minimal contact identity behind a registration. Email is
// unique across all users.
type User struct {
	ID               string            `db:"id" json:"id"`
	Email            string            `db:"email" json:"email"`
	FirstName        string            `db:"first_name" json:"first_name"`
	LastName         string            `db:"last_name" json:"last_name"`
	Phone            string            `db:"phone" json:"phone"`
	Country          string            `db:"country" json:"country"`
	Age              *int              `db:"age" json:"age,omitempty"`
	EmergencyContact *EmergencyContact `db:"emergency_contact" json:"emergency_contact,omitempty"`
	CreatedAt        time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time         `db:"updated_at" json:"updated_at"`
}

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}
