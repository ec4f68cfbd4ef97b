// Package user provides the user aggregate and its repository contract.
package user

import (
	"fmt"
	"strings"
	"time"
)

// Role represents the access role of a user account
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// IsValid checks if the role is a known value
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// String returns the string representation of the role
func (r Role) String() string {
	return string(r)
}

// User represents the user aggregate root. The password is stored as a
// bcrypt hash and is never exposed through serialization.
type User struct {
	id           uint
	username     string
	email        string
	passwordHash string
	role         Role
	regionID     *uint
	createdAt    time.Time
	updatedAt    time.Time
	version      int
}

// NewUser creates a new user aggregate. passwordHash must already be hashed
// by the caller; raw credential policy lives at the application layer.
func NewUser(username, email, passwordHash string, role Role) (*User, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := time.Now()
	return &User{
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    now,
		updatedAt:    now,
		version:      1,
	}, nil
}

// ReconstructUser reconstructs a user from persistence
func ReconstructUser(
	id uint,
	username, email, passwordHash string,
	role Role,
	regionID *uint,
	createdAt, updatedAt time.Time,
	version int,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:           id,
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		regionID:     regionID,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		version:      version,
	}, nil
}

func validateUsername(username string) error {
	if len(username) < 3 || len(username) > 50 {
		return fmt.Errorf("username must be between 3 and 50 characters")
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if len(email) > 100 {
		return fmt.Errorf("email must not exceed 100 characters")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return fmt.Errorf("invalid email address: %s", email)
	}
	return nil
}

func (u *User) ID() uint              { return u.id }
func (u *User) Username() string      { return u.username }
func (u *User) Email() string         { return u.email }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Role() Role            { return u.role }
func (u *User) RegionID() *uint       { return u.regionID }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }
func (u *User) Version() int          { return u.version }

// SetID sets the user ID (only for persistence layer use)
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// UpdateProfile replaces username, email and role
func (u *User) UpdateProfile(username, email string, role Role) error {
	if err := validateUsername(username); err != nil {
		return err
	}
	if err := validateEmail(email); err != nil {
		return err
	}
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	u.username = username
	u.email = email
	u.role = role
	u.touch()
	return nil
}

// ChangePasswordHash replaces the stored password hash
func (u *User) ChangePasswordHash(hash string) error {
	if hash == "" {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = hash
	u.touch()
	return nil
}

// AssignRegion sets the owning region reference
func (u *User) AssignRegion(regionID uint) error {
	if regionID == 0 {
		return fmt.Errorf("region ID cannot be zero")
	}
	u.regionID = &regionID
	u.touch()
	return nil
}

// ClearRegion detaches the user from its region
func (u *User) ClearRegion() {
	if u.regionID == nil {
		return
	}
	u.regionID = nil
	u.touch()
}

// Touch marks the aggregate as modified without changing business fields.
// Used when an association involving this user changes.
func (u *User) Touch() {
	u.touch()
}

func (u *User) touch() {
	u.updatedAt = time.Now()
	u.version++
}
