package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Role is the authorization role of a user.
type Role uint8

const (
	RoleUser Role = iota
	RoleAdmin
)

var roleNames = map[Role]string{
	RoleUser:  "USER",
	RoleAdmin: "ADMIN",
}

// Roles lists the accepted role names in declaration order.
var Roles = []string{"USER", "ADMIN"}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Role(%d)", uint8(r))
}

// ParseRole converts a case-insensitive role name to a Role.
func ParseRole(s string) (Role, error) {
	for role, name := range roleNames {
		if strings.EqualFold(name, s) {
			return role, nil
		}
	}
	return 0, fmt.Errorf("unknown role %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (r Role) MarshalText() ([]byte, error) {
	name, ok := roleNames[r]
	if !ok {
		return nil, fmt.Errorf("invalid role %d", uint8(r))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Role) UnmarshalText(text []byte) error {
	parsed, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Value stores the role by name.
func (r Role) Value() (driver.Value, error) {
	name, ok := roleNames[r]
	if !ok {
		return nil, fmt.Errorf("invalid role %d", uint8(r))
	}
	return name, nil
}

// Scan reads a role name from the database.
func (r *Role) Scan(src interface{}) error {
	return scanEnum(src, func(s string) error { return r.UnmarshalText([]byte(s)) })
}

// Status is the informational account status of a user.
type Status uint8

const (
	StatusActive Status = iota
	StatusInactive
	StatusBanned
)

var statusNames = map[Status]string{
	StatusActive:   "ACTIVE",
	StatusInactive: "INACTIVE",
	StatusBanned:   "BANNED",
}

// Statuses lists the accepted status names in declaration order.
var Statuses = []string{"ACTIVE", "INACTIVE", "BANNED"}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

// ParseStatus converts a case-insensitive status name to a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if strings.EqualFold(name, s) {
			return status, nil
		}
	}
	return 0, fmt.Errorf("unknown status %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	name, ok := statusNames[s]
	if !ok {
		return nil, fmt.Errorf("invalid status %d", uint8(s))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Value stores the status by name.
func (s Status) Value() (driver.Value, error) {
	name, ok := statusNames[s]
	if !ok {
		return nil, fmt.Errorf("invalid status %d", uint8(s))
	}
	return name, nil
}

// Scan reads a status name from the database.
func (s *Status) Scan(src interface{}) error {
	return scanEnum(src, func(v string) error { return s.UnmarshalText([]byte(v)) })
}

func scanEnum(src interface{}, set func(string) error) error {
	switch v := src.(type) {
	case string:
		return set(v)
	case []byte:
		return set(string(v))
	default:
		return fmt.Errorf("unsupported enum source %T", src)
	}
}

// User represents a registered account.
type User struct {
	ID                  uint      `gorm:"primaryKey"`
	Username            string    `gorm:"size:32;uniqueIndex;not null"`
	Email               string    `gorm:"size:64;uniqueIndex;not null"`
	Phone               *string   `gorm:"size:20;uniqueIndex"`
	PasswordHash        string    `gorm:"column:password;size:128;not null"` // bcrypt
	FirstName           string    `gorm:"size:32;not null"`
	LastName            string    `gorm:"size:32"`
	CreatedAt           time.Time `gorm:"column:created_date"`
	UpdatedAt           time.Time `gorm:"column:modified_date"`
	Status              Status    `gorm:"type:varchar(16);not null"`
	Role                Role      `gorm:"type:varchar(16);not null"`
	ProfilePicture      *string   `gorm:"type:text"`
	ProfilePictureThumb *string   `gorm:"type:text"`
}

// IsAdmin reports whether the user holds the ADMIN role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
