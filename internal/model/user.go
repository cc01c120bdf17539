package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role determines a user's authorization scope.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleOfficer      Role = "officer"
	RoleInvestigator Role = "investigator"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleOfficer, RoleInvestigator:
		return true
	}
	return false
}

// SelfAssignable reports whether the role may be taken through signup or the
// admin add-user path. Admin accounts are provisioned from configuration and
// never created through either path.
func (r Role) SelfAssignable() bool {
	return r == RoleOfficer || r == RoleInvestigator
}

// Status marks whether a user may authenticate.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// User represents a stored identity with credentials and role.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Mobile       string    `json:"mobile" gorm:"size:10;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         Role      `json:"role" gorm:"size:50;not null;index"`
	Department   string    `json:"department" gorm:"size:255;default:'General'"`
	Status       Status    `json:"status" gorm:"size:20;default:'active';index"`
	LastLogin    *string   `json:"lastLogin"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
