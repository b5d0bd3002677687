// Package admin models staff accounts and their role.
package admin

import (
	"fmt"
	"strings"
	"time"

	"github.com/estatedesk/estatedesk/internal/shared/authorization"
	"github.com/estatedesk/estatedesk/internal/shared/biztime"
)

type Admin struct {
	id           uint
	name         string
	username     string
	passwordHash string
	contact      string
	email        string
	role         authorization.AdminRole
	propertyID   *uint
	createdAt    time.Time
	updatedAt    time.Time
}

// Profile holds the editable account details.
type Profile struct {
	Name       string
	Contact    string
	Email      string
	Role       authorization.AdminRole
	PropertyID *uint
}

func NewAdmin(username, passwordHash string, p Profile) (*Admin, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	a := &Admin{username: username, passwordHash: passwordHash}
	if err := a.applyProfile(p); err != nil {
		return nil, err
	}
	now := biztime.Now()
	a.createdAt = now
	a.updatedAt = now
	return a, nil
}

func ReconstructAdmin(
	id uint,
	username, passwordHash string,
	p Profile,
	createdAt, updatedAt time.Time,
) *Admin {
	return &Admin{
		id:           id,
		name:         p.Name,
		username:     username,
		passwordHash: passwordHash,
		contact:      p.Contact,
		email:        p.Email,
		role:         p.Role,
		propertyID:   p.PropertyID,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// applyProfile drops the property assignment for roles that do not keep one.
func (a *Admin) applyProfile(p Profile) error {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if !p.Role.IsValid() {
		return fmt.Errorf("invalid role: %s", p.Role)
	}
	a.name = name
	a.contact = strings.TrimSpace(p.Contact)
	a.email = strings.TrimSpace(p.Email)
	a.role = p.Role
	a.propertyID = nil
	if authorization.HasPropertyAssignment(p.Role) {
		a.propertyID = p.PropertyID
	}
	return nil
}

func (a *Admin) UpdateProfile(p Profile) error {
	if err := a.applyProfile(p); err != nil {
		return err
	}
	a.updatedAt = biztime.Now()
	return nil
}

func (a *Admin) ChangePasswordHash(hash string) error {
	if hash == "" {
		return fmt.Errorf("password hash is required")
	}
	a.passwordHash = hash
	a.updatedAt = biztime.Now()
	return nil
}

func (a *Admin) ID() uint                      { return a.id }
func (a *Admin) Name() string                  { return a.name }
func (a *Admin) Username() string              { return a.username }
func (a *Admin) PasswordHash() string          { return a.passwordHash }
func (a *Admin) Contact() string               { return a.contact }
func (a *Admin) Email() string                 { return a.email }
func (a *Admin) Role() authorization.AdminRole { return a.role }
func (a *Admin) PropertyID() *uint             { return a.propertyID }
func (a *Admin) CreatedAt() time.Time          { return a.createdAt }
func (a *Admin) UpdatedAt() time.Time          { return a.updatedAt }

func (a *Admin) IsPropertySupervisor() bool {
	return a.role == authorization.RolePropertySupervisor
}

func (a *Admin) SetID(id uint) {
	a.id = id
}
