// Package tenant models the occupants who report issues over WhatsApp.
package tenant

import (
	"fmt"
	"strings"
	"time"

	"github.com/estatedesk/estatedesk/internal/shared/biztime"
)

type Tenant struct {
	id         uint
	name       string
	contact    string
	propertyID *uint
	unit       string
	createdAt  time.Time
	updatedAt  time.Time
}

// NewTenant registers a tenant. contact is the messaging address, already normalized.
func NewTenant(name, contact string, propertyID *uint, unit string) (*Tenant, error) {
	t := &Tenant{}
	if err := t.apply(name, contact, propertyID, unit); err != nil {
		return nil, err
	}
	now := biztime.Now()
	t.createdAt = now
	t.updatedAt = now
	return t, nil
}

func ReconstructTenant(id uint, name, contact string, propertyID *uint, unit string, createdAt, updatedAt time.Time) *Tenant {
	return &Tenant{
		id:         id,
		name:       name,
		contact:    contact,
		propertyID: propertyID,
		unit:       unit,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (t *Tenant) apply(name, contact string, propertyID *uint, unit string) error {
	name = strings.TrimSpace(name)
	contact = strings.TrimSpace(contact)
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if contact == "" {
		return fmt.Errorf("contact is required")
	}
	t.name = name
	t.contact = contact
	t.propertyID = propertyID
	t.unit = strings.TrimSpace(unit)
	return nil
}

// Update replaces the editable details.
func (t *Tenant) Update(name, contact string, propertyID *uint, unit string) error {
	if err := t.apply(name, contact, propertyID, unit); err != nil {
		return err
	}
	t.updatedAt = biztime.Now()
	return nil
}

func (t *Tenant) ID() uint             { return t.id }
func (t *Tenant) Name() string         { return t.name }
func (t *Tenant) Contact() string      { return t.contact }
func (t *Tenant) PropertyID() *uint    { return t.propertyID }
func (t *Tenant) Unit() string         { return t.unit }
func (t *Tenant) CreatedAt() time.Time { return t.createdAt }
func (t *Tenant) UpdatedAt() time.Time { return t.updatedAt }

// HasContact reports whether the tenant can receive notifications.
func (t *Tenant) HasContact() bool {
	return t.contact != ""
}

func (t *Tenant) SetID(id uint) {
	t.id = id
}
