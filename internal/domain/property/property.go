// Package property models managed sites and their supervising admin.
package property

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/estatedesk/estatedesk/internal/domain/admin"
	"github.com/estatedesk/estatedesk/internal/shared/biztime"
)

// ErrNotSupervisor is returned when the supervisor candidate has another role.
var ErrNotSupervisor = errors.New("supervisor must have the Property Supervisor role")

type Property struct {
	id           uint
	name         string
	supervisorID *uint
	createdAt    time.Time
	updatedAt    time.Time
}

func NewProperty(name string) (*Property, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("property name is required")
	}
	now := biztime.Now()
	return &Property{name: name, createdAt: now, updatedAt: now}, nil
}

func ReconstructProperty(id uint, name string, supervisorID *uint, createdAt, updatedAt time.Time) *Property {
	return &Property{
		id:           id,
		name:         name,
		supervisorID: supervisorID,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (p *Property) ID() uint             { return p.id }
func (p *Property) Name() string         { return p.name }
func (p *Property) SupervisorID() *uint  { return p.supervisorID }
func (p *Property) CreatedAt() time.Time { return p.createdAt }
func (p *Property) UpdatedAt() time.Time { return p.updatedAt }

func (p *Property) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("property name is required")
	}
	p.name = name
	p.updatedAt = biztime.Now()
	return nil
}

// AssignSupervisor sets the supervisor. A nil admin clears it.
func (p *Property) AssignSupervisor(a *admin.Admin) error {
	if a == nil {
		p.supervisorID = nil
		p.updatedAt = biztime.Now()
		return nil
	}
	if !a.IsPropertySupervisor() {
		return ErrNotSupervisor
	}
	id := a.ID()
	p.supervisorID = &id
	p.updatedAt = biztime.Now()
	return nil
}

func (p *Property) SetID(id uint) {
	p.id = id
}
