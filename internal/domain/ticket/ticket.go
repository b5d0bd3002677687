// Package ticket models tenant-reported issues, their update log and the
// reassignment history that gates how often a ticket may change hands.
package ticket

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/estatedesk/estatedesk/internal/domain/ticket/valueobjects"
	"github.com/estatedesk/estatedesk/internal/shared/biztime"
)

const maxDescriptionLength = 5000

type Ticket struct {
	id              uint
	userID          uint
	description     string
	category        vo.Category
	status          vo.TicketStatus
	propertyID      *uint
	assignedAdminID *uint
	dueDate         *time.Time
	isRead          bool
	createdAt       time.Time
	resolvedAt      *time.Time
	updatedAt       time.Time
}

func NewTicket(
	userID uint,
	description string,
	category vo.Category,
	propertyID *uint,
	assignedAdminID *uint,
) (*Ticket, error) {
	description = strings.TrimSpace(description)
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if description == "" {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > maxDescriptionLength {
		return nil, fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}

	now := biztime.Now()
	return &Ticket{
		userID:          userID,
		description:     description,
		category:        category,
		status:          vo.StatusOpen,
		propertyID:      propertyID,
		assignedAdminID: assignedAdminID,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructTicket(
	id uint,
	userID uint,
	description string,
	category vo.Category,
	status vo.TicketStatus,
	propertyID *uint,
	assignedAdminID *uint,
	dueDate *time.Time,
	isRead bool,
	createdAt time.Time,
	resolvedAt *time.Time,
	updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Ticket{
		id:              id,
		userID:          userID,
		description:     description,
		category:        category,
		status:          status,
		propertyID:      propertyID,
		assignedAdminID: assignedAdminID,
		dueDate:         dueDate,
		isRead:          isRead,
		createdAt:       createdAt,
		resolvedAt:      resolvedAt,
		updatedAt:       updatedAt,
	}, nil
}

func (t *Ticket) ID() uint                { return t.id }
func (t *Ticket) UserID() uint            { return t.userID }
func (t *Ticket) Description() string     { return t.description }
func (t *Ticket) Category() vo.Category   { return t.category }
func (t *Ticket) Status() vo.TicketStatus { return t.status }
func (t *Ticket) PropertyID() *uint       { return t.propertyID }
func (t *Ticket) AssignedAdminID() *uint  { return t.assignedAdminID }
func (t *Ticket) DueDate() *time.Time     { return t.dueDate }
func (t *Ticket) IsRead() bool            { return t.isRead }
func (t *Ticket) CreatedAt() time.Time    { return t.createdAt }
func (t *Ticket) ResolvedAt() *time.Time  { return t.resolvedAt }
func (t *Ticket) UpdatedAt() time.Time    { return t.updatedAt }

// Number is the reference quoted to tenants.
func (t *Ticket) Number() string {
	return FormatNumber(t.id)
}

// FormatNumber renders a ticket ID as the reference quoted to tenants.
func FormatNumber(id uint) string {
	return fmt.Sprintf("#%d", id)
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// ChangeStatus applies a status. The resolved timestamp is set iff the new
// status is Resolved. It reports whether the ticket became resolved by this call.
func (t *Ticket) ChangeStatus(status vo.TicketStatus) (bool, error) {
	if !status.IsValid() {
		return false, fmt.Errorf("invalid status: %s", status)
	}

	wasResolved := t.status.IsResolved()
	now := biztime.Now()
	t.status = status
	t.updatedAt = now

	if status.IsResolved() {
		t.resolvedAt = &now
		return !wasResolved, nil
	}
	t.resolvedAt = nil
	return false, nil
}

// ReassignTo moves the ticket to another admin. The limit is enforced by NextReassignCount.
func (t *Ticket) ReassignTo(adminID uint) error {
	if adminID == 0 {
		return fmt.Errorf("admin ID is required")
	}
	t.assignedAdminID = &adminID
	t.updatedAt = biztime.Now()
	return nil
}

func (t *Ticket) MarkRead() {
	t.isRead = true
}

// SetDueDate sets or clears the due date.
func (t *Ticket) SetDueDate(due *time.Time) {
	t.dueDate = due
	t.updatedAt = biztime.Now()
}

// IsOverdue reports whether the due date passed before now without resolution.
func (t *Ticket) IsOverdue(now time.Time) bool {
	return t.dueDate != nil && !t.status.IsResolved() && now.After(*t.dueDate)
}
