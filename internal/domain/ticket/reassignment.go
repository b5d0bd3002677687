package ticket

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/estatedesk/estatedesk/internal/shared/biztime"
)

// ErrReassignLimitReached is returned when a ticket already used all of its
// reassignments and the actor may not override the limit.
var ErrReassignLimitReached = errors.New("reassignment limit reached")

// NextReassignCount returns the count to record for a new reassignment.
// latest is the count on the newest log row for the ticket (0 when none).
// The count only ever grows; once it reaches limit only an override may
// add further rows.
func NextReassignCount(latest, limit int, override bool) (int, error) {
	if latest < 0 {
		latest = 0
	}
	if latest >= limit && !override {
		return latest, ErrReassignLimitReached
	}
	return latest + 1, nil
}

// Reassignment is an append-only admin change log row.
type Reassignment struct {
	id            uint
	ticketID      uint
	oldAdminID    *uint
	newAdminID    uint
	actor         string
	reason        string
	reassignCount int
	override      bool
	createdAt     time.Time
}

func NewReassignment(
	ticketID uint,
	oldAdminID *uint,
	newAdminID uint,
	actor string,
	reason string,
	reassignCount int,
	override bool,
) (*Reassignment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if newAdminID == 0 {
		return nil, fmt.Errorf("new admin ID is required")
	}
	if reassignCount < 1 {
		return nil, fmt.Errorf("reassign count must be positive")
	}
	return &Reassignment{
		ticketID:      ticketID,
		oldAdminID:    oldAdminID,
		newAdminID:    newAdminID,
		actor:         strings.TrimSpace(actor),
		reason:        strings.TrimSpace(reason),
		reassignCount: reassignCount,
		override:      override,
		createdAt:     biztime.Now(),
	}, nil
}

func ReconstructReassignment(
	id, ticketID uint,
	oldAdminID *uint,
	newAdminID uint,
	actor, reason string,
	reassignCount int,
	override bool,
	createdAt time.Time,
) *Reassignment {
	return &Reassignment{
		id:            id,
		ticketID:      ticketID,
		oldAdminID:    oldAdminID,
		newAdminID:    newAdminID,
		actor:         actor,
		reason:        reason,
		reassignCount: reassignCount,
		override:      override,
		createdAt:     createdAt,
	}
}

func (r *Reassignment) ID() uint             { return r.id }
func (r *Reassignment) TicketID() uint       { return r.ticketID }
func (r *Reassignment) OldAdminID() *uint    { return r.oldAdminID }
func (r *Reassignment) NewAdminID() uint     { return r.newAdminID }
func (r *Reassignment) Actor() string        { return r.actor }
func (r *Reassignment) Reason() string       { return r.reason }
func (r *Reassignment) ReassignCount() int   { return r.reassignCount }
func (r *Reassignment) Override() bool       { return r.override }
func (r *Reassignment) CreatedAt() time.Time { return r.createdAt }

func (r *Reassignment) SetID(id uint) {
	r.id = id
}
