package ticket

import (
	"fmt"
	"strings"
	"time"

	"github.com/estatedesk/estatedesk/internal/shared/biztime"
)

// Update is an append-only progress note on a ticket.
type Update struct {
	id        uint
	ticketID  uint
	text      string
	author    string
	createdAt time.Time
}

func NewUpdate(ticketID uint, text, author string) (*Update, error) {
	text = strings.TrimSpace(text)
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if text == "" {
		return nil, fmt.Errorf("update text is required")
	}
	if len(text) > maxDescriptionLength {
		return nil, fmt.Errorf("update text exceeds maximum length of %d characters", maxDescriptionLength)
	}
	return &Update{
		ticketID:  ticketID,
		text:      text,
		author:    strings.TrimSpace(author),
		createdAt: biztime.Now(),
	}, nil
}

func ReconstructUpdate(id, ticketID uint, text, author string, createdAt time.Time) *Update {
	return &Update{id: id, ticketID: ticketID, text: text, author: author, createdAt: createdAt}
}

func (u *Update) ID() uint             { return u.id }
func (u *Update) TicketID() uint       { return u.ticketID }
func (u *Update) Text() string         { return u.text }
func (u *Update) Author() string       { return u.author }
func (u *Update) CreatedAt() time.Time { return u.createdAt }

func (u *Update) SetID(id uint) {
	u.id = id
}
