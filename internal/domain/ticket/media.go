package ticket

import (
	"fmt"
	"time"

	"github.com/estatedesk/estatedesk/internal/shared/biztime"
)

const MaxMediaSize = 10 << 20

// Media is a binary attachment on a ticket.
type Media struct {
	id          uint
	ticketID    uint
	fileName    string
	contentType string
	data        []byte
	createdAt   time.Time
}

func NewMedia(ticketID uint, fileName, contentType string, data []byte) (*Media, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("media content is empty")
	}
	if len(data) > MaxMediaSize {
		return nil, fmt.Errorf("media exceeds maximum size of %d bytes", MaxMediaSize)
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return &Media{
		ticketID:    ticketID,
		fileName:    fileName,
		contentType: contentType,
		data:        data,
		createdAt:   biztime.Now(),
	}, nil
}

func ReconstructMedia(id, ticketID uint, fileName, contentType string, data []byte, createdAt time.Time) *Media {
	return &Media{
		id:          id,
		ticketID:    ticketID,
		fileName:    fileName,
		contentType: contentType,
		data:        data,
		createdAt:   createdAt,
	}
}

func (m *Media) ID() uint             { return m.id }
func (m *Media) TicketID() uint       { return m.ticketID }
func (m *Media) FileName() string     { return m.fileName }
func (m *Media) ContentType() string  { return m.contentType }
func (m *Media) Data() []byte         { return m.data }
func (m *Media) Size() int            { return len(m.data) }
func (m *Media) CreatedAt() time.Time { return m.createdAt }

func (m *Media) SetID(id uint) {
	m.id = id
}
