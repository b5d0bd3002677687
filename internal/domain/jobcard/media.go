package jobcard

import (
	"fmt"
	"time"

	"github.com/estatedesk/estatedesk/internal/domain/ticket"
	"github.com/estatedesk/estatedesk/internal/shared/biztime"
)

// Media is an attachment on a job card. Media copied from a ticket keeps a
// pointer to its source row.
type Media struct {
	id                  uint
	jobCardID           uint
	sourceTicketMediaID *uint
	fileName            string
	contentType         string
	data                []byte
	createdAt           time.Time
}

func NewMedia(jobCardID uint, fileName, contentType string, data []byte) (*Media, error) {
	if jobCardID == 0 {
		return nil, fmt.Errorf("job card ID is required")
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("media content is empty")
	}
	if len(data) > ticket.MaxMediaSize {
		return nil, fmt.Errorf("media exceeds maximum size of %d bytes", ticket.MaxMediaSize)
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return &Media{
		jobCardID:   jobCardID,
		fileName:    fileName,
		contentType: contentType,
		data:        data,
		createdAt:   biztime.Now(),
	}, nil
}

// CopyFromTicketMedia duplicates a ticket attachment onto a job card.
func CopyFromTicketMedia(jobCardID uint, src *ticket.Media) *Media {
	srcID := src.ID()
	return &Media{
		jobCardID:           jobCardID,
		sourceTicketMediaID: &srcID,
		fileName:            src.FileName(),
		contentType:         src.ContentType(),
		data:                src.Data(),
		createdAt:           biztime.Now(),
	}
}

func ReconstructMedia(
	id, jobCardID uint,
	sourceTicketMediaID *uint,
	fileName, contentType string,
	data []byte,
	createdAt time.Time,
) *Media {
	return &Media{
		id:                  id,
		jobCardID:           jobCardID,
		sourceTicketMediaID: sourceTicketMediaID,
		fileName:            fileName,
		contentType:         contentType,
		data:                data,
		createdAt:           createdAt,
	}
}

func (m *Media) ID() uint                   { return m.id }
func (m *Media) JobCardID() uint            { return m.jobCardID }
func (m *Media) SourceTicketMediaID() *uint { return m.sourceTicketMediaID }
func (m *Media) FileName() string           { return m.fileName }
func (m *Media) ContentType() string        { return m.contentType }
func (m *Media) Data() []byte               { return m.data }
func (m *Media) Size() int                  { return len(m.data) }
func (m *Media) CreatedAt() time.Time       { return m.createdAt }

func (m *Media) SetID(id uint) {
	m.id = id
}
