package jobcard

import (
	"strings"
	"time"

	"github.com/estatedesk/estatedesk/internal/shared/biztime"
)

// Signoff is an append-only approval record. Its presence locks the card.
type Signoff struct {
	id         uint
	jobCardID  uint
	signerName string
	role       string
	notes      string
	signature  []byte
	createdAt  time.Time
}

func NewSignoff(jobCardID uint, signerName, role, notes string, signature []byte) (*Signoff, error) {
	signerName = strings.TrimSpace(signerName)
	if signerName == "" {
		return nil, ErrSignerRequired
	}
	return &Signoff{
		jobCardID:  jobCardID,
		signerName: signerName,
		role:       strings.TrimSpace(role),
		notes:      strings.TrimSpace(notes),
		signature:  signature,
		createdAt:  biztime.Now(),
	}, nil
}

func ReconstructSignoff(id, jobCardID uint, signerName, role, notes string, signature []byte, createdAt time.Time) *Signoff {
	return &Signoff{
		id:         id,
		jobCardID:  jobCardID,
		signerName: signerName,
		role:       role,
		notes:      notes,
		signature:  signature,
		createdAt:  createdAt,
	}
}

func (s *Signoff) ID() uint             { return s.id }
func (s *Signoff) JobCardID() uint      { return s.jobCardID }
func (s *Signoff) SignerName() string   { return s.signerName }
func (s *Signoff) Role() string         { return s.role }
func (s *Signoff) Notes() string        { return s.notes }
func (s *Signoff) Signature() []byte    { return s.signature }
func (s *Signoff) HasSignature() bool   { return len(s.signature) > 0 }
func (s *Signoff) CreatedAt() time.Time { return s.createdAt }

func (s *Signoff) SetID(id uint) {
	s.id = id
}
