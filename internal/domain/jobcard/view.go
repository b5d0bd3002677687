package jobcard

import "time"

// PublicView is the redacted card shown through a shared link. It carries no
// media and no staff identifiers.
type PublicView struct {
	ID            uint
	TicketID      *uint
	PropertyName  string
	Unit          string
	Title         string
	Description   string
	Activities    string
	Status        string
	EstimatedCost int64
	ActualCost    int64
	CreatedAt     time.Time
	CompletedAt   *time.Time
	Signoffs      []PublicSignoff
}

type PublicSignoff struct {
	SignerName string
	Role       string
	SignedAt   time.Time
}

// Redact builds the public view. propertyName is resolved by the caller.
func (j *JobCard) Redact(propertyName string, signoffs []*Signoff) PublicView {
	v := PublicView{
		ID:            j.id,
		TicketID:      j.ticketID,
		PropertyName:  propertyName,
		Unit:          j.unit,
		Title:         j.title,
		Description:   j.description,
		Activities:    j.activities,
		Status:        j.status.String(),
		EstimatedCost: j.estimatedCost,
		ActualCost:    j.actualCost,
		CreatedAt:     j.createdAt,
		CompletedAt:   j.completedAt,
	}
	for _, s := range signoffs {
		v.Signoffs = append(v.Signoffs, PublicSignoff{
			SignerName: s.SignerName(),
			Role:       s.Role(),
			SignedAt:   s.CreatedAt(),
		})
	}
	return v
}
