// Package jobcard models billable work records, their sign off lock and the
// token that shares a redacted view with the tenant.
package jobcard

import (
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	vo "github.com/estatedesk/estatedesk/internal/domain/jobcard/valueobjects"
	"github.com/estatedesk/estatedesk/internal/shared/biztime"
)

type JobCard struct {
	id            uint
	ticketID      *uint
	propertyID    *uint
	unit          string
	createdBy     *uint
	assignedTo    *uint
	title         string
	description   string
	activities    string
	estimatedCost int64
	actualCost    int64
	status        vo.JobCardStatus
	publicToken   string
	tokenIssuedAt *time.Time
	signoffCount  int
	createdAt     time.Time
	updatedAt     time.Time
	completedAt   *time.Time
}

// Draft carries the fields a new job card starts with.
type Draft struct {
	TicketID      *uint
	PropertyID    *uint
	Unit          string
	CreatedBy     *uint
	AssignedTo    *uint
	Title         string
	Description   string
	Activities    string
	EstimatedCost int64
}

func NewJobCard(d Draft) (*JobCard, error) {
	description := strings.TrimSpace(d.Description)
	if description == "" {
		return nil, ErrDescriptionRequired
	}
	if d.EstimatedCost < 0 {
		return nil, ErrNegativeCost
	}

	title := strings.TrimSpace(d.Title)
	if title == "" {
		title = defaultTitle(description)
	}

	now := biztime.Now()
	return &JobCard{
		ticketID:      d.TicketID,
		propertyID:    d.PropertyID,
		unit:          strings.TrimSpace(d.Unit),
		createdBy:     d.CreatedBy,
		assignedTo:    d.AssignedTo,
		title:         title,
		description:   description,
		activities:    d.Activities,
		estimatedCost: d.EstimatedCost,
		status:        vo.StatusOpen,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func defaultTitle(description string) string {
	line := strings.SplitN(description, "\n", 2)[0]
	if r := []rune(line); len(r) > 80 {
		return string(r[:77]) + "..."
	}
	return line
}

// ReconstructJobCard rebuilds a job card from storage. signoffCount is the
// number of signoff rows recorded for it.
func ReconstructJobCard(
	id uint,
	d Draft,
	actualCost int64,
	status vo.JobCardStatus,
	publicToken string,
	tokenIssuedAt *time.Time,
	signoffCount int,
	createdAt, updatedAt time.Time,
	completedAt *time.Time,
) (*JobCard, error) {
	if id == 0 {
		return nil, fmt.Errorf("job card ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	return &JobCard{
		id:            id,
		ticketID:      d.TicketID,
		propertyID:    d.PropertyID,
		unit:          d.Unit,
		createdBy:     d.CreatedBy,
		assignedTo:    d.AssignedTo,
		title:         d.Title,
		description:   d.Description,
		activities:    d.Activities,
		estimatedCost: d.EstimatedCost,
		actualCost:    actualCost,
		status:        status,
		publicToken:   publicToken,
		tokenIssuedAt: tokenIssuedAt,
		signoffCount:  signoffCount,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		completedAt:   completedAt,
	}, nil
}

func (j *JobCard) ID() uint                  { return j.id }
func (j *JobCard) TicketID() *uint           { return j.ticketID }
func (j *JobCard) PropertyID() *uint         { return j.propertyID }
func (j *JobCard) Unit() string              { return j.unit }
func (j *JobCard) CreatedBy() *uint          { return j.createdBy }
func (j *JobCard) AssignedTo() *uint         { return j.assignedTo }
func (j *JobCard) Title() string             { return j.title }
func (j *JobCard) Description() string       { return j.description }
func (j *JobCard) Activities() string        { return j.activities }
func (j *JobCard) EstimatedCost() int64      { return j.estimatedCost }
func (j *JobCard) ActualCost() int64         { return j.actualCost }
func (j *JobCard) Status() vo.JobCardStatus  { return j.status }
func (j *JobCard) PublicToken() string       { return j.publicToken }
func (j *JobCard) TokenIssuedAt() *time.Time { return j.tokenIssuedAt }
func (j *JobCard) SignoffCount() int         { return j.signoffCount }
func (j *JobCard) CreatedAt() time.Time      { return j.createdAt }
func (j *JobCard) UpdatedAt() time.Time      { return j.updatedAt }
func (j *JobCard) CompletedAt() *time.Time   { return j.completedAt }

func (j *JobCard) SetID(id uint) error {
	if j.id != 0 {
		return fmt.Errorf("job card ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("job card ID cannot be zero")
	}
	j.id = id
	return nil
}

// IsLocked reports whether the card is signed off. A signoff row alone is
// enough even if the status column says otherwise.
func (j *JobCard) IsLocked() bool {
	return j.status.IsSignedOff() || j.signoffCount > 0
}

// FieldsUpdate replaces the editable text fields. Nil members are left unchanged.
type FieldsUpdate struct {
	Title       *string
	Description *string
	Activities  *string
	AssignedTo  *uint
}

func (j *JobCard) UpdateFields(u FieldsUpdate) error {
	if j.IsLocked() {
		return ErrLocked
	}
	if u.Description != nil {
		d := strings.TrimSpace(*u.Description)
		if d == "" {
			return ErrDescriptionRequired
		}
		j.description = d
	}
	if u.Title != nil {
		j.title = strings.TrimSpace(*u.Title)
	}
	if u.Activities != nil {
		j.activities = *u.Activities
	}
	if u.AssignedTo != nil {
		j.assignedTo = u.AssignedTo
	}
	j.updatedAt = biztime.Now()
	return nil
}

// UpdateCosts replaces both costs, expressed in minor currency units.
func (j *JobCard) UpdateCosts(estimated, actual int64) error {
	if j.IsLocked() {
		return ErrLocked
	}
	if estimated < 0 || actual < 0 {
		return ErrNegativeCost
	}
	j.estimatedCost = estimated
	j.actualCost = actual
	j.updatedAt = biztime.Now()
	return nil
}

// ChangeStatus moves the card to any status except Signed Off, which only
// SignOff may set. Completed records the completion time.
func (j *JobCard) ChangeStatus(status vo.JobCardStatus) error {
	if j.IsLocked() {
		return ErrLocked
	}
	if !status.IsValid() {
		return fmt.Errorf("invalid status: %s", status)
	}
	if status.IsSignedOff() {
		return ErrUseSignOff
	}

	now := biztime.Now()
	j.status = status
	j.updatedAt = now
	if status == vo.StatusCompleted {
		j.completedAt = &now
	}
	return nil
}

// SignOff records a signoff and locks the card. Further signoffs on a
// locked card are accepted as history.
func (j *JobCard) SignOff(signerName, role, notes string, signature []byte) (*Signoff, error) {
	if j.id == 0 {
		return nil, fmt.Errorf("job card must be persisted before sign off")
	}
	s, err := NewSignoff(j.id, signerName, role, notes, signature)
	if err != nil {
		return nil, err
	}
	j.status = vo.StatusSignedOff
	j.signoffCount++
	j.updatedAt = s.CreatedAt()
	return s, nil
}

// EnsurePublicToken issues a token on first call and returns the existing
// one afterwards. issued reports whether a new token was generated.
func (j *JobCard) EnsurePublicToken(generate func() (string, error)) (token string, issued bool, err error) {
	if j.publicToken != "" {
		return j.publicToken, false, nil
	}
	token, err = generate()
	if err != nil {
		return "", false, fmt.Errorf("generate public token: %w", err)
	}
	if token == "" {
		return "", false, fmt.Errorf("generated public token is empty")
	}
	now := biztime.Now()
	j.publicToken = token
	j.tokenIssuedAt = &now
	return token, true, nil
}

// TokenMatches compares in constant time. An unissued token never matches.
func (j *JobCard) TokenMatches(token string) bool {
	if j.publicToken == "" || token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(j.publicToken), []byte(token)) == 1
}
