package usecases

import (
	"context"
	"sync"

	"github.com/estatedesk/estatedesk/internal/domain/admin"
	"github.com/estatedesk/estatedesk/internal/domain/jobcard"
	"github.com/estatedesk/estatedesk/internal/domain/property"
	"github.com/estatedesk/estatedesk/internal/domain/tenant"
	"github.com/estatedesk/estatedesk/internal/domain/ticket"
	"github.com/estatedesk/estatedesk/internal/shared/errors"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
)

type mockJobCardRepo struct {
	mu         sync.Mutex
	cards      map[uint]*jobcard.JobCard
	nextID     uint
	CreateFunc func(ctx context.Context, j *jobcard.JobCard) error
	updates    int
}

func newMockJobCardRepo(cards ...*jobcard.JobCard) *mockJobCardRepo {
	m := &mockJobCardRepo{cards: map[uint]*jobcard.JobCard{}}
	for _, c := range cards {
		m.cards[c.ID()] = c
		if c.ID() > m.nextID {
			m.nextID = c.ID()
		}
	}
	return m
}

func (m *mockJobCardRepo) Create(ctx context.Context, j *jobcard.JobCard) error {
	if m.CreateFunc != nil {
		if err := m.CreateFunc(ctx, j); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	if err := j.SetID(m.nextID); err != nil {
		return err
	}
	m.cards[j.ID()] = j
	return nil
}

func (m *mockJobCardRepo) Update(ctx context.Context, j *jobcard.JobCard) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updates++
	m.cards[j.ID()] = j
	return nil
}

func (m *mockJobCardRepo) MarkSignedOff(ctx context.Context, j *jobcard.JobCard) error {
	return m.Update(ctx, j)
}

func (m *mockJobCardRepo) GetByIDForUpdate(ctx context.Context, id uint) (*jobcard.JobCard, error) {
	return m.GetByID(ctx, id)
}

func (m *mockJobCardRepo) GetByID(ctx context.Context, id uint) (*jobcard.JobCard, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.cards[id]
	if !ok {
		return nil, errors.NewNotFoundError("job card not found")
	}
	return c, nil
}

func (m *mockJobCardRepo) GetByTicketID(ctx context.Context, ticketID uint) (*jobcard.JobCard, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.cards {
		if c.TicketID() != nil && *c.TicketID() == ticketID {
			return c, nil
		}
	}
	return nil, nil
}

func (m *mockJobCardRepo) SetPublicTokenIfEmpty(ctx context.Context, j *jobcard.JobCard) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := m.cards[j.ID()]
	if stored != nil && stored != j && stored.PublicToken() != "" {
		return stored.PublicToken(), nil
	}
	m.cards[j.ID()] = j
	return j.PublicToken(), nil
}

func (m *mockJobCardRepo) List(ctx context.Context, filter jobcard.Filter) ([]*jobcard.JobCard, int64, error) {
	return nil, 0, nil
}

type mockSignoffRepo struct {
	rows []*jobcard.Signoff
}

func (m *mockSignoffRepo) Create(ctx context.Context, s *jobcard.Signoff) error {
	s.SetID(uint(len(m.rows) + 1))
	m.rows = append(m.rows, s)
	return nil
}

func (m *mockSignoffRepo) ListByJobCard(ctx context.Context, jobCardID uint) ([]*jobcard.Signoff, error) {
	var out []*jobcard.Signoff
	for _, s := range m.rows {
		if s.JobCardID() == jobCardID {
			out = append(out, s)
		}
	}
	return out, nil
}

// mockJobCardMediaRepo skips copies whose source row is already on the card.
type mockJobCardMediaRepo struct {
	items []*jobcard.Media
}

func (m *mockJobCardMediaRepo) Create(ctx context.Context, media *jobcard.Media) error {
	media.SetID(uint(len(m.items) + 1))
	m.items = append(m.items, media)
	return nil
}

func (m *mockJobCardMediaRepo) CopyFromTicket(ctx context.Context, media []*jobcard.Media) (int, error) {
	inserted := 0
	for _, c := range media {
		dup := false
		for _, existing := range m.items {
			if existing.JobCardID() == c.JobCardID() && existing.SourceTicketMediaID() != nil &&
				*existing.SourceTicketMediaID() == *c.SourceTicketMediaID() {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		if err := m.Create(ctx, c); err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}

func (m *mockJobCardMediaRepo) ListByJobCard(ctx context.Context, jobCardID uint) ([]*jobcard.Media, error) {
	var out []*jobcard.Media
	for _, media := range m.items {
		if media.JobCardID() == jobCardID {
			out = append(out, media)
		}
	}
	return out, nil
}

type mockTicketRepo struct {
	tickets map[uint]*ticket.Ticket
}

func (m *mockTicketRepo) Create(ctx context.Context, t *ticket.Ticket) error { return nil }
func (m *mockTicketRepo) Update(ctx context.Context, t *ticket.Ticket) error { return nil }

func (m *mockTicketRepo) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	t, ok := m.tickets[id]
	if !ok {
		return nil, errors.NewNotFoundError("ticket not found")
	}
	return t, nil
}

func (m *mockTicketRepo) GetByIDForUpdate(ctx context.Context, id uint) (*ticket.Ticket, error) {
	return m.GetByID(ctx, id)
}

func (m *mockTicketRepo) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	return nil, 0, nil
}

func (m *mockTicketRepo) CountByUser(ctx context.Context, userID uint) (int64, error) { return 0, nil }

type mockUpdateRepo struct {
	updates []*ticket.Update
}

func (m *mockUpdateRepo) Create(ctx context.Context, u *ticket.Update) error {
	m.updates = append(m.updates, u)
	return nil
}

func (m *mockUpdateRepo) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Update, error) {
	return m.updates, nil
}

type mockReassignmentRepo struct {
	rows []*ticket.Reassignment
}

func (m *mockReassignmentRepo) Create(ctx context.Context, r *ticket.Reassignment) error {
	m.rows = append(m.rows, r)
	return nil
}

func (m *mockReassignmentRepo) LatestCount(ctx context.Context, ticketID uint) (int, error) {
	return len(m.rows), nil
}

func (m *mockReassignmentRepo) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Reassignment, error) {
	return m.rows, nil
}

type mockTicketMediaRepo struct {
	items []*ticket.Media
}

func (m *mockTicketMediaRepo) Create(ctx context.Context, media *ticket.Media) error {
	m.items = append(m.items, media)
	return nil
}

func (m *mockTicketMediaRepo) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Media, error) {
	return m.items, nil
}

type mockTenantRepo struct {
	tenants map[uint]*tenant.Tenant
}

func (m *mockTenantRepo) Create(ctx context.Context, t *tenant.Tenant) error { return nil }
func (m *mockTenantRepo) Update(ctx context.Context, t *tenant.Tenant) error { return nil }
func (m *mockTenantRepo) Delete(ctx context.Context, id uint) error          { return nil }

func (m *mockTenantRepo) GetByID(ctx context.Context, id uint) (*tenant.Tenant, error) {
	t, ok := m.tenants[id]
	if !ok {
		return nil, errors.NewNotFoundError("tenant not found")
	}
	return t, nil
}

func (m *mockTenantRepo) GetByContact(ctx context.Context, contact string) (*tenant.Tenant, error) {
	return nil, nil
}

func (m *mockTenantRepo) List(ctx context.Context, filter tenant.Filter) ([]*tenant.Tenant, int64, error) {
	return nil, 0, nil
}

type mockPropertyRepo struct {
	properties map[uint]*property.Property
}

func (m *mockPropertyRepo) Create(ctx context.Context, p *property.Property) error { return nil }
func (m *mockPropertyRepo) Update(ctx context.Context, p *property.Property) error { return nil }

func (m *mockPropertyRepo) GetByID(ctx context.Context, id uint) (*property.Property, error) {
	p, ok := m.properties[id]
	if !ok {
		return nil, errors.NewNotFoundError("property not found")
	}
	return p, nil
}

func (m *mockPropertyRepo) GetByName(ctx context.Context, name string) (*property.Property, error) {
	return nil, nil
}

func (m *mockPropertyRepo) List(ctx context.Context) ([]*property.Property, error) { return nil, nil }

type mockAdminRepo struct {
	admins map[uint]*admin.Admin
}

func (m *mockAdminRepo) Create(ctx context.Context, a *admin.Admin) error { return nil }
func (m *mockAdminRepo) Update(ctx context.Context, a *admin.Admin) error { return nil }
func (m *mockAdminRepo) Delete(ctx context.Context, id uint) error        { return nil }

func (m *mockAdminRepo) GetByID(ctx context.Context, id uint) (*admin.Admin, error) {
	a, ok := m.admins[id]
	if !ok {
		return nil, errors.NewNotFoundError("admin not found")
	}
	return a, nil
}

func (m *mockAdminRepo) GetByUsername(ctx context.Context, username string) (*admin.Admin, error) {
	return nil, nil
}

func (m *mockAdminRepo) GetByIDs(ctx context.Context, ids []uint) ([]*admin.Admin, error) {
	return nil, nil
}

func (m *mockAdminRepo) List(ctx context.Context, filter admin.Filter) ([]*admin.Admin, int64, error) {
	return nil, 0, nil
}

type staticNames ticket.AdminNames

func (s staticNames) Resolve(context.Context, []*ticket.Reassignment) ticket.AdminNames {
	return ticket.AdminNames(s)
}

type mockMailer struct {
	sent       []SignoffNotice
	recipients []string
	err        error
}

func (m *mockMailer) SendSignoffNotice(ctx context.Context, to string, notice SignoffNotice) error {
	m.recipients = append(m.recipients, to)
	m.sent = append(m.sent, notice)
	return m.err
}

type fakeTx struct{}

func (fakeTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any)            {}
func (noopLogger) Info(string, ...any)             {}
func (noopLogger) Warn(string, ...any)             {}
func (noopLogger) Error(string, ...any)            {}
func (l noopLogger) With(...any) logger.Interface  { return l }
func (l noopLogger) Named(string) logger.Interface { return l }
func (noopLogger) Debugw(string, ...any)           {}
func (noopLogger) Infow(string, ...any)            {}
func (noopLogger) Warnw(string, ...any)            {}
func (noopLogger) Errorw(string, ...any)           {}
