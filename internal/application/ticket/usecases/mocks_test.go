package usecases

import (
	"context"
	"sync"

	"github.com/estatedesk/estatedesk/internal/domain/admin"
	"github.com/estatedesk/estatedesk/internal/domain/property"
	"github.com/estatedesk/estatedesk/internal/domain/tenant"
	"github.com/estatedesk/estatedesk/internal/domain/ticket"
	"github.com/estatedesk/estatedesk/internal/shared/errors"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
)

// mockTicketRepo keeps tickets in memory. Func fields override the default
// behaviour when set.
type mockTicketRepo struct {
	mu          sync.Mutex
	tickets     map[uint]*ticket.Ticket
	nextID      uint
	UpdateFunc  func(ctx context.Context, t *ticket.Ticket) error
	ListFunc    func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error)
	lastFilter  ticket.Filter
	lockedReads int
}

func newMockTicketRepo(tickets ...*ticket.Ticket) *mockTicketRepo {
	m := &mockTicketRepo{tickets: map[uint]*ticket.Ticket{}}
	for _, t := range tickets {
		m.tickets[t.ID()] = t
		if t.ID() > m.nextID {
			m.nextID = t.ID()
		}
	}
	return m
}

func (m *mockTicketRepo) Create(ctx context.Context, t *ticket.Ticket) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	if err := t.SetID(m.nextID); err != nil {
		return err
	}
	m.tickets[t.ID()] = t
	return nil
}

func (m *mockTicketRepo) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tickets[t.ID()] = t
	return nil
}

func (m *mockTicketRepo) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tickets[id]
	if !ok {
		return nil, errors.NewNotFoundError("ticket not found")
	}
	return t, nil
}

func (m *mockTicketRepo) GetByIDForUpdate(ctx context.Context, id uint) (*ticket.Ticket, error) {
	m.mu.Lock()
	m.lockedReads++
	m.mu.Unlock()
	return m.GetByID(ctx, id)
}

func (m *mockTicketRepo) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	m.lastFilter = filter
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepo) CountByUser(ctx context.Context, userID uint) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, t := range m.tickets {
		if t.UserID() == userID {
			n++
		}
	}
	return n, nil
}

type mockUpdateRepo struct {
	updates    []*ticket.Update
	CreateFunc func(ctx context.Context, u *ticket.Update) error
}

func (m *mockUpdateRepo) Create(ctx context.Context, u *ticket.Update) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	u.SetID(uint(len(m.updates) + 1))
	m.updates = append(m.updates, u)
	return nil
}

func (m *mockUpdateRepo) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Update, error) {
	var out []*ticket.Update
	for _, u := range m.updates {
		if u.TicketID() == ticketID {
			out = append(out, u)
		}
	}
	return out, nil
}

type mockReassignmentRepo struct {
	rows []*ticket.Reassignment
}

func (m *mockReassignmentRepo) Create(ctx context.Context, r *ticket.Reassignment) error {
	r.SetID(uint(len(m.rows) + 1))
	m.rows = append(m.rows, r)
	return nil
}

func (m *mockReassignmentRepo) LatestCount(ctx context.Context, ticketID uint) (int, error) {
	latest := 0
	for _, r := range m.rows {
		if r.TicketID() == ticketID {
			latest = r.ReassignCount()
		}
	}
	return latest, nil
}

func (m *mockReassignmentRepo) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Reassignment, error) {
	var out []*ticket.Reassignment
	for _, r := range m.rows {
		if r.TicketID() == ticketID {
			out = append(out, r)
		}
	}
	return out, nil
}

type mockMediaRepo struct {
	items []*ticket.Media
}

func (m *mockMediaRepo) Create(ctx context.Context, media *ticket.Media) error {
	media.SetID(uint(len(m.items) + 1))
	m.items = append(m.items, media)
	return nil
}

func (m *mockMediaRepo) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Media, error) {
	var out []*ticket.Media
	for _, media := range m.items {
		if media.TicketID() == ticketID {
			out = append(out, media)
		}
	}
	return out, nil
}

type mockTenantRepo struct {
	tenants map[uint]*tenant.Tenant
}

func newMockTenantRepo(tenants ...*tenant.Tenant) *mockTenantRepo {
	m := &mockTenantRepo{tenants: map[uint]*tenant.Tenant{}}
	for _, t := range tenants {
		m.tenants[t.ID()] = t
	}
	return m
}

func (m *mockTenantRepo) Create(ctx context.Context, t *tenant.Tenant) error {
	t.SetID(uint(len(m.tenants) + 1))
	m.tenants[t.ID()] = t
	return nil
}

func (m *mockTenantRepo) Update(ctx context.Context, t *tenant.Tenant) error {
	m.tenants[t.ID()] = t
	return nil
}

func (m *mockTenantRepo) Delete(ctx context.Context, id uint) error {
	delete(m.tenants, id)
	return nil
}

func (m *mockTenantRepo) GetByID(ctx context.Context, id uint) (*tenant.Tenant, error) {
	t, ok := m.tenants[id]
	if !ok {
		return nil, errors.NewNotFoundError("tenant not found")
	}
	return t, nil
}

func (m *mockTenantRepo) GetByContact(ctx context.Context, contact string) (*tenant.Tenant, error) {
	for _, t := range m.tenants {
		if t.Contact() == contact {
			return t, nil
		}
	}
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

func newMockAdminRepo(admins ...*admin.Admin) *mockAdminRepo {
	m := &mockAdminRepo{admins: map[uint]*admin.Admin{}}
	for _, a := range admins {
		m.admins[a.ID()] = a
	}
	return m
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
	var out []*admin.Admin
	for _, id := range ids {
		if a, ok := m.admins[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockAdminRepo) List(ctx context.Context, filter admin.Filter) ([]*admin.Admin, int64, error) {
	return nil, 0, nil
}

type notifyCall struct {
	Kind string
	To   string
	Args []string
}

type mockNotifier struct {
	calls []notifyCall
	err   error
}

func (m *mockNotifier) record(kind, to string, args ...string) error {
	m.calls = append(m.calls, notifyCall{Kind: kind, To: to, Args: args})
	return m.err
}

func (m *mockNotifier) TicketUpdated(ctx context.Context, to, ticketNumber, text string) error {
	return m.record("updated", to, ticketNumber, text)
}

func (m *mockNotifier) TicketAssigned(ctx context.Context, to, ticketNumber, category, description string) error {
	return m.record("assigned", to, ticketNumber, category, description)
}

func (m *mockNotifier) StatusChanged(ctx context.Context, to, tenantName, ticketNumber, status string) error {
	return m.record("status", to, tenantName, ticketNumber, status)
}

func (m *mockNotifier) JobCardLink(ctx context.Context, to, ticketNumber, link string) error {
	return m.record("link", to, ticketNumber, link)
}

func (m *mockNotifier) kinds() []string {
	out := make([]string, 0, len(m.calls))
	for _, c := range m.calls {
		out = append(out, c.Kind)
	}
	return out
}

type mockProvisioner struct {
	EnsureForTicketFunc   func(ctx context.Context, ticketID uint, copyMedia bool) (uint, error)
	EnsurePublicTokenFunc func(ctx context.Context, jobCardID uint) (string, error)
	ensured               []uint
}

func (m *mockProvisioner) EnsureForTicket(ctx context.Context, ticketID uint, copyMedia bool) (uint, error) {
	m.ensured = append(m.ensured, ticketID)
	if m.EnsureForTicketFunc != nil {
		return m.EnsureForTicketFunc(ctx, ticketID, copyMedia)
	}
	return 100 + ticketID, nil
}

func (m *mockProvisioner) EnsurePublicToken(ctx context.Context, jobCardID uint) (string, error) {
	if m.EnsurePublicTokenFunc != nil {
		return m.EnsurePublicTokenFunc(ctx, jobCardID)
	}
	return "tok", nil
}

type staticLinks string

func (s staticLinks) PublicBaseURL(context.Context) string { return string(s) }

// fakeTx runs fn inline and records whether it returned an error.
type fakeTx struct {
	calls    int
	failures int
}

func (f *fakeTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	err := fn(ctx)
	if err != nil {
		f.failures++
	}
	return err
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
