package intake

import (
	"context"
	"sync"
	"time"

	tenantdto "github.com/estatedesk/estatedesk/internal/application/tenant/dto"
	tenantUsecases "github.com/estatedesk/estatedesk/internal/application/tenant/usecases"
	ticketdto "github.com/estatedesk/estatedesk/internal/application/ticket/dto"
	ticketUsecases "github.com/estatedesk/estatedesk/internal/application/ticket/usecases"
	"github.com/estatedesk/estatedesk/internal/domain/admin"
	"github.com/estatedesk/estatedesk/internal/domain/property"
	"github.com/estatedesk/estatedesk/internal/domain/tenant"
	"github.com/estatedesk/estatedesk/internal/domain/ticket"
	"github.com/estatedesk/estatedesk/internal/shared/errors"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
)

// tenantStore answers GetByContact and doubles as the registrar.
type tenantStore struct {
	tenant.Repository
	mu      sync.Mutex
	tenants map[string]*tenant.Tenant
	nextID  uint
}

func newTenantStore(tenants ...*tenant.Tenant) *tenantStore {
	s := &tenantStore{tenants: map[string]*tenant.Tenant{}, nextID: 20}
	for _, t := range tenants {
		s.tenants[t.Contact()] = t
	}
	return s
}

func (s *tenantStore) GetByContact(ctx context.Context, contact string) (*tenant.Tenant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tenants[contact], nil
}

func (s *tenantStore) Execute(ctx context.Context, cmd tenantUsecases.RegisterTenantCommand) (*tenantdto.TenantDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, err := tenant.NewTenant(cmd.Name, cmd.Contact, cmd.PropertyID, cmd.Unit)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	s.nextID++
	t.SetID(s.nextID)
	s.tenants[t.Contact()] = t
	return tenantdto.ToTenantDTO(t), nil
}

type propertyList struct {
	property.Repository
	props []*property.Property
}

func (p propertyList) List(ctx context.Context) ([]*property.Property, error) {
	return p.props, nil
}

type adminLookup struct {
	admin.Repository
	admins map[uint]*admin.Admin
}

func (a adminLookup) GetByID(ctx context.Context, id uint) (*admin.Admin, error) {
	if ad, ok := a.admins[id]; ok {
		return ad, nil
	}
	return nil, errors.NewNotFoundError("admin not found")
}

type fakeTickets struct {
	mu       sync.Mutex
	created  []ticketUsecases.CreateTicketCommand
	assignee *uint
	err      error
	delay    time.Duration
}

func (f *fakeTickets) Execute(ctx context.Context, cmd ticketUsecases.CreateTicketCommand) (*ticketdto.TicketDTO, error) {
	time.Sleep(f.delay)
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, cmd)
	id := uint(300 + len(f.created))
	return &ticketdto.TicketDTO{
		ID:              id,
		Number:          ticket.FormatNumber(id),
		UserID:          cmd.UserID,
		Description:     cmd.Description,
		Category:        cmd.Category,
		Status:          "Open",
		AssignedAdminID: f.assignee,
	}, nil
}

type fakeMedia struct {
	mu       sync.Mutex
	attached []ticketUsecases.AddMediaCommand
}

func (f *fakeMedia) Execute(ctx context.Context, cmd ticketUsecases.AddMediaCommand) (*ticketdto.MediaDTO, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.attached = append(f.attached, cmd)
	return &ticketdto.MediaDTO{FileName: cmd.FileName, ContentType: cmd.ContentType}, nil
}

type sent struct {
	To   string
	Text string
}

type fakeMessenger struct {
	mu       sync.Mutex
	texts    []sent
	assigned []sent
}

func (f *fakeMessenger) SendText(ctx context.Context, to, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.texts = append(f.texts, sent{To: to, Text: message})
	return nil
}

func (f *fakeMessenger) TicketAssigned(ctx context.Context, to, ticketNumber, category, description string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.assigned = append(f.assigned, sent{To: to, Text: ticketNumber + " " + category})
	return nil
}

func (f *fakeMessenger) last() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.texts) == 0 {
		return ""
	}
	return f.texts[len(f.texts)-1].Text
}

func (f *fakeMessenger) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.texts)
}

type fakeFetcher struct{}

func (fakeFetcher) FetchMedia(ctx context.Context, mediaID string) ([]byte, string, error) {
	return []byte("jpeg-" + mediaID), "image/jpeg", nil
}

type fakeDedup struct {
	seen map[string]bool
	err  error
}

func (f *fakeDedup) FirstSeen(ctx context.Context, id string, ttl time.Duration) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if f.seen[id] {
		return false, nil
	}
	f.seen[id] = true
	return true, nil
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
