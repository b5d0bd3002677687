package usecases

import (
	"context"
	"strings"

	"github.com/estatedesk/estatedesk/internal/domain/property"
	"github.com/estatedesk/estatedesk/internal/domain/tenant"
	"github.com/estatedesk/estatedesk/internal/domain/ticket"
	"github.com/estatedesk/estatedesk/internal/shared/errors"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
)

type mockTenantRepo struct {
	tenants map[uint]*tenant.Tenant
	nextID  uint
}

func newMockTenantRepo(tenants ...*tenant.Tenant) *mockTenantRepo {
	m := &mockTenantRepo{tenants: map[uint]*tenant.Tenant{}, nextID: 50}
	for _, t := range tenants {
		m.tenants[t.ID()] = t
	}
	return m
}

func (m *mockTenantRepo) Create(ctx context.Context, t *tenant.Tenant) error {
	m.nextID++
	t.SetID(m.nextID)
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
	var out []*tenant.Tenant
	for _, t := range m.tenants {
		if filter.PropertyID != nil && (t.PropertyID() == nil || *t.PropertyID() != *filter.PropertyID) {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(t.Name()), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, t)
	}
	return out, int64(len(out)), nil
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

// mockTicketRepo only answers CountByUser.
type mockTicketRepo struct {
	ticket.Repository
	counts map[uint]int64
}

func (m *mockTicketRepo) CountByUser(ctx context.Context, userID uint) (int64, error) {
	return m.counts[userID], nil
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
