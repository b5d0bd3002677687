package usecases

import (
	"context"
	"strings"

	"github.com/estatedesk/estatedesk/internal/domain/admin"
	"github.com/estatedesk/estatedesk/internal/domain/property"
	"github.com/estatedesk/estatedesk/internal/shared/errors"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
)

type mockPropertyRepo struct {
	properties map[uint]*property.Property
	nextID     uint
}

func newMockPropertyRepo(props ...*property.Property) *mockPropertyRepo {
	m := &mockPropertyRepo{properties: map[uint]*property.Property{}, nextID: 10}
	for _, p := range props {
		m.properties[p.ID()] = p
	}
	return m
}

func (m *mockPropertyRepo) Create(ctx context.Context, p *property.Property) error {
	m.nextID++
	p.SetID(m.nextID)
	m.properties[p.ID()] = p
	return nil
}

func (m *mockPropertyRepo) Update(ctx context.Context, p *property.Property) error {
	m.properties[p.ID()] = p
	return nil
}

func (m *mockPropertyRepo) GetByID(ctx context.Context, id uint) (*property.Property, error) {
	p, ok := m.properties[id]
	if !ok {
		return nil, errors.NewNotFoundError("property not found")
	}
	return p, nil
}

func (m *mockPropertyRepo) GetByName(ctx context.Context, name string) (*property.Property, error) {
	for _, p := range m.properties {
		if strings.EqualFold(p.Name(), strings.TrimSpace(name)) {
			return p, nil
		}
	}
	return nil, nil
}

func (m *mockPropertyRepo) List(ctx context.Context) ([]*property.Property, error) {
	out := make([]*property.Property, 0, len(m.properties))
	for _, p := range m.properties {
		out = append(out, p)
	}
	return out, nil
}

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
	return nil, nil
}

func (m *mockAdminRepo) List(ctx context.Context, filter admin.Filter) ([]*admin.Admin, int64, error) {
	return nil, 0, nil
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
