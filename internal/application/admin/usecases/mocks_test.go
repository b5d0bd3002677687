package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/estatedesk/estatedesk/internal/domain/admin"
	"github.com/estatedesk/estatedesk/internal/shared/authorization"
	"github.com/estatedesk/estatedesk/internal/shared/errors"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
)

type mockAdminRepo struct {
	admins    map[uint]*admin.Admin
	nextID    uint
	deleted   []uint
	CreateErr error
}

func newMockAdminRepo(admins ...*admin.Admin) *mockAdminRepo {
	m := &mockAdminRepo{admins: map[uint]*admin.Admin{}, nextID: 100}
	for _, a := range admins {
		m.admins[a.ID()] = a
	}
	return m
}

func (m *mockAdminRepo) Create(ctx context.Context, a *admin.Admin) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.nextID++
	a.SetID(m.nextID)
	m.admins[a.ID()] = a
	return nil
}

func (m *mockAdminRepo) Update(ctx context.Context, a *admin.Admin) error {
	m.admins[a.ID()] = a
	return nil
}

func (m *mockAdminRepo) Delete(ctx context.Context, id uint) error {
	delete(m.admins, id)
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockAdminRepo) GetByID(ctx context.Context, id uint) (*admin.Admin, error) {
	a, ok := m.admins[id]
	if !ok {
		return nil, errors.NewNotFoundError("admin not found")
	}
	return a, nil
}

func (m *mockAdminRepo) GetByUsername(ctx context.Context, username string) (*admin.Admin, error) {
	for _, a := range m.admins {
		if strings.EqualFold(a.Username(), username) {
			return a, nil
		}
	}
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
	var out []*admin.Admin
	for _, a := range m.admins {
		if filter.Role != nil && a.Role() != *filter.Role {
			continue
		}
		out = append(out, a)
	}
	return out, int64(len(out)), nil
}

// fakeHasher prefixes the password so hashes are predictable in assertions.
type fakeHasher struct {
	err error
}

func (h fakeHasher) Hash(pw string) (string, error) {
	if h.err != nil {
		return "", h.err
	}
	return "hashed:" + pw, nil
}

func (h fakeHasher) Verify(hash, pw string) error {
	if hash != "hashed:"+pw {
		return fmt.Errorf("mismatch")
	}
	return nil
}

type fakeIssuer struct {
	issued []uint
}

func (f *fakeIssuer) Issue(adminID uint, name string, role authorization.AdminRole) (string, int64, error) {
	f.issued = append(f.issued, adminID)
	return fmt.Sprintf("token-%d", adminID), int64(time.Hour.Seconds()), nil
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
