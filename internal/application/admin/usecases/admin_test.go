package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estatedesk/estatedesk/internal/domain/admin"
	"github.com/estatedesk/estatedesk/internal/shared/authorization"
	"github.com/estatedesk/estatedesk/internal/shared/errors"
)

func uintPtr(v uint) *uint { return &v }

func existingAdmin(id uint, username string, role authorization.AdminRole) *admin.Admin {
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	return admin.ReconstructAdmin(id, username, "hashed:secret123", admin.Profile{
		Name: "Staff " + username,
		Role: role,
	}, now, now)
}

func TestCreateAdmin(t *testing.T) {
	repo := newMockAdminRepo()
	uc := NewCreateAdminUseCase(repo, fakeHasher{}, noopLogger{})

	got, err := uc.Execute(context.Background(), CreateAdminCommand{
		Name:       "Peter Otieno",
		Username:   " peter ",
		Password:   "longenough",
		Role:       "caretaker",
		PropertyID: uintPtr(3),
	})
	require.NoError(t, err)
	assert.Equal(t, "peter", got.Username)
	assert.Equal(t, "caretaker", got.Role)
	require.NotNil(t, got.PropertyID)
	assert.Equal(t, uint(3), *got.PropertyID)
	assert.Equal(t, "hashed:longenough", repo.admins[got.ID].PasswordHash())
}

func TestCreateAdmin_Validation(t *testing.T) {
	tests := []struct {
		name string
		cmd  CreateAdminCommand
	}{
		{"unknown role", CreateAdminCommand{Name: "A", Username: "a", Password: "longenough", Role: "janitor"}},
		{"short password", CreateAdminCommand{Name: "A", Username: "a", Password: "short", Role: "admin"}},
		{"missing name", CreateAdminCommand{Username: "a", Password: "longenough", Role: "admin"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCreateAdminUseCase(newMockAdminRepo(), fakeHasher{}, noopLogger{})
			_, err := uc.Execute(context.Background(), tt.cmd)
			assert.True(t, errors.IsValidationError(err), "got %v", err)
		})
	}
}

func TestCreateAdmin_DuplicateUsername(t *testing.T) {
	repo := newMockAdminRepo(existingAdmin(1, "mary", authorization.RoleAdmin))
	uc := NewCreateAdminUseCase(repo, fakeHasher{}, noopLogger{})

	_, err := uc.Execute(context.Background(), CreateAdminCommand{
		Name: "Mary Two", Username: "Mary", Password: "longenough", Role: "admin",
	})
	assert.True(t, errors.IsConflictError(err))
}

func TestCreateAdmin_RepositoryFailure(t *testing.T) {
	repo := newMockAdminRepo()
	repo.CreateErr = assert.AnError
	uc := NewCreateAdminUseCase(repo, fakeHasher{}, noopLogger{})

	_, err := uc.Execute(context.Background(), CreateAdminCommand{
		Name: "A", Username: "a", Password: "longenough", Role: "admin",
	})
	assert.True(t, errors.IsAppError(err))
	assert.False(t, errors.IsConflictError(err))
}

func TestLogin(t *testing.T) {
	repo := newMockAdminRepo(existingAdmin(5, "joy", authorization.RolePropertySupervisor))
	issuer := &fakeIssuer{}
	uc := NewLoginUseCase(repo, fakeHasher{}, issuer, noopLogger{})

	res, err := uc.Execute(context.Background(), LoginCommand{Username: "joy", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "token-5", res.AccessToken)
	assert.Equal(t, "Bearer", res.TokenType)
	assert.Equal(t, "Property Supervisor", res.Admin.RoleLabel)
	assert.Equal(t, []uint{5}, issuer.issued)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	repo := newMockAdminRepo(existingAdmin(5, "joy", authorization.RoleAdmin))
	tests := []struct {
		name string
		cmd  LoginCommand
	}{
		{"wrong password", LoginCommand{Username: "joy", Password: "nope"}},
		{"unknown user", LoginCommand{Username: "ghost", Password: "secret123"}},
		{"empty", LoginCommand{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issuer := &fakeIssuer{}
			uc := NewLoginUseCase(repo, fakeHasher{}, issuer, noopLogger{})
			_, err := uc.Execute(context.Background(), tt.cmd)
			assert.True(t, errors.IsInvalidCredentialsError(err))
			assert.Empty(t, issuer.issued)
		})
	}
}

func TestUpdateAdmin_ChangesRoleAndPassword(t *testing.T) {
	repo := newMockAdminRepo(existingAdmin(2, "sam", authorization.RoleCaretaker))
	uc := NewUpdateAdminUseCase(repo, fakeHasher{}, noopLogger{})

	got, err := uc.Execute(context.Background(), UpdateAdminCommand{
		AdminID:    2,
		Name:       "Sam K",
		Role:       "admin",
		PropertyID: uintPtr(4),
		Password:   "newsecret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "admin", got.Role)
	assert.Nil(t, got.PropertyID, "only caretakers keep a property")
	assert.Equal(t, "hashed:newsecret1", repo.admins[2].PasswordHash())
}

func TestUpdateAdmin_KeepsPasswordWhenEmpty(t *testing.T) {
	repo := newMockAdminRepo(existingAdmin(2, "sam", authorization.RoleCaretaker))
	uc := NewUpdateAdminUseCase(repo, fakeHasher{}, noopLogger{})

	_, err := uc.Execute(context.Background(), UpdateAdminCommand{AdminID: 2, Name: "Sam", Role: "caretaker"})
	require.NoError(t, err)
	assert.Equal(t, "hashed:secret123", repo.admins[2].PasswordHash())
}

func TestUpdateAdmin_NotFound(t *testing.T) {
	uc := NewUpdateAdminUseCase(newMockAdminRepo(), fakeHasher{}, noopLogger{})
	_, err := uc.Execute(context.Background(), UpdateAdminCommand{AdminID: 9, Name: "X", Role: "admin"})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestDeleteAdmin(t *testing.T) {
	repo := newMockAdminRepo(existingAdmin(1, "root", authorization.RoleSuperAdmin), existingAdmin(2, "sam", authorization.RoleCaretaker))
	uc := NewDeleteAdminUseCase(repo, noopLogger{})

	err := uc.Execute(context.Background(), DeleteAdminCommand{AdminID: 1, ActorID: 1})
	assert.True(t, errors.IsValidationError(err))
	assert.Empty(t, repo.deleted)

	require.NoError(t, uc.Execute(context.Background(), DeleteAdminCommand{AdminID: 2, ActorID: 1}))
	assert.Equal(t, []uint{2}, repo.deleted)

	err = uc.Execute(context.Background(), DeleteAdminCommand{AdminID: 2, ActorID: 1})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestListAdmins_FiltersByRole(t *testing.T) {
	repo := newMockAdminRepo(existingAdmin(1, "root", authorization.RoleSuperAdmin), existingAdmin(2, "sam", authorization.RoleCaretaker))
	uc := NewListAdminsUseCase(repo, noopLogger{})

	got, total, err := uc.Execute(context.Background(), ListAdminsQuery{Role: "caretaker"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, got, 1)
	assert.Equal(t, uint(2), got[0].ID)

	_, _, err = uc.Execute(context.Background(), ListAdminsQuery{Role: "janitor"})
	assert.True(t, errors.IsValidationError(err))
}
