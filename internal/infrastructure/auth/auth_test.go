package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/estatedesk/estatedesk/internal/shared/authorization"
)

func TestBcryptPasswordHasher(t *testing.T) {
	h := NewBcryptPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.NoError(t, h.Verify(hash, "s3cret-pass"))
	assert.Error(t, h.Verify(hash, "wrong"))
	assert.Error(t, h.Verify("not-a-hash", "s3cret-pass"))
}

func TestNewBcryptPasswordHasher_ClampsCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptPasswordHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptPasswordHasher(99).cost)
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 60)

	token, expiresIn, err := svc.Issue(7, "Alice", authorization.RolePropertySupervisor)
	require.NoError(t, err)
	assert.Equal(t, int64(3600), expiresIn)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.AdminID)
	assert.Equal(t, "Alice", claims.Name)
	assert.Equal(t, authorization.RolePropertySupervisor, claims.Role)
}

func TestJWTService_RejectsExpiredAndForeignTokens(t *testing.T) {
	svc := NewJWTService("test-secret", 1)
	token, _, err := svc.Issue(1, "Bob", authorization.RoleAdmin)
	require.NoError(t, err)

	later := time.Now().UTC().Add(2 * time.Hour)
	svc.now = func() time.Time { return later }
	_, err = svc.Verify(token)
	assert.Error(t, err)

	other := NewJWTService("other-secret", 60)
	foreign, _, err := other.Issue(1, "Bob", authorization.RoleAdmin)
	require.NoError(t, err)
	_, err = NewJWTService("test-secret", 60).Verify(foreign)
	assert.Error(t, err)
}
