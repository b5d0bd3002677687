package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estatedesk/estatedesk/internal/domain/property"
	"github.com/estatedesk/estatedesk/internal/domain/tenant"
	"github.com/estatedesk/estatedesk/internal/shared/errors"
)

var testNow = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

func uintPtr(v uint) *uint { return &v }

func propertyRepo() *mockPropertyRepo {
	return &mockPropertyRepo{properties: map[uint]*property.Property{
		1: property.ReconstructProperty(1, "Riverside Court", nil, testNow, testNow),
	}}
}

func TestRegisterTenant_NormalizesContact(t *testing.T) {
	tenants := newMockTenantRepo()
	uc := NewRegisterTenantUseCase(tenants, propertyRepo(), noopLogger{})

	got, err := uc.Execute(context.Background(), RegisterTenantCommand{
		Name: "Jane Wanjiku", Contact: "+254 700 111 222", PropertyID: uintPtr(1), Unit: "A4",
	})
	require.NoError(t, err)
	assert.Equal(t, "254700111222", got.Contact)
	assert.Equal(t, "A4", got.Unit)
}

func TestRegisterTenant_Errors(t *testing.T) {
	existing := tenant.ReconstructTenant(7, "Jane", "254700111222", nil, "", testNow, testNow)
	tests := []struct {
		name  string
		cmd   RegisterTenantCommand
		check func(error) bool
	}{
		{"duplicate contact", RegisterTenantCommand{Name: "Other", Contact: "254700111222"}, errors.IsConflictError},
		{"bad contact", RegisterTenantCommand{Name: "Other", Contact: "call me"}, errors.IsValidationError},
		{"missing name", RegisterTenantCommand{Contact: "254700999888"}, errors.IsValidationError},
		{"unknown property", RegisterTenantCommand{Name: "Other", Contact: "254700999888", PropertyID: uintPtr(9)}, errors.IsValidationError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewRegisterTenantUseCase(newMockTenantRepo(existing), propertyRepo(), noopLogger{})
			_, err := uc.Execute(context.Background(), tt.cmd)
			assert.True(t, tt.check(err), "got %v", err)
		})
	}
}

func TestUpdateTenant(t *testing.T) {
	jane := tenant.ReconstructTenant(7, "Jane", "254700111222", nil, "", testNow, testNow)
	john := tenant.ReconstructTenant(8, "John", "254700333444", nil, "", testNow, testNow)
	tenants := newMockTenantRepo(jane, john)
	uc := NewUpdateTenantUseCase(tenants, propertyRepo(), noopLogger{})

	got, err := uc.Execute(context.Background(), UpdateTenantCommand{
		TenantID: 7, Name: "Jane W", Contact: "254700111222", PropertyID: uintPtr(1), Unit: "B2",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane W", got.Name)
	assert.Equal(t, "B2", got.Unit)

	_, err = uc.Execute(context.Background(), UpdateTenantCommand{TenantID: 7, Name: "Jane", Contact: "254700333444"})
	assert.True(t, errors.IsConflictError(err))

	_, err = uc.Execute(context.Background(), UpdateTenantCommand{TenantID: 99, Name: "X", Contact: "254700555666"})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestDeleteTenant(t *testing.T) {
	jane := tenant.ReconstructTenant(7, "Jane", "254700111222", nil, "", testNow, testNow)
	john := tenant.ReconstructTenant(8, "John", "254700333444", nil, "", testNow, testNow)
	tenants := newMockTenantRepo(jane, john)
	tickets := &mockTicketRepo{counts: map[uint]int64{7: 2}}
	uc := NewDeleteTenantUseCase(tenants, tickets, noopLogger{})

	err := uc.Execute(context.Background(), 7)
	assert.True(t, errors.IsConflictError(err))
	assert.Contains(t, tenants.tenants, uint(7))

	require.NoError(t, uc.Execute(context.Background(), 8))
	assert.NotContains(t, tenants.tenants, uint(8))

	assert.True(t, errors.IsNotFoundError(uc.Execute(context.Background(), 8)))
}

func TestListTenants(t *testing.T) {
	tenants := newMockTenantRepo(
		tenant.ReconstructTenant(7, "Jane", "254700111222", uintPtr(1), "A4", testNow, testNow),
		tenant.ReconstructTenant(8, "John", "254700333444", nil, "", testNow, testNow),
	)
	uc := NewListTenantsUseCase(tenants, noopLogger{})

	got, total, err := uc.Execute(context.Background(), ListTenantsQuery{PropertyID: uintPtr(1)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, got, 1)
	assert.Equal(t, "Jane", got[0].Name)
}
