package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estatedesk/estatedesk/internal/shared/authorization"
)

func TestNewAdmin_PropertyOnlyForCaretaker(t *testing.T) {
	pid := uint(4)

	caretaker, err := NewAdmin("joe", "hash", Profile{Name: "Joe", Role: authorization.RoleCaretaker, PropertyID: &pid})
	require.NoError(t, err)
	require.NotNil(t, caretaker.PropertyID())
	assert.Equal(t, pid, *caretaker.PropertyID())

	supervisor, err := NewAdmin("sue", "hash", Profile{Name: "Sue", Role: authorization.RolePropertySupervisor, PropertyID: &pid})
	require.NoError(t, err)
	assert.Nil(t, supervisor.PropertyID())
	assert.True(t, supervisor.IsPropertySupervisor())
}

func TestNewAdmin_Validation(t *testing.T) {
	_, err := NewAdmin("", "hash", Profile{Name: "A", Role: authorization.RoleAdmin})
	assert.Error(t, err)
	_, err = NewAdmin("a", "", Profile{Name: "A", Role: authorization.RoleAdmin})
	assert.Error(t, err)
	_, err = NewAdmin("a", "hash", Profile{Name: "A", Role: "boss"})
	assert.Error(t, err)
}

func TestUpdateProfile_ClearsPropertyOnRoleChange(t *testing.T) {
	pid := uint(4)
	a, err := NewAdmin("joe", "hash", Profile{Name: "Joe", Role: authorization.RoleCaretaker, PropertyID: &pid})
	require.NoError(t, err)

	require.NoError(t, a.UpdateProfile(Profile{Name: "Joe", Role: authorization.RoleAdmin, PropertyID: &pid}))
	assert.Nil(t, a.PropertyID())
}
