package tenant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTenant(t *testing.T) {
	pid := uint(3)
	tn, err := NewTenant(" Mary ", "254700111222", &pid, " B2 ")
	require.NoError(t, err)
	assert.Equal(t, "Mary", tn.Name())
	assert.Equal(t, "B2", tn.Unit())
	assert.True(t, tn.HasContact())

	_, err = NewTenant("", "254700111222", nil, "")
	assert.Error(t, err)
	_, err = NewTenant("Mary", " ", nil, "")
	assert.Error(t, err)
}

func TestTenant_Update(t *testing.T) {
	tn, err := NewTenant("Mary", "254700111222", nil, "B2")
	require.NoError(t, err)

	require.NoError(t, tn.Update("Mary K", "254700111333", nil, "C1"))
	assert.Equal(t, "254700111333", tn.Contact())

	assert.Error(t, tn.Update("", "254700111333", nil, "C1"))
	assert.Equal(t, "Mary K", tn.Name(), "failed update leaves state")
}
