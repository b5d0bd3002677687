package setting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSystemSetting(t *testing.T) {
	s, err := NewSystemSetting("jobcard", "public_base_url", "", "", nil)
	require.NoError(t, err)
	assert.False(t, s.HasValue())

	uid := uint(1)
	s.SetValue("https://crm.example.com", &uid)
	assert.True(t, s.HasValue())
	assert.Equal(t, &uid, s.UpdatedBy())

	_, err = NewSystemSetting("", "k", "v", "", nil)
	assert.ErrorIs(t, err, ErrInvalidSettingKey)
}
