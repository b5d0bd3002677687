package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTicketStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    TicketStatus
		wantErr bool
	}{
		{"Open", StatusOpen, false},
		{"in_progress", StatusInProgress, false},
		{"In Progress", StatusInProgress, false},
		{"RESOLVED", StatusResolved, false},
		{"Closed", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NewTicketStatus(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategory(t *testing.T) {
	c, err := NewCategory("plumbing")
	require.NoError(t, err)
	assert.Equal(t, CategoryPlumbing, c)

	_, err = NewCategory("gardening")
	assert.Error(t, err)

	c, ok := CategoryByMenuIndex(2)
	assert.True(t, ok)
	assert.Equal(t, CategoryElectrical, c)

	_, ok = CategoryByMenuIndex(0)
	assert.False(t, ok)
	_, ok = CategoryByMenuIndex(len(AllCategories()) + 1)
	assert.False(t, ok)
}
