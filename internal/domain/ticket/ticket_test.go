package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/estatedesk/estatedesk/internal/domain/ticket/valueobjects"
	"github.com/estatedesk/estatedesk/internal/shared/biztime"
)

func uintPtr(v uint) *uint { return &v }

func TestNewTicket(t *testing.T) {
	tk, err := NewTicket(7, "  leaking tap  ", vo.CategoryPlumbing, uintPtr(2), uintPtr(3))
	require.NoError(t, err)

	assert.Equal(t, vo.StatusOpen, tk.Status())
	assert.Equal(t, "leaking tap", tk.Description())
	assert.Nil(t, tk.ResolvedAt())
	assert.Equal(t, biztime.Location(), tk.CreatedAt().Location())
	assert.False(t, tk.IsRead())
}

func TestNewTicket_Validation(t *testing.T) {
	_, err := NewTicket(0, "x", vo.CategoryPlumbing, nil, nil)
	assert.Error(t, err)
	_, err = NewTicket(1, "   ", vo.CategoryPlumbing, nil, nil)
	assert.Error(t, err)
	_, err = NewTicket(1, "x", vo.Category("Garden"), nil, nil)
	assert.Error(t, err)
}

func TestChangeStatus_ResolvedTimestamp(t *testing.T) {
	tk, err := NewTicket(1, "broken door", vo.CategoryCarpentry, nil, nil)
	require.NoError(t, err)

	became, err := tk.ChangeStatus(vo.StatusResolved)
	require.NoError(t, err)
	assert.True(t, became)
	require.NotNil(t, tk.ResolvedAt())

	became, err = tk.ChangeStatus(vo.StatusResolved)
	require.NoError(t, err)
	assert.False(t, became, "already resolved")

	became, err = tk.ChangeStatus(vo.StatusInProgress)
	require.NoError(t, err)
	assert.False(t, became)
	assert.Nil(t, tk.ResolvedAt(), "reopening clears resolved timestamp")

	_, err = tk.ChangeStatus(vo.TicketStatus("Closed"))
	assert.Error(t, err)
	assert.Equal(t, vo.StatusInProgress, tk.Status())
}

func TestIsOverdue(t *testing.T) {
	now := biztime.Now()
	past := now.Add(-time.Hour)
	tk, err := ReconstructTicket(1, 1, "d", vo.CategoryOther, vo.StatusOpen, nil, nil, &past, false, now, nil, now)
	require.NoError(t, err)
	assert.True(t, tk.IsOverdue(now))

	_, err = tk.ChangeStatus(vo.StatusResolved)
	require.NoError(t, err)
	assert.False(t, tk.IsOverdue(now))
}

func TestNextReassignCount(t *testing.T) {
	const limit = 3

	count := 0
	for i := 1; i <= limit; i++ {
		next, err := NextReassignCount(count, limit, false)
		require.NoError(t, err)
		assert.Equal(t, i, next)
		count = next
	}

	next, err := NextReassignCount(count, limit, false)
	assert.ErrorIs(t, err, ErrReassignLimitReached)
	assert.Equal(t, count, next)

	next, err = NextReassignCount(count, limit, true)
	require.NoError(t, err)
	assert.Equal(t, 4, next)

	next, err = NextReassignCount(-5, limit, false)
	require.NoError(t, err)
	assert.Equal(t, 1, next)
}

func TestNextReassignCount_NeverDecreases(t *testing.T) {
	for latest := 0; latest < 10; latest++ {
		for _, override := range []bool{false, true} {
			next, err := NextReassignCount(latest, 3, override)
			if err != nil {
				continue
			}
			assert.Greater(t, next, latest)
		}
	}
}
