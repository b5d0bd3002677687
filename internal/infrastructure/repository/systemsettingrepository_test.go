package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estatedesk/estatedesk/internal/domain/setting"
)

func TestSystemSettingRepository_Upsert(t *testing.T) {
	repo := NewSystemSettingRepository(setupDB(t), discardLogger())
	ctx := context.Background()

	_, err := repo.GetByKey(ctx, "jobcard", "public_base_url")
	assert.ErrorIs(t, err, setting.ErrSettingNotFound)

	s, err := setting.NewSystemSetting("jobcard", "public_base_url", "https://a.example", "links", nil)
	require.NoError(t, err)
	require.NoError(t, repo.Upsert(ctx, s))
	require.NotZero(t, s.ID())

	again, err := setting.NewSystemSetting("jobcard", "public_base_url", "https://b.example", "links", uintPtr(3))
	require.NoError(t, err)
	require.NoError(t, repo.Upsert(ctx, again))
	assert.Equal(t, s.ID(), again.ID())

	found, err := repo.GetByKey(ctx, "jobcard", "public_base_url")
	require.NoError(t, err)
	assert.Equal(t, "https://b.example", found.Value())
	assert.Equal(t, uint(3), *found.UpdatedBy())

	list, err := repo.GetByCategory(ctx, "jobcard")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
