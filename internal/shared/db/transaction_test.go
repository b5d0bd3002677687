package db

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type widget struct {
	ID   uint `gorm:"primaryKey"`
	Name string
}

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, gdb.AutoMigrate(&widget{}))
	return gdb
}

func TestRunInTransaction_RollsBackOnError(t *testing.T) {
	gdb := setupDB(t)
	tm := NewTransactionManager(gdb)

	err := tm.RunInTransaction(context.Background(), func(ctx context.Context) error {
		assert.True(t, InTransaction(ctx))
		require.NoError(t, GetTxFromContext(ctx, gdb).Create(&widget{Name: "a"}).Error)
		return errors.New("abort")
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, gdb.Model(&widget{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRunInTransaction_NestedJoinsOuter(t *testing.T) {
	gdb := setupDB(t)
	tm := NewTransactionManager(gdb)

	err := tm.RunInTransaction(context.Background(), func(ctx context.Context) error {
		return tm.RunInTransaction(ctx, func(inner context.Context) error {
			return GetTxFromContext(inner, gdb).Create(&widget{Name: "b"}).Error
		})
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, gdb.Model(&widget{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestForUpdate_SkippedOnSQLite(t *testing.T) {
	gdb := setupDB(t)
	require.NoError(t, gdb.Create(&widget{Name: "c"}).Error)

	var w widget
	err := gdb.Scopes(ForUpdate()).First(&w).Error
	require.NoError(t, err)
	assert.Equal(t, "c", w.Name)
}
