package main

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"chirper/domain"
)

// testDB opens a migrated in-memory database wrapped in the app's DB handle.
func testDB(t *testing.T) *DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	db := &DB{Gorm: gdb, ConnectionInfo: ":memory:"}
	require.NoError(t, AutoMigrate(db))
	return db
}

func TestDestructiveReset(t *testing.T) {
	db := testDB(t)
	require.NoError(t, Seed(db))

	var count int64
	require.NoError(t, db.Gorm.Model(&domain.User{}).Count(&count).Error)
	require.NotZero(t, count)

	require.NoError(t, DestructiveReset(db))

	// The tables exist again, but empty.
	require.NoError(t, db.Gorm.Model(&domain.User{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Gorm.Model(&domain.Tweet{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Gorm.Model(&domain.Like{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSeed_SkipsPopulatedDatabase(t *testing.T) {
	db := testDB(t)
	require.NoError(t, Seed(db))
	require.NoError(t, Seed(db))

	var count int64
	require.NoError(t, db.Gorm.Model(&domain.User{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}
