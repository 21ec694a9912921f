package crud

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"chirper/domain"
)

// testDB opens a fresh in-memory sqlite database with the app's schema.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A :memory: database exists per connection; a second pooled connection
	// would see an empty schema.
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Tweet{},
		&domain.Media{},
		&domain.Follow{},
		&domain.Like{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, key, name string) *domain.User {
	t.Helper()
	user := domain.User{APIKey: key, Name: name}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func seedTweet(t *testing.T, db *gorm.DB, user *domain.User, content string) *domain.Tweet {
	t.Helper()
	tweet := domain.Tweet{UserID: user.ID, Content: content}
	require.NoError(t, db.Create(&tweet).Error)
	return &tweet
}
