package main

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"chirper/domain"
)

// DB provides the database connection.
type DB struct {
	// Object-relational mapping.
	Gorm *gorm.DB
	// Connection info string containing database name, user, port etc.
	ConnectionInfo string
}

// NewDB returns a new instance of DB.
func NewDB(connectionInfo string) *DB {
	return &DB{
		ConnectionInfo: connectionInfo,
	}
}

// Open opens a new database connection. Driver errors for unique and foreign
// key violations are translated into gorm's typed errors, which is what the
// crud services key their duplicate-suppression on. Query logging depends on
// whether we're in development or in production.
func Open(db *DB, isProd bool) (err error) {
	if db.ConnectionInfo == "" {
		return fmt.Errorf("connectionInfo required")
	}
	cfg := &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Info),
	}
	if isProd {
		cfg.Logger = logger.Default.LogMode(logger.Silent)
	}
	db.Gorm, err = gorm.Open(postgres.Open(db.ConnectionInfo), cfg)
	if err != nil {
		return fmt.Errorf("err opening gorm postgres connection: %w", err)
	}
	return nil
}

// AutoMigrate runs database migrations for all tables.
func AutoMigrate(db *DB) error {
	return db.Gorm.AutoMigrate(
		&domain.User{},
		&domain.Tweet{},
		&domain.Media{},
		&domain.Follow{},
		&domain.Like{},
	)
}

// DestructiveReset drops all tables and rebuilds them.
func DestructiveReset(db *DB) error {
	err := db.Gorm.Migrator().DropTable(
		&domain.User{},
		&domain.Tweet{},
		&domain.Media{},
		&domain.Follow{},
		&domain.Like{},
	)
	if err != nil {
		return err
	}
	return AutoMigrate(db)
}

// Seed loads the demo dataset: two users, a follow, two media blobs, two
// tweets and a like. Users have no registration endpoint, so this is the
// out-of-band way records get in during development. It's a no-op when users
// already exist.
func Seed(db *DB) error {
	var count int64
	if err := db.Gorm.Model(&domain.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return db.Gorm.Transaction(func(tx *gorm.DB) error {
		userOne := domain.User{APIKey: "test", Name: "name_one"}
		userTwo := domain.User{APIKey: "test2", Name: "name_two"}
		if err := tx.Create(&userOne).Error; err != nil {
			return err
		}
		if err := tx.Create(&userTwo).Error; err != nil {
			return err
		}
		follow := domain.Follow{FollowerID: userOne.ID, FollowingID: userTwo.ID}
		if err := tx.Create(&follow).Error; err != nil {
			return err
		}
		mediaOne := domain.Media{File: []byte("abcd"), ContentType: "image/png"}
		mediaTwo := domain.Media{File: []byte("efgh"), ContentType: "image/png"}
		if err := tx.Create(&mediaOne).Error; err != nil {
			return err
		}
		if err := tx.Create(&mediaTwo).Error; err != nil {
			return err
		}
		tweetOne := domain.Tweet{UserID: userOne.ID, Content: "some_text", MediaIDs: []int{mediaOne.ID, mediaTwo.ID}}
		tweetTwo := domain.Tweet{UserID: userTwo.ID, Content: "some_text2", MediaIDs: []int{mediaTwo.ID}}
		if err := tx.Create(&tweetOne).Error; err != nil {
			return err
		}
		if err := tx.Create(&tweetTwo).Error; err != nil {
			return err
		}
		if err := tx.Model(&domain.Media{}).Where("id = ?", mediaOne.ID).Update("tweet_id", tweetOne.ID).Error; err != nil {
			return err
		}
		if err := tx.Model(&domain.Media{}).Where("id = ?", mediaTwo.ID).Update("tweet_id", tweetTwo.ID).Error; err != nil {
			return err
		}
		like := domain.Like{TweetID: tweetTwo.ID, UserID: userOne.ID}
		return tx.Create(&like).Error
	})
}

// Close closes the database connection.
func Close(db *DB) error {
	sqlDb, err := db.Gorm.DB()
	if err != nil {
		return err
	}
	return sqlDb.Close()
}
