package domain

import "time"

// User represents a registered user of the app. Users are created out-of-band
// (by the seeder or an admin), never through the public API. The APIKey is the
// opaque credential a client sends in the "api-key" header to identify itself.
type User struct {
	ID     int    `json:"id"`
	APIKey string `json:"-" gorm:"size:50;notNull;uniqueIndex"`
	Name   string `json:"name" gorm:"size:50;notNull"`

	Tweets    []Tweet  `json:"-" gorm:"foreignKey:UserID"`
	Followers []Follow `json:"-" gorm:"foreignKey:FollowingID"`
	Following []Follow `json:"-" gorm:"foreignKey:FollowerID"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// UserService is a set of methods to look up and work with the User model.
type UserService interface {
	// ByAPIKey resolves an opaque api key to the user owning it.
	// It fails with errs.ENOTFOUND if no user holds the key.
	ByAPIKey(key string) (*User, error)
	ByID(id int) (*User, error)
}
