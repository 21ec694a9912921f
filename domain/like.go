package domain

import "time"

// Like represents a many-to-many relationship between a User and a Tweet.
// The pair (TweetID, UserID) is the record's identity, there is no surrogate
// id. The composite primary key makes the database reject a second like for
// the same pair, which is how duplicate requests are serialized.
type Like struct {
	TweetID int  `json:"tweet_id" gorm:"primaryKey"`
	UserID  int  `json:"user_id" gorm:"primaryKey"`
	User    User `json:"user"`

	CreatedAt time.Time `json:"created_at"`
}

// LikeService is a set of methods to manipulate and work with the Like model.
type LikeService interface {
	// Create inserts the like. A duplicate pair fails with errs.ECONFLICT,
	// a missing tweet with errs.ENOTFOUND.
	Create(like *Like) error
	// Delete removes the like if present, errs.ENOTFOUND otherwise.
	// Repeated calls are safe no-ops.
	Delete(like *Like) error
}
