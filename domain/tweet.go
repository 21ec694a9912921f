package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Tweet is a short message posted by a user. MediaIDs holds the ids of
// previously uploaded Media records in the exact order the client sent them;
// the order is preserved through storage and rendered back unchanged.
type Tweet struct {
	ID       int                      `json:"id"`
	UserID   int                      `json:"user_id"`
	User     User                     `json:"user"`
	Content  string                   `json:"content" gorm:"notNull"`
	MediaIDs datatypes.JSONSlice[int] `json:"media_ids"`

	Likes []Like `json:"likes" gorm:"foreignKey:TweetID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TweetService is a set of methods to manipulate and work with the Tweet model.
type TweetService interface {
	// Create inserts the tweet and associates its media ids with the new
	// record, all in one transaction.
	Create(tweet *Tweet) error
	// Delete removes the tweet identified by tweet.ID on behalf of the caller
	// in tweet.UserID. Only the author may delete; likes are removed and media
	// detached in the same transaction.
	Delete(tweet *Tweet) error
	ByID(id int) (*Tweet, error)
}
