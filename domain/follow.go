package domain

import "time"

// Follow represents a self-referential many-to-many relationship between two
// users. The FollowerID is the id of the user that follows, the FollowingID
// the id of the user being followed. As with likes, the composite primary key
// on the pair is the record's identity and the duplicate guard.
type Follow struct {
	FollowerID  int  `json:"follower_id" gorm:"primaryKey"`
	Follower    User `json:"-"`
	FollowingID int  `json:"following_id" gorm:"primaryKey"`
	Followed    User `json:"-" gorm:"foreignKey:FollowingID"`

	CreatedAt time.Time `json:"created_at"`
}

// FollowService is a set of methods to manipulate and work with the Follow model.
type FollowService interface {
	// Create inserts the follow. Duplicates and self-follows fail with
	// errs.ECONFLICT, an unknown followed user with errs.ENOTFOUND.
	Create(follow *Follow) error
	// Delete removes the follow if present, errs.ENOTFOUND otherwise.
	Delete(follow *Follow) error
}
