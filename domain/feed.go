package domain

// FeedScope selects which tweets make up a user's timeline. The product's
// history knows two readings of "tweets for this user's feed": the tweets of
// the people the user follows, and the user's own tweets. The choice is an
// explicit configuration value rather than a silent default.
type FeedScope string

const (
	// FeedScopeFollowing renders tweets authored by users the caller follows.
	FeedScopeFollowing FeedScope = "following"
	// FeedScopeSelf renders the caller's own tweets.
	FeedScopeSelf FeedScope = "self"
)

// Valid reports whether the scope is one of the known values.
func (fs FeedScope) Valid() bool {
	return fs == FeedScopeFollowing || fs == FeedScopeSelf
}

// UserView is the public identity of a user as embedded in feed and profile
// responses.
type UserView struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// LikeView names a user who liked a tweet.
type LikeView struct {
	UserID int    `json:"user_id"`
	Name   string `json:"name"`
}

// TweetView is one tweet as rendered in a timeline. Attachments are retrieval
// locators for the tweet's media, in the order the media ids were attached,
// never the raw bytes.
type TweetView struct {
	ID          int        `json:"id"`
	Content     string     `json:"content"`
	MediaIDs    []int      `json:"media_ids"`
	Attachments []string   `json:"attachments"`
	Author      UserView   `json:"author"`
	Likes       []LikeView `json:"likes"`
}

// ProfileView is a user's public identity plus their full follower and
// following lists. No pagination.
type ProfileView struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Followers []UserView `json:"followers"`
	Following []UserView `json:"following"`
}

// FeedService assembles the read-side views by joining several graph queries.
// The sub-queries of one view run at slightly different points in time, so a
// composite read is eventually consistent, not a snapshot.
type FeedService interface {
	TimelineFor(user *User) ([]TweetView, error)
	ProfileFor(userID int) (*ProfileView, error)
}
