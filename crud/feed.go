package crud

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"chirper/domain"
	"chirper/errs"
)

// FeedService assembles the read-side views: a caller's timeline and a user's
// profile. It only ever reads; the views are composed from several queries
// that are not wrapped in one snapshot, which is fine for a feed.
//
// Which tweets a timeline shows is governed by the configured scope, see
// domain.FeedScope. The default, FeedScopeFollowing, reads "tweets for this
// user's feed" as the tweets of the people the user follows.
// It implements the domain.FeedService interface.
type FeedService struct {
	feedGorm
}

// feedGorm runs the read queries behind the feed and profile views.
type feedGorm struct {
	db    *gorm.DB
	scope domain.FeedScope
}

// NewFeedService returns an instance of FeedService with the given scope.
func NewFeedService(db *gorm.DB, scope domain.FeedScope) (*FeedService, error) {
	if !scope.Valid() {
		return nil, fmt.Errorf("unknown feed scope %q", scope)
	}
	return &FeedService{
		feedGorm{
			db:    db,
			scope: scope,
		},
	}, nil
}

// Ensure the FeedService struct properly implements the domain.FeedService interface.
// If it does not, then this expression becomes invalid and won't compile.
var _ domain.FeedService = &FeedService{}

// TimelineFor returns the tweets of the caller's feed in creation order
// (tweet id ascending), each with its author, attachment locators and likes.
func (fg *feedGorm) TimelineFor(user *domain.User) ([]domain.TweetView, error) {
	var tweets []domain.Tweet
	q := fg.db.
		Preload("User").
		Preload("Likes.User").
		Order("tweets.id asc")
	switch fg.scope {
	case domain.FeedScopeSelf:
		q = q.Where("tweets.user_id = ?", user.ID)
	default:
		q = q.
			Joins("JOIN follows ON follows.following_id = tweets.user_id").
			Where("follows.follower_id = ?", user.ID)
	}
	if err := q.Find(&tweets).Error; err != nil {
		return nil, err
	}

	views := make([]domain.TweetView, 0, len(tweets))
	for i := range tweets {
		views = append(views, newTweetView(&tweets[i]))
	}
	return views, nil
}

// ProfileFor returns a user's public identity together with their full
// follower and following lists.
func (fg *feedGorm) ProfileFor(userID int) (*domain.ProfileView, error) {
	var user domain.User
	err := fg.db.
		Preload("Followers.Follower").
		Preload("Following.Followed").
		First(&user, "id = ?", userID).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.Errorf(errs.ENOTFOUND, "The user does not exist.")
		}
		return nil, err
	}

	profile := &domain.ProfileView{
		ID:        user.ID,
		Name:      user.Name,
		Followers: make([]domain.UserView, 0, len(user.Followers)),
		Following: make([]domain.UserView, 0, len(user.Following)),
	}
	for _, f := range user.Followers {
		profile.Followers = append(profile.Followers, domain.UserView{
			ID:   f.Follower.ID,
			Name: f.Follower.Name,
		})
	}
	for _, f := range user.Following {
		profile.Following = append(profile.Following, domain.UserView{
			ID:   f.Followed.ID,
			Name: f.Followed.Name,
		})
	}
	return profile, nil
}

// newTweetView flattens a loaded Tweet into its timeline rendering. Media is
// rendered as retrieval locators in attachment order, never as raw bytes.
func newTweetView(tweet *domain.Tweet) domain.TweetView {
	view := domain.TweetView{
		ID:          tweet.ID,
		Content:     tweet.Content,
		MediaIDs:    tweet.MediaIDs,
		Attachments: make([]string, 0, len(tweet.MediaIDs)),
		Author: domain.UserView{
			ID:   tweet.User.ID,
			Name: tweet.User.Name,
		},
		Likes: make([]domain.LikeView, 0, len(tweet.Likes)),
	}
	for _, mediaID := range tweet.MediaIDs {
		view.Attachments = append(view.Attachments, MediaPath(mediaID))
	}
	for _, like := range tweet.Likes {
		view.Likes = append(view.Likes, domain.LikeView{
			UserID: like.UserID,
			Name:   like.User.Name,
		})
	}
	return view
}

// MediaPath returns the retrieval locator for a media id.
func MediaPath(id int) string {
	return fmt.Sprintf("/api/medias/%d", id)
}
