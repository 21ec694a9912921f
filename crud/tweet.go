package crud

import (
	"errors"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"chirper/domain"
	"chirper/errs"
)

// TweetService manages Tweets.
// It implements the domain.TweetService interface.
type TweetService struct {
	tweetValidator
}

// tweetValidator runs validations on incoming Tweet data.
// On success, it passes the data on to tweetGorm.
// Otherwise, it returns the error of the validation that has failed.
type tweetValidator struct {
	tweetGorm
}

// tweetGorm runs CRUD operations on the database using incoming Tweet data.
// It assumes that data has been validated. On success, it returns nil.
// Otherwise, it returns the error of the operation that has failed.
type tweetGorm struct {
	db *gorm.DB
}

// NewTweetService returns an instance of TweetService.
func NewTweetService(db *gorm.DB) *TweetService {
	return &TweetService{
		tweetValidator{
			tweetGorm{
				db: db,
			},
		},
	}
}

// Ensure the TweetService struct properly implements the domain.TweetService interface.
// If it does not, then this expression becomes invalid and won't compile.
var _ domain.TweetService = &TweetService{}

// Create runs validations needed for creating new Tweet database records.
func (tv *tweetValidator) Create(tweet *domain.Tweet) error {
	err := runTweetValFns(tweet,
		tv.userIdValid,
		tv.contentMinLength,
		tv.contentMaxLength)
	if err != nil {
		return err
	}
	return tv.tweetGorm.Create(tweet)
}

// Delete runs validations needed for deleting existing Tweet database records.
// The incoming Tweet carries the target ID and the caller's ID in UserID;
// only the author may delete.
func (tv *tweetValidator) Delete(tweet *domain.Tweet) error {
	err := runTweetValFns(tweet,
		tv.idValid,
		tv.callerIsAuthor)
	if err != nil {
		return err
	}
	return tv.tweetGorm.Delete(tweet)
}

// runTweetValFns runs any number of functions of type tweetValFn on the passed in Tweet object.
// If none of them returns an error, it returns nil. Otherwise, it returns the respective error.
func runTweetValFns(tweet *domain.Tweet, fns ...tweetValFn) error {
	for _, fn := range fns {
		if err := fn(tweet); err != nil {
			return err
		}
	}
	return nil
}

// A tweetValFn is any function that takes in a pointer to a domain.Tweet object and returns an error.
type tweetValFn func(tweet *domain.Tweet) error

// contentMinLength makes sure that the Tweet's content is not empty.
func (tv *tweetValidator) contentMinLength(tweet *domain.Tweet) error {
	if strings.TrimSpace(tweet.Content) == "" {
		return errs.Errorf(errs.EINVALID, "Tweet content must not be empty.")
	}
	return nil
}

// contentMaxLength makes sure that the Tweet's content does not exceed the maximum content length.
func (tv *tweetValidator) contentMaxLength(tweet *domain.Tweet) error {
	if utf8.RuneCountInString(tweet.Content) > 280 {
		return errs.Errorf(errs.EINVALID, "Tweet content max length is 280 characters.")
	}
	return nil
}

// idValid makes sure that the passed in ID of a Tweet to be deleted is greater than 0.
func (tv *tweetValidator) idValid(tweet *domain.Tweet) error {
	if tweet.ID <= 0 {
		return errs.Errorf(errs.EINVALID, "Invalid tweet ID.")
	}
	return nil
}

// callerIsAuthor makes sure the tweet exists and belongs to the caller.
// The two failures carry different codes because the api must answer them
// with different status codes, even though both render a false result.
func (tv *tweetValidator) callerIsAuthor(tweet *domain.Tweet) error {
	var existing domain.Tweet
	err := tv.db.First(&existing, "id = ?", tweet.ID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.Errorf(errs.ENOTFOUND, "The tweet does not exist.")
		}
		return err
	}
	if existing.UserID != tweet.UserID {
		return errs.Errorf(errs.EUNAUTHORIZED, "You are not allowed to delete this tweet.")
	}
	return nil
}

// userIdValid ensures that the userId is not empty.
func (tv *tweetValidator) userIdValid(tweet *domain.Tweet) error {
	if tweet.UserID <= 0 {
		return errs.Errorf(errs.EINVALID, "Invalid user ID.")
	}
	return nil
}

// ByID retrieves a single Tweet by ID, along with its author and likes.
func (tg *tweetGorm) ByID(id int) (*domain.Tweet, error) {
	var tweet domain.Tweet
	err := tg.db.
		Preload("User").
		Preload("Likes.User").
		First(&tweet, "id = ?", id).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.Errorf(errs.ENOTFOUND, "The tweet does not exist.")
		}
		return nil, err
	}
	return &tweet, nil
}

// Create inserts the Tweet and claims its media ids for the new record.
// Both writes happen in one transaction: if any media id is unknown, the
// tweet row is rolled back too and nothing is persisted.
func (tg *tweetGorm) Create(tweet *domain.Tweet) error {
	return tg.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(tweet).Error; err != nil {
			return err
		}
		if err := attachMediaToTweet(tx, tweet.MediaIDs, tweet.ID); err != nil {
			return err
		}
		return tx.Preload("User").First(tweet).Error
	})
}

// Delete removes a Tweet record along with its Likes and detaches its Media,
// all in one transaction, so no dangling references survive the delete.
func (tg *tweetGorm) Delete(tweet *domain.Tweet) error {
	return tg.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tweet_id = ?", tweet.ID).Delete(&domain.Like{}).Error; err != nil {
			return err
		}
		if err := detachMediaFromTweet(tx, tweet.ID); err != nil {
			return err
		}
		return tx.Delete(&domain.Tweet{}, "id = ?", tweet.ID).Error
	})
}
