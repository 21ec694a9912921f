package crud

import (
	"errors"

	"gorm.io/gorm"

	"chirper/domain"
	"chirper/errs"
)

// LikeService manages Likes.
// It implements the domain.LikeService interface.
type LikeService struct {
	likeValidator
}

// likeValidator runs validations on incoming Like data.
// On success, it passes the data on to likeGorm.
// Otherwise, it returns the error of the validation that has failed.
type likeValidator struct {
	likeGorm
}

// likeGorm runs CRUD operations on the database using incoming Like data.
// It assumes that data has been validated. On success, it returns nil.
// Otherwise, it returns the error of the operation that has failed.
type likeGorm struct {
	db *gorm.DB
}

// NewLikeService returns an instance of LikeService.
func NewLikeService(db *gorm.DB) *LikeService {
	return &LikeService{
		likeValidator{
			likeGorm{
				db: db,
			},
		},
	}
}

// Ensure the LikeService struct properly implements the domain.LikeService interface.
// If it does not, then this expression becomes invalid and won't compile.
var _ domain.LikeService = &LikeService{}

// Create runs validations needed for creating new Like database records.
// There is deliberately no "not already liked" pre-check here: two identical
// requests racing past such a check would both insert. The composite primary
// key is the only duplicate guard, so exactly one insert wins and the others
// come back as ECONFLICT.
func (lv *likeValidator) Create(like *domain.Like) error {
	err := runLikeValFns(like,
		lv.userIdValid,
		lv.likedTweetExists)
	if err != nil {
		return err
	}
	return lv.likeGorm.Create(like)
}

// Delete runs validations needed for deleting existing Like database records.
func (lv *likeValidator) Delete(like *domain.Like) error {
	err := runLikeValFns(like, lv.userIdValid)
	if err != nil {
		return err
	}
	return lv.likeGorm.Delete(like)
}

// runLikeValFns runs any number of functions of type likeValFn on the passed in Like object.
// If none of them returns an error, it returns nil. Otherwise, it returns the respective error.
func runLikeValFns(like *domain.Like, fns ...likeValFn) error {
	for _, fn := range fns {
		if err := fn(like); err != nil {
			return err
		}
	}
	return nil
}

// A likeValFn is any function that takes in a pointer to a domain.Like object and returns an error.
type likeValFn func(like *domain.Like) error

// likedTweetExists makes sure that the tweet to be liked actually exists.
func (lv *likeValidator) likedTweetExists(like *domain.Like) error {
	err := lv.db.First(&domain.Tweet{}, "id = ?", like.TweetID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.Errorf(errs.ENOTFOUND, "The liked tweet does not exist.")
		}
		return err
	}
	return nil
}

// userIdValid ensures that the userId is not empty.
func (lv *likeValidator) userIdValid(like *domain.Like) error {
	if like.UserID <= 0 {
		return errs.Errorf(errs.EINVALID, "Invalid user ID.")
	}
	return nil
}

// Create stores the data from the Like object in a new database record.
// A duplicate (tweet, user) pair trips the primary key and surfaces as
// ECONFLICT, leaving the attempted write discarded.
func (lg *likeGorm) Create(like *domain.Like) error {
	return lg.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Create(like).Error
		if err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return errs.Errorf(errs.ECONFLICT, "You already like this tweet.")
			}
			if errors.Is(err, gorm.ErrForeignKeyViolated) {
				return errs.Errorf(errs.ENOTFOUND, "The liked tweet does not exist.")
			}
			return err
		}
		return nil
	})
}

// Delete permanently deletes the Like matching the (tweet, user) pair.
// Deleting a pair that isn't there is a safe no-op reported as ENOTFOUND.
func (lg *likeGorm) Delete(like *domain.Like) error {
	return lg.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("tweet_id = ? AND user_id = ?", like.TweetID, like.UserID).
			Delete(&domain.Like{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errs.Errorf(errs.ENOTFOUND, "You have not liked this tweet.")
		}
		return nil
	})
}
