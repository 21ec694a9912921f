package crud

import (
	"errors"
	"net/http"

	"gorm.io/gorm"

	"chirper/domain"
	"chirper/errs"
)

// MediaService manages Media blobs.
// It implements the domain.MediaService interface.
type MediaService struct {
	mediaValidator
}

// mediaValidator runs validations on incoming Media data.
// On success, it passes the data on to mediaGorm.
// Otherwise, it returns the error of the validation that has failed.
type mediaValidator struct {
	mediaGorm
}

// mediaGorm runs CRUD operations on the database using incoming Media data.
// It assumes that data has been validated. On success, it returns nil.
// Otherwise, it returns the error of the operation that has failed.
type mediaGorm struct {
	db *gorm.DB
}

// NewMediaService returns an instance of MediaService.
func NewMediaService(db *gorm.DB) *MediaService {
	return &MediaService{
		mediaValidator{
			mediaGorm{
				db: db,
			},
		},
	}
}

// Ensure the MediaService struct properly implements the domain.MediaService interface.
// If it does not, then this expression becomes invalid and won't compile.
var _ domain.MediaService = &MediaService{}

// Create runs validations needed for storing a new Media blob. The blob is
// stored unassociated; a tweet claims it later by id.
func (mv *mediaValidator) Create(media *domain.Media) error {
	err := runMediaValFns(media,
		mv.fileNotEmpty,
		mv.contentTypeSniff)
	if err != nil {
		return err
	}
	return mv.mediaGorm.Create(media)
}

// runMediaValFns runs any number of functions of type mediaValFn on the passed in Media object.
// If none of them returns an error, it returns nil. Otherwise, it returns the respective error.
func runMediaValFns(media *domain.Media, fns ...mediaValFn) error {
	for _, fn := range fns {
		if err := fn(media); err != nil {
			return err
		}
	}
	return nil
}

// A mediaValFn is any function that takes in a pointer to a domain.Media object and returns an error.
type mediaValFn func(media *domain.Media) error

// fileNotEmpty makes sure that the uploaded payload is not empty.
func (mv *mediaValidator) fileNotEmpty(media *domain.Media) error {
	if len(media.File) == 0 {
		return errs.Errorf(errs.EINVALID, "Media file must not be empty.")
	}
	return nil
}

// contentTypeSniff detects the content type from the payload's leading bytes
// if the upload didn't declare one.
func (mv *mediaValidator) contentTypeSniff(media *domain.Media) error {
	if media.ContentType == "" {
		media.ContentType = http.DetectContentType(media.File)
	}
	return nil
}

// ByID retrieves a Media record by ID, bytes included.
func (mg *mediaGorm) ByID(id int) (*domain.Media, error) {
	var media domain.Media
	err := mg.db.First(&media, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.Errorf(errs.ENOTFOUND, "The media does not exist.")
		}
		return nil, err
	}
	return &media, nil
}

// Create stores the data from the Media object in a new database record.
func (mg *mediaGorm) Create(media *domain.Media) error {
	return mg.db.Create(media).Error
}

// attachMediaToTweet claims the given media records for a tweet by setting
// their tweet_id. It runs inside the create-tweet transaction and fails the
// whole transaction if any id does not reference an existing Media record,
// so a tweet can never point at media that isn't there.
func attachMediaToTweet(tx *gorm.DB, mediaIDs []int, tweetID int) error {
	for _, mediaID := range mediaIDs {
		res := tx.Model(&domain.Media{}).Where("id = ?", mediaID).Update("tweet_id", tweetID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errs.Errorf(errs.EINVALID, "Media %d does not exist.", mediaID)
		}
	}
	return nil
}

// detachMediaFromTweet clears the tweet_id of all media owned by a tweet.
// It runs inside the delete-tweet transaction; the blobs themselves survive.
func detachMediaFromTweet(tx *gorm.DB, tweetID int) error {
	return tx.Model(&domain.Media{}).Where("tweet_id = ?", tweetID).Update("tweet_id", nil).Error
}
