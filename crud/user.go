package crud

import (
	"errors"

	"gorm.io/gorm"

	"chirper/domain"
	"chirper/errs"
)

// UserService looks up Users. Users are only ever written by the seeder, so
// unlike the other services it has no validator layer, just reads.
// It implements the domain.UserService interface.
type UserService struct {
	userGorm
}

// userGorm runs read operations on the users table.
type userGorm struct {
	db *gorm.DB
}

// NewUserService returns an instance of UserService.
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{
		userGorm{
			db: db,
		},
	}
}

// Ensure the UserService struct properly implements the domain.UserService interface.
// If it does not, then this expression becomes invalid and won't compile.
var _ domain.UserService = &UserService{}

// ByAPIKey resolves an opaque api key to the user that owns it. The unique
// index on api_key should make more than one match impossible, but the lookup
// still counts its matches rather than trusting that, so a broken index
// surfaces as an internal error instead of silently picking a row.
func (ug *userGorm) ByAPIKey(key string) (*domain.User, error) {
	var users []domain.User
	err := ug.db.Where("api_key = ?", key).Limit(2).Find(&users).Error
	if err != nil {
		return nil, err
	}
	switch len(users) {
	case 0:
		return nil, errs.Errorf(errs.ENOTFOUND, "The api key does not belong to any user.")
	case 1:
		return &users[0], nil
	default:
		return nil, errs.Errorf(errs.EINTERNAL, "The api key is ambiguous.")
	}
}

// ByID retrieves a User database record by ID.
func (ug *userGorm) ByID(id int) (*domain.User, error) {
	var user domain.User
	err := ug.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.Errorf(errs.ENOTFOUND, "The user does not exist.")
		}
		return nil, err
	}
	return &user, nil
}
