package services

import (
	"errors"
	"log/slog"

	"recollect/internal/models"
	"recollect/pkg/utils"

	"gorm.io/gorm"
)

var (
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserService is the credential store: username/password-hash pairs with
// username uniqueness. Input format constraints (username >= 4 chars,
// password >= 6 chars) are validated at the HTTP boundary, not here.
type UserService struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewUserService(db *gorm.DB, logger *slog.Logger) *UserService {
	return &UserService{db: db, logger: logger}
}

// Register stores a new user with a bcrypt password hash. The pre-insert
// lookup gives a friendly conflict answer; the unique index on username
// catches the race loser, which is mapped to the same conflict error.
func (s *UserService) Register(username, password string) (*models.User, error) {
	var existing models.User
	err := s.db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateUsername
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}

	return &user, nil
}

// Authenticate verifies a username/password pair and returns the matching
// user. Not-found and bad-password are distinct sentinels; the signin
// handler maps both to 400 with the documented messages.
func (s *UserService) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// VerifyPassword re-checks the password of an already-authenticated user,
// used by the account deletion flow.
func (s *UserService) VerifyPassword(userID uint, password string) error {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return ErrInvalidCredentials
	}
	return nil
}

// GetByID loads a single user.
func (s *UserService) GetByID(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// DeleteAccount removes the user and everything they own in one
// transaction: content, share link, recall views for that link, and the
// user record itself. The store has no cross-entity cascade; this is the
// single place that implements the cleanup contract.
func (s *UserService) DeleteAccount(userID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var link models.ShareLink
		err := tx.Where("user_id = ?", userID).First(&link).Error
		if err == nil {
			if err := tx.Where("share_link_id = ?", link.ID).Delete(&models.RecallView{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&link).Error; err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Where("user_id = ?", userID).Delete(&models.Content{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.User{}, userID).Error
	})
}
