package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/stridekit/fittrack/internal/models"
)

var ErrUserNotFound = errors.New("user not found")

// UserService resolves users and their settings. The application is
// single-user today: callers resolve the implicit local identity via
// DefaultUser and pass its id down, so the rest of the operations layer
// stays multi-user capable.
type UserService struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewUserService(db *gorm.DB, logger *zap.Logger) *UserService {
	return &UserService{db: db, logger: logger}
}

// DefaultUser returns the installation's user (the oldest row).
func (s *UserService) DefaultUser(ctx context.Context) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Order("id").First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("look up default user: %w", err)
	}
	return &user, nil
}

func (s *UserService) GetUser(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("look up user %d: %w", userID, err)
	}
	return &user, nil
}

// GetSettings returns the user's settings row, creating defaults if the
// row is missing (it is normally created alongside the user).
func (s *UserService) GetSettings(ctx context.Context, userID uint) (*models.UserSettings, error) {
	var settings models.UserSettings
	err := s.db.WithContext(ctx).Where(models.UserSettings{UserID: userID}).
		Attrs(models.UserSettings{
			DailyCalorieGoal:        800,
			DailyStepsGoal:          10000,
			NotificationsEnabled:    true,
			Theme:                   "light",
			DailyCaloriesIntakeGoal: 2000,
			DailyWaterIntakeGoal:    2.5,
		}).
		FirstOrCreate(&settings).Error
	if err != nil {
		return nil, fmt.Errorf("get settings for user %d: %w", userID, err)
	}
	return &settings, nil
}

func (s *UserService) UpdateSettings(ctx context.Context, settings *models.UserSettings) error {
	if settings.UserID == 0 {
		return fmt.Errorf("settings missing user id")
	}
	if err := s.db.WithContext(ctx).Save(settings).Error; err != nil {
		return fmt.Errorf("update settings for user %d: %w", settings.UserID, err)
	}
	return nil
}
