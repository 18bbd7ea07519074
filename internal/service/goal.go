package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/stridekit/fittrack/internal/models"
)

// GoalService manages calorie-burn goals.
type GoalService struct {
	db     *gorm.DB
	logger *zap.Logger
	now    func() time.Time
}

func NewGoalService(db *gorm.DB, logger *zap.Logger) *GoalService {
	return &GoalService{db: db, logger: logger, now: time.Now}
}

// SetCalorieGoal activates a new goal starting now. Every other active
// goal of the user is deactivated in the same transaction, keeping the
// one-active-goal invariant that the schema itself does not enforce.
func (s *GoalService) SetCalorieGoal(ctx context.Context, userID uint, targetCalories float64) (*models.CalorieGoal, error) {
	if targetCalories <= 0 {
		return nil, fmt.Errorf("invalid calorie goal %.1f: must be positive", targetCalories)
	}

	goal := models.CalorieGoal{
		UserID:         userID,
		TargetCalories: targetCalories,
		StartDate:      s.now(),
		IsActive:       true,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.CalorieGoal{}).
			Where("user_id = ? AND is_active = ?", userID, true).
			Update("is_active", false).Error; err != nil {
			return fmt.Errorf("deactivate previous goals: %w", err)
		}
		if err := tx.Create(&goal).Error; err != nil {
			return fmt.Errorf("insert calorie goal: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("calorie goal set", zap.Uint("user_id", userID), zap.Float64("target", targetCalories))
	return &goal, nil
}

// ActiveCalorieGoal returns the goal currently in effect, or nil when the
// user has none. Should multiple active rows exist (data predating the
// write-side invariant), the most recent start date wins, then the
// highest id.
func (s *GoalService) ActiveCalorieGoal(ctx context.Context, userID uint) (*models.CalorieGoal, error) {
	return activeCalorieGoal(s.db.WithContext(ctx), userID)
}

func activeCalorieGoal(tx *gorm.DB, userID uint) (*models.CalorieGoal, error) {
	var goal models.CalorieGoal
	err := tx.Where("user_id = ? AND is_active = ?", userID, true).
		Order("start_date DESC, id DESC").
		First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("look up active calorie goal: %w", err)
	}
	return &goal, nil
}
