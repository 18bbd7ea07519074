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

// NutritionService tracks intake calories, net gained calories and water.
// These are direct accumulators: user actions increment the stored row,
// nothing is derived from a log.
type NutritionService struct {
	db     *gorm.DB
	logger *zap.Logger
	now    func() time.Time
}

func NewNutritionService(db *gorm.DB, logger *zap.Logger) *NutritionService {
	return &NutritionService{db: db, logger: logger, now: time.Now}
}

// AddCaloriesIntake adds to today's consumed-calories total and returns
// the updated row.
func (s *NutritionService) AddCaloriesIntake(ctx context.Context, userID uint, calories float64) (*models.DailyNutrition, error) {
	return s.increment(ctx, userID, "calories_intake", calories)
}

// AddCaloriesGained adds to today's net-gained total.
func (s *NutritionService) AddCaloriesGained(ctx context.Context, userID uint, calories float64) (*models.DailyNutrition, error) {
	return s.increment(ctx, userID, "calories_gained", calories)
}

// AddWaterIntake adds liters to today's water total.
func (s *NutritionService) AddWaterIntake(ctx context.Context, userID uint, liters float64) (*models.DailyNutrition, error) {
	return s.increment(ctx, userID, "water_intake", liters)
}

// increment upserts the (user, today) row and adds amount to the given
// column. Increments accumulate; they never overwrite.
func (s *NutritionService) increment(ctx context.Context, userID uint, column string, amount float64) (*models.DailyNutrition, error) {
	if amount < 0 {
		return nil, fmt.Errorf("invalid %s amount %.2f: must not be negative", column, amount)
	}

	date := DateOf(s.now())
	var row models.DailyNutrition
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(models.DailyNutrition{UserID: userID, Date: date}).
			FirstOrCreate(&row).Error; err != nil {
			return fmt.Errorf("upsert daily nutrition for %s: %w", date, err)
		}
		if err := tx.Model(&row).
			Update(column, gorm.Expr(column+" + ?", amount)).Error; err != nil {
			return fmt.Errorf("increment %s: %w", column, err)
		}
		if err := tx.First(&row, row.ID).Error; err != nil {
			return fmt.Errorf("reload daily nutrition: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("nutrition updated",
		zap.Uint("user_id", userID),
		zap.String("field", column),
		zap.Float64("amount", amount))
	return &row, nil
}

// GetDailyNutrition returns the stored row for (user, date), or a
// zero-valued object (ID == 0) when no nutrition action happened that day.
func (s *NutritionService) GetDailyNutrition(ctx context.Context, userID uint, date string) (*models.DailyNutrition, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", date, err)
	}

	var row models.DailyNutrition
	err := s.db.WithContext(ctx).Where("user_id = ? AND date = ?", userID, date).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.DailyNutrition{UserID: userID, Date: date}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get daily nutrition for %s: %w", date, err)
	}
	return &row, nil
}

// SetCaloriesIntakeGoal writes the daily intake target through to the
// user's settings immediately.
func (s *NutritionService) SetCaloriesIntakeGoal(ctx context.Context, userID uint, calories float64) error {
	return s.setSettingsGoal(ctx, userID, "daily_calories_intake_goal", calories)
}

// SetWaterIntakeGoal writes the daily water target (liters) through to
// the user's settings immediately.
func (s *NutritionService) SetWaterIntakeGoal(ctx context.Context, userID uint, liters float64) error {
	return s.setSettingsGoal(ctx, userID, "daily_water_intake_goal", liters)
}

func (s *NutritionService) setSettingsGoal(ctx context.Context, userID uint, column string, value float64) error {
	if value <= 0 {
		return fmt.Errorf("invalid %s %.2f: must be positive", column, value)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Settings are created with the user; recreate defaults if the
		// row went missing rather than failing the goal update.
		var settings models.UserSettings
		if err := tx.Where(models.UserSettings{UserID: userID}).FirstOrCreate(&settings).Error; err != nil {
			return fmt.Errorf("upsert user settings: %w", err)
		}
		if err := tx.Model(&settings).Update(column, value).Error; err != nil {
			return fmt.Errorf("set %s: %w", column, err)
		}
		return nil
	})
}
