package service

import (
	"context"

	"github.com/stridekit/fittrack/internal/models"
)

// ActivityOperations is the activity-side operations layer consumed by the
// state store and the CLI.
type ActivityOperations interface {
	LogActivity(ctx context.Context, userID, activityTypeID uint, duration int, opts LogActivityOptions) (*models.Activity, error)
	RecordSteps(ctx context.Context, userID uint, steps int) (*models.Activity, error)
	UpdateDailySummary(ctx context.Context, userID uint) error
	GetDailySummary(ctx context.Context, userID uint, date string) (*models.DailySummary, error)
	ActivitiesForDay(ctx context.Context, userID uint, date string) ([]ActivityDetail, error)
	ActivityTypes(ctx context.Context) ([]models.ActivityType, error)
}

// GoalOperations manages calorie-burn goals.
type GoalOperations interface {
	SetCalorieGoal(ctx context.Context, userID uint, targetCalories float64) (*models.CalorieGoal, error)
	ActiveCalorieGoal(ctx context.Context, userID uint) (*models.CalorieGoal, error)
}

// NutritionOperations manages the per-day intake accumulators and the
// intake goals. Increment operations write through immediately.
type NutritionOperations interface {
	AddCaloriesIntake(ctx context.Context, userID uint, calories float64) (*models.DailyNutrition, error)
	AddCaloriesGained(ctx context.Context, userID uint, calories float64) (*models.DailyNutrition, error)
	AddWaterIntake(ctx context.Context, userID uint, liters float64) (*models.DailyNutrition, error)
	GetDailyNutrition(ctx context.Context, userID uint, date string) (*models.DailyNutrition, error)
	SetCaloriesIntakeGoal(ctx context.Context, userID uint, calories float64) error
	SetWaterIntakeGoal(ctx context.Context, userID uint, liters float64) error
}

// UserOperations resolves the implicit local user and their settings.
type UserOperations interface {
	DefaultUser(ctx context.Context) (*models.User, error)
	GetUser(ctx context.Context, userID uint) (*models.User, error)
	GetSettings(ctx context.Context, userID uint) (*models.UserSettings, error)
	UpdateSettings(ctx context.Context, settings *models.UserSettings) error
}

var (
	_ ActivityOperations  = (*ActivityService)(nil)
	_ GoalOperations      = (*GoalService)(nil)
	_ NutritionOperations = (*NutritionService)(nil)
	_ UserOperations      = (*UserService)(nil)
)
