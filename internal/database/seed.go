package database

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/stridekit/fittrack/internal/models"
)

// defaultActivityTypes is the fixed reference catalog. Names are unique;
// re-seeding is a no-op for existing entries.
var defaultActivityTypes = []models.ActivityType{
	{Name: "Walking", CaloriesPerMinute: 4, Icon: "footsteps"},
	{Name: "Running", CaloriesPerMinute: 10, Icon: "trending-up"},
	{Name: "Cycling", CaloriesPerMinute: 8, Icon: "bicycle"},
	{Name: "Swimming", CaloriesPerMinute: 9, Icon: "water"},
	{Name: "Yoga", CaloriesPerMinute: 3, Icon: "body"},
	{Name: "Weight Training", CaloriesPerMinute: 5, Icon: "barbell"},
}

const (
	demoUserName     = "Demo User"
	demoUserEmail    = "demo@example.com"
	demoUserPassword = "password123"
)

// Seed inserts the activity-type catalog and, when the database holds no
// users yet, a demo user with settings and an active 800 kcal goal. Safe
// to call on every start.
func Seed(db *gorm.DB, logger *zap.Logger) error {
	for _, at := range defaultActivityTypes {
		if err := db.Where(models.ActivityType{Name: at.Name}).FirstOrCreate(&at).Error; err != nil {
			return fmt.Errorf("seed activity type %q: %w", at.Name, err)
		}
	}

	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoUserPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		user := models.User{
			Name:         demoUserName,
			Email:        demoUserEmail,
			PasswordHash: string(hash),
			Height:       175,
			Weight:       70,
		}
		if err := tx.Create(&user).Error; err != nil {
			return fmt.Errorf("create demo user: %w", err)
		}

		settings := models.UserSettings{
			UserID:                  user.ID,
			DailyCalorieGoal:        800,
			DailyStepsGoal:          10000,
			NotificationsEnabled:    true,
			Theme:                   "light",
			DailyCaloriesIntakeGoal: 2000,
			DailyWaterIntakeGoal:    2.5,
		}
		if err := tx.Create(&settings).Error; err != nil {
			return fmt.Errorf("create demo user settings: %w", err)
		}

		goal := models.CalorieGoal{
			UserID:         user.ID,
			TargetCalories: 800,
			StartDate:      time.Now(),
			IsActive:       true,
		}
		if err := tx.Create(&goal).Error; err != nil {
			return fmt.Errorf("create demo calorie goal: %w", err)
		}

		logger.Info("seeded demo user", zap.Uint("user_id", user.ID))
		return nil
	})
}
