package models

import "time"

// User holds identity plus the static biometrics used for calorie math.
// A single-device installation normally carries exactly one row.
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Height       float64   `json:"height"` // cm
	Weight       float64   `json:"weight"` // kg
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserSettings stores per-user daily goals and preferences. One row per
// user, created alongside the user.
type UserSettings struct {
	UserID                  uint    `gorm:"primarykey" json:"user_id"`
	DailyCalorieGoal        float64 `gorm:"default:800" json:"daily_calorie_goal"`
	DailyStepsGoal          int     `gorm:"default:10000" json:"daily_steps_goal"`
	NotificationsEnabled    bool    `gorm:"default:true" json:"notifications_enabled"`
	Theme                   string  `gorm:"default:'light'" json:"theme"`
	DailyCaloriesIntakeGoal float64 `gorm:"default:2000" json:"daily_calories_intake_goal"`
	DailyWaterIntakeGoal    float64 `gorm:"default:2.5" json:"daily_water_intake_goal"` // liters
}

func (UserSettings) TableName() string { return "user_settings" }
