package models

import "time"

// DailyNutrition accumulates per-user per-date intake totals. Unlike
// DailySummary it is not derived from a log: user actions increment the
// stored columns directly.
type DailyNutrition struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	UserID         uint      `gorm:"not null;uniqueIndex:idx_daily_nutrition_user_date" json:"user_id"`
	Date           string    `gorm:"not null;uniqueIndex:idx_daily_nutrition_user_date" json:"date"`
	CaloriesIntake float64   `gorm:"default:0" json:"calories_intake"`
	CaloriesGained float64   `gorm:"default:0" json:"calories_gained"`
	WaterIntake    float64   `gorm:"default:0" json:"water_intake"` // liters
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (DailyNutrition) TableName() string { return "daily_nutrition" }

// Persisted reports whether the row exists in the database; a zero-valued
// object is returned for days with no nutrition actions yet.
func (n *DailyNutrition) Persisted() bool { return n.ID != 0 }
