package models

import "time"

// Activity source markers. Pedometer rows are coalesced (one per user per
// day, updated in place); manual rows are append-only.
const (
	SourceManual    = "manual"
	SourcePedometer = "pedometer"
)

// ActivityType is reference data describing a kind of exercise and its
// estimated calorie burn rate. Seeded once, rarely mutated.
type ActivityType struct {
	ID                uint    `gorm:"primarykey" json:"id"`
	Name              string  `gorm:"uniqueIndex;not null" json:"name"`
	CaloriesPerMinute float64 `gorm:"not null" json:"calories_per_minute"`
	Icon              string  `json:"icon"`
}

// Activity is one logged event. CaloriesBurned is derived from the
// activity type's burn rate at insert time and never recomputed.
type Activity struct {
	ID             uint       `gorm:"primarykey" json:"id"`
	UserID         uint       `gorm:"not null;index" json:"user_id"`
	ActivityTypeID uint       `gorm:"not null" json:"activity_type_id"`
	StartTime      time.Time  `gorm:"not null;index" json:"start_time"`
	EndTime        *time.Time `json:"end_time,omitempty"`
	Duration       int        `json:"duration"` // minutes
	CaloriesBurned float64    `json:"calories_burned"`
	Distance       float64    `json:"distance"` // km
	Steps          int        `json:"steps"`
	Notes          string     `json:"notes,omitempty"`
	Source         string     `gorm:"default:'manual'" json:"source"`
}

// CalorieGoal is a user's daily calorie-burn target with a validity
// window. At most one goal per user is active at a time; SetCalorieGoal
// enforces this on write.
type CalorieGoal struct {
	ID             uint       `gorm:"primarykey" json:"id"`
	UserID         uint       `gorm:"not null;index" json:"user_id"`
	TargetCalories float64    `gorm:"not null" json:"target_calories"`
	StartDate      time.Time  `gorm:"not null" json:"start_date"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	IsActive       bool       `gorm:"not null;default:true" json:"is_active"`
}

// DailySummary is the materialized per-user per-date aggregate over
// Activity rows. It is fully derived: recomputed on every write that
// touches the day, never edited directly. Date is local-time YYYY-MM-DD.
type DailySummary struct {
	ID                   uint    `gorm:"primarykey" json:"id"`
	UserID               uint    `gorm:"not null;uniqueIndex:idx_daily_summaries_user_date" json:"user_id"`
	Date                 string  `gorm:"not null;uniqueIndex:idx_daily_summaries_user_date" json:"date"`
	TotalCaloriesBurned  float64 `gorm:"not null;default:0" json:"total_calories_burned"`
	TotalSteps           int     `gorm:"default:0" json:"total_steps"`
	TotalDistance        float64 `gorm:"default:0" json:"total_distance"` // km
	TotalActivityMinutes int     `gorm:"default:0" json:"total_activity_minutes"`
	GoalAchieved         bool    `gorm:"default:false" json:"goal_achieved"`
}

// Persisted reports whether the summary was read from a stored row.
// GetDailySummary returns zero-valued summaries for days with no data.
func (s *DailySummary) Persisted() bool { return s.ID != 0 }
