package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/stridekit/fittrack/internal/models"
)

var (
	ErrActivityTypeNotFound = errors.New("activity type not found")
)

const (
	// Rough per-step burn used for pedometer-synthesized activities.
	caloriesPerStep = 0.04
	// Rough average stride, in km.
	kmPerStep = 0.0008

	walkingTypeName = "Walking"
)

// DateOf formats a timestamp as the local YYYY-MM-DD key used by the
// daily_summaries and daily_nutrition tables.
func DateOf(t time.Time) string { return t.Format("2006-01-02") }

// dayRange returns the [start, end) bounds of a local calendar day.
func dayRange(date string, loc *time.Location) (time.Time, time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", date, err)
	}
	return day, day.AddDate(0, 0, 1), nil
}

// LogActivityOptions carries the optional fields of a logged activity.
type LogActivityOptions struct {
	Distance float64 // km
	Steps    int
	Notes    string
}

// ActivityDetail is a day's activity row joined with its type metadata.
type ActivityDetail struct {
	models.Activity
	ActivityName string `json:"activity_name"`
	Icon         string `json:"icon"`
}

// ActivityService implements activity logging and the daily-summary
// aggregate. The summary is fully derived from activity rows and the
// active goal; every write that touches a day recomputes it.
type ActivityService struct {
	db     *gorm.DB
	goals  *GoalService
	logger *zap.Logger
	now    func() time.Time
}

func NewActivityService(db *gorm.DB, goals *GoalService, logger *zap.Logger) *ActivityService {
	return &ActivityService{db: db, goals: goals, logger: logger, now: time.Now}
}

// LogActivity resolves the activity type, derives calories from its burn
// rate, inserts the row and recomputes today's summary. The insert and the
// recompute share one transaction so a crash cannot leave the summary
// stale relative to a committed activity.
func (s *ActivityService) LogActivity(ctx context.Context, userID, activityTypeID uint, duration int, opts LogActivityOptions) (*models.Activity, error) {
	if duration <= 0 {
		return nil, fmt.Errorf("invalid duration %d: must be positive", duration)
	}

	var activity models.Activity
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var at models.ActivityType
		if err := tx.First(&at, activityTypeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrActivityTypeNotFound
			}
			return fmt.Errorf("look up activity type %d: %w", activityTypeID, err)
		}

		start := s.now()
		end := start.Add(time.Duration(duration) * time.Minute)
		activity = models.Activity{
			UserID:         userID,
			ActivityTypeID: at.ID,
			StartTime:      start,
			EndTime:        &end,
			Duration:       duration,
			CaloriesBurned: at.CaloriesPerMinute * float64(duration),
			Distance:       opts.Distance,
			Steps:          opts.Steps,
			Notes:          opts.Notes,
			Source:         models.SourceManual,
		}
		if err := tx.Create(&activity).Error; err != nil {
			return fmt.Errorf("insert activity: %w", err)
		}

		return s.recomputeSummary(tx, userID, DateOf(start))
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("activity logged",
		zap.Uint("user_id", userID),
		zap.Uint("activity_type_id", activityTypeID),
		zap.Int("duration_min", duration),
		zap.Float64("calories_burned", activity.CaloriesBurned))
	return &activity, nil
}

// RecordSteps applies a cumulative pedometer reading: "set today's steps
// to n". Each user/day has at most one pedometer-sourced walking activity,
// updated in place rather than appended, so high-frequency sensor
// callbacks do not pile up near-duplicate rows.
func (s *ActivityService) RecordSteps(ctx context.Context, userID uint, steps int) (*models.Activity, error) {
	if steps < 0 {
		return nil, fmt.Errorf("invalid step count %d", steps)
	}

	var activity models.Activity
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var walking models.ActivityType
		if err := tx.Where("name = ?", walkingTypeName).First(&walking).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrActivityTypeNotFound
			}
			return fmt.Errorf("look up walking activity type: %w", err)
		}

		now := s.now()
		date := DateOf(now)
		dayStart, dayEnd, err := dayRange(date, now.Location())
		if err != nil {
			return err
		}

		calories := float64(steps) * caloriesPerStep
		// Derived so that calories == rate * duration holds for the
		// synthetic row as it does for logged ones.
		duration := int(math.Round(calories / walking.CaloriesPerMinute))

		err = tx.Where("user_id = ? AND source = ? AND start_time >= ? AND start_time < ?",
			userID, models.SourcePedometer, dayStart, dayEnd).
			First(&activity).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			activity = models.Activity{
				UserID:         userID,
				ActivityTypeID: walking.ID,
				StartTime:      now,
				Duration:       duration,
				CaloriesBurned: calories,
				Distance:       float64(steps) * kmPerStep,
				Steps:          steps,
				Source:         models.SourcePedometer,
			}
			if err := tx.Create(&activity).Error; err != nil {
				return fmt.Errorf("insert pedometer activity: %w", err)
			}
		case err != nil:
			return fmt.Errorf("look up pedometer activity: %w", err)
		default:
			activity.Steps = steps
			activity.CaloriesBurned = calories
			activity.Duration = duration
			activity.Distance = float64(steps) * kmPerStep
			end := now
			activity.EndTime = &end
			if err := tx.Save(&activity).Error; err != nil {
				return fmt.Errorf("update pedometer activity: %w", err)
			}
		}

		return s.recomputeSummary(tx, userID, date)
	})
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

// UpdateDailySummary recomputes today's aggregate for the user. Idempotent
// for unchanged inputs.
func (s *ActivityService) UpdateDailySummary(ctx context.Context, userID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.recomputeSummary(tx, userID, DateOf(s.now()))
	})
}

type summaryTotals struct {
	TotalCaloriesBurned  float64
	TotalSteps           int
	TotalDistance        float64
	TotalActivityMinutes int
}

func (s *ActivityService) recomputeSummary(tx *gorm.DB, userID uint, date string) error {
	dayStart, dayEnd, err := dayRange(date, s.now().Location())
	if err != nil {
		return err
	}

	var totals summaryTotals
	if err := tx.Model(&models.Activity{}).
		Select(`COALESCE(SUM(calories_burned), 0) AS total_calories_burned,
			COALESCE(SUM(steps), 0) AS total_steps,
			COALESCE(SUM(distance), 0) AS total_distance,
			COALESCE(SUM(duration), 0) AS total_activity_minutes`).
		Where("user_id = ? AND start_time >= ? AND start_time < ?", userID, dayStart, dayEnd).
		Scan(&totals).Error; err != nil {
		return fmt.Errorf("sum activities for %s: %w", date, err)
	}

	goal, err := activeCalorieGoal(tx, userID)
	if err != nil {
		return err
	}
	var target float64
	if goal != nil {
		target = goal.TargetCalories
	}
	goalAchieved := target > 0 && totals.TotalCaloriesBurned >= target

	var summary models.DailySummary
	err = tx.Where("user_id = ? AND date = ?", userID, date).First(&summary).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		summary = models.DailySummary{
			UserID:               userID,
			Date:                 date,
			TotalCaloriesBurned:  totals.TotalCaloriesBurned,
			TotalSteps:           totals.TotalSteps,
			TotalDistance:        totals.TotalDistance,
			TotalActivityMinutes: totals.TotalActivityMinutes,
			GoalAchieved:         goalAchieved,
		}
		if err := tx.Create(&summary).Error; err != nil {
			return fmt.Errorf("insert daily summary for %s: %w", date, err)
		}
	case err != nil:
		return fmt.Errorf("look up daily summary for %s: %w", date, err)
	default:
		summary.TotalCaloriesBurned = totals.TotalCaloriesBurned
		summary.TotalSteps = totals.TotalSteps
		summary.TotalDistance = totals.TotalDistance
		summary.TotalActivityMinutes = totals.TotalActivityMinutes
		summary.GoalAchieved = goalAchieved
		if err := tx.Save(&summary).Error; err != nil {
			return fmt.Errorf("update daily summary for %s: %w", date, err)
		}
	}
	return nil
}

// GetDailySummary returns the stored aggregate for (user, date), or a
// zero-valued summary when none exists yet. A zero ID marks the returned
// value as not persisted; absence of data is not an error.
func (s *ActivityService) GetDailySummary(ctx context.Context, userID uint, date string) (*models.DailySummary, error) {
	if _, _, err := dayRange(date, s.now().Location()); err != nil {
		return nil, err
	}

	var summary models.DailySummary
	err := s.db.WithContext(ctx).Where("user_id = ? AND date = ?", userID, date).First(&summary).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.DailySummary{UserID: userID, Date: date}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get daily summary for %s: %w", date, err)
	}
	return &summary, nil
}

// ActivitiesForDay lists a day's activity rows joined with their type
// name and icon, newest first.
func (s *ActivityService) ActivitiesForDay(ctx context.Context, userID uint, date string) ([]ActivityDetail, error) {
	dayStart, dayEnd, err := dayRange(date, s.now().Location())
	if err != nil {
		return nil, err
	}

	var details []ActivityDetail
	err = s.db.WithContext(ctx).Model(&models.Activity{}).
		Select("activities.*, activity_types.name AS activity_name, activity_types.icon AS icon").
		Joins("INNER JOIN activity_types ON activity_types.id = activities.activity_type_id").
		Where("activities.user_id = ? AND activities.start_time >= ? AND activities.start_time < ?", userID, dayStart, dayEnd).
		Order("activities.start_time DESC").
		Scan(&details).Error
	if err != nil {
		return nil, fmt.Errorf("list activities for %s: %w", date, err)
	}
	return details, nil
}

// ActivityTypes lists the reference catalog.
func (s *ActivityService) ActivityTypes(ctx context.Context) ([]models.ActivityType, error) {
	var types []models.ActivityType
	if err := s.db.WithContext(ctx).Order("id").Find(&types).Error; err != nil {
		return nil, fmt.Errorf("list activity types: %w", err)
	}
	return types, nil
}
