package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/stridekit/fittrack/internal/models"
	"github.com/stridekit/fittrack/internal/testhelpers"
)

func newActivityService(t *testing.T, db *gorm.DB, at time.Time) (*ActivityService, *GoalService) {
	t.Helper()
	goals := NewGoalService(db, zap.NewNop())
	goals.now = func() time.Time { return at }
	svc := NewActivityService(db, goals, zap.NewNop())
	svc.now = func() time.Time { return at }
	return svc, goals
}

func TestLogActivityDerivesCalories(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	user := testhelpers.SeedUser(t, db)
	walking := testhelpers.SeedActivityType(t, db, "Walking", 4)

	at := time.Date(2026, 3, 14, 9, 30, 0, 0, time.Local)
	svc, _ := newActivityService(t, db, at)

	activity, err := svc.LogActivity(context.Background(), user.ID, walking.ID, 30, LogActivityOptions{})
	require.NoError(t, err)

	assert.Equal(t, float64(120), activity.CaloriesBurned)
	assert.Equal(t, 30, activity.Duration)
	assert.Equal(t, models.SourceManual, activity.Source)
	assert.True(t, activity.StartTime.Equal(at))
	require.NotNil(t, activity.EndTime)
	assert.True(t, activity.EndTime.Equal(at.Add(30*time.Minute)))
}

func TestLogActivityUnknownType(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	user := testhelpers.SeedUser(t, db)

	svc, _ := newActivityService(t, db, time.Now())

	_, err := svc.LogActivity(context.Background(), user.ID, 999, 30, LogActivityOptions{})
	assert.ErrorIs(t, err, ErrActivityTypeNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Activity{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestLogActivityRejectsNonPositiveDuration(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	user := testhelpers.SeedUser(t, db)
	walking := testhelpers.SeedActivityType(t, db, "Walking", 4)

	svc, _ := newActivityService(t, db, time.Now())

	_, err := svc.LogActivity(context.Background(), user.ID, walking.ID, 0, LogActivityOptions{})
	assert.Error(t, err)
	_, err = svc.LogActivity(context.Background(), user.ID, walking.ID, -5, LogActivityOptions{})
	assert.Error(t, err)
}

func TestLogActivityUpdatesDailySummary(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	user := testhelpers.SeedUser(t, db)
	walking := testhelpers.SeedActivityType(t, db, "Walking", 4)
	running := testhelpers.SeedActivityType(t, db, "Running", 10)

	at := time.Date(2026, 3, 14, 9, 30, 0, 0, time.Local)
	svc, _ := newActivityService(t, db, at)
	ctx := context.Background()

	_, err := svc.LogActivity(ctx, user.ID, walking.ID, 30, LogActivityOptions{Steps: 3200, Distance: 2.4})
	require.NoError(t, err)
	_, err = svc.LogActivity(ctx, user.ID, running.ID, 20, LogActivityOptions{Distance: 3.5})
	require.NoError(t, err)

	summary, err := svc.GetDailySummary(ctx, user.ID, "2026-03-14")
	require.NoError(t, err)
	assert.True(t, summary.Persisted())
	assert.Equal(t, float64(320), summary.TotalCaloriesBurned)
	assert.Equal(t, 3200, summary.TotalSteps)
	assert.InDelta(t, 5.9, summary.TotalDistance, 1e-9)
	assert.Equal(t, 50, summary.TotalActivityMinutes)
}

func TestRecomputeIsIdempotent(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	user := testhelpers.SeedUser(t, db)
	walking := testhelpers.SeedActivityType(t, db, "Walking", 4)

	at := time.Date(2026, 3, 14, 9, 30, 0, 0, time.Local)
	svc, _ := newActivityService(t, db, at)
	ctx := context.Background()

	_, err := svc.LogActivity(ctx, user.ID, walking.ID, 30, LogActivityOptions{})
	require.NoError(t, err)

	first, err := svc.GetDailySummary(ctx, user.ID, "2026-03-14")
	require.NoError(t, err)

	require.NoError(t, svc.UpdateDailySummary(ctx, user.ID))
	require.NoError(t, svc.UpdateDailySummary(ctx, user.ID))

	second, err := svc.GetDailySummary(ctx, user.ID, "2026-03-14")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.TotalCaloriesBurned, second.TotalCaloriesBurned)

	var rows int64
	require.NoError(t, db.Model(&models.DailySummary{}).
		Where("user_id = ?", user.ID).Count(&rows).Error)
	assert.EqualValues(t, 1, rows)
}

func TestGoalAchievedFlipsOnCrossing(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	user := testhelpers.SeedUser(t, db)
	running := testhelpers.SeedActivityType(t, db, "Running", 10)

	at := time.Date(2026, 3, 14, 7, 0, 0, 0, time.Local)
	svc, goals := newActivityService(t, db, at)
	ctx := context.Background()

	_, err := goals.SetCalorieGoal(ctx, user.ID, 800)
	require.NoError(t, err)

	// 75 min of running burns 750, just short of the 800 target.
	_, err = svc.LogActivity(ctx, user.ID, running.ID, 75, LogActivityOptions{})
	require.NoError(t, err)

	summary, err := svc.GetDailySummary(ctx, user.ID, "2026-03-14")
	require.NoError(t, err)
	assert.Equal(t, float64(750), summary.TotalCaloriesBurned)
	assert.False(t, summary.GoalAchieved)

	// Seven more minutes pushes the total to 820.
	_, err = svc.LogActivity(ctx, user.ID, running.ID, 7, LogActivityOptions{})
	require.NoError(t, err)

	summary, err = svc.GetDailySummary(ctx, user.ID, "2026-03-14")
	require.NoError(t, err)
	assert.Equal(t, float64(820), summary.TotalCaloriesBurned)
	assert.True(t, summary.GoalAchieved)
}

func TestGoalAchievedFalseWithoutGoal(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	user := testhelpers.SeedUser(t, db)
	running := testhelpers.SeedActivityType(t, db, "Running", 10)

	at := time.Date(2026, 3, 14, 7, 0, 0, 0, time.Local)
	svc, _ := newActivityService(t, db, at)
	ctx := context.Background()

	_, err := svc.LogActivity(ctx, user.ID, running.ID, 600, LogActivityOptions{})
	require.NoError(t, err)

	summary, err := svc.GetDailySummary(ctx, user.ID, "2026-03-14")
	require.NoError(t, err)
	assert.False(t, summary.GoalAchieved)
}

func TestGetDailySummaryEmptyDay(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	user := testhelpers.SeedUser(t, db)

	svc, _ := newActivityService(t, db, time.Now())

	summary, err := svc.GetDailySummary(context.Background(), user.ID, "2026-01-01")
	require.NoError(t, err)
	assert.False(t, summary.Persisted())
	assert.Equal(t, user.ID, summary.UserID)
	assert.Equal(t, "2026-01-01", summary.Date)
	assert.Zero(t, summary.TotalCaloriesBurned)
	assert.Zero(t, summary.TotalSteps)
	assert.False(t, summary.GoalAchieved)
}

func TestGetDailySummaryRejectsBadDate(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc, _ := newActivityService(t, db, time.Now())

	_, err := svc.GetDailySummary(context.Background(), 1, "14-03-2026")
	assert.Error(t, err)
}

func TestRecordStepsCoalescesIntoOneRow(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	user := testhelpers.SeedUser(t, db)
	testhelpers.SeedActivityType(t, db, "Walking", 4)

	at := time.Date(2026, 3, 14, 8, 0, 0, 0, time.Local)
	svc, _ := newActivityService(t, db, at)
	ctx := context.Background()

	first, err := svc.RecordSteps(ctx, user.ID, 1000)
	require.NoError(t, err)
	assert.Equal(t, models.SourcePedometer, first.Source)
	assert.Equal(t, 1000, first.Steps)
	assert.Equal(t, float64(40), first.CaloriesBurned)
	assert.Equal(t, 10, first.Duration)

	second, err := svc.RecordSteps(ctx, user.ID, 4500)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 4500, second.Steps)
	assert.Equal(t, float64(180), second.CaloriesBurned)

	var rows int64
	require.NoError(t, db.Model(&models.Activity{}).
		Where("user_id = ? AND source = ?", user.ID, models.SourcePedometer).
		Count(&rows).Error)
	assert.EqualValues(t, 1, rows)

	// The summary reflects the latest cumulative reading, not the sum of
	// every sample delivered.
	summary, err := svc.GetDailySummary(ctx, user.ID, "2026-03-14")
	require.NoError(t, err)
	assert.Equal(t, 4500, summary.TotalSteps)
	assert.Equal(t, float64(180), summary.TotalCaloriesBurned)
}

func TestRecordStepsAlongsideManualActivities(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	user := testhelpers.SeedUser(t, db)
	walking := testhelpers.SeedActivityType(t, db, "Walking", 4)

	at := time.Date(2026, 3, 14, 8, 0, 0, 0, time.Local)
	svc, _ := newActivityService(t, db, at)
	ctx := context.Background()

	_, err := svc.LogActivity(ctx, user.ID, walking.ID, 30, LogActivityOptions{Steps: 3000})
	require.NoError(t, err)
	_, err = svc.RecordSteps(ctx, user.ID, 2000)
	require.NoError(t, err)

	summary, err := svc.GetDailySummary(ctx, user.ID, "2026-03-14")
	require.NoError(t, err)
	assert.Equal(t, 5000, summary.TotalSteps)
	assert.Equal(t, float64(200), summary.TotalCaloriesBurned)
}

func TestRecordStepsRejectsNegative(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	user := testhelpers.SeedUser(t, db)
	testhelpers.SeedActivityType(t, db, "Walking", 4)

	svc, _ := newActivityService(t, db, time.Now())

	_, err := svc.RecordSteps(context.Background(), user.ID, -1)
	assert.Error(t, err)
}

func TestActivitiesForDayNewestFirst(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	user := testhelpers.SeedUser(t, db)
	walking := testhelpers.SeedActivityType(t, db, "Walking", 4)
	running := testhelpers.SeedActivityType(t, db, "Running", 10)

	morning := time.Date(2026, 3, 14, 7, 0, 0, 0, time.Local)
	evening := time.Date(2026, 3, 14, 19, 0, 0, 0, time.Local)

	svc, _ := newActivityService(t, db, morning)
	ctx := context.Background()

	_, err := svc.LogActivity(ctx, user.ID, walking.ID, 30, LogActivityOptions{})
	require.NoError(t, err)

	svc.now = func() time.Time { return evening }
	_, err = svc.LogActivity(ctx, user.ID, running.ID, 20, LogActivityOptions{})
	require.NoError(t, err)

	details, err := svc.ActivitiesForDay(ctx, user.ID, "2026-03-14")
	require.NoError(t, err)
	require.Len(t, details, 2)
	assert.Equal(t, "Running", details[0].ActivityName)
	assert.Equal(t, "Walking", details[1].ActivityName)

	// Other days stay empty.
	other, err := svc.ActivitiesForDay(ctx, user.ID, "2026-03-15")
	require.NoError(t, err)
	assert.Empty(t, other)
}
