package service

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/stridekit/fittrack/internal/models"
	"github.com/stridekit/fittrack/internal/testhelpers"
)

func seedLoggedData(t *testing.T, db *gorm.DB) uint {
	t.Helper()

	user := testhelpers.SeedUser(t, db)
	walking := models.ActivityType{Name: "Walking", CaloriesPerMinute: 4}
	require.NoError(t, db.Where(models.ActivityType{Name: walking.Name}).FirstOrCreate(&walking).Error)

	at := time.Date(2026, 3, 14, 9, 0, 0, 0, time.Local)
	goals := NewGoalService(db, zap.NewNop())
	goals.now = func() time.Time { return at }
	activities := NewActivityService(db, goals, zap.NewNop())
	activities.now = func() time.Time { return at }
	nutrition := NewNutritionService(db, zap.NewNop())
	nutrition.now = func() time.Time { return at }

	ctx := context.Background()
	_, err := goals.SetCalorieGoal(ctx, user.ID, 800)
	require.NoError(t, err)
	_, err = activities.LogActivity(ctx, user.ID, walking.ID, 30, LogActivityOptions{Steps: 3000})
	require.NoError(t, err)
	_, err = nutrition.AddWaterIntake(ctx, user.ID, 0.5)
	require.NoError(t, err)
	return user.ID
}

func TestExportImportRoundTrip(t *testing.T) {
	source := testhelpers.NewTestDB(t)
	userID := seedLoggedData(t, source)

	var buf bytes.Buffer
	require.NoError(t, NewPortabilityService(source, zap.NewNop()).Export(context.Background(), &buf))

	target := testhelpers.NewTestDB(t)
	require.NoError(t, NewPortabilityService(target, zap.NewNop()).Import(context.Background(), bytes.NewReader(buf.Bytes())))

	at := time.Date(2026, 3, 14, 9, 0, 0, 0, time.Local)
	goals := NewGoalService(target, zap.NewNop())
	goals.now = func() time.Time { return at }
	activities := NewActivityService(target, goals, zap.NewNop())
	activities.now = func() time.Time { return at }

	summary, err := activities.GetDailySummary(context.Background(), userID, "2026-03-14")
	require.NoError(t, err)
	assert.Equal(t, float64(120), summary.TotalCaloriesBurned)
	assert.Equal(t, 3000, summary.TotalSteps)

	goal, err := goals.ActiveCalorieGoal(context.Background(), userID)
	require.NoError(t, err)
	require.NotNil(t, goal)
	assert.Equal(t, float64(800), goal.TargetCalories)

	row, err := NewNutritionService(target, zap.NewNop()).GetDailyNutrition(context.Background(), userID, "2026-03-14")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, row.WaterIntake, 1e-9)
}

func TestImportReplacesExistingRows(t *testing.T) {
	source := testhelpers.NewTestDB(t)
	seedLoggedData(t, source)

	var buf bytes.Buffer
	require.NoError(t, NewPortabilityService(source, zap.NewNop()).Export(context.Background(), &buf))

	target := testhelpers.NewTestDB(t)
	seedLoggedData(t, target)
	seedLoggedData(t, target)

	svc := NewPortabilityService(target, zap.NewNop())
	require.NoError(t, svc.Import(context.Background(), bytes.NewReader(buf.Bytes())))

	var users, activities int64
	require.NoError(t, target.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, target.Model(&models.Activity{}).Count(&activities).Error)
	assert.EqualValues(t, 1, users)
	assert.EqualValues(t, 1, activities)
}

func TestHasLoggedData(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	testhelpers.SeedUser(t, db)

	svc := NewPortabilityService(db, zap.NewNop())

	has, err := svc.HasLoggedData(context.Background())
	require.NoError(t, err)
	assert.False(t, has)

	seedLoggedData(t, db)

	has, err = svc.HasLoggedData(context.Background())
	require.NoError(t, err)
	assert.True(t, has)
}

func TestImportRejectsUnknownVersion(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := NewPortabilityService(db, zap.NewNop())

	payload, err := json.Marshal(map[string]any{
		"manifest": map[string]any{"version": 99},
	})
	require.NoError(t, err)

	err = svc.Import(context.Background(), bytes.NewReader(payload))
	assert.ErrorContains(t, err, "unsupported snapshot version")
}
