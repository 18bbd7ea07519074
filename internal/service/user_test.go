package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/stridekit/fittrack/internal/models"
	"github.com/stridekit/fittrack/internal/testhelpers"
)

func TestDefaultUserReturnsOldest(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	first := testhelpers.SeedUser(t, db)
	testhelpers.SeedUser(t, db)

	svc := NewUserService(db, zap.NewNop())

	user, err := svc.DefaultUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first.ID, user.ID)
}

func TestDefaultUserEmptyDatabase(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := NewUserService(db, zap.NewNop())

	_, err := svc.DefaultUser(context.Background())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetUserNotFound(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := NewUserService(db, zap.NewNop())

	_, err := svc.GetUser(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetSettingsRecreatesDefaults(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	user := testhelpers.SeedUser(t, db)
	require.NoError(t, db.Delete(&models.UserSettings{}, "user_id = ?", user.ID).Error)

	svc := NewUserService(db, zap.NewNop())

	settings, err := svc.GetSettings(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, settings.UserID)
	assert.Equal(t, float64(800), settings.DailyCalorieGoal)
	assert.Equal(t, 10000, settings.DailyStepsGoal)
	assert.Equal(t, float64(2000), settings.DailyCaloriesIntakeGoal)
	assert.Equal(t, 2.5, settings.DailyWaterIntakeGoal)
}

func TestUpdateSettingsRoundTrip(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	user := testhelpers.SeedUser(t, db)

	svc := NewUserService(db, zap.NewNop())
	ctx := context.Background()

	settings, err := svc.GetSettings(ctx, user.ID)
	require.NoError(t, err)

	settings.Theme = "dark"
	settings.DailyStepsGoal = 12000
	require.NoError(t, svc.UpdateSettings(ctx, settings))

	reloaded, err := svc.GetSettings(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "dark", reloaded.Theme)
	assert.Equal(t, 12000, reloaded.DailyStepsGoal)

	assert.Error(t, svc.UpdateSettings(ctx, &models.UserSettings{}))
}
