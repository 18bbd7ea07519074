package testhelpers

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/stridekit/fittrack/internal/database"
	"github.com/stridekit/fittrack/internal/models"
)

// NewTestDB opens a uniquely named in-memory database, runs the full
// migration set and registers cleanup. Tests exercise the same driver and
// schema as production.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.OpenMemory("test-" + uuid.NewString())
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, sqlDB.Close())
	})
	return db
}

// SeedUser inserts a user with generated identity plus default settings.
func SeedUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(gofakeit.Password(true, true, true, false, false, 12)), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Name:         gofakeit.Name(),
		Email:        gofakeit.Email(),
		PasswordHash: string(hash),
		Height:       gofakeit.Float64Range(150, 200),
		Weight:       gofakeit.Float64Range(50, 110),
	}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&models.UserSettings{
		UserID:                  user.ID,
		DailyCalorieGoal:        800,
		DailyStepsGoal:          10000,
		NotificationsEnabled:    true,
		Theme:                   "light",
		DailyCaloriesIntakeGoal: 2000,
		DailyWaterIntakeGoal:    2.5,
	}).Error)
	return &user
}

// SeedActivityType inserts one reference activity type.
func SeedActivityType(t *testing.T, db *gorm.DB, name string, caloriesPerMinute float64) *models.ActivityType {
	t.Helper()

	at := models.ActivityType{Name: name, CaloriesPerMinute: caloriesPerMinute}
	require.NoError(t, db.Create(&at).Error)
	return &at
}
