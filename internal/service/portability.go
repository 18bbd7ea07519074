package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/stridekit/fittrack/internal/models"
)

var ErrDataPresent = errors.New("database already has logged data")

const snapshotVersion = 1

// Snapshot is the JSON export format: a manifest plus every table's rows
// with their original ids, so a restore is byte-faithful.
type Snapshot struct {
	Manifest       SnapshotManifest        `json:"manifest"`
	Users          []models.User           `json:"users"`
	ActivityTypes  []models.ActivityType   `json:"activity_types"`
	Activities     []models.Activity       `json:"activities"`
	CalorieGoals   []models.CalorieGoal    `json:"calorie_goals"`
	DailySummaries []models.DailySummary   `json:"daily_summaries"`
	UserSettings   []models.UserSettings   `json:"user_settings"`
	DailyNutrition []models.DailyNutrition `json:"daily_nutrition"`
}

type SnapshotManifest struct {
	ID        uuid.UUID `json:"id"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
}

// PortabilityService exports and restores full database snapshots.
type PortabilityService struct {
	db     *gorm.DB
	logger *zap.Logger
	now    func() time.Time
}

func NewPortabilityService(db *gorm.DB, logger *zap.Logger) *PortabilityService {
	return &PortabilityService{db: db, logger: logger, now: time.Now}
}

// Export writes a JSON snapshot of every table to w.
func (s *PortabilityService) Export(ctx context.Context, w io.Writer) error {
	snap := Snapshot{
		Manifest: SnapshotManifest{
			ID:        uuid.New(),
			Version:   snapshotVersion,
			CreatedAt: s.now(),
		},
	}

	db := s.db.WithContext(ctx)
	for _, step := range []struct {
		name string
		dest any
	}{
		{"users", &snap.Users},
		{"activity types", &snap.ActivityTypes},
		{"activities", &snap.Activities},
		{"calorie goals", &snap.CalorieGoals},
		{"daily summaries", &snap.DailySummaries},
		{"user settings", &snap.UserSettings},
		{"daily nutrition", &snap.DailyNutrition},
	} {
		if err := db.Find(step.dest).Error; err != nil {
			return fmt.Errorf("export %s: %w", step.name, err)
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&snap); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	s.logger.Info("exported snapshot",
		zap.String("snapshot_id", snap.Manifest.ID.String()),
		zap.Int("activities", len(snap.Activities)))
	return nil
}

// HasLoggedData reports whether any activity or nutrition rows exist,
// i.e. data beyond the seeded fixtures that a restore would destroy.
func (s *PortabilityService) HasLoggedData(ctx context.Context) (bool, error) {
	db := s.db.WithContext(ctx)
	var activities, nutrition int64
	if err := db.Model(&models.Activity{}).Count(&activities).Error; err != nil {
		return false, fmt.Errorf("count activities: %w", err)
	}
	if err := db.Model(&models.DailyNutrition{}).Count(&nutrition).Error; err != nil {
		return false, fmt.Errorf("count daily nutrition: %w", err)
	}
	return activities > 0 || nutrition > 0, nil
}

// Import restores a snapshot, replacing all existing rows so ids line up
// with the imported data. Callers decide whether destroying current data
// is acceptable (see HasLoggedData).
func (s *PortabilityService) Import(ctx context.Context, r io.Reader) error {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}
	if snap.Manifest.Version != snapshotVersion {
		return fmt.Errorf("unsupported snapshot version %d", snap.Manifest.Version)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Children before parents to respect the cascades.
		for _, table := range []string{
			"daily_nutrition", "daily_summaries", "user_settings",
			"calorie_goals", "activities", "activity_types", "users",
		} {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}

		for _, step := range []struct {
			name string
			rows any
			len  int
		}{
			{"users", &snap.Users, len(snap.Users)},
			{"activity types", &snap.ActivityTypes, len(snap.ActivityTypes)},
			{"activities", &snap.Activities, len(snap.Activities)},
			{"calorie goals", &snap.CalorieGoals, len(snap.CalorieGoals)},
			{"daily summaries", &snap.DailySummaries, len(snap.DailySummaries)},
			{"user settings", &snap.UserSettings, len(snap.UserSettings)},
			{"daily nutrition", &snap.DailyNutrition, len(snap.DailyNutrition)},
		} {
			if step.len == 0 {
				continue
			}
			if err := tx.Create(step.rows).Error; err != nil {
				return fmt.Errorf("import %s: %w", step.name, err)
			}
		}

		s.logger.Info("imported snapshot",
			zap.String("snapshot_id", snap.Manifest.ID.String()),
			zap.Int("activities", len(snap.Activities)))
		return nil
	})
}
