package database

import (
	"fmt"

	"gorm.io/gorm"
)

// schemaMigration is the ledger row recording an applied migration.
type schemaMigration struct {
	Version   int    `gorm:"primarykey"`
	Name      string `gorm:"not null"`
	AppliedAt string `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (schemaMigration) TableName() string { return "schema_migrations" }

type migration struct {
	version int
	name    string
	apply   func(tx *gorm.DB) error
}

var migrations = []migration{
	{version: 1, name: "initial_schema", apply: applyInitialSchema},
	{version: 2, name: "nutrition_tracking", apply: applyNutritionTracking},
	{version: 3, name: "activity_source", apply: applyActivitySource},
}

// Migrate brings the schema up to date. It is safe to run on every app
// start: applied versions are skipped via the schema_migrations ledger,
// and column additions are additionally guarded by an existence check so
// they tolerate databases created before the ledger was introduced. Each
// migration runs in its own transaction. Migration failure is fatal to
// startup; callers must not touch the database afterwards.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`).Error; err != nil {
		return fmt.Errorf("ensure schema_migrations table: %w", err)
	}

	for _, m := range migrations {
		var count int64
		if err := db.Model(&schemaMigration{}).Where("version = ?", m.version).Count(&count).Error; err != nil {
			return fmt.Errorf("check migration version %d: %w", m.version, err)
		}
		if count > 0 {
			continue
		}

		if err := db.Transaction(func(tx *gorm.DB) error {
			if err := m.apply(tx); err != nil {
				return err
			}
			return tx.Exec(`INSERT INTO schema_migrations(version, name) VALUES(?, ?)`, m.version, m.name).Error
		}); err != nil {
			return fmt.Errorf("apply migration version %d (%s): %w", m.version, m.name, err)
		}
	}

	return nil
}

func applyInitialSchema(tx *gorm.DB) error {
	return tx.Exec(`
CREATE TABLE IF NOT EXISTS users (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  height REAL,
  weight REAL,
  created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
  updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS activity_types (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL UNIQUE,
  calories_per_minute REAL NOT NULL,
  icon TEXT
);

CREATE TABLE IF NOT EXISTS activities (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  user_id INTEGER NOT NULL,
  activity_type_id INTEGER NOT NULL,
  start_time DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  end_time DATETIME,
  duration INTEGER,
  calories_burned REAL,
  distance REAL,
  steps INTEGER,
  notes TEXT,
  FOREIGN KEY (user_id) REFERENCES users (id) ON DELETE CASCADE,
  FOREIGN KEY (activity_type_id) REFERENCES activity_types (id)
);

CREATE INDEX IF NOT EXISTS idx_activities_user_id ON activities (user_id);
CREATE INDEX IF NOT EXISTS idx_activities_start_time ON activities (start_time);

CREATE TABLE IF NOT EXISTS calorie_goals (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  user_id INTEGER NOT NULL,
  target_calories REAL NOT NULL,
  start_date DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  end_date DATETIME,
  is_active INTEGER NOT NULL DEFAULT 1,
  FOREIGN KEY (user_id) REFERENCES users (id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_calorie_goals_user_id ON calorie_goals (user_id);

CREATE TABLE IF NOT EXISTS daily_summaries (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  user_id INTEGER NOT NULL,
  date TEXT NOT NULL,
  total_calories_burned REAL NOT NULL DEFAULT 0,
  total_steps INTEGER DEFAULT 0,
  total_distance REAL DEFAULT 0,
  total_activity_minutes INTEGER DEFAULT 0,
  goal_achieved INTEGER DEFAULT 0,
  FOREIGN KEY (user_id) REFERENCES users (id) ON DELETE CASCADE
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_daily_summaries_user_date
ON daily_summaries (user_id, date);

CREATE TABLE IF NOT EXISTS user_settings (
  user_id INTEGER PRIMARY KEY,
  daily_calorie_goal REAL DEFAULT 800,
  daily_steps_goal INTEGER DEFAULT 10000,
  notifications_enabled INTEGER DEFAULT 1,
  theme TEXT DEFAULT 'light',
  FOREIGN KEY (user_id) REFERENCES users (id) ON DELETE CASCADE
);
`).Error
}

func applyNutritionTracking(tx *gorm.DB) error {
	if err := addColumnIfMissing(tx, "user_settings", "daily_calories_intake_goal", "REAL DEFAULT 2000"); err != nil {
		return err
	}
	if err := addColumnIfMissing(tx, "user_settings", "daily_water_intake_goal", "REAL DEFAULT 2.5"); err != nil {
		return err
	}

	return tx.Exec(`
CREATE TABLE IF NOT EXISTS daily_nutrition (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  user_id INTEGER NOT NULL,
  date TEXT NOT NULL,
  calories_intake REAL DEFAULT 0,
  calories_gained REAL DEFAULT 0,
  water_intake REAL DEFAULT 0,
  created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
  updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
  FOREIGN KEY (user_id) REFERENCES users (id) ON DELETE CASCADE
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_daily_nutrition_user_date
ON daily_nutrition (user_id, date);
`).Error
}

func applyActivitySource(tx *gorm.DB) error {
	return addColumnIfMissing(tx, "activities", "source", "TEXT NOT NULL DEFAULT 'manual'")
}

// addColumnIfMissing guards ALTER TABLE ADD COLUMN, which SQLite rejects
// when the column already exists.
func addColumnIfMissing(tx *gorm.DB, table, column, definition string) error {
	exists, err := columnExists(tx, table, column)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	if err := tx.Exec(fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, column, definition)).Error; err != nil {
		return fmt.Errorf("add column %s.%s: %w", table, column, err)
	}
	return nil
}

func columnExists(tx *gorm.DB, table, column string) (bool, error) {
	var count int64
	err := tx.Raw(`SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?`, table, column).Scan(&count).Error
	if err != nil {
		return false, fmt.Errorf("inspect columns of %s: %w", table, err)
	}
	return count > 0, nil
}
