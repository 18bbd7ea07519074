package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/stridekit/fittrack/internal/service"
)

// State is the store lifecycle. Dependent UI must render a loading state
// until Ready; Failed carries the hydration error via Err.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Snapshot is a point-in-time copy of the store's "today" fields.
type Snapshot struct {
	Steps              int
	ActiveMinutes      int
	Distance           float64 // km
	Calories           float64
	CalorieGoal        float64
	CaloriesIntake     float64
	CaloriesIntakeGoal float64
	CaloriesGained     float64
	WaterIntake        float64
	WaterIntakeGoal    float64 // liters
}

// Activity is the process-local cache of today's metrics for one user.
// Mutating actions apply optimistically, then write through the
// operations layer; if the write fails the optimistic change is rolled
// back and the error returned. Dependencies are injected; the store is
// not a package global.
type Activity struct {
	activities service.ActivityOperations
	goals      service.GoalOperations
	nutrition  service.NutritionOperations
	users      service.UserOperations
	logger     *zap.Logger
	userID     uint
	now        func() time.Time

	mu    sync.Mutex
	state State
	err   error
	snap  Snapshot
}

func NewActivity(
	activities service.ActivityOperations,
	goals service.GoalOperations,
	nutrition service.NutritionOperations,
	users service.UserOperations,
	userID uint,
	logger *zap.Logger,
) *Activity {
	return &Activity{
		activities: activities,
		goals:      goals,
		nutrition:  nutrition,
		users:      users,
		logger:     logger,
		userID:     userID,
		now:        time.Now,
	}
}

// Init hydrates the store from today's summary, the user's settings, the
// nutrition row and the active goal, in sequence. On failure the store
// lands in StateFailed with the cause retained.
func (s *Activity) Init(ctx context.Context) error {
	s.mu.Lock()
	s.state = StateLoading
	s.err = nil
	s.mu.Unlock()

	snap, err := s.hydrate(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = StateFailed
		s.err = err
		s.logger.Error("store hydration failed", zap.Error(err))
		return err
	}
	s.snap = snap
	s.state = StateReady
	s.logger.Debug("store ready",
		zap.Int("steps", snap.Steps),
		zap.Float64("calories", snap.Calories))
	return nil
}

func (s *Activity) hydrate(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	today := service.DateOf(s.now())

	summary, err := s.activities.GetDailySummary(ctx, s.userID, today)
	if err != nil {
		return snap, fmt.Errorf("hydrate daily summary: %w", err)
	}
	snap.Steps = summary.TotalSteps
	snap.ActiveMinutes = summary.TotalActivityMinutes
	snap.Distance = summary.TotalDistance
	snap.Calories = summary.TotalCaloriesBurned

	settings, err := s.users.GetSettings(ctx, s.userID)
	if err != nil {
		return snap, fmt.Errorf("hydrate settings: %w", err)
	}
	snap.CalorieGoal = settings.DailyCalorieGoal
	snap.CaloriesIntakeGoal = settings.DailyCaloriesIntakeGoal
	snap.WaterIntakeGoal = settings.DailyWaterIntakeGoal

	nutrition, err := s.nutrition.GetDailyNutrition(ctx, s.userID, today)
	if err != nil {
		return snap, fmt.Errorf("hydrate nutrition: %w", err)
	}
	snap.CaloriesIntake = nutrition.CaloriesIntake
	snap.CaloriesGained = nutrition.CaloriesGained
	snap.WaterIntake = nutrition.WaterIntake

	goal, err := s.goals.ActiveCalorieGoal(ctx, s.userID)
	if err != nil {
		return snap, fmt.Errorf("hydrate active goal: %w", err)
	}
	if goal != nil {
		snap.CalorieGoal = goal.TargetCalories
	}

	return snap, nil
}

// State reports the lifecycle state.
func (s *Activity) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Err returns the hydration error when the store is in StateFailed.
func (s *Activity) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Snapshot returns a copy of the current fields.
func (s *Activity) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// UserID returns the identity this store mirrors.
func (s *Activity) UserID() uint { return s.userID }

// mutate applies an optimistic in-memory change, runs the write-through,
// and rolls the change back if persistence fails.
func (s *Activity) mutate(apply func(*Snapshot), persist func() error) error {
	s.mu.Lock()
	prev := s.snap
	apply(&s.snap)
	s.mu.Unlock()

	if err := persist(); err != nil {
		s.mu.Lock()
		s.snap = prev
		s.mu.Unlock()
		s.logger.Warn("write-through failed, optimistic change rolled back", zap.Error(err))
		return err
	}
	return nil
}

// AddCalories adjusts the displayed burn total without persistence; the
// durable total comes from logged activities.
func (s *Activity) AddCalories(calories float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Calories += calories
}

// SetActiveMinutes adjusts the displayed active minutes without
// persistence.
func (s *Activity) SetActiveMinutes(minutes int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.ActiveMinutes = minutes
}

// SetDistance adjusts the displayed distance without persistence.
func (s *Activity) SetDistance(km float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Distance = km
}

// LogActivity records an activity through the operations layer and then
// refreshes the aggregate fields from the recomputed summary.
func (s *Activity) LogActivity(ctx context.Context, activityTypeID uint, duration int, opts service.LogActivityOptions) error {
	if _, err := s.activities.LogActivity(ctx, s.userID, activityTypeID, duration, opts); err != nil {
		return err
	}
	return s.refreshSummary(ctx)
}

// RecordSteps applies a cumulative pedometer reading: steps are set
// optimistically, persisted through the coalescing upsert, and the
// remaining aggregate fields refreshed from the recomputed summary.
func (s *Activity) RecordSteps(ctx context.Context, steps int) error {
	err := s.mutate(
		func(snap *Snapshot) { snap.Steps = steps },
		func() error {
			_, err := s.activities.RecordSteps(ctx, s.userID, steps)
			return err
		},
	)
	if err != nil {
		return err
	}
	return s.refreshSummary(ctx)
}

func (s *Activity) refreshSummary(ctx context.Context) error {
	summary, err := s.activities.GetDailySummary(ctx, s.userID, service.DateOf(s.now()))
	if err != nil {
		return fmt.Errorf("refresh summary: %w", err)
	}
	s.mu.Lock()
	s.snap.Steps = summary.TotalSteps
	s.snap.ActiveMinutes = summary.TotalActivityMinutes
	s.snap.Distance = summary.TotalDistance
	s.snap.Calories = summary.TotalCaloriesBurned
	s.mu.Unlock()
	return nil
}

// SetCalorieGoal activates a new burn goal.
func (s *Activity) SetCalorieGoal(ctx context.Context, calories float64) error {
	return s.mutate(
		func(snap *Snapshot) { snap.CalorieGoal = calories },
		func() error {
			_, err := s.goals.SetCalorieGoal(ctx, s.userID, calories)
			return err
		},
	)
}

// AddCaloriesIntake accumulates consumed calories.
func (s *Activity) AddCaloriesIntake(ctx context.Context, calories float64) error {
	return s.mutate(
		func(snap *Snapshot) { snap.CaloriesIntake += calories },
		func() error {
			_, err := s.nutrition.AddCaloriesIntake(ctx, s.userID, calories)
			return err
		},
	)
}

// AddCaloriesGained accumulates net gained calories.
func (s *Activity) AddCaloriesGained(ctx context.Context, calories float64) error {
	return s.mutate(
		func(snap *Snapshot) { snap.CaloriesGained += calories },
		func() error {
			_, err := s.nutrition.AddCaloriesGained(ctx, s.userID, calories)
			return err
		},
	)
}

// AddWaterIntake accumulates water intake (liters).
func (s *Activity) AddWaterIntake(ctx context.Context, liters float64) error {
	return s.mutate(
		func(snap *Snapshot) { snap.WaterIntake += liters },
		func() error {
			_, err := s.nutrition.AddWaterIntake(ctx, s.userID, liters)
			return err
		},
	)
}

// SetCaloriesIntakeGoal updates the daily intake target.
func (s *Activity) SetCaloriesIntakeGoal(ctx context.Context, calories float64) error {
	return s.mutate(
		func(snap *Snapshot) { snap.CaloriesIntakeGoal = calories },
		func() error { return s.nutrition.SetCaloriesIntakeGoal(ctx, s.userID, calories) },
	)
}

// SetWaterIntakeGoal updates the daily water target (liters).
func (s *Activity) SetWaterIntakeGoal(ctx context.Context, liters float64) error {
	return s.mutate(
		func(snap *Snapshot) { snap.WaterIntakeGoal = liters },
		func() error { return s.nutrition.SetWaterIntakeGoal(ctx, s.userID, liters) },
	)
}
