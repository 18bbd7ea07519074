package store

import (
	"sync"
	"time"

	"github.com/stridekit/fittrack/internal/models"
)

// Workout holds the in-memory workout history and the fixture catalogs
// for the workouts screen. History is display data, not part of the
// persisted activity log.
type Workout struct {
	now func() time.Time

	mu      sync.Mutex
	loaded  bool
	history []models.WorkoutEntry
}

func NewWorkout() *Workout {
	return &Workout{now: time.Now}
}

// LoadHistory seeds the sample history on first call.
func (s *Workout) LoadHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return
	}
	today := s.now()
	yesterday := today.AddDate(0, 0, -1)
	s.history = []models.WorkoutEntry{
		{ID: 1, Date: today.Format("2006-01-02"), Name: "Morning Run", Calories: 320, Duration: 30},
		{ID: 2, Date: yesterday.Format("2006-01-02"), Name: "Weight Training", Calories: 250, Duration: 45},
	}
	s.loaded = true
}

// History returns a copy of the workout history, newest first.
func (s *Workout) History() []models.WorkoutEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.WorkoutEntry, len(s.history))
	copy(out, s.history)
	return out
}

// AddWorkout prepends a completed workout dated today.
func (s *Workout) AddWorkout(name string, calories float64, duration int) models.WorkoutEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := 0
	for _, w := range s.history {
		if w.ID > next {
			next = w.ID
		}
	}
	entry := models.WorkoutEntry{
		ID:       next + 1,
		Date:     s.now().Format("2006-01-02"),
		Name:     name,
		Calories: calories,
		Duration: duration,
	}
	s.history = append([]models.WorkoutEntry{entry}, s.history...)
	return entry
}

// Routines returns the bundled workout routine catalog.
func (s *Workout) Routines() []models.WorkoutRoutine { return models.DefaultRoutines }

// Exercises returns the bundled exercise catalog.
func (s *Workout) Exercises() []models.Exercise { return models.DefaultExercises }
