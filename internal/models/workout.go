package models

// Exercise and WorkoutRoutine are in-memory catalog fixtures for the
// workouts screen; they are not persisted.
type Exercise struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	CaloriesPerUnit float64 `json:"calories_per_unit"`
	Unit            string  `json:"unit"` // "reps", "minutes", "sets"
}

type RoutineExercise struct {
	Exercise        Exercise `json:"exercise"`
	DefaultQuantity int      `json:"default_quantity"`
}

type WorkoutRoutine struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Exercises []RoutineExercise `json:"exercises"`
}

// WorkoutEntry is one completed workout in the history list.
type WorkoutEntry struct {
	ID       int     `json:"id"`
	Date     string  `json:"date"` // YYYY-MM-DD
	Name     string  `json:"workout_name"`
	Calories float64 `json:"calories"`
	Duration int     `json:"duration"` // minutes
}

// DefaultExercises mirrors the shipped exercise catalog.
var DefaultExercises = []Exercise{
	{ID: "ex1", Name: "Push-ups", CaloriesPerUnit: 7, Unit: "reps"},
	{ID: "ex2", Name: "Sit-ups", CaloriesPerUnit: 5, Unit: "reps"},
	{ID: "ex3", Name: "Squats", CaloriesPerUnit: 8, Unit: "reps"},
	{ID: "ex4", Name: "Jumping Jacks", CaloriesPerUnit: 10, Unit: "sets"},
	{ID: "ex5", Name: "Running", CaloriesPerUnit: 12, Unit: "minutes"},
	{ID: "ex6", Name: "Cycling", CaloriesPerUnit: 8, Unit: "minutes"},
	{ID: "ex7", Name: "Swimming", CaloriesPerUnit: 14, Unit: "minutes"},
	{ID: "ex8", Name: "Burpees", CaloriesPerUnit: 15, Unit: "reps"},
}

// DefaultRoutines are the bundled workout routines.
var DefaultRoutines = []WorkoutRoutine{
	{
		ID:   "wr1",
		Name: "Quick Morning Workout",
		Exercises: []RoutineExercise{
			{Exercise: DefaultExercises[0], DefaultQuantity: 20},
			{Exercise: DefaultExercises[1], DefaultQuantity: 30},
			{Exercise: DefaultExercises[3], DefaultQuantity: 5},
		},
	},
	{
		ID:   "wr2",
		Name: "Full Body Blast",
		Exercises: []RoutineExercise{
			{Exercise: DefaultExercises[0], DefaultQuantity: 15},
			{Exercise: DefaultExercises[2], DefaultQuantity: 20},
			{Exercise: DefaultExercises[7], DefaultQuantity: 10},
			{Exercise: DefaultExercises[3], DefaultQuantity: 3},
		},
	},
	{
		ID:   "wr3",
		Name: "Cardio Session",
		Exercises: []RoutineExercise{
			{Exercise: DefaultExercises[4], DefaultQuantity: 15},
			{Exercise: DefaultExercises[5], DefaultQuantity: 10},
		},
	},
	{
		ID:   "wr4",
		Name: "Core Strength",
		Exercises: []RoutineExercise{
			{Exercise: DefaultExercises[0], DefaultQuantity: 25},
			{Exercise: DefaultExercises[1], DefaultQuantity: 40},
			{Exercise: DefaultExercises[7], DefaultQuantity: 15},
		},
	},
}
