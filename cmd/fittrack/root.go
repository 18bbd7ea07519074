package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/stridekit/fittrack/config"
	"github.com/stridekit/fittrack/internal/database"
	"github.com/stridekit/fittrack/internal/service"
	"github.com/stridekit/fittrack/internal/store"
)

var (
	flagDBPath  string
	flagVerbose bool
)

// app holds the wired-up components for the lifetime of one command.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB

	users       *service.UserService
	goals       *service.GoalService
	activities  *service.ActivityService
	nutrition   *service.NutritionService
	portability *service.PortabilityService

	store    *store.Activity
	workouts *store.Workout
	userID   uint
}

var a app

var rootCmd = &cobra.Command{
	Use:   "fittrack",
	Short: "fittrack is a local-first activity, diet and goal tracker",
	Long: "fittrack keeps your activity log, calorie goals, daily summaries and\n" +
		"nutrition in a local SQLite database. Everything stays on this device.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		teardown()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		teardown()
		os.Exit(1)
	}
}

// setup runs migrations before anything touches the database; a failure
// here aborts the command.
func setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if flagDBPath != "" {
		cfg.DBPath = flagDBPath
	}
	a.cfg = cfg

	if flagVerbose {
		a.logger, err = zap.NewDevelopment()
	} else {
		a.logger, err = zap.NewProduction()
	}
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	a.db, err = database.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	if err := database.Migrate(a.db); err != nil {
		return fmt.Errorf("database migration failed: %w", err)
	}
	if err := database.Seed(a.db, a.logger); err != nil {
		return fmt.Errorf("database seed failed: %w", err)
	}

	a.users = service.NewUserService(a.db, a.logger)
	a.goals = service.NewGoalService(a.db, a.logger)
	a.activities = service.NewActivityService(a.db, a.goals, a.logger)
	a.nutrition = service.NewNutritionService(a.db, a.logger)
	a.portability = service.NewPortabilityService(a.db, a.logger)

	user, err := a.users.DefaultUser(cmd.Context())
	if err != nil {
		return err
	}
	a.userID = user.ID

	a.store = store.NewActivity(a.activities, a.goals, a.nutrition, a.users, a.userID, a.logger)
	a.workouts = store.NewWorkout()
	if err := a.store.Init(cmd.Context()); err != nil {
		return fmt.Errorf("load activity data: %w", err)
	}
	return nil
}

func teardown() {
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		a.db = nil
	}
	if a.logger != nil {
		_ = a.logger.Sync()
		a.logger = nil
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to SQLite database")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Verbose logging")
}
