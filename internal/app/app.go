// Package app wires one instance of every store around a shared database.
package app

import (
	"fmt"
	"io"
	"time"

	"github.com/theirongolddev/lifeos/internal/backup"
	"github.com/theirongolddev/lifeos/internal/config"
	"github.com/theirongolddev/lifeos/internal/cyber"
	"github.com/theirongolddev/lifeos/internal/finance"
	"github.com/theirongolddev/lifeos/internal/gym"
	"github.com/theirongolddev/lifeos/internal/logging"
	"github.com/theirongolddev/lifeos/internal/model"
	"github.com/theirongolddev/lifeos/internal/notify"
	"github.com/theirongolddev/lifeos/internal/pipeline"
	"github.com/theirongolddev/lifeos/internal/store"
	"github.com/theirongolddev/lifeos/internal/tasks"

	"go.uber.org/zap"
)

// Options controls how Open builds an App.
type Options struct {
	Config config.Config
	// DBPath and LogLevel override the config when set.
	DBPath   string
	LogLevel string
	// Logger replaces the logger built from LogLevel.
	Logger *zap.Logger
	// Bell receives terminal notifications; nil disables them.
	Bell io.Writer
	Now  func() time.Time
}

// App is a running lifeos instance.
type App struct {
	Config config.Config
	DB     *store.DB
	Log    *zap.Logger

	Missions *cyber.Store
	Schedule *gym.Store
	Tasks    *tasks.Store
	Ledger   *finance.Store
	Backup   *backup.Codec

	notifier notify.Notifier
	now      func() time.Time
}

// Open opens the database, builds every store and loads their state.
func Open(opts Options) (*App, error) {
	a := &App{Config: opts.Config, now: opts.Now}
	if a.now == nil {
		a.now = time.Now
	}

	a.Log = opts.Logger
	if a.Log == nil {
		level := opts.LogLevel
		if level == "" {
			level = a.Config.Log.Level
		}
		l, err := logging.New(level)
		if err != nil {
			return nil, err
		}
		a.Log = l
	}

	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = a.Config.DBPath()
	}
	db, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	a.DB = db

	sinks := []notify.Notifier{notify.Logger(a.Log)}
	if opts.Bell != nil {
		sinks = append(sinks, notify.Bell{W: opts.Bell})
	}
	a.notifier = notify.Gate{
		Allowed: func() bool { return a.Config.Notifications.Enabled },
		Next:    notify.Multi(sinks...),
	}

	a.Missions = cyber.New(db,
		cyber.WithLogger(a.Log.Named("cyber")),
		cyber.WithClock(a.now),
		cyber.WithNotifier(a.notifier))
	a.Schedule = gym.New(db, gym.WithLogger(a.Log.Named("gym")))
	a.Tasks = tasks.New(db, tasks.WithLogger(a.Log.Named("tasks")), tasks.WithClock(a.now))
	a.Ledger = finance.New(db, finance.WithLogger(a.Log.Named("finance")), finance.WithClock(a.now))
	a.Backup = backup.New(db, a.Log.Named("backup"))

	if err := a.Reload(); err != nil {
		_ = db.Close()
		return nil, err
	}
	a.Log.Debug("opened", zap.String("db", dbPath))
	return a, nil
}

// Reload re-reads every store from the database.
func (a *App) Reload() error {
	loaders := []struct {
		name string
		load func() error
	}{
		{"cyber", a.Missions.Initialize},
		{"gym", a.Schedule.Initialize},
		{"tasks", a.Tasks.Initialize},
		{"finance", a.Ledger.Initialize},
	}
	for _, l := range loaders {
		if err := l.load(); err != nil {
			return fmt.Errorf("loading %s: %w", l.name, err)
		}
	}
	return nil
}

// Now returns the current time on the app clock.
func (a *App) Now() time.Time { return a.now() }

// Sources exposes the stores to the aggregator.
func (a *App) Sources() pipeline.Sources {
	return pipeline.Sources{
		Missions: a.Missions,
		Schedule: a.Schedule,
		Tasks:    a.Tasks,
		Ledger:   a.Ledger,
	}
}

// Dashboard computes the summary view at the current time.
func (a *App) Dashboard() model.Dashboard {
	return pipeline.Snapshot(a.Sources(), a.now())
}

// EnableNotifications grants notification permission and persists it with
// save. The confirmation event is sent only on the first grant. It reports
// whether permission was newly granted.
func (a *App) EnableNotifications(save func(config.Config) error) (bool, error) {
	if a.Config.Notifications.Enabled {
		return false, nil
	}
	next := a.Config
	next.Notifications.Enabled = true
	if err := save(next); err != nil {
		return false, fmt.Errorf("saving config: %w", err)
	}
	a.Config = next
	a.notifier.Notify(notify.EnabledEvent())
	return true, nil
}

// Close releases the database and flushes the logger.
func (a *App) Close() error {
	err := a.DB.Close()
	_ = a.Log.Sync()
	return err
}
