package main

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/menuplan/menuplan/pkg/config"
	"github.com/menuplan/menuplan/pkg/logging"
	"github.com/menuplan/menuplan/pkg/menu"
	"github.com/menuplan/menuplan/pkg/models"
	"github.com/menuplan/menuplan/pkg/store"
)

type options struct {
	configPath string
	debug      bool
	profile    string
	calories   int
	exclude    string
	dailyMode  string
	resetCache bool
	format     string
}

// app bundles what a command needs for one invocation.
type app struct {
	cfg    *config.Config
	logger zerolog.Logger
	store  store.Store
}

func openApp(cmd *cobra.Command, opts *options) (*app, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		cfg, err = config.Load(opts.configPath)
		if err != nil {
			return nil, err
		}
	}

	level := cfg.Logging.Level
	if opts.debug {
		level = "debug"
	}
	logger := logging.New(cmd.ErrOrStderr(), level)

	st, err := store.Open(cfg.Storage, logger)
	if err != nil {
		return nil, err
	}

	cli := logging.Component(logger, "cli")
	cli.Debug().
		Str("command", cmd.Name()).
		Str("backend", cfg.Storage.Backend).
		Str("storage", cfg.Storage.Path).
		Msg("command started")

	return &app{cfg: cfg, logger: logger, store: st}, nil
}

func (a *app) close() {
	if err := a.store.Close(); err != nil {
		a.logger.Warn().Err(err).Msg("close storage")
	}
}

// rawSettings starts from the config defaults and applies the flags the user set.
func (a *app) rawSettings(cmd *cobra.Command, opts *options) models.RawSettings {
	d := a.cfg.Defaults
	raw := models.RawSettings{
		Profile:   d.Profile,
		Calories:  d.Calories,
		Exclude:   d.Exclude,
		DailyMode: d.DailyMode,
	}

	flags := cmd.Flags()
	if flags.Changed("profile") {
		raw.Profile = opts.profile
	}
	if flags.Changed("calories") {
		raw.Calories = opts.calories
	}
	if flags.Changed("exclude") {
		raw.Exclude = menu.ParseExclude(opts.exclude)
	}
	if flags.Changed("daily-mode") {
		raw.DailyMode = opts.dailyMode
	}
	return raw
}

// generate loads the document, produces the week for today and saves the
// document back with the settings snapshot.
func (a *app) generate(cmd *cobra.Command, opts *options, today time.Time) (models.WeekPlan, models.Settings, error) {
	doc := a.store.Load()
	if opts.resetCache {
		doc.Weeks = make(map[string]models.WeekPlan)
		a.logger.Info().Msg("week cache cleared")
	}

	raw := a.rawSettings(cmd, opts)
	settings := menu.Normalize(raw, menu.DefaultSettings)
	doc.Settings = &settings

	planner := menu.NewPlanner(menu.DefaultSettings, a.logger)
	week := planner.Generate(raw, today, &doc)

	if err := a.store.Save(doc); err != nil {
		return nil, settings, err
	}

	stats := planner.Stats(doc)
	a.logger.Debug().
		Int64("entries", stats.Entries).
		Int64("hits", stats.Hits).
		Int64("misses", stats.Misses).
		Msg("week cache")
	return week, settings, nil
}
