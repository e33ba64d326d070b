package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/menuplan/menuplan/pkg/menu"
	"github.com/menuplan/menuplan/pkg/render"
)

var version = "dev"

// now is replaced in tests.
var now = time.Now

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "menuplan",
		Short:         "menuplan — deterministic weekly meal planner",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd, opts)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "path to menuplan config file")
	pf.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	pf.StringVar(&opts.profile, "profile", menu.DefaultSettings.Profile, "diet profile (balanced, highProtein, vegetarian, quick)")
	pf.IntVar(&opts.calories, "calories", menu.DefaultSettings.Calories, "daily calorie target (1200-4000)")
	pf.StringVar(&opts.exclude, "exclude", "", "comma-separated words to exclude (e.g. лук,грибы)")
	pf.StringVar(&opts.dailyMode, "daily-mode", string(menu.DefaultSettings.DailyMode), "regenerate the week every day (on|off)")
	pf.BoolVar(&opts.resetCache, "reset-cache", false, "clear cached weeks before generating")
	root.Flags().StringVar(&opts.format, "format", render.FormatList, "output format (list|table)")

	root.AddCommand(
		newTodayCmd(opts),
		newProfilesCmd(),
		newCacheCmd(opts),
	)
	return root
}

func runPlan(cmd *cobra.Command, opts *options) error {
	a, err := openApp(cmd, opts)
	if err != nil {
		return err
	}
	defer a.close()

	today := now()
	week, settings, err := a.generate(cmd, opts, today)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	todayIdx := menu.WeekdayIndex(today)
	render.Header(out, todayIdx, today.Format(menu.DateLayout), settings)
	render.Week(out, opts.format, week, todayIdx)
	return nil
}
