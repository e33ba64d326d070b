package main

import (
	"github.com/spf13/cobra"

	"github.com/menuplan/menuplan/pkg/menu"
	"github.com/menuplan/menuplan/pkg/render"
)

func newTodayCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's meals with image links",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd, opts)
			if err != nil {
				return err
			}
			defer a.close()

			today := now()
			week, _, err := a.generate(cmd, opts, today)
			if err != nil {
				return err
			}
			render.Today(cmd.OutOrStdout(), week[menu.WeekdayIndex(today)])
			return nil
		},
	}
}
