package main

import (
	"github.com/spf13/cobra"

	"github.com/menuplan/menuplan/pkg/render"
)

func newProfilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List diet profiles and their meal pools",
		RunE: func(cmd *cobra.Command, args []string) error {
			render.Profiles(cmd.OutOrStdout())
			return nil
		},
	}
}
