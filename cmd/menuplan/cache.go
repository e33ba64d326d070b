package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newCacheCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the week cache",
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show cached weeks",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd, opts)
			if err != nil {
				return err
			}
			defer a.close()

			doc := a.store.Load()
			keys := make([]string, 0, len(doc.Weeks))
			for k := range doc.Weeks {
				keys = append(keys, k)
			}
			sort.Strings(keys)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Storage: %s (%s)\nEntries: %d\n", a.cfg.Storage.Path, a.cfg.Storage.Backend, len(keys))
			for _, k := range keys {
				fmt.Fprintf(out, "  %s\n", k)
			}
			return nil
		},
	}

	var key string
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear cached weeks",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd, opts)
			if err != nil {
				return err
			}
			defer a.close()

			doc := a.store.Load()
			out := cmd.OutOrStdout()
			if key != "" {
				if _, ok := doc.Weeks[key]; !ok {
					fmt.Fprintf(out, "No cached week for key %q.\n", key)
					return nil
				}
				delete(doc.Weeks, key)
				if err := a.store.Save(doc); err != nil {
					return err
				}
				fmt.Fprintf(out, "Cached week %q cleared.\n", key)
				return nil
			}

			n := len(doc.Weeks)
			clear(doc.Weeks)
			if err := a.store.Save(doc); err != nil {
				return err
			}
			fmt.Fprintf(out, "All cached weeks cleared (%d).\n", n)
			return nil
		},
	}
	clearCmd.Flags().StringVar(&key, "key", "", "only clear this cache key (e.g. 2026-10-19-balanced or static)")

	cmd.AddCommand(statsCmd, clearCmd)
	return cmd
}
