package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/msarvaro/gastro-sub000/internal/console"
)

var watchCmd = &cobra.Command{
	Use:   "watch <role>",
	Short: "Run the polling dashboard for a role (admin, manager, waiter, cook)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		role := args[0]

		c, store, err := buildClient(cfg, role)
		if err != nil {
			return err
		}

		ok, err := store.EnsureRole(role)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("no valid %s session, run `gastro login` first", role)
		}

		interval := cfg.PollInterval
		if interval <= 0 {
			interval = 30 * time.Second
		}

		dashboard, err := console.ForRole(role, cfg.Language, interval, os.Stdout, c)
		if err != nil {
			return err
		}
		return dashboard.Run(context.Background(), os.Stdin)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
