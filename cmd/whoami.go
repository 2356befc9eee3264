package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account via the profile endpoint",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		// role comes from the stored credentials, not from the token
		store, err := sessionStore(cfg)
		if err != nil {
			return err
		}
		creds, err := store.Load()
		if err != nil {
			return err
		}
		if creds == nil || creds.Token == "" {
			return fmt.Errorf("not signed in, run `gastro login` first")
		}

		c, _, err := buildClient(cfg, creds.Role)
		if err != nil {
			return err
		}
		profile, err := c.Whoami(context.Background())
		if err != nil {
			return err
		}

		fmt.Printf("%s (%s)", profile.Username, profile.Role)
		if profile.Business != "" {
			fmt.Printf(" @ %s", profile.Business)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
