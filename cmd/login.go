package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msarvaro/gastro-sub000/internal/client"
	"github.com/msarvaro/gastro-sub000/internal/session"
	"github.com/msarvaro/gastro-sub000/internal/transport"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate and store credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")
		business, _ := cmd.Flags().GetString("business")
		remember, _ := cmd.Flags().GetBool("remember")
		if username == "" || password == "" {
			return fmt.Errorf("both --username and --password are required")
		}

		store, err := session.NewStore(cfg.CredentialsFile)
		if err != nil {
			return err
		}
		t := transport.New(cfg.BaseURL, store)

		resp, err := client.Login(context.Background(), t, username, password, remember)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		creds := &session.Credentials{Token: resp.Token, Role: resp.Role, BusinessID: business}
		if err := store.Save(creds); err != nil {
			return err
		}

		fmt.Printf("Signed in as %s (%s)\n", username, resp.Role)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear stored credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store, err := session.NewStore(cfg.CredentialsFile)
		if err != nil {
			return err
		}
		return store.Clear()
	},
}

func init() {
	loginCmd.Flags().String("username", "", "Account username")
	loginCmd.Flags().String("password", "", "Account password")
	loginCmd.Flags().String("business", "", "Business (location) id for privileged roles")
	loginCmd.Flags().Bool("remember", false, "Ask the backend for a long-lived token")
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}
