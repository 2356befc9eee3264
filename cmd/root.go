package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/msarvaro/gastro-sub000/internal/client"
	"github.com/msarvaro/gastro-sub000/internal/models"
	"github.com/msarvaro/gastro-sub000/internal/session"
	"github.com/msarvaro/gastro-sub000/internal/transport"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "gastro",
	Short: "Terminal console for the Gastro restaurant management platform",
	Long:  `gastro is a CLI console for restaurant staff: role dashboards that poll the backend for orders, tables, inventory, suppliers and supply requests, dispatch status changes, and export history snapshots.`,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.json)")

	rootCmd.PersistentFlags().String("base-url", "http://localhost:8080", "Backend base URL")
	rootCmd.PersistentFlags().String("language", "ru", "Label language for status vocabularies")
	rootCmd.PersistentFlags().Duration("poll-interval", 0, "Dashboard poll interval (default 30s)")

	viper.BindPFlag("base_url", rootCmd.PersistentFlags().Lookup("base-url"))
	viper.BindPFlag("language", rootCmd.PersistentFlags().Lookup("language"))
	viper.BindPFlag("poll_interval", rootCmd.PersistentFlags().Lookup("poll-interval"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildClient wires store -> transport -> resource clients for one role.
func buildClient(cfg *models.Config, role string) (*client.Client, *session.Store, error) {
	store, err := session.NewStore(cfg.CredentialsFile)
	if err != nil {
		return nil, nil, err
	}
	t := transport.New(cfg.BaseURL, store)
	return client.New(t, role), store, nil
}

func sessionStore(cfg *models.Config) (*session.Store, error) {
	return session.NewStore(cfg.CredentialsFile)
}

func loadConfig() (*models.Config, error) {
	cfg, err := models.LoadConfig(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return cfg, nil
}
