package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/msarvaro/gastro-sub000/internal/export"
	"github.com/msarvaro/gastro-sub000/internal/models"
)

var exportCmd = &cobra.Command{
	Use:   "export <orders|requests>",
	Short: "Export closed history to a sink (console, json, csv, kafka, parquet, postgres)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		// history feeds come from the manager surface
		c, store, err := buildClient(cfg, models.RoleManager)
		if err != nil {
			return err
		}
		ok, err := store.EnsureRole(models.RoleManager)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("export needs a manager session, run `gastro login` first")
		}

		sink, err := export.BuildSink(cfg.Export)
		if err != nil {
			return err
		}
		defer sink.Close()

		exporter := export.NewExporter(sink)
		ctx := context.Background()

		switch args[0] {
		case "orders":
			orders, err := c.Orders.History(ctx)
			if err != nil {
				return err
			}
			return exporter.ExportOrders(ctx, orders)
		case "requests":
			requests, err := c.Requests.List(ctx)
			if err != nil {
				return err
			}
			return exporter.ExportRequests(ctx, requests)
		default:
			return fmt.Errorf("unknown export resource %q", args[0])
		}
	},
}

func init() {
	exportCmd.Flags().String("sink", "", "Override the configured sink")
	exportCmd.Flags().String("output-path", "", "Base path for file sinks")
	viper.BindPFlag("export.sink", exportCmd.Flags().Lookup("sink"))
	viper.BindPFlag("export.output_path", exportCmd.Flags().Lookup("output-path"))
	rootCmd.AddCommand(exportCmd)
}
