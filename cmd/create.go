package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msarvaro/gastro-sub000/internal/client"
	"github.com/msarvaro/gastro-sub000/internal/models"
	"github.com/msarvaro/gastro-sub000/internal/view"
)

var createOrderCmd = &cobra.Command{
	Use:   "create-order",
	Short: "Create an order (items as name:qty:price)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		table, _ := cmd.Flags().GetString("table")
		comment, _ := cmd.Flags().GetString("comment")
		rawItems, _ := cmd.Flags().GetStringArray("item")
		if table == "" || len(rawItems) == 0 {
			return fmt.Errorf("--table and at least one --item are required")
		}

		items := make([]models.OrderItem, 0, len(rawItems))
		for _, raw := range rawItems {
			item, err := parseOrderItem(raw)
			if err != nil {
				return err
			}
			items = append(items, item)
		}

		c, store, err := buildClient(cfg, models.RoleWaiter)
		if err != nil {
			return err
		}
		ok, err := store.EnsureRole(models.RoleWaiter)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("creating orders needs a waiter session")
		}

		order, err := c.Orders.Create(context.Background(), client.CreateOrderInput{
			TableID: table,
			Items:   items,
			Comment: comment,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Created order %s, total %s\n", order.ID, view.FormatMoney(order.Total))
		return nil
	},
}

func parseOrderItem(raw string) (models.OrderItem, error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 3 {
		return models.OrderItem{}, fmt.Errorf("item %q must be name:qty:price", raw)
	}
	qty, err := strconv.Atoi(parts[1])
	if err != nil {
		return models.OrderItem{}, fmt.Errorf("item %q has a bad quantity: %w", raw, err)
	}
	price, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return models.OrderItem{}, fmt.Errorf("item %q has a bad price: %w", raw, err)
	}
	return models.OrderItem{Name: parts[0], Quantity: qty, Price: price}, nil
}

func init() {
	createOrderCmd.Flags().String("table", "", "Table id for the order")
	createOrderCmd.Flags().String("comment", "", "Optional order comment")
	createOrderCmd.Flags().StringArray("item", nil, "Order item as name:qty:price (repeatable)")
	rootCmd.AddCommand(createOrderCmd)
}
