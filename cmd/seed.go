package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/msarvaro/gastro-sub000/internal/client"
	"github.com/msarvaro/gastro-sub000/internal/factories"
	"github.com/msarvaro/gastro-sub000/internal/models"
)

// demo-seed pushes generated fixtures into a sandbox backend so dashboards
// have something to show during demos.
var seedCmd = &cobra.Command{
	Use:   "demo-seed",
	Short: "Populate a sandbox backend with generated demo data",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ordersN, _ := cmd.Flags().GetInt("orders")
		suppliersN, _ := cmd.Flags().GetInt("suppliers")
		itemsN, _ := cmd.Flags().GetInt("inventory")

		adminClient, store, err := buildClient(cfg, models.RoleAdmin)
		if err != nil {
			return err
		}
		ok, err := store.EnsureRole(models.RoleAdmin)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("demo-seed needs an admin session")
		}

		waiterClient, _, err := buildClient(cfg, models.RoleWaiter)
		if err != nil {
			return err
		}

		ctx := context.Background()
		supplierFactory := &factories.SupplierFactory{}
		requestFactory := &factories.RequestFactory{}
		inventoryFactory := &factories.InventoryFactory{}
		orderFactory := &factories.OrderFactory{}

		for i := 0; i < suppliersN; i++ {
			s := supplierFactory.CreateSupplier()
			input := client.SupplierInput{
				Name:       s.Name,
				Categories: s.Categories,
				Phone:      s.Phone,
				Email:      s.Email,
				Address:    s.Address,
			}
			if err := adminClient.Suppliers.Create(ctx, input); err != nil {
				log.Printf("failed to seed supplier: %v", err)
				continue
			}
			r := requestFactory.CreateRequest(s.ID)
			if err := adminClient.Requests.Create(ctx, client.RequestInput{
				Branch:     r.Branch,
				Items:      r.Items,
				SupplierID: r.SupplierID,
				Priority:   r.Priority,
			}); err != nil {
				log.Printf("failed to seed request: %v", err)
			}
		}

		for i := 0; i < itemsN; i++ {
			item := inventoryFactory.CreateItem()
			if err := adminClient.Inventory.Create(ctx, client.InventoryInput{
				Name:        item.Name,
				Category:    item.Category,
				Quantity:    item.Quantity,
				Unit:        item.Unit,
				MinQuantity: item.MinQuantity,
			}); err != nil {
				log.Printf("failed to seed inventory item: %v", err)
			}
		}

		for i := 0; i < ordersN; i++ {
			order := orderFactory.CreateOrder()
			if _, err := waiterClient.Orders.Create(ctx, client.CreateOrderInput{
				TableID: order.TableID,
				Items:   order.Items,
				Comment: order.Comment,
			}); err != nil {
				log.Printf("failed to seed order: %v", err)
			}
		}

		fmt.Printf("Seeded %d suppliers, %d inventory items, %d orders\n", suppliersN, itemsN, ordersN)
		return nil
	},
}

func init() {
	seedCmd.Flags().Int("orders", 10, "Number of demo orders")
	seedCmd.Flags().Int("suppliers", 3, "Number of demo suppliers")
	seedCmd.Flags().Int("inventory", 15, "Number of demo inventory items")
	rootCmd.AddCommand(seedCmd)
}
