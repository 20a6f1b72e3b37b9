package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/bahikhata-dev/bahikhata/internal/model"
	"github.com/bahikhata-dev/bahikhata/internal/stock"
)

func newStockMastersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stock",
		Short: "Manage the stock item masters",
	}

	cmd.PersistentFlags().String("dir", "", "books directory (defaults to BAHIKHATA_DIR or .)")

	cmd.AddCommand(newStockAddCommand())
	cmd.AddCommand(newStockListCommand())

	return cmd
}

func newStockAddCommand() *cobra.Command {
	var name string
	var unit string
	var gstRate string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a stock item",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBooks(flagString(cmd, "dir"))
			if err != nil {
				return err
			}

			if _, exists := b.stock.Get(name); exists {
				return fmt.Errorf("stock item %q already exists", name)
			}

			rate := decimal.Zero
			if gstRate != "" {
				rate, err = decimal.NewFromString(gstRate)
				if err != nil {
					return fmt.Errorf("invalid GST rate %q: %w", gstRate, err)
				}
			}

			items := append(b.stock.All(), model.StockItem{Name: name, Unit: unit, GSTRate: rate})
			if err := stock.NewService(items).Save(b.dir); err != nil {
				return err
			}

			fmt.Printf("Created stock item %s\n", name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "item name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&unit, "unit", "", "unit of measure, e.g. bag, kg, nos")
	cmd.Flags().StringVar(&gstRate, "gst-rate", "", "GST rate percentage applied when a voucher line carries none")

	return cmd
}

func newStockListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the stock item masters",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBooks(flagString(cmd, "dir"))
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tUNIT\tGST RATE")
			for _, item := range b.stock.All() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", item.Name, item.Unit, item.GSTRate.String())
			}
			return w.Flush()
		},
	}
}
