package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/bahikhata-dev/bahikhata/internal/model"
)

func newAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a voucher",
	}

	cmd.PersistentFlags().String("dir", "", "books directory (defaults to BAHIKHATA_DIR or .)")
	cmd.PersistentFlags().String("date", "", "voucher date as YYYY-MM-DD (defaults to today)")
	cmd.PersistentFlags().String("narration", "", "free-text narration")

	cmd.AddCommand(newAddInvoiceCommand(model.VoucherSales))
	cmd.AddCommand(newAddInvoiceCommand(model.VoucherPurchase))
	cmd.AddCommand(newAddTransferCommand(model.VoucherPayment))
	cmd.AddCommand(newAddTransferCommand(model.VoucherReceipt))
	cmd.AddCommand(newAddContraCommand())
	cmd.AddCommand(newAddJournalCommand())

	return cmd
}

// newAddInvoiceCommand covers sales and purchase, which share a shape.
func newAddInvoiceCommand(vtype model.VoucherType) *cobra.Command {
	var party string
	var interState bool
	var itemSpecs []string

	short := "Record a sales invoice"
	if vtype == model.VoucherPurchase {
		short = "Record a purchase invoice"
	}

	cmd := &cobra.Command{
		Use:   string(vtype),
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := flagDate(cmd)
			if err != nil {
				return err
			}
			items, err := parseItems(itemSpecs)
			if err != nil {
				return err
			}

			v := model.Voucher{
				Type:       vtype,
				Date:       date,
				Party:      party,
				InterState: interState,
				Items:      items,
				Narration:  flagString(cmd, "narration"),
			}
			return record(cmd, v)
		},
	}

	cmd.Flags().StringVar(&party, "party", "", "party ledger name (required)")
	_ = cmd.MarkFlagRequired("party")
	cmd.Flags().BoolVar(&interState, "inter-state", false, "place of supply outside the home state (IGST)")
	cmd.Flags().StringArrayVar(&itemSpecs, "item", nil, "goods line as name:qty:rate[:gst%], repeatable (required)")
	_ = cmd.MarkFlagRequired("item")

	return cmd
}

// newAddTransferCommand covers payment and receipt.
func newAddTransferCommand(vtype model.VoucherType) *cobra.Command {
	var party string
	var account string
	var amount string

	short := "Record a payment to a party"
	if vtype == model.VoucherReceipt {
		short = "Record a receipt from a party"
	}

	cmd := &cobra.Command{
		Use:   string(vtype),
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := flagDate(cmd)
			if err != nil {
				return err
			}
			amt, err := parseAmount(amount)
			if err != nil {
				return err
			}

			v := model.Voucher{
				Type:      vtype,
				Date:      date,
				Party:     party,
				Account:   account,
				Amount:    amt,
				Narration: flagString(cmd, "narration"),
			}
			return record(cmd, v)
		},
	}

	cmd.Flags().StringVar(&party, "party", "", "party ledger name (required)")
	_ = cmd.MarkFlagRequired("party")
	cmd.Flags().StringVar(&account, "account", "", "cash or bank ledger (required)")
	_ = cmd.MarkFlagRequired("account")
	cmd.Flags().StringVar(&amount, "amount", "", "amount (required)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newAddContraCommand() *cobra.Command {
	var from string
	var to string
	var amount string

	cmd := &cobra.Command{
		Use:   "contra",
		Short: "Record a transfer between cash and bank ledgers",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := flagDate(cmd)
			if err != nil {
				return err
			}
			amt, err := parseAmount(amount)
			if err != nil {
				return err
			}

			v := model.Voucher{
				Type:        model.VoucherContra,
				Date:        date,
				FromAccount: from,
				ToAccount:   to,
				Amount:      amt,
				Narration:   flagString(cmd, "narration"),
			}
			return record(cmd, v)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "source ledger (required)")
	_ = cmd.MarkFlagRequired("from")
	cmd.Flags().StringVar(&to, "to", "", "destination ledger (required)")
	_ = cmd.MarkFlagRequired("to")
	cmd.Flags().StringVar(&amount, "amount", "", "amount (required)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newAddJournalCommand() *cobra.Command {
	var entrySpecs []string

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Record a freeform journal voucher",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := flagDate(cmd)
			if err != nil {
				return err
			}
			entries, err := parseEntries(entrySpecs)
			if err != nil {
				return err
			}

			v := model.Voucher{
				Type:      model.VoucherJournal,
				Date:      date,
				Entries:   entries,
				Narration: flagString(cmd, "narration"),
			}
			return record(cmd, v)
		},
	}

	cmd.Flags().StringArrayVar(&entrySpecs, "entry", nil, "entry as ledger:debit:credit, repeatable (required)")
	_ = cmd.MarkFlagRequired("entry")

	return cmd
}

func record(cmd *cobra.Command, v model.Voucher) error {
	b, err := openBooks(flagString(cmd, "dir"))
	if err != nil {
		return err
	}

	no, err := b.recordVoucher(v)
	if err != nil {
		return err
	}

	fmt.Printf("Recorded %s voucher %s\n", v.Type, no)
	return nil
}

func flagString(cmd *cobra.Command, name string) string {
	s, _ := cmd.Flags().GetString(name)
	return s
}

func flagDate(cmd *cobra.Command) (time.Time, error) {
	s := flagString(cmd, "date")
	if s == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	return d, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}

// parseItems parses name:qty:rate[:gst%] specs into line items.
func parseItems(specs []string) ([]model.LineItem, error) {
	items := make([]model.LineItem, 0, len(specs))
	for _, spec := range specs {
		parts := strings.Split(spec, ":")
		if len(parts) != 3 && len(parts) != 4 {
			return nil, fmt.Errorf("invalid item %q, want name:qty:rate[:gst%%]", spec)
		}

		qty, err := decimal.NewFromString(parts[1])
		if err != nil {
			return nil, fmt.Errorf("invalid quantity in %q: %w", spec, err)
		}
		rate, err := decimal.NewFromString(parts[2])
		if err != nil {
			return nil, fmt.Errorf("invalid rate in %q: %w", spec, err)
		}

		item := model.LineItem{Name: parts[0], Qty: qty, Rate: rate}
		if len(parts) == 4 {
			gstRate, err := decimal.NewFromString(parts[3])
			if err != nil {
				return nil, fmt.Errorf("invalid GST rate in %q: %w", spec, err)
			}
			item.GSTRate = gstRate
		}
		items = append(items, item)
	}
	return items, nil
}

// parseEntries parses ledger:debit:credit specs into journal entries.
func parseEntries(specs []string) ([]model.JournalEntry, error) {
	entries := make([]model.JournalEntry, 0, len(specs))
	for _, spec := range specs {
		parts := strings.Split(spec, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("invalid entry %q, want ledger:debit:credit", spec)
		}

		debit, err := decimal.NewFromString(parts[1])
		if err != nil {
			return nil, fmt.Errorf("invalid debit in %q: %w", spec, err)
		}
		credit, err := decimal.NewFromString(parts[2])
		if err != nil {
			return nil, fmt.Errorf("invalid credit in %q: %w", spec, err)
		}

		entries = append(entries, model.JournalEntry{Ledger: parts[0], Debit: debit, Credit: credit})
	}
	return entries, nil
}
