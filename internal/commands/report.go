package commands

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/bahikhata-dev/bahikhata/internal/model"
	"github.com/bahikhata-dev/bahikhata/internal/posting"
	"github.com/bahikhata-dev/bahikhata/internal/reports"
)

func newReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print reports over the books",
	}

	cmd.PersistentFlags().String("dir", "", "books directory (defaults to BAHIKHATA_DIR or .)")
	cmd.PersistentFlags().Int("year", time.Now().Year(), "calendar year to report on")
	cmd.PersistentFlags().Int("month", 0, "month to report on, 0 for the whole year")

	cmd.AddCommand(newTrialBalanceCommand())
	cmd.AddCommand(newLedgerCommand())
	cmd.AddCommand(newDayBookCommand())
	cmd.AddCommand(newStockCommand())
	cmd.AddCommand(newGSTCommand("gstr1", "Summarize outward supplies (sales) per party"))
	cmd.AddCommand(newGSTCommand("gstr2", "Summarize inward supplies (purchases) per party"))

	return cmd
}

// reportPeriod opens the books and reads the selected vouchers.
func reportPeriod(cmd *cobra.Command) (*books, []model.Voucher, error) {
	b, err := openBooks(flagString(cmd, "dir"))
	if err != nil {
		return nil, nil, err
	}

	year, _ := cmd.Flags().GetInt("year")
	month, _ := cmd.Flags().GetInt("month")
	vs, err := b.readPeriod(year, month)
	if err != nil {
		return nil, nil, err
	}
	return b, vs, nil
}

func newTrialBalanceCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "trial-balance",
		Short: "Print the trial balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, vs, err := reportPeriod(cmd)
			if err != nil {
				return err
			}

			policy := posting.AutoCreateUnknown
			if strict {
				policy = posting.RejectUnknown
			}
			agg := posting.NewAggregator(posting.NewEngine(b.stock, b.log), policy, b.log)

			tb, err := agg.TrialBalance(vs, b.ledgers.Names())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "LEDGER\tDEBIT\tCREDIT")
			for _, row := range tb.Rows {
				fmt.Fprintf(w, "%s\t%s\t%s\n", row.Ledger, row.Debit.StringFixed(2), row.Credit.StringFixed(2))
			}
			fmt.Fprintf(w, "TOTAL\t%s\t%s\n", tb.TotalDebit.StringFixed(2), tb.TotalCredit.StringFixed(2))
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail on movements referencing unknown ledgers")

	return cmd
}

func newLedgerCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Print a single ledger's statement",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, vs, err := reportPeriod(cmd)
			if err != nil {
				return err
			}

			agg := posting.NewAggregator(posting.NewEngine(b.stock, b.log), posting.AutoCreateUnknown, b.log)
			rows := agg.LedgerStatement(vs, name)

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tVOUCHER\tTYPE\tPARTICULARS\tDEBIT\tCREDIT\tBALANCE")
			for _, r := range rows {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					r.Date.Format("2006-01-02"), r.VoucherNo, r.VoucherType, r.Particulars,
					r.Debit.StringFixed(2), r.Credit.StringFixed(2), r.Balance.StringFixed(2))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "ledger name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newDayBookCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "daybook",
		Short: "List every voucher chronologically",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, vs, err := reportPeriod(cmd)
			if err != nil {
				return err
			}

			rows := reports.DayBook(posting.NewEngine(b.stock, b.log), vs)

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tVOUCHER\tTYPE\tPARTICULARS\tAMOUNT")
			for _, r := range rows {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					r.Date.Format("2006-01-02"), r.VoucherNo, r.Type, r.Particulars, r.Amount.StringFixed(2))
			}
			return w.Flush()
		},
	}
}

func newStockCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stock",
		Short: "Summarize item movement across invoices",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, vs, err := reportPeriod(cmd)
			if err != nil {
				return err
			}

			rows := reports.StockSummary(vs, b.stock)

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ITEM\tUNIT\tINWARD\tOUTWARD\tCLOSING\tINWARD VALUE\tOUTWARD VALUE")
			for _, r := range rows {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					r.Item, r.Unit, r.Inward.String(), r.Outward.String(), r.Closing.String(),
					r.InwardValue.StringFixed(2), r.OutwardValue.StringFixed(2))
			}
			return w.Flush()
		},
	}
}

func newGSTCommand(use, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, vs, err := reportPeriod(cmd)
			if err != nil {
				return err
			}

			engine := posting.NewEngine(b.stock, b.log)
			var rows []reports.GSTRow
			if use == "gstr1" {
				rows = reports.GSTR1(engine, vs)
			} else {
				rows = reports.GSTR2(engine, vs)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PARTY\tVOUCHERS\tTAXABLE\tCGST\tSGST\tIGST\tTOTAL")
			for _, r := range rows {
				fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\t%s\n",
					r.Party, r.Vouchers, r.Taxable.StringFixed(2), r.CGST.StringFixed(2),
					r.SGST.StringFixed(2), r.IGST.StringFixed(2), r.Total.StringFixed(2))
			}
			return w.Flush()
		},
	}
}
