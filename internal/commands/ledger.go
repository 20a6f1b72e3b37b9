package commands

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/bahikhata-dev/bahikhata/internal/auditlog"
	"github.com/bahikhata-dev/bahikhata/internal/gitops"
	"github.com/bahikhata-dev/bahikhata/internal/model"
)

func newLedgerMastersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Manage the ledger masters",
	}

	cmd.PersistentFlags().String("dir", "", "books directory (defaults to BAHIKHATA_DIR or .)")

	cmd.AddCommand(newLedgerAddCommand())
	cmd.AddCommand(newLedgerListCommand())

	return cmd
}

func newLedgerAddCommand() *cobra.Command {
	var name string
	var under string
	var category string
	var group string
	var subGroups []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a ledger, on a taxonomy path or under another ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBooks(flagString(cmd, "dir"))
			if err != nil {
				return err
			}

			if len(subGroups) > 3 {
				return fmt.Errorf("at most 3 sub-groups are supported")
			}

			acct := model.LedgerAccount{
				Name:     name,
				Category: category,
				Group:    group,
			}
			for i, sg := range subGroups {
				switch i {
				case 0:
					acct.SubGroup1 = sg
				case 1:
					acct.SubGroup2 = sg
				case 2:
					acct.SubGroup3 = sg
				}
			}

			if under != "" {
				parent, ok := b.ledgers.ByName(under)
				if !ok {
					return fmt.Errorf("parent ledger %q not found", under)
				}
				acct.ParentLedgerID = parent.ID
			}

			added, err := b.ledgers.Add(acct)
			if err != nil {
				return err
			}
			if err := b.ledgers.Save(b.dir); err != nil {
				return err
			}

			hash := ""
			if b.cfg.Git.AutoCommit && gitops.IsRepo(b.dir) {
				hash, err = gitops.CommitBooks(b.dir, "ledger: Add "+added.Name, b.cfg.Git.AuthorName, b.cfg.Git.AuthorEmail)
				if err != nil {
					return fmt.Errorf("committing books: %w", err)
				}
			}

			entry := auditlog.Entry{
				Timestamp:  time.Now().UTC(),
				User:       os.Getenv("USER"),
				Action:     "ledger.add",
				Details:    added.Name,
				CommitHash: hash,
			}
			if err := auditlog.Append(b.dir, []auditlog.Entry{entry}); err != nil {
				return fmt.Errorf("writing audit log: %w", err)
			}

			fmt.Printf("Created ledger %s (%s)\n", added.Name, added.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "ledger name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&under, "under", "", "parent ledger name, for nested custom ledgers")
	cmd.Flags().StringVar(&category, "category", "", "taxonomy category, e.g. Assets")
	cmd.Flags().StringVar(&group, "group", "", "taxonomy group, e.g. Current Assets")
	cmd.Flags().StringArrayVar(&subGroups, "sub-group", nil, "taxonomy sub-group, repeatable up to 3 levels")

	return cmd
}

func newLedgerListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the ledger masters",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBooks(flagString(cmd, "dir"))
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCATEGORY\tGROUP")
			for _, a := range b.ledgers.All() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", a.Name, a.Category, a.Group)
			}
			return w.Flush()
		},
	}
}
