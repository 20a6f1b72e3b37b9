package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bahikhata-dev/bahikhata/internal/config"
	"github.com/bahikhata-dev/bahikhata/internal/gitops"
	"github.com/bahikhata-dev/bahikhata/internal/ledgers"
	"github.com/bahikhata-dev/bahikhata/internal/stock"
)

func newInitCommand() *cobra.Command {
	var name string
	var gstin string
	var stateCode string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new books directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, name, gstin, stateCode)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&gstin, "gstin", "", "GST identification number")
	cmd.Flags().StringVar(&stateCode, "state-code", "", "home GST state code, e.g. 27 for Maharashtra")

	return cmd
}

func runInit(dir, name, gstin, stateCode string) error {
	// Create directory structure.
	for _, d := range []string{"masters", "logs"} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	// Write bahikhata.yaml.
	cfg := config.Default(name, stateCode)
	cfg.Business.GSTIN = gstin
	if err := config.Save(filepath.Join(dir, "bahikhata.yaml"), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write the default ledger masters.
	ledgerSvc := ledgers.NewService(ledgers.DefaultLedgers())
	if err := ledgerSvc.Save(dir); err != nil {
		return fmt.Errorf("writing ledger masters: %w", err)
	}

	// Write empty stock masters.
	if err := stock.NewService(nil).Save(dir); err != nil {
		return fmt.Errorf("writing stock masters: %w", err)
	}

	// Write .gitignore.
	gitignore := "exports/\n*.tmp\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	// Initialize git and create initial commit.
	if err := gitops.Init(dir); err != nil {
		return fmt.Errorf("git init: %w", err)
	}

	hash, err := gitops.CommitBooks(dir, "init: Initialize "+name, cfg.Git.AuthorName, cfg.Git.AuthorEmail)
	if err != nil {
		return fmt.Errorf("initial commit: %w", err)
	}

	fmt.Printf("Initialized books for %s at %s (%s)\n", name, dir, hash)
	return nil
}
