package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bahikhata-dev/bahikhata/internal/chart"
)

func newChartCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Print the chart of accounts tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBooks(flagString(cmd, "dir"))
			if err != nil {
				return err
			}

			tree := chart.Build(chart.DefaultTaxonomy(), b.ledgers.All(), b.log)
			for _, root := range tree.Roots {
				printNode(tree, root)
			}
			return nil
		},
	}

	cmd.Flags().String("dir", "", "books directory (defaults to BAHIKHATA_DIR or .)")

	return cmd
}

func printNode(t *chart.Tree, i int) {
	node := t.Nodes[i]
	marker := ""
	if node.IsCustom {
		marker = " *"
	}
	fmt.Printf("%s%s%s\n", strings.Repeat("  ", node.Level), node.Name, marker)
	for _, child := range node.Children {
		printNode(t, child)
	}
}
