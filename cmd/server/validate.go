package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-skilltrees/internal/catalog"
)

var validateCmd = &cobra.Command{
	Use:   "validate [catalog]",
	Short: "Validate a skill tree catalog",
	Long: `Load a catalog file the way the server does and report its trees.
Every definition error is listed with the field it belongs to.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := "configs/skilltrees.yaml"
	if len(args) == 1 {
		path = args[0]
	}

	c, err := catalog.Load(path)
	if err != nil {
		return fmt.Errorf("catalog %s is invalid: %w", path, err)
	}

	out := cmd.OutOrStdout()
	settings := c.Settings()
	fmt.Fprintf(out, "Catalog %s\n", path)
	fmt.Fprintf(out, "  pool policy: %s, %d point(s) per level, %d columns\n",
		settings.Policy, settings.PointsPerLevel, settings.Columns)

	for _, key := range c.TreeKeys() {
		tree, err := c.Instantiate(key)
		if err != nil {
			return err
		}
		standalone := ""
		if c.IsStandalone(key) {
			standalone = " (standalone)"
		}
		fmt.Fprintf(out, "  - %s %q: %d rows, %d nodes%s\n",
			key, tree.Name(), tree.Rows(), len(tree.Nodes()), standalone)
	}
	return nil
}
