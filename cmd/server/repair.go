package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-skilltrees/internal/errors"
	"github.com/KirkDiggler/rpg-skilltrees/internal/logger"
	"github.com/KirkDiggler/rpg-skilltrees/internal/orchestrators/progression"
	"github.com/KirkDiggler/rpg-skilltrees/internal/repositories/save"
)

var assumeYes bool

var repairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Find and delete saves that no longer load",
	Long: `Scan every stored save and load it against the current catalog. Saves whose
records or profiles cannot be decoded are listed and, after confirmation, deleted.`,
	RunE: runRepair,
}

func init() {
	addBackendFlags(repairCmd)
	repairCmd.Flags().BoolVar(&assumeYes, "yes", false, "Delete without asking")
}

type brokenSave struct {
	ID     string
	Reason string
}

// findBrokenSaves loads every listed save and reports the ones failing with
// data loss. checked counts the saves that were still present.
func findBrokenSaves(
	ctx context.Context,
	saves save.Repository,
	svc progression.Service,
) (broken []brokenSave, checked int, err error) {
	list, err := saves.List(ctx, save.ListInput{})
	if err != nil {
		return nil, 0, err
	}

	for _, id := range list.IDs {
		_, err := svc.GetSave(ctx, &progression.GetSaveInput{SaveID: id})
		switch {
		case err == nil:
			checked++
		case errors.IsNotFound(err):
			// expired between list and load
		case errors.IsDataLoss(err):
			checked++
			broken = append(broken, brokenSave{ID: id, Reason: err.Error()})
		default:
			return nil, checked, err
		}
	}
	return broken, checked, nil
}

func deleteBrokenSaves(ctx context.Context, svc progression.Service, broken []brokenSave, out io.Writer) {
	for _, b := range broken {
		if _, err := svc.DeleteSave(ctx, &progression.DeleteSaveInput{SaveID: b.ID}); err != nil {
			fmt.Fprintf(out, "Failed to delete %s: %v\n", b.ID, err)
			continue
		}
		fmt.Fprintf(out, "Deleted %s\n", b.ID)
	}
}

func runRepair(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := logger.Setup(cfg, os.Stderr)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	deps, err := newApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer deps.Close()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Scanning saves in %s against %s...\n", cfg.RedisAddr, cfg.CatalogPath)

	broken, checked, err := findBrokenSaves(ctx, deps.saves, deps.progression)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	fmt.Fprintf(out, "\nChecked %d saves, found %d broken\n", checked, len(broken))
	if len(broken) == 0 {
		fmt.Fprintln(out, "No broken saves found!")
		return nil
	}

	fmt.Fprintln(out, "\nBroken saves:")
	for _, b := range broken {
		fmt.Fprintf(out, "  - %s: %s\n", b.ID, b.Reason)
	}

	if !assumeYes && !confirm(cmd.InOrStdin(), out) {
		fmt.Fprintln(out, "Aborted - no changes made")
		return nil
	}

	deleteBrokenSaves(ctx, deps.progression, broken, out)
	fmt.Fprintln(out, "\nCleanup complete!")
	return nil
}

func confirm(in io.Reader, out io.Writer) bool {
	fmt.Fprint(out, "\nDo you want to DELETE these saves? (yes/no): ")
	answer, _ := bufio.NewReader(in).ReadString('\n') // nolint:errcheck // EOF means no
	return strings.TrimSpace(answer) == "yes"
}
