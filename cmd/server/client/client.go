// Package client provides test commands for the skill tree gRPC service
package client

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	skilltreesv1alpha1 "github.com/KirkDiggler/rpg-skilltrees/gen/go/skilltrees/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration

	// Character flags shared by most commands
	saveID      string
	characterID int32
	treeKey     string
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the skill tree service",
	Long:  `Client commands allow you to exercise the skill tree service by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Save commands
	ClientCmd.AddCommand(createSaveCmd)
	ClientCmd.AddCommand(getSaveCmd)
	ClientCmd.AddCommand(deleteSaveCmd)

	// Scene commands
	ClientCmd.AddCommand(listTreesCmd)
	ClientCmd.AddCommand(learnCmd)

	// Script commands
	ClientCmd.AddCommand(forceLearnCmd)
	ClientCmd.AddCommand(unlockTreeCmd)
	ClientCmd.AddCommand(resetCmd)
	ClientCmd.AddCommand(grantPointsCmd)
	ClientCmd.AddCommand(attachTreeCmd)
	ClientCmd.AddCommand(detachTreeCmd)

	// Character hooks
	ClientCmd.AddCommand(changeClassCmd)
	ClientCmd.AddCommand(levelUpCmd)
}

// addCharacterFlags registers the save and character flags on cmd
func addCharacterFlags(cmd *cobra.Command, withTree bool) {
	cmd.Flags().StringVar(&saveID, "save-id", "", "Save ID (required)")
	cmd.Flags().Int32Var(&characterID, "character-id", 0, "Character ID (required)")
	_ = cmd.MarkFlagRequired("save-id")      // nolint:errcheck // safe to ignore in init
	_ = cmd.MarkFlagRequired("character-id") // nolint:errcheck // safe to ignore in init
	if withTree {
		cmd.Flags().StringVar(&treeKey, "tree", "", "Tree key (required)")
		_ = cmd.MarkFlagRequired("tree") // nolint:errcheck // safe to ignore in init
	}
}

// createProgressionClient creates a progression service client
func createProgressionClient() (skilltreesv1alpha1.ProgressionServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return skilltreesv1alpha1.NewProgressionServiceClient(conn), cleanup, nil
}

// call runs fn with a connected client and the request timeout
func call(fn func(ctx context.Context, client skilltreesv1alpha1.ProgressionServiceClient) error) error {
	client, cleanup, err := createProgressionClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return fn(ctx, client)
}

func printCharacter(c *skilltreesv1alpha1.Character) {
	if c == nil {
		return
	}
	fmt.Printf("Character %d %q (class %d, level %d)\n", c.Id, c.Name, c.ClassId, c.Level)
	if len(c.Trees) > 0 {
		fmt.Printf("  Trees: %s\n", strings.Join(c.Trees, ", "))
	}
	if len(c.Suspended) > 0 {
		fmt.Printf("  Suspended: %s\n", strings.Join(c.Suspended, ", "))
	}
	printBalances(c.Balances)
	if len(c.Abilities) > 0 {
		fmt.Printf("  Abilities: %v\n", c.Abilities)
	}
}

func printBalances(balances map[string]int32) {
	if len(balances) == 0 {
		return
	}
	pools := make([]string, 0, len(balances))
	for pool := range balances {
		pools = append(pools, pool)
	}
	sort.Strings(pools)

	fmt.Printf("  Points:\n")
	for _, pool := range pools {
		fmt.Printf("    - %s: %d\n", pool, balances[pool])
	}
}

func printNode(n *skilltreesv1alpha1.Node) {
	if n == nil {
		return
	}
	fmt.Printf("%s (%s) level %d/%d [%s]\n", n.Name, n.Key, n.Level, n.MaxLevel, n.State)
	for _, req := range n.Requirements {
		mark := "✗"
		if req.Met {
			mark = "✓"
		}
		fmt.Printf("  %s %s\n", mark, req.Description)
	}
}
