package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	skilltreesv1alpha1 "github.com/KirkDiggler/rpg-skilltrees/gen/go/skilltrees/v1alpha1"
)

var (
	includeHidden bool
	nodeKey       string
	levels        int32
	resetScope    string
	classID       int32
	pool          string
	points        int32
	preserve      bool
)

var listTreesCmd = &cobra.Command{
	Use:   "list-trees",
	Short: "Render a character's skill trees",
	RunE:  runListTrees,
}

var learnCmd = &cobra.Command{
	Use:   "learn",
	Short: "Learn the next level of a node",
	RunE:  runLearn,
}

var forceLearnCmd = &cobra.Command{
	Use:   "force-learn",
	Short: "Raise a node without requirements",
	RunE:  runForceLearn,
}

var unlockTreeCmd = &cobra.Command{
	Use:   "unlock-tree",
	Short: "Raise every node of a tree to its maximum",
	RunE:  runUnlockTree,
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset trees and refund their points",
	Long:  `Reset trees. --scope is one of tree, class, own or all.`,
	RunE:  runReset,
}

var grantPointsCmd = &cobra.Command{
	Use:   "grant-points",
	Short: "Grant skill points to a pool",
	RunE:  runGrantPoints,
}

var attachTreeCmd = &cobra.Command{
	Use:   "attach-tree",
	Short: "Attach a standalone or suspended tree",
	RunE:  runAttachTree,
}

var detachTreeCmd = &cobra.Command{
	Use:   "detach-tree",
	Short: "Detach a tree from a character",
	RunE:  runDetachTree,
}

func init() {
	addCharacterFlags(listTreesCmd, false)
	listTreesCmd.Flags().BoolVar(&includeHidden, "hidden", false, "Include trees the scene would hide")

	addCharacterFlags(learnCmd, true)
	learnCmd.Flags().StringVar(&nodeKey, "node", "", "Node key (required)")
	_ = learnCmd.MarkFlagRequired("node") // nolint:errcheck // safe to ignore in init

	addCharacterFlags(forceLearnCmd, true)
	forceLearnCmd.Flags().StringVar(&nodeKey, "node", "", "Node key (required)")
	forceLearnCmd.Flags().Int32Var(&levels, "levels", 1, "Levels to gain")
	_ = forceLearnCmd.MarkFlagRequired("node") // nolint:errcheck // safe to ignore in init

	addCharacterFlags(unlockTreeCmd, true)

	addCharacterFlags(resetCmd, false)
	resetCmd.Flags().StringVar(&resetScope, "scope", "tree", "Reset scope")
	resetCmd.Flags().StringVar(&treeKey, "tree", "", "Tree key for the tree scope")
	resetCmd.Flags().Int32Var(&classID, "class-id", 0, "Class for the class scope, 0 for the current class")

	addCharacterFlags(grantPointsCmd, false)
	grantPointsCmd.Flags().StringVar(&pool, "pool", "0", "Pool key: 0, a class id or a tree key")
	grantPointsCmd.Flags().Int32Var(&points, "points", 1, "Points to grant, negative to take")

	addCharacterFlags(attachTreeCmd, true)

	addCharacterFlags(detachTreeCmd, true)
	detachTreeCmd.Flags().BoolVar(&preserve, "preserve", false, "Keep progress for a later attach")
}

func runListTrees(_ *cobra.Command, _ []string) error {
	return call(func(ctx context.Context, client skilltreesv1alpha1.ProgressionServiceClient) error {
		resp, err := client.ListTrees(ctx, &skilltreesv1alpha1.ListTreesRequest{
			SaveId:        saveID,
			CharacterId:   characterID,
			IncludeHidden: includeHidden,
		})
		if err != nil {
			return fmt.Errorf("failed to list trees: %w", err)
		}

		printCharacter(resp.Character)
		for _, tree := range resp.Trees {
			printTree(tree)
		}
		return nil
	})
}

func printTree(tree *skilltreesv1alpha1.Tree) {
	hidden := ""
	if !tree.Visible {
		hidden = " (hidden)"
	}
	fmt.Printf("\n🌳 %s [%s, %s]%s spent %d, balance %d\n",
		tree.Name, tree.Key, tree.Scope, hidden, tree.SpentPoints, tree.Balance)

	if tree.Columns <= 0 {
		return
	}
	for row := int32(0); row < tree.Rows; row++ {
		cells := make([]string, 0, tree.Columns)
		for col := int32(0); col < tree.Columns; col++ {
			idx := row*tree.Columns + col
			if int(idx) >= len(tree.Slots) {
				break
			}
			cells = append(cells, cell(tree.Slots[idx]))
		}
		fmt.Printf("  %s\n", strings.Join(cells, " "))
	}

	for _, slot := range tree.Slots {
		if slot.Node != nil {
			fmt.Printf("  ")
			printNode(slot.Node)
		}
	}
}

func cell(slot *skilltreesv1alpha1.Slot) string {
	switch {
	case slot == nil || slot.Kind == "":
		return "  .  "
	case slot.Node != nil:
		return fmt.Sprintf("[%3d]", slot.Node.Level)
	case slot.Enabled:
		return "  +  "
	default:
		return "  -  "
	}
}

func runLearn(_ *cobra.Command, _ []string) error {
	return call(func(ctx context.Context, client skilltreesv1alpha1.ProgressionServiceClient) error {
		resp, err := client.LearnSkill(ctx, &skilltreesv1alpha1.LearnSkillRequest{
			SaveId:      saveID,
			CharacterId: characterID,
			TreeKey:     treeKey,
			NodeKey:     nodeKey,
		})
		if err != nil {
			return fmt.Errorf("failed to learn %s: %w", nodeKey, err)
		}

		fmt.Printf("✅ Learned ")
		printNode(resp.Node)
		printCharacter(resp.Character)
		return nil
	})
}

func runForceLearn(_ *cobra.Command, _ []string) error {
	return call(func(ctx context.Context, client skilltreesv1alpha1.ProgressionServiceClient) error {
		resp, err := client.ForceLearn(ctx, &skilltreesv1alpha1.ForceLearnRequest{
			SaveId:      saveID,
			CharacterId: characterID,
			TreeKey:     treeKey,
			NodeKey:     nodeKey,
			Levels:      levels,
		})
		if err != nil {
			return fmt.Errorf("failed to force %s: %w", nodeKey, err)
		}

		fmt.Printf("✅ Gained %d level(s): ", resp.LevelsGained)
		printNode(resp.Node)
		return nil
	})
}

func runUnlockTree(_ *cobra.Command, _ []string) error {
	return call(func(ctx context.Context, client skilltreesv1alpha1.ProgressionServiceClient) error {
		resp, err := client.UnlockTree(ctx, &skilltreesv1alpha1.UnlockTreeRequest{
			SaveId:      saveID,
			CharacterId: characterID,
			TreeKey:     treeKey,
		})
		if err != nil {
			return fmt.Errorf("failed to unlock %s: %w", treeKey, err)
		}

		fmt.Printf("✅ %s unlocked, %d level(s) gained\n", treeKey, resp.LevelsGained)
		return nil
	})
}

func runReset(_ *cobra.Command, _ []string) error {
	return call(func(ctx context.Context, client skilltreesv1alpha1.ProgressionServiceClient) error {
		resp, err := client.ResetTrees(ctx, &skilltreesv1alpha1.ResetTreesRequest{
			SaveId:      saveID,
			CharacterId: characterID,
			Scope:       resetScope,
			TreeKey:     treeKey,
			ClassId:     classID,
		})
		if err != nil {
			return fmt.Errorf("failed to reset: %w", err)
		}

		fmt.Printf("♻️  Refunded %d point(s)\n", resp.Refunded)
		printBalances(resp.Balances)
		return nil
	})
}

func runGrantPoints(_ *cobra.Command, _ []string) error {
	return call(func(ctx context.Context, client skilltreesv1alpha1.ProgressionServiceClient) error {
		resp, err := client.GrantPoints(ctx, &skilltreesv1alpha1.GrantPointsRequest{
			SaveId:      saveID,
			CharacterId: characterID,
			Pool:        pool,
			Points:      points,
		})
		if err != nil {
			return fmt.Errorf("failed to grant points: %w", err)
		}

		fmt.Printf("✅ Granted %d point(s) to pool %s\n", points, pool)
		printBalances(resp.Balances)
		return nil
	})
}

func runAttachTree(_ *cobra.Command, _ []string) error {
	return call(func(ctx context.Context, client skilltreesv1alpha1.ProgressionServiceClient) error {
		resp, err := client.AttachTree(ctx, &skilltreesv1alpha1.AttachTreeRequest{
			SaveId:      saveID,
			CharacterId: characterID,
			TreeKey:     treeKey,
		})
		if err != nil {
			return fmt.Errorf("failed to attach %s: %w", treeKey, err)
		}

		fmt.Printf("✅ Attached")
		printTree(resp.Tree)
		return nil
	})
}

func runDetachTree(_ *cobra.Command, _ []string) error {
	return call(func(ctx context.Context, client skilltreesv1alpha1.ProgressionServiceClient) error {
		resp, err := client.DetachTree(ctx, &skilltreesv1alpha1.DetachTreeRequest{
			SaveId:      saveID,
			CharacterId: characterID,
			TreeKey:     treeKey,
			Preserve:    preserve,
		})
		if err != nil {
			return fmt.Errorf("failed to detach %s: %w", treeKey, err)
		}

		fmt.Printf("✅ Detached %s\n", treeKey)
		printCharacter(resp.Character)
		return nil
	})
}
