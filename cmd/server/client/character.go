package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	skilltreesv1alpha1 "github.com/KirkDiggler/rpg-skilltrees/gen/go/skilltrees/v1alpha1"
)

var changeClassCmd = &cobra.Command{
	Use:   "change-class",
	Short: "Move a character to another class",
	RunE:  runChangeClass,
}

var levelUpCmd = &cobra.Command{
	Use:   "level-up",
	Short: "Raise a character's level",
	RunE:  runLevelUp,
}

func init() {
	addCharacterFlags(changeClassCmd, false)
	changeClassCmd.Flags().Int32Var(&classID, "class-id", 0, "New class ID (required)")
	_ = changeClassCmd.MarkFlagRequired("class-id") // nolint:errcheck // safe to ignore in init

	addCharacterFlags(levelUpCmd, false)
	levelUpCmd.Flags().Int32Var(&levels, "levels", 1, "Levels to gain")
}

func runChangeClass(_ *cobra.Command, _ []string) error {
	return call(func(ctx context.Context, client skilltreesv1alpha1.ProgressionServiceClient) error {
		resp, err := client.ChangeClass(ctx, &skilltreesv1alpha1.ChangeClassRequest{
			SaveId:      saveID,
			CharacterId: characterID,
			ClassId:     classID,
		})
		if err != nil {
			return fmt.Errorf("failed to change class: %w", err)
		}

		fmt.Printf("✅ Class changed from %d to %d\n", resp.PreviousClassId, classID)
		printCharacter(resp.Character)
		return nil
	})
}

func runLevelUp(_ *cobra.Command, _ []string) error {
	return call(func(ctx context.Context, client skilltreesv1alpha1.ProgressionServiceClient) error {
		resp, err := client.LevelUp(ctx, &skilltreesv1alpha1.LevelUpRequest{
			SaveId:      saveID,
			CharacterId: characterID,
			Levels:      levels,
		})
		if err != nil {
			return fmt.Errorf("failed to level up: %w", err)
		}

		fmt.Printf("⬆️  Level up, %d point(s) granted\n", resp.PointsGranted)
		printCharacter(resp.Character)
		return nil
	})
}
