package client

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	skilltreesv1alpha1 "github.com/KirkDiggler/rpg-skilltrees/gen/go/skilltrees/v1alpha1"
)

var (
	characterValues []string
	itemValues      []string
)

var createSaveCmd = &cobra.Command{
	Use:   "create-save",
	Short: "Create a save for a party",
	Long: `Create a save. Characters are given as id:name:class:level and items as
kind:id:amount, for example --character 1:Harold:2:5 --item weapon:4:1.`,
	RunE: runCreateSave,
}

var getSaveCmd = &cobra.Command{
	Use:   "get-save",
	Short: "Show a save and its characters",
	RunE:  runGetSave,
}

var deleteSaveCmd = &cobra.Command{
	Use:   "delete-save",
	Short: "Delete a save",
	RunE:  runDeleteSave,
}

func init() {
	createSaveCmd.Flags().StringArrayVar(&characterValues, "character", nil, "Character as id:name:class:level (repeatable)")
	createSaveCmd.Flags().StringArrayVar(&itemValues, "item", nil, "Item as kind:id:amount (repeatable)")
	_ = createSaveCmd.MarkFlagRequired("character") // nolint:errcheck // safe to ignore in init

	for _, cmd := range []*cobra.Command{getSaveCmd, deleteSaveCmd} {
		cmd.Flags().StringVar(&saveID, "save-id", "", "Save ID (required)")
		_ = cmd.MarkFlagRequired("save-id") // nolint:errcheck // safe to ignore in init
	}
}

func parseCharacter(value string) (*skilltreesv1alpha1.CharacterSeed, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 4 {
		return nil, fmt.Errorf("character %q must be id:name:class:level", value)
	}
	numbers := make([]int32, 0, 3)
	for _, raw := range []string{parts[0], parts[2], parts[3]} {
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("character %q: %w", value, err)
		}
		numbers = append(numbers, int32(n))
	}
	return &skilltreesv1alpha1.CharacterSeed{
		Id:      numbers[0],
		Name:    parts[1],
		ClassId: numbers[1],
		Level:   numbers[2],
	}, nil
}

func parseItem(value string) (*skilltreesv1alpha1.ItemStack, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 3 {
		return nil, fmt.Errorf("item %q must be kind:id:amount", value)
	}
	id, err := strconv.ParseInt(parts[1], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("item %q: %w", value, err)
	}
	amount, err := strconv.ParseInt(parts[2], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("item %q: %w", value, err)
	}
	return &skilltreesv1alpha1.ItemStack{Kind: parts[0], Id: int32(id), Amount: int32(amount)}, nil
}

func runCreateSave(_ *cobra.Command, _ []string) error {
	req := &skilltreesv1alpha1.CreateSaveRequest{}
	for _, value := range characterValues {
		seed, err := parseCharacter(value)
		if err != nil {
			return err
		}
		req.Characters = append(req.Characters, seed)
	}
	for _, value := range itemValues {
		item, err := parseItem(value)
		if err != nil {
			return err
		}
		req.Items = append(req.Items, item)
	}

	return call(func(ctx context.Context, client skilltreesv1alpha1.ProgressionServiceClient) error {
		resp, err := client.CreateSave(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to create save: %w", err)
		}

		fmt.Printf("✅ Save created: %s\n\n", resp.SaveId)
		for _, c := range resp.Characters {
			printCharacter(c)
		}
		return nil
	})
}

func runGetSave(_ *cobra.Command, _ []string) error {
	return call(func(ctx context.Context, client skilltreesv1alpha1.ProgressionServiceClient) error {
		resp, err := client.GetSave(ctx, &skilltreesv1alpha1.GetSaveRequest{SaveId: saveID})
		if err != nil {
			return fmt.Errorf("failed to get save: %w", err)
		}

		fmt.Printf("📋 Save %s (version %d, updated %s)\n\n",
			resp.SaveId, resp.Version, time.Unix(resp.UpdatedAt, 0).Format(time.RFC3339))
		for _, c := range resp.Characters {
			printCharacter(c)
		}
		if len(resp.Variables) > 0 {
			fmt.Printf("\nVariables: %v\n", resp.Variables)
		}
		return nil
	})
}

func runDeleteSave(_ *cobra.Command, _ []string) error {
	return call(func(ctx context.Context, client skilltreesv1alpha1.ProgressionServiceClient) error {
		if _, err := client.DeleteSave(ctx, &skilltreesv1alpha1.DeleteSaveRequest{SaveId: saveID}); err != nil {
			return fmt.Errorf("failed to delete save: %w", err)
		}
		fmt.Printf("🗑️  Save %s deleted\n", saveID)
		return nil
	})
}
