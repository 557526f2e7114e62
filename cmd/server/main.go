// Package main is the entry point for the skill tree gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-skilltrees/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "skilltrees",
	Short: "Skill tree progression gRPC server",
	Long:  `skilltrees serves skill tree progression for saved parties over gRPC.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(repairCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
