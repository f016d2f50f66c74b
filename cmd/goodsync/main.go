// Package main provides the entry point for the goodsync CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "goodsync",
	Short: "Export HoyoLab calculator inventory to a GOOD file",
	Long:  "goodsync reads a HoyoLab session from the environment, queries the enhancement-progression calculator for the account's owned material counts, and writes them as a GOOD (Genshin Open Object Description) JSON document for inventory trackers.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
