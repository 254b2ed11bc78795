package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "parrot",
	Short: "Utilities for the parrot relevance bot",
	Long: `parrot - utilities for the parrot relevance bot

Score title pairs offline and inspect the cross-reference store.

Run 'parrotd' to start the bot daemon.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("parrot {{.Version}}\n")
}
