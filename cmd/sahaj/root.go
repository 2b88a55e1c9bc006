package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sahaj",
	Short: "Sahaj is a scripted ITR filing assistant",
	Long: `Sahaj guides Indian taxpayers through Income Tax Return filing with a
deterministic, keyword-driven dialogue: form selection, tax regime choice,
personal details, income entry and e-verification.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "sahaj.yaml", "Path to the configuration file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}
