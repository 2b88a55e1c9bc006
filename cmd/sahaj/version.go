package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/sahaj"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of sahaj",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sahaj version %s\n", strings.TrimSpace(sahaj.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
