package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/sahaj/internal/presentation/graph"
	"github.com/aretw0/sahaj/pkg/engine"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the dialogue graph visualization",
	Long:  `Outputs a Mermaid state diagram of the filing dialogue.`,
	Run: func(cmd *cobra.Command, args []string) {
		exporter := graph.NewExporter(engine.New().Table())
		fmt.Print(exporter.Mermaid())
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
