// Package cmd implements the command-line interface for lifo.
package cmd

import (
	"github.com/lifo-cli/lifo/tui"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().IntP("width", "w", 0, "Element byte width for the playground stacks")
}

// playCmd launches the interactive stack playground.
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Launch the interactive stack playground",
	Long: `Launch a terminal playground with two stacks sharing one instrumented allocator.
Push copies, emplace owned buffers, pop, swap, and destroy while watching size and slot accounting live.`,
	Run: func(cmd *cobra.Command, args []string) {
		options := tui.Options{
			Width: lo.Must(cmd.Flags().GetInt("width")),
		}
		handleErr(tui.Run(&options))
	},
}
