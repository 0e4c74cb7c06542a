package cmd

import (
	"github.com/jsphweid/seedtrack/constants"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "seedtrack",
	Short: "Alternative rock MIDI seed track generator",
	Long:  `Renders the hand-authored alternative rock composition to a standard MIDI file.`,
	Run: func(cmd *cobra.Command, args []string) {
		// running with no arguments performs the full generation
		generate(constants.GetOutputPath())
	},
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
