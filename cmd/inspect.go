package cmd

import (
	"fmt"

	"github.com/jsphweid/seedtrack/midi"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Inspects a midi file",
	Long:  `Inspects a midi file`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		inspect(args[0])
	},
}

func inspect(path string) {
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		panic("Could not inspect because: " + err.Error())
	}

	fmt.Printf("timeFormat: %v\n", s.TimeFormat)
	for i, track := range s.Tracks {
		fmt.Printf("track %v: %v events\n", i, len(track))
		var absTicks uint64
		for _, event := range track {
			absTicks += uint64(event.Delta)
			fmt.Printf("  @%v +%v %v\n", absTicks, event.Delta, event.Message)
		}
	}
}
