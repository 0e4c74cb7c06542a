package cmd

import (
	"fmt"

	"github.com/jsphweid/seedtrack/arrange"
	"github.com/jsphweid/seedtrack/constants"
	"github.com/jsphweid/seedtrack/midi"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate [outfile]",
	Short: "Generates the track",
	Long:  `Generates the track`,
	Run: func(cmd *cobra.Command, args []string) {
		out := constants.GetOutputPath()
		if len(args) == 1 {
			out = args[0]
		}
		generate(out)
	},
}

func generate(out string) {
	fmt.Println("Generating Alternative Rock MIDI track...")

	a := arrange.Build()
	s := midi.BuildSMF(a)
	if err := midi.WriteMidiFile(out, s); err != nil {
		panic("Could not write midi file because: " + err.Error())
	}

	summary := arrange.Summarize(a)
	fmt.Printf("Tempo: %v BPM\n", summary.Tempo)
	fmt.Printf("Key: %v\n", summary.Key)
	fmt.Printf("Total sections: %v\n", summary.NumSections)
	fmt.Printf("Render id: %v\n", summary.RenderId)
	fmt.Println("Track assignments:")
	fmt.Println("- Channel 0: Rhythm Guitar/Chords (Steel Guitar)")
	fmt.Println("- Channel 1: Lead Vocals (Voice)")
	fmt.Println("- Channel 2: Bass Guitar (Electric Bass)")
	fmt.Println("- Channel 3: Lead Guitar (Electric Guitar)")
	fmt.Printf("MIDI file saved as: %v\n", out)
}
