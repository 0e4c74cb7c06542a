package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jsphweid/seedtrack/arrange"
	"github.com/jsphweid/seedtrack/midi"
	"github.com/jsphweid/seedtrack/model"
	"github.com/jsphweid/seedtrack/sample"
	"github.com/jsphweid/seedtrack/song"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2/smf"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serves",
	Long:  `Serves the rendered track for preview`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeSMF(w http.ResponseWriter, s *smf.SMF) {
	buf := new(bytes.Buffer)
	if _, err := s.WriteTo(buf); err != nil {
		fmt.Println("Could not render track: " + err.Error())
		w.WriteHeader(500)
		json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
		return
	}

	w.Header().Set("Content-Type", "audio/midi")
	w.Write(buf.Bytes())
}

func handleTrack(w http.ResponseWriter, r *http.Request) {
	writeSMF(w, midi.BuildSMF(arrange.Build()))
}

func handlePreview(w http.ResponseWriter, r *http.Request) {
	s := midi.BuildSMF(arrange.Build())
	writeSMF(w, sample.Create(s, uint64(arrange.LeadStartTicks())))
}

func handleSummary(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(arrange.Summarize(arrange.Build()))
}

func handleSections(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(model.SectionsResponse{Sections: song.Names()})
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/track.mid", handleTrack).Methods("GET")
	router.HandleFunc("/preview.mid", handlePreview).Methods("GET")
	router.HandleFunc("/summary", handleSummary).Methods("GET")
	router.HandleFunc("/sections", handleSections).Methods("GET")
	log.Fatal(http.ListenAndServe(":8080", cors.Default().Handler(router)))
}
