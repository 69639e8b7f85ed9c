package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-surveyflow/pkg/engine"
	"github.com/goliatone/go-surveyflow/pkg/runner/tui"
	"github.com/goliatone/go-surveyflow/pkg/surveydef"
)

func main() {
	definition := flag.String("definition", "survey.yaml", "survey definition document (JSON or YAML)")
	surveyID := flag.String("survey", "", "survey id to run (defaults to the only survey in the document)")
	output := flag.String("output", "", "output file for the response document (stdout if empty)")
	flag.Parse()

	store, err := surveydef.LoadFile(*definition)
	if err != nil {
		log.Fatalf("Failed to load definition: %v", err)
	}

	id := *surveyID
	if id == "" {
		ids := store.SurveyIDs()
		if len(ids) != 1 {
			log.Fatalf("Document defines %d surveys; pick one with -survey %v", len(ids), ids)
		}
		id = ids[0]
	}

	config, ok := store.Survey(id)
	if !ok {
		log.Fatalf("Unknown survey %q (available: %v)", id, store.SurveyIDs())
	}

	ctrl := engine.New(config, store.Catalogs(), engine.WithReporter(logReporter{}))
	response, err := tui.New().Run(context.Background(), ctrl)
	if err != nil {
		log.Fatalf("Session failed: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, response, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Response written to %s\n", *output)
	} else {
		fmt.Println(string(response))
	}
}

type logReporter struct{}

func (logReporter) Report(op string, err error) {
	log.Printf("surveyflow: %s: %v", op, err)
}
