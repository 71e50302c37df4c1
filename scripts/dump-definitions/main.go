package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/goliatone/go-mapgen/pkg/mapdata"
)

// Serializes the normalized map definitions so YAML edits can be diffed
// against what the loader actually produces.
func main() {
	var (
		inputPath  = flag.String("input", "pkg/mapdata/definitions", "map definitions directory")
		outputPath = flag.String("output", "", "output path for the JSON snapshot (stdout when empty)")
	)
	flag.Parse()

	store, err := mapdata.LoadFS(os.DirFS(*inputPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load definitions: %v\n", err)
		os.Exit(1)
	}

	snapshot := make(map[string]mapdata.Definition)
	for _, id := range store.IDs() {
		def, _ := store.Definition(id)
		snapshot[id] = def
	}

	payload, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to serialize definitions: %v\n", err)
		os.Exit(1)
	}
	payload = append(payload, '\n')

	if *outputPath == "" {
		if _, err := os.Stdout.Write(payload); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write snapshot: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := os.WriteFile(*outputPath, payload, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write snapshot: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ Wrote definition snapshot to %s\n", *outputPath)
}
