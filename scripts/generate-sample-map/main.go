package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	mapgen "github.com/goliatone/go-mapgen"
)

func main() {
	ctx := context.Background()

	const (
		mapID        = "negocios"
		rendererName = "leaflet"
		outputPath   = "examples/multi-renderer/out/negocios.html"
	)

	html, err := mapgen.GenerateHTML(ctx, mapID, rendererName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate map: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create output directory: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(outputPath, html, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write output: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ Generated sample map HTML (%d bytes) → %s\n", len(html), outputPath)
}
