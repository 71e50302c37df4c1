package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/goliatone/go-mapgen/pkg/orchestrator"
	"github.com/goliatone/go-mapgen/pkg/render"
	"github.com/goliatone/go-mapgen/pkg/renderers/leaflet"
	"github.com/goliatone/go-mapgen/pkg/renderers/maplibre"
)

func main() {
	input := flag.String("input", "", "map definitions directory (embedded samples if empty)")
	mapID := flag.String("map", "negocios", "map id to render")
	rendererName := flag.String("renderer", "leaflet", "renderer to use (leaflet, maplibre)")
	locale := flag.String("locale", "", "locale for popup strings")
	themeName := flag.String("theme", "", "theme name")
	themeVariant := flag.String("variant", "", "theme variant")
	assetPrefix := flag.String("asset-prefix", "", "prefix for emitted module asset URLs")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	ctx := context.Background()

	registry := render.NewRegistry()
	leafletRenderer, err := leaflet.New()
	if err != nil {
		log.Fatalf("configure leaflet renderer: %v", err)
	}
	registry.MustRegister(leafletRenderer)
	maplibreRenderer, err := maplibre.New()
	if err != nil {
		log.Fatalf("configure maplibre renderer: %v", err)
	}
	registry.MustRegister(maplibreRenderer)

	options := []orchestrator.Option{orchestrator.WithRegistry(registry)}
	if path := strings.TrimSpace(*input); path != "" {
		options = append(options, orchestrator.WithDefinitionsFS(os.DirFS(path)))
	}

	gen := orchestrator.New(options...)

	result, err := gen.Generate(ctx, orchestrator.Request{
		MapID:        *mapID,
		Renderer:     *rendererName,
		Locale:       *locale,
		ThemeName:    *themeName,
		ThemeVariant: *themeVariant,
		RenderOptions: render.RenderOptions{
			AssetURLPrefix: *assetPrefix,
		},
	})
	if err != nil {
		log.Fatalf("Failed to generate map: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, result.HTML, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Map written to %s\n", *output)
	} else {
		fmt.Println(string(result.HTML))
	}
}
