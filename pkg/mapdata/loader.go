// Package mapdata loads declarative map definitions from YAML or JSON
// documents: marker sets, route polylines, and view settings maintained as
// content files next to the site rather than in code.
package mapdata

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-mapgen/pkg/geo"
	"github.com/goliatone/go-mapgen/pkg/mapwidget"
)

// LoadFS walks the provided filesystem and parses JSON/YAML map definition
// files. When fsys is nil or no definition files are present, the returned
// store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{definitions: make(map[string]Definition)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return nil
		}
		if !isDefinitionFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("mapdata: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}
		if doc.Version > 1 {
			return fmt.Errorf("mapdata: file %s declares unsupported version %d", path, doc.Version)
		}

		for _, raw := range doc.Maps {
			def, err := normalizeDefinition(raw, path)
			if err != nil {
				return err
			}
			if _, exists := store.definitions[def.ID]; exists {
				return fmt.Errorf("mapdata: duplicate map %q (file %s)", def.ID, path)
			}
			store.definitions[def.ID] = def
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

// IDs returns the registered definition ids in sorted order.
func (s *Store) IDs() []string {
	if s == nil {
		return nil
	}
	ids := make([]string, 0, len(s.definitions))
	for id := range s.definitions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

type documentFile struct {
	Version int              `json:"version" yaml:"version"`
	Maps    []definitionFile `json:"maps" yaml:"maps"`
}

type definitionFile struct {
	ID       string       `json:"id" yaml:"id"`
	Kind     string       `json:"kind" yaml:"kind"`
	Title    string       `json:"title" yaml:"title"`
	Center   *coordFile   `json:"center" yaml:"center"`
	Zoom     int          `json:"zoom" yaml:"zoom"`
	Tile     *tileFile    `json:"tile" yaml:"tile"`
	LatField string       `json:"latField" yaml:"latField"`
	LngField string       `json:"lngField" yaml:"lngField"`
	Path     []coordFile  `json:"path" yaml:"path"`
	Markers  []markerFile `json:"markers" yaml:"markers"`
	Listings *linkFile    `json:"listings" yaml:"listings"`
}

type coordFile struct {
	Lat *float64 `json:"lat" yaml:"lat"`
	Lng *float64 `json:"lng" yaml:"lng"`
}

type tileFile struct {
	URL         string `json:"url" yaml:"url"`
	Attribution string `json:"attribution" yaml:"attribution"`
	MaxZoom     int    `json:"maxZoom" yaml:"maxZoom"`
}

type markerFile struct {
	Lat      *float64 `json:"lat" yaml:"lat"`
	Lng      *float64 `json:"lng" yaml:"lng"`
	Name     string   `json:"name" yaml:"name"`
	Route    string   `json:"route" yaml:"route"`
	Category string   `json:"category" yaml:"category"`
	MapsURL  string   `json:"mapsUrl" yaml:"mapsUrl"`
	WhatsApp string   `json:"whatsapp" yaml:"whatsapp"`
}

type linkFile struct {
	BasePath string `json:"basePath" yaml:"basePath"`
	Param    string `json:"param" yaml:"param"`
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("mapdata: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("mapdata: parse %s: invalid JSON or YAML", source)
}

func normalizeDefinition(raw definitionFile, source string) (Definition, error) {
	id := strings.TrimSpace(raw.ID)
	if id == "" {
		return Definition{}, fmt.Errorf("mapdata: file %s defines a map without an id", source)
	}

	kind := strings.TrimSpace(raw.Kind)
	switch kind {
	case "":
		kind = mapwidget.KindPublic
	case mapwidget.KindPicker, mapwidget.KindPublic:
	default:
		return Definition{}, fmt.Errorf("mapdata: map %q declares unknown kind %q (file %s)", id, raw.Kind, source)
	}

	def := Definition{
		ID:         id,
		Source:     source,
		Kind:       kind,
		Title:      strings.TrimSpace(raw.Title),
		Zoom:       raw.Zoom,
		LatFieldID: strings.TrimSpace(raw.LatField),
		LngFieldID: strings.TrimSpace(raw.LngField),
	}

	if raw.Center != nil {
		center := geo.LatLng{Lat: coordOrNaN(raw.Center.Lat), Lng: coordOrNaN(raw.Center.Lng)}
		if center.Valid() {
			def.Center = &center
		}
	}

	if raw.Tile != nil {
		def.Tile = mapwidget.TileLayer{
			URL:         strings.TrimSpace(raw.Tile.URL),
			Attribution: raw.Tile.Attribution,
			MaxZoom:     raw.Tile.MaxZoom,
		}
	}

	for _, point := range raw.Path {
		def.Path = append(def.Path, geo.LatLng{Lat: coordOrNaN(point.Lat), Lng: coordOrNaN(point.Lng)})
	}

	for _, m := range raw.Markers {
		def.Markers = append(def.Markers, mapwidget.Marker{
			Lat:            coordOrNaN(m.Lat),
			Lng:            coordOrNaN(m.Lng),
			Name:           strings.TrimSpace(m.Name),
			Route:          strings.TrimSpace(m.Route),
			Category:       strings.TrimSpace(m.Category),
			ExternalMapURL: strings.TrimSpace(m.MapsURL),
			WhatsAppPhone:  strings.TrimSpace(m.WhatsApp),
		})
	}

	if raw.Listings != nil {
		def.ListingsBasePath = strings.TrimSpace(raw.Listings.BasePath)
		def.RouteParam = strings.TrimSpace(raw.Listings.Param)
	}

	return def, nil
}

func isDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return true
	default:
		return false
	}
}
