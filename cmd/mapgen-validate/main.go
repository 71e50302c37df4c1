package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goliatone/go-mapgen/pkg/mapdata"
	"github.com/goliatone/go-mapgen/pkg/renderers/leaflet/icons"
	"github.com/goliatone/go-mapgen/pkg/validation"
)

type violation struct {
	file     string
	location string
	message  string
}

func main() {
	flag.Usage = func() {
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [dirs...]\n", filepath.Base(os.Args[0])); err != nil {
			panic(err)
		}
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "\nValidate map definition directories for coordinates, icons, and zoom levels.\n"); err != nil {
			panic(err)
		}
	}
	flag.Parse()

	dirs := flag.Args()
	if len(dirs) == 0 {
		dirs = []string{
			"pkg/mapdata/definitions",
		}
	}

	opts := validation.Options{
		IconCategories: icons.NewDefaultRegistry().Names(),
	}

	var violations []violation
	for _, dir := range dirs {
		checked, err := validateDir(dir, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "validate %s: %v\n", dir, err)
			os.Exit(1)
		}
		violations = append(violations, checked...)
	}

	if len(violations) > 0 {
		sort.Slice(violations, func(i, j int) bool {
			if violations[i].file == violations[j].file {
				if violations[i].location == violations[j].location {
					return violations[i].message < violations[j].message
				}
				return violations[i].location < violations[j].location
			}
			return violations[i].file < violations[j].file
		})
		for _, v := range violations {
			fmt.Fprintf(os.Stderr, "%s: %s -> %s\n", v.file, v.location, v.message)
		}
		os.Exit(1)
	}
}

func validateDir(dir string, opts validation.Options) ([]violation, error) {
	store, err := mapdata.LoadFS(os.DirFS(dir))
	if err != nil {
		return nil, fmt.Errorf("load definitions: %w", err)
	}

	result := validation.ValidateStore(store, opts)
	if result.Valid {
		return nil, nil
	}

	violations := make([]violation, 0, len(result.Issues))
	for _, issue := range result.Issues {
		file := dir
		if def, ok := store.Definition(issue.Map); ok {
			file = filepath.Join(dir, def.Source)
		}
		violations = append(violations, violation{
			file:     file,
			location: formatLocation(issue),
			message:  issue.Message,
		})
	}
	return violations, nil
}

func formatLocation(issue validation.Issue) string {
	segments := []string{"map", issue.Map}
	if issue.Location != "" {
		segments = append(segments, issue.Location)
	}
	return strings.Join(segments, " > ")
}
