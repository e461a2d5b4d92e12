package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// fileShape is the on-disk representation for both the YAML and JSON
// config loaders.
type fileShape struct {
	MatchingLevel string `yaml:"matchingLevel" json:"matchingLevel"`
	Debug         bool   `yaml:"debug" json:"debug"`
}

// Load reads a Config from path, dispatching on its extension: ".yaml"/
// ".yml" via goccy-yaml, ".json" via gjson. Any other extension is an
// error.
func Load(path string) (Config, error) {
	switch strings.ToLower(ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(path)
	case ".json":
		return LoadJSON(path)
	default:
		return Config{}, fmt.Errorf("config: unrecognised extension for %q (want .yaml, .yml, or .json)", path)
	}
}

// LoadYAML reads a Config from a YAML file.
func LoadYAML(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %q: %w", path, err)
	}
	var shape fileShape
	if err := yaml.Unmarshal(data, &shape); err != nil {
		return Config{}, fmt.Errorf("config: parsing yaml %q: %w", path, err)
	}
	return fromShape(shape), nil
}

// LoadJSON reads a Config from a JSON file using gjson path lookups,
// rather than unmarshalling into a struct, so a partial config file
// degrades to defaults field-by-field instead of failing outright. A file
// that is not valid JSON is an error.
func LoadJSON(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %q: %w", path, err)
	}
	if !gjson.ValidBytes(data) {
		return Config{}, fmt.Errorf("config: %q is not valid JSON", path)
	}
	root := gjson.ParseBytes(data)
	shape := fileShape{
		MatchingLevel: root.Get("matchingLevel").String(),
		Debug:         root.Get("debug").Bool(),
	}
	return fromShape(shape), nil
}

func fromShape(shape fileShape) Config {
	cfg := Default()
	if shape.MatchingLevel != "" {
		cfg.MatchingLevel = ParseMatchingLevel(shape.MatchingLevel)
	}
	cfg.Debug = shape.Debug
	return cfg
}

// SaveJSON writes cfg to path as JSON, building the document incrementally
// with sjson.Set rather than marshalling a struct, matching the read path's
// field-by-field treatment of the file.
func SaveJSON(path string, cfg Config) error {
	doc := "{}"
	var err error
	doc, err = sjson.Set(doc, "matchingLevel", cfg.MatchingLevel.String())
	if err != nil {
		return fmt.Errorf("config: building json: %w", err)
	}
	doc, err = sjson.Set(doc, "debug", cfg.Debug)
	if err != nil {
		return fmt.Errorf("config: building json: %w", err)
	}
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("config: writing %q: %w", path, err)
	}
	return nil
}

func ext(path string) string {
	for i := len(path) - 1; i >= 0 && path[i] != '/'; i-- {
		if path[i] == '.' {
			return path[i:]
		}
	}
	return ""
}
