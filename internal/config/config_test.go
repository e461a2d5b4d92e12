package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/basisdocs/mdiff/internal/config"
)

func TestBlockSimilarityThreshold(t *testing.T) {
	if got := config.BlockSimilarityThreshold(config.Strict); got != 0.7 {
		t.Errorf("strict = %v, want 0.7", got)
	}
	if got := config.BlockSimilarityThreshold(config.Normal); got != 0.6 {
		t.Errorf("normal = %v, want 0.6", got)
	}
	if got := config.BlockSimilarityThreshold(config.Loose); got != 0.4 {
		t.Errorf("loose = %v, want 0.4", got)
	}
}

func TestMinSharedForPairing(t *testing.T) {
	if got := config.MinSharedForPairing(config.Normal); got != 5 {
		t.Errorf("normal = %v, want 5", got)
	}
}

func TestProcessWideState(t *testing.T) {
	defer config.SetMatchingLevel(config.Normal)
	defer config.SetDebug(false)

	config.SetMatchingLevel(config.Strict)
	config.SetDebug(true)

	if got := config.GetMatchingLevel(); got != config.Strict {
		t.Errorf("GetMatchingLevel = %v, want Strict", got)
	}
	if !config.IsDebug() {
		t.Error("IsDebug = false, want true")
	}
	snap := config.FromProcess()
	if snap.MatchingLevel != config.Strict || !snap.Debug {
		t.Errorf("FromProcess = %+v", snap)
	}
}

func TestLoadYAMLRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mdiff.yaml")
	if err := os.WriteFile(path, []byte("matchingLevel: loose\ndebug: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MatchingLevel != config.Loose || !cfg.Debug {
		t.Errorf("Load(yaml) = %+v", cfg)
	}
}

func TestLoadJSONRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mdiff.json")
	if err := config.SaveJSON(path, config.Config{MatchingLevel: config.Strict, Debug: true}); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MatchingLevel != config.Strict || !cfg.Debug {
		t.Errorf("Load(json) = %+v", cfg)
	}
}

func TestLoadUnrecognisedExtension(t *testing.T) {
	if _, err := config.Load("config.toml"); err == nil {
		t.Error("expected error for unrecognised extension")
	}
}
