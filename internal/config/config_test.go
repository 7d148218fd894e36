package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

func TestEmbeddedDefaults(t *testing.T) {
	cfg, err := parse(defaultYAML)
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("embedded defaults invalid: %v", err)
	}
	if diff := cmp.Diff(t2048.DefaultRules(), cfg.EngineRules()); diff != "" {
		t.Errorf("embedded rules differ from engine defaults (-want +got):\n%s", diff)
	}
	if len(cfg.Variants) == 0 {
		t.Error("embedded defaults define no extra variants")
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	yaml := "rules:\n  size: 5\n  win_tile: 0\nui:\n  tick_rate: 30\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, want %q", source, path)
	}

	want := t2048.DefaultRules()
	want.Size = 5
	want.WinTile = 0
	if diff := cmp.Diff(want, cfg.EngineRules()); diff != "" {
		t.Errorf("rules mismatch (-want +got):\n%s", diff)
	}
	if cfg.UI.TickRate != 30 {
		t.Errorf("TickRate = %d, want 30", cfg.UI.TickRate)
	}
	if cfg.Storage.Path != DefaultConfig().Storage.Path {
		t.Errorf("missing storage section did not keep the default path")
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("rules: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(path); err == nil {
		t.Error("expected error for malformed custom config")
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rules.Size = 1
	cfg.Rules.WinTile = 1000
	cfg.UI.TickRate = 0
	cfg.Variants = []VariantConfig{
		{ID: "x", Size: 3},
		{ID: "x", Size: 3},
		{Name: "no id"},
		{ID: "bad", Spawn4: t2048.Prob(2)},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"size 1", "win tile 1000", "tick rate", "duplicate id", "missing id", "bad"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error does not mention %q:\n%v", want, err)
		}
	}

	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		spawn4 float64
		undo   int
	}{
		{DifficultyEasy, 0.05, 50},
		{DifficultyNormal, 0.10, 20},
		{DifficultyHard, 0.25, 3},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultConfig()
			ApplyPreset(&cfg, tt.preset)
			if cfg.Rules.Spawn4Prob != tt.spawn4 || cfg.Rules.UndoDepth != tt.undo {
				t.Errorf("rules = %+v, want spawn4 %v undo %d", cfg.Rules, tt.spawn4, tt.undo)
			}
		})
	}

	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestExtraVariants(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Variants = []VariantConfig{{ID: "2048_six", Size: 6, WinTile: 8192}}

	got := cfg.ExtraVariants()
	want := []t2048.Variant{{ID: "2048_six", Name: "2048_six", Size: 6, WinTile: 8192}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ExtraVariants mismatch (-want +got):\n%s", diff)
	}
}

func TestVariantSpawn4FromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twos.yaml")
	yaml := "variants:\n  - id: twos\n    spawn4: 0\n  - id: plain\n    size: 5\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	got := map[string]float64{}
	for _, v := range cfg.ExtraVariants() {
		got[v.ID] = v.Rules(cfg.EngineRules()).Spawn4Prob
	}
	want := map[string]float64{"twos": 0, "plain": cfg.Rules.Spawn4Prob}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("spawn4 mismatch (-want +got):\n%s", diff)
	}
}

