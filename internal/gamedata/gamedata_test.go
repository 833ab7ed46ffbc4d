package gamedata

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestLoadBehaviorDefaults(t *testing.T) {
	b, err := LoadBehavior()
	if err != nil {
		t.Fatalf("Failed to load behavior: %v", err)
	}

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"speed", b.Enemy.Speed, 0.5},
		{"stop_search", b.Enemy.Radius.StopSearch, 2.1},
		{"wander_stop", b.Enemy.Radius.WanderStop, 0.5},
		{"chase_search", b.Enemy.Radius.ChaseSearch, 3.3},
		{"search_search", b.Enemy.Radius.SearchSearch, 4.9},
		{"obstacle_chance", b.Field.ObstacleChance, 0.25},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
	if b.Enemy.WanderOffset != 3 {
		t.Errorf("wander_offset = %d, want 3", b.Enemy.WanderOffset)
	}

	r := b.Enemy.Radius
	if !(r.StopSearch < r.ChaseSearch && r.ChaseSearch < r.SearchSearch) {
		t.Errorf("radii should grow Stop < Chase < Search, got %v < %v < %v",
			r.StopSearch, r.ChaseSearch, r.SearchSearch)
	}
}

func TestLoadBehaviorFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "override.yaml")
	content := "enemy:\n  speed: 1.5\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	b, err := LoadBehaviorFile(path)
	if err != nil {
		t.Fatalf("LoadBehaviorFile: %v", err)
	}
	if b.Enemy.Speed != 1.5 {
		t.Errorf("Speed = %v, want 1.5", b.Enemy.Speed)
	}
	// Keys absent from the override keep the embedded defaults.
	if b.Enemy.Radius.ChaseSearch != 3.3 {
		t.Errorf("ChaseSearch = %v, want 3.3", b.Enemy.Radius.ChaseSearch)
	}
	if b.Colors.Chase != "#00FFFF" {
		t.Errorf("Colors.Chase = %q, want #00FFFF", b.Colors.Chase)
	}
}

func TestLoadBehaviorFileRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"negative speed", "enemy:\n  speed: -1\n", "enemy.speed"},
		{"chance above one", "field:\n  obstacle_chance: 1.5\n", "obstacle_chance"},
		{"bad color", "colors:\n  chase: \"#XYZ\"\n", "colors.chase"},
		{"malformed yaml", "enemy: [\n", "failed to parse YAML"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "behavior.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			_, err := LoadBehaviorFile(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadBehaviorFileMissing(t *testing.T) {
	if _, err := LoadBehaviorFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    tcell.Color
		wantErr bool
	}{
		{"#FF0000", tcell.NewRGBColor(255, 0, 0), false},
		{"00ff80", tcell.NewRGBColor(0, 255, 128), false},
		{"#8080FF", tcell.NewRGBColor(128, 128, 255), false},
		{"#FFF", tcell.ColorDefault, true},
		{"#GG0000", tcell.ColorDefault, true},
	}

	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHexColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPaletteFromDefaults(t *testing.T) {
	b := MustLoadBehavior()
	p, err := b.Colors.Palette()
	if err != nil {
		t.Fatalf("Palette: %v", err)
	}
	if p.Player != tcell.NewRGBColor(0, 0, 255) {
		t.Errorf("Player = %v, want blue", p.Player)
	}
	if p.Stop == p.Chase {
		t.Error("Stop and Chase colors should differ")
	}
}
