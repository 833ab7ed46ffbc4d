package gamedata

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Radii holds the per-state reach thresholds of an enemy.
type Radii struct {
	StopSearch   float64 `yaml:"stop_search"`   // Stop and Wander notice the player below this
	WanderStop   float64 `yaml:"wander_stop"`   // Wander halts when its target is closer than this
	ChaseSearch  float64 `yaml:"chase_search"`  // Chase keeps following below this
	SearchSearch float64 `yaml:"search_search"` // Search re-acquires the player below this
}

// EnemyBehavior holds the tunables shared by every enemy.
type EnemyBehavior struct {
	Speed        float64 `yaml:"speed"`         // Fraction of the remaining distance covered per second
	WanderOffset int     `yaml:"wander_offset"` // Max whole-cell offset of a new wander target per axis
	Radius       Radii   `yaml:"radius"`
}

// FieldBehavior holds tunables for field generation.
type FieldBehavior struct {
	ObstacleChance float64 `yaml:"obstacle_chance"`
}

// Colors holds hex colors for drawing the field.
type Colors struct {
	Background string `yaml:"background"`
	Tile       string `yaml:"tile"`
	Player     string `yaml:"player"`
	Stop       string `yaml:"stop"`
	Wander     string `yaml:"wander"`
	Chase      string `yaml:"chase"`
	Search     string `yaml:"search"`
}

// Behavior is the structure of behavior.yaml.
type Behavior struct {
	Enemy  EnemyBehavior `yaml:"enemy"`
	Field  FieldBehavior `yaml:"field"`
	Colors Colors        `yaml:"colors"`
}

const behaviorFile = "behavior.yaml"

// LoadBehavior loads the embedded behaviour tunables.
func LoadBehavior() (Behavior, error) {
	b, err := Load[Behavior](behaviorFile)
	if err != nil {
		return Behavior{}, err
	}
	if err := b.Validate(); err != nil {
		return Behavior{}, fmt.Errorf("embedded %s: %w", behaviorFile, err)
	}
	return b, nil
}

// MustLoadBehavior loads the embedded behaviour tunables, panicking on error.
func MustLoadBehavior() Behavior {
	b, err := LoadBehavior()
	if err != nil {
		panic(err)
	}
	return b
}

// LoadBehaviorFile loads an override file layered over the embedded defaults.
func LoadBehaviorFile(path string) (Behavior, error) {
	base, err := LoadBehavior()
	if err != nil {
		return Behavior{}, err
	}
	b, err := LoadFile(path, base)
	if err != nil {
		return Behavior{}, err
	}
	if err := b.Validate(); err != nil {
		return Behavior{}, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// Validate reports the first tunable that is out of range.
func (b Behavior) Validate() error {
	if b.Enemy.Speed < 0 {
		return fmt.Errorf("enemy.speed must not be negative, got %v", b.Enemy.Speed)
	}
	if b.Enemy.WanderOffset < 0 {
		return fmt.Errorf("enemy.wander_offset must not be negative, got %d", b.Enemy.WanderOffset)
	}
	if b.Field.ObstacleChance < 0 || b.Field.ObstacleChance > 1 {
		return fmt.Errorf("field.obstacle_chance must be within [0,1], got %v", b.Field.ObstacleChance)
	}
	if _, err := b.Colors.Palette(); err != nil {
		return err
	}
	return nil
}

// Palette is the parsed form of Colors.
type Palette struct {
	Background tcell.Color
	Tile       tcell.Color
	Player     tcell.Color
	Stop       tcell.Color
	Wander     tcell.Color
	Chase      tcell.Color
	Search     tcell.Color
}

// Palette parses every color, joining all parse failures.
func (c Colors) Palette() (Palette, error) {
	var errs []error
	parse := func(name, hex string) tcell.Color {
		color, err := ParseHexColor(hex)
		if err != nil {
			errs = append(errs, fmt.Errorf("colors.%s: %w", name, err))
		}
		return color
	}

	p := Palette{
		Background: parse("background", c.Background),
		Tile:       parse("tile", c.Tile),
		Player:     parse("player", c.Player),
		Stop:       parse("stop", c.Stop),
		Wander:     parse("wander", c.Wander),
		Chase:      parse("chase", c.Chase),
		Search:     parse("search", c.Search),
	}
	return p, errors.Join(errs...)
}
