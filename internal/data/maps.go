package data

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/arenasim/arena/internal/component"
	"gopkg.in/yaml.v3"
)

var (
	// ErrShapeUnsupported is returned for map hitboxes the collision phase
	// cannot test.
	ErrShapeUnsupported = errors.New("hitbox shape not supported in maps")
	// ErrTooLarge is returned for map hitboxes that do not fit a grid cell.
	ErrTooLarge = errors.New("hitbox does not fit the collision cell")
)

// MapEntity is one record of a map description: a static body to spawn at
// level load.
type MapEntity struct {
	MoveType component.MoveType `yaml:"move_type"`
	Position [2]float32         `yaml:"position,flow"`
	Hitbox   HitboxDef          `yaml:"hitbox"`
}

// HitboxDef is the file form of a hitbox. Shape defaults to "rect".
type HitboxDef struct {
	Shape string     `yaml:"shape,omitempty"`
	Size  [2]float32 `yaml:"size,flow"`
}

// MapDef is a parsed map file. Entity order is preserved.
type MapDef struct {
	ID       int         `yaml:"id"`
	Name     string      `yaml:"name"`
	Entities []MapEntity `yaml:"entities"`
}

// Hitbox converts the file form into the component. Only rectangles are
// accepted.
func (h HitboxDef) Hitbox() (component.Hitbox, error) {
	switch h.Shape {
	case "", "rect", "rectangle":
	case "circle":
		return component.Hitbox{}, fmt.Errorf("%w: %q", ErrShapeUnsupported, h.Shape)
	default:
		return component.Hitbox{}, fmt.Errorf("unknown hitbox shape %q", h.Shape)
	}
	if h.Size[0] <= 0 || h.Size[1] <= 0 {
		return component.Hitbox{}, fmt.Errorf("hitbox size %v must be positive", h.Size)
	}
	return component.Hitbox{Shape: component.ShapeRect, Size: vecOf(h.Size)}, nil
}

// LoadMap reads and validates one map file. Only static bodies (Obstacle,
// Floor) may appear in a map, and every hitbox must be strictly smaller
// than cellSize on both axes.
func LoadMap(path string, cellSize float32) (*MapDef, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read map %s: %w", path, err)
	}
	var def MapDef
	if err := yaml.Unmarshal(raw, &def); err != nil {
		return nil, fmt.Errorf("parse map %s: %w", path, err)
	}
	for i, e := range def.Entities {
		if e.MoveType != component.Obstacle && e.MoveType != component.Floor {
			return nil, fmt.Errorf("map %s entity %d: move type %s not allowed in maps", path, i, e.MoveType)
		}
		hb, err := e.Hitbox.Hitbox()
		if err != nil {
			return nil, fmt.Errorf("map %s entity %d: %w", path, i, err)
		}
		if hb.Size.X >= cellSize || hb.Size.Y >= cellSize {
			return nil, fmt.Errorf("map %s entity %d: %w: %vx%v, cell %v",
				path, i, ErrTooLarge, hb.Size.X, hb.Size.Y, cellSize)
		}
	}
	return &def, nil
}

// SaveMap writes def in the format LoadMap reads.
func SaveMap(path string, def *MapDef) error {
	out, err := yaml.Marshal(def)
	if err != nil {
		return fmt.Errorf("encode map %d: %w", def.ID, err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write map %s: %w", path, err)
	}
	return nil
}

// MapPath is where map id lives inside dir.
func MapPath(dir string, id int) string {
	return filepath.Join(dir, "map"+strconv.Itoa(id)+".yaml")
}
