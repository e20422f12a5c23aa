package data

import (
	"fmt"
	"os"

	"github.com/arenasim/arena/internal/component"
	"gopkg.in/yaml.v3"
)

// legacyEntity is one record of the old JSON save format:
//
//	{"move_type":"Obstacle","position":[x,y],"hitbox":{"Rectangle":[w,h]}}
//
// JSON is valid YAML, so yaml.v3 decodes it directly.
type legacyEntity struct {
	MoveType component.MoveType   `yaml:"move_type"`
	Position [2]float32           `yaml:"position"`
	Hitbox   map[string]yaml.Node `yaml:"hitbox"`
}

// LoadLegacyMap reads an old JSON map save and converts it to a MapDef with
// the given id. Circle hitboxes become their bounding square.
func LoadLegacyMap(path string, id int) (*MapDef, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read legacy map %s: %w", path, err)
	}
	var recs []legacyEntity
	if err := yaml.Unmarshal(raw, &recs); err != nil {
		return nil, fmt.Errorf("parse legacy map %s: %w", path, err)
	}

	def := &MapDef{ID: id, Entities: make([]MapEntity, 0, len(recs))}
	for i, r := range recs {
		if r.MoveType != component.Obstacle && r.MoveType != component.Floor {
			return nil, fmt.Errorf("legacy map %s entity %d: move type %s not allowed in maps", path, i, r.MoveType)
		}
		hb, err := legacyHitbox(r.Hitbox)
		if err != nil {
			return nil, fmt.Errorf("legacy map %s entity %d: %w", path, i, err)
		}
		def.Entities = append(def.Entities, MapEntity{
			MoveType: r.MoveType,
			Position: r.Position,
			Hitbox:   hb,
		})
	}
	return def, nil
}

func legacyHitbox(m map[string]yaml.Node) (HitboxDef, error) {
	if len(m) != 1 {
		return HitboxDef{}, fmt.Errorf("hitbox must have exactly one shape, got %d", len(m))
	}
	for shape, node := range m {
		switch shape {
		case "Rectangle":
			var size [2]float32
			if err := node.Decode(&size); err != nil {
				return HitboxDef{}, fmt.Errorf("rectangle size: %w", err)
			}
			return HitboxDef{Shape: "rect", Size: size}, nil
		case "Circle":
			var r float32
			if err := node.Decode(&r); err != nil {
				return HitboxDef{}, fmt.Errorf("circle radius: %w", err)
			}
			return HitboxDef{Shape: "rect", Size: [2]float32{2 * r, 2 * r}}, nil
		default:
			return HitboxDef{}, fmt.Errorf("unknown hitbox shape %q", shape)
		}
	}
	return HitboxDef{}, nil
}
