package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arenasim/arena/internal/component"
	"github.com/arenasim/arena/internal/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoadMap(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "map1.yaml", `
id: 1
name: Yard
entities:
  - move_type: Floor
    position: [0, 0]
    hitbox: {size: [40, 40]}
  - move_type: Obstacle
    position: [-120.5, 80]
    hitbox: {shape: rect, size: [30, 20]}
`)
	def, err := LoadMap(p, 100)
	require.NoError(t, err)
	assert.Equal(t, 1, def.ID)
	assert.Equal(t, "Yard", def.Name)
	require.Len(t, def.Entities, 2)
	assert.Equal(t, component.Floor, def.Entities[0].MoveType)
	assert.Equal(t, component.Obstacle, def.Entities[1].MoveType)
	assert.Equal(t, vec.New(-120.5, 80), def.Entities[1].Pos())

	hb, err := def.Entities[1].Hitbox.Hitbox()
	require.NoError(t, err)
	assert.Equal(t, component.ShapeRect, hb.Shape)
	assert.Equal(t, vec.New(30, 20), hb.Size)
}

func TestLoadMapRejectsBadContent(t *testing.T) {
	tests := map[string]string{
		"syntax":     "entities: [",
		"move type":  "entities:\n  - move_type: Player\n    position: [0, 0]\n    hitbox: {size: [10, 10]}\n",
		"unknown":    "entities:\n  - move_type: Wall\n    position: [0, 0]\n    hitbox: {size: [10, 10]}\n",
		"shape":      "entities:\n  - move_type: Obstacle\n    position: [0, 0]\n    hitbox: {shape: hexagon, size: [10, 10]}\n",
		"empty size": "entities:\n  - move_type: Obstacle\n    position: [0, 0]\n    hitbox: {size: [0, 10]}\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			p := writeFile(t, t.TempDir(), "map.yaml", content)
			_, err := LoadMap(p, 100)
			assert.Error(t, err)
		})
	}

	t.Run("circle", func(t *testing.T) {
		p := writeFile(t, t.TempDir(), "map.yaml",
			"entities:\n  - move_type: Obstacle\n    position: [0, 0]\n    hitbox: {shape: circle, size: [10, 10]}\n")
		_, err := LoadMap(p, 100)
		assert.ErrorIs(t, err, ErrShapeUnsupported)
	})

	for name, size := range map[string]string{
		"wider than cell":  "[150, 20]",
		"taller than cell": "[20, 150]",
		"exactly one cell": "[100, 100]",
	} {
		t.Run(name, func(t *testing.T) {
			p := writeFile(t, t.TempDir(), "map.yaml",
				"entities:\n  - move_type: Obstacle\n    position: [40, 0]\n    hitbox: {size: "+size+"}\n")
			_, err := LoadMap(p, 100)
			assert.ErrorIs(t, err, ErrTooLarge)
		})
	}

	_, err := LoadMap(filepath.Join(t.TempDir(), "missing.yaml"), 100)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSaveMapRoundTrip(t *testing.T) {
	dir := t.TempDir()
	def := &MapDef{ID: 4, Name: "Saved", Entities: []MapEntity{
		{MoveType: component.Obstacle, Position: [2]float32{10, 20}, Hitbox: HitboxDef{Shape: "rect", Size: [2]float32{30, 30}}},
	}}
	require.NoError(t, SaveMap(MapPath(dir, 4), def))

	got, err := LoadMap(filepath.Join(dir, "map4.yaml"), 100)
	require.NoError(t, err)
	assert.Equal(t, def, got)
}

func TestMapStorage(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, SaveMap(MapPath(dir, 1), &MapDef{ID: 1}))

	s := NewMapStorage(dir, 100)
	assert.False(t, s.Contains(1))

	first, err := s.Load(1)
	require.NoError(t, err)
	assert.True(t, s.Contains(1))
	second, err := s.Load(1)
	require.NoError(t, err)
	assert.Same(t, first, second, "loaded maps are reused")

	_, err = s.Load(2)
	assert.Error(t, err)
	assert.False(t, s.Contains(2))
	assert.Equal(t, 1, s.Count())

	s.Unload(1)
	_, ok := s.Get(1)
	assert.False(t, ok)
}

func TestMapStorageRejectsOversizedMap(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, SaveMap(MapPath(dir, 1), &MapDef{ID: 1, Entities: []MapEntity{
		{MoveType: component.Obstacle, Position: [2]float32{40, 0}, Hitbox: HitboxDef{Size: [2]float32{150, 150}}},
	}}))

	s := NewMapStorage(dir, 100)
	_, err := s.Load(1)
	assert.ErrorIs(t, err, ErrTooLarge)
	assert.False(t, s.Contains(1))

	// The same content fits a coarser grid.
	_, err = NewMapStorage(dir, 200).Load(1)
	assert.NoError(t, err)
}

func TestLoadLegacyMap(t *testing.T) {
	p := writeFile(t, t.TempDir(), "map1", `[
{"move_type":"Obstacle","position":[100.0,-50.0],"hitbox":{"Rectangle":[40.0,40.0]}},
{"move_type":"Floor","position":[0.0,0.0],"hitbox":{"Circle":15.0}}
]`)
	def, err := LoadLegacyMap(p, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, def.ID)
	require.Len(t, def.Entities, 2)
	assert.Equal(t, MapEntity{
		MoveType: component.Obstacle,
		Position: [2]float32{100, -50},
		Hitbox:   HitboxDef{Shape: "rect", Size: [2]float32{40, 40}},
	}, def.Entities[0])
	assert.Equal(t, HitboxDef{Shape: "rect", Size: [2]float32{30, 30}}, def.Entities[1].Hitbox)
}

func TestLoadLegacyMapRejectsActors(t *testing.T) {
	p := writeFile(t, t.TempDir(), "map1", `[{"move_type":"PlayerBullet","position":[0,0],"hitbox":{"Rectangle":[7,25]}}]`)
	_, err := LoadLegacyMap(p, 1)
	assert.Error(t, err)
}
