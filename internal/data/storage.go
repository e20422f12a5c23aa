package data

import (
	"github.com/arenasim/arena/internal/vec"
)

// MapStorage keeps parsed maps in memory so a level can be re-rendered
// without touching the disk. Maps are loaded on demand and unloaded on level
// teardown.
type MapStorage struct {
	dir      string
	cellSize float32
	maps     map[int]*MapDef
}

// NewMapStorage serves maps from dir. cellSize is the collision grid's cell
// size; maps with larger hitboxes fail to load.
func NewMapStorage(dir string, cellSize float32) *MapStorage {
	return &MapStorage{
		dir:      dir,
		cellSize: cellSize,
		maps:     make(map[int]*MapDef),
	}
}

// Load reads map id from disk unless it is already loaded. A failed load
// leaves the map absent; the caller decides how to report it.
func (s *MapStorage) Load(id int) (*MapDef, error) {
	if m, ok := s.maps[id]; ok {
		return m, nil
	}
	m, err := LoadMap(MapPath(s.dir, id), s.cellSize)
	if err != nil {
		return nil, err
	}
	s.maps[id] = m
	return m, nil
}

func (s *MapStorage) Get(id int) (*MapDef, bool) {
	m, ok := s.maps[id]
	return m, ok
}

func (s *MapStorage) Contains(id int) bool {
	_, ok := s.maps[id]
	return ok
}

func (s *MapStorage) Unload(id int) {
	delete(s.maps, id)
}

// Count returns the number of loaded maps.
func (s *MapStorage) Count() int {
	return len(s.maps)
}

func vecOf(a [2]float32) vec.Vec2 {
	return vec.New(a[0], a[1])
}

// Pos returns the entity's position as a vector.
func (e MapEntity) Pos() vec.Vec2 {
	return vecOf(e.Position)
}
