package ecs

// Removable is implemented by all component stores so the Registry can
// bulk-remove an entity's data from every store on destroy.
type Removable interface {
	Remove(id EntityID)
}

// Store is a dense component store indexed by EntityID.Index(). Every slot
// remembers the generation it was written for, so a recycled index never
// leaks the previous owner's data to a stale handle.
//
// Pointers returned by Get and Each stay valid until the next Set that
// grows the store; systems must not hold them across phases.
type Store[T any] struct {
	data    []T
	gens    []uint32
	present []bool
	count   int
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{
		data:    make([]T, 0, 256),
		gens:    make([]uint32, 0, 256),
		present: make([]bool, 0, 256),
	}
}

func (s *Store[T]) grow(idx uint32) {
	var zero T
	for uint32(len(s.data)) <= idx {
		s.data = append(s.data, zero)
		s.gens = append(s.gens, 0)
		s.present = append(s.present, false)
	}
}

func (s *Store[T]) Set(id EntityID, c T) {
	idx := id.Index()
	s.grow(idx)
	if !s.present[idx] {
		s.count++
	}
	s.data[idx] = c
	s.gens[idx] = id.Generation()
	s.present[idx] = true
}

func (s *Store[T]) Get(id EntityID) (*T, bool) {
	idx := id.Index()
	if int(idx) >= len(s.data) || !s.present[idx] || s.gens[idx] != id.Generation() {
		return nil, false
	}
	return &s.data[idx], true
}

func (s *Store[T]) Has(id EntityID) bool {
	_, ok := s.Get(id)
	return ok
}

func (s *Store[T]) Remove(id EntityID) {
	idx := id.Index()
	if int(idx) >= len(s.data) || !s.present[idx] || s.gens[idx] != id.Generation() {
		return
	}
	var zero T
	s.data[idx] = zero
	s.present[idx] = false
	s.count--
}

func (s *Store[T]) Len() int {
	return s.count
}

// Each visits components in ascending index order.
func (s *Store[T]) Each(fn func(EntityID, *T)) {
	for i := range s.data {
		if s.present[i] {
			fn(NewEntityID(uint32(i), s.gens[i]), &s.data[i])
		}
	}
}
