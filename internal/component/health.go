package component

// Health is present only on entities that can die. Current stays within
// [0, Max]; it reaches 0 once, after which the entity awaits removal.
type Health struct {
	Max     uint
	Current uint
}

func NewHealth(max uint) Health {
	return Health{Max: max, Current: max}
}
