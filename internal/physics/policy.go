package physics

import "github.com/arenasim/arena/internal/component"

// Policy says what an overlap between two move types does.
type Policy uint8

const (
	// PolicyBlock is the zero value so an unlisted pair is treated
	// conservatively.
	PolicyBlock Policy = iota
	PolicyIgnore
	PolicyPassThrough
)

func (p Policy) String() string {
	switch p {
	case PolicyBlock:
		return "block"
	case PolicyIgnore:
		return "ignore"
	case PolicyPassThrough:
		return "pass_through"
	}
	return "unknown"
}

const numTypes = component.MoveTypeCount

var policyTable = buildPolicyTable()

func buildPolicyTable() [numTypes][numTypes]Policy {
	var t [numTypes][numTypes]Policy
	set := func(a, b component.MoveType, p Policy) {
		t[a][b] = p
		t[b][a] = p
	}
	for i := component.MoveType(0); i < numTypes; i++ {
		set(component.Floor, i, PolicyIgnore)
	}
	set(component.Obstacle, component.Obstacle, PolicyIgnore)
	set(component.Enemy, component.Enemy, PolicyIgnore)

	// Friendly fire.
	set(component.Player, component.PlayerProjectile, PolicyIgnore)
	set(component.Enemy, component.EnemyProjectile, PolicyIgnore)
	set(component.PlayerProjectile, component.PlayerProjectile, PolicyIgnore)
	set(component.EnemyProjectile, component.EnemyProjectile, PolicyIgnore)

	// Hits are reported; the projectile dies through its own health.
	set(component.Player, component.EnemyProjectile, PolicyPassThrough)
	set(component.Enemy, component.PlayerProjectile, PolicyPassThrough)
	set(component.PlayerProjectile, component.EnemyProjectile, PolicyPassThrough)
	return t
}

// PolicyFor returns the symmetric pair policy. Unknown types block.
func PolicyFor(a, b component.MoveType) Policy {
	if a >= numTypes || b >= numTypes {
		return PolicyBlock
	}
	return policyTable[a][b]
}
