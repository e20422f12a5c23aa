package physics

import (
	"errors"
	"fmt"

	"github.com/arenasim/arena/internal/component"
	"github.com/arenasim/arena/internal/vec"
)

// ErrUnsupportedShapes means the narrow phase has no test for a shape pair.
// It is a content or programming defect, never a runtime condition.
var ErrUnsupportedShapes = errors.New("unsupported hitbox shape pair")

// Overlap tests two hitboxes anchored at pa and pb. A rectangle spans
// [pos, pos+size] on each axis. Rectangles overlap only when their interiors
// intersect; touching edges do not count.
func Overlap(a component.Hitbox, pa vec.Vec2, b component.Hitbox, pb vec.Vec2) (bool, error) {
	if a.Shape == component.ShapeRect && b.Shape == component.ShapeRect {
		return rectOverlap(pa, a.Size, pb, b.Size), nil
	}
	return false, fmt.Errorf("%w: %s x %s", ErrUnsupportedShapes, a.Shape, b.Shape)
}

func rectOverlap(pa, sa, pb, sb vec.Vec2) bool {
	return pa.X < pb.X+sb.X && pa.X+sa.X > pb.X &&
		pa.Y < pb.Y+sb.Y && pa.Y+sa.Y > pb.Y
}

// Extent is the largest full dimension of the hitbox.
func Extent(h component.Hitbox) float32 {
	if h.Shape == component.ShapeCircle {
		return h.Size.X
	}
	if h.Size.X > h.Size.Y {
		return h.Size.X
	}
	return h.Size.Y
}
