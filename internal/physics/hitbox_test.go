package physics

import (
	"testing"

	"github.com/arenasim/arena/internal/component"
	"github.com/arenasim/arena/internal/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rect(w, h float32) component.Hitbox {
	return component.Hitbox{Shape: component.ShapeRect, Size: vec.New(w, h)}
}

func TestOverlapRect(t *testing.T) {
	tests := []struct {
		name string
		pa   vec.Vec2
		pb   vec.Vec2
		want bool
	}{
		{"same centre", vec.New(0, 0), vec.New(0, 0), true},
		{"partial", vec.New(0, 0), vec.New(20, 10), true},
		{"touching edges", vec.New(0, 0), vec.New(30, 0), false},
		{"touching corners", vec.New(0, 0), vec.New(30, 30), false},
		{"apart", vec.New(0, 0), vec.New(40, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Overlap(rect(30, 30), tt.pa, rect(30, 30), tt.pb)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			back, err := Overlap(rect(30, 30), tt.pb, rect(30, 30), tt.pa)
			require.NoError(t, err)
			assert.Equal(t, got, back, "overlap must be symmetric")
		})
	}
}

func TestOverlapCircleUnsupported(t *testing.T) {
	circle := component.Hitbox{Shape: component.ShapeCircle, Size: vec.New(10, 10)}
	_, err := Overlap(circle, vec.Zero, rect(10, 10), vec.Zero)
	assert.ErrorIs(t, err, ErrUnsupportedShapes)
}

func TestExtent(t *testing.T) {
	assert.Equal(t, float32(25), Extent(rect(7, 25)))
	assert.Equal(t, float32(25), Extent(rect(25, 7)))
}
