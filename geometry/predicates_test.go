package geometry

import (
	"testing"

	"github.com/kpfaulkner/quickhull-go/util"
	"github.com/stretchr/testify/assert"
)

func TestSignedArea(t *testing.T) {
	horizontal := NewLine(util.NewPoint(0, 0), util.NewPoint(4, 0))

	for _, tc := range []struct {
		name     string
		p        util.Point
		line     Line
		expected int64
	}{
		{name: "left of line", p: util.NewPoint(2, 2), line: horizontal, expected: 8},
		{name: "right of line", p: util.NewPoint(2, -3), line: horizontal, expected: -12},
		{name: "on line", p: util.NewPoint(7, 0), line: horizontal, expected: 0},
		{name: "endpoint", p: util.NewPoint(4, 0), line: horizontal, expected: 0},
		{
			name:     "reversed line flips sign",
			p:        util.NewPoint(2, 2),
			line:     NewLine(util.NewPoint(4, 0), util.NewPoint(0, 0)),
			expected: -8,
		},
		{
			name:     "extreme coordinates do not overflow",
			p:        util.NewPoint(-MaxCoordinate, -MaxCoordinate),
			line:     NewLine(util.NewPoint(MaxCoordinate, -MaxCoordinate), util.NewPoint(MaxCoordinate, MaxCoordinate)),
			expected: 4 * int64(MaxCoordinate) * int64(MaxCoordinate),
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SignedArea(tc.p, tc.line))
		})
	}
}

func TestIsRightOf(t *testing.T) {
	line := NewLine(util.NewPoint(0, 0), util.NewPoint(0, 10))

	assert.True(t, IsRightOf(util.NewPoint(1, 5), line))
	assert.False(t, IsRightOf(util.NewPoint(-1, 5), line))
	assert.False(t, IsRightOf(util.NewPoint(0, 5), line), "points on the line are not right of it")
	assert.False(t, IsRightOf(util.NewPoint(0, 20), line))
}

func TestIsClockwise(t *testing.T) {
	a := util.NewPoint(0, 0)
	b := util.NewPoint(4, 0)
	c := util.NewPoint(4, 4)

	assert.False(t, IsClockwise(a, b, c))
	assert.True(t, IsClockwise(a, c, b))
	assert.False(t, IsClockwise(a, b, util.NewPoint(8, 0)), "collinear triple is not clockwise")
}

func TestProjection(t *testing.T) {
	line := NewLine(util.NewPoint(1, 1), util.NewPoint(5, 1))

	assert.Equal(t, int64(0), Projection(util.NewPoint(1, -7), line))
	assert.Equal(t, int64(8), Projection(util.NewPoint(3, 9), line))
	assert.Equal(t, int64(-4), Projection(util.NewPoint(0, 1), line))
}

func TestCollinear(t *testing.T) {
	assert.True(t, Collinear(util.NewPoint(0, 0), util.NewPoint(1, 1), util.NewPoint(3, 3)))
	assert.False(t, Collinear(util.NewPoint(0, 0), util.NewPoint(1, 1), util.NewPoint(3, 4)))
}

func TestOrientationMatchesSignedArea(t *testing.T) {
	a := util.NewPoint(-100000, 3)
	b := util.NewPoint(99999, -100000)
	c := util.NewPoint(12, 100000)

	// same determinant, written two ways
	assert.Equal(t, orientation(a, b, c), SignedArea(c, NewLine(a, b)))
}
