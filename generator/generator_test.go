package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kpfaulkner/quickhull-go/pointio"
	"github.com/kpfaulkner/quickhull-go/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeneratorOptions(t *testing.T) {

	for _, tc := range []struct {
		name      string
		opts      []GeneratorOption
		expectErr bool
	}{
		{name: "defaults"},
		{name: "valid range", opts: []GeneratorOption{WithRange(-5, 5)}},
		{name: "single value range", opts: []GeneratorOption{WithRange(3, 3)}},
		{name: "inverted range", opts: []GeneratorOption{WithRange(5, -5)}, expectErr: true},
		{name: "range too wide", opts: []GeneratorOption{WithRange(-2000000000, 0)}, expectErr: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			g, err := NewGenerator(tc.opts...)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, g)
		})
	}
}

func TestGeneratePointsInRange(t *testing.T) {
	g, err := NewGenerator(WithSeed(42), WithRange(-10, 10))
	require.NoError(t, err)

	points := g.GeneratePoints(5000)
	require.Len(t, points, 5000)

	lo, hi := util.BoundingBox(points)
	assert.GreaterOrEqual(t, lo.X, int32(-10))
	assert.GreaterOrEqual(t, lo.Y, int32(-10))
	assert.LessOrEqual(t, hi.X, int32(10))
	assert.LessOrEqual(t, hi.Y, int32(10))

	// with 5000 draws over 21 values both ends turn up
	assert.Equal(t, util.NewPoint(-10, -10), lo)
	assert.Equal(t, util.NewPoint(10, 10), hi)
}

func TestGeneratePointsDeterministicWithSeed(t *testing.T) {
	a, err := NewGenerator(WithSeed(7))
	require.NoError(t, err)
	b, err := NewGenerator(WithSeed(7))
	require.NoError(t, err)

	assert.Equal(t, a.GeneratePoints(100), b.GeneratePoints(100))
}

func TestGenerateSuite(t *testing.T) {
	dir := t.TempDir()
	g, err := NewGenerator(WithSeed(1))
	require.NoError(t, err)

	written, err := g.GenerateSuite(dir, []int{0, 3, 10}, 2)
	require.NoError(t, err)
	assert.Len(t, written, 6)

	path := filepath.Join(dir, "10", "1.txt")
	assert.Contains(t, written, path)
	points, err := pointio.ReadPointsFromFile(path)
	require.NoError(t, err)
	assert.Len(t, points, 10)

	_, err = os.Stat(filepath.Join(dir, "0", "0.txt"))
	assert.NoError(t, err)
}

func TestGenerateSuiteInvalid(t *testing.T) {
	g, err := NewGenerator(WithSeed(1))
	require.NoError(t, err)

	_, err = g.GenerateSuite(t.TempDir(), []int{-1}, 1)
	assert.Error(t, err)

	_, err = g.GenerateSuite(t.TempDir(), []int{3}, -1)
	assert.Error(t, err)
}
