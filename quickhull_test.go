package quickhull

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kpfaulkner/quickhull-go/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvexHull(t *testing.T) {
	input := []util.Point{{2, 2}, {0, 4}, {4, 4}, {4, 0}, {0, 0}}
	original := append([]util.Point(nil), input...)

	hull := ConvexHull(input)
	assert.Equal(t, []util.Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}}, hull)
	assert.Equal(t, original, input, "input must not be reordered")

	assert.Empty(t, ConvexHull(nil))
}

func TestConvexHullFromReader(t *testing.T) {
	var out bytes.Buffer
	err := ConvexHullFromReader(strings.NewReader("4\n0 0\n1 1\n2 2\n3 3\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, "2\n0 0\n3 3\n", out.String())

	err = ConvexHullFromReader(strings.NewReader("x\n"), &out)
	assert.Error(t, err)
}
