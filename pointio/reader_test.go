package pointio

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kpfaulkner/quickhull-go/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPoints(t *testing.T) {

	for _, tc := range []struct {
		name           string
		data           string
		expectedPoints []util.Point
		expectErr      error
	}{
		{
			name:           "success",
			data:           "3\n0 0\n4 -2\n-100000 100000\n",
			expectedPoints: []util.Point{{0, 0}, {4, -2}, {-100000, 100000}},
		},
		{
			name:           "zero points",
			data:           "0\n",
			expectedPoints: []util.Point{},
		},
		{
			name:           "blank lines and extra whitespace",
			data:           "\n 2 \n\n1   2\n\t3 4\n",
			expectedPoints: []util.Point{{1, 2}, {3, 4}},
		},
		{
			name:           "trailing content ignored",
			data:           "1\n5 5\nnot a point\n",
			expectedPoints: []util.Point{{5, 5}},
		},
		{
			name:      "empty input",
			data:      "",
			expectErr: ErrMalformedCount,
		},
		{
			name:      "non integer count",
			data:      "three\n",
			expectErr: ErrMalformedCount,
		},
		{
			name:      "negative count",
			data:      "-1\n",
			expectErr: ErrNegativeCount,
		},
		{
			name:      "missing points",
			data:      "3\n1 1\n2 2\n",
			expectErr: ErrMissingPoints,
		},
		{
			name:      "non integer coordinate",
			data:      "1\n1.5 2\n",
			expectErr: ErrMalformedPoint,
		},
		{
			name:      "too many fields",
			data:      "1\n1 2 3\n",
			expectErr: ErrMalformedPoint,
		},
		{
			name:      "coordinate beyond int32",
			data:      "1\n3000000000 0\n",
			expectErr: ErrCoordinateRange,
		},
		{
			name:      "coordinate beyond safe range",
			data:      "1\n0 -2000000000\n",
			expectErr: ErrCoordinateRange,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			points, err := ReadPoints(strings.NewReader(tc.data))
			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedPoints, points)
		})
	}
}

func TestReadPointsReportsLine(t *testing.T) {
	_, err := ReadPoints(strings.NewReader("2\n1 1\nx 2\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}

func TestWritePoints(t *testing.T) {
	var buf bytes.Buffer
	err := WritePoints(&buf, []util.Point{{0, 0}, {-7, 12}})
	require.NoError(t, err)
	assert.Equal(t, "2\n0 0\n-7 12\n", buf.String())

	buf.Reset()
	require.NoError(t, WritePoints(&buf, nil))
	assert.Equal(t, "0\n", buf.String())
}

func TestFileRoundTrip(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "points.txt")
	points := []util.Point{{1, 2}, {-3, 4}, {100000, -100000}}

	require.NoError(t, WritePointsToFile(filename, points))
	read, err := ReadPointsFromFile(filename)
	require.NoError(t, err)
	assert.Equal(t, points, read)
}

func TestReadPointsFromMissingFile(t *testing.T) {
	_, err := ReadPointsFromFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
