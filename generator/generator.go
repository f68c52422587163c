package generator

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"

	"github.com/kpfaulkner/quickhull-go/geometry"
	"github.com/kpfaulkner/quickhull-go/pointio"
	"github.com/kpfaulkner/quickhull-go/util"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"
)

const (
	DefaultMin = -100000
	DefaultMax = 100000
)

// DefaultSizes are the suite sizes written by GenerateSuite when none are given.
var DefaultSizes = []int{3, 10, 100, 1000, 100000, 10000000}

type GeneratorOption func(g *Generator) error

// WithRange sets the inclusive coordinate range.
func WithRange(min int32, max int32) GeneratorOption {
	return func(g *Generator) error {
		if min > max {
			return fmt.Errorf("invalid range [%d, %d]", min, max)
		}
		if util.Abs(int64(min)) > geometry.MaxCoordinate || util.Abs(int64(max)) > geometry.MaxCoordinate {
			return fmt.Errorf("range [%d, %d] exceeds +/-%d", min, max, geometry.MaxCoordinate)
		}
		g.min = min
		g.max = max
		return nil
	}
}

func WithSeed(seed uint64) GeneratorOption {
	return func(g *Generator) error {
		g.rng = rand.New(rand.NewPCG(seed, seed))
		return nil
	}
}

// Generator produces uniformly random point sets.
type Generator struct {
	rng *rand.Rand
	min int32
	max int32
}

func NewGenerator(opts ...GeneratorOption) (*Generator, error) {
	g := &Generator{
		rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		min: DefaultMin,
		max: DefaultMax,
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func randRange[T constraints.Integer](rng *rand.Rand, min T, max T) T {
	return min + T(rng.Int64N(int64(max)-int64(min)+1))
}

// GeneratePoints returns n points with both coordinates uniform in the
// generator's inclusive range.
func (g *Generator) GeneratePoints(n int) []util.Point {
	points := make([]util.Point, n)
	for i := range points {
		points[i] = util.NewPoint(randRange(g.rng, g.min, g.max), randRange(g.rng, g.min, g.max))
	}
	return points
}

// GenerateSuite writes filesPerSize random inputs for every size in sizes to
// dir/<size>/<index>.txt, creating directories as needed. Returns the paths
// written.
func (g *Generator) GenerateSuite(dir string, sizes []int, filesPerSize int) ([]string, error) {
	if filesPerSize < 0 {
		return nil, errors.New("files per size must not be negative")
	}
	if len(sizes) == 0 {
		sizes = DefaultSizes
	}

	var written []string
	for _, size := range sizes {
		if size < 0 {
			return written, fmt.Errorf("invalid size %d", size)
		}

		sizeDir := filepath.Join(dir, strconv.Itoa(size))
		if err := os.MkdirAll(sizeDir, 0755); err != nil {
			return written, err
		}

		for t := 0; t < filesPerSize; t++ {
			path := filepath.Join(sizeDir, strconv.Itoa(t)+".txt")
			if err := pointio.WritePointsToFile(path, g.GeneratePoints(size)); err != nil {
				return written, err
			}
			written = append(written, path)
		}
		log.Debugf("generated %d files of %d points in %s", filesPerSize, size, sizeDir)
	}
	return written, nil
}
