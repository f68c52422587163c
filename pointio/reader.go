package pointio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kpfaulkner/quickhull-go/geometry"
	"github.com/kpfaulkner/quickhull-go/util"
)

// don't trust the header count for the initial allocation
const maxPreallocatedPoints = 1 << 20

var (
	ErrMalformedCount  = errors.New("malformed point count")
	ErrNegativeCount   = errors.New("negative point count")
	ErrMalformedPoint  = errors.New("malformed point")
	ErrCoordinateRange = errors.New("coordinate out of range")
	ErrMissingPoints   = errors.New("fewer points than declared")
)

// ReadPoints parses a point list: a line holding the count N followed by N
// lines of "x y". Blank lines are skipped and anything after the N-th point
// is ignored. Coordinates are limited to +/-geometry.MaxCoordinate (2^30-1),
// narrower than int32, so hull arithmetic stays inside int64; larger values
// fail with ErrCoordinateRange.
func ReadPoints(r io.Reader) ([]util.Point, error) {
	scanner := bufio.NewScanner(r)
	lineNo := 0

	nextLine := func() (string, bool) {
		for scanner.Scan() {
			lineNo++
			line := strings.TrimSpace(scanner.Text())
			if line != "" {
				return line, true
			}
		}
		return "", false
	}

	header, ok := nextLine()
	if !ok {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("empty input: %w", ErrMalformedCount)
	}

	count, err := strconv.Atoi(header)
	if err != nil {
		return nil, fmt.Errorf("line %d %q: %w", lineNo, header, ErrMalformedCount)
	}
	if count < 0 {
		return nil, fmt.Errorf("line %d: %d: %w", lineNo, count, ErrNegativeCount)
	}

	points := make([]util.Point, 0, util.Min(count, maxPreallocatedPoints))
	for len(points) < count {
		line, ok := nextLine()
		if !ok {
			if err := scanner.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("read %d of %d points: %w", len(points), count, ErrMissingPoints)
		}

		p, err := parsePoint(line)
		if err != nil {
			return nil, fmt.Errorf("line %d %q: %w", lineNo, line, err)
		}
		points = append(points, p)
	}
	return points, nil
}

func parsePoint(line string) (util.Point, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return util.Point{}, ErrMalformedPoint
	}

	x, err := parseCoordinate(fields[0])
	if err != nil {
		return util.Point{}, err
	}
	y, err := parseCoordinate(fields[1])
	if err != nil {
		return util.Point{}, err
	}
	return util.NewPoint(x, y), nil
}

func parseCoordinate(field string) (int32, error) {
	v, err := strconv.ParseInt(field, 10, 32)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, ErrCoordinateRange
		}
		return 0, ErrMalformedPoint
	}
	if util.Abs(v) > geometry.MaxCoordinate {
		return 0, ErrCoordinateRange
	}
	return int32(v), nil
}

func ReadPointsFromFile(filename string) ([]util.Point, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	points, err := ReadPoints(bufio.NewReaderSize(f, 1<<16))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return points, nil
}
