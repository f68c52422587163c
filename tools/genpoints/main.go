package main

import (
	"flag"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/kpfaulkner/quickhull-go/generator"
	log "github.com/sirupsen/logrus"
)

func parseSizes(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	var sizes []int
	for _, field := range strings.Split(s, ",") {
		size, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("invalid size %q", field)
		}
		sizes = append(sizes, size)
	}
	return sizes, nil
}

// checkRange rejects bounds that would not survive conversion to int32.
func checkRange(min int64, max int64) (int32, int32, error) {
	for _, v := range []int64{min, max} {
		if v < math.MinInt32 || v > math.MaxInt32 {
			return 0, 0, fmt.Errorf("coordinate bound %d outside int32", v)
		}
	}
	return int32(min), int32(max), nil
}

func main() {
	dir := flag.String("dir", "tests", "output directory")
	sizesFlag := flag.String("sizes", "", "comma separated point counts (default 3,10,100,1000,100000,10000000)")
	count := flag.Int("count", 100, "files per size")
	seed := flag.Uint64("seed", 0, "random seed (0 picks one)")
	min := flag.Int64("min", generator.DefaultMin, "minimum coordinate")
	max := flag.Int64("max", generator.DefaultMax, "maximum coordinate")
	flag.Parse()

	sizes, err := parseSizes(*sizesFlag)
	if err != nil {
		log.Fatalf("parsing sizes: %v", err)
	}

	lo, hi, err := checkRange(*min, *max)
	if err != nil {
		log.Fatalf("parsing range: %v", err)
	}

	opts := []generator.GeneratorOption{generator.WithRange(lo, hi)}
	if *seed != 0 {
		opts = append(opts, generator.WithSeed(*seed))
	}
	g, err := generator.NewGenerator(opts...)
	if err != nil {
		log.Fatalf("unable to create generator: %v", err)
	}

	start := time.Now()
	written, err := g.GenerateSuite(*dir, sizes, *count)
	if err != nil {
		log.Fatalf("generating suite: %v", err)
	}
	fmt.Printf("wrote %d files in %d ms\n", len(written), time.Since(start).Milliseconds())
}
