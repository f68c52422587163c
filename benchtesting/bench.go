package main

import (
	"context"
	"flag"
	"fmt"
	"sort"
	"time"

	"github.com/kpfaulkner/quickhull-go/generator"
	"github.com/kpfaulkner/quickhull-go/hull"
	"github.com/kpfaulkner/quickhull-go/util"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"
)

func timeRuns(input []util.Point, runs int, parallel bool) ([]float64, int) {
	points := make([]util.Point, len(input))
	timings := make([]float64, 0, runs)
	hullSize := 0
	for count := 0; count < runs; count++ {
		copy(points, input)
		q, err := hull.NewQuickHull(points)
		if err != nil {
			log.Fatalf("boomage %v", err)
		}

		start := time.Now()
		if parallel {
			if err := q.CalculateParallel(context.Background()); err != nil {
				log.Fatalf("boomage %v", err)
			}
		} else {
			q.Calculate()
		}
		timings = append(timings, float64(time.Since(start).Microseconds())/1000)
		hullSize = q.HullSize()
	}
	return timings, hullSize
}

func main() {
	size := flag.Int("n", 1000000, "points per run")
	runs := flag.Int("runs", 10, "runs per mode")
	seed := flag.Uint64("seed", 1, "random seed")
	flag.Parse()
	if *runs < 1 {
		log.Fatalf("runs must be at least 1")
	}

	//p := profile.Start(profile.MemProfileHeap, profile.ProfilePath("."))
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."))
	defer p.Stop()

	g, err := generator.NewGenerator(generator.WithSeed(*seed))
	if err != nil {
		log.Fatalf("boomage %v", err)
	}
	input := g.GeneratePoints(*size)

	for _, parallel := range []bool{false, true} {
		timings, hullSize := timeRuns(input, *runs, parallel)
		mean, std := stat.MeanStdDev(timings, nil)
		fmt.Printf("parallel=%v points=%d hull=%d mean %.2f ms stddev %.2f ms median %.2f ms\n",
			parallel, *size, hullSize, mean, std, median(timings))
	}
}

func median(timings []float64) float64 {
	sorted := append([]float64(nil), timings...)
	// stat.Quantile needs sorted input
	sort.Float64s(sorted)
	return stat.Quantile(0.5, stat.Empirical, sorted, nil)
}
