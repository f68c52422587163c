package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/kpfaulkner/quickhull-go/hull"
	"github.com/kpfaulkner/quickhull-go/pointio"
	"github.com/kpfaulkner/quickhull-go/util"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
)

type config struct {
	infile     string
	outfile    string
	parallel   bool
	workers    int
	verify     bool
	trace      bool
	debug      bool
	cpuProfile string
}

func parseFlags(args []string) (*config, error) {
	cfg := &config{}
	fs := flag.NewFlagSet("quickhull", flag.ContinueOnError)
	fs.StringVar(&cfg.infile, "i", "", "input point file (stdin when empty)")
	fs.StringVar(&cfg.outfile, "o", "", "output hull file (stdout when empty)")
	fs.BoolVar(&cfg.parallel, "parallel", false, "expand independent ranges concurrently")
	fs.IntVar(&cfg.workers, "workers", 0, "goroutine limit for -parallel (0 means GOMAXPROCS)")
	fs.BoolVar(&cfg.verify, "verify", false, "check the hull against every input point")
	fs.BoolVar(&cfg.trace, "trace", false, "log every construction step (implies -debug)")
	fs.BoolVar(&cfg.debug, "debug", false, "debug logging")
	fs.StringVar(&cfg.cpuProfile, "cpuprofile", "", "write a CPU profile to this directory")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.workers < 0 {
		return nil, errors.New("workers must not be negative")
	}
	return cfg, nil
}

func run(cfg *config, stdin io.Reader, stdout io.Writer) error {
	var points []util.Point
	var err error
	if cfg.infile == "" {
		points, err = pointio.ReadPoints(stdin)
	} else {
		points, err = pointio.ReadPointsFromFile(cfg.infile)
	}
	if err != nil {
		return err
	}

	var input []util.Point
	if cfg.verify {
		input = append([]util.Point(nil), points...)
	}

	var opts []hull.QuickHullOption
	if cfg.trace {
		opts = append(opts, hull.WithObserver(hull.NewLoggingObserver(log.StandardLogger())))
	}
	if cfg.workers > 0 {
		opts = append(opts, hull.WithParallelism(cfg.workers))
	}
	q, err := hull.NewQuickHull(points, opts...)
	if err != nil {
		return err
	}

	start := time.Now()
	if cfg.parallel {
		if err := q.CalculateParallel(context.Background()); err != nil {
			return err
		}
	} else {
		q.Calculate()
	}
	lo, hi := util.BoundingBox(points)
	log.Infof("hull of %d points (bounds %v to %v) has %d vertices, took %d ms",
		len(points), lo, hi, q.HullSize(), time.Since(start).Milliseconds())

	if cfg.verify {
		if err := hull.Verify(input, q.Hull()); err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}
		log.Infof("hull verified")
	}

	if cfg.outfile == "" {
		return pointio.WritePoints(stdout, q.Hull())
	}
	return pointio.WritePointsToFile(cfg.outfile, q.Hull())
}

// realMain returns the process exit code so deferred cleanup, including
// flushing the CPU profile, runs before the process exits.
func realMain(args []string, stdin io.Reader, stdout io.Writer) int {
	cfg, err := parseFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 2
	}

	log.SetOutput(os.Stderr)
	if cfg.debug || cfg.trace {
		log.SetLevel(log.DebugLevel)
	}

	if cfg.cpuProfile != "" {
		p := profile.Start(profile.CPUProfile, profile.ProfilePath(cfg.cpuProfile), profile.NoShutdownHook, profile.Quiet)
		defer p.Stop()
	}

	if err := run(cfg, stdin, stdout); err != nil {
		log.Errorf("quickhull: %v", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(realMain(os.Args[1:], os.Stdin, os.Stdout))
}
