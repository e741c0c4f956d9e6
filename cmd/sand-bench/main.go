package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"sand-ca/internal/config"
	"sand-ca/internal/logging"
	"sand-ca/internal/sand"

	"github.com/davecgh/go-spew/spew"
)

func main() {
	frames := flag.Int("frames", 600, "frames to simulate per run")
	settle := flag.Int("settle", 60, "stop a run after this many quiet frames (0 disables)")
	seeds := flag.Int("seeds", 8, "number of seeds to run")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel runs")
	chunks := flag.String("chunks", "0,5,10,20,40", "comma-separated chunk sizes to compare")
	dump := flag.Bool("dump", false, "dump raw results")
	file := flag.String("config", "", "YAML, TOML or JSON settings file")
	logLevel := flag.String("log-level", "info", "log level")
	var overrides config.KVList
	flag.Var(&overrides, "set", "simulation option in key=value form (repeatable)")
	flag.Parse()

	closer, err := logging.Setup(logging.Options{Level: *logLevel})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer closer.Close()

	set, err := config.ParseOverrides(overrides)
	if err != nil {
		logging.Fatalf("%v", err)
	}
	settings, err := config.Load(config.Sources{EnvFile: ".env", File: *file, Overrides: set})
	if err != nil {
		logging.Fatalf("config: %v", err)
	}
	base := settings.SimConfig()
	sizes, err := parseSizes(*chunks)
	if err != nil {
		logging.Fatalf("chunks: %v", err)
	}

	strokes := sand.DefaultStrokes(base.Width, base.Height)
	seedList := make([]int64, *seeds)
	for i := range seedList {
		seedList[i] = base.Seed + int64(i)
	}

	fmt.Printf("Running %d seeds on %dx%d (%d workers, %d frames)\n", len(seedList), base.Width, base.Height, *workers, *frames)
	start := time.Now()
	results := sand.RunSeeds(base, seedList, strokes, *frames, *settle, *workers)
	fmt.Printf("elapsed %s\n", time.Since(start).Round(time.Millisecond))
	for _, res := range results {
		fmt.Printf("seed=%d frames=%d settled=%d peakActive=%d occupied=%d moves=%d destroys=%d rejected=%d\n",
			res.Seed, res.Frames, res.SettledAt, res.PeakActive, res.FinalOccupied, res.Totals.Moves, res.Totals.Destroys, res.Rejected)
	}

	fmt.Printf("\nChunk sweep over %v:\n", sizes)
	start = time.Now()
	records := sand.ChunkSweep(base, sizes, strokes, *frames, *workers)
	sorted := append([]sand.ChunkSweepRecord(nil), records...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Result.Totals.Visited < sorted[j].Result.Totals.Visited })
	for i, rec := range sorted {
		fmt.Printf("%2d) chunk=%d visited=%d moves=%d peakActive=%d\n",
			i+1, rec.ChunkSize, rec.Result.Totals.Visited, rec.Result.Totals.Moves, rec.Result.PeakActive)
	}
	fmt.Printf("elapsed %s\n", time.Since(start).Round(time.Millisecond))

	if *dump {
		spew.Dump(base, results, records)
	}
}

func parseSizes(list string) ([]int, error) {
	var sizes []int
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid chunk size %q", part)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}
