package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"seedforge.dev/internal/config"
	"seedforge.dev/internal/diag"
	"seedforge.dev/internal/output"
	"seedforge.dev/internal/parse"
	"seedforge.dev/internal/search"
)

func main() {
	var (
		tuningPath = flag.String("tuning", "", "path to tuning.yaml (default: <configs>/tuning.yaml, silently skipped if absent)")
		schemaPath = flag.String("tuning_schema", "./configs/tuning.schema.json", "path to the tuning config's json schema")
		configDir  = flag.String("configs", "./configs", "config directory")
		outPath    = flag.String("out", "found_seeds.txt", "path to write the ascending seed list to")
		workers    = flag.Int("workers", 0, "worker count override (0: use tuning.yaml, then NumCPU)")
		tracePath  = flag.String("trace", "", "directory to write a compressed diagnostic trace to (empty disables tracing)")
	)
	flag.Parse()

	logger := log.New(os.Stdout, "[seedcrack] ", log.LstdFlags|log.Lmicroseconds)

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: seedcrack <constraints-file>")
		os.Exit(1)
	}
	constraintsPath := flag.Arg(0)

	tp := *tuningPath
	if tp == "" {
		tp = filepath.Join(*configDir, "tuning.yaml")
	}
	tune := config.Default()
	if _, err := os.Stat(tp); err == nil {
		loaded, err := config.Load(tp, *schemaPath)
		if err != nil {
			logger.Fatalf("load tuning: %v", err)
		}
		tune = loaded
	}

	if *workers > 0 {
		tune.Workers = *workers
	}
	if tune.Workers <= 0 {
		tune.Workers = runtime.NumCPU()
	}

	traceDir := *tracePath
	if traceDir == "" && tune.Trace.Enabled {
		traceDir = tune.Trace.Directory
	}
	runID := diag.RunID()
	trace, err := diag.NewTrace(traceDir, runID)
	if err != nil {
		logger.Fatalf("open trace: %v", err)
	}
	defer trace.Close()

	f, err := os.Open(constraintsPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "open constraints file:", err)
		os.Exit(1)
	}
	result, err := parse.Read(f)
	_ = f.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, "read constraints file:", err)
		os.Exit(1)
	}
	for _, skipped := range result.Skipped {
		logger.Printf("warning: skipping malformed line: %v", skipped)
	}

	if len(result.Constraints) == 0 && !result.HasPillar {
		fmt.Fprintln(os.Stderr, "no valid constraints or pillar seed found in", constraintsPath)
		os.Exit(1)
	}
	if result.HasPillar && len(result.Constraints) == 0 {
		logger.Printf("warning: pillar seed given with no constraints; every pillarseed-derived candidate will be emitted")
	}

	strategy, _ := search.Choose(result.Constraints, result.HasPillar, tune.ReversingAnchorLimit)
	logger.Printf("run=%s strategy=%s constraints=%d workers=%d", runID, strategy, len(result.Constraints), tune.Workers)
	_ = trace.Emit("search_start", fmt.Sprintf("strategy=%s constraints=%d", strategy, len(result.Constraints)))

	progress := diag.NewProgress(os.Stdout, diag.IsInteractive(os.Stdout.Fd()))

	started := time.Now()
	seeds := search.Run(result.Constraints, result.PillarSeed, result.HasPillar, tune.Workers,
		tune.ReversingAnchorLimit, int64(tune.ProgressReportEveryCandidates), progress)
	elapsed := time.Since(started)

	if len(seeds) > tune.OutputBufferCapacity {
		logger.Printf("warning: %d hits exceeds buffer capacity %d; truncating", len(seeds), tune.OutputBufferCapacity)
		sorted := output.Sorted(seeds)
		seeds = sorted[:tune.OutputBufferCapacity]
		_ = trace.Emit("buffer_overflow", fmt.Sprintf("hits=%d capacity=%d", len(sorted), tune.OutputBufferCapacity))
	}

	if err := output.WriteFile(*outPath, seeds); err != nil {
		fmt.Fprintln(os.Stderr, "write output:", err)
		os.Exit(1)
	}

	_ = trace.Emit("search_done", fmt.Sprintf("hits=%d elapsed=%s", len(seeds), elapsed))
	logger.Printf("wrote %d seed(s) to %s", len(output.Sorted(seeds)), *outPath)
	progress.Done()
}
