// Package dispatch runs external calculation jobs through a bounded worker
// pool and tracks the subprocesses they spawn so a termination signal can
// clean them up.
package dispatch

import (
	"io"
	"log"
	"sync"
)

// Runner is a single external calculation job.
type Runner interface {
	// Identifier names the run for logging and result reporting.
	Identifier() string
	// Execute performs the run, blocking until it finishes.
	Execute() error
}

// Result reports the outcome of one run.
type Result struct {
	Name string
	Err  error
}

// Ok reports whether the run completed successfully.
func (r Result) Ok() bool {
	return r.Err == nil
}

// RunAll executes every run through a pool of at most workers goroutines.
// Results arrive in completion order; every submitted run yields exactly
// one Result before RunAll returns. Runs have no timeout: a hung run
// blocks its worker until the process is signalled.
func RunAll(runs []Runner, workers int, logger *log.Logger) []Result {
	logger = ensureLogger(logger)
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan Runner)
	results := make(chan Result)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for run := range jobs {
				logger.Printf("starting run %s", run.Identifier())
				results <- Result{Name: run.Identifier(), Err: run.Execute()}
			}
		}()
	}

	go func() {
		for _, run := range runs {
			jobs <- run
		}
		close(jobs)
	}()
	go func() {
		wg.Wait()
		close(results)
	}()

	out := make([]Result, 0, len(runs))
	for res := range results {
		out = append(out, res)
	}
	return out
}

func ensureLogger(l *log.Logger) *log.Logger {
	if l == nil {
		return log.New(io.Discard, "", 0)
	}
	return l
}
