package pipeline

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Event is a progress or terminal message published by the batch worker.
// Events arrive in enqueue order: one Progress before each file, then
// exactly one Complete or BatchError.
type Event interface {
	event()
}

// Progress announces that the worker is about to convert one file.
type Progress struct {
	Index int // zero-based position in the file list
	Total int
	Path  string
}

// Complete is the terminal event of a batch that ran to its end (or was
// cancelled between files).
type Complete struct {
	Report Report
}

// BatchError is the terminal event of a batch that failed as a whole, for a
// reason not attributable to one file. The batch halts.
type BatchError struct {
	Err error
}

func (Progress) event()   {}
func (Complete) event()   {}
func (BatchError) event() {}

// Result records the outcome of one file's conversion.
type Result struct {
	Input  string
	Output string // populated on success
	Err    error  // *Error on failure, nil on success
}

// Report aggregates a finished batch.
type Report struct {
	Total     int
	Succeeded int
	Results   []Result
	Cancelled bool
	Elapsed   time.Duration
}

// Failed returns the results that carry an error, in file-list order.
func (r Report) Failed() []Result {
	var failed []Result
	for _, res := range r.Results {
		if res.Err != nil {
			failed = append(failed, res)
		}
	}
	return failed
}

// Worker executes the pipeline for a list of files strictly sequentially on
// a single goroutine and publishes immutable events to a channel. The file
// list and settings are read-only once the batch starts.
type Worker struct {
	conv *Converter
	log  *zap.Logger
}

// NewWorker creates a batch worker. log may be nil.
func NewWorker(conv *Converter, log *zap.Logger) *Worker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Worker{conv: conv, log: log}
}

// Run starts the batch in a background goroutine and returns its event
// channel. The channel is buffered to hold every event of the batch, so the
// worker never blocks on a slow consumer; it is closed after the terminal
// event. Per-file failures never abort the batch. Cancellation via ctx is
// cooperative and checked between files, never mid-file.
func (w *Worker) Run(ctx context.Context, files []string, s Settings) <-chan Event {
	events := make(chan Event, len(files)+1)

	go func() {
		defer close(events)
		defer func() {
			if r := recover(); r != nil {
				w.log.Error("batch worker panic", zap.Any("panic", r))
				events <- BatchError{Err: fmt.Errorf("batch worker: %v", r)}
			}
		}()

		start := time.Now()
		report := Report{
			Total:   len(files),
			Results: make([]Result, 0, len(files)),
		}

		for i, file := range files {
			if ctx.Err() != nil {
				report.Cancelled = true
				w.log.Warn("batch cancelled",
					zap.Int("processed", i), zap.Int("total", len(files)))
				break
			}

			events <- Progress{Index: i, Total: len(files), Path: file}

			out, err := w.conv.Convert(file, s)
			if err != nil {
				w.log.Error("conversion failed",
					zap.String("file", file), zap.Error(err))
				report.Results = append(report.Results, Result{Input: file, Err: err})
				continue
			}
			report.Succeeded++
			report.Results = append(report.Results, Result{Input: file, Output: out})
		}

		report.Elapsed = time.Since(start)
		events <- Complete{Report: report}
	}()

	return events
}
