// Package diag provides the run-scoped diagnostics a search invocation
// emits outside of its terminal output: a per-run id, throughput-aware
// progress reporting, and an optional compressed trace of search events
// for later inspection.
package diag

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
	"github.com/mattn/go-isatty"
	"github.com/ncruces/go-strftime"
)

// RunID is a fresh per-invocation identifier used to correlate stdout
// progress lines with a trace file from the same run.
func RunID() string {
	return uuid.NewString()
}

// Event is one entry in the trace file: a strategy transition, a
// progress checkpoint, or a terminal result.
type Event struct {
	RunID     string `json:"run_id"`
	Timestamp string `json:"ts"`
	Kind      string `json:"kind"`
	Detail    string `json:"detail"`
}

func newEvent(runID, kind, detail string) Event {
	return Event{
		RunID:     runID,
		Timestamp: strftime.Format("%Y-%m-%dT%H:%M:%S%z", time.Now()),
		Kind:      kind,
		Detail:    detail,
	}
}

// Trace is an optional JSONL-over-zstd event sink. A nil *Trace is valid
// and every method on it is a no-op, so call sites don't need to branch
// on whether tracing is enabled.
type Trace struct {
	runID string

	mu  sync.Mutex
	f   *os.File
	enc *zstd.Encoder
	w   *bufio.Writer
}

// NewTrace opens dir/<runID>.jsonl.zst for append, creating dir if needed.
// Pass an empty dir to disable tracing; NewTrace then returns a nil Trace.
func NewTrace(dir, runID string) (*Trace, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	path := filepath.Join(dir, fmt.Sprintf("%s.jsonl.zst", runID))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &Trace{
		runID: runID,
		f:     f,
		enc:   enc,
		w:     bufio.NewWriterSize(enc, 64*1024),
	}, nil
}

func (t *Trace) Emit(kind, detail string) error {
	if t == nil {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	b, err := json.Marshal(newEvent(t.runID, kind, detail))
	if err != nil {
		return err
	}
	if _, err := t.w.Write(b); err != nil {
		return err
	}
	return t.w.WriteByte('\n')
}

func (t *Trace) Close() error {
	if t == nil {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	var err error
	if t.w != nil {
		err = t.w.Flush()
	}
	if t.enc != nil {
		if cerr := t.enc.Close(); err == nil {
			err = cerr
		}
	}
	if t.f != nil {
		if cerr := t.f.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// Progress reports candidate-count throughput to an io.Writer, formatted
// with thousands separators and an estimated rate. Interactive controls
// whether each line overwrites the previous one (a terminal) or is
// appended as its own line (redirected to a file). Report is safe to call
// concurrently, since it is driven directly from search worker goroutines.
type Progress struct {
	w           io.Writer
	interactive bool
	started     time.Time

	mu        sync.Mutex
	lastCount int64
	lastAt    time.Time
}

// NewProgress returns a Progress writing to w. interactive should come
// from IsInteractive(fd) for whichever file descriptor w wraps.
func NewProgress(w io.Writer, interactive bool) *Progress {
	now := time.Now()
	return &Progress{w: w, interactive: interactive, started: now, lastAt: now}
}

// IsInteractive reports whether fd is attached to a terminal, used to
// decide whether progress output should overwrite its previous line.
func IsInteractive(fd uintptr) bool {
	return isatty.IsTerminal(fd)
}

// Report writes one progress line for having verified count candidates so
// far out of total.
func (p *Progress) Report(count, total int64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(p.started)
	delta := count - p.lastCount
	window := now.Sub(p.lastAt)
	rate := float64(0)
	if window > 0 {
		rate = float64(delta) / window.Seconds()
	}
	p.lastCount = count
	p.lastAt = now

	line := fmt.Sprintf("%s / %s candidates (%.0f/s, %s elapsed)",
		humanize.Comma(count), humanize.Comma(total), rate, elapsed.Round(time.Second))
	if p.interactive {
		fmt.Fprintf(p.w, "\r%s", line)
	} else {
		fmt.Fprintln(p.w, line)
	}
}

// Done writes the final elapsed-seconds line the CLI contract requires.
func (p *Progress) Done() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.interactive {
		fmt.Fprintln(p.w)
	}
	fmt.Fprintf(p.w, "done in %.3fs\n", time.Since(p.started).Seconds())
}
