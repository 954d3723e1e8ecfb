package filehandler

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/woodyhq/woodlog/core"
	"github.com/woodyhq/woodlog/formatter"
	"github.com/woodyhq/woodlog/handler"
)

// Config holds configuration for the daily file handler
type Config struct {
	// Filename is the path to the active log file
	Filename string
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// MaxGenerations is the number of rotated files to retain (default: 30)
	MaxGenerations int
	// ErrorOutput receives rotation and pruning failure reports
	// (default: os.Stderr). Such failures never reach the logging caller.
	ErrorOutput io.Writer
	// Now overrides the clock, for tests (default: time.Now)
	Now func() time.Time
}

// applyDefaults fills in zero-value fields with defaults.
func applyDefaults(cfg *Config) {
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	if cfg.MaxGenerations <= 0 {
		cfg.MaxGenerations = 30
	}
	if cfg.ErrorOutput == nil {
		cfg.ErrorOutput = os.Stderr
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
}

// DailyFileHandler appends formatted lines to a single active file and
// rotates it at the UTC+8 midnight boundary, checked lazily on write.
type DailyFileHandler struct {
	mu              sync.Mutex
	filename        string
	file            *os.File
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	maxGenerations  int
	errorOutput     io.Writer
	now             func() time.Time
	currentDate     string
	stats           *handler.Stats
	closed          bool
}

// New creates a daily file handler, creating the log directory if it
// does not exist yet.
func New(cfg Config) (*DailyFileHandler, error) {
	if cfg.Filename == "" {
		return nil, fmt.Errorf("filehandler: filename is required")
	}
	applyDefaults(&cfg)

	if err := os.MkdirAll(filepath.Dir(cfg.Filename), 0o755); err != nil {
		return nil, fmt.Errorf("filehandler: create log directory: %w", err)
	}

	file, err := os.OpenFile(cfg.Filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("filehandler: open %s: %w", cfg.Filename, err)
	}

	h := &DailyFileHandler{
		filename:       cfg.Filename,
		file:           file,
		formatter:      cfg.Formatter,
		maxGenerations: cfg.MaxGenerations,
		errorOutput:    cfg.ErrorOutput,
		now:            cfg.Now,
		currentDate:    core.DateOf(cfg.Now()),
		stats:          handler.NewStats(),
	}

	// Cache WriterFormatter so the write path is a single Write call
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)

	return h, nil
}

// Handle writes a formatted record to the active file, rotating first
// if the civil date has advanced. The whole path runs under one mutex,
// so lines are never interleaved and rotations never race.
func (h *DailyFileHandler) Handle(r *core.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return os.ErrClosed
	}

	h.rotateIfNeeded()

	if h.file == nil {
		// A previous rotation could not reopen the file; attempt fresh I/O
		file, err := os.OpenFile(h.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			h.stats.IncrementWriteErrors()
			return err
		}
		h.file = file
	}

	var err error
	if h.writerFormatter != nil {
		err = h.writerFormatter.FormatTo(r, h.file)
	} else {
		var data []byte
		data, err = h.formatter.Format(r)
		if err == nil {
			_, err = h.file.Write(data)
		}
	}

	if err != nil {
		h.stats.IncrementWriteErrors()
		return err
	}
	h.stats.IncrementProcessed()
	return nil
}

// rotateIfNeeded rotates when the civil date of "now" has advanced past
// the date the active file was opened under. Rotation failures are
// reported, never propagated: the log call that triggered the check
// still completes. Callers must hold mu.
func (h *DailyFileHandler) rotateIfNeeded() {
	today := core.DateOf(h.now())
	if today == h.currentDate {
		return
	}
	if err := h.rotate(today); err != nil {
		h.reportError(err)
	}
}

// rotate renames the active file with the suffix of the day it covered,
// prunes excess generations, and opens a fresh file. Callers must hold mu.
func (h *DailyFileHandler) rotate(today string) error {
	if h.file != nil {
		// Best effort; a sync or close failure must not block rotation
		h.file.Sync()
		h.file.Close()
		h.file = nil
	}

	rotated := h.filename + "." + h.currentDate
	if err := os.Rename(h.filename, rotated); err != nil {
		// Keep logging into the un-rotated file; the next write retries
		if file, openErr := os.OpenFile(h.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); openErr == nil {
			h.file = file
		}
		return fmt.Errorf("filehandler: rotate %s: %w", h.filename, err)
	}

	h.currentDate = today
	h.prune()

	file, err := os.OpenFile(h.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("filehandler: reopen %s after rotation: %w", h.filename, err)
	}
	h.file = file
	return nil
}

// prune removes rotated generations beyond MaxGenerations, oldest
// first. Only files whose suffix parses as a civil date count as
// generations. Callers must hold mu.
func (h *DailyFileHandler) prune() {
	matches, err := filepath.Glob(h.filename + ".*")
	if err != nil {
		return
	}

	prefix := h.filename + "."
	var generations []string
	for _, match := range matches {
		suffix := strings.TrimPrefix(match, prefix)
		if _, err := time.Parse(core.DateLayout, suffix); err == nil {
			generations = append(generations, match)
		}
	}

	if len(generations) <= h.maxGenerations {
		return
	}

	// ISO date suffixes sort chronologically
	sort.Strings(generations)
	for _, old := range generations[:len(generations)-h.maxGenerations] {
		if err := os.Remove(old); err != nil {
			h.reportError(fmt.Errorf("filehandler: prune %s: %w", old, err))
		}
	}
}

func (h *DailyFileHandler) reportError(err error) {
	fmt.Fprintf(h.errorOutput, "woodlog: %v\n", err)
}

// Stats returns a snapshot of the current statistics
func (h *DailyFileHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close syncs and closes the active file. Subsequent Handle calls
// return os.ErrClosed.
func (h *DailyFileHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	h.closed = true

	if h.file == nil {
		return nil
	}
	if err := h.file.Sync(); err != nil {
		h.file.Close()
		return err
	}
	return h.file.Close()
}
