package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/woodyhq/woodlog/core"
	"github.com/woodyhq/woodlog/filter"
	"github.com/woodyhq/woodlog/formatter"
	"github.com/woodyhq/woodlog/handler"
	"github.com/woodyhq/woodlog/handler/consolehandler"
	"github.com/woodyhq/woodlog/handler/filehandler"
)

// Config describes a named logger to acquire. The zero value selects
// the documented defaults: name "app", directory "logs", DEBUG level,
// health-check filtering enabled with the default patterns.
type Config struct {
	// Name keys the instance in the registry and names the log file
	// (default: "app")
	Name string
	// Dir is the log directory, created recursively if missing
	// (default: "logs")
	Dir string
	// Level is the minimum emitted level (default: DebugLevel)
	Level core.Level
	// DisableHealthCheckFilter turns off suppression of health-check
	// probe lines. Filtering is on by default.
	DisableHealthCheckFilter bool
	// HealthCheckPatterns overrides filter.DefaultHealthCheckPatterns.
	// Ignored when DisableHealthCheckFilter is set.
	HealthCheckPatterns []string
	// ConsoleOutput is the console sink's writer and the destination
	// for rotation-failure reports (default: os.Stderr)
	ConsoleOutput io.Writer
	// Now overrides the rotation clock, for tests (default: time.Now)
	Now func() time.Time
}

// applyConfigDefaults fills in zero-value fields with defaults.
func applyConfigDefaults(cfg *Config) {
	if cfg.Name == "" {
		cfg.Name = "app"
	}
	if cfg.Dir == "" {
		cfg.Dir = "logs"
	}
	if cfg.ConsoleOutput == nil {
		cfg.ConsoleOutput = os.Stderr
	}
}

// Registry is a process-wide named-instance cache. Acquire is its only
// entry point, so one-time sink attachment is enforced in one place.
type Registry struct {
	mu      sync.Mutex
	loggers map[string]*Logger
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{loggers: make(map[string]*Logger)}
}

// Acquire returns the logger registered under cfg.Name, constructing
// it on first use. Repeat calls for the same name return the cached
// instance unchanged and ignore every other Config field; idempotency
// takes precedence over reconfiguration so sinks are never attached
// twice.
//
// Construction creates the log directory, opens the rotating file
// sink at {Dir}/{Name}.log, attaches the console sink sharing the
// same formatter, and installs the health-check filter unless
// disabled. A *filter.ConfigError or an I/O error aborts construction
// and caches nothing.
func (reg *Registry) Acquire(cfg Config) (*Logger, error) {
	applyConfigDefaults(&cfg)

	reg.mu.Lock()
	defer reg.mu.Unlock()

	if l, ok := reg.loggers[cfg.Name]; ok {
		return l, nil
	}

	// Compile the filter first: a bad pattern must not leave a created
	// directory holding an open file handle behind.
	var filters []*filter.ContentFilter
	if !cfg.DisableHealthCheckFilter {
		f, err := filter.New(cfg.HealthCheckPatterns)
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("logger: create log directory %s: %w", cfg.Dir, err)
	}

	// One formatter shared by both sinks
	shared := formatter.NewTextFormatter(formatter.Config{})

	fileSink, err := filehandler.New(filehandler.Config{
		Filename:    filepath.Join(cfg.Dir, cfg.Name+".log"),
		Formatter:   shared,
		ErrorOutput: cfg.ConsoleOutput,
		Now:         cfg.Now,
	})
	if err != nil {
		return nil, err
	}

	consoleSink := consolehandler.New(consolehandler.Config{
		Writer:    cfg.ConsoleOutput,
		Formatter: shared,
	})

	b := NewBuilder().
		WithHandler(handler.NewMultiHandler(fileSink, consoleSink)).
		WithLevel(cfg.Level).
		WithCaller(true)
	for _, f := range filters {
		b.WithFilter(f)
	}

	l := b.Build()
	reg.loggers[cfg.Name] = l
	return l, nil
}

var defaultRegistry = NewRegistry()

// Acquire acquires a logger from the process-wide default registry
func Acquire(cfg Config) (*Logger, error) {
	return defaultRegistry.Acquire(cfg)
}
