package formatter

import (
	"bytes"
	"testing"
	"time"

	"github.com/woodyhq/woodlog/core"
)

func TestTextFormatter_LineShape(t *testing.T) {
	f := NewTextFormatter(Config{})

	r := &core.Record{
		// 03:04:05.006 UTC renders as 11:04:05,006 in UTC+8
		Time:     time.Date(2026, 1, 2, 3, 4, 5, 6_000_000, time.UTC),
		Level:    core.InfoLevel,
		Function: "handleRequest",
		Message:  "request served",
	}

	result, err := f.Format(r)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "2026-01-02 11:04:05,006 - INFO - handleRequest - request served\n"
	if string(result) != want {
		t.Errorf("Format() = %q, want %q", result, want)
	}
}

func TestTextFormatter_Fields(t *testing.T) {
	f := NewTextFormatter(Config{})

	r := &core.Record{
		Time:     time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Level:    core.WarnLevel,
		Function: "retry",
		Message:  "backing off",
		Fields: []core.Field{
			{Key: "attempt", Type: core.Int64Type, Int64: 3},
			{Key: "reason", Type: core.StringType, Str: "timeout"},
		},
	}

	result, err := f.Format(r)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "2026-01-02 11:04:05,000 - WARNING - retry - backing off attempt=3 reason=timeout\n"
	if string(result) != want {
		t.Errorf("Format() = %q, want %q", result, want)
	}
}

func TestTextFormatter_CustomTimestamp(t *testing.T) {
	f := NewTextFormatter(Config{TimestampFormat: "2006/01/02 15:04:05"})

	r := &core.Record{
		Time:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Level:   core.ErrorLevel,
		Message: "boom",
	}

	result, err := f.Format(r)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "2026/01/02 11:04:05 - ERROR -  - boom\n"
	if string(result) != want {
		t.Errorf("Format() = %q, want %q", result, want)
	}
}

func TestTextFormatter_FormatTo(t *testing.T) {
	f := NewTextFormatter(Config{})

	r := &core.Record{
		Time:     time.Date(2026, 1, 2, 3, 4, 5, 499_600_000, time.UTC),
		Level:    core.CriticalLevel,
		Function: "shutdown",
		Message:  "disk gone",
	}

	var buf bytes.Buffer
	if err := f.FormatTo(r, &buf); err != nil {
		t.Fatalf("FormatTo() error = %v", err)
	}

	// milliseconds truncated, not rounded
	want := "2026-01-02 11:04:05,499 - CRITICAL - shutdown - disk gone\n"
	if buf.String() != want {
		t.Errorf("FormatTo() wrote %q, want %q", buf.String(), want)
	}
}
