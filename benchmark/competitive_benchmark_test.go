package benchmark

import (
	"io"
	"log/slog"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/woodyhq/woodlog/filter"
	"github.com/woodyhq/woodlog/formatter"
	"github.com/woodyhq/woodlog/handler/consolehandler"
	"github.com/woodyhq/woodlog/logger"
)

// ---------------------------------------------------------------------------
// Helpers – identical sink for every framework (io.Discard)
// ---------------------------------------------------------------------------

// newWoodlogLogger returns a woodlog logger writing text to io.Discard.
func newWoodlogLogger() *logger.Logger {
	h := consolehandler.New(consolehandler.Config{
		Writer:    io.Discard,
		Formatter: formatter.NewTextFormatter(formatter.Config{}),
	})
	return logger.NewBuilder().
		WithHandler(h).
		WithLevel(logger.DebugLevel).
		Build()
}

// newZapLogger returns a zap.Logger writing console-encoded lines to io.Discard.
func newZapLogger() *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(io.Discard), zap.DebugLevel)
	return zap.New(core)
}

// newSlogLogger returns an slog.Logger writing text to io.Discard.
func newSlogLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// newLogrusLogger returns a logrus.Logger writing text to io.Discard.
func newLogrusLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	l.SetLevel(logrus.DebugLevel)
	return l
}

// newZerologLogger returns a zerolog.Logger writing to io.Discard.
func newZerologLogger() zerolog.Logger {
	return zerolog.New(io.Discard).Level(zerolog.DebugLevel)
}

// ---------------------------------------------------------------------------
// Simple message
// ---------------------------------------------------------------------------

func BenchmarkWoodlog_SimpleMessage(b *testing.B) {
	l := newWoodlogLogger()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info("simple log message")
	}
}

func BenchmarkZap_SimpleMessage(b *testing.B) {
	l := newZapLogger()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info("simple log message")
	}
}

func BenchmarkSlog_SimpleMessage(b *testing.B) {
	l := newSlogLogger()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info("simple log message")
	}
}

func BenchmarkLogrus_SimpleMessage(b *testing.B) {
	l := newLogrusLogger()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info("simple log message")
	}
}

func BenchmarkZerolog_SimpleMessage(b *testing.B) {
	l := newZerologLogger()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info().Msg("simple log message")
	}
}

// ---------------------------------------------------------------------------
// Interpolated message
// ---------------------------------------------------------------------------

func BenchmarkWoodlog_Interpolated(b *testing.B) {
	l := newWoodlogLogger()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Infof("request %d served in %dms", i, 12)
	}
}

func BenchmarkZapSugar_Interpolated(b *testing.B) {
	l := newZapLogger().Sugar()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Infof("request %d served in %dms", i, 12)
	}
}

func BenchmarkLogrus_Interpolated(b *testing.B) {
	l := newLogrusLogger()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Infof("request %d served in %dms", i, 12)
	}
}

// ---------------------------------------------------------------------------
// Message with fields
// ---------------------------------------------------------------------------

func BenchmarkWoodlog_Fields(b *testing.B) {
	l := newWoodlogLogger()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info("request served",
			logger.String("method", "GET"),
			logger.Int("status", 200),
			logger.Duration("elapsed", 12_000_000),
		)
	}
}

func BenchmarkZap_Fields(b *testing.B) {
	l := newZapLogger()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info("request served",
			zap.String("method", "GET"),
			zap.Int("status", 200),
			zap.Duration("elapsed", 12_000_000),
		)
	}
}

func BenchmarkSlog_Fields(b *testing.B) {
	l := newSlogLogger()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info("request served",
			slog.String("method", "GET"),
			slog.Int("status", 200),
			slog.Duration("elapsed", 12_000_000),
		)
	}
}

func BenchmarkZerolog_Fields(b *testing.B) {
	l := newZerologLogger()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info().
			Str("method", "GET").
			Int("status", 200).
			Dur("elapsed", 12_000_000).
			Msg("request served")
	}
}

// ---------------------------------------------------------------------------
// Suppressed message (filter hit)
// ---------------------------------------------------------------------------

func BenchmarkWoodlog_FilteredOut(b *testing.B) {
	f, err := filter.New(nil)
	if err != nil {
		b.Fatal(err)
	}
	h := consolehandler.New(consolehandler.Config{Writer: io.Discard})
	l := logger.NewBuilder().
		WithHandler(h).
		WithLevel(logger.DebugLevel).
		WithFilter(f).
		Build()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info("GET /health")
	}
}

func BenchmarkWoodlog_LevelGated(b *testing.B) {
	h := consolehandler.New(consolehandler.Config{Writer: io.Discard})
	l := logger.NewBuilder().
		WithHandler(h).
		WithLevel(logger.ErrorLevel).
		Build()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Debugf("dropped before interpolation %d", i)
	}
}
