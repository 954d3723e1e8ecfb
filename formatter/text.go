package formatter

import (
	"bytes"
	"io"

	"github.com/woodyhq/woodlog/core"
)

// TextFormatter renders records as "timestamp - LEVEL - function - message"
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	return &TextFormatter{Config: cfg}
}

// Format formats a record as text
func (f *TextFormatter) Format(r *core.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(r, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats a record and writes it directly to the writer
func (f *TextFormatter) FormatTo(r *core.Record, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(r, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// pre-formatted level separators to avoid multiple WriteString calls
var levelSeparators = [...]string{
	core.DebugLevel:    " - DEBUG - ",
	core.InfoLevel:     " - INFO - ",
	core.WarnLevel:     " - WARNING - ",
	core.ErrorLevel:    " - ERROR - ",
	core.CriticalLevel: " - CRITICAL - ",
}

// formatToBuffer writes the formatted record into the given buffer
func (f *TextFormatter) formatToBuffer(r *core.Record, buf *bytes.Buffer) {
	// Timestamp - append directly to avoid string allocation
	if f.TimestampFormat != "" {
		buf.WriteString(core.RenderTime(r.Time, f.TimestampFormat))
	} else {
		buf.Write(core.AppendTime(buf.AvailableBuffer(), r.Time))
	}

	// Level - use pre-formatted separator
	if int(r.Level) < len(levelSeparators) && r.Level >= 0 {
		buf.WriteString(levelSeparators[r.Level])
	} else {
		buf.WriteString(" - UNKNOWN - ")
	}

	// Origin function
	buf.WriteString(r.Function)
	buf.WriteString(" - ")

	// Message
	buf.WriteString(r.Message)

	// Fields
	for _, field := range r.Fields {
		buf.WriteByte(' ')
		buf.WriteString(field.Key)
		buf.WriteByte('=')
		buf.Write(field.AppendValue(buf.AvailableBuffer()))
	}

	buf.WriteByte('\n')
}
