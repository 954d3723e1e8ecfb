package core

import (
	"fmt"
	"strconv"
	"time"
)

// FieldType represents the type of a field value. Only the kinds the
// text line renders distinctly exist; integers of every width collapse
// into Int64Type.
type FieldType uint8

const (
	StringType FieldType = iota
	Int64Type
	Float64Type
	BoolType
	DurationType
	ErrorType
	AnyType
)

// Field represents a key-value pair appended after the log message.
// Values are encoded into the fixed-size numeric fields wherever
// possible so common types never escape to the heap.
type Field struct {
	Key     string
	Type    FieldType
	Int64   int64
	Float64 float64
	Str     string
	Any     interface{}
}

// AppendValue appends the rendered value to buf and returns the
// extended buffer, the same append discipline formatters use for
// timestamps. Only AnyType allocates.
func (f Field) AppendValue(buf []byte) []byte {
	switch f.Type {
	case StringType, ErrorType:
		return append(buf, f.Str...)
	case Int64Type:
		return strconv.AppendInt(buf, f.Int64, 10)
	case Float64Type:
		return strconv.AppendFloat(buf, f.Float64, 'f', -1, 64)
	case BoolType:
		return strconv.AppendBool(buf, f.Int64 == 1)
	case DurationType:
		return append(buf, time.Duration(f.Int64).String()...)
	case AnyType:
		return fmt.Appendf(buf, "%v", f.Any)
	default:
		return buf
	}
}
