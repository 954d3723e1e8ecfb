// Package consolehandler implements the console sink.
//
// It mirrors every formatted line to a writer (os.Stderr by default)
// with no rotation or retention. A single mutex serializes the
// format-and-write path so concurrent goroutines never interleave
// line content.
package consolehandler
