// Package filehandler implements the rotating on-disk sink.
//
// A DailyFileHandler appends formatted lines to a single active file
// and rotates it when the civil date (in the fixed UTC+8 offset, see
// core) advances past the date the file was opened under. Rotation is
// decided lazily on the write path — there is no background timer —
// so failure and ordering behavior stay deterministic: a write either
// lands in the old day's file or triggers exactly one rotation first.
//
// On rotation the just-closed file is renamed to
//
//	{name}.log.{YYYY-MM-DD}
//
// where the suffix is the day the file covered, and generations beyond
// the retention count are pruned oldest-first. A failed rotation is
// reported to the configured error writer and never reaches the
// logging caller; the handler reopens the original file so the
// application keeps logging.
package filehandler
