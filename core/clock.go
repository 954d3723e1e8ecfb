package core

import "time"

// TimeZone is the fixed UTC+8 offset every timestamp and rotation
// decision is made in. It is deliberately not derived from the host
// environment so that output is deterministic across deployments.
var TimeZone = time.FixedZone("UTC+8", 8*60*60)

// DateLayout is the civil date form used both for rotated-file
// suffixes and for the rotation trigger, so filenames always align
// with the dates displayed inside the file.
const DateLayout = "2006-01-02"

// defaultTimeLayout renders the date-time part of the default
// timestamp; the millisecond part is appended manually because the
// separator is a comma and the value is truncated, not rounded.
const defaultTimeLayout = "2006-01-02 15:04:05"

// RenderTime renders t in the fixed UTC+8 offset. A non-empty layout
// is applied as a standard time layout. An empty layout produces
// "2006-01-02 15:04:05,mmm" with truncated milliseconds.
func RenderTime(t time.Time, layout string) string {
	if layout != "" {
		return t.In(TimeZone).Format(layout)
	}
	return string(AppendTime(make([]byte, 0, 24), t))
}

// AppendTime appends the default timestamp rendering of t to buf and
// returns the extended buffer. Used by formatters to avoid a string
// allocation per record.
func AppendTime(buf []byte, t time.Time) []byte {
	t = t.In(TimeZone)
	buf = t.AppendFormat(buf, defaultTimeLayout)
	ms := t.Nanosecond() / int(time.Millisecond)
	buf = append(buf, ',', byte('0'+ms/100), byte('0'+ms/10%10), byte('0'+ms%10))
	return buf
}

// DateOf returns the civil date of t in the fixed UTC+8 offset.
func DateOf(t time.Time) string {
	return t.In(TimeZone).Format(DateLayout)
}
