package core

import (
	"runtime"
	"strings"
	"sync"
	"time"
)

// Record represents a single log event with all its metadata
type Record struct {
	Time     time.Time
	Level    Level
	Message  string
	Function string
	Fields   []Field
}

// recordPool is a pool of Record objects to reduce allocations
var recordPool = sync.Pool{
	New: func() interface{} {
		return &Record{
			Fields: make([]Field, 0, 8), // Pre-allocate for 8 fields
		}
	},
}

// GetRecord retrieves a Record from the pool
func GetRecord() *Record {
	r := recordPool.Get().(*Record)
	r.Time = time.Now()
	r.Fields = r.Fields[:0]
	r.Function = ""
	return r
}

// PutRecord returns a Record to the pool
func PutRecord(r *Record) {
	if r == nil {
		return
	}
	// Re-slice to zero length; GC handles reference cleanup
	r.Fields = r.Fields[:0]
	r.Message = ""
	r.Function = ""
	recordPool.Put(r)
}

// CallerFunction returns the bare name of the calling function, skip
// frames above the caller of CallerFunction itself. The package path
// qualifier is stripped so that rendered lines carry "handleRequest"
// rather than "github.com/acme/svc.handleRequest".
func CallerFunction(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}

	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return ""
	}

	name := fn.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
