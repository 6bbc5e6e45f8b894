package core

import (
	"sync"
	"time"
)

// Entry represents one log event. Message holds the raw template;
// Args and Fields are the positional and keyword arguments that the
// formatter interpolates into it.
type Entry struct {
	Time    time.Time
	Logger  string
	Level   Level
	Message string
	Args    []interface{}
	Fields  []Field
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{
			Fields: make([]Field, 0, 8), // Pre-allocate for 8 fields
		}
	},
}

// GetEntry retrieves an Entry from the pool
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	e.Time = time.Now()
	e.Fields = e.Fields[:0]
	e.Args = nil
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	// Re-slice to zero length; GC handles reference cleanup
	e.Fields = e.Fields[:0]
	e.Args = nil
	e.Message = ""
	e.Logger = ""
	entryPool.Put(e)
}
