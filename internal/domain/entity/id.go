package entity

import (
	"sync"
	"time"
)

var (
	idMu     sync.Mutex
	lastID   int64
)

// NewID returns a millisecond-resolution numeric identifier. Identifiers are
// strictly increasing within the process so two records created in the same
// millisecond never collide.
func NewID() int64 {
	idMu.Lock()
	defer idMu.Unlock()

	id := time.Now().UnixMilli()
	if id <= lastID {
		id = lastID + 1
	}
	lastID = id
	return id
}
