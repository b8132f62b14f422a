package searcher

import (
	"fmt"
	"sync/atomic"

	"othello/game"
)

// CacheKeying decides which parts of a search node identify a cache entry.
type CacheKeying int

const (
	// KeyContext keys entries on the board, the side to move, the maximizing
	// color and the remaining depth. Alpha-beta only stores exact values.
	KeyContext CacheKeying = iota
	// KeyBoard keys entries on the board alone and stores every expanded node,
	// whatever depth or window it was searched with.
	KeyBoard
)

func ParseCacheKeying(name string) (CacheKeying, error) {
	switch name {
	case "context", "":
		return KeyContext, nil
	case "board":
		return KeyBoard, nil
	}
	return KeyContext, fmt.Errorf("unknown cache keying %q: want context or board", name)
}

func (k CacheKeying) String() string {
	if k == KeyBoard {
		return "board"
	}
	return "context"
}

type CacheKey struct {
	Board  game.Board
	ToMove game.Player
	Color  game.Player
	Depth  int
}

// TranspositionCache maps search nodes to previously computed utilities. It
// grows without bound until Reset and is not safe for concurrent use; each
// Searcher owns one.
type TranspositionCache struct {
	entries map[CacheKey]Utility
	lookups atomic.Uint64
	hits    atomic.Uint64
	stores  atomic.Uint64
}

func NewTranspositionCache() *TranspositionCache {
	return &TranspositionCache{entries: make(map[CacheKey]Utility)}
}

func (c *TranspositionCache) Lookup(key CacheKey) (Utility, bool) {
	c.lookups.Add(1)
	utility, ok := c.entries[key]
	if ok {
		c.hits.Add(1)
	}
	return utility, ok
}

// Store overwrites any previous entry for key.
func (c *TranspositionCache) Store(key CacheKey, utility Utility) {
	c.stores.Add(1)
	c.entries[key] = utility
}

func (c *TranspositionCache) Len() int {
	return len(c.entries)
}

func (c *TranspositionCache) Reset() {
	c.entries = make(map[CacheKey]Utility)
	c.lookups.Store(0)
	c.hits.Store(0)
	c.stores.Store(0)
}

// Stats returns the number of lookups, hits and stores since the last Reset.
func (c *TranspositionCache) Stats() (lookups, hits, stores uint64) {
	return c.lookups.Load(), c.hits.Load(), c.stores.Load()
}

func newCacheKey(keying CacheKeying, board game.Board, toMove, color game.Player, limit int) CacheKey {
	if keying == KeyBoard {
		return CacheKey{Board: board}
	}
	if limit < 0 { // every unlimited search is the same search
		limit = -1
	}
	return CacheKey{Board: board, ToMove: toMove, Color: color, Depth: limit}
}
