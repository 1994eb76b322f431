package crc

import "sync"

// tableCache is the process-wide memoization of lookup tables: two mappings
// (bytewise, wordwise) from the exact Config value to a shared immutable
// table, so that any number of Engines constructed with the same
// configuration reuse one allocation. Config is a plain comparable struct
// (no pointers/slices), so it can be used directly as a map key.
//
// Publication happens only after the table is fully built: readers that
// hit the map see a complete, immutable table, never a partially filled
// one.
type tableCache struct {
	mu    sync.Mutex
	byteT map[Config]*byteTable
	wordT map[Config]*wordTable
}

var globalTableCache = newTableCache()

func newTableCache() *tableCache {
	return &tableCache{
		byteT: make(map[Config]*byteTable),
		wordT: make(map[Config]*wordTable),
	}
}

func (c *tableCache) getByteTable(cfg Config, polyInt uint64, refIn bool) *byteTable {
	c.mu.Lock()
	if t, ok := c.byteT[cfg]; ok {
		c.mu.Unlock()
		return t
	}
	c.mu.Unlock()

	t := buildByteTable(polyInt, refIn)

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.byteT[cfg]; ok {
		return existing
	}
	c.byteT[cfg] = t
	return t
}

func (c *tableCache) getWordTable(cfg Config, bt *byteTable, refIn bool) *wordTable {
	c.mu.Lock()
	if t, ok := c.wordT[cfg]; ok {
		c.mu.Unlock()
		return t
	}
	c.mu.Unlock()

	t := buildWordTable(bt, refIn)

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.wordT[cfg]; ok {
		return existing
	}
	c.wordT[cfg] = t
	return t
}
