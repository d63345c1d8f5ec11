package ruleset

import (
	"sync"

	"github.com/flier/hashlife/pkg/arena"
	"github.com/flier/hashlife/pkg/arena/swiss"
)

// Table is a compiled 65536-entry rule lookup, as produced by [Rule.Compile].
type Table = []uint16

// Cache memoizes compiled rule tables by rulestring, so loading the same
// rule across many RLE files in one session only pays the 65536-entry
// compile cost once. A zero Cache is not ready to use; call [NewCache].
type Cache struct {
	mu     sync.Mutex
	mem    *arena.Arena
	tables *swiss.Map[string, *Table]
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	mem := &arena.Arena{}
	return &Cache{mem: mem, tables: swiss.NewMap[string, *Table](mem, 8)}
}

// Compile returns the compiled table for r, compiling and caching it under
// r's rulestring if this is the first request for it.
func (c *Cache) Compile(r Rule) *Table {
	key := r.String()

	c.mu.Lock()
	defer c.mu.Unlock()

	if t, ok := c.tables.Get(key); ok {
		return t
	}

	table := Table(r.Compile())
	c.tables.Put(key, &table)

	return &table
}

// Len reports how many distinct rules have been compiled.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.tables.Count()
}
