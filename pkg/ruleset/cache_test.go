package ruleset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flier/hashlife/pkg/ruleset"
)

func TestCache_CompilesOnce(t *testing.T) {
	c := ruleset.NewCache()

	first := c.Compile(ruleset.B3S23)
	assert.Equal(t, 1, c.Len())

	second := c.Compile(ruleset.B3S23)
	assert.Equal(t, 1, c.Len(), "a second request for the same rule must not recompile")
	assert.Same(t, first, second)
}

func TestCache_DistinctRulesGetDistinctTables(t *testing.T) {
	c := ruleset.NewCache()

	highlife := ruleset.New(1<<3|1<<6, 1<<2|1<<3)

	b3s23 := c.Compile(ruleset.B3S23)
	hl := c.Compile(highlife)

	assert.Equal(t, 2, c.Len())
	assert.NotSame(t, b3s23, hl)
}
