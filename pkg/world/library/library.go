// Package library holds a handful of named built-in RLE patterns so the
// terminal driver can offer a pattern picker without shipping separate
// .rle files alongside the binary.
package library

import (
	"github.com/flier/hashlife/pkg/arena"
	"github.com/flier/hashlife/pkg/arena/art"
)

// builtins is populated by init below; its RLE payloads are the same ones
// used in the package's own tests and mirror the canonical examples spec.md
// itself names (the glider and the Acorn of scenarios B and F).
var (
	mem  = &arena.Arena{}
	tree = &art.Tree[[]byte]{}
)

func register(name, rle string) {
	tree.Insert(mem, []byte(name), []byte(rle))
}

func init() {
	register("glider", "#N Glider\n#O Richard K. Guy\nx = 3, y = 3, rule = B3/S23\nbob$2bo$3o!\n")
	register("blinker", "#N Blinker\nx = 3, y = 1, rule = B3/S23\n3o!\n")
	register("block", "#N Block\nx = 2, y = 2, rule = B3/S23\n2o$2o!\n")
	register("acorn", "#N Acorn\n#O Charles Corderman\nx = 7, y = 3, rule = B3/S23\nbo5b$3bo3b$2o2b3o!\n")
}

// Lookup returns the named builtin pattern's RLE source, and whether it
// was found.
func Lookup(name string) ([]byte, bool) {
	v := tree.Search([]byte(name))
	if v == nil {
		return nil, false
	}
	return *v, true
}

// CompleteFromPrefix returns every builtin pattern name that starts with
// prefix, in tree order.
func CompleteFromPrefix(prefix string) []string {
	var names []string
	tree.VisitPrefix([]byte(prefix), func(key []byte, _ *[]byte) bool {
		names = append(names, string(key))
		return false
	})
	return names
}

// Names returns every builtin pattern name, in tree order.
func Names() []string {
	return CompleteFromPrefix("")
}
