// Package builder provides the voter naming schemes used by reports.
package builder

import (
	"fmt"
	"strconv"
)

// IDFn names a voter from its zero-based index. It must be pure.
type IDFn func(idx int) string

// voterNames are the legacy simulator's voter labels, one per letter.
var voterNames = [...]string{
	"Alice", "Bart", "Cindy", "Darin", "Elmer", "Finn", "Greg", "Hank", "Ian", "Jim",
	"Kate", "Linc", "Mary", "Nancy", "Owen", "Peter", "Quinn", "Ross", "Sandy", "Tom",
	"Ursula", "Van", "Wendy", "Xavier", "Yan", "Zach",
}

// DefaultIDFn returns "V" + idx, e.g. 0→"V0".
// Panics if idx < 0.
func DefaultIDFn(idx int) string {
	return SymbolNumberIDFn("V")(idx)
}

// NameIDFn returns a first name for idx in [0,25] ("Alice" ... "Zach") and
// falls back to DefaultIDFn beyond that.
// Panics if idx < 0.
func NameIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("NameIDFn: idx must be ≥ 0, got %d", idx))
	}
	if idx < len(voterNames) {
		return voterNames[idx]
	}

	return DefaultIDFn(idx)
}

// SymbolNumberIDFn returns prefix + decimal index, e.g. "v0", "v1", ...
// The returned IDFn panics if idx < 0.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// WithNames sets the ID scheme to NameIDFn.
func WithNames() BuilderOption {
	return WithIDScheme(NameIDFn)
}

// Names returns the first n voter names under the configured ID scheme.
// Returns nil for n < 1.
func Names(n int, opts ...BuilderOption) []string {
	if n < 1 {
		return nil
	}
	cfg := newBuilderConfig(opts...)
	out := make([]string, n)
	for i := range out {
		out[i] = cfg.idFn(i)
	}

	return out
}
