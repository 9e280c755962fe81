package capability

import (
	"slices"
	"strings"
)

// Extensions is the set of extension names advertised by a driver.
type Extensions map[string]struct{}

// ParseExtensions splits a driver extension string into a set. Names are
// matched as whole space separated tokens, so "GL_EXT_foo" never matches
// inside "GL_EXT_foobar".
func ParseExtensions(s string) Extensions {
	fields := strings.Fields(s)
	exts := make(Extensions, len(fields))
	for _, f := range fields {
		exts[f] = struct{}{}
	}
	return exts
}

// Has reports whether name is advertised.
func (e Extensions) Has(name string) bool {
	_, ok := e[name]
	return ok
}

// Names returns the advertised names in sorted order.
func (e Extensions) Names() []string {
	names := make([]string, 0, len(e))
	for name := range e {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
