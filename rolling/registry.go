package rolling

import (
	"fmt"
	"sort"
	"strings"

	rollinghash "github.com/chmduquesne/rollinghash"
	"github.com/chmduquesne/rollinghash/adler32"
	"github.com/chmduquesne/rollinghash/buzhash32"
)

// Factory creates a fresh, empty rolling hash.
type Factory func() rollinghash.Hash32

// Default is the name of the additive hash.
const Default = "sum"

var factories = map[string]Factory{
	Default:     func() rollinghash.Hash32 { return NewSum32() },
	"adler32":   func() rollinghash.Hash32 { return adler32.New() },
	"buzhash32": func() rollinghash.Hash32 { return buzhash32.New() },
}

// Lookup returns the factory registered under name. An empty name selects
// Default.
func Lookup(name string) (Factory, error) {
	if name == "" {
		name = Default
	}
	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown rolling hash %q, available: %s", name, strings.Join(Names(), ", "))
	}
	return f, nil
}

// Names lists the registered hashes in sorted order.
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
