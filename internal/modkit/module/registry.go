package module

import (
	"slices"
	"sync"
)

// process wide registry of mounted modules and their ports, filled during bootstrap
var (
	mu  sync.RWMutex
	reg = map[string]any{}
)

// Register stores a port set under a module name, replacing any previous entry
func Register(name string, ports any) {
	mu.Lock()
	reg[name] = ports
	mu.Unlock()
}

// Lookup finds a value implementing T in the port set registered under name
// like PortsOf, the set itself is checked before its exported fields
func Lookup[T any](name string) (T, bool) {
	mu.RLock()
	v := reg[name]
	mu.RUnlock()
	return portIn[T](v)
}

// Names lists registered module names in sorted order
func Names() []string {
	mu.RLock()
	out := make([]string, 0, len(reg))
	for k := range reg {
		out = append(out, k)
	}
	mu.RUnlock()
	slices.Sort(out)
	return out
}

// Reset clears the registry, tests only
func Reset() {
	mu.Lock()
	reg = map[string]any{}
	mu.Unlock()
}
