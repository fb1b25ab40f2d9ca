package backend

import (
	"fmt"
	"sort"
	"sync"
)

// Well-known target names.
const (
	TargetRaster = "raster"
	TargetRecord = "record"
	TargetTerm   = "term"
)

// Factory creates a target for a drawing area of width×height pixels.
type Factory func(width, height int) Target

// registry holds registered targets.
var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
	// Priority order for Default (first available wins).
	targetPriority = []string{TargetRaster, TargetRecord, TargetTerm}
)

// Register registers a target factory with the given name.
// This is typically called from init() functions in target packages.
// If a target with the same name is already registered, it is replaced.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	factories[name] = factory
}

// Unregister removes a target from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// Available returns the sorted names of registered targets.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a target with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[name]
	return ok
}

// New creates a target by name for a width×height drawing area.
// The error wraps ErrUnknownTarget and hints at a forgotten import.
func New(name string, width, height int) (Target, error) {
	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q (forgotten import?)", ErrUnknownTarget, name)
	}
	return factory(width, height), nil
}

// Default creates the best available target based on priority.
// Priority order: raster > record > term, then any other registered target.
func Default(width, height int) (Target, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range targetPriority {
		if factory, ok := factories[name]; ok {
			return factory(width, height), nil
		}
	}

	// Fallback: first registered name in sorted order.
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	if len(names) == 0 {
		return nil, ErrNoTarget
	}
	sort.Strings(names)
	return factories[names[0]](width, height), nil
}
