package cmaptools

import (
	"sort"
	"sync"
)

// The registry maps names to colormaps so colormaps can be picked up by
// name, most usefully as JoinNamed inputs. It is seeded with a few classic
// ramps and is safe for concurrent use.
var (
	registryMu sync.RWMutex
	registry   = map[string]Colormap{}
)

// Register adds a colormap to the registry under its own name, replacing
// any previous entry with that name.
func Register(cm Colormap) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[cm.Name()] = cm
}

// Lookup returns the registered colormap with the given name.
func Lookup(name string) (Colormap, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	cm, ok := registry[name]
	return cm, ok
}

// Names returns the sorted names of all registered colormaps.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	for _, cm := range []Colormap{
		mustPalette("gray", []ColorStop{
			{0, RGB(0, 0, 0)},
			{1, RGB(1, 1, 1)},
		}),
		mustPalette("hot", []ColorStop{
			{0, RGB(0.0416, 0, 0)},
			{0.365, RGB(1, 0, 0)},
			{0.746, RGB(1, 1, 0)},
			{1, RGB(1, 1, 1)},
		}),
		mustPalette("cool", []ColorStop{
			{0, RGB(0, 1, 1)},
			{1, RGB(1, 0, 1)},
		}),
		mustPalette("jet", []ColorStop{
			{0, RGB(0, 0, 0.5)},
			{0.125, RGB(0, 0, 1)},
			{0.375, RGB(0, 1, 1)},
			{0.625, RGB(1, 1, 0)},
			{0.875, RGB(1, 0, 0)},
			{1, RGB(0.5, 0, 0)},
		}),
		mustPalette("seismic", []ColorStop{
			{0, RGB(0, 0, 0.3)},
			{0.25, RGB(0, 0, 1)},
			{0.5, RGB(1, 1, 1)},
			{0.75, RGB(1, 0, 0)},
			{1, RGB(0.5, 0, 0)},
		}),
	} {
		Register(cm)
	}
}

func mustPalette(name string, stops []ColorStop) *Palette {
	p, err := NewPalette(name, stops)
	if err != nil {
		panic(err)
	}
	return p
}
