package option

import "maps"

// Owner is the binding surface Process and Construct write through. Its
// methods are unexported, so embedding Host is the only way to satisfy it.
type Owner interface {
	bindReader(name string, value any)
	storeResolved(values map[string]any)
}

// Host carries the per-instance state of a participating type: the frozen
// resolved option mapping and the reader slots. Embed it by value:
//
//	type User struct {
//		option.Host
//	}
type Host struct {
	resolved map[string]any
	readers  map[string]any
}

var _ Owner = (*Host)(nil)

func (h *Host) bindReader(name string, value any) {
	if h.readers == nil {
		h.readers = make(map[string]any)
	}

	h.readers[name] = value
}

func (h *Host) storeResolved(values map[string]any) {
	h.resolved = values
}

// Option returns the resolved value for name from the read-only mapping.
func (h *Host) Option(name string) (any, bool) {
	v, ok := h.resolved[name]

	return v, ok
}

// Options returns a copy of the resolved mapping; mutating the copy does not
// touch the instance.
func (h *Host) Options() map[string]any {
	out := maps.Clone(h.resolved)
	if out == nil {
		out = make(map[string]any)
	}

	return out
}

// Reader returns the bound value of a reader-exposed option. An option that
// resolved to no value, or was never marked with Reader, reads as Undefined.
func (h *Host) Reader(name string) any {
	v, ok := h.readers[name]
	if !ok {
		return Undefined
	}

	return v
}
