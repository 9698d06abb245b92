// Package registry keys option definitions by the participating struct type.
//
// Registration happens while types are being declared, typically from
// package-level vars, and the registry is read-many afterwards. Deriving a
// subtype clones its base's definitions once, so each type's option set
// evolves independently of its ancestors and siblings.
package registry

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/joshuawatson/rom/option"
)

// ErrUnregisteredType is returned by Construct for owners whose type never
// declared an option set.
var ErrUnregisteredType = errors.New("type has no registered option definitions")

var (
	mu   sync.RWMutex
	defs = map[reflect.Type]*option.Definitions{}
)

// Register declares T's option set and returns its Definitions. It must run
// before any T is constructed. Registering the same type twice is a
// programmer error.
func Register[T any](opts ...option.Option) *option.Definitions {
	return register(reflect.TypeOf((*T)(nil)).Elem(), option.NewDefinitions(opts...))
}

// Derive declares Sub's option set by cloning Base's and defining extra on
// the clone only, so additions and overrides never reach Base or its other
// subtypes. Sub must embed Base; embedding is the subtype relation here.
func Derive[Base, Sub any](extra ...option.Option) *option.Definitions {
	base := reflect.TypeOf((*Base)(nil)).Elem()
	sub := reflect.TypeOf((*Sub)(nil)).Elem()

	mu.RLock()
	parent, ok := defs[base]
	mu.RUnlock()

	if !ok {
		panic(fmt.Sprintf("registry: cannot derive %v from unregistered %v", sub, base))
	}

	if !embeds(sub, base) {
		panic(fmt.Sprintf("registry: %v does not embed %v", sub, base))
	}

	d := parent.Clone()
	for _, o := range extra {
		d.Define(o)
	}

	return register(sub, d)
}

func register(t reflect.Type, d *option.Definitions) *option.Definitions {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := defs[t]; exists {
		panic(fmt.Sprintf("registry: %v is already registered", t))
	}

	defs[t] = d

	return d
}

// For returns T's Definitions, if registered.
func For[T any]() (*option.Definitions, bool) {
	return ForType(reflect.TypeOf((*T)(nil)).Elem())
}

// ForType returns the Definitions registered for t, if any.
func ForType(t reflect.Type) (*option.Definitions, bool) {
	mu.RLock()
	defer mu.RUnlock()

	d, ok := defs[t]

	return d, ok
}

// Construct resolves owner's dynamic type to its registered Definitions and
// runs the construction entry point with raw (nil stands for empty).
func Construct(owner option.Owner, raw map[string]any) error {
	t := reflect.TypeOf(owner)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	d, ok := ForType(t)
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnregisteredType, t)
	}

	return d.Construct(owner, raw)
}

// embeds reports whether sub has base as an anonymous field, directly or
// through a chain of embedded structs.
func embeds(sub, base reflect.Type) bool {
	if sub.Kind() != reflect.Struct {
		return false
	}

	for i := 0; i < sub.NumField(); i++ {
		f := sub.Field(i)
		if !f.Anonymous {
			continue
		}

		ft := f.Type
		if ft.Kind() == reflect.Ptr {
			ft = ft.Elem()
		}

		if ft == base || embeds(ft, base) {
			return true
		}
	}

	return false
}
