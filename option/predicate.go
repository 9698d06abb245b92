package option

import (
	"reflect"
	"slices"

	"github.com/joshuawatson/rom/utils"
)

// Predicate reports whether a construction-time value satisfies an option's
// type constraint. A nil Predicate accepts anything.
type Predicate func(value any) bool

// Anything returns a predicate accepting every value, nil included. It is
// the behavior of an option declared without Type.
func Anything() Predicate {
	return func(any) bool { return true }
}

// TypeOf returns a predicate accepting values whose dynamic type is exactly T.
// Named types do not match their underlying type; use KindOf for that.
func TypeOf[T any]() Predicate {
	want := reflect.TypeOf((*T)(nil)).Elem()

	return func(value any) bool {
		return reflect.TypeOf(value) == want
	}
}

// KindOf returns a predicate accepting values whose reflect kind is one of
// kinds. nil has no kind and is rejected.
func KindOf(kinds ...reflect.Kind) Predicate {
	return func(value any) bool {
		if value == nil {
			return false
		}

		return slices.Contains(kinds, reflect.TypeOf(value).Kind())
	}
}

// Text accepts string-kinded values, named string types included.
func Text() Predicate { return KindOf(reflect.String) }

// Boolean accepts bool-kinded values.
func Boolean() Predicate { return KindOf(reflect.Bool) }

// Number accepts every integer, unsigned, and float kind.
func Number() Predicate {
	return func(value any) bool {
		if value == nil {
			return false
		}

		switch reflect.TypeOf(value).Kind() {
		default:
			return false
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64:
			return true
		}
	}
}

// InRange accepts values of type T within [min, max], both inclusive.
func InRange[T utils.Number](min, max T) Predicate {
	return func(value any) bool {
		v, ok := value.(T)

		return ok && utils.IsInRange(min, v, max)
	}
}
