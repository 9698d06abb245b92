package utils

import "reflect"

// Number constrains to the built-in numeric types.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// IsInRange checks if a value is within the specified range, both inclusive.
func IsInRange[T Number](min T, value T, max T) bool {
	return min <= value && value <= max
}

// Contains reports whether v is deep-equal to an element of s. Deep equality
// keeps uncomparable elements (slices, maps) from panicking at check time.
func Contains[S ~[]E, E any](s S, v any) bool {
	for i := range s {
		if reflect.DeepEqual(s[i], v) {
			return true
		}
	}

	return false
}
