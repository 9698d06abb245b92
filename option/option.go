package option

import (
	"strconv"

	"github.com/joshuawatson/rom/utils"
)

// Option is an immutable description of one named construction-time value:
// its type constraint, allowed set, default, and reader exposure. Build it
// with New; every setting is independently optional.
type Option struct {
	name        string
	typ         Predicate
	allow       []any
	defaultKind DefaultEnum
	defaultVal  any
	defaultFn   func(owner any) any
	reader      bool
}

// Setting customizes one aspect of an Option under construction by New.
type Setting func(*Option)

// Type sets the option's type constraint. Unset means accept anything.
func Type(p Predicate) Setting {
	return func(o *Option) { o.typ = p }
}

// Allow restricts the option to the given values. Membership is checked with
// deep equality, so uncomparable values (slices, maps) are safe to allow.
func Allow(values ...any) Setting {
	return func(o *Option) { o.allow = append([]any(nil), values...) }
}

// Default supplies a static default. nil, false, and empty values are honest
// defaults; "no default at all" is tracked by the variant tag, never by nil.
func Default(v any) Setting {
	return func(o *Option) {
		o.defaultKind = DefaultStatic
		o.defaultVal = v
		o.defaultFn = nil
	}
}

// DefaultFrom supplies a default computed from the instance under
// construction. fn runs lazily, at most once per construction, and receives
// the partially-built owner as its sole argument.
func DefaultFrom(fn func(owner any) any) Setting {
	return func(o *Option) {
		o.defaultKind = DefaultComputed
		o.defaultFn = fn
		o.defaultVal = nil
	}
}

// Reader marks the option for per-instance exposure through Host.Reader.
func Reader() Setting {
	return func(o *Option) { o.reader = true }
}

// New builds an immutable Option named name.
func New(name string, settings ...Setting) Option {
	if name == "" {
		panic("option: name cannot be empty")
	}

	o := Option{name: name}
	for _, s := range settings {
		s(&o)
	}

	return o
}

// Name returns the option's unique name within its Definitions.
func (o Option) Name() string { return o.name }

// TypeMatches reports whether value satisfies the declared type constraint.
func (o Option) TypeMatches(value any) bool {
	if o.typ == nil {
		return true
	}

	return o.typ(value)
}

// Allowed reports whether value is a member of the allowed set. An empty set
// places no restriction.
func (o Option) Allowed(value any) bool {
	if len(o.allow) == 0 {
		return true
	}

	return utils.Contains(o.allow, value)
}

// HasDefault reports whether any default, static or computed, was declared.
func (o Option) HasDefault() bool { return o.defaultKind != DefaultNone }

// DefaultKind returns the declared default variant.
func (o Option) DefaultKind() DefaultEnum { return o.defaultKind }

// HasReader reports whether the option is exposed through Host.Reader.
func (o Option) HasReader() bool { return o.reader }

// ResolveDefault returns the static default, or invokes the computed default
// with the instance under construction. Calling it on an option without a
// declared default is a programmer error.
func (o Option) ResolveDefault(owner any) any {
	switch o.defaultKind {
	default:
		panic("option: " + strconv.Quote(o.name) + " has no default to resolve")
	case DefaultStatic:
		return o.defaultVal
	case DefaultComputed:
		return o.defaultFn(owner)
	}
}
