package option

import (
	"fmt"
	"maps"
	"slices"
)

// Definitions is the ordered option registry owned by one participating type.
// It is populated while the type is being declared and must not be mutated
// once instances are constructed; many goroutines may then process against it
// concurrently.
type Definitions struct {
	names  []string
	byName map[string]Option
}

// NewDefinitions returns a registry holding opts in declaration order.
func NewDefinitions(opts ...Option) *Definitions {
	d := &Definitions{byName: make(map[string]Option, len(opts))}
	for _, o := range opts {
		d.Define(o)
	}

	return d
}

// Define registers o under its name. Redeclaring a name replaces the stored
// option but keeps its original declaration position; subtype overrides rely
// on this last-write-wins behavior.
func (d *Definitions) Define(o Option) {
	if d.byName == nil {
		d.byName = make(map[string]Option)
	}

	if _, exists := d.byName[o.Name()]; !exists {
		d.names = append(d.names, o.Name())
	}

	d.byName[o.Name()] = o
}

// Clone returns an independent registry holding the same options. A subtype
// clones its parent exactly once at derivation time; afterwards the two
// evolve separately.
func (d *Definitions) Clone() *Definitions {
	return &Definitions{
		names:  slices.Clone(d.names),
		byName: maps.Clone(d.byName),
	}
}

// Names returns the option names in declaration order.
func (d *Definitions) Names() []string { return slices.Clone(d.names) }

// Get returns the option declared under name, if any.
func (d *Definitions) Get(name string) (Option, bool) {
	o, ok := d.byName[name]

	return o, ok
}

// Len returns the number of declared options.
func (d *Definitions) Len() int { return len(d.names) }

// Process runs the construction-time pass over opts for owner:
//  1. unknown-key check across the whole input, before anything else
//  2. default fill, declaration order, for declared options absent from opts
//  3. validation, declaration order, type constraint then allowed set,
//     first violation wins
//  4. reader binding; an option that resolved to no value binds Undefined
//
// The default fill mutates opts in place; Construct hands it a private copy.
func (d *Definitions) Process(owner Owner, opts map[string]any) error {
	if err := d.checkUnknown(opts); err != nil {
		return err
	}

	for _, name := range d.names {
		o := d.byName[name]
		if _, present := opts[name]; !present && o.HasDefault() {
			opts[name] = o.ResolveDefault(owner)
		}
	}

	for _, name := range d.names {
		value, present := opts[name]
		if !present {
			continue
		}

		o := d.byName[name]
		if !o.TypeMatches(value) {
			return fmt.Errorf("%w: %v is not acceptable for option %q", ErrInvalidValue, value, name)
		}

		if !o.Allowed(value) {
			return fmt.Errorf("%w: %v is not allowed for option %q", ErrInvalidValue, value, name)
		}
	}

	for _, name := range d.names {
		if !d.byName[name].HasReader() {
			continue
		}

		value, present := opts[name]
		if !present {
			value = Undefined
		}

		owner.bindReader(name, value)
	}

	return nil
}

// checkUnknown rejects the whole input before any fill or assignment happens.
// Map iteration is unordered, so the smallest undeclared key is the one
// reported, keeping the error deterministic.
func (d *Definitions) checkUnknown(opts map[string]any) error {
	var unknown []string
	for key := range opts {
		if _, ok := d.byName[key]; !ok {
			unknown = append(unknown, key)
		}
	}

	if len(unknown) == 0 {
		return nil
	}

	slices.Sort(unknown)

	return fmt.Errorf("%w: %q", ErrUnknownOption, unknown[0])
}

// Construct is the construction entry point. It takes a private copy of the
// caller's mapping (nil stands for empty), processes it, and freezes the
// completed mapping onto owner as read-only instance state.
func (d *Definitions) Construct(owner Owner, raw map[string]any) error {
	opts := maps.Clone(raw)
	if opts == nil {
		opts = make(map[string]any)
	}

	if err := d.Process(owner, opts); err != nil {
		return err
	}

	owner.storeResolved(opts)

	return nil
}
