// Package option implements declaration-time option definitions and their
// construction-time processing.
//
// Key capabilities:
//   - Immutable per-option descriptors: type predicate, allowed set, default, reader flag
//   - Ordered per-type Definitions with clone-on-derive semantics
//   - One-pass construction processing: unknown-key check, default fill, validation, reader binding
//   - Embeddable Host carrying the frozen resolved mapping and reader slots
package option
