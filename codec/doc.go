// Package codec implements the scalar leaf parsers and dumpers bound to
// SIMPLE and COMPLEX registry descriptors. Every codec here
// satisfies registry.ScalarCodec[T] structurally — this package does not
// import registry, so model wiring happens one layer up, in package
// registry's generic constructors.
//
// No codec panics on malformed input; a value that cannot be converted is
// reported through args.Diag and the destination is left at its zero
// value, mirroring the Checked* bounds-checked accessors style the
// teacher's binary decoder uses for untrusted input.
package codec
