// Package composite implements the ARRAY-model engine: the
// struct-shaped descriptor whose children are a field table, each
// entry described by a FieldDescriptor built by this package's
// constructors (Field, LinkedField, OverloadedField, ExplodedFlagArray,
// SkipField, RemovedField).
//
// A field's ParseInto/DumpFrom closure captures a typed get-accessor
// into the owning struct, replacing the byte-offset addressing the
// ported system used when the owner was a C struct — see Field's doc
// comment for the accessor shape.
package composite
