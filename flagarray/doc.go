// Package flagarray implements the FLAG_ARRAY engine: a table
// of named bits over an unsigned integer field, rendered in the data tree
// as a list of matched flag names (or, for single_flag fields, as one bare
// string).
//
// Two entry kinds coexist in one table. BIT entries test a single bit in
// isolation; EQUAL entries mask off a sub-field and compare the masked
// value against an expected constant, for multi-bit groups that encode a
// small enum rather than independent booleans (the source project's
// MEM_PER_CPU/MEM_PER_NODE-style encodings are the motivating case). Dump
// places EQUAL entries before BIT entries and emits at most one EQUAL
// entry; a BIT entry whose bit falls inside that EQUAL entry's mask is
// still emitted on its own when its bit is set.
package flagarray
