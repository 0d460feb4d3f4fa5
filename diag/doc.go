// Package diag implements the diagnostics and path-tracker component of the
// data parser: an ordered collector of per-field warnings and
// errors, plus a breadcrumb stack used to build JSON-pointer-like source
// paths while the composite and container engines recurse.
//
// # Path tracking
//
// Push/Pop are called in matching pairs around every recursive step so a
// diagnostic raised deep inside a nested struct can be attributed to an
// exact field:
//
//	pt.Push("associations")
//	pt.PushIndex(3)
//	pt.Push("max")
//	defer pt.Pop()
//	defer pt.Pop()
//	defer pt.Pop()
//
// Path() renders the current stack as "associations[3].max", jq-style
// indexing into the source document.
//
// # Collecting diagnostics
//
// A Collector accumulates Warning and Error records as they are raised and
// exposes them in emission order (depth-first, field order) once the
// top-level call completes.
package diag
