// Package container implements the LIST/PTR/NT_ARRAY/NT_PTR_ARRAY
// container models. Every container recurses into its
// declared element type through registry.Parse/Dump by Type id, rather
// than a compile-time codec, since container elements are homogeneous
// and the element type is only known as a registry.Type at descriptor
// construction time.
//
// NT_ARRAY and NT_PTR_ARRAY both collapse onto the same ordinary Go
// slice implementation as LIST: the distinction in the ported system is
// about native storage and pointer ownership (inline elements vs.
// heap-owned elements behind a NUL-terminator sentinel), which has no
// meaning once the runtime is garbage collected.
package container
