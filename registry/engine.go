package registry

import (
	"fmt"

	"github.com/wlmkit/dataparser/datatree"
	"github.com/wlmkit/dataparser/diag"
	"github.com/wlmkit/dataparser/resolve"
)

// Parse decodes src into dst using t's registered descriptor. dst must be a
// pointer to the Go type the descriptor was registered against. Per-value
// problems are recorded on args.Diag and do not abort sibling parsing. A
// call whose prerequisites aren't met records NOT_SUPPORTED on args.Diag
// and returns nil without invoking the codec; Parse itself returns a plain
// error only for a condition that makes the call meaningless outright
// (unknown Type or wrong dst type).
func Parse(t Type, dst any, src *datatree.Node, args *resolve.Args) error {
	d, err := Find(t)
	if err != nil {
		return err
	}
	if !args.Satisfies(d.Needs) {
		args.Diag.Fail(args.Path.Path(), diag.CodeNotSupported, fmt.Sprintf("type %q requires resolvers not present in this call", d.TypeName), nil)
		return nil
	}
	if d.ParseFn == nil {
		return fmt.Errorf("registry: type %q has no ParseFn", d.TypeName)
	}
	return d.ParseFn(dst, src, args)
}

// Dump encodes src (the same pointer type Parse expects) into a data-tree
// node using t's registered descriptor. An unmet prerequisite records
// NOT_SUPPORTED and returns a null node rather than aborting the dump of
// sibling fields.
func Dump(t Type, src any, args *resolve.Args) (*datatree.Node, error) {
	d, err := Find(t)
	if err != nil {
		return nil, err
	}
	if !args.Satisfies(d.Needs) {
		args.Diag.Fail(args.Path.Path(), diag.CodeNotSupported, fmt.Sprintf("type %q requires resolvers not present in this call", d.TypeName), nil)
		return datatree.Null(), nil
	}
	if d.DumpFn == nil {
		return nil, fmt.Errorf("registry: type %q has no DumpFn", d.TypeName)
	}
	return d.DumpFn(src, args)
}

// New allocates a fresh value of t's native type via its descriptor's
// NewFn, for callers that don't already hold a destination. Returns nil
// if the descriptor declares none.
func New(t Type) (any, error) {
	d, err := Find(t)
	if err != nil {
		return nil, err
	}
	if d.NewFn == nil {
		return nil, nil
	}
	return d.NewFn(), nil
}

// Free releases v via t's descriptor's FreeFn, if any. Most Go-native
// descriptors leave this nil and rely on the garbage collector; it exists
// for symmetry with New and for any descriptor that holds external
// resources (e.g. a burst-buffer plugin handle).
func Free(t Type, v any) {
	d, err := Find(t)
	if err != nil || d.FreeFn == nil {
		return
	}
	d.FreeFn(v)
}
