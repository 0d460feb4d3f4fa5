package composite

import (
	"fmt"

	"github.com/wlmkit/dataparser/datatree"
	"github.com/wlmkit/dataparser/diag"
	"github.com/wlmkit/dataparser/flagarray"
	"github.com/wlmkit/dataparser/registry"
	"github.com/wlmkit/dataparser/resolve"
)

// ExplodedFlagArray builds an ARRAY_LINKED_EXPLODED_FLAG_ARRAY_FIELD
// entry: unlike an ordinary FLAG_ARRAY field (one key holding an array
// of matched names), each non-hidden entry is rendered as its own
// boolean key directly in the parent dict. This does not produce a
// single FieldDescriptor the way Field/LinkedField do — the parent
// ARRAY descriptor's field table gets one synthetic FieldDescriptor per
// flag entry, all sharing nativeFieldName and get.
func ExplodedFlagArray[O any, T flagarray.Bits](
	nativeFieldName string,
	get func(owner *O) *T,
	entries []flagarray.Entry,
) []*registry.FieldDescriptor {
	out := make([]*registry.FieldDescriptor, 0, len(entries))
	for _, e := range entries {
		e := e
		out = append(out, &registry.FieldDescriptor{
			Model:           registry.ModelArrayLinkedExplodedFlagArrayField,
			Key:             e.FlagName,
			NativeFieldName: nativeFieldName,
			OverloadCount:   len(entries),
			Description:     e.Description,
			ParseInto: func(owner any, src *datatree.Node, args *resolve.Args) error {
				o, ok := owner.(*O)
				if !ok {
					return fmt.Errorf("composite: exploded flag %q bound to wrong owner type (got %T)", e.FlagName, owner)
				}
				b, ok := src.AsBool()
				if !ok {
					args.Diag.Fail(args.Path.Path(), diag.CodeDataConvFailed, fmt.Sprintf("expected a boolean for flag %q", e.FlagName), nil)
					return nil
				}
				field := get(o)
				v := uint64(*field)
				if b {
					v |= e.Value
				} else {
					v &^= e.Value
				}
				*field = T(v)
				return nil
			},
			DumpFrom: func(owner any, args *resolve.Args) (*datatree.Node, bool) {
				if e.Hidden {
					return nil, false
				}
				o, ok := owner.(*O)
				if !ok {
					return nil, false
				}
				v := uint64(*get(o))
				set := v&e.Value == e.Value
				return datatree.Bool(set), true
			},
		})
	}
	return out
}
