package composite

import (
	"fmt"

	"github.com/wlmkit/dataparser/datatree"
	"github.com/wlmkit/dataparser/registry"
	"github.com/wlmkit/dataparser/resolve"
)

// ScalarCodecLike mirrors registry.ScalarCodec[T] without importing
// registry's generic constraint directly, so callers can pass any of
// package codec's concrete codec types by value or pointer.
type ScalarCodecLike[T any] interface {
	Parse(dst *T, src *datatree.Node, args *resolve.Args) error
	Dump(src *T, args *resolve.Args) (*datatree.Node, error)
}

// Field builds an ARRAY_LINKED_FIELD descriptor entry for a leaf scalar
// field, addressed through a typed accessor closure rather than a byte
// offset. get must return a stable pointer into owner for the lifetime
// of the call.
func Field[O any, T any](
	key, nativeFieldName string,
	get func(owner *O) *T,
	codec ScalarCodecLike[T],
	required bool,
	description string,
) *registry.FieldDescriptor {
	return &registry.FieldDescriptor{
		Model:           registry.ModelArrayLinkedField,
		Key:             key,
		NativeFieldName: nativeFieldName,
		Required:        required,
		Description:     description,
		ParseInto: func(owner any, src *datatree.Node, args *resolve.Args) error {
			o, ok := owner.(*O)
			if !ok {
				return fmt.Errorf("composite: field %q bound to wrong owner type (got %T)", key, owner)
			}
			return codec.Parse(get(o), src, args)
		},
		DumpFrom: func(owner any, args *resolve.Args) (*datatree.Node, bool) {
			o, ok := owner.(*O)
			if !ok {
				return nil, false
			}
			n, err := codec.Dump(get(o), args)
			if err != nil {
				return nil, false
			}
			return n, true
		},
	}
}

// DeprecatedField is Field plus a deprecation version: on both parse and
// dump, a warning fires once per field before the normal codec runs.
func DeprecatedField[O any, T any](
	key, nativeFieldName string,
	get func(owner *O) *T,
	codec ScalarCodecLike[T],
	required bool,
	deprecatedAt registry.ProtocolVersion,
	description string,
) *registry.FieldDescriptor {
	fd := Field(key, nativeFieldName, get, codec, required, description)
	fd.Deprecated = deprecatedAt
	inner := fd.ParseInto
	fd.ParseInto = func(owner any, src *datatree.Node, args *resolve.Args) error {
		args.Diag.WarnOnce(args.Path.Path(), key, fmt.Sprintf("field %q is deprecated", key))
		return inner(owner, src, args)
	}
	innerDump := fd.DumpFrom
	fd.DumpFrom = func(owner any, args *resolve.Args) (*datatree.Node, bool) {
		args.Diag.WarnOnce(args.Path.Path(), key, fmt.Sprintf("field %q is deprecated", key))
		return innerDump(owner, args)
	}
	return fd
}

// LinkedField builds an ARRAY_LINKED_FIELD descriptor entry whose value
// is itself another registered type (an ARRAY, LIST, PTR, or FLAG_ARRAY
// descriptor), recursing through the registry by linkType rather than a
// compile-time codec.
func LinkedField[O any, T any](
	key, nativeFieldName string,
	get func(owner *O) *T,
	linkType registry.Type,
	required bool,
	description string,
) *registry.FieldDescriptor {
	return &registry.FieldDescriptor{
		Model:           registry.ModelArrayLinkedField,
		Key:             key,
		NativeFieldName: nativeFieldName,
		LinkType:        linkType,
		Required:        required,
		Description:     description,
		ParseInto: func(owner any, src *datatree.Node, args *resolve.Args) error {
			o, ok := owner.(*O)
			if !ok {
				return fmt.Errorf("composite: field %q bound to wrong owner type (got %T)", key, owner)
			}
			return registry.Parse(linkType, get(o), src, args)
		},
		DumpFrom: func(owner any, args *resolve.Args) (*datatree.Node, bool) {
			o, ok := owner.(*O)
			if !ok {
				return nil, false
			}
			n, err := registry.Dump(linkType, get(o), args)
			if err != nil {
				return nil, false
			}
			return n, true
		},
	}
}
