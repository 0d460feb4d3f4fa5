package registry

import (
	"github.com/wlmkit/dataparser/datatree"
	"github.com/wlmkit/dataparser/flagarray"
	"github.com/wlmkit/dataparser/resolve"
)

// ScalarCodec is the parse/dump contract a SIMPLE or COMPLEX descriptor's
// leaf codec must satisfy. Implementations live in package
// codec; this interface is declared here, rather than there, so that codec
// need not import registry.
type ScalarCodec[T any] interface {
	Parse(dst *T, src *datatree.Node, args *resolve.Args) error
	Dump(src *T, args *resolve.Args) (*datatree.Node, error)
}

// FieldDescriptor is one entry in an ARRAY descriptor's field table.
// Unlike the source project's byte-offset addressing, a FieldDescriptor
// carries a pair of closures that read and write the one Go struct field
// it is bound to (see Field, SkipField, RemovedField in package
// composite).
type FieldDescriptor struct {
	Model Model // ArrayLinkedField, ArrayLinkedExplodedFlagArrayField, ArraySkipField, or ArrayRemovedField

	Key             string // JSON-path-style name in tree output; empty for Skip
	NativeFieldName string
	LinkType        Type // the field value's own Type, for schema generation; may be TypeInvalid for scalar leaves with no registry entry
	Required        bool

	Deprecated ProtocolVersion
	Removed    ProtocolVersion

	// OverloadCount is the number of sibling linked fields sharing
	// NativeFieldName. 0/1 means "not overloaded".
	OverloadCount int

	Description string

	// ParseInto reads src into the bound field of owner. Returns an error
	// only for a fatal, subtree-aborting condition; scalar-level problems
	// are recorded on args.Diag and ParseInto returns nil so sibling
	// fields still get a chance to parse.
	ParseInto func(owner any, src *datatree.Node, args *resolve.Args) error

	// DumpFrom renders the bound field of owner. The bool return is false
	// when an overloaded field's discriminant predicate did not select
	// this variant, in which case the field is omitted entirely from the
	// dumped dict.
	DumpFrom func(owner any, args *resolve.Args) (*datatree.Node, bool)
}

// Descriptor is one immutable, process-wide registry entry.
type Descriptor struct {
	Model          Model
	Type           Type
	TypeName       string
	NativeTypeName string

	// NativeSizeBytes documents the size of the bound Go type for
	// diagnostics and self-check parity with the source invariant that a
	// linked field's declared size match its target type's size. It has
	// no addressing role in this port.
	NativeSizeBytes int

	SingleFlag bool

	ListElemType   Type
	ArrayElemType  Type
	PtrTargetType  Type
	AllowNullPtr   bool
	Needs          resolve.Need
	Fields         []*FieldDescriptor
	FlagBits       []flagarray.Entry
	Deprecated     ProtocolVersion
	Removed        ProtocolVersion
	OpenAPIType    OpenAPIType
	Description    string

	// NewFn/FreeFn back the "owning models" lifecycle: New allocates
	// through NewFn and Free releases through FreeFn. Parse calls neither;
	// it populates the dst the caller passes in, and on error it neither
	// allocates nor frees anything.
	NewFn  func() any
	FreeFn func(any)

	ParseFn func(dst any, src *datatree.Node, args *resolve.Args) error
	DumpFn  func(src any, args *resolve.Args) (*datatree.Node, error)
}

// SimpleDescriptor builds a SIMPLE-model Descriptor around a ScalarCodec.
func SimpleDescriptor[T any](
	t Type, typeName, nativeTypeName string,
	codec ScalarCodec[T],
	openapi OpenAPIType,
	description string,
) *Descriptor {
	return &Descriptor{
		Model:          ModelSimple,
		Type:           t,
		TypeName:       typeName,
		NativeTypeName: nativeTypeName,
		OpenAPIType:    openapi,
		Description:    description,
		ParseFn: func(dst any, src *datatree.Node, args *resolve.Args) error {
			d, ok := dst.(*T)
			if !ok {
				return typeMismatch(typeName, dst)
			}
			return codec.Parse(d, src, args)
		},
		DumpFn: func(src any, args *resolve.Args) (*datatree.Node, error) {
			s, ok := src.(*T)
			if !ok {
				return nil, typeMismatch(typeName, src)
			}
			return codec.Dump(s, args)
		},
	}
}

// ComplexDescriptor builds a COMPLEX-model Descriptor: like SIMPLE, but
// reserved for codecs that also require a resolver from Needs.
func ComplexDescriptor[T any](
	t Type, typeName, nativeTypeName string,
	codec ScalarCodec[T],
	needs resolve.Need,
	openapi OpenAPIType,
	description string,
) *Descriptor {
	d := SimpleDescriptor(t, typeName, nativeTypeName, codec, openapi, description)
	d.Model = ModelComplex
	d.Needs = needs
	return d
}
