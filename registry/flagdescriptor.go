package registry

import (
	"github.com/wlmkit/dataparser/datatree"
	"github.com/wlmkit/dataparser/flagarray"
	"github.com/wlmkit/dataparser/resolve"
)

// FlagArrayDescriptor builds a FLAG_ARRAY-model Descriptor over an integer
// field type T. singleFlag renders the field as one string
// instead of an array of strings (exactly one flag set).
func FlagArrayDescriptor[T flagarray.Bits](
	t Type, typeName, nativeTypeName string,
	entries []flagarray.Entry,
	singleFlag bool,
	description string,
) *Descriptor {
	return &Descriptor{
		Model:          ModelFlagArray,
		Type:           t,
		TypeName:       typeName,
		NativeTypeName: nativeTypeName,
		FlagBits:       entries,
		SingleFlag:     singleFlag,
		OpenAPIType:    openAPITypeForFlagArray(singleFlag),
		Description:    description,
		ParseFn: func(dst any, src *datatree.Node, args *resolve.Args) error {
			d, ok := dst.(*T)
			if !ok {
				return typeMismatch(typeName, dst)
			}
			return flagarray.Parse(entries, d, src, args, singleFlag)
		},
		DumpFn: func(src any, args *resolve.Args) (*datatree.Node, error) {
			s, ok := src.(*T)
			if !ok {
				return nil, typeMismatch(typeName, src)
			}
			return flagarray.Dump(entries, *s, args, singleFlag)
		},
	}
}

func openAPITypeForFlagArray(singleFlag bool) OpenAPIType {
	if singleFlag {
		return OpenAPIString
	}
	return OpenAPIArray
}
