package container

import (
	"fmt"

	"github.com/wlmkit/dataparser/datatree"
	"github.com/wlmkit/dataparser/diag"
	"github.com/wlmkit/dataparser/registry"
	"github.com/wlmkit/dataparser/resolve"
)

// List builds a LIST-model descriptor over a native []T slice, recursing
// element-wise on elemType. NTArray and NTPtrArray are aliases: see
// package doc.
func List[T any](
	t registry.Type,
	typeName, nativeTypeName string,
	elemType registry.Type,
	description string,
) *registry.Descriptor {
	d := &registry.Descriptor{
		Model:          registry.ModelList,
		Type:           t,
		TypeName:       typeName,
		NativeTypeName: nativeTypeName,
		ListElemType:   elemType,
		OpenAPIType:    registry.OpenAPIArray,
		Description:    description,
	}

	d.ParseFn = func(dst any, src *datatree.Node, args *resolve.Args) error {
		list, ok := dst.(*[]T)
		if !ok {
			return fmt.Errorf("container: descriptor %q bound to wrong owner type (got %T)", typeName, dst)
		}
		if src == nil || src.IsNull() {
			*list = nil
			return nil
		}
		if src.Kind() != datatree.KindList {
			args.Diag.Fail(args.Path.Path(), diag.CodeDataExpectedList, fmt.Sprintf("expected an array for %q", typeName), nil)
			return nil
		}
		items := src.Items()
		out := make([]T, 0, len(items))
		for i, item := range items {
			var elem T
			args.Path.PushIndex(i)
			if err := registry.Parse(elemType, &elem, item, args); err != nil {
				args.Path.Pop()
				return err
			}
			args.Path.Pop()
			out = append(out, elem)
		}
		*list = out
		return nil
	}

	d.DumpFn = func(src any, args *resolve.Args) (*datatree.Node, error) {
		list, ok := src.(*[]T)
		if !ok {
			return nil, fmt.Errorf("container: descriptor %q bound to wrong owner type (got %T)", typeName, src)
		}
		out := datatree.List()
		for i := range *list {
			args.Path.PushIndex(i)
			n, err := registry.Dump(elemType, &(*list)[i], args)
			args.Path.Pop()
			if err != nil {
				return nil, err
			}
			out.Append(n)
		}
		return out, nil
	}

	return d
}

// NTArray is List under a different Model tag, preserving the wire-visible
// model name for schema/diagnostics while sharing List's implementation.
func NTArray[T any](t registry.Type, typeName, nativeTypeName string, elemType registry.Type, description string) *registry.Descriptor {
	d := List[T](t, typeName, nativeTypeName, elemType, description)
	d.Model = registry.ModelNTArray
	return d
}

// NTPtrArray is List under the NT_PTR_ARRAY model tag.
func NTPtrArray[T any](t registry.Type, typeName, nativeTypeName string, elemType registry.Type, description string) *registry.Descriptor {
	d := List[T](t, typeName, nativeTypeName, elemType, description)
	d.Model = registry.ModelNTPtrArray
	return d
}
