package container

import (
	"fmt"

	"github.com/wlmkit/dataparser/datatree"
	"github.com/wlmkit/dataparser/registry"
	"github.com/wlmkit/dataparser/resolve"
)

// Ptr builds a PTR-model descriptor over a native *T field.
// When allowNullPtr is set, a null tree value parses to a nil pointer and
// a nil pointer dumps as null; otherwise the target is always allocated
// and recursed into.
func Ptr[T any](
	t registry.Type,
	typeName, nativeTypeName string,
	targetType registry.Type,
	allowNullPtr bool,
	description string,
) *registry.Descriptor {
	d := &registry.Descriptor{
		Model:          registry.ModelPtr,
		Type:           t,
		TypeName:       typeName,
		NativeTypeName: nativeTypeName,
		PtrTargetType:  targetType,
		AllowNullPtr:   allowNullPtr,
		OpenAPIType:    registry.OpenAPIObject,
		Description:    description,
	}

	d.ParseFn = func(dst any, src *datatree.Node, args *resolve.Args) error {
		ptr, ok := dst.(**T)
		if !ok {
			return fmt.Errorf("container: descriptor %q bound to wrong owner type (got %T)", typeName, dst)
		}
		if allowNullPtr && (src == nil || src.IsNull()) {
			*ptr = nil
			return nil
		}
		target := new(T)
		if err := registry.Parse(targetType, target, src, args); err != nil {
			return err
		}
		*ptr = target
		return nil
	}

	d.DumpFn = func(src any, args *resolve.Args) (*datatree.Node, error) {
		ptr, ok := src.(**T)
		if !ok {
			return nil, fmt.Errorf("container: descriptor %q bound to wrong owner type (got %T)", typeName, src)
		}
		if *ptr == nil {
			if allowNullPtr {
				return datatree.Null(), nil
			}
			zero := new(T)
			return registry.Dump(targetType, zero, args)
		}
		return registry.Dump(targetType, *ptr, args)
	}

	return d
}
