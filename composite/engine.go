package composite

import (
	"fmt"

	"github.com/wlmkit/dataparser/datatree"
	"github.com/wlmkit/dataparser/diag"
	"github.com/wlmkit/dataparser/registry"
	"github.com/wlmkit/dataparser/resolve"
)

// reachableFields returns a descriptor's fields that carry a key and are
// actually addressed through it — i.e. every field except SKIP (never
// reachable by key). REMOVED fields are included.
func reachableFields(fields []*registry.FieldDescriptor) []*registry.FieldDescriptor {
	out := make([]*registry.FieldDescriptor, 0, len(fields))
	for _, f := range fields {
		if f.Model == registry.ModelArraySkipField {
			continue
		}
		out = append(out, f)
	}
	return out
}

func soleRequiredField(fields []*registry.FieldDescriptor) *registry.FieldDescriptor {
	var sole *registry.FieldDescriptor
	count := 0
	for _, f := range fields {
		if f.Model == registry.ModelArraySkipField || f.Model == registry.ModelArrayRemovedField {
			continue
		}
		if f.Required {
			count++
			sole = f
		}
	}
	if count == 1 {
		return sole
	}
	return nil
}

// Descriptor builds an ARRAY-model registry.Descriptor implementing the
// composite engine: dict-keyed field lookup, the single-required-field
// scalar fallback, required/absent errors, and REMOVED-field
// accept-and-ignore.
func Descriptor[T any](
	t registry.Type,
	typeName, nativeTypeName string,
	fields []*registry.FieldDescriptor,
	newFn func() *T,
	openapi registry.OpenAPIType,
	description string,
) *registry.Descriptor {
	d := &registry.Descriptor{
		Model:          registry.ModelArray,
		Type:           t,
		TypeName:       typeName,
		NativeTypeName: nativeTypeName,
		Fields:         fields,
		OpenAPIType:    openapi,
		Description:    description,
	}
	if newFn != nil {
		d.NewFn = func() any { return newFn() }
	}

	d.ParseFn = func(dst any, src *datatree.Node, args *resolve.Args) error {
		owner, ok := dst.(*T)
		if !ok {
			return fmt.Errorf("composite: descriptor %q bound to wrong owner type (got %T)", typeName, dst)
		}
		if src == nil {
			src = datatree.Null()
		}

		body := src
		if !src.IsNull() && src.Kind() != datatree.KindDict {
			if sole := soleRequiredField(fields); sole != nil {
				args.Path.Push(sole.Key)
				err := sole.ParseInto(owner, src, args)
				args.Path.Pop()
				return err
			}
			args.Diag.Fail(args.Path.Path(), diag.CodeDataExpectedDict, fmt.Sprintf("expected an object for %q", typeName), nil)
			return nil
		}

		for _, f := range reachableFields(fields) {
			if f.Model == registry.ModelArraySkipField {
				continue
			}
			var val *datatree.Node
			var present bool
			if !body.IsNull() {
				val, present = body.Get(f.Key)
			}

			if f.Model == registry.ModelArrayRemovedField {
				if present {
					args.Path.Push(f.Key)
					_ = f.ParseInto(owner, val, args)
					args.Path.Pop()
				}
				continue
			}

			if !present {
				if f.Required {
					args.Path.Push(f.Key)
					args.Diag.Fail(args.Path.Path(), diag.CodeInvalidValue, fmt.Sprintf("required field %q is missing", f.Key), nil)
					args.Path.Pop()
				}
				continue
			}

			args.Path.Push(f.Key)
			if err := f.ParseInto(owner, val, args); err != nil {
				args.Path.Pop()
				return err
			}
			args.Path.Pop()
		}
		return nil
	}

	d.DumpFn = func(src any, args *resolve.Args) (*datatree.Node, error) {
		owner, ok := src.(*T)
		if !ok {
			return nil, fmt.Errorf("composite: descriptor %q bound to wrong owner type (got %T)", typeName, src)
		}
		out := datatree.Dict()
		for _, f := range reachableFields(fields) {
			if f.Model == registry.ModelArraySkipField || f.Model == registry.ModelArrayRemovedField {
				continue
			}
			args.Path.Push(f.Key)
			val, ok := f.DumpFrom(owner, args)
			args.Path.Pop()
			if !ok {
				continue
			}
			out.Set(f.Key, val)
		}
		return out, nil
	}

	return d
}
