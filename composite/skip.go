package composite

import "github.com/wlmkit/dataparser/registry"

// SkipField marks a native struct field that the engine must account
// for in self-check parity (native size) but that carries no key and is
// unreachable from the data tree.
func SkipField(nativeFieldName string) *registry.FieldDescriptor {
	return &registry.FieldDescriptor{
		Model:           registry.ModelArraySkipField,
		NativeFieldName: nativeFieldName,
	}
}
