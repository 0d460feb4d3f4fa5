package composite

import (
	"fmt"

	"github.com/wlmkit/dataparser/datatree"
	"github.com/wlmkit/dataparser/registry"
	"github.com/wlmkit/dataparser/resolve"
)

// RemovedField marks a key that a peer may still send (from an older
// protocol version) but that this process no longer stores anywhere.
// Parsing accepts-and-ignores the value, emitting a once-per-field
// deprecation-style warning; dumping never emits the key.
func RemovedField(key, nativeFieldName string, removedAt registry.ProtocolVersion, description string) *registry.FieldDescriptor {
	return &registry.FieldDescriptor{
		Model:           registry.ModelArrayRemovedField,
		Key:             key,
		NativeFieldName: nativeFieldName,
		Removed:         removedAt,
		Description:     description,
		ParseInto: func(owner any, src *datatree.Node, args *resolve.Args) error {
			args.Diag.WarnOnce(args.Path.Path(), key, fmt.Sprintf("field %q was removed in protocol version %d", key, removedAt))
			return nil
		},
		DumpFrom: func(owner any, args *resolve.Args) (*datatree.Node, bool) {
			return nil, false
		},
	}
}
