package composite

import (
	"github.com/wlmkit/dataparser/datatree"
	"github.com/wlmkit/dataparser/registry"
	"github.com/wlmkit/dataparser/resolve"
)

// OverloadedField builds one variant of a field table where several keys
// render the same native slot under a tag-bit discriminant, e.g.
// memory_per_cpu/memory_per_node sharing one tagged uint64. Parsing is
// unconditional — whichever key the engine finds present in the input
// dict drives that variant's codec, which is expected to set the tag
// itself (see codec.WithMemPerCPU and friends). Dumping is gated by
// dumpWhen: the variant whose predicate misses is omitted from the
// dumped dict entirely.
func OverloadedField[O any, T any](
	key, nativeFieldName string,
	get func(owner *O) *T,
	codec ScalarCodecLike[T],
	dumpWhen func(T) bool,
	overloadCount int,
	description string,
) *registry.FieldDescriptor {
	fd := Field(key, nativeFieldName, get, codec, false, description)
	fd.OverloadCount = overloadCount
	inner := fd.DumpFrom
	fd.DumpFrom = func(owner any, args *resolve.Args) (*datatree.Node, bool) {
		o, ok := owner.(*O)
		if !ok {
			return nil, false
		}
		if !dumpWhen(*get(o)) {
			return nil, false
		}
		return inner(owner, args)
	}
	return fd
}
