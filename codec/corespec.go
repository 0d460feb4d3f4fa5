package codec

import (
	"github.com/wlmkit/dataparser/datatree"
	"github.com/wlmkit/dataparser/resolve"
)

// IsThreadSpec reports whether v's CoreSpecThread tag bit is set, i.e.
// whether v should be read through the thread-spec overloaded field
// rather than core-spec.
func IsThreadSpec(v uint16) bool { return v&CoreSpecThread != 0 }

// SpecCount strips the CoreSpecThread tag bit, returning the plain
// core/thread count regardless of which overloaded field produced v.
func SpecCount(v uint16) uint16 { return v &^ CoreSpecThread }

// WithThreadSpec tags count as a thread-spec quantity.
func WithThreadSpec(count uint16) uint16 { return count | CoreSpecThread }

// WithCoreSpec tags count as a core-spec quantity.
func WithCoreSpec(count uint16) uint16 { return count &^ CoreSpecThread }

// specCodec renders the active variant's count and 0 for the inactive one;
// active is a closure so CoreSpecCodec and ThreadSpecCodec can share it
// while testing the tag bit in opposite senses.
type specCodec struct {
	active func(v uint16) bool
	tag    func(count uint16) uint16
}

func (c specCodec) Parse(dst *uint16, src *datatree.Node, args *resolve.Args) error {
	var count uint16
	if err := (Uint16{}).Parse(&count, src, args); err != nil {
		return err
	}
	if count == 0 {
		return nil
	}
	*dst = c.tag(count)
	return nil
}

func (c specCodec) Dump(src *uint16, args *resolve.Args) (*datatree.Node, error) {
	if !c.active(*src) {
		return datatree.Int64(0), nil
	}
	return datatree.Int64(int64(SpecCount(*src))), nil
}

// CoreSpecCodec binds the core-spec overloaded variant of the shared
// core-spec/thread-spec field.
var CoreSpecCodec = specCodec{active: func(v uint16) bool { return !IsThreadSpec(v) }, tag: WithCoreSpec}

// ThreadSpecCodec binds the thread-spec overloaded variant of the shared
// core-spec/thread-spec field.
var ThreadSpecCodec = specCodec{active: IsThreadSpec, tag: WithThreadSpec}
