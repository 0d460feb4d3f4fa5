package codec

import (
	"fmt"

	"github.com/wlmkit/dataparser/datatree"
	"github.com/wlmkit/dataparser/diag"
	"github.com/wlmkit/dataparser/resolve"
)

// niceBound is the widest signed offset a wire nice value may carry:
// ±(NiceOffset−3).
const niceBound = int64(NiceOffset) - 3

// NiceCodec is the ScalarCodec for the offset-encoded nice field: the
// native uint32 stores the signed wire value plus NiceOffset so it can
// never go negative.
type NiceCodec struct{}

func (NiceCodec) Parse(dst *uint32, src *datatree.Node, args *resolve.Args) error {
	v, ok := asInt64(src)
	if !ok {
		args.Diag.Fail(args.Path.Path(), diag.CodeDataConvFailed, "expected an integer nice value", nil)
		return nil
	}
	if v < -niceBound || v > niceBound {
		args.Diag.Fail(args.Path.Path(), diag.CodeInvalidNice, fmt.Sprintf("nice value %d outside +/-%d", v, niceBound), nil)
		return nil
	}
	*dst = uint32(v + int64(NiceOffset))
	return nil
}

func (NiceCodec) Dump(src *uint32, args *resolve.Args) (*datatree.Node, error) {
	return datatree.Int64(int64(*src) - int64(NiceOffset)), nil
}
