package codec

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/wlmkit/dataparser/datatree"
	"github.com/wlmkit/dataparser/diag"
	"github.com/wlmkit/dataparser/resolve"
)

// String is the ScalarCodec for a plain Go string field.
type String struct{}

func (String) Parse(dst *string, src *datatree.Node, args *resolve.Args) error {
	if src == nil || src.IsNull() {
		*dst = ""
		return nil
	}
	if s, ok := src.AsString(); ok {
		decoded, ok := decodeLoose(s)
		if !ok {
			args.Diag.Fail(args.Path.Path(), diag.CodeDataConvFailed, "string value is not valid UTF-8 or Windows-1252", nil)
			return nil
		}
		*dst = decoded
		return nil
	}
	coerced, ok := src.Coerce(datatree.KindString)
	if !ok {
		args.Diag.Fail(args.Path.Path(), diag.CodeDataConvFailed, "value cannot be coerced to a string", nil)
		return nil
	}
	s, _ := coerced.AsString()
	*dst = s
	return nil
}

func (String) Dump(src *string, args *resolve.Args) (*datatree.Node, error) {
	if *src == "" && args.IsComplex() {
		return datatree.Null(), nil
	}
	return datatree.String(*src), nil
}

// decodeLoose accepts a string already decoded as UTF-8 by the data tree
// layer unchanged; when it isn't valid UTF-8 (a value carried over from a
// protocol version that didn't enforce it, e.g. a node name with
// extended characters), it falls back to a Windows-1252 decode before
// giving up.
func decodeLoose(s string) (string, bool) {
	if utf8.ValidString(s) {
		return s, true
	}
	decoded, err := charmap.Windows1252.NewDecoder().String(s)
	if err != nil {
		return "", false
	}
	return decoded, true
}
