package codec

import (
	"strings"

	"github.com/wlmkit/dataparser/datatree"
	"github.com/wlmkit/dataparser/diag"
	"github.com/wlmkit/dataparser/resolve"
)

// CSVList is the native representation of a comma-delimited value: a flat list of strings, with "k=v" already rendered where the
// source was a key/value dict.
type CSVList []string

// CSVCodec is the ScalarCodec binding CSVList to a CSV string, a list of
// strings, or a dict of k=v pairs on the wire.
type CSVCodec struct{}

func (CSVCodec) Parse(dst *CSVList, src *datatree.Node, args *resolve.Args) error {
	if src == nil || src.IsNull() {
		*dst = nil
		return nil
	}
	switch src.Kind() {
	case datatree.KindString:
		s, _ := src.AsString()
		if s == "" {
			*dst = CSVList{}
			return nil
		}
		*dst = strings.Split(s, ",")
		return nil
	case datatree.KindList:
		out := make(CSVList, 0, src.Len())
		for _, item := range src.Items() {
			s, ok := item.AsString()
			if !ok {
				args.Diag.Fail(args.Path.Path(), diag.CodeDataConvFailed, "csv entry is not a string", nil)
				continue
			}
			out = append(out, s)
		}
		*dst = out
		return nil
	case datatree.KindDict:
		out := make(CSVList, 0, src.Len())
		for _, k := range src.Keys() {
			v, _ := src.Get(k)
			coerced, ok := v.Coerce(datatree.KindString)
			if !ok {
				args.Diag.Fail(args.Path.Path(), diag.CodeDataConvFailed, "csv dict value is not convertible to string", nil)
				continue
			}
			s, _ := coerced.AsString()
			out = append(out, k+"="+s)
		}
		*dst = out
		return nil
	default:
		args.Diag.Fail(args.Path.Path(), diag.CodeDataConvFailed, "expected a csv string, array, or dict", nil)
		return nil
	}
}

func (CSVCodec) Dump(src *CSVList, args *resolve.Args) (*datatree.Node, error) {
	list := datatree.List()
	for _, s := range *src {
		list.Append(datatree.String(s))
	}
	return list, nil
}
