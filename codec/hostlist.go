package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wlmkit/dataparser/datatree"
	"github.com/wlmkit/dataparser/diag"
	"github.com/wlmkit/dataparser/resolve"
)

// Hostlist is an expanded list of node-name strings.
type Hostlist []string

// ExpandHostRange expands a single compressed range token, e.g.
// "node[01-08,12]", into its constituent host names. A token with no
// bracket group is returned unchanged as a one-element slice.
func ExpandHostRange(s string) ([]string, error) {
	open := strings.IndexByte(s, '[')
	if open < 0 {
		return []string{s}, nil
	}
	close := strings.LastIndexByte(s, ']')
	if close < open {
		return nil, fmt.Errorf("codec: unbalanced brackets in hostlist token %q", s)
	}
	prefix, body, suffix := s[:open], s[open+1:close], s[close+1:]

	var out []string
	for _, part := range strings.Split(body, ",") {
		part = strings.TrimSpace(part)
		if dash := strings.IndexByte(part, '-'); dash >= 0 {
			lo, hi := part[:dash], part[dash+1:]
			start, err := strconv.Atoi(lo)
			if err != nil {
				return nil, fmt.Errorf("codec: bad hostlist range %q: %w", part, err)
			}
			end, err := strconv.Atoi(hi)
			if err != nil {
				return nil, fmt.Errorf("codec: bad hostlist range %q: %w", part, err)
			}
			width := len(lo)
			for i := start; i <= end; i++ {
				out = append(out, prefix+pad(i, width)+suffix)
			}
		} else {
			width := len(part)
			n, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("codec: bad hostlist entry %q: %w", part, err)
			}
			out = append(out, prefix+pad(n, width)+suffix)
		}
	}
	return out, nil
}

func pad(n, width int) string {
	s := strconv.Itoa(n)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// HostlistCodec is the ScalarCodec binding Hostlist to either a
// compressed range string or an array of node names on the wire.
type HostlistCodec struct{}

func (HostlistCodec) Parse(dst *Hostlist, src *datatree.Node, args *resolve.Args) error {
	if src == nil || src.IsNull() {
		*dst = nil
		return nil
	}
	if s, ok := src.AsString(); ok {
		expanded, err := ExpandHostRange(s)
		if err != nil {
			args.Diag.Fail(args.Path.Path(), diag.CodeDataConvFailed, "malformed hostlist range", err)
			return nil
		}
		*dst = expanded
		return nil
	}
	if src.Kind() == datatree.KindList {
		names := make(Hostlist, 0, src.Len())
		for _, item := range src.Items() {
			s, ok := item.AsString()
			if !ok {
				args.Diag.Fail(args.Path.Path(), diag.CodeDataConvFailed, "hostlist entry is not a string", nil)
				continue
			}
			names = append(names, s)
		}
		*dst = names
		return nil
	}
	args.Diag.Fail(args.Path.Path(), diag.CodeDataConvFailed, "expected a hostlist range or array of node names", nil)
	return nil
}

func (HostlistCodec) Dump(src *Hostlist, args *resolve.Args) (*datatree.Node, error) {
	list := datatree.List()
	for _, name := range *src {
		list.Append(datatree.String(name))
	}
	return list, nil
}
