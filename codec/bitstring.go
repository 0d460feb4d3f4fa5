package codec

import (
	"strconv"
	"strings"

	"github.com/wlmkit/dataparser/datatree"
	"github.com/wlmkit/dataparser/diag"
	"github.com/wlmkit/dataparser/resolve"
)

// Bitstring is a finite bitmap, one bool per bit position, rendered on
// the wire as a Slurm-style range list such as "0-3,7,12-15".
type Bitstring []bool

// Format renders b as a range list. An empty or all-clear bitstring
// renders as the empty string.
func (b Bitstring) Format() string {
	var ranges []string
	i := 0
	for i < len(b) {
		if !b[i] {
			i++
			continue
		}
		start := i
		for i < len(b) && b[i] {
			i++
		}
		end := i - 1
		if start == end {
			ranges = append(ranges, strconv.Itoa(start))
		} else {
			ranges = append(ranges, strconv.Itoa(start)+"-"+strconv.Itoa(end))
		}
	}
	return strings.Join(ranges, ",")
}

// Unfmt parses a range list into a Bitstring, growing to fit the highest
// referenced position. The inverse of Format.
func Unfmt(s string) (Bitstring, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Bitstring{}, nil
	}
	var sets [][2]int
	maxEnd := -1
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		var start, end int
		if dash := strings.IndexByte(part, '-'); dash >= 0 {
			a, err := strconv.Atoi(part[:dash])
			if err != nil {
				return nil, err
			}
			b, err := strconv.Atoi(part[dash+1:])
			if err != nil {
				return nil, err
			}
			start, end = a, b
		} else {
			n, err := strconv.Atoi(part)
			if err != nil {
				return nil, err
			}
			start, end = n, n
		}
		sets = append(sets, [2]int{start, end})
		if end > maxEnd {
			maxEnd = end
		}
	}
	out := make(Bitstring, maxEnd+1)
	for _, r := range sets {
		for i := r[0]; i <= r[1]; i++ {
			out[i] = true
		}
	}
	return out, nil
}

// BitstringCodec is the ScalarCodec binding Bitstring to the wire range
// list form.
type BitstringCodec struct{}

func (BitstringCodec) Parse(dst *Bitstring, src *datatree.Node, args *resolve.Args) error {
	if src == nil || src.IsNull() {
		*dst = Bitstring{}
		return nil
	}
	s, ok := src.AsString()
	if !ok {
		args.Diag.Fail(args.Path.Path(), diag.CodeDataConvFailed, "expected a bitstring range list", nil)
		return nil
	}
	b, err := Unfmt(s)
	if err != nil {
		args.Diag.Fail(args.Path.Path(), diag.CodeDataConvFailed, "malformed bitstring range list", err)
		return nil
	}
	*dst = b
	return nil
}

func (BitstringCodec) Dump(src *Bitstring, args *resolve.Args) (*datatree.Node, error) {
	return datatree.String(src.Format()), nil
}
