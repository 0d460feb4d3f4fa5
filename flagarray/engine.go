package flagarray

import (
	"fmt"
	"sort"

	"github.com/wlmkit/dataparser/datatree"
	"github.com/wlmkit/dataparser/diag"
	"github.com/wlmkit/dataparser/resolve"
)

// ordered returns entries with every Equal entry ahead of every Bit entry,
// preserving relative order within each group.
func ordered(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Kind == Equal && out[j].Kind != Equal
	})
	return out
}

func byName(entries []Entry) map[string]Entry {
	m := make(map[string]Entry, len(entries))
	for _, e := range entries {
		m[e.FlagName] = e
	}
	return m
}

// Parse reads src (a list of flag-name strings, or a single string when
// singleFlag) and ORs the matched entries' bit patterns into *dst. An
// unrecognized flag token is a non-fatal warning: it is
// skipped rather than aborting the rest of the field.
func Parse[T Bits](entries []Entry, dst *T, src *datatree.Node, args *resolve.Args, singleFlag bool) error {
	if src == nil || src.IsNull() {
		*dst = 0
		return nil
	}
	names := byName(entries)

	var flags []string
	if singleFlag {
		s, ok := src.AsString()
		if !ok {
			args.Diag.Fail(args.Path.Path(), diag.CodeDataExpectedList, "expected a flag name string", nil)
			return nil
		}
		flags = []string{s}
	} else {
		if src.Kind() != datatree.KindList {
			args.Diag.Fail(args.Path.Path(), diag.CodeDataExpectedList, "expected a flag array", nil)
			return nil
		}
		for _, item := range src.Items() {
			s, ok := item.AsString()
			if !ok {
				args.Diag.Fail(args.Path.Path(), diag.CodeDataConvFailed, "flag array entry is not a string", nil)
				continue
			}
			flags = append(flags, s)
		}
	}

	var acc uint64
	for _, name := range flags {
		e, ok := names[name]
		if !ok {
			args.Diag.Warn(args.Path.Path(), fmt.Sprintf("unrecognized flag %q", name))
			continue
		}
		if e.Kind == Equal {
			acc &^= e.Mask
		}
		acc |= e.Value
	}
	*dst = T(acc)
	return nil
}

// Dump renders src's matched entries as a data-tree node: a bare string for
// singleFlag fields, or a list of strings otherwise. At most one EQUAL
// entry is emitted — the first, in table order, whose mask test holds —
// and every matching non-hidden BIT entry is emitted.
func Dump[T Bits](entries []Entry, src T, args *resolve.Args, singleFlag bool) (*datatree.Node, error) {
	v := uint64(src)
	var names []string
	equalEmitted := false

	for _, e := range ordered(entries) {
		if e.Hidden {
			continue
		}
		if e.Kind == Equal {
			if equalEmitted || !e.matches(v) {
				continue
			}
			names = append(names, e.FlagName)
			equalEmitted = true
			continue
		}
		if e.matches(v) {
			names = append(names, e.FlagName)
		}
	}

	if singleFlag {
		if len(names) == 0 {
			return datatree.Null(), nil
		}
		return datatree.String(names[0]), nil
	}

	list := datatree.List()
	for _, n := range names {
		list.Append(datatree.String(n))
	}
	return list, nil
}
