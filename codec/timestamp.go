package codec

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/wlmkit/dataparser/datatree"
	"github.com/wlmkit/dataparser/diag"
	"github.com/wlmkit/dataparser/resolve"
)

var absoluteTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
	"01/02/2006-15:04:05",
	"01/02/2006",
}

var relativeRE = regexp.MustCompile(`^now\s*([+-])\s*(\d+)\s*(second|sec|minute|min|hour|day|week)s?$`)

// parseTimeString accepts null (handled by the caller), an absolute form
// recognized by absoluteTimeLayouts, or a relative offset of the shape
// "now+1hour"/"now-30min".
func parseTimeString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "now" {
		return time.Now(), true
	}
	if m := relativeRE.FindStringSubmatch(strings.ToLower(s)); m != nil {
		n, err := strconv.Atoi(m[2])
		if err != nil {
			return time.Time{}, false
		}
		d := unitDuration(m[3]) * time.Duration(n)
		if m[1] == "-" {
			d = -d
		}
		return time.Now().Add(d), true
	}
	for _, layout := range absoluteTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func unitDuration(unit string) time.Duration {
	switch unit {
	case "second", "sec":
		return time.Second
	case "minute", "min":
		return time.Minute
	case "hour":
		return time.Hour
	case "day":
		return 24 * time.Hour
	case "week":
		return 7 * 24 * time.Hour
	default:
		return 0
	}
}

// Timestamp is the ScalarCodec for a plain epoch-seconds field: accepts
// null, integer seconds, or a recognized time string; dumps as int64
// seconds.
type Timestamp struct{}

func (Timestamp) Parse(dst *int64, src *datatree.Node, args *resolve.Args) error {
	if src == nil || src.IsNull() {
		*dst = 0
		return nil
	}
	if v, ok := src.AsInt64(); ok {
		*dst = v
		return nil
	}
	if f, ok := src.AsFloat64(); ok {
		*dst = int64(f)
		return nil
	}
	s, ok := src.AsString()
	if !ok {
		args.Diag.Fail(args.Path.Path(), diag.CodeDataConvFailed, "expected a timestamp", nil)
		return nil
	}
	t, ok := parseTimeString(s)
	if !ok {
		args.Diag.Fail(args.Path.Path(), diag.CodeDataConvFailed, fmt.Sprintf("unrecognized time string %q", s), nil)
		return nil
	}
	*dst = t.Unix()
	return nil
}

func (Timestamp) Dump(src *int64, args *resolve.Args) (*datatree.Node, error) {
	return datatree.Int64(*src), nil
}

// TimestampNoVal is the tri-state codec over a native int64 epoch-seconds
// field, reusing the 64-bit sentinel pair.
type TimestampNoVal struct{}

func (TimestampNoVal) Parse(dst *int64, src *datatree.Node, args *resolve.Args) error {
	if src != nil && !src.IsNull() && src.Kind() != datatree.KindDict {
		if s, ok := src.AsString(); ok {
			if t, ok := parseTimeString(s); ok {
				*dst = t.Unix()
				return nil
			}
		}
	}
	v, ok := parseNoVal(novalU64, src, args)
	if !ok {
		args.Diag.Fail(args.Path.Path(), diag.CodeDataConvFailed, "expected a tri-state timestamp", nil)
		return nil
	}
	*dst = int64(v)
	return nil
}

func (TimestampNoVal) Dump(src *int64, args *resolve.Args) (*datatree.Node, error) {
	return dumpNoVal(novalU64, uint64(*src), args), nil
}
