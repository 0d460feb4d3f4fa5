package codec

import (
	"math"
	"strings"

	"github.com/wlmkit/dataparser/datatree"
	"github.com/wlmkit/dataparser/diag"
	"github.com/wlmkit/dataparser/resolve"
)

// novalWidth bundles the per-width sentinel pair a NO_VAL-wrapped numeric
// is encoded with. The native field itself stores one of
// three states in a single integer: a legitimate value, noVal ("unset"),
// or infinite ("unlimited").
type novalWidth struct {
	noVal    uint64
	infinite uint64
}

var (
	novalU16 = novalWidth{noVal: uint64(NoVal16), infinite: uint64(Infinite16)}
	novalU32 = novalWidth{noVal: uint64(NoVal32), infinite: uint64(Infinite32)}
	novalU64 = novalWidth{noVal: NoVal64, infinite: Infinite64}
)

func parseNoVal(w novalWidth, src *datatree.Node, args *resolve.Args) (uint64, bool) {
	if src == nil || src.IsNull() {
		return w.noVal, true
	}
	if src.Kind() == datatree.KindDict {
		set, _ := boolField(src, "set")
		infinite, _ := boolField(src, "infinite")
		if infinite {
			return w.infinite, true
		}
		if !set {
			return w.noVal, true
		}
		n, ok := src.Get("number")
		if !ok {
			return w.noVal, true
		}
		v, ok := asInt64(n)
		if !ok {
			return 0, false
		}
		return uint64(v), true
	}
	if s, ok := src.AsString(); ok && args.IsComplex() {
		trimmed := strings.TrimSpace(s)
		if trimmed == "Infinity" || trimmed == "∞" {
			return w.infinite, true
		}
	}
	v, ok := asInt64(src)
	if !ok {
		return 0, false
	}
	return uint64(v), true
}

func dumpNoVal(w novalWidth, v uint64, args *resolve.Args) *datatree.Node {
	switch v {
	case w.noVal:
		if args.IsComplex() {
			return datatree.Null()
		}
		obj := datatree.Dict()
		obj.Set("set", datatree.Bool(false))
		obj.Set("infinite", datatree.Bool(false))
		obj.Set("number", datatree.Int64(0))
		return obj
	case w.infinite:
		if args.IsComplex() {
			return datatree.Null()
		}
		obj := datatree.Dict()
		obj.Set("set", datatree.Bool(false))
		obj.Set("infinite", datatree.Bool(true))
		obj.Set("number", datatree.Int64(0))
		return obj
	default:
		if args.IsComplex() {
			return datatree.Int64(int64(v))
		}
		obj := datatree.Dict()
		obj.Set("set", datatree.Bool(true))
		obj.Set("infinite", datatree.Bool(false))
		obj.Set("number", datatree.Int64(int64(v)))
		return obj
	}
}

func boolField(dict *datatree.Node, key string) (bool, bool) {
	n, ok := dict.Get(key)
	if !ok {
		return false, false
	}
	return n.AsBool()
}

// Uint16NoVal is the tri-state codec over a native uint16 field using the
// 16-bit NO_VAL/INFINITE sentinel pair.
type Uint16NoVal struct{}

func (Uint16NoVal) Parse(dst *uint16, src *datatree.Node, args *resolve.Args) error {
	v, ok := parseNoVal(novalU16, src, args)
	if !ok || v > math.MaxUint16 {
		args.Diag.Fail(args.Path.Path(), diag.CodeDataConvFailed, "expected a tri-state uint16 value", nil)
		return nil
	}
	*dst = uint16(v)
	return nil
}

func (Uint16NoVal) Dump(src *uint16, args *resolve.Args) (*datatree.Node, error) {
	return dumpNoVal(novalU16, uint64(*src), args), nil
}

// Uint32NoVal is the tri-state codec over a native uint32 field.
type Uint32NoVal struct{}

func (Uint32NoVal) Parse(dst *uint32, src *datatree.Node, args *resolve.Args) error {
	v, ok := parseNoVal(novalU32, src, args)
	if !ok || v > math.MaxUint32 {
		args.Diag.Fail(args.Path.Path(), diag.CodeDataConvFailed, "expected a tri-state uint32 value", nil)
		return nil
	}
	*dst = uint32(v)
	return nil
}

func (Uint32NoVal) Dump(src *uint32, args *resolve.Args) (*datatree.Node, error) {
	return dumpNoVal(novalU32, uint64(*src), args), nil
}

// Uint64NoVal is the tri-state codec over a native uint64 field.
type Uint64NoVal struct{}

func (Uint64NoVal) Parse(dst *uint64, src *datatree.Node, args *resolve.Args) error {
	v, ok := parseNoVal(novalU64, src, args)
	if !ok {
		args.Diag.Fail(args.Path.Path(), diag.CodeDataConvFailed, "expected a tri-state uint64 value", nil)
		return nil
	}
	*dst = v
	return nil
}

func (Uint64NoVal) Dump(src *uint64, args *resolve.Args) (*datatree.Node, error) {
	return dumpNoVal(novalU64, *src, args), nil
}

// Int64NoVal is the tri-state codec over a native int64 field, reusing
// the 64-bit sentinel pair bit-for-bit.
type Int64NoVal struct{}

func (Int64NoVal) Parse(dst *int64, src *datatree.Node, args *resolve.Args) error {
	v, ok := parseNoVal(novalU64, src, args)
	if !ok {
		args.Diag.Fail(args.Path.Path(), diag.CodeDataConvFailed, "expected a tri-state int64 value", nil)
		return nil
	}
	*dst = int64(v)
	return nil
}

func (Int64NoVal) Dump(src *int64, args *resolve.Args) (*datatree.Node, error) {
	return dumpNoVal(novalU64, uint64(*src), args), nil
}

// Float64NoVal is the tri-state codec over a native float64 field: the
// float sentinels are the 32-bit NO_VAL/INFINITE pair cast to double.
type Float64NoVal struct{}

func (Float64NoVal) Parse(dst *float64, src *datatree.Node, args *resolve.Args) error {
	v, ok := parseNoVal(novalU32, src, args)
	if !ok {
		args.Diag.Fail(args.Path.Path(), diag.CodeDataConvFailed, "expected a tri-state float value", nil)
		return nil
	}
	switch v {
	case novalU32.noVal:
		*dst = NoValFloat64
	case novalU32.infinite:
		*dst = InfiniteFloat64
	default:
		*dst = float64(v)
	}
	return nil
}

func (Float64NoVal) Dump(src *float64, args *resolve.Args) (*datatree.Node, error) {
	switch *src {
	case NoValFloat64:
		return dumpNoVal(novalU32, novalU32.noVal, args), nil
	case InfiniteFloat64:
		return dumpNoVal(novalU32, novalU32.infinite, args), nil
	default:
		return dumpNoVal(novalU32, uint64(*src), args), nil
	}
}

// Bool16NoVal is the tri-state codec over a native uint16 field that
// represents a boolean with an additional "unset" state.
type Bool16NoVal struct{}

func (Bool16NoVal) Parse(dst *uint16, src *datatree.Node, args *resolve.Args) error {
	if src != nil && src.Kind() == datatree.KindBool {
		b, _ := src.AsBool()
		if b {
			*dst = 1
		} else {
			*dst = 0
		}
		return nil
	}
	return Uint16NoVal{}.Parse(dst, src, args)
}

func (Bool16NoVal) Dump(src *uint16, args *resolve.Args) (*datatree.Node, error) {
	if *src == NoVal16 || *src == Infinite16 {
		return dumpNoVal(novalU16, uint64(*src), args), nil
	}
	if args.IsComplex() {
		return datatree.Bool(*src != 0), nil
	}
	obj := datatree.Dict()
	obj.Set("set", datatree.Bool(true))
	obj.Set("infinite", datatree.Bool(false))
	obj.Set("number", datatree.Bool(*src != 0))
	return obj, nil
}
