package codec

import (
	"math"

	"github.com/wlmkit/dataparser/datatree"
	"github.com/wlmkit/dataparser/diag"
	"github.com/wlmkit/dataparser/resolve"
)

func asInt64(src *datatree.Node) (int64, bool) {
	if src == nil || src.IsNull() {
		return 0, true
	}
	if coerced, ok := src.Coerce(datatree.KindInt64); ok {
		v, _ := coerced.AsInt64()
		return v, true
	}
	return 0, false
}

// Uint16 is the ScalarCodec for a native uint16 field.
type Uint16 struct{}

func (Uint16) Parse(dst *uint16, src *datatree.Node, args *resolve.Args) error {
	v, ok := asInt64(src)
	if !ok {
		args.Diag.Fail(args.Path.Path(), diag.CodeDataConvFailed, "expected an integer", nil)
		return nil
	}
	if v < 0 || v > math.MaxUint16 {
		*dst = NoVal16
		return nil
	}
	*dst = uint16(v)
	return nil
}

func (Uint16) Dump(src *uint16, args *resolve.Args) (*datatree.Node, error) {
	return datatree.Int64(int64(*src)), nil
}

// Uint32 is the ScalarCodec for a native uint32 field. An
// incoming value with bits set above the low 32 saturates to NO_VAL
// instead of silently truncating.
type Uint32 struct{}

func (Uint32) Parse(dst *uint32, src *datatree.Node, args *resolve.Args) error {
	v, ok := asInt64(src)
	if !ok {
		args.Diag.Fail(args.Path.Path(), diag.CodeDataConvFailed, "expected an integer", nil)
		return nil
	}
	if v < 0 || v > math.MaxUint32 {
		*dst = NoVal32
		return nil
	}
	*dst = uint32(v)
	return nil
}

func (Uint32) Dump(src *uint32, args *resolve.Args) (*datatree.Node, error) {
	return datatree.Int64(int64(*src)), nil
}

// Uint64 is the ScalarCodec for a native uint64 field.
type Uint64 struct{}

func (Uint64) Parse(dst *uint64, src *datatree.Node, args *resolve.Args) error {
	if src == nil || src.IsNull() {
		*dst = 0
		return nil
	}
	coerced, ok := src.Coerce(datatree.KindInt64)
	if !ok {
		args.Diag.Fail(args.Path.Path(), diag.CodeDataConvFailed, "expected an integer", nil)
		return nil
	}
	v, _ := coerced.AsInt64()
	*dst = uint64(v)
	return nil
}

func (Uint64) Dump(src *uint64, args *resolve.Args) (*datatree.Node, error) {
	return datatree.Int64(int64(*src)), nil
}

// Signed64 is the ScalarCodec for a native int64 field: pass-through,
// null maps to zero.
type Signed64 struct{}

func (Signed64) Parse(dst *int64, src *datatree.Node, args *resolve.Args) error {
	v, ok := asInt64(src)
	if !ok {
		args.Diag.Fail(args.Path.Path(), diag.CodeDataConvFailed, "expected an integer", nil)
		return nil
	}
	*dst = v
	return nil
}

func (Signed64) Dump(src *int64, args *resolve.Args) (*datatree.Node, error) {
	return datatree.Int64(*src), nil
}

// Signed32 parses via Signed64 then range-checks to int32 bounds,
// reporting INVALID_VALUE when out of range.
type Signed32 struct{}

func (Signed32) Parse(dst *int32, src *datatree.Node, args *resolve.Args) error {
	v, ok := asInt64(src)
	if !ok {
		args.Diag.Fail(args.Path.Path(), diag.CodeDataConvFailed, "expected an integer", nil)
		return nil
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		args.Diag.Fail(args.Path.Path(), diag.CodeInvalidValue, "value out of int32 range", nil)
		return nil
	}
	*dst = int32(v)
	return nil
}

func (Signed32) Dump(src *int32, args *resolve.Args) (*datatree.Node, error) {
	return datatree.Int64(int64(*src)), nil
}

// Float64 is the ScalarCodec for a native float64 field:
// pass-through; null maps to the NO_VAL sentinel cast to float, and a
// dumped NaN/Inf that round-trips from NO_VAL/INFINITE renders as null.
type Float64 struct{}

func (Float64) Parse(dst *float64, src *datatree.Node, args *resolve.Args) error {
	if src == nil || src.IsNull() {
		*dst = NoValFloat64
		return nil
	}
	coerced, ok := src.Coerce(datatree.KindFloat64)
	if !ok {
		args.Diag.Fail(args.Path.Path(), diag.CodeDataConvFailed, "expected a number", nil)
		return nil
	}
	v, _ := coerced.AsFloat64()
	*dst = v
	return nil
}

func (Float64) Dump(src *float64, args *resolve.Args) (*datatree.Node, error) {
	if *src == NoValFloat64 || *src == InfiniteFloat64 || math.IsNaN(*src) || math.IsInf(*src, 0) {
		return datatree.Null(), nil
	}
	return datatree.Float64(*src), nil
}

// Float128 is an alias for Float64: the native type this ports from has
// no Go equivalent wider than float64, so both collapse to the same
// codec.
type Float128 = Float64

// Boolean is the ScalarCodec for a native bool field: accepts a native
// bool, an int (0/1), or a coerced string.
type Boolean struct{}

func (Boolean) Parse(dst *bool, src *datatree.Node, args *resolve.Args) error {
	if src == nil || src.IsNull() {
		*dst = false
		return nil
	}
	if b, ok := src.AsBool(); ok {
		*dst = b
		return nil
	}
	if i, ok := src.AsInt64(); ok {
		*dst = i != 0
		return nil
	}
	coerced, ok := src.Coerce(datatree.KindBool)
	if !ok {
		args.Diag.Fail(args.Path.Path(), diag.CodeDataConvFailed, "expected a boolean", nil)
		return nil
	}
	b, _ := coerced.AsBool()
	*dst = b
	return nil
}

func (Boolean) Dump(src *bool, args *resolve.Args) (*datatree.Node, error) {
	return datatree.Bool(*src), nil
}
