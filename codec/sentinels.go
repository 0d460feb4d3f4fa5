package codec

// Per-width NO_VAL/INFINITE sentinels. NO_VAL means "this
// field does not apply"; INFINITE means "unlimited" — distinct values a
// caller must be able to distinguish from a legitimate 0.
const (
	NoVal16     uint16 = 0xFFFF
	Infinite16  uint16 = 0xFFFE
	NoVal32     uint32 = 0xFFFFFFFF
	Infinite32  uint32 = 0xFFFFFFFE
	NoVal64     uint64 = 0xFFFFFFFFFFFFFFFF
	Infinite64  uint64 = 0xFFFFFFFFFFFFFFFE
	NoValS64    int64  = int64(NoVal64)
	InfiniteS64 int64  = int64(Infinite64)
)

// NoValFloat64/InfiniteFloat64 are the float sentinels: the corresponding
// 32-bit unsigned sentinel constants cast to double.
var (
	NoValFloat64    = float64(NoVal32)
	InfiniteFloat64 = float64(Infinite32)
)

// MemPerCPU is the high-bit tag distinguishing "per CPU" from "per node"
// memory limits sharing one 64-bit native field.
const MemPerCPU uint64 = 1 << 63

// NiceOffset is the native-side bias added to a signed on-wire nice value
// so the native field can be stored unsigned.
const NiceOffset uint32 = 10000

// CoreSpecThread is the high bit of the 16-bit core-spec/thread-spec
// field distinguishing which variant is active.
const CoreSpecThread uint16 = 1 << 15

// SigRTMax bounds the signal numbers accepted without a warning.
const SigRTMax = 64
