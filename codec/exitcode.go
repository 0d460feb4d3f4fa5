package codec

import (
	"github.com/wlmkit/dataparser/datatree"
	"github.com/wlmkit/dataparser/diag"
	"github.com/wlmkit/dataparser/resolve"
)

// ExitStatus is the closed status enum a decoded waitstatus renders as.
type ExitStatus int

const (
	ExitInvalid ExitStatus = iota
	ExitPending
	ExitSuccess
	ExitError
	ExitSignaled
	ExitCoreDumped
)

func (s ExitStatus) String() string {
	switch s {
	case ExitPending:
		return "PENDING"
	case ExitSuccess:
		return "SUCCESS"
	case ExitError:
		return "ERROR"
	case ExitSignaled:
		return "SIGNALED"
	case ExitCoreDumped:
		return "CORE_DUMPED"
	default:
		return "INVALID"
	}
}

// exitPending is the raw sentinel a job that has not yet exited carries
// in its waitstatus field: NoVal32's bit pattern (0xFFFFFFFF) as an int32.
const exitPending int32 = -1

// decodeWaitStatus interprets raw as a POSIX waitstatus word: the low 7
// bits name a terminating signal (0 meaning "exited normally" instead),
// bit 0x80 is the core-dump flag, and the next byte up is the exit code
// for the WIFEXITED case.
func decodeWaitStatus(raw int32) (status ExitStatus, returnCode int32, signal int32) {
	if raw == exitPending {
		return ExitPending, 0, 0
	}
	w := uint32(raw)
	low := w & 0x7f
	if low == 0 {
		code := int32((w >> 8) & 0xff)
		if code == 0 {
			return ExitSuccess, 0, 0
		}
		return ExitError, code, 0
	}
	sig := int32(low & 0x7f)
	if w&0x80 != 0 {
		return ExitCoreDumped, 0, sig
	}
	return ExitSignaled, 0, sig
}

func encodeWaitStatus(returnCode, signal int32) int32 {
	if signal != 0 {
		return int32(uint32(signal) & 0x7f)
	}
	return int32((uint32(returnCode) & 0xff) << 8)
}

// ExitCodeCodec is the ScalarCodec for a native int32 waitstatus field:
// accepts the tagged {status,return_code,signal} object or a bare integer
// interpreted as a raw waitstatus, and always dumps the tagged object.
type ExitCodeCodec struct{}

func (ExitCodeCodec) Parse(dst *int32, src *datatree.Node, args *resolve.Args) error {
	if src == nil || src.IsNull() {
		*dst = exitPending
		return nil
	}
	if i, ok := src.AsInt64(); ok {
		*dst = int32(i)
		return nil
	}
	if src.Kind() != datatree.KindDict {
		args.Diag.Fail(args.Path.Path(), diag.CodeDataConvFailed, "expected an exit code object or raw integer", nil)
		return nil
	}
	var returnCode, signal int32
	if n, ok := src.Get("return_code"); ok {
		v, _ := n.AsInt64()
		returnCode = int32(v)
	}
	if n, ok := src.Get("signal"); ok && !n.IsNull() {
		if n.Kind() == datatree.KindDict {
			if idNode, ok := n.Get("id"); ok {
				v, _ := idNode.AsInt64()
				signal = int32(v)
			} else if nameNode, ok := n.Get("name"); ok {
				if name, ok := nameNode.AsString(); ok {
					if id, ok := signalNumber(name); ok {
						signal = int32(id)
					}
				}
			}
		} else if v, ok := n.AsInt64(); ok {
			signal = int32(v)
		}
	}
	statusStr := ""
	if n, ok := src.Get("status"); ok {
		statusStr, _ = n.AsString()
	}
	if statusStr == "PENDING" {
		*dst = exitPending
		return nil
	}
	*dst = encodeWaitStatus(returnCode, signal)
	return nil
}

// Dump always renders status and return_code, and renders signal as a
// nested {id,name} object when a terminating signal exists, or null
// otherwise.
func (ExitCodeCodec) Dump(src *int32, args *resolve.Args) (*datatree.Node, error) {
	status, returnCode, signal := decodeWaitStatus(*src)
	obj := datatree.Dict()
	obj.Set("status", datatree.String(status.String()))

	switch status {
	case ExitSuccess, ExitError:
		obj.Set("return_code", datatree.Int64(int64(returnCode)))
	default:
		obj.Set("return_code", datatree.Null())
	}

	switch status {
	case ExitSignaled, ExitCoreDumped:
		sig := datatree.Dict()
		sig.Set("id", datatree.Int64(int64(signal)))
		sig.Set("name", datatree.String(signalName(int(signal))))
		obj.Set("signal", sig)
	default:
		obj.Set("signal", datatree.Null())
	}

	return obj, nil
}
