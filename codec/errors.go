package codec

import "errors"

// Sentinel errors for codec-level failures, for callers that want a
// plain Go error rather than a diag.Collector entry. No codec in this
// package returns either of them; the codecs report conversion failures
// through args.Diag.
var (
	// ErrOutOfRange indicates a value was outside the bounds its target
	// width or domain allows.
	ErrOutOfRange = errors.New("codec: value out of range")
	// ErrUnparseable indicates a string value did not match any accepted
	// input form for the codec.
	ErrUnparseable = errors.New("codec: unparseable value")
)
