package diag

import "fmt"

// Code is the closed error taxonomy surfaced to callers.
type Code int

const (
	// CodeNone is the zero value; never attached to a real diagnostic.
	CodeNone Code = iota
	CodeDataConvFailed
	CodeDataExpectedList
	CodeDataExpectedDict
	CodeInvalidValue
	CodeUnknownType
	CodeNotSupported
	CodeInvalidQoS
	CodeInvalidAssoc
	CodeInvalidTRES
	CodeUserIDUnknown
	CodeGroupIDUnknown
	CodeInvalidNice
	CodeInvalidCoreCnt
	CodeInvalidTaskMemory
	CodeBadThreadPerCore
	CodeRemovedField
)

// String implements fmt.Stringer, rendering each code's wire-visible name.
func (c Code) String() string {
	switch c {
	case CodeDataConvFailed:
		return "DATA_CONV_FAILED"
	case CodeDataExpectedList:
		return "DATA_EXPECTED_LIST"
	case CodeDataExpectedDict:
		return "DATA_EXPECTED_DICT"
	case CodeInvalidValue:
		return "INVALID_VALUE"
	case CodeUnknownType:
		return "UNKNOWN_TYPE"
	case CodeNotSupported:
		return "NOT_SUPPORTED"
	case CodeInvalidQoS:
		return "INVALID_QOS"
	case CodeInvalidAssoc:
		return "INVALID_ASSOC"
	case CodeInvalidTRES:
		return "INVALID_TRES"
	case CodeUserIDUnknown:
		return "USER_ID_UNKNOWN"
	case CodeGroupIDUnknown:
		return "GROUP_ID_UNKNOWN"
	case CodeInvalidNice:
		return "INVALID_NICE"
	case CodeInvalidCoreCnt:
		return "INVALID_CORE_CNT"
	case CodeInvalidTaskMemory:
		return "INVALID_TASK_MEMORY"
	case CodeBadThreadPerCore:
		return "BAD_THREAD_PER_CORE"
	case CodeRemovedField:
		return "REMOVED_FIELD"
	default:
		return "UNKNOWN_CODE"
	}
}

// Error is a single fatal diagnostic, attributed to a source path.
type Error struct {
	Path           string
	Code           Code
	Msg            string
	CallerLocation string
	Err            error // optional underlying cause
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%s): %v", e.Path, e.Msg, e.Code, e.Err)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Path, e.Msg, e.Code)
}

func (e *Error) Unwrap() error { return e.Err }

// Warning is a single non-fatal diagnostic, attributed to a source path.
type Warning struct {
	Path string
	Msg  string
}
