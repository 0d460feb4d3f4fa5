package diag

import "github.com/google/uuid"

// Collector accumulates the warnings and fatal errors raised during one
// top-level Parse or Dump call. It is owned by the caller for
// the duration of that call and must not be shared across concurrent calls.
type Collector struct {
	// CallID tags every diagnostic gathered by this Collector so a log
	// line can be cross-referenced back to the Parse/Dump call that
	// produced it.
	CallID uuid.UUID

	Warnings []Warning
	Errors   []*Error

	warnedOnce map[string]bool
}

// NewCollector returns an empty Collector with a fresh CallID.
func NewCollector() *Collector {
	return &Collector{CallID: uuid.New(), warnedOnce: make(map[string]bool)}
}

// Warn records a non-fatal diagnostic at path.
func (c *Collector) Warn(path, msg string) {
	c.Warnings = append(c.Warnings, Warning{Path: path, Msg: msg})
}

// WarnOnce records a non-fatal diagnostic at most once per (path, key)
// pair for the lifetime of the collector. Used for deprecation warnings
// that must fire once per field, not once per element when the field
// recurs inside a list.
func (c *Collector) WarnOnce(path, key, msg string) {
	full := path + "\x00" + key
	if c.warnedOnce[full] {
		return
	}
	c.warnedOnce[full] = true
	c.Warn(path, msg)
}

// Fail records a fatal diagnostic at path and returns it so callers can
// `return c.Fail(...)` directly from a parse/dump function.
func (c *Collector) Fail(path string, code Code, msg string, cause error) *Error {
	e := &Error{Path: path, Code: code, Msg: msg, Err: cause}
	c.Errors = append(c.Errors, e)
	return e
}

// FirstError returns the first fatal diagnostic recorded, or nil.
func (c *Collector) FirstError() *Error {
	if len(c.Errors) == 0 {
		return nil
	}
	return c.Errors[0]
}

// HasErrors reports whether any fatal diagnostic was recorded.
func (c *Collector) HasErrors() bool { return len(c.Errors) > 0 }
