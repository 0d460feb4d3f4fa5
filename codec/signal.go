package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wlmkit/dataparser/datatree"
	"github.com/wlmkit/dataparser/resolve"
)

var signalNames = map[int]string{
	1: "SIGHUP", 2: "SIGINT", 3: "SIGQUIT", 4: "SIGILL", 5: "SIGTRAP",
	6: "SIGABRT", 7: "SIGBUS", 8: "SIGFPE", 9: "SIGKILL", 10: "SIGUSR1",
	11: "SIGSEGV", 12: "SIGUSR2", 13: "SIGPIPE", 14: "SIGALRM", 15: "SIGTERM",
	16: "SIGSTKFLT", 17: "SIGCHLD", 18: "SIGCONT", 19: "SIGSTOP", 20: "SIGTSTP",
	21: "SIGTTIN", 22: "SIGTTOU", 23: "SIGURG", 24: "SIGXCPU", 25: "SIGXFSZ",
	26: "SIGVTALRM", 27: "SIGPROF", 28: "SIGWINCH", 29: "SIGIO", 30: "SIGPWR",
	31: "SIGSYS",
}

var signalNumbers = func() map[string]int {
	m := make(map[string]int, len(signalNames))
	for n, name := range signalNames {
		m[name] = n
	}
	return m
}()

func signalName(n int) string {
	if name, ok := signalNames[n]; ok {
		return name
	}
	if n >= 32 && n < SigRTMax {
		return fmt.Sprintf("SIGRTMIN+%d", n-32)
	}
	return fmt.Sprintf("SIG%d", n)
}

func signalNumber(name string) (int, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if n, ok := signalNumbers[name]; ok {
		return n, true
	}
	if strings.HasPrefix(name, "SIGRTMIN+") {
		if off, err := strconv.Atoi(strings.TrimPrefix(name, "SIGRTMIN+")); err == nil {
			return 32 + off, true
		}
	}
	if strings.HasPrefix(name, "SIG") {
		if n, err := strconv.Atoi(strings.TrimPrefix(name, "SIG")); err == nil {
			return n, true
		}
	}
	if n, err := strconv.Atoi(name); err == nil {
		return n, true
	}
	return 0, false
}

// Signal is the ScalarCodec for a signal-number field: accepts
// an integer or a symbolic name, warns on out-of-range numbers, dumps the
// symbolic name, and dumps empty for the NO_VAL sentinel.
type Signal struct{}

func (Signal) Parse(dst *uint16, src *datatree.Node, args *resolve.Args) error {
	if src == nil || src.IsNull() {
		*dst = 0
		return nil
	}
	var n int
	if i, ok := src.AsInt64(); ok {
		n = int(i)
	} else if s, ok := src.AsString(); ok {
		if s == "" {
			*dst = NoVal16
			return nil
		}
		parsed, ok := signalNumber(s)
		if !ok {
			args.Diag.Warn(args.Path.Path(), fmt.Sprintf("unrecognized signal name %q", s))
			*dst = 0
			return nil
		}
		n = parsed
	} else {
		args.Diag.Warn(args.Path.Path(), "expected an integer or signal name")
		*dst = 0
		return nil
	}
	if n < 1 || n >= SigRTMax {
		args.Diag.Warn(args.Path.Path(), fmt.Sprintf("Non-standard signal number: %d", n))
	}
	*dst = uint16(n)
	return nil
}

func (Signal) Dump(src *uint16, args *resolve.Args) (*datatree.Node, error) {
	if *src == NoVal16 || *src == 0 {
		if args.IsComplex() {
			return datatree.Null(), nil
		}
		return datatree.String(""), nil
	}
	return datatree.String(signalName(int(*src))), nil
}
