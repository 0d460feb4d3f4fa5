package burstbuffer

import (
	"fmt"
	"strconv"
	"strings"
)

// sizeInNodesTag marks a Size as counted in whole nodes rather than GB,
// the same overloaded-tag-bit trick as codec.MemPerCPU, carried in the
// high bit of a uint64 so ordinary GB magnitudes never collide with it.
const sizeInNodesTag = uint64(1) << 63

// Size is a burst-buffer space quantity: either a GB magnitude or, when
// sizeInNodesTag is set, a node count.
type Size uint64

// InNodes reports whether s counts nodes rather than gigabytes.
func (s Size) InNodes() bool { return uint64(s)&sizeInNodesTag != 0 }

// Magnitude strips the node-count tag, returning the plain number.
func (s Size) Magnitude() uint64 { return uint64(s) &^ sizeInNodesTag }

func (s Size) String() string {
	if s.InNodes() {
		return fmt.Sprintf("%dN", s.Magnitude())
	}
	return fmt.Sprintf("%dG", s.Magnitude())
}

// Add combines two sizes, upgrading to node-counted if either operand is.
func (s Size) Add(o Size) Size {
	if s.InNodes() || o.InNodes() {
		return Size((s.Magnitude()+o.Magnitude())&^sizeInNodesTag | sizeInNodesTag)
	}
	return Size(s.Magnitude() + o.Magnitude())
}

// Sub subtracts o from s, floored at zero rather than underflowing,
// matching the generic plugin's load-accounting guard. The result is
// node-tagged when either operand is.
func (s Size) Sub(o Size) Size {
	inNodes := s.InNodes() || o.InNodes()
	sm, om := s.Magnitude(), o.Magnitude()
	var diff uint64
	if sm >= om {
		diff = sm - om
	}
	if inNodes {
		return Size(diff | sizeInNodesTag)
	}
	return Size(diff)
}

// ParseSize translates a burst-buffer size token ("4096", "4G", "512M",
// "2T", "1P", "8N") into a Size, recognizing the same MB/GB/TB/PB/Nodes
// suffixes as the source plugin's _get_size_num.
func ParseSize(tok string) (Size, error) {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return 0, fmt.Errorf("burstbuffer: empty size token")
	}
	i := 0
	for i < len(tok) && (tok[i] == '-' || (tok[i] >= '0' && tok[i] <= '9')) {
		i++
	}
	numPart, suffix := tok[:i], strings.TrimSpace(tok[i:])
	n, err := strconv.ParseInt(numPart, 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("burstbuffer: bad size token %q", tok)
	}
	mag := uint64(n)
	if suffix == "" {
		return Size(mag), nil
	}
	switch suffix[0] {
	case 'm', 'M':
		return Size((mag + 1023) / 1024), nil
	case 'g', 'G':
		return Size(mag), nil
	case 't', 'T':
		return Size(mag * 1024), nil
	case 'p', 'P':
		return Size(mag * 1024 * 1024), nil
	case 'n', 'N':
		return Size(mag | sizeInNodesTag), nil
	default:
		return 0, fmt.Errorf("burstbuffer: unrecognized size suffix in %q", tok)
	}
}

// sizeFromSpec extracts and parses the "size=" token from a job's
// burst_buffer specification string, mirroring _get_bb_size. Returns 0,
// nil if the job carries no size request.
func sizeFromSpec(spec string) (Size, error) {
	idx := strings.Index(spec, "size=")
	if idx < 0 {
		return 0, nil
	}
	rest := spec[idx+len("size="):]
	end := strings.IndexAny(rest, " \t")
	if end >= 0 {
		rest = rest[:end]
	}
	return ParseSize(rest)
}
