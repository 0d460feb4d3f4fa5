package codec

// HasMemPerCPU reports whether v's MemPerCPU tag bit is set, i.e. whether
// v should be read through the memory-per-cpu overloaded field rather
// than memory-per-node.
func HasMemPerCPU(v uint64) bool { return v&MemPerCPU != 0 }

// MemMagnitude strips the MemPerCPU tag bit, returning the plain memory
// quantity regardless of which overloaded field produced v.
func MemMagnitude(v uint64) uint64 { return v &^ MemPerCPU }

// WithMemPerCPU tags mag as a per-CPU quantity.
func WithMemPerCPU(mag uint64) uint64 { return mag | MemPerCPU }

// WithMemPerNode tags mag as a per-node quantity.
func WithMemPerNode(mag uint64) uint64 { return mag &^ MemPerCPU }
