// Package resolve defines the ambient argument object threaded through
// every Parse/Dump call and the read-only resolver interfaces
// a descriptor may declare as prerequisites via its Needs flag set.
//
// A *Args value replaces the C source's thread-local globals: every call
// receives its resolvers, diagnostics collector, and mode flags explicitly,
// which is what makes concurrent calls from a worker pool safe by
// construction — no call may observe another call's state.
package resolve
