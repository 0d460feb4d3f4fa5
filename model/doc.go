// Package model registers the concrete descriptors a cluster workload
// manager's REST layer actually parses and dumps: jobs, nodes, and the
// handful of shared resolver-backed lookups they reference. Domain
// correctness of any one field is secondary to exercising every engine
// path — overloaded fields, flag arrays, removed fields, NO_VAL tri-state
// numerics, and resolver-gated COMPLEX fields all get a concrete home
// here.
package model
