package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wlmkit/dataparser/datatree"
	"github.com/wlmkit/dataparser/registry"
	"github.com/wlmkit/dataparser/resolve"
)

// S6: a MIXED base state plus DRAIN and PERFCTRS bits dumps in
// EQUAL-then-declaration-order.
func TestNodeStateDumpOrdering(t *testing.T) {
	args := resolve.New(resolve.Dumping, resolve.FlagNone)
	n := &Node{Name: "node01", State: 3 | 0x10 | 0x20} // MIXED | DRAIN | PERFCTRS

	out, err := registry.Dump(TypeNode, n, args)
	require.NoError(t, err)
	state, ok := out.Get("state")
	require.True(t, ok)
	require.Equal(t, 3, state.Len())

	var names []string
	for _, item := range state.Items() {
		s, _ := item.AsString()
		names = append(names, s)
	}
	assert.Equal(t, []string{"MIXED", "DRAIN", "PERFCTRS"}, names)
}

func TestNodeStateHiddenEntryNeverDumped(t *testing.T) {
	args := resolve.New(resolve.Dumping, resolve.FlagNone)
	n := &Node{Name: "node01", State: 0x80} // MAINTENANCE only, hidden

	out, err := registry.Dump(TypeNode, n, args)
	require.NoError(t, err)
	state, _ := out.Get("state")
	var names []string
	for _, item := range state.Items() {
		s, _ := item.AsString()
		names = append(names, s)
	}
	// MAINTENANCE stays hidden; the base-state bits are 0, so IDLE matches.
	assert.Equal(t, []string{"IDLE"}, names)
}

// S4: a compressed hostlist range expands to zero-padded member names.
func TestPartitionHostlistExpands(t *testing.T) {
	args := resolve.New(resolve.Parsing, resolve.FlagNone)
	in := datatree.Dict()
	in.Set("name", datatree.String("debug"))
	in.Set("nodes", datatree.String("node[01-03]"))

	var p Partition
	require.NoError(t, registry.Parse(TypePartition, &p, in, args))
	assert.False(t, args.Diag.HasErrors())
	assert.Equal(t, []string{"node01", "node02", "node03"}, []string(p.Nodes))

	out, err := registry.Dump(TypePartition, &p, args)
	require.NoError(t, err)
	nodes, _ := out.Get("nodes")
	assert.Equal(t, 3, nodes.Len())
}
