package model

import (
	"github.com/wlmkit/dataparser/codec"
	"github.com/wlmkit/dataparser/composite"
	"github.com/wlmkit/dataparser/flagarray"
	"github.com/wlmkit/dataparser/registry"
)

// nodeStateEntries is the flag table backing a node's "state" field: the
// low three bits name the base state (an EQUAL group), everything above
// that is an independent condition bit.
var nodeStateEntries = []flagarray.Entry{
	{Kind: flagarray.Equal, FlagName: "IDLE", Value: 0, Mask: 0x7, Description: "no jobs running"},
	{Kind: flagarray.Equal, FlagName: "DOWN", Value: 1, Mask: 0x7, Description: "not responding or administratively down"},
	{Kind: flagarray.Equal, FlagName: "ALLOCATED", Value: 2, Mask: 0x7, Description: "fully allocated"},
	{Kind: flagarray.Equal, FlagName: "MIXED", Value: 3, Mask: 0x7, Description: "partially allocated"},
	{Kind: flagarray.Bit, FlagName: "DRAIN", Value: 0x10, Description: "draining, no new jobs"},
	{Kind: flagarray.Bit, FlagName: "PERFCTRS", Value: 0x20, Description: "running under performance counters"},
	{Kind: flagarray.Bit, FlagName: "FAIL", Value: 0x40, Description: "scheduled for decommission"},
	{Kind: flagarray.Bit, FlagName: "MAINTENANCE", Value: 0x80, Hidden: true, Description: "reserved for maintenance, not wire-visible"},
}

func newNodeStatesDescriptor() *registry.Descriptor {
	return registry.FlagArrayDescriptor[uint32](TypeNodeStates, "node_states", "uint32", nodeStateEntries, false, "node state flags")
}

// Node is the native struct backing a compute node descriptor.
type Node struct {
	Name  string
	State uint32
}

func newNodeDescriptor() *registry.Descriptor {
	fields := []*registry.FieldDescriptor{
		composite.Field("name", "Name", func(n *Node) *string { return &n.Name }, codec.String{}, true, "node name"),
		composite.LinkedField("state", "State", func(n *Node) *uint32 { return &n.State }, TypeNodeStates, false, "node state flags"),
	}
	return composite.Descriptor[Node](TypeNode, "node", "struct node_record",
		fields, func() *Node { return &Node{} }, registry.OpenAPIObject, "a compute node")
}

// Partition groups a named set of nodes, expressed on the wire as a
// compressed hostlist range.
type Partition struct {
	Name  string
	Nodes codec.Hostlist
}

func newPartitionDescriptor() *registry.Descriptor {
	fields := []*registry.FieldDescriptor{
		composite.Field("name", "Name", func(p *Partition) *string { return &p.Name }, codec.String{}, true, "partition name"),
		composite.Field("nodes", "Nodes", func(p *Partition) *codec.Hostlist { return &p.Nodes }, codec.HostlistCodec{}, false, "member node hostlist"),
	}
	return composite.Descriptor[Partition](TypePartition, "partition", "struct part_record",
		fields, func() *Partition { return &Partition{} }, registry.OpenAPIObject, "a scheduling partition")
}
