package flagarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wlmkit/dataparser/datatree"
	"github.com/wlmkit/dataparser/resolve"
)

const (
	bitA uint64 = 1 << 0
	bitB uint64 = 1 << 1
	// A two-bit sub-field occupying bits 4-5, with three legal values.
	memMask  uint64 = 0b11 << 4
	memCPU   uint64 = 0b01 << 4
	memNode  uint64 = 0b10 << 4
)

var testEntries = []Entry{
	{Kind: Equal, FlagName: "MEM_PER_CPU", Value: memCPU, Mask: memMask},
	{Kind: Equal, FlagName: "MEM_PER_NODE", Value: memNode, Mask: memMask},
	{Kind: Bit, FlagName: "A", Value: bitA},
	{Kind: Bit, FlagName: "B", Value: bitB},
	{Kind: Bit, FlagName: "HIDDEN", Value: 1 << 2, Hidden: true},
}

func newArgs() *resolve.Args {
	return resolve.New(resolve.Parsing, resolve.FlagNone)
}

func TestParseBitFlags(t *testing.T) {
	args := newArgs()
	src := datatree.List()
	src.Append(datatree.String("A"))
	src.Append(datatree.String("B"))

	var dst uint32
	require.NoError(t, Parse(testEntries, &dst, src, args, false))
	assert.Equal(t, uint32(bitA|bitB), dst)
	assert.False(t, args.Diag.HasErrors())
}

func TestParseUnknownFlagIsWarningNotFatal(t *testing.T) {
	args := newArgs()
	src := datatree.List()
	src.Append(datatree.String("NOT_A_FLAG"))

	var dst uint32
	require.NoError(t, Parse(testEntries, &dst, src, args, false))
	assert.False(t, args.Diag.HasErrors())
	assert.Len(t, args.Diag.Warnings, 1)
}

func TestParseSingleFlag(t *testing.T) {
	args := newArgs()
	var dst uint32
	require.NoError(t, Parse(testEntries, &dst, datatree.String("MEM_PER_NODE"), args, true))
	assert.Equal(t, uint32(memNode), dst)
}

func TestDumpOrdersEqualBeforeBitAndSuppressesOverlap(t *testing.T) {
	args := newArgs()
	v := uint32(memCPU | bitA)

	out, err := Dump(testEntries, v, args, false)
	require.NoError(t, err)

	var names []string
	for _, item := range out.Items() {
		s, _ := item.AsString()
		names = append(names, s)
	}
	assert.Equal(t, []string{"MEM_PER_CPU", "A"}, names)
}

func TestDumpHidesHiddenEntries(t *testing.T) {
	args := newArgs()
	v := uint32(1 << 2)

	out, err := Dump(testEntries, v, args, false)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Len())
}

func TestDumpSingleFlagEmptyIsNull(t *testing.T) {
	args := newArgs()
	out, err := Dump(testEntries, uint32(0), args, true)
	require.NoError(t, err)
	assert.True(t, out.IsNull())
}

func TestRoundTrip(t *testing.T) {
	args := newArgs()
	original := uint32(memNode | bitA | bitB)

	dumped, err := Dump(testEntries, original, args, false)
	require.NoError(t, err)

	var back uint32
	require.NoError(t, Parse(testEntries, &back, dumped, args, false))

	reDumped, err := Dump(testEntries, back, args, false)
	require.NoError(t, err)
	assert.Equal(t, dumped.Len(), reDumped.Len())
}
