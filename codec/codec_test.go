package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wlmkit/dataparser/datatree"
	"github.com/wlmkit/dataparser/resolve"
)

func newArgs() *resolve.Args {
	return resolve.New(resolve.Parsing, resolve.FlagNone)
}

func TestUint32SaturatesOnOverflow(t *testing.T) {
	args := newArgs()
	var dst uint32
	require.NoError(t, (Uint32{}).Parse(&dst, datatree.Int64(1<<40), args))
	assert.Equal(t, NoVal32, dst)
}

func TestSigned32RangeCheck(t *testing.T) {
	args := newArgs()
	var dst int32
	require.NoError(t, (Signed32{}).Parse(&dst, datatree.Int64(1<<40), args))
	assert.True(t, args.Diag.HasErrors())
}

func TestBooleanAcceptsIntAndString(t *testing.T) {
	args := newArgs()
	var dst bool
	require.NoError(t, (Boolean{}).Parse(&dst, datatree.Int64(1), args))
	assert.True(t, dst)

	require.NoError(t, (Boolean{}).Parse(&dst, datatree.String("false"), args))
	assert.False(t, dst)
}

func TestUint32NoValObjectRoundTrip(t *testing.T) {
	args := newArgs()
	obj := datatree.Dict()
	obj.Set("set", datatree.Bool(true))
	obj.Set("infinite", datatree.Bool(false))
	obj.Set("number", datatree.Int64(42))

	var dst uint32
	require.NoError(t, (Uint32NoVal{}).Parse(&dst, obj, args))
	assert.Equal(t, uint32(42), dst)

	dumped, err := (Uint32NoVal{}).Dump(&dst, args)
	require.NoError(t, err)
	n, ok := dumped.Get("number")
	require.True(t, ok)
	v, _ := n.AsInt64()
	assert.Equal(t, int64(42), v)
}

func TestUint32NoValInfinityString(t *testing.T) {
	args := resolve.New(resolve.Parsing, resolve.FlagComplexValues)
	var dst uint32
	require.NoError(t, (Uint32NoVal{}).Parse(&dst, datatree.String("Infinity"), args))
	assert.Equal(t, Infinite32, dst)
}

func TestUint32NoValComplexValuesShortcut(t *testing.T) {
	args := resolve.New(resolve.Dumping, resolve.FlagComplexValues)
	v := uint32(7)
	dumped, err := (Uint32NoVal{}).Dump(&v, args)
	require.NoError(t, err)
	n, ok := dumped.AsInt64()
	require.True(t, ok)
	assert.Equal(t, int64(7), n)
}

func TestTimestampRelativeOffset(t *testing.T) {
	args := newArgs()
	var dst int64
	require.NoError(t, (Timestamp{}).Parse(&dst, datatree.String("now+1hour"), args))
	assert.Greater(t, dst, int64(0))
}

func TestSignalNameRoundTrip(t *testing.T) {
	args := newArgs()
	var dst uint16
	require.NoError(t, (Signal{}).Parse(&dst, datatree.String("SIGTERM"), args))
	assert.Equal(t, uint16(15), dst)

	dumped, err := (Signal{}).Dump(&dst, args)
	require.NoError(t, err)
	s, _ := dumped.AsString()
	assert.Equal(t, "SIGTERM", s)
}

func TestSignalOutOfRangeWarns(t *testing.T) {
	args := newArgs()
	var dst uint16
	require.NoError(t, (Signal{}).Parse(&dst, datatree.Int64(200), args))
	assert.NotEmpty(t, args.Diag.Warnings)
}

func TestBitstringRoundTrip(t *testing.T) {
	args := newArgs()
	var dst Bitstring
	require.NoError(t, (BitstringCodec{}).Parse(&dst, datatree.String("0-3,7,12-15"), args))

	dumped, err := (BitstringCodec{}).Dump(&dst, args)
	require.NoError(t, err)
	s, _ := dumped.AsString()
	assert.Equal(t, "0-3,7,12-15", s)
}

func TestHostlistExpandsRange(t *testing.T) {
	args := newArgs()
	var dst Hostlist
	require.NoError(t, (HostlistCodec{}).Parse(&dst, datatree.String("node[01-03]"), args))
	assert.Equal(t, Hostlist{"node01", "node02", "node03"}, dst)
}

func TestCSVFromDictRendersKV(t *testing.T) {
	args := newArgs()
	dict := datatree.Dict()
	dict.Set("a", datatree.String("1"))
	dict.Set("b", datatree.String("2"))

	var dst CSVList
	require.NoError(t, (CSVCodec{}).Parse(&dst, dict, args))
	assert.Equal(t, CSVList{"a=1", "b=2"}, dst)
}

func TestExitCodeDecodesNormalExit(t *testing.T) {
	args := newArgs()
	raw := int32(3 << 8) // WIFEXITED with status 3
	dumped, err := (ExitCodeCodec{}).Dump(&raw, args)
	require.NoError(t, err)
	status, _ := dumped.Get("status")
	s, _ := status.AsString()
	assert.Equal(t, "ERROR", s)
	rc, _ := dumped.Get("return_code")
	v, _ := rc.AsInt64()
	assert.Equal(t, int64(3), v)
}

func TestExitCodeDecodesSignaled(t *testing.T) {
	args := newArgs()
	raw := int32(9) // killed by SIGKILL, no core dump
	dumped, err := (ExitCodeCodec{}).Dump(&raw, args)
	require.NoError(t, err)
	status, _ := dumped.Get("status")
	s, _ := status.AsString()
	assert.Equal(t, "SIGNALED", s)
	sig, _ := dumped.Get("signal")
	id, _ := sig.Get("id")
	v, _ := id.AsInt64()
	assert.Equal(t, int64(9), v)
	name, _ := sig.Get("name")
	n, _ := name.AsString()
	assert.Equal(t, "SIGKILL", n)
}

func TestNiceOffsetEncoding(t *testing.T) {
	args := newArgs()
	var dst uint32
	require.NoError(t, (NiceCodec{}).Parse(&dst, datatree.Int64(-5), args))
	assert.Equal(t, NiceOffset-5, dst)

	dumped, err := (NiceCodec{}).Dump(&dst, args)
	require.NoError(t, err)
	v, _ := dumped.AsInt64()
	assert.Equal(t, int64(-5), v)
}

func TestMemPerCPUOverloadTagging(t *testing.T) {
	v := WithMemPerCPU(1024)
	assert.True(t, HasMemPerCPU(v))
	assert.Equal(t, uint64(1024), MemMagnitude(v))

	v2 := WithMemPerNode(2048)
	assert.False(t, HasMemPerCPU(v2))
}

func TestCoreSpecThreadSpecOverload(t *testing.T) {
	args := newArgs()
	var dst uint16

	require.NoError(t, ThreadSpecCodec.Parse(&dst, datatree.Int64(4), args))
	assert.True(t, IsThreadSpec(dst))

	coreDump, err := CoreSpecCodec.Dump(&dst, args)
	require.NoError(t, err)
	n, _ := coreDump.AsInt64()
	assert.Equal(t, int64(0), n)

	threadDump, err := ThreadSpecCodec.Dump(&dst, args)
	require.NoError(t, err)
	n, _ = threadDump.AsInt64()
	assert.Equal(t, int64(4), n)
}
