package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wlmkit/dataparser/codec"
	"github.com/wlmkit/dataparser/datatree"
	"github.com/wlmkit/dataparser/diag"
	"github.com/wlmkit/dataparser/registry"
	"github.com/wlmkit/dataparser/resolve"
)

func newArgs() *resolve.Args {
	return resolve.New(resolve.Dumping, resolve.FlagNone)
}

// S1: a per-cpu tagged memory requirement dumps under memory_per_cpu only.
func TestJobDumpsMemoryPerCPUOnly(t *testing.T) {
	args := newArgs()
	j := &Job{JobID: 1, Required: JobRequired{ReqMem: codec.WithMemPerCPU(4096)}}

	out, err := registry.Dump(TypeJob, j, args)
	require.NoError(t, err)

	required, ok := out.Get("required")
	require.True(t, ok)
	perCPU, ok := required.Get("memory_per_cpu")
	require.True(t, ok)
	set, _ := perCPU.Get("set")
	b, _ := set.AsBool()
	assert.True(t, b)
	number, _ := perCPU.Get("number")
	n, _ := number.AsInt64()
	assert.Equal(t, int64(4096), n)

	_, hasPerNode := required.Get("memory_per_node")
	assert.False(t, hasPerNode)
}

// S2: nice offset-encodes, and an out-of-range wire value is INVALID_NICE.
func TestJobNiceOffsetAndBounds(t *testing.T) {
	args := resolve.New(resolve.Parsing, resolve.FlagNone)
	in := datatree.Dict()
	in.Set("job_id", datatree.Int64(1))
	in.Set("nice", datatree.Int64(-10))

	var j Job
	require.NoError(t, registry.Parse(TypeJob, &j, in, args))
	assert.False(t, args.Diag.HasErrors())
	assert.Equal(t, codec.NiceOffset-10, j.Nice)

	args2 := resolve.New(resolve.Parsing, resolve.FlagNone)
	in2 := datatree.Dict()
	in2.Set("job_id", datatree.Int64(1))
	in2.Set("nice", datatree.Int64(2147483646))

	var j2 Job
	require.NoError(t, registry.Parse(TypeJob, &j2, in2, args2))
	require.True(t, args2.Diag.HasErrors())
	assert.Equal(t, diag.CodeInvalidNice, args2.Diag.Errors[0].Code)
}

// S3: an out-of-range signal number warns without failing the parse.
func TestJobKillWarningSignalOutOfRangeWarns(t *testing.T) {
	args := resolve.New(resolve.Parsing, resolve.FlagNone)
	in := datatree.Dict()
	in.Set("job_id", datatree.Int64(1))
	in.Set("kill_warning_signal", datatree.Int64(4097))

	var j Job
	require.NoError(t, registry.Parse(TypeJob, &j, in, args))
	assert.False(t, args.Diag.HasErrors())
	require.Len(t, args.Diag.Warnings, 1)
	assert.Equal(t, "Non-standard signal number: 4097", args.Diag.Warnings[0].Msg)
}

// S5: a signaled exit code dumps a nested {id,name} signal object.
func TestJobExitCodeSignaledRendersSignalObject(t *testing.T) {
	args := newArgs()
	j := &Job{JobID: 1, ExitCode: 9} // low 7 bits = 9 (SIGKILL), no core dump

	out, err := registry.Dump(TypeJob, j, args)
	require.NoError(t, err)
	exitCode, ok := out.Get("exit_code")
	require.True(t, ok)
	status, _ := exitCode.Get("status")
	s, _ := status.AsString()
	assert.Equal(t, "SIGNALED", s)
	signal, _ := exitCode.Get("signal")
	id, _ := signal.Get("id")
	idVal, _ := id.AsInt64()
	assert.Equal(t, int64(9), idVal)
	name, _ := signal.Get("name")
	n, _ := name.AsString()
	assert.Equal(t, "SIGKILL", n)
}

// S7: a removed field is accepted and ignored, with a warning whose path
// ends in the field's key.
func TestJobPowerFlagsRemovedFieldWarns(t *testing.T) {
	args := resolve.New(resolve.Parsing, resolve.FlagNone)
	in := datatree.Dict()
	in.Set("job_id", datatree.Int64(1))
	in.Set("power_flags", datatree.String("LEVEL"))

	var j Job
	require.NoError(t, registry.Parse(TypeJob, &j, in, args))
	assert.False(t, args.Diag.HasErrors())
	require.Len(t, args.Diag.Warnings, 1)
	assert.Equal(t, "power_flags", args.Diag.Warnings[0].Path)
}

func TestJobQoSRoundTripThroughResolver(t *testing.T) {
	qos := NewQoSTable(map[uint32]string{1: "normal", 2: "high"})

	args := resolve.New(resolve.Parsing, resolve.FlagNone)
	args.QoS = qos
	in := datatree.Dict()
	in.Set("job_id", datatree.Int64(1))
	in.Set("qos", datatree.String("high"))

	var j Job
	require.NoError(t, registry.Parse(TypeJob, &j, in, args))
	assert.False(t, args.Diag.HasErrors())
	assert.Equal(t, uint32(2), j.QoSID)

	dumpArgs := resolve.New(resolve.Dumping, resolve.FlagNone)
	dumpArgs.QoS = qos
	out, err := registry.Dump(TypeJob, &j, dumpArgs)
	require.NoError(t, err)
	qosNode, _ := out.Get("qos")
	name, _ := qosNode.AsString()
	assert.Equal(t, "high", name)
}

// Without a QoS resolver, the qos field is NOT_SUPPORTED rather than
// aborting the rest of the job.
func TestJobQoSWithoutResolverIsNotSupported(t *testing.T) {
	args := resolve.New(resolve.Parsing, resolve.FlagNone)
	in := datatree.Dict()
	in.Set("job_id", datatree.Int64(1))
	in.Set("qos", datatree.String("high"))

	var j Job
	require.NoError(t, registry.Parse(TypeJob, &j, in, args))
	require.True(t, args.Diag.HasErrors())
	assert.Equal(t, diag.CodeNotSupported, args.Diag.Errors[0].Code)
	assert.Equal(t, uint32(1), j.JobID) // sibling fields still parse despite the qos failure
}
