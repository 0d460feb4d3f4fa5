package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wlmkit/dataparser/datatree"
	"github.com/wlmkit/dataparser/registry"
	"github.com/wlmkit/dataparser/resolve"
)

func TestJobUserAndGroupNameRoundTrip(t *testing.T) {
	users := NewUserTable(map[uint32]string{100: "alice"})
	groups := NewGroupTable(map[uint32]string{200: "researchers"})

	args := resolve.New(resolve.Parsing, resolve.FlagNone)
	args.User = users
	args.Group = groups
	in := datatree.Dict()
	in.Set("job_id", datatree.Int64(1))
	in.Set("user_name", datatree.String("alice"))
	in.Set("group_name", datatree.String("researchers"))

	var j Job
	require.NoError(t, registry.Parse(TypeJob, &j, in, args))
	assert.False(t, args.Diag.HasErrors())
	assert.Equal(t, uint32(100), j.UserID)
	assert.Equal(t, uint32(200), j.GroupID)
}

func TestJobAssociationRoundTrip(t *testing.T) {
	assoc := NewAssocTable([]AssocRow{{ID: 7, Cluster: "c1", Account: "acct", User: "alice", Partition: "debug"}})

	args := resolve.New(resolve.Parsing, resolve.FlagNone)
	args.Assoc = assoc
	in := datatree.Dict()
	in.Set("job_id", datatree.Int64(1))
	in.Set("association", datatree.String("c1/acct/alice/debug"))

	var j Job
	require.NoError(t, registry.Parse(TypeJob, &j, in, args))
	assert.False(t, args.Diag.HasErrors())
	assert.Equal(t, uint32(7), j.AssocID)

	dumpArgs := resolve.New(resolve.Dumping, resolve.FlagNone)
	dumpArgs.Assoc = assoc
	out, err := registry.Dump(TypeJob, &j, dumpArgs)
	require.NoError(t, err)
	a, _ := out.Get("association")
	s, _ := a.AsString()
	assert.Equal(t, "c1/acct/alice/debug", s)
}

func TestJobTRESRefRoundTrip(t *testing.T) {
	tres := NewTRESTable([]TRESRow{{ID: 5, Type: "gres", Name: "gpu"}}, nil)

	args := resolve.New(resolve.Parsing, resolve.FlagNone)
	args.TRES = tres
	in := datatree.Dict()
	in.Set("job_id", datatree.Int64(1))
	reqTres := datatree.Dict()
	reqTres.Set("type", datatree.String("gres"))
	reqTres.Set("name", datatree.String("gpu"))
	in.Set("tres_req", reqTres)

	var j Job
	require.NoError(t, registry.Parse(TypeJob, &j, in, args))
	assert.False(t, args.Diag.HasErrors())
	assert.Equal(t, uint32(5), j.TRESID)
}

func TestCoreSpecThreadSpecOverloadOnJob(t *testing.T) {
	args := resolve.New(resolve.Dumping, resolve.FlagNone)
	j := &Job{JobID: 1}
	j.CoreSpec = 4 // plain core-spec count, no tag bit

	out, err := registry.Dump(TypeJob, j, args)
	require.NoError(t, err)
	coreSpec, _ := out.Get("core_spec")
	cs, _ := coreSpec.AsInt64()
	assert.Equal(t, int64(4), cs)
	_, hasThreadSpec := out.Get("thread_spec")
	assert.False(t, hasThreadSpec)
}
