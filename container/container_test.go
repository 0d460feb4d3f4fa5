package container

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wlmkit/dataparser/datatree"
	"github.com/wlmkit/dataparser/registry"
	"github.com/wlmkit/dataparser/resolve"
)

const (
	typeTestInt registry.Type = 3000
	typeIntList  registry.Type = 3001
	typeIntPtr   registry.Type = 3002
)

type intCodec struct{}

func (intCodec) Parse(dst *int64, src *datatree.Node, args *resolve.Args) error {
	v, _ := src.AsInt64()
	*dst = v
	return nil
}
func (intCodec) Dump(src *int64, args *resolve.Args) (*datatree.Node, error) {
	return datatree.Int64(*src), nil
}

var setupOnce sync.Once

func setup(t *testing.T) {
	t.Helper()
	setupOnce.Do(func() {
		registry.Register(registry.SimpleDescriptor[int64](typeTestInt, "test_int", "int64", intCodec{}, registry.OpenAPIInt64, ""))
		registry.Register(List[int64](typeIntList, "test_int_list", "[]int64", typeTestInt, ""))
		registry.Register(Ptr[int64](typeIntPtr, "test_int_ptr", "*int64", typeTestInt, true, ""))
	})
}

func newArgs() *resolve.Args {
	return resolve.New(resolve.Parsing, resolve.FlagNone)
}

func TestListParseDumpRoundTrip(t *testing.T) {
	setup(t)
	args := newArgs()

	src := datatree.List()
	src.Append(datatree.Int64(1))
	src.Append(datatree.Int64(2))
	src.Append(datatree.Int64(3))

	var got []int64
	require.NoError(t, registry.Parse(typeIntList, &got, src, args))
	assert.Equal(t, []int64{1, 2, 3}, got)

	out, err := registry.Dump(typeIntList, &got, args)
	require.NoError(t, err)
	assert.Equal(t, 3, out.Len())
}

func TestPtrNullRoundTrip(t *testing.T) {
	setup(t)
	args := newArgs()

	var got *int64
	require.NoError(t, registry.Parse(typeIntPtr, &got, datatree.Null(), args))
	assert.Nil(t, got)

	out, err := registry.Dump(typeIntPtr, &got, args)
	require.NoError(t, err)
	assert.True(t, out.IsNull())
}

func TestPtrValueRoundTrip(t *testing.T) {
	setup(t)
	args := newArgs()

	var got *int64
	require.NoError(t, registry.Parse(typeIntPtr, &got, datatree.Int64(9), args))
	require.NotNil(t, got)
	assert.Equal(t, int64(9), *got)

	out, err := registry.Dump(typeIntPtr, &got, args)
	require.NoError(t, err)
	v, _ := out.AsInt64()
	assert.Equal(t, int64(9), v)
}

func TestListPathPushPopBalanced(t *testing.T) {
	setup(t)
	args := newArgs()

	src := datatree.List()
	src.Append(datatree.Int64(1))

	var got []int64
	require.NoError(t, registry.Parse(typeIntList, &got, src, args))
	assert.Equal(t, 0, args.Path.Depth())
}
