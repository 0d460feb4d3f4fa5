package burstbuffer

import (
	"github.com/wlmkit/dataparser/codec"
	"github.com/wlmkit/dataparser/composite"
	"github.com/wlmkit/dataparser/datatree"
	"github.com/wlmkit/dataparser/registry"
	"github.com/wlmkit/dataparser/resolve"
)

// TypeAlloc is the registry Type for a single burst-buffer allocation
// record, used only to decode the external status program's reported
// records through the same engine the REST layer runs on.
const TypeAlloc registry.Type = 100

// Alloc is one burst-buffer allocation: either a per-job allocation
// (JobID nonzero) or a persistent named allocation owned by a user
// (Name nonempty, JobID zero), matching bb_alloc_t.
type Alloc struct {
	JobID  uint32
	UserID uint32
	Name   string
	Size   Size
	State  State
}

type stateCodec struct{}

func (stateCodec) Parse(dst *State, src *datatree.Node, args *resolve.Args) error {
	s, ok := src.AsString()
	if !ok {
		*dst = StateAllocated
		return nil
	}
	if st, ok := parseState(s); ok {
		*dst = st
	}
	return nil
}

func (stateCodec) Dump(src *State, args *resolve.Args) (*datatree.Node, error) {
	return datatree.String(src.String()), nil
}

type sizeCodec struct{}

func (sizeCodec) Parse(dst *Size, src *datatree.Node, args *resolve.Args) error {
	s, ok := src.AsString()
	if !ok {
		*dst = 0
		return nil
	}
	sz, err := ParseSize(s)
	if err != nil {
		*dst = 0
		return nil
	}
	*dst = sz
	return nil
}

func (sizeCodec) Dump(src *Size, args *resolve.Args) (*datatree.Node, error) {
	return datatree.String(src.String()), nil
}

func newAllocDescriptor() *registry.Descriptor {
	fields := []*registry.FieldDescriptor{
		composite.Field("job_id", "JobID", func(a *Alloc) *uint32 { return &a.JobID }, codec.Uint32{}, false, "owning job id, 0 for a named allocation"),
		composite.Field("user_id", "UserID", func(a *Alloc) *uint32 { return &a.UserID }, codec.Uint32{}, true, "owning user id"),
		composite.Field("name", "Name", func(a *Alloc) *string { return &a.Name }, codec.String{}, false, "persistent allocation name"),
		composite.Field("size", "Size", func(a *Alloc) *Size { return &a.Size }, sizeCodec{}, false, "allocation size"),
		composite.Field("state", "State", func(a *Alloc) *State { return &a.State }, stateCodec{}, false, "lifecycle state"),
	}
	return composite.Descriptor[Alloc](TypeAlloc, "bb_alloc", "struct bb_alloc",
		fields, func() *Alloc { return &Alloc{} }, registry.OpenAPIObject, "a burst-buffer allocation record")
}
