package model

import (
	"github.com/wlmkit/dataparser/codec"
	"github.com/wlmkit/dataparser/composite"
	"github.com/wlmkit/dataparser/datatree"
	"github.com/wlmkit/dataparser/registry"
	"github.com/wlmkit/dataparser/resolve"
)

// JobRequired is the nested "required" object of a job, holding the
// memory-per-cpu/memory-per-node overloaded pair.
type JobRequired struct {
	ReqMem uint64 // high bit tags per-cpu vs per-node, per codec.MemPerCPU
}

// memPerCPUField and memPerNodeField share JobRequired.ReqMem, reading and
// writing through codec.WithMemPerCPU/WithMemPerNode/MemMagnitude so the
// tag bit survives a round trip regardless of which variant last wrote it.
type memPerCPUField struct{}

func (memPerCPUField) Parse(dst *uint64, src *datatree.Node, args *resolve.Args) error {
	var mag uint64
	if err := (codec.Uint64NoVal{}).Parse(&mag, src, args); err != nil {
		return err
	}
	*dst = codec.WithMemPerCPU(mag)
	return nil
}

func (memPerCPUField) Dump(src *uint64, args *resolve.Args) (*datatree.Node, error) {
	mag := codec.MemMagnitude(*src)
	return (codec.Uint64NoVal{}).Dump(&mag, args)
}

type memPerNodeField struct{}

func (memPerNodeField) Parse(dst *uint64, src *datatree.Node, args *resolve.Args) error {
	var mag uint64
	if err := (codec.Uint64NoVal{}).Parse(&mag, src, args); err != nil {
		return err
	}
	*dst = codec.WithMemPerNode(mag)
	return nil
}

func (memPerNodeField) Dump(src *uint64, args *resolve.Args) (*datatree.Node, error) {
	mag := codec.MemMagnitude(*src)
	return (codec.Uint64NoVal{}).Dump(&mag, args)
}

func newJobRequiredDescriptor() *registry.Descriptor {
	fields := []*registry.FieldDescriptor{
		composite.OverloadedField("memory_per_cpu", "ReqMem",
			func(r *JobRequired) *uint64 { return &r.ReqMem },
			memPerCPUField{}, codec.HasMemPerCPU, 2, "required memory, per allocated cpu"),
		composite.OverloadedField("memory_per_node", "ReqMem",
			func(r *JobRequired) *uint64 { return &r.ReqMem },
			memPerNodeField{}, func(v uint64) bool { return !codec.HasMemPerCPU(v) }, 2, "required memory, per allocated node"),
	}
	return composite.Descriptor[JobRequired](TypeJobRequired, "job_required", "struct job_required",
		fields, func() *JobRequired { return &JobRequired{} }, registry.OpenAPIObject, "a job's minimum resource requirements")
}

// Job is the native struct backing the top-level job descriptor. Most
// slurm/ctld job fields are out of scope; the ones kept here are chosen
// to each exercise a distinct engine path.
type Job struct {
	JobID             uint32
	Name              string
	Nice              uint32 // offset-encoded, see codec.NiceCodec
	KillWarningSignal uint16
	ExitCode          int32
	Required          JobRequired
	CoreSpec          uint16 // high bit tags thread-spec vs core-spec
	QoSID             uint32
	UserID            uint32
	GroupID           uint32
	AssocID           uint32
	TRESID            uint32
}

func newJobDescriptor() *registry.Descriptor {
	fields := []*registry.FieldDescriptor{
		composite.Field("job_id", "JobID", func(j *Job) *uint32 { return &j.JobID }, codec.Uint32{}, true, "job id"),
		composite.Field("name", "Name", func(j *Job) *string { return &j.Name }, codec.String{}, false, "job name"),
		composite.Field("nice", "Nice", func(j *Job) *uint32 { return &j.Nice }, codec.NiceCodec{}, false, "scheduling priority adjustment"),
		composite.Field("kill_warning_signal", "KillWarningSignal", func(j *Job) *uint16 { return &j.KillWarningSignal }, codec.Signal{}, false, "signal sent ahead of the time limit"),
		composite.Field("exit_code", "ExitCode", func(j *Job) *int32 { return &j.ExitCode }, codec.ExitCodeCodec{}, false, "decoded waitstatus"),
		composite.LinkedField("required", "Required", func(j *Job) *JobRequired { return &j.Required }, TypeJobRequired, false, "minimum resource requirements"),
		composite.OverloadedField("core_spec", "CoreSpec", func(j *Job) *uint16 { return &j.CoreSpec }, codec.CoreSpecCodec, func(v uint16) bool { return !codec.IsThreadSpec(v) }, 2, "reserved core count"),
		composite.OverloadedField("thread_spec", "CoreSpec", func(j *Job) *uint16 { return &j.CoreSpec }, codec.ThreadSpecCodec, codec.IsThreadSpec, 2, "reserved thread count"),
		composite.RemovedField("power_flags", "PowerFlags", registry.NewVersion(24, 5), "power management flags, removed"),
		composite.LinkedField("qos", "QoSID", func(j *Job) *uint32 { return &j.QoSID }, TypeQoSName, false, "quality of service name"),
		composite.LinkedField("user_name", "UserID", func(j *Job) *uint32 { return &j.UserID }, TypeUserName, false, "submitting user"),
		composite.LinkedField("group_name", "GroupID", func(j *Job) *uint32 { return &j.GroupID }, TypeGroupName, false, "submitting group"),
		composite.LinkedField("association", "AssocID", func(j *Job) *uint32 { return &j.AssocID }, TypeAssociation, false, "association key"),
		composite.LinkedField("tres_req", "TRESID", func(j *Job) *uint32 { return &j.TRESID }, TypeTRESRef, false, "requested trackable resource"),
	}
	return composite.Descriptor[Job](TypeJob, "job", "struct job_record",
		fields, func() *Job { return &Job{} }, registry.OpenAPIObject, "a single job")
}
