package resolve

import "github.com/wlmkit/dataparser/diag"

// Flag is a bitmask of ambient call modifiers.
type Flag uint8

const (
	// FlagNone requests default behavior.
	FlagNone Flag = 0
	// FlagSpecOnly restricts resolvers to caller-provided, provisional
	// data (e.g. a creation request defining its own QoS list) rather
	// than the live cluster state.
	FlagSpecOnly Flag = 1 << iota
	// FlagFast skips optional enrichment that would otherwise require an
	// extra resolver round-trip.
	FlagFast
	// FlagComplexValues allows lossy-to-JSON shortcuts, such as dumping
	// NO_VAL-wrapped numerics as a bare scalar instead of the structured
	// {set,infinite,number} object.
	FlagComplexValues
)

// Has reports whether all bits in want are set in f.
func (f Flag) Has(want Flag) bool { return f&want == want }

// Direction tags whether the current top-level call is parsing (tree ->
// native) or dumping (native -> tree).
type Direction int

const (
	Parsing Direction = iota
	Dumping
)

// Need is a bit-set of ambient-resource prerequisites a descriptor may
// declare.
type Need uint8

const (
	NeedNone  Need = 0
	NeedAuth  Need = 1 << iota
	NeedTRES
	NeedQoS
	NeedAssoc
)

// Has reports whether all bits in want are set in n.
func (n Need) Has(want Need) bool { return n&want == want }

// QoSResolver resolves Quality-of-Service records by name or id.
type QoSResolver interface {
	QoSByID(id uint32) (name string, ok bool)
	QoSByName(name string) (id uint32, ok bool)
}

// TRESResolver resolves trackable-resource records by id or by
// (type, name), and TRES node ids to hostnames.
type TRESResolver interface {
	TRESByID(id uint32) (typ, name string, ok bool)
	TRESByTypeName(typ, name string) (id uint32, ok bool)
	// Hostname resolves a TRES node-id component into a hostname.
	Hostname(nodeID uint32) (string, bool)
}

// AssocResolver fuzzy-matches associations by (cluster, account, user,
// partition).
type AssocResolver interface {
	AssocByID(id uint32) (cluster, account, user, partition string, ok bool)
	AssocID(cluster, account, user, partition string) (id uint32, ok bool)
}

// UserResolver maps user names to/from numeric uids.
type UserResolver interface {
	UserByID(uid uint32) (name string, ok bool)
	UserByName(name string) (uid uint32, ok bool)
}

// GroupResolver maps group names to/from numeric gids.
type GroupResolver interface {
	GroupByID(gid uint32) (name string, ok bool)
	GroupByName(name string) (gid uint32, ok bool)
}

// Args is the ambient argument object carried alongside every Parse/Dump
// call. Each top-level call must construct (or otherwise own,
// exclusively) its own Args; resolver fields are read-only for the
// duration of the call.
type Args struct {
	QoS   QoSResolver
	TRES  TRESResolver
	Assoc AssocResolver
	User  UserResolver
	Group GroupResolver

	Diag      *diag.Collector
	Path      diag.PathTracker
	Flags     Flag
	Direction Direction
}

// New returns an Args ready for a single top-level call.
func New(dir Direction, flags Flag) *Args {
	return &Args{
		Diag:      diag.NewCollector(),
		Flags:     flags,
		Direction: dir,
	}
}

// Satisfies reports whether a has the resolvers a descriptor's Needs
// require.
func (a *Args) Satisfies(need Need) bool {
	if need.Has(NeedAuth) && (a.User == nil || a.Group == nil) {
		return false
	}
	if need.Has(NeedQoS) && a.QoS == nil {
		return false
	}
	if need.Has(NeedTRES) && a.TRES == nil {
		return false
	}
	if need.Has(NeedAssoc) && a.Assoc == nil {
		return false
	}
	return true
}

// IsComplex reports whether the caller opted into the permissive
// COMPLEX_VALUES rendering.
func (a *Args) IsComplex() bool { return a.Flags.Has(FlagComplexValues) }
