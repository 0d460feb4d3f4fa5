package registry

// Type is the closed enumeration naming every parser descriptor in the
// registry. TypeInvalid is the zero value and is always
// rejected by Find.
type Type int

const TypeInvalid Type = 0

// Model discriminates how a Descriptor is interpreted by the engine.
type Model int

const (
	ModelInvalid Model = iota
	ModelSimple
	ModelComplex
	ModelArray
	ModelFlagArray
	ModelList
	ModelPtr
	ModelNTArray
	ModelNTPtrArray
	ModelArrayLinkedField
	ModelArrayLinkedExplodedFlagArrayField
	ModelArraySkipField
	ModelArrayRemovedField
)

// String implements fmt.Stringer.
func (m Model) String() string {
	switch m {
	case ModelSimple:
		return "SIMPLE"
	case ModelComplex:
		return "COMPLEX"
	case ModelArray:
		return "ARRAY"
	case ModelFlagArray:
		return "FLAG_ARRAY"
	case ModelList:
		return "LIST"
	case ModelPtr:
		return "PTR"
	case ModelNTArray:
		return "NT_ARRAY"
	case ModelNTPtrArray:
		return "NT_PTR_ARRAY"
	case ModelArrayLinkedField:
		return "ARRAY_LINKED_FIELD"
	case ModelArrayLinkedExplodedFlagArrayField:
		return "ARRAY_LINKED_EXPLODED_FLAG_ARRAY_FIELD"
	case ModelArraySkipField:
		return "ARRAY_SKIP_FIELD"
	case ModelArrayRemovedField:
		return "ARRAY_REMOVED_FIELD"
	default:
		return "INVALID"
	}
}

// OpenAPIType is the base OpenAPI schema type a descriptor renders as in a
// generated schema document.
type OpenAPIType int

const (
	OpenAPIInvalid OpenAPIType = iota
	OpenAPIObject
	OpenAPIArray
	OpenAPIString
	OpenAPIInt32
	OpenAPIInt64
	OpenAPIDouble
	OpenAPIBool
	OpenAPINumber
)

// ProtocolVersion is a wire protocol version, encoded as major*100+minor
// (e.g. 24.05 -> 2405). NoVersion is the sentinel meaning "not deprecated /
// not removed".
type ProtocolVersion uint32

const NoVersion ProtocolVersion = 0

// NewVersion builds a ProtocolVersion from a major/minor pair.
func NewVersion(major, minor uint32) ProtocolVersion {
	return ProtocolVersion(major*100 + minor)
}

// IsSet reports whether v is a real version rather than the sentinel.
func (v ProtocolVersion) IsSet() bool { return v != NoVersion }
