package model

import "github.com/wlmkit/dataparser/registry"

// Type ids for every descriptor this package registers. Values are
// arbitrary but must be stable and non-zero (registry.TypeInvalid is 0).
const (
	TypeJobRequired registry.Type = iota + 1
	TypeJob
	TypeNodeStates
	TypeNode
	TypePartition
	TypeQoSName
	TypeUserName
	TypeGroupName
	TypeAssociation
	TypeTRESRef
)
