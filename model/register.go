package model

import (
	"github.com/wlmkit/dataparser/registry"
	"github.com/wlmkit/dataparser/resolve"
)

func init() {
	registry.Register(newJobRequiredDescriptor())
	registry.Register(newJobDescriptor())
	registry.Register(newNodeStatesDescriptor())
	registry.Register(newNodeDescriptor())
	registry.Register(newPartitionDescriptor())

	registry.Register(registry.ComplexDescriptor[uint32](TypeQoSName, "qos_name", "uint32", qosNameCodec{}, resolve.NeedQoS, registry.OpenAPIString, "quality of service, by name"))
	registry.Register(registry.ComplexDescriptor[uint32](TypeUserName, "user_name", "uid_t", userNameCodec{}, resolve.NeedAuth, registry.OpenAPIString, "user, by name"))
	registry.Register(registry.ComplexDescriptor[uint32](TypeGroupName, "group_name", "gid_t", groupNameCodec{}, resolve.NeedAuth, registry.OpenAPIString, "group, by name"))
	registry.Register(registry.ComplexDescriptor[uint32](TypeAssociation, "association", "uint32", assocCodec{}, resolve.NeedAssoc, registry.OpenAPIString, "association, by natural key"))
	registry.Register(registry.ComplexDescriptor[uint32](TypeTRESRef, "tres_ref", "uint32", tresRefCodec{}, resolve.NeedTRES, registry.OpenAPIObject, "trackable resource, by type/name"))
}
