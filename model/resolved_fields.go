package model

import (
	"fmt"
	"strings"

	"github.com/wlmkit/dataparser/datatree"
	"github.com/wlmkit/dataparser/diag"
	"github.com/wlmkit/dataparser/resolve"
)

// qosNameCodec renders a QoS id as its name on the wire, and resolves a
// wire name back to an id on parse.
type qosNameCodec struct{}

func (qosNameCodec) Parse(dst *uint32, src *datatree.Node, args *resolve.Args) error {
	name, ok := src.AsString()
	if !ok {
		args.Diag.Fail(args.Path.Path(), diag.CodeDataConvFailed, "expected a qos name string", nil)
		return nil
	}
	id, ok := args.QoS.QoSByName(name)
	if !ok {
		args.Diag.Fail(args.Path.Path(), diag.CodeInvalidQoS, fmt.Sprintf("unknown qos %q", name), nil)
		return nil
	}
	*dst = id
	return nil
}

func (qosNameCodec) Dump(src *uint32, args *resolve.Args) (*datatree.Node, error) {
	name, ok := args.QoS.QoSByID(*src)
	if !ok {
		args.Diag.Fail(args.Path.Path(), diag.CodeInvalidQoS, fmt.Sprintf("unknown qos id %d", *src), nil)
		return datatree.Null(), nil
	}
	return datatree.String(name), nil
}

// userNameCodec resolves a native uid to/from its login name.
type userNameCodec struct{}

func (userNameCodec) Parse(dst *uint32, src *datatree.Node, args *resolve.Args) error {
	name, ok := src.AsString()
	if !ok {
		args.Diag.Fail(args.Path.Path(), diag.CodeDataConvFailed, "expected a user name string", nil)
		return nil
	}
	uid, ok := args.User.UserByName(name)
	if !ok {
		args.Diag.Fail(args.Path.Path(), diag.CodeUserIDUnknown, fmt.Sprintf("unknown user %q", name), nil)
		return nil
	}
	*dst = uid
	return nil
}

func (userNameCodec) Dump(src *uint32, args *resolve.Args) (*datatree.Node, error) {
	name, ok := args.User.UserByID(*src)
	if !ok {
		args.Diag.Fail(args.Path.Path(), diag.CodeUserIDUnknown, fmt.Sprintf("unknown uid %d", *src), nil)
		return datatree.Null(), nil
	}
	return datatree.String(name), nil
}

// groupNameCodec resolves a native gid to/from its group name.
type groupNameCodec struct{}

func (groupNameCodec) Parse(dst *uint32, src *datatree.Node, args *resolve.Args) error {
	name, ok := src.AsString()
	if !ok {
		args.Diag.Fail(args.Path.Path(), diag.CodeDataConvFailed, "expected a group name string", nil)
		return nil
	}
	gid, ok := args.Group.GroupByName(name)
	if !ok {
		args.Diag.Fail(args.Path.Path(), diag.CodeGroupIDUnknown, fmt.Sprintf("unknown group %q", name), nil)
		return nil
	}
	*dst = gid
	return nil
}

func (groupNameCodec) Dump(src *uint32, args *resolve.Args) (*datatree.Node, error) {
	name, ok := args.Group.GroupByID(*src)
	if !ok {
		args.Diag.Fail(args.Path.Path(), diag.CodeGroupIDUnknown, fmt.Sprintf("unknown gid %d", *src), nil)
		return datatree.Null(), nil
	}
	return datatree.String(name), nil
}

// assocCodec renders a native association id as its "cluster/account/
// user/partition" natural key, and resolves that key back to an id on
// parse.
type assocCodec struct{}

func (assocCodec) Parse(dst *uint32, src *datatree.Node, args *resolve.Args) error {
	key, ok := src.AsString()
	if !ok {
		args.Diag.Fail(args.Path.Path(), diag.CodeDataConvFailed, "expected an association key string", nil)
		return nil
	}
	parts := strings.SplitN(key, "/", 4)
	if len(parts) != 4 {
		args.Diag.Fail(args.Path.Path(), diag.CodeInvalidAssoc, fmt.Sprintf("malformed association key %q", key), nil)
		return nil
	}
	id, ok := args.Assoc.AssocID(parts[0], parts[1], parts[2], parts[3])
	if !ok {
		args.Diag.Fail(args.Path.Path(), diag.CodeInvalidAssoc, fmt.Sprintf("unknown association %q", key), nil)
		return nil
	}
	*dst = id
	return nil
}

func (assocCodec) Dump(src *uint32, args *resolve.Args) (*datatree.Node, error) {
	cluster, account, user, partition, ok := args.Assoc.AssocByID(*src)
	if !ok {
		args.Diag.Fail(args.Path.Path(), diag.CodeInvalidAssoc, fmt.Sprintf("unknown association id %d", *src), nil)
		return datatree.Null(), nil
	}
	return datatree.String(strings.Join([]string{cluster, account, user, partition}, "/")), nil
}

// tresRefCodec renders a native TRES id as a {type,name} object, and
// resolves that shape back to an id on parse.
type tresRefCodec struct{}

func (tresRefCodec) Parse(dst *uint32, src *datatree.Node, args *resolve.Args) error {
	if src.Kind() != datatree.KindDict {
		args.Diag.Fail(args.Path.Path(), diag.CodeDataExpectedDict, "expected a {type,name} tres reference", nil)
		return nil
	}
	typNode, _ := src.Get("type")
	nameNode, _ := src.Get("name")
	typ, _ := typNode.AsString()
	name, _ := nameNode.AsString()
	id, ok := args.TRES.TRESByTypeName(typ, name)
	if !ok {
		args.Diag.Fail(args.Path.Path(), diag.CodeInvalidTRES, fmt.Sprintf("unknown tres %s/%s", typ, name), nil)
		return nil
	}
	*dst = id
	return nil
}

func (tresRefCodec) Dump(src *uint32, args *resolve.Args) (*datatree.Node, error) {
	typ, name, ok := args.TRES.TRESByID(*src)
	if !ok {
		args.Diag.Fail(args.Path.Path(), diag.CodeInvalidTRES, fmt.Sprintf("unknown tres id %d", *src), nil)
		return datatree.Null(), nil
	}
	obj := datatree.Dict()
	obj.Set("type", datatree.String(typ))
	obj.Set("name", datatree.String(name))
	return obj, nil
}
