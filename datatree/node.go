package datatree

import (
	"fmt"
	"strconv"
)

// Kind discriminates the value held by a Node.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt64
	KindFloat64
	KindString
	KindList
	KindDict
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt64:
		return "int64"
	case KindFloat64:
		return "float64"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindDict:
		return "dict"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// entry is one key/value pair of a dict node. Dicts keep entries in
// insertion order so dump output mirrors descriptor field order.
type entry struct {
	key   string
	value *Node
}

// Node is a tagged union over null, bool, int64, float64, string, list, and
// dict. The zero value is a null node.
type Node struct {
	kind Kind

	b bool
	i int64
	f float64
	s string

	items []*Node

	dict    []entry
	dictIdx map[string]int
}

// Null returns a new null node.
func Null() *Node { return &Node{kind: KindNull} }

// Bool returns a new bool node.
func Bool(v bool) *Node { return &Node{kind: KindBool, b: v} }

// Int64 returns a new int64 node.
func Int64(v int64) *Node { return &Node{kind: KindInt64, i: v} }

// Float64 returns a new float64 node.
func Float64(v float64) *Node { return &Node{kind: KindFloat64, f: v} }

// String returns a new string node.
func String(v string) *Node { return &Node{kind: KindString, s: v} }

// List returns a new, empty list node.
func List() *Node { return &Node{kind: KindList, items: nil} }

// Dict returns a new, empty dict node.
func Dict() *Node { return &Node{kind: KindDict, dictIdx: make(map[string]int)} }

// Kind returns the node's discriminator.
func (n *Node) Kind() Kind {
	if n == nil {
		return KindNull
	}
	return n.kind
}

// IsNull reports whether n is nil or a null node.
func (n *Node) IsNull() bool { return n == nil || n.kind == KindNull }

// AsBool returns the boolean value and whether the node is a bool.
func (n *Node) AsBool() (bool, bool) {
	if n == nil || n.kind != KindBool {
		return false, false
	}
	return n.b, true
}

// AsInt64 returns the int64 value and whether the node is an int64.
func (n *Node) AsInt64() (int64, bool) {
	if n == nil || n.kind != KindInt64 {
		return 0, false
	}
	return n.i, true
}

// AsFloat64 returns the float64 value and whether the node is a float64.
func (n *Node) AsFloat64() (float64, bool) {
	if n == nil || n.kind != KindFloat64 {
		return 0, false
	}
	return n.f, true
}

// AsString returns the string value and whether the node is a string.
func (n *Node) AsString() (string, bool) {
	if n == nil || n.kind != KindString {
		return "", false
	}
	return n.s, true
}

// Append appends v to a list node. Panics if n is not a list; callers are
// expected to only call it on nodes they built with List().
func (n *Node) Append(v *Node) {
	if n.kind != KindList {
		panic("datatree: Append on non-list node")
	}
	n.items = append(n.items, v)
}

// Items returns the elements of a list node, or nil if n is not a list.
func (n *Node) Items() []*Node {
	if n == nil || n.kind != KindList {
		return nil
	}
	return n.items
}

// Len returns the number of elements in a list, or entries in a dict.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	switch n.kind {
	case KindList:
		return len(n.items)
	case KindDict:
		return len(n.dict)
	default:
		return 0
	}
}

// Set inserts or overwrites key in a dict node, preserving first-insertion
// order on update. Panics if n is not a dict.
func (n *Node) Set(key string, v *Node) {
	if n.kind != KindDict {
		panic("datatree: Set on non-dict node")
	}
	if n.dictIdx == nil {
		n.dictIdx = make(map[string]int)
	}
	if i, ok := n.dictIdx[key]; ok {
		n.dict[i].value = v
		return
	}
	n.dictIdx[key] = len(n.dict)
	n.dict = append(n.dict, entry{key: key, value: v})
}

// Get looks up key in a dict node.
func (n *Node) Get(key string) (*Node, bool) {
	if n == nil || n.kind != KindDict {
		return nil, false
	}
	i, ok := n.dictIdx[key]
	if !ok {
		return nil, false
	}
	return n.dict[i].value, true
}

// Keys returns a dict node's keys in insertion order, or nil otherwise.
func (n *Node) Keys() []string {
	if n == nil || n.kind != KindDict {
		return nil
	}
	keys := make([]string, len(n.dict))
	for i, e := range n.dict {
		keys[i] = e.key
	}
	return keys
}

// Coerce converts n to the requested kind using permissive REST-client
// rules. It never mutates n; ok is false if the conversion is not possible.
func (n *Node) Coerce(to Kind) (*Node, bool) {
	if n == nil {
		if to == KindNull {
			return Null(), true
		}
		return nil, false
	}
	if n.kind == to {
		return n, true
	}
	switch to {
	case KindString:
		switch n.kind {
		case KindInt64:
			return String(strconv.FormatInt(n.i, 10)), true
		case KindFloat64:
			return String(strconv.FormatFloat(n.f, 'g', -1, 64)), true
		case KindBool:
			return String(strconv.FormatBool(n.b)), true
		case KindNull:
			return String(""), true
		}
	case KindInt64:
		switch n.kind {
		case KindFloat64:
			return Int64(int64(n.f)), true
		case KindString:
			i, err := strconv.ParseInt(n.s, 10, 64)
			if err != nil {
				return nil, false
			}
			return Int64(i), true
		case KindBool:
			if n.b {
				return Int64(1), true
			}
			return Int64(0), true
		case KindNull:
			return Int64(0), true
		}
	case KindFloat64:
		switch n.kind {
		case KindInt64:
			return Float64(float64(n.i)), true
		case KindString:
			f, err := strconv.ParseFloat(n.s, 64)
			if err != nil {
				return nil, false
			}
			return Float64(f), true
		case KindNull:
			return Float64(0), true
		}
	case KindBool:
		switch n.kind {
		case KindInt64:
			return Bool(n.i != 0), true
		case KindString:
			b, err := strconv.ParseBool(n.s)
			if err != nil {
				return nil, false
			}
			return Bool(b), true
		}
	}
	return nil, false
}
