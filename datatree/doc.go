// Package datatree implements the generic typed value tree that the data
// parser translates controller structs into and out of.
//
// # Overview
//
// A Node is one of seven kinds: null, bool, int64, float64, string, list, or
// dict. This is the language-neutral shape that crosses the wire as JSON (or
// any other tree-shaped encoding) — the parser engine never depends on an
// encoding format directly, only on this tree.
//
// # Key Types
//
//   - Node: a tagged union over the seven kinds
//   - Kind: the discriminator
//
// # Building values
//
//	n := datatree.Dict()
//	n.Set("name", datatree.String("gpu-rack-3"))
//	n.Set("cpus", datatree.Int64(64))
//
//	list := datatree.List()
//	list.Append(datatree.String("a"))
//	list.Append(datatree.String("b"))
//	n.Set("tags", list)
//
// # Reading values
//
//	if v, ok := n.Get("cpus"); ok {
//	    if i, ok := v.AsInt64(); ok {
//	        fmt.Println(i)
//	    }
//	}
//
// # Coercion
//
// Coerce converts a node to a different kind using the permissive rules a
// REST client expects (string "64" -> int64 64, int64 1 -> bool true, …). It
// never mutates the receiver; it returns a new Node, or the receiver itself
// when it already has the requested kind.
package datatree
