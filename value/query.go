// ==============================================================================================
// FILE: value/query.go
// ==============================================================================================
// PACKAGE: value
// PURPOSE: Embedder helper for walking a Value tree by path without going through Eval — lets
//          a host program pull a field out of an evaluated result (e.g. a List index or a
//          Table key) without writing its own type switch at each step.
// ==============================================================================================

package value

// Query walks root by a sequence of path steps, each either an *Int (List index) or any
// hashable Value (Table key), returning the value found and whether every step succeeded.
// An empty path returns root itself.
func Query(root Value, path ...Value) (Value, bool) {
	cur := root
	for _, step := range path {
		switch node := cur.(type) {
		case *List:
			idx, ok := step.(*Int)
			if !ok || idx.Value < 0 || idx.Value >= int64(len(node.Elements)) {
				return nil, false
			}
			cur = node.Elements[idx.Value]
		case *Table:
			v, found, err := node.Get(step)
			if err != nil || !found {
				return nil, false
			}
			cur = v
		default:
			return nil, false
		}
	}
	return cur, true
}
