package engine

// Pair is one emitted (path, value) record.
type Pair struct {
	Path  string
	Value string
}

// Flatten walks n depth-first and returns one Pair per string leaf.
//
//   - object members extend the path with sep+key (the key alone at the root);
//   - array elements reuse the path unchanged, so repeated elements share one
//     property name;
//   - numbers, booleans and nulls are dropped, and so is a string with an
//     empty path (a bare top-level string).
//
// Output order is member/element order of the tree.
func Flatten(n Node, sep string) []Pair {
	var out []Pair
	flatten(n, "", sep, &out)
	return out
}

func flatten(n Node, prefix, sep string, out *[]Pair) {
	switch n.Kind {
	case NodeObject:
		for _, m := range n.Members {
			p := m.Key
			if prefix != "" {
				p = prefix + sep + m.Key
			}
			flatten(m.Value, p, sep, out)
		}
	case NodeArray:
		for _, it := range n.Items {
			flatten(it, prefix, sep, out)
		}
	case NodeString:
		if prefix != "" {
			*out = append(*out, Pair{Path: prefix, Value: n.String})
		}
	}
}
