package ltl

// Children returns the direct subformulas of f, left to right.
func Children[L Label](f Formula[L]) []Formula[L] {
	switch n := any(f).(type) {
	case Conjunction[L]:
		return []Formula[L]{n.Left, n.Right}
	case Disjunction[L]:
		return []Formula[L]{n.Left, n.Right}
	case Negation[L]:
		return []Formula[L]{n.Formula}
	case Eventually[L]:
		return []Formula[L]{n.Formula}
	case Always[L]:
		return []Formula[L]{n.Formula}
	default:
		// Atomic and Boolean are leaves.
		return nil
	}
}

// Size returns the number of nodes in f.
func Size[L Label](f Formula[L]) int {
	n := 1
	for _, c := range Children(f) {
		n += Size(c)
	}
	return n
}

// Depth returns the height of f; a leaf has depth 1.
func Depth[L Label](f Formula[L]) int {
	d := 0
	for _, c := range Children(f) {
		if cd := Depth(c); cd > d {
			d = cd
		}
	}
	return d + 1
}

// Operator returns the connective symbol of f's root, or "" for a leaf.
func Operator[L Label](f Formula[L]) string {
	switch any(f).(type) {
	case Conjunction[L]:
		return "∧"
	case Disjunction[L]:
		return "∨"
	case Negation[L]:
		return "¬"
	case Eventually[L]:
		return "<>"
	case Always[L]:
		return "[]"
	default:
		return ""
	}
}
