package ltl

import (
	"fmt"
	"strings"
)

// Dot generates a Graphviz DOT representation of the formula tree.
// Operators become boxes, leaves become circles; edges run parent to child
// in operand order.
func Dot[L Label](f Formula[L]) string {
	var sb strings.Builder

	sb.WriteString("digraph Formula {\n")
	sb.WriteString("  rankdir=TB;\n")
	sb.WriteString("  ordering=out;\n")
	sb.WriteString("\n")

	next := 0
	var visit func(f Formula[L]) string
	visit = func(f Formula[L]) string {
		id := fmt.Sprintf("n%d", next)
		next++

		op := Operator(f)
		if op == "" {
			sb.WriteString(fmt.Sprintf("  %s [shape=circle, label=\"%s\"];\n", id, dotEscape(f.String())))
			return id
		}
		sb.WriteString(fmt.Sprintf("  %s [shape=box, label=\"%s\"];\n", id, dotEscape(op)))
		for _, c := range Children(f) {
			cid := visit(c)
			sb.WriteString(fmt.Sprintf("  %s -> %s;\n", id, cid))
		}
		return id
	}
	visit(f)

	sb.WriteString("}\n")
	return sb.String()
}

func dotEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
