package ltl

import "fmt"

// Label is the type of an atomic proposition's label. A tree uses exactly
// one label type; Formula[Code] and Formula[Name] never mix.
type Label interface {
	~int16 | ~string
}

// Code is a short integer label. Trees labelled with Code also support
// the Boolean constant.
type Code int16

// Name is a text label.
type Name string

// Formula represents an LTL formula over labels of type L.
// String renders the fully bracketed text form; Clone returns an
// independent deep copy of the whole subtree.
type Formula[L Label] interface {
	String() string
	Clone() Formula[L]
	formula()
}

// Atomic represents an atomic proposition
type Atomic[L Label] struct {
	Var L
}

func (a Atomic[L]) String() string {
	return fmt.Sprint(a.Var)
}

func (a Atomic[L]) Clone() Formula[L] {
	return Atomic[L]{Var: a.Var}
}

func (Atomic[L]) formula() {}

// Conjunction represents (φ ∧ ψ)
type Conjunction[L Label] struct {
	Left, Right Formula[L]
}

func (c Conjunction[L]) String() string {
	return fmt.Sprintf("(%s ∧ %s)", c.Left, c.Right)
}

func (c Conjunction[L]) Clone() Formula[L] {
	return Conjunction[L]{Left: c.Left.Clone(), Right: c.Right.Clone()}
}

func (Conjunction[L]) formula() {}

// Disjunction represents (φ ∨ ψ)
type Disjunction[L Label] struct {
	Left, Right Formula[L]
}

func (d Disjunction[L]) String() string {
	return fmt.Sprintf("(%s ∨ %s)", d.Left, d.Right)
}

func (d Disjunction[L]) Clone() Formula[L] {
	return Disjunction[L]{Left: d.Left.Clone(), Right: d.Right.Clone()}
}

func (Disjunction[L]) formula() {}

// Negation represents ¬φ
type Negation[L Label] struct {
	Formula Formula[L]
}

func (n Negation[L]) String() string {
	return fmt.Sprintf("¬%s", n.Formula)
}

func (n Negation[L]) Clone() Formula[L] {
	return Negation[L]{Formula: n.Formula.Clone()}
}

func (Negation[L]) formula() {}

// Eventually represents "φ holds at some future point"
type Eventually[L Label] struct {
	Formula Formula[L]
}

func (e Eventually[L]) String() string {
	return fmt.Sprintf("<>%s", e.Formula)
}

func (e Eventually[L]) Clone() Formula[L] {
	return Eventually[L]{Formula: e.Formula.Clone()}
}

func (Eventually[L]) formula() {}

// Always represents "φ holds at every future point"
type Always[L Label] struct {
	Formula Formula[L]
}

func (a Always[L]) String() string {
	return fmt.Sprintf("[]%s", a.Formula)
}

func (a Always[L]) Clone() Formula[L] {
	return Always[L]{Formula: a.Formula.Clone()}
}

func (Always[L]) formula() {}

// NewAtomic returns an atomic proposition labelled v.
func NewAtomic[L Label](v L) Formula[L] {
	return Atomic[L]{Var: v}
}

// NewConjunction returns (lhs ∧ rhs). The operands are deep-copied, so
// the caller keeps sole ownership of lhs and rhs.
func NewConjunction[L Label](lhs, rhs Formula[L]) Formula[L] {
	return Conjunction[L]{Left: lhs.Clone(), Right: rhs.Clone()}
}

// NewDisjunction returns (lhs ∨ rhs) over deep copies of its operands.
func NewDisjunction[L Label](lhs, rhs Formula[L]) Formula[L] {
	return Disjunction[L]{Left: lhs.Clone(), Right: rhs.Clone()}
}

// NewNegation returns ¬inner over a deep copy of inner.
func NewNegation[L Label](inner Formula[L]) Formula[L] {
	return Negation[L]{Formula: inner.Clone()}
}

// NewEventually returns <>inner over a deep copy of inner.
func NewEventually[L Label](inner Formula[L]) Formula[L] {
	return Eventually[L]{Formula: inner.Clone()}
}

// NewAlways returns []inner over a deep copy of inner.
func NewAlways[L Label](inner Formula[L]) Formula[L] {
	return Always[L]{Formula: inner.Clone()}
}
