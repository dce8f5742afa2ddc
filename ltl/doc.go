// Package ltl is an algebra of Linear Temporal Logic formulas.
//
// Formulas are immutable trees built from atomic propositions, the boolean
// connectives ∧, ∨ and ¬, and the temporal operators <> (eventually) and
// [] (always). Every constructor deep-copies its operands, so a formula
// never shares structure with the values it was built from.
//
// The algebra is instantiated over one label type per tree: Code for short
// integer labels (which also admits the Boolean constant and IsTrue), or
// Name for text labels.
//
//	f := ltl.NewConjunction(ltl.NewAtomic(ltl.Name("A")), ltl.NewAtomic(ltl.Name("B")))
//	fmt.Println(f) // (A ∧ B)
package ltl
