package handle

import "github.com/rfielding/kripke-ltl/ltl"

// NameRegistry holds text-labelled formulas.
type NameRegistry = Registry[ltl.Name]

// NewNameRegistry creates an empty registry for text-labelled formulas.
func NewNameRegistry(opts ...Option) *NameRegistry {
	return NewRegistry[ltl.Name](opts...)
}

// CodeRegistry holds integer-labelled formulas, which additionally support
// Boolean constants and IsTrue.
type CodeRegistry struct {
	*Registry[ltl.Code]
}

// NewCodeRegistry creates an empty registry for integer-labelled formulas.
func NewCodeRegistry(opts ...Option) *CodeRegistry {
	return &CodeRegistry{Registry: NewRegistry[ltl.Code](opts...)}
}

// Boolean returns a handle to the constant v.
func (r *CodeRegistry) Boolean(v bool) Handle {
	return r.insert("boolean", ltl.NewBoolean(v))
}

// IsTrue reports whether h holds the constant true. Only a Boolean leaf
// can report true; every composed formula reports false.
func (r *CodeRegistry) IsTrue(h Handle) (bool, error) {
	f, err := r.lookup("is_true", h)
	if err != nil {
		return false, err
	}
	return ltl.IsTrue(f), nil
}
