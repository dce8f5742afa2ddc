package ltl

// Boolean is a constant truth value. It carries no label and exists only
// in trees labelled with Code.
type Boolean struct {
	Value bool
}

func (b Boolean) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

func (b Boolean) Clone() Formula[Code] {
	return Boolean{Value: b.Value}
}

func (Boolean) formula() {}

// NewBoolean returns the constant v.
func NewBoolean(v bool) Formula[Code] {
	return Boolean{Value: v}
}

// IsTrue reports the stored value of a Boolean constant. Every other
// variant reports false, connectives included: (true ∧ true) is not
// evaluated.
func IsTrue(f Formula[Code]) bool {
	b, ok := f.(Boolean)
	return ok && b.Value
}
