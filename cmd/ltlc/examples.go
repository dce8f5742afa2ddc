package main

import "github.com/rfielding/kripke-ltl/handle"

// example is a named formula built through a registry. Operand handles
// created along the way go into the scratch list and are released once
// the example is printed.
type example struct {
	name  string
	build func(s *scratch) (handle.Handle, error)
}

// scratch collects intermediate operand handles.
type scratch struct {
	handles []handle.Handle
}

func (s *scratch) hold(h handle.Handle) handle.Handle {
	s.handles = append(s.handles, h)
	return h
}

func (s *scratch) keep(h handle.Handle, err error) (handle.Handle, error) {
	if err != nil {
		return h, err
	}
	return s.hold(h), nil
}

// nameExamples returns the text-labelled sample properties.
func nameExamples(r *handle.NameRegistry) []example {
	return []example{
		{"Nested conjunction", func(s *scratch) (handle.Handle, error) {
			ab, err := s.keep(r.Conjunction(s.hold(r.Atomic("A")), s.hold(r.Atomic("B"))))
			if err != nil {
				return handle.Handle{}, err
			}
			return r.Conjunction(ab, s.hold(r.Atomic("C")))
		}},
		{"Traffic light: green recurs", func(s *scratch) (handle.Handle, error) {
			ev, err := s.keep(r.Eventually(s.hold(r.Atomic("green"))))
			if err != nil {
				return handle.Handle{}, err
			}
			return r.Always(ev)
		}},
		{"Mutual exclusion: never both critical", func(s *scratch) (handle.Handle, error) {
			both, err := s.keep(r.Conjunction(s.hold(r.Atomic("critical1")), s.hold(r.Atomic("critical2"))))
			if err != nil {
				return handle.Handle{}, err
			}
			not, err := s.keep(r.Negation(both))
			if err != nil {
				return handle.Handle{}, err
			}
			return r.Always(not)
		}},
		{"Mutual exclusion: trying leads to critical", func(s *scratch) (handle.Handle, error) {
			notTrying, err := s.keep(r.Negation(s.hold(r.Atomic("trying1"))))
			if err != nil {
				return handle.Handle{}, err
			}
			critical, err := s.keep(r.Eventually(s.hold(r.Atomic("critical1"))))
			if err != nil {
				return handle.Handle{}, err
			}
			resp, err := s.keep(r.Disjunction(notTrying, critical))
			if err != nil {
				return handle.Handle{}, err
			}
			return r.Always(resp)
		}},
	}
}

// codeExamples returns the integer-labelled sample formulas.
func codeExamples(r *handle.CodeRegistry) []example {
	return []example{
		{"Nested conjunction", func(s *scratch) (handle.Handle, error) {
			f, err := s.keep(r.Conjunction(s.hold(r.Atomic(8)), s.hold(r.Atomic(1))))
			if err != nil {
				return handle.Handle{}, err
			}
			return r.Conjunction(f, s.hold(r.Atomic(4)))
		}},
		{"Constant", func(s *scratch) (handle.Handle, error) {
			return r.Boolean(true), nil
		}},
		{"Conjunction of constants", func(s *scratch) (handle.Handle, error) {
			return r.Conjunction(s.hold(r.Boolean(true)), s.hold(r.Boolean(true)))
		}},
		{"Eventually a code", func(s *scratch) (handle.Handle, error) {
			return r.Eventually(s.hold(r.Atomic(42)))
		}},
	}
}
