package script

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/rfielding/kripke-ltl/handle"
	"github.com/rfielding/kripke-ltl/internal/logging"
	"github.com/rfielding/kripke-ltl/ltl"
)

// Result is the output of a render or is_true step.
type Result struct {
	Step   int
	Op     string
	Target string
	Text   string // rendered formula, for render steps
	Dot    string // Graphviz tree, for render steps
	Value  bool   // for is_true steps
}

// registry is the label-independent part of handle.Registry.
type registry interface {
	Conjunction(lhs, rhs handle.Handle) (handle.Handle, error)
	Disjunction(lhs, rhs handle.Handle) (handle.Handle, error)
	Negation(inner handle.Handle) (handle.Handle, error)
	Eventually(inner handle.Handle) (handle.Handle, error)
	Always(inner handle.Handle) (handle.Handle, error)
	Clone(h handle.Handle) (handle.Handle, error)
	Render(h handle.Handle) (string, error)
	Release(h handle.Handle) error
}

type backend struct {
	registry
	atomic  func(label string) (handle.Handle, error)
	dot     func(h handle.Handle) (string, error)
	boolean func(v bool) handle.Handle           // nil for text labels
	isTrue  func(h handle.Handle) (bool, error) // nil for text labels
}

// Runner executes scripts against one registry.
type Runner struct {
	b      backend
	logger *slog.Logger
}

// NewNameRunner runs scripts with text labels. Boolean and is_true steps
// are rejected.
func NewNameRunner(r *handle.NameRegistry, logger *slog.Logger) *Runner {
	return newRunner(backend{
		registry: r,
		atomic: func(label string) (handle.Handle, error) {
			return r.Atomic(ltl.Name(label)), nil
		},
		dot: dotFor(r),
	}, logger)
}

// NewCodeRunner runs scripts with int16 labels.
func NewCodeRunner(r *handle.CodeRegistry, logger *slog.Logger) *Runner {
	return newRunner(backend{
		registry: r,
		atomic: func(label string) (handle.Handle, error) {
			v, err := strconv.ParseInt(label, 10, 16)
			if err != nil {
				return handle.Handle{}, fmt.Errorf("label %q is not a 16-bit integer", label)
			}
			return r.Atomic(ltl.Code(v)), nil
		},
		dot:     dotFor(r.Registry),
		boolean: r.Boolean,
		isTrue:  r.IsTrue,
	}, logger)
}

func newRunner(b backend, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{b: b, logger: logger}
}

func dotFor[L ltl.Label](r *handle.Registry[L]) func(handle.Handle) (string, error) {
	return func(h handle.Handle) (string, error) {
		f, err := r.Formula(h)
		if err != nil {
			return "", err
		}
		return ltl.Dot(f), nil
	}
}

// Run executes every step in order. It stops at the first failing step
// and always releases the handles the script still holds.
func (rn *Runner) Run(s *Script) ([]Result, error) {
	bound := make(map[string]binding)
	defer func() {
		for id, b := range bound {
			if b.released {
				continue
			}
			if err := rn.b.Release(b.h); err != nil {
				rn.logger.Warn("releasing leftover handle", "id", id, "error", err)
				continue
			}
			rn.logger.Debug("released leftover handle", "id", id)
		}
	}()

	var results []Result
	for i, st := range s.Steps {
		res, err := rn.step(bound, st)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i, err)
		}
		if res != nil {
			res.Step = i
			results = append(results, *res)
		}
	}
	return results, nil
}

// binding is a script id's current handle. Released bindings stay so a
// later reference reaches the registry and fails with ErrReleased.
type binding struct {
	h        handle.Handle
	released bool
}

func (rn *Runner) step(bound map[string]binding, st Step) (*Result, error) {
	op, err := st.op()
	if err != nil {
		return nil, err
	}

	ref := func(id string) (handle.Handle, error) {
		b, ok := bound[id]
		if !ok {
			return handle.Handle{}, fmt.Errorf("%s: no step with id %q", op, id)
		}
		return b.h, nil
	}
	ref2 := func(ids []string) (handle.Handle, handle.Handle, error) {
		a, err := ref(ids[0])
		if err != nil {
			return handle.Handle{}, handle.Handle{}, err
		}
		b, err := ref(ids[1])
		return a, b, err
	}
	unary := func(id string, build func(handle.Handle) (handle.Handle, error)) (handle.Handle, error) {
		h, err := ref(id)
		if err != nil {
			return handle.Handle{}, err
		}
		return build(h)
	}

	var h handle.Handle
	switch op {
	case "atomic":
		h, err = rn.b.atomic(st.Atomic.Value)
	case "boolean":
		if rn.b.boolean == nil {
			return nil, fmt.Errorf("boolean constants need integer labels")
		}
		h = rn.b.boolean(*st.Boolean)
	case "conjunction":
		var a, b handle.Handle
		if a, b, err = ref2(st.Conjunction); err == nil {
			h, err = rn.b.Conjunction(a, b)
		}
	case "disjunction":
		var a, b handle.Handle
		if a, b, err = ref2(st.Disjunction); err == nil {
			h, err = rn.b.Disjunction(a, b)
		}
	case "negation":
		h, err = unary(st.Negation, rn.b.Negation)
	case "eventually":
		h, err = unary(st.Eventually, rn.b.Eventually)
	case "always":
		h, err = unary(st.Always, rn.b.Always)
	case "clone":
		h, err = unary(st.Clone, rn.b.Clone)

	case "render":
		target, err := ref(st.Render)
		if err != nil {
			return nil, err
		}
		text, err := rn.b.Render(target)
		if err != nil {
			return nil, err
		}
		dot, err := rn.b.dot(target)
		if err != nil {
			return nil, err
		}
		return &Result{Op: op, Target: st.Render, Text: text, Dot: dot}, nil

	case "is_true":
		if rn.b.isTrue == nil {
			return nil, fmt.Errorf("is_true needs integer labels")
		}
		target, err := ref(st.IsTrue)
		if err != nil {
			return nil, err
		}
		v, err := rn.b.isTrue(target)
		if err != nil {
			return nil, err
		}
		return &Result{Op: op, Target: st.IsTrue, Value: v}, nil

	case "release":
		target, err := ref(st.Release)
		if err != nil {
			return nil, err
		}
		if err := rn.b.Release(target); err != nil {
			return nil, err
		}
		bound[st.Release] = binding{h: target, released: true}
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	prev, rebound := bound[st.ID]
	bound[st.ID] = binding{h: h}
	rn.logger.Debug("bound formula", "id", st.ID, "op", op, "handle", h.String())
	if rebound && !prev.released {
		// Rebinding an id hands the old formula back.
		return nil, rn.b.Release(prev.h)
	}
	return nil, nil
}
