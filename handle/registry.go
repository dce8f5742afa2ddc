package handle

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/rfielding/kripke-ltl/internal/logging"
	"github.com/rfielding/kripke-ltl/ltl"
)

type entry[L ltl.Label] struct {
	formula ltl.Formula[L] // nil once released
	gen     uint32
}

// Registry owns formulas on behalf of callers that only hold Handles.
// Each constructor returns a fresh handle to a new formula built from deep
// copies of its operands, so operand handles stay valid and unchanged.
// A Registry is not safe for concurrent use.
type Registry[L ltl.Label] struct {
	entries []entry[L]
	free    []uint32
	live    int

	kind    string
	logger  *slog.Logger
	metrics *Metrics
}

type options struct {
	logger  *slog.Logger
	metrics *Metrics
}

// Option configures a Registry.
type Option func(*options)

// WithLogger sets the logger used for release and rejection events.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMetrics records registry activity on m.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// NewRegistry creates an empty registry for formulas labelled with L.
func NewRegistry[L ltl.Label](opts ...Option) *Registry[L] {
	o := options{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Registry[L]{
		kind:    labelKind[L](),
		logger:  o.logger,
		metrics: o.metrics,
	}
}

func labelKind[L ltl.Label]() string {
	var zero L
	switch any(zero).(type) {
	case ltl.Code:
		return "code"
	case ltl.Name:
		return "name"
	default:
		return fmt.Sprintf("%T", zero)
	}
}

// Atomic returns a handle to the atomic proposition v.
func (r *Registry[L]) Atomic(v L) Handle {
	return r.insert("atomic", ltl.NewAtomic(v))
}

// Conjunction returns a handle to (lhs ∧ rhs).
func (r *Registry[L]) Conjunction(lhs, rhs Handle) (Handle, error) {
	return r.binary("conjunction", lhs, rhs, ltl.NewConjunction[L])
}

// Disjunction returns a handle to (lhs ∨ rhs).
func (r *Registry[L]) Disjunction(lhs, rhs Handle) (Handle, error) {
	return r.binary("disjunction", lhs, rhs, ltl.NewDisjunction[L])
}

// Negation returns a handle to ¬inner.
func (r *Registry[L]) Negation(inner Handle) (Handle, error) {
	return r.unary("negation", inner, ltl.NewNegation[L])
}

// Eventually returns a handle to <>inner.
func (r *Registry[L]) Eventually(inner Handle) (Handle, error) {
	return r.unary("eventually", inner, ltl.NewEventually[L])
}

// Always returns a handle to []inner.
func (r *Registry[L]) Always(inner Handle) (Handle, error) {
	return r.unary("always", inner, ltl.NewAlways[L])
}

// Clone returns a new handle owning a deep copy of h's formula.
func (r *Registry[L]) Clone(h Handle) (Handle, error) {
	return r.unary("clone", h, func(f ltl.Formula[L]) ltl.Formula[L] { return f.Clone() })
}

// Render returns the text form of h's formula.
func (r *Registry[L]) Render(h Handle) (string, error) {
	f, err := r.lookup("render", h)
	if err != nil {
		return "", err
	}
	return f.String(), nil
}

// Formula returns a deep copy of h's formula, detached from the registry.
func (r *Registry[L]) Formula(h Handle) (ltl.Formula[L], error) {
	f, err := r.lookup("formula", h)
	if err != nil {
		return nil, err
	}
	return f.Clone(), nil
}

// Adopt takes ownership of a deep copy of f and returns its handle.
func (r *Registry[L]) Adopt(f ltl.Formula[L]) Handle {
	return r.insert("adopt", f.Clone())
}

// Release drops h's formula. Any later use of h, including a second
// Release, fails with ErrReleased.
func (r *Registry[L]) Release(h Handle) error {
	if _, err := r.lookup("release", h); err != nil {
		return err
	}
	e := &r.entries[h.slot]
	e.formula = nil
	e.gen++
	// A slot whose generation is exhausted is retired rather than reused,
	// so stale handles can never match a later occupant.
	if e.gen != math.MaxUint32 {
		r.free = append(r.free, h.slot)
	}
	r.live--
	r.metrics.observeReleased(r.kind)
	r.logger.Debug("handle released", "labels", r.kind, "handle", h.String(), "live", r.live)
	return nil
}

// Live returns the number of handles issued and not yet released.
func (r *Registry[L]) Live() int {
	return r.live
}

func (r *Registry[L]) unary(op string, h Handle, build func(ltl.Formula[L]) ltl.Formula[L]) (Handle, error) {
	f, err := r.lookup(op, h)
	if err != nil {
		return Handle{}, err
	}
	return r.insert(op, build(f)), nil
}

func (r *Registry[L]) binary(op string, lhs, rhs Handle, build func(a, b ltl.Formula[L]) ltl.Formula[L]) (Handle, error) {
	a, err := r.lookup(op, lhs)
	if err != nil {
		return Handle{}, err
	}
	b, err := r.lookup(op, rhs)
	if err != nil {
		return Handle{}, err
	}
	return r.insert(op, build(a, b)), nil
}

func (r *Registry[L]) insert(op string, f ltl.Formula[L]) Handle {
	var h Handle
	if n := len(r.free); n > 0 {
		slot := r.free[n-1]
		r.free = r.free[:n-1]
		r.entries[slot].formula = f
		h = Handle{slot: slot, gen: r.entries[slot].gen}
	} else {
		r.entries = append(r.entries, entry[L]{formula: f, gen: 1})
		h = Handle{slot: uint32(len(r.entries) - 1), gen: 1}
	}
	r.live++
	r.metrics.observeConstructed(r.kind, op)
	return h
}

func (r *Registry[L]) lookup(op string, h Handle) (ltl.Formula[L], error) {
	var err error
	switch {
	case h.IsZero() || int(h.slot) >= len(r.entries):
		err = ErrUnknown
	case r.entries[h.slot].gen > h.gen:
		err = ErrReleased
	case r.entries[h.slot].gen < h.gen || r.entries[h.slot].formula == nil:
		err = ErrUnknown
	default:
		return r.entries[h.slot].formula, nil
	}
	r.metrics.observeRejected(r.kind, op, err)
	r.logger.Debug("handle rejected", "labels", r.kind, "op", op, "handle", h.String(), "error", err)
	return nil, &HandleError{Op: op, Handle: h, Err: err}
}
