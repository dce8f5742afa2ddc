package handle

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfielding/kripke-ltl/ltl"
)

func render(t *testing.T, r interface{ Render(Handle) (string, error) }, h Handle) string {
	t.Helper()
	s, err := r.Render(h)
	require.NoError(t, err)
	return s
}

func TestNameRegistryExample(t *testing.T) {
	r := NewNameRegistry()

	a := r.Atomic("A")
	b := r.Atomic("B")
	c := r.Atomic("C")
	ab, err := r.Conjunction(a, b)
	require.NoError(t, err)
	abc, err := r.Conjunction(ab, c)
	require.NoError(t, err)

	assert.Equal(t, "((A ∧ B) ∧ C)", render(t, r, abc))
	assert.Equal(t, 5, r.Live())
}

func TestCodeRegistryExample(t *testing.T) {
	r := NewCodeRegistry()

	f, err := r.Conjunction(r.Atomic(8), r.Atomic(1))
	require.NoError(t, err)
	g, err := r.Conjunction(f, r.Atomic(4))
	require.NoError(t, err)

	assert.Equal(t, "((8 ∧ 1) ∧ 4)", render(t, r, g))
}

func TestEveryConstructor(t *testing.T) {
	r := NewNameRegistry()
	p := r.Atomic("p")
	q := r.Atomic("q")

	tests := []struct {
		name  string
		build func() (Handle, error)
		want  string
	}{
		{"conjunction", func() (Handle, error) { return r.Conjunction(p, q) }, "(p ∧ q)"},
		{"disjunction", func() (Handle, error) { return r.Disjunction(p, q) }, "(p ∨ q)"},
		{"negation", func() (Handle, error) { return r.Negation(p) }, "¬p"},
		{"eventually", func() (Handle, error) { return r.Eventually(q) }, "<>q"},
		{"always", func() (Handle, error) { return r.Always(q) }, "[]q"},
		{"clone", func() (Handle, error) { return r.Clone(p) }, "p"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := tt.build()
			require.NoError(t, err)
			assert.NotEqual(t, p, h)
			assert.NotEqual(t, q, h)
			assert.Equal(t, tt.want, render(t, r, h))
		})
	}
}

func TestOperandsSurviveComposition(t *testing.T) {
	r := NewNameRegistry()
	a := r.Atomic("a")
	b, err := r.Eventually(r.Atomic("b"))
	require.NoError(t, err)

	c, err := r.Disjunction(a, b)
	require.NoError(t, err)

	require.NoError(t, r.Release(a))
	require.NoError(t, r.Release(b))

	assert.Equal(t, "(a ∨ <>b)", render(t, r, c))
}

func TestReleasingCompositeLeavesOperands(t *testing.T) {
	r := NewNameRegistry()
	a := r.Atomic("a")
	n, err := r.Negation(a)
	require.NoError(t, err)

	require.NoError(t, r.Release(n))
	assert.Equal(t, "a", render(t, r, a))
}

func TestCloneIsIndependent(t *testing.T) {
	r := NewCodeRegistry()
	orig, err := r.Always(r.Atomic(7))
	require.NoError(t, err)

	cp, err := r.Clone(orig)
	require.NoError(t, err)
	assert.Equal(t, render(t, r, orig), render(t, r, cp))

	require.NoError(t, r.Release(cp))
	assert.Equal(t, "[]7", render(t, r, orig))
}

func TestUseAfterRelease(t *testing.T) {
	r := NewNameRegistry()
	a := r.Atomic("a")
	other := r.Atomic("other")
	require.NoError(t, r.Release(a))

	_, err := r.Render(a)
	assert.ErrorIs(t, err, ErrReleased)

	_, err = r.Conjunction(a, other)
	assert.ErrorIs(t, err, ErrReleased)
	_, err = r.Conjunction(other, a)
	assert.ErrorIs(t, err, ErrReleased)
	_, err = r.Negation(a)
	assert.ErrorIs(t, err, ErrReleased)
	_, err = r.Clone(a)
	assert.ErrorIs(t, err, ErrReleased)
	_, err = r.Formula(a)
	assert.ErrorIs(t, err, ErrReleased)

	err = r.Release(a)
	assert.ErrorIs(t, err, ErrReleased)

	var he *HandleError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, "release", he.Op)
	assert.Equal(t, a, he.Handle)
}

func TestStaleHandleAfterSlotReuse(t *testing.T) {
	r := NewNameRegistry()
	old := r.Atomic("old")
	require.NoError(t, r.Release(old))

	fresh := r.Atomic("fresh")
	assert.Equal(t, old.slot, fresh.slot)
	assert.NotEqual(t, old, fresh)

	_, err := r.Render(old)
	assert.ErrorIs(t, err, ErrReleased)
	assert.Equal(t, "fresh", render(t, r, fresh))
}

func TestUnknownHandles(t *testing.T) {
	r := NewNameRegistry()
	_, err := r.Render(Handle{})
	assert.ErrorIs(t, err, ErrUnknown)

	a := r.Atomic("a")
	_, err = r.Render(Handle{slot: a.slot + 5, gen: 1})
	assert.ErrorIs(t, err, ErrUnknown)
	_, err = r.Render(Handle{slot: a.slot, gen: a.gen + 1})
	assert.ErrorIs(t, err, ErrUnknown)

	require.NoError(t, r.Release(a))
	// Same generation as the freed slot, never issued.
	_, err = r.Render(Handle{slot: a.slot, gen: a.gen + 1})
	assert.ErrorIs(t, err, ErrUnknown)
}

func TestHandleIDRoundTrip(t *testing.T) {
	r := NewNameRegistry()
	r.Atomic("x")
	h := r.Atomic("y")

	back := FromID(h.ID())
	assert.Equal(t, h, back)
	assert.Equal(t, "y", render(t, r, back))
	assert.True(t, FromID(0).IsZero())
	assert.False(t, h.IsZero())
	assert.Equal(t, "#1.1", h.String())
	assert.Equal(t, "#0.0", Handle{}.String())
}

func TestBooleanAndIsTrue(t *testing.T) {
	r := NewCodeRegistry()
	tr := r.Boolean(true)
	fa := r.Boolean(false)

	got, err := r.IsTrue(tr)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = r.IsTrue(fa)
	require.NoError(t, err)
	assert.False(t, got)

	both, err := r.Conjunction(tr, r.Boolean(true))
	require.NoError(t, err)
	got, err = r.IsTrue(both)
	require.NoError(t, err)
	assert.False(t, got)
	assert.Equal(t, "(true ∧ true)", render(t, r, both))

	got, err = r.IsTrue(r.Atomic(1))
	require.NoError(t, err)
	assert.False(t, got)

	require.NoError(t, r.Release(tr))
	_, err = r.IsTrue(tr)
	assert.ErrorIs(t, err, ErrReleased)
}

func TestFormulaIsDetached(t *testing.T) {
	r := NewNameRegistry()
	h, err := r.Negation(r.Atomic("p"))
	require.NoError(t, err)

	f, err := r.Formula(h)
	require.NoError(t, err)
	require.NoError(t, r.Release(h))
	assert.Equal(t, "¬p", f.String())

	adopted := r.Adopt(ltl.NewAlways(f))
	assert.Equal(t, "[]¬p", render(t, r, adopted))
}

func TestLiveCount(t *testing.T) {
	r := NewCodeRegistry()
	a := r.Atomic(1)
	b := r.Boolean(false)
	c, err := r.Disjunction(a, b)
	require.NoError(t, err)
	assert.Equal(t, 3, r.Live())

	for _, h := range []Handle{a, b, c} {
		require.NoError(t, r.Release(h))
	}
	assert.Equal(t, 0, r.Live())
	assert.Error(t, r.Release(c))
	assert.Equal(t, 0, r.Live())
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	names := NewNameRegistry(WithMetrics(m))
	codes := NewCodeRegistry(WithMetrics(m))

	a := names.Atomic("a")
	_, err := names.Always(a)
	require.NoError(t, err)
	codes.Boolean(true)
	require.NoError(t, names.Release(a))
	_, err = names.Render(a)
	require.Error(t, err)
	_, err = names.Render(Handle{})
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.constructed.WithLabelValues("name", "atomic")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.constructed.WithLabelValues("name", "always")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.constructed.WithLabelValues("code", "boolean")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.released.WithLabelValues("name")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.live.WithLabelValues("name")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.live.WithLabelValues("code")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rejected.WithLabelValues("name", "render", "released")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rejected.WithLabelValues("name", "render", "unknown")))
}
