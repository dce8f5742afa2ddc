package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameBoundaryExample(t *testing.T) {
	l := newLibrary()

	ab := l.nameConjunction(l.nameAtomic("A"), l.nameAtomic("B"))
	require.NotZero(t, ab)
	abc := l.nameConjunction(ab, l.nameAtomic("C"))
	require.NotZero(t, abc)

	text, ok := l.nameRender(abc)
	require.True(t, ok)
	assert.Equal(t, "((A ∧ B) ∧ C)", text)
	assert.Empty(t, l.lastError())
}

func TestCodeBoundaryExample(t *testing.T) {
	l := newLibrary()

	f := l.codeConjunction(l.codeAtomic(8), l.codeAtomic(1))
	g := l.codeConjunction(f, l.codeAtomic(4))

	text, ok := l.codeRender(g)
	require.True(t, ok)
	assert.Equal(t, "((8 ∧ 1) ∧ 4)", text)

	neg := l.codeNegation(l.codeAlways(l.codeEventually(l.codeAtomic(2))))
	text, ok = l.codeRender(neg)
	require.True(t, ok)
	assert.Equal(t, "¬[]<>2", text)
}

func TestIsTrueDistinguishesErrors(t *testing.T) {
	l := newLibrary()
	tr := l.codeBoolean(true)
	fa := l.codeBoolean(false)
	conj := l.codeDisjunction(tr, fa)

	assert.Equal(t, truthTrue, l.codeIsTrue(tr))
	assert.Equal(t, truthFalse, l.codeIsTrue(fa))
	assert.Equal(t, truthFalse, l.codeIsTrue(conj))
	assert.Empty(t, l.lastError())

	require.True(t, l.codeRelease(fa))
	assert.Equal(t, truthError, l.codeIsTrue(fa))
	assert.Contains(t, l.lastError(), "already released")

	// A later successful call clears the message.
	assert.Equal(t, truthTrue, l.codeIsTrue(tr))
	assert.Empty(t, l.lastError())
}

func TestReleasedHandlesAreRejected(t *testing.T) {
	l := newLibrary()
	a := l.nameAtomic("a")
	require.True(t, l.nameRelease(a))

	assert.Zero(t, l.nameNegation(a))
	assert.Contains(t, l.lastError(), "already released")

	_, ok := l.nameRender(a)
	assert.False(t, ok)

	assert.False(t, l.nameRelease(a))
	assert.Zero(t, l.nameConjunction(a, l.nameAtomic("b")))
	assert.Contains(t, l.lastError(), "already released")

	_, ok = l.nameRender(0)
	assert.False(t, ok)
	assert.Contains(t, l.lastError(), "unknown handle")
}

func TestOperandsStayValid(t *testing.T) {
	l := newLibrary()
	p := l.nameAtomic("p")
	ev := l.nameEventually(p)
	alw := l.nameAlways(ev)
	dis := l.nameDisjunction(p, alw)

	require.True(t, l.nameRelease(ev))
	for h, want := range map[uint64]string{p: "p", alw: "[]<>p", dis: "(p ∨ []<>p)"} {
		text, ok := l.nameRender(h)
		require.True(t, ok)
		assert.Equal(t, want, text)
	}
}

func TestResultHelpers(t *testing.T) {
	l := newLibrary()
	boom := errors.New("boom")

	assert.False(t, l.statusResult(boom))
	assert.Equal(t, "boom", l.lastError())
	assert.True(t, l.statusResult(nil))
	assert.Empty(t, l.lastError())

	_, ok := l.textResult("x", boom)
	assert.False(t, ok)
	assert.Equal(t, truthError, l.truthResult(true, boom))
	assert.Equal(t, "boom", l.lastError())
}
