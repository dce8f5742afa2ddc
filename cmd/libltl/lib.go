package main

import (
	"sync"

	"github.com/rfielding/kripke-ltl/handle"
	"github.com/rfielding/kripke-ltl/internal/logging"
	"github.com/rfielding/kripke-ltl/ltl"
)

// Truth values returned by isTrue across the C ABI.
const (
	truthError = -1
	truthFalse = 0
	truthTrue  = 1
)

// library holds both registries behind one lock and records the outcome
// of the latest call. Every call overwrites lastErr, so an empty message
// always means the latest call succeeded.
type library struct {
	mu      sync.Mutex
	names   *handle.NameRegistry
	codes   *handle.CodeRegistry
	lastErr string
}

func newLibrary() *library {
	return &library{
		names: handle.NewNameRegistry(handle.WithLogger(logging.NewNop())),
		codes: handle.NewCodeRegistry(handle.WithLogger(logging.NewNop())),
	}
}

func (l *library) record(err error) {
	if err != nil {
		l.lastErr = err.Error()
		return
	}
	l.lastErr = ""
}

func (l *library) handleResult(h handle.Handle, err error) uint64 {
	l.record(err)
	if err != nil {
		return 0
	}
	return h.ID()
}

func (l *library) textResult(s string, err error) (string, bool) {
	l.record(err)
	return s, err == nil
}

func (l *library) statusResult(err error) bool {
	l.record(err)
	return err == nil
}

func (l *library) truthResult(v bool, err error) int {
	l.record(err)
	switch {
	case err != nil:
		return truthError
	case v:
		return truthTrue
	default:
		return truthFalse
	}
}

func (l *library) lastError() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastErr
}

func (l *library) nameAtomic(label string) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.handleResult(l.names.Atomic(ltl.Name(label)), nil)
}

func (l *library) nameConjunction(lhs, rhs uint64) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.handleResult(l.names.Conjunction(handle.FromID(lhs), handle.FromID(rhs)))
}

func (l *library) nameDisjunction(lhs, rhs uint64) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.handleResult(l.names.Disjunction(handle.FromID(lhs), handle.FromID(rhs)))
}

func (l *library) nameNegation(inner uint64) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.handleResult(l.names.Negation(handle.FromID(inner)))
}

func (l *library) nameEventually(inner uint64) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.handleResult(l.names.Eventually(handle.FromID(inner)))
}

func (l *library) nameAlways(inner uint64) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.handleResult(l.names.Always(handle.FromID(inner)))
}

func (l *library) nameRender(h uint64) (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.textResult(l.names.Render(handle.FromID(h)))
}

func (l *library) nameRelease(h uint64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.statusResult(l.names.Release(handle.FromID(h)))
}

func (l *library) codeAtomic(label int16) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.handleResult(l.codes.Atomic(ltl.Code(label)), nil)
}

func (l *library) codeBoolean(v bool) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.handleResult(l.codes.Boolean(v), nil)
}

func (l *library) codeConjunction(lhs, rhs uint64) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.handleResult(l.codes.Conjunction(handle.FromID(lhs), handle.FromID(rhs)))
}

func (l *library) codeDisjunction(lhs, rhs uint64) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.handleResult(l.codes.Disjunction(handle.FromID(lhs), handle.FromID(rhs)))
}

func (l *library) codeNegation(inner uint64) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.handleResult(l.codes.Negation(handle.FromID(inner)))
}

func (l *library) codeEventually(inner uint64) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.handleResult(l.codes.Eventually(handle.FromID(inner)))
}

func (l *library) codeAlways(inner uint64) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.handleResult(l.codes.Always(handle.FromID(inner)))
}

func (l *library) codeIsTrue(h uint64) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.truthResult(l.codes.IsTrue(handle.FromID(h)))
}

func (l *library) codeRender(h uint64) (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.textResult(l.codes.Render(handle.FromID(h)))
}

func (l *library) codeRelease(h uint64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.statusResult(l.codes.Release(handle.FromID(h)))
}
