package handle

import "fmt"

// Handle is an opaque owning reference to a formula held by a Registry.
// The zero Handle is never valid.
type Handle struct {
	slot uint32
	gen  uint32
}

// ID packs the handle into a single integer for callers on the far side of
// a C ABI. FromID reverses it.
func (h Handle) ID() uint64 {
	return uint64(h.gen)<<32 | uint64(h.slot)
}

// FromID rebuilds a Handle from ID. Forged values are rejected by the
// registry with ErrUnknown.
func FromID(id uint64) Handle {
	return Handle{slot: uint32(id), gen: uint32(id >> 32)}
}

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool { return h.gen == 0 }

// String formats h as #slot.generation for logs and errors.
func (h Handle) String() string {
	return fmt.Sprintf("#%d.%d", h.slot, h.gen)
}
