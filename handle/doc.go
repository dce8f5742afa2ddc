// Package handle exposes the ltl algebra to callers that must not hold
// formula trees directly.
//
// A Registry owns every formula it builds and hands out opaque Handles.
// Composition deep-copies the operand formulas, so operand handles remain
// valid and independently owned. Release drops a formula; every later use
// of that handle fails with ErrReleased instead of touching another
// formula that reuses the slot.
//
// NameRegistry and CodeRegistry are the text-labelled and integer-labelled
// instantiations; their trees never mix. A Handle is only meaningful to
// the registry that issued it.
package handle
