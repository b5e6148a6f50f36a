// internal/types/types.go
package types

// EntityID identifies a unit or structure for the lifetime of a session.
// IDs are never reused, so a stale ID always fails lookup.
type EntityID uint64
