// Package spec holds the per-record-type field schemas ("spec definitions")
// used to interpret server forms. A Registry maps record types such as
// "client" or "job" to definition strings, seeded with built-in defaults and
// overridable at runtime when a server supplies a newer definition.
//
// Definitions stay opaque text until they are needed; Parse turns one into an
// ordered Definition of Field descriptors. A Registry performs no internal
// locking, callers that share one across goroutines must serialise access
// themselves (one registry per connection is the expected arrangement).
package spec
