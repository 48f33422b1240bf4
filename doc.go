// Package gc implements a small, embeddable tracing garbage collector for a
// host application that manages its own heap of objects — typically a
// language interpreter. The host allocates objects through an Engine,
// anchors liveness with Root handles, and mutates the object graph (arrays,
// sub-references, raw bytes) directly through the accessor functions in
// accessors.go. Periodically, usually in response to an allocation failure,
// the host asks the Engine to run a major collection, which traces from
// the root set and reclaims everything it cannot reach.
//
// Objects are addressed through Gateways: stable handles that never move
// for as long as the object they describe is alive. A Gateway pairs a raw
// data pointer with a Descriptor, a compact tagged-union record describing
// either a homogeneous array of fixed-layout elements or an opaquely-shaped
// object traced by a host-supplied callback.
//
// This package is not safe for concurrent use on a single Engine. Multiple
// Engines may be used concurrently from separate goroutines provided each
// Engine (and the Gateways and Roots it owns) is only ever touched from one
// goroutine at a time.
package gc
