// Package graph implements the columnar graph layer: finite
// directed multigraphs whose source and target maps are zero.Column values,
// plus graph mappings and the morphism validation that checks they commute
// with src/tgt.
//
// ColumnarGraph is a generic, single-threaded multigraph parameterized over
// arbitrary vertex/edge id types, backed by zero.Column rather than bespoke
// adjacency maps. The engine is single-threaded and synchronous by design
// (see top-level design notes): callers needing cross-goroutine sharing
// must synchronize externally.
package graph
