// Package zero provides the bottom layer of the double-categorical engine:
// finite sets, partial functional mappings, reverse-indexed columns, and
// qualified-name/namespace machinery for hierarchical names. The higher
// layers (graph, fpcat, dbl, tt) key their generators by plain strings and
// do not use the naming machinery.
//
// Everything here is pure data. There is no concurrency control: the engine
// is single-threaded and synchronous by design (see the top-level design
// notes); callers that need to share a value across goroutines must
// synchronize externally.
package zero
