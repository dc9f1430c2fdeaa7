// Package dblcat implements a double-categorical modeling engine: finite
// presentations of categories and double theories, model morphism search,
// and a small dependently-typed term language over double models.
//
// The engine is layered bottom to top:
//
//	zero/     — finite sets, partial mappings, reverse-indexed columns
//	path/     — paths and open trees over a graph
//	graph/    — columnar finite multigraphs and graph mappings
//	fpcat/    — finitely presented categories (graph + path equations)
//	dbl/      — the virtual double category kernel shared by every theory
//	dbl/discrete, dbl/tabulator, dbl/modal — the three concrete double
//	            theories and their models
//	analysis/ — polynomial ODE vector fields built from a double model
//	tt/       — a dependent type theory over double models, normalized by
//	            evaluation
//
// Each subpackage is self-contained; this file only records the overall
// shape. See the per-package docs and DESIGN.md for the grounding of each
// part and the decisions behind it.
//
// The engine is single-threaded and synchronous throughout: no package
// here takes a lock. Callers that need to share a value across goroutines
// must synchronize externally.
package dblcat
