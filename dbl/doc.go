// Package dbl defines the virtual double category kernel contract
// implemented by the discrete and discrete-tabulator double theories
// (the modal theory does not implement it): objects, arrows, proarrows,
// cells, and composition of cells via tree reduction.
package dbl
