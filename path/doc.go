// Package path implements finite paths in a graph and open trees, the two
// composition-carrying data structures shared by the FP
// category (fpcat), the virtual double category kernel (dbl), and the
// morphism finder's bounded simple-path search.
package path
