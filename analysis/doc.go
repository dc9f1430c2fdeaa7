// Package analysis builds the polynomial vector field of an ODE analysis
// from a double model, following the supplemented stdlib/analyses/ode
// system-building logic: no integrator lives here (numerical integration,
// plotting, and Gillespie simulation are out of scope), only the
// construction of the right-hand side as a PolynomialSystem over a model's
// object generators.
package analysis
