// Package polyring implements exact arithmetic over multivariate
// polynomial rings: sums of coefficient-weighted monomials in a fixed
// set of variables over a caller-chosen commutative coefficient ring.
//
// The package is organized as a small set of leaf packages for the
// pieces that have no business depending on anything else (monomial,
// order, coeff/algebra), feeding this root package's Term/Polynomial/Ring
// plus the arithmetic kernel, with division and promotion factored out
// into their own packages because each is a substantial algorithm in
// its own right.
package polyring
