// Package scale provides quadratic scaling of 3D vectors.
//
// All operations are pure functions over a vector v and a scale factor q:
// expansion multiplies every component by q², contraction divides every
// component by q². Expansion followed by contraction with the same factor is
// the identity (within floating-point rounding), which makes the pair useful
// for reversible coordinate re-scaling.
//
// No input validation is performed. A zero factor makes contraction produce
// IEEE-754 infinities or NaNs, which propagate to the caller unexamined;
// callers needing guarantees must check q != 0 themselves. The sign of q is
// irrelevant since only q² is used.
//
// For scaling whole vector sets in one call, see the field package.
package scale
