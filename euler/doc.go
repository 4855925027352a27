// Package euler approximates an Euler spiral (clothoid) by a chain of
// circular arcs with linearly increasing or decreasing curvature.
/*

A clothoid is a curve whose curvature varies linearly with arc length. It is
the standard transition curve between a straight and a circular arc in road
and track design. Drafting systems usually have no clothoid primitive, but
they have arcs. The construction in this package follows

   Approximation of an Euler spiral by a series of circular arcs
   https://core.ac.uk/download/pdf/82483792.pdf

The turning angle A of the spiral is distributed onto N segments, with
subtended angles alpha.0 … alpha.N proportional to the curvature schedule
1/R1 … 1/R2. The first and the last segment are split into two half-arcs each,
one of which is a construction arc. Halving the boundary arcs retains second
order accuracy at both ends of the spiral.

Equal chords instead of equal arcs

In the paper every arc has the same arc length. Sketchers generally have no
constraint for arc length equality, but they can make lines equal. So this
package gives every step the same chord length d, fixed by the entry
half-arcs, and solves the radius of each step for its subtended angle:

   r.i = (d/2) / sin(alpha.i/2)

This introduces an additional error of order O((A/N)²). The chord length sum
of a chain converges to the theoretical clothoid length

   L = 2A / (1/R1 + 1/R2)

with 1/N², which is easy to check with Convergence(…).

Usage

   spec := euler.SpiralSpec{UseTotalAngle: true, TotalAngleRad: math.Pi/2, R1: 10, R2: 1e4, N: 20}
   chain, err := euler.Assemble(spec)

The chain starts at the origin and turns counter-clockwise. Its primitives
are listed in creation order in chain.Arcs and chain.Chords, and
chain.Intents() lists the relationships a constraint solver needs to keep the
chain's shape. A radius large compared to the other one (10⁴ times or more)
models a straight entry or exit. Radius ratios beyond that may give sketch
solvers a hard time.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package euler
