// Package fdtd simulates a 2D pressure wave crossing a wall with an
// aperture, using an explicit finite-difference time-domain scheme.
//
// The field p lives on a Width×Height grid of unit cells. Each step applies
// the leapfrog update
//
//	p⁺ = (2p − p⁻ + λ·∇²p) · mask
//
// with the 5-point Laplacian (periodic neighbour taps) and Courant
// coefficient λ ≤ 0.5. Cells of the wall read 0 in the mask; the domain
// border is forced to zero after every step, so the wrap-around taps only
// ever read zeros once the first step has completed.
//
// A line source in column SourceColumn injects a Gaussian-modulated
// carrier
//
//	s(t, y) = sin(ω(t − d)) · exp(−β(t − t₀ − d)²),  d = y·sin θ
//
// so that the wavefront leaves the source tilted by θ.
//
// A [Session] moves from configured to running to completed. It is driven
// one step at a time with [Session.Step] or consumed lazily through
// [Session.Frames]; frames carry a copy of the field, never a view of the
// solver buffers.
package fdtd
