// Package fill implements scanline flood filling over one U/V plane of
// a dataset.
//
// The Filler offers three entry points sharing one engine:
//
//   - Fill4: 4-connected fill of the region matching the seed's value
//   - Fill8: 8-connected fill of the region matching the seed's value
//   - FillParticleRegion: range-predicate fill that paints both the
//     image and an offset mask buffer, used to erase interior holes in
//     detected particles
//
// # Algorithm
//
// The engine keeps a stack of pending seeds. Each popped seed is
// expanded into the maximal horizontal run [u1, u2] of matching pixels
// containing it; the run is painted in one call, and the rows directly
// above and below are scanned over the same column range for matching
// sub-runs. Each contiguous sub-run contributes exactly one new seed
// (its first column), so re-seeding is bounded by the number of runs
// rather than the number of pixels. Fill8 additionally probes the four
// diagonal neighbours of the run's endpoints; FillParticleRegion
// instead widens the scanned range by one column on each side, a looser
// catch-all for diagonal connections that is good enough for hole
// filling.
//
// # Matching
//
// Matching is exact: a scalar plane compares gray values bit for bit,
// a merged-RGB plane compares all three channels independently and any
// mismatching channel fails the pixel. FillParticleRegion matches a
// closed scalar range [level1, level2] instead. There is no tolerance
// or anti-aliasing support.
//
// # State and Reentrancy
//
// A Filler reuses its seed stack across calls to avoid reallocation, so
// one instance must not run two fills concurrently. The color-vs-gray
// decision is taken once at construction from the pen's dataset and
// never changes.
//
// Popping an empty stack and touching a coordinate outside the plane
// are invariant violations and panic; neither can occur while the
// engine's bounds guards are intact.
package fill
