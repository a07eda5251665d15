// Package dataset provides the N-dimensional pixel storage the fill and
// particle tools operate on.
//
// A Dataset is a dense block of float64 samples addressed by an ordered
// list of named axes (X, Y, Channel, Slice, ...). Color images are stored
// with a merged RGB channel axis of extent 3; grayscale data has no
// channel axis at all. Values follow the 8-bit convention of the source
// images: 0-255 per channel or gray level.
//
// # Coordinate System
//
// All coordinates are 0-based and validated against the axis extents.
// (0,0) on the X/Y plane is the top-left pixel, X increases rightward,
// Y increases downward, matching the rest of the server.
//
// # Accessors
//
// An Accessor holds one coordinate per axis and reads or writes the
// sample under that position. Accessors are cheap; algorithms that read
// and write the same dataset concurrently within one call (such as the
// flood filler) use separate accessors over the shared backing block.
//
// Out-of-range coordinates are programmer errors, not runtime
// conditions: SetPosition panics instead of clamping, so a broken bounds
// guard in a caller fails loudly at the exact coordinate that escaped.
//
// # Thread Safety
//
// Datasets are not synchronized. Operations on one dataset must be
// serialized by the caller; distinct datasets are independent.
package dataset
