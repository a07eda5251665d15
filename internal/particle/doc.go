// Package particle detects connected bright regions ("particles") in an
// image and measures them.
//
// Detection runs in three stages:
//
//  1. Threshold: the input is reduced to luminance and binarized; an
//     optional Gaussian blur suppresses speckle first.
//  2. Grouping: each foreground pixel not yet claimed seeds an
//     8-connected flood fill that marks its whole region and records
//     the bounding box.
//  3. Measurement: the region is replayed into a per-particle mask,
//     interior holes are erased, and area and centroid are computed
//     from the hole-filled mask.
//
// Results are sorted by area, largest first, and regions below a
// caller-supplied minimum area are dropped. Each particle carries its
// hole-filled mask as a base64 PNG so clients can overlay it.
package particle
