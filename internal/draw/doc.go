// Package draw provides the Pen, the drawing primitive the flood-fill
// engine paints through.
//
// A Pen targets one U/V plane of a dataset, holds the coordinates of
// every other axis fixed, and carries the current paint value: a gray
// level for scalar datasets or a color for merged-RGB datasets. The
// fill engine only ever asks the pen to draw horizontal runs and to
// flood the whole plane; everything else (what to draw, where) is the
// engine's business.
package draw
