package fill

import (
	"github.com/ironsheep/region-tools-mcp/internal/dataset"
)

// planeReader reads samples of the working plane through its own
// accessor, with the non-plane axes already fixed. Keeping the reader
// separate from the pen's accessor lets the engine read and paint the
// same dataset within one expansion without repositioning.
type planeReader struct {
	acc    *dataset.Accessor
	uAxis  int
	vAxis  int
	chAxis int
}

func (r planeReader) value(u, v int64) float64 {
	r.acc.SetPosition(u, r.uAxis)
	r.acc.SetPosition(v, r.vAxis)
	return r.acc.Get()
}

// matcher decides whether the pixel at (u, v) belongs to the region
// being filled. The three implementations cover the engine's modes:
// exact gray, exact color, and closed scalar range.
type matcher interface {
	matches(u, v int64) bool
}

type grayMatcher struct {
	r    planeReader
	want float64
}

func (m grayMatcher) matches(u, v int64) bool {
	return m.r.value(u, v) == m.want
}

// colorMatcher compares the three channels independently; the first
// mismatching channel fails the pixel without reading the rest.
type colorMatcher struct {
	r          planeReader
	wr, wg, wb float64
}

func (m colorMatcher) matches(u, v int64) bool {
	m.r.acc.SetPosition(u, m.r.uAxis)
	m.r.acc.SetPosition(v, m.r.vAxis)

	m.r.acc.SetPosition(0, m.r.chAxis)
	if m.r.acc.Get() != m.wr {
		return false
	}
	m.r.acc.SetPosition(1, m.r.chAxis)
	if m.r.acc.Get() != m.wg {
		return false
	}
	m.r.acc.SetPosition(2, m.r.chAxis)
	return m.r.acc.Get() == m.wb
}

// rangeMatcher matches scalar values inside [lo, hi], both ends
// inclusive. Color channels are ignored entirely.
type rangeMatcher struct {
	r      planeReader
	lo, hi float64
}

func (m rangeMatcher) matches(u, v int64) bool {
	val := m.r.value(u, v)
	return val >= m.lo && val <= m.hi
}
