package fill

import (
	"image"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/region-tools-mcp/internal/dataset"
)

// Pen is the paint sink the engine draws through. *draw.Pen satisfies
// it; tests substitute counting wrappers.
type Pen interface {
	// Dataset returns the dataset being painted.
	Dataset() *dataset.Dataset
	// UAxis and VAxis return the indices of the plane axes.
	UAxis() int
	VAxis() int
	// MaxU and MaxV return the largest valid plane coordinates.
	MaxU() int64
	MaxV() int64
	// SetPosition re-fixes the non-plane axes before a fill.
	SetPosition(position []int64)
	// SetGrayValue and GrayValue manage the scalar paint value.
	SetGrayValue(v float64)
	GrayValue() float64
	// Color returns the current paint color (merged-RGB datasets).
	Color() colorful.Color
	// DrawRun paints the inclusive run [u1, u2] at row v.
	DrawRun(u1, u2, v int64)
	// Fill paints the whole plane with the current paint value.
	Fill()
}

// Filler flood-fills regions of the pen's U/V plane. Whether pixels are
// matched as colors or as gray values is decided once here, from the
// pen's dataset, and holds for the filler's lifetime.
//
// A Filler is not safe for concurrent use: the seed stack is shared
// mutable state reused across calls.
type Filler struct {
	pen     Pen
	isColor bool
	seeds   frontier
}

// New creates a Filler that paints through the given pen.
func New(pen Pen) *Filler {
	return &Filler{
		pen:     pen,
		isColor: pen.Dataset().RGBMerged(),
	}
}

// Fill4 flood-fills the 4-connected region containing (u0, v0) whose
// pixels equal the seed's value, painting it with the pen's current
// paint value. The position fixes every non-plane axis. Returns false
// without touching anything when the seed already holds the paint
// value, true otherwise.
func (f *Filler) Fill4(u0, v0 int64, position []int64) bool {
	r := f.begin(position)
	if f.paintValueMatcher(r).matches(u0, v0) {
		return false
	}
	maxU, maxV := f.pen.MaxU(), f.pen.MaxV()
	m := f.referenceMatcher(r, u0, v0)
	f.seeds.clear()
	f.seeds.push(u0, v0)
	for !f.seeds.empty() {
		u, v := f.seeds.pop()
		if !m.matches(u, v) {
			continue
		}
		u1, u2 := u, u
		// expand to the maximal matching run containing u
		for u1 >= 0 && m.matches(u1, v) {
			u1--
		}
		u1++
		for u2 <= maxU && m.matches(u2, v) {
			u2++
		}
		u2--
		f.pen.DrawRun(u1, u2, v)
		f.seedRow(m, u1, u2, v-1, v > 0)
		f.seedRow(m, u1, u2, v+1, v < maxV)
	}
	return true
}

// Fill8 is Fill4 with 8-connectivity: after expanding a run it also
// probes the diagonal neighbours of the run's two endpoints.
//
// A popped seed that no longer matches (overwritten by an earlier
// expansion) is not discarded outright: it degenerates to the
// zero-width run [u, u] and the diagonal and row scans still execute
// over it. Particle-analysis callers depend on this exact propagation,
// so it is preserved as is; see TestFill8StaleSeedQuirk.
func (f *Filler) Fill8(u0, v0 int64, position []int64) bool {
	r := f.begin(position)
	if f.paintValueMatcher(r).matches(u0, v0) {
		return false
	}
	maxU, maxV := f.pen.MaxU(), f.pen.MaxV()
	m := f.referenceMatcher(r, u0, v0)
	f.seeds.clear()
	f.seeds.push(u0, v0)
	for !f.seeds.empty() {
		u, v := f.seeds.pop()
		u1, u2 := u, u
		if m.matches(u, v) {
			for u1 >= 0 && m.matches(u1, v) {
				u1--
			}
			u1++
			for u2 <= maxU && m.matches(u2, v) {
				u2++
			}
			u2--
			f.pen.DrawRun(u1, u2, v)
		}
		if v > 0 {
			if u1 > 0 && m.matches(u1-1, v-1) {
				f.seeds.push(u1-1, v-1)
			}
			if u2 < maxU && m.matches(u2+1, v-1) {
				f.seeds.push(u2+1, v-1)
			}
		}
		if v < maxV {
			if u1 > 0 && m.matches(u1-1, v+1) {
				f.seeds.push(u1-1, v+1)
			}
			if u2 < maxU && m.matches(u2+1, v+1) {
				f.seeds.push(u2+1, v+1)
			}
		}
		f.seedRow(m, u1, u2, v-1, v > 0)
		f.seedRow(m, u1, u2, v+1, v < maxV)
	}
	return true
}

// FillParticleRegion flood-fills the region around (u0, v0) whose
// scalar values lie in [level1, level2], painting each run both into
// the image through the filler's pen and into a mask buffer through
// maskPen. The mask's origin is offset by bounds.Min relative to the
// image, so a mask pen over a bounds-sized plane receives coordinates
// starting at zero. The mask plane is reset to 0 first and painted with
// 255.
//
// Unlike Fill4/Fill8 there is no degenerate short-circuit: the caller
// guarantees the seed lies inside the range, and the traversal always
// runs. The adjacent-row scans widen the column range by one on each
// side, catching diagonal-only connections without explicit probes.
func (f *Filler) FillParticleRegion(u0, v0 int64, position []int64,
	level1, level2 float64, maskPen Pen, bounds image.Rectangle) {

	r := f.begin(position)
	maxU, maxV := f.pen.MaxU(), f.pen.MaxV()
	offU, offV := int64(bounds.Min.X), int64(bounds.Min.Y)

	maskPen.SetGrayValue(0)
	maskPen.Fill()
	maskPen.SetGrayValue(255)

	m := rangeMatcher{r: r, lo: level1, hi: level2}
	f.seeds.clear()
	f.seeds.push(u0, v0)
	for !f.seeds.empty() {
		u, v := f.seeds.pop()
		if !m.matches(u, v) {
			continue
		}
		u1, u2 := u, u
		for u1 >= 0 && m.matches(u1, v) {
			u1--
		}
		u1++
		for u2 <= maxU && m.matches(u2, v) {
			u2++
		}
		u2--
		maskPen.DrawRun(u1-offU, u2-offU, v-offV)
		f.pen.DrawRun(u1, u2, v)
		if u1 > 0 {
			u1--
		}
		if u2 < maxU {
			u2++
		}
		f.seedRow(m, u1, u2, v-1, v > 0)
		f.seedRow(m, u1, u2, v+1, v < maxV)
	}
}

// seedRow scans row v over [u1, u2] and pushes one seed per contiguous
// matching sub-run: exactly at the transition into the run. inBounds
// carries the caller's row bounds check; out-of-bounds rows are never
// read.
func (f *Filler) seedRow(m matcher, u1, u2, v int64, inBounds bool) {
	if !inBounds {
		return
	}
	inRun := false
	for i := u1; i <= u2; i++ {
		if !inRun && m.matches(i, v) {
			f.seeds.push(i, v)
			inRun = true
		} else if inRun && !m.matches(i, v) {
			inRun = false
		}
	}
}

// begin fixes the pen and a fresh reader on the given multi-axis
// position and returns the reader.
func (f *Filler) begin(position []int64) planeReader {
	f.pen.SetPosition(position)
	ds := f.pen.Dataset()
	acc := ds.Access()
	acc.SetPositionAll(position)
	return planeReader{
		acc:    acc,
		uAxis:  f.pen.UAxis(),
		vAxis:  f.pen.VAxis(),
		chAxis: ds.ChannelAxis(),
	}
}

// paintValueMatcher matches pixels that already hold the pen's current
// paint value, for the degenerate-seed check.
func (f *Filler) paintValueMatcher(r planeReader) matcher {
	if f.isColor {
		cr, cg, cb := f.pen.Color().RGB255()
		return colorMatcher{r: r, wr: float64(cr), wg: float64(cg), wb: float64(cb)}
	}
	return grayMatcher{r: r, want: f.pen.GrayValue()}
}

// referenceMatcher samples the seed pixel and matches pixels equal to
// it. The reference is captured once per call, before any painting.
func (f *Filler) referenceMatcher(r planeReader, u0, v0 int64) matcher {
	if f.isColor {
		r.acc.SetPosition(u0, r.uAxis)
		r.acc.SetPosition(v0, r.vAxis)
		r.acc.SetPosition(0, r.chAxis)
		wr := r.acc.Get()
		r.acc.SetPosition(1, r.chAxis)
		wg := r.acc.Get()
		r.acc.SetPosition(2, r.chAxis)
		wb := r.acc.Get()
		return colorMatcher{r: r, wr: wr, wg: wg, wb: wb}
	}
	return grayMatcher{r: r, want: r.value(u0, v0)}
}
