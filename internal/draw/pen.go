package draw

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/region-tools-mcp/internal/dataset"
)

// Pen draws into one U/V plane of a dataset using its current paint
// value. For merged-RGB datasets the paint value is a color and every
// draw writes all three channels; otherwise it is a single gray level.
//
// A Pen is not safe for concurrent use: it owns a single accessor and
// mutable paint state.
type Pen struct {
	ds       *dataset.Dataset
	acc      *dataset.Accessor
	uAxis    int
	vAxis    int
	chAxis   int
	position []int64
	gray     float64
	color    colorful.Color
}

// NewPen creates a pen over the dataset's (u, v) plane. The position
// fixes the coordinate of every other axis; it must carry one value per
// dataset axis (the u, v and channel entries are overwritten while
// drawing).
func NewPen(ds *dataset.Dataset, u, v dataset.Axis, position []int64) (*Pen, error) {
	uAxis := ds.AxisIndex(u)
	vAxis := ds.AxisIndex(v)
	if uAxis < 0 || vAxis < 0 {
		return nil, fmt.Errorf("dataset has no %s/%s plane", u, v)
	}
	if uAxis == vAxis {
		return nil, fmt.Errorf("u and v must be distinct axes, both are %s", u)
	}
	chAxis := ds.ChannelAxis()
	if uAxis == chAxis || vAxis == chAxis {
		return nil, fmt.Errorf("cannot draw on the channel axis")
	}
	if len(position) != ds.NumAxes() {
		return nil, fmt.Errorf("position has %d coordinates, dataset has %d axes",
			len(position), ds.NumAxes())
	}
	p := &Pen{
		ds:       ds,
		acc:      ds.Access(),
		uAxis:    uAxis,
		vAxis:    vAxis,
		chAxis:   chAxis,
		position: append([]int64(nil), position...),
	}
	p.acc.SetPositionAll(p.position)
	return p, nil
}

// Dataset returns the dataset the pen draws into.
func (p *Pen) Dataset() *dataset.Dataset { return p.ds }

// UAxis returns the index of the horizontal plane axis.
func (p *Pen) UAxis() int { return p.uAxis }

// VAxis returns the index of the vertical plane axis.
func (p *Pen) VAxis() int { return p.vAxis }

// MaxU returns the largest valid u coordinate.
func (p *Pen) MaxU() int64 { return p.ds.Extent(p.uAxis) - 1 }

// MaxV returns the largest valid v coordinate.
func (p *Pen) MaxV() int64 { return p.ds.Extent(p.vAxis) - 1 }

// SetPosition re-fixes the non-plane axes for subsequent draws.
func (p *Pen) SetPosition(position []int64) {
	copy(p.position, position)
	p.acc.SetPositionAll(p.position)
}

// SetGrayValue sets the paint value used on scalar datasets.
func (p *Pen) SetGrayValue(v float64) { p.gray = v }

// GrayValue returns the current gray paint value.
func (p *Pen) GrayValue() float64 { return p.gray }

// SetColor sets the paint color used on merged-RGB datasets.
func (p *Pen) SetColor(c colorful.Color) { p.color = c }

// Color returns the current paint color.
func (p *Pen) Color() colorful.Color { return p.color }

// DrawRun paints every pixel of the inclusive horizontal run [u1, u2]
// at row v with the current paint value.
func (p *Pen) DrawRun(u1, u2, v int64) {
	p.acc.SetPosition(v, p.vAxis)
	for u := u1; u <= u2; u++ {
		p.acc.SetPosition(u, p.uAxis)
		p.drawSample()
	}
}

// DrawPixel paints the single pixel at (u, v).
func (p *Pen) DrawPixel(u, v int64) {
	p.DrawRun(u, u, v)
}

// Fill paints the entire plane with the current paint value.
func (p *Pen) Fill() {
	maxU, maxV := p.MaxU(), p.MaxV()
	for v := int64(0); v <= maxV; v++ {
		p.DrawRun(0, maxU, v)
	}
}

func (p *Pen) drawSample() {
	if p.chAxis < 0 {
		p.acc.Set(p.gray)
		return
	}
	r, g, b := p.color.RGB255()
	p.acc.SetPosition(0, p.chAxis)
	p.acc.Set(float64(r))
	p.acc.SetPosition(1, p.chAxis)
	p.acc.Set(float64(g))
	p.acc.SetPosition(2, p.chAxis)
	p.acc.Set(float64(b))
}
