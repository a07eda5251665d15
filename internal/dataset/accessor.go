package dataset

import "fmt"

// Accessor reads and writes samples of a Dataset at a movable position.
// Each accessor carries one coordinate per axis; Get and Set operate on
// the sample under the current position.
//
// Coordinate validation is deliberately strict: moving out of range
// panics rather than clamps. The fill engine guards every access with
// explicit bounds checks, so a panic here means one of those guards is
// broken, not that the input was bad.
type Accessor struct {
	ds  *Dataset
	pos []int64
}

// Access returns a new accessor positioned at the origin.
func (ds *Dataset) Access() *Accessor {
	return &Accessor{
		ds:  ds,
		pos: make([]int64, len(ds.axes)),
	}
}

// SetPosition moves the accessor to the given coordinate on one axis.
// Panics if the coordinate is outside [0, extent) for that axis.
func (a *Accessor) SetPosition(coord int64, axis int) {
	if coord < 0 || coord >= a.ds.extents[axis] {
		panic(fmt.Sprintf("dataset: coordinate %d out of range [0,%d) on axis %s",
			coord, a.ds.extents[axis], a.ds.axes[axis]))
	}
	a.pos[axis] = coord
}

// SetPositionAll moves the accessor to the given full position. The
// slice must carry one coordinate per axis; each is bounds checked.
func (a *Accessor) SetPositionAll(pos []int64) {
	if len(pos) != len(a.pos) {
		panic(fmt.Sprintf("dataset: position has %d coordinates, want %d", len(pos), len(a.pos)))
	}
	for axis, c := range pos {
		a.SetPosition(c, axis)
	}
}

// Position returns the accessor's coordinate on one axis.
func (a *Accessor) Position(axis int) int64 { return a.pos[axis] }

// Get returns the sample under the current position.
func (a *Accessor) Get() float64 {
	return a.ds.data[a.flatIndex()]
}

// Set overwrites the sample under the current position.
func (a *Accessor) Set(v float64) {
	a.ds.data[a.flatIndex()] = v
}

func (a *Accessor) flatIndex() int64 {
	var idx int64
	for i, c := range a.pos {
		idx += c * a.ds.strides[i]
	}
	return idx
}
