package dataset

import (
	"fmt"
)

// Axis names a dataset axis. The fill tools only interpret AxisX, AxisY
// and AxisChannel; any other name is carried through untouched, so
// callers are free to add Slice/Time/Frame axes and fix them per call.
type Axis string

// Well-known axis names.
const (
	AxisX       Axis = "X"
	AxisY       Axis = "Y"
	AxisChannel Axis = "Channel"
)

// Dataset is a dense N-dimensional block of float64 samples with named
// axes. The axis order given at construction is the storage order: the
// last axis varies fastest.
type Dataset struct {
	axes      []Axis
	extents   []int64
	strides   []int64
	data      []float64
	rgbMerged bool
}

// New creates a dataset with the given axes and per-axis extents, zero
// filled. When rgbMerged is true the dataset represents merged-RGB color
// data and must carry a Channel axis of extent 3.
func New(axes []Axis, extents []int64, rgbMerged bool) (*Dataset, error) {
	if len(axes) == 0 {
		return nil, fmt.Errorf("dataset must have at least one axis")
	}
	if len(axes) != len(extents) {
		return nil, fmt.Errorf("axis/extent mismatch: %d axes, %d extents", len(axes), len(extents))
	}
	total := int64(1)
	for i, e := range extents {
		if e <= 0 {
			return nil, fmt.Errorf("axis %s has non-positive extent %d", axes[i], e)
		}
		total *= e
	}
	ds := &Dataset{
		axes:      append([]Axis(nil), axes...),
		extents:   append([]int64(nil), extents...),
		strides:   make([]int64, len(axes)),
		data:      make([]float64, total),
		rgbMerged: rgbMerged,
	}
	stride := int64(1)
	for i := len(axes) - 1; i >= 0; i-- {
		ds.strides[i] = stride
		stride *= extents[i]
	}
	if rgbMerged {
		ch := ds.AxisIndex(AxisChannel)
		if ch < 0 {
			return nil, fmt.Errorf("merged-RGB dataset requires a %s axis", AxisChannel)
		}
		if ds.extents[ch] != 3 {
			return nil, fmt.Errorf("merged-RGB channel axis must have extent 3, got %d", ds.extents[ch])
		}
	}
	return ds, nil
}

// NumAxes returns the number of axes.
func (ds *Dataset) NumAxes() int { return len(ds.axes) }

// AxisIndex returns the index of the named axis, or -1 if absent.
func (ds *Dataset) AxisIndex(name Axis) int {
	for i, a := range ds.axes {
		if a == name {
			return i
		}
	}
	return -1
}

// AxisName returns the name of the axis at the given index.
func (ds *Dataset) AxisName(axis int) Axis { return ds.axes[axis] }

// Extent returns the number of samples along the axis at the given index.
func (ds *Dataset) Extent(axis int) int64 { return ds.extents[axis] }

// RGBMerged reports whether the dataset is merged-RGB color data.
func (ds *Dataset) RGBMerged() bool { return ds.rgbMerged }

// ChannelAxis returns the index of the Channel axis, or -1 for
// grayscale data.
func (ds *Dataset) ChannelAxis() int {
	if !ds.rgbMerged {
		return -1
	}
	return ds.AxisIndex(AxisChannel)
}
