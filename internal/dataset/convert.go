package dataset

import (
	"fmt"
	"image"
	"image/color"
)

// FromImage converts an image to a merged-RGB dataset with axes
// (Y, X, Channel). Channel samples are 8-bit values stored as floats.
func FromImage(img image.Image) (*Dataset, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	ds, err := New(
		[]Axis{AxisY, AxisX, AxisChannel},
		[]int64{int64(h), int64(w), 3},
		true,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create color dataset: %w", err)
	}
	acc := ds.Access()
	yAxis, xAxis, chAxis := 0, 1, 2
	for y := 0; y < h; y++ {
		acc.SetPosition(int64(y), yAxis)
		for x := 0; x < w; x++ {
			acc.SetPosition(int64(x), xAxis)
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			acc.SetPosition(0, chAxis)
			acc.Set(float64(r >> 8))
			acc.SetPosition(1, chAxis)
			acc.Set(float64(g >> 8))
			acc.SetPosition(2, chAxis)
			acc.Set(float64(bl >> 8))
		}
	}
	return ds, nil
}

// FromGrayImage converts an image to a grayscale dataset with axes
// (Y, X). Color input is reduced to luminance by the standard library's
// gray color model.
func FromGrayImage(img image.Image) (*Dataset, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	ds, err := New([]Axis{AxisY, AxisX}, []int64{int64(h), int64(w)}, false)
	if err != nil {
		return nil, fmt.Errorf("failed to create gray dataset: %w", err)
	}
	acc := ds.Access()
	for y := 0; y < h; y++ {
		acc.SetPosition(int64(y), 0)
		for x := 0; x < w; x++ {
			acc.SetPosition(int64(x), 1)
			g := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			acc.Set(float64(g.Y))
		}
	}
	return ds, nil
}

// ToImage renders the dataset's X/Y plane back into an image: an
// *image.RGBA for merged-RGB data, an *image.Gray otherwise. The
// dataset must carry X and Y axes; any additional axes are read at
// coordinate 0.
func (ds *Dataset) ToImage() (image.Image, error) {
	xAxis := ds.AxisIndex(AxisX)
	yAxis := ds.AxisIndex(AxisY)
	if xAxis < 0 || yAxis < 0 {
		return nil, fmt.Errorf("dataset has no X/Y plane to render")
	}
	w := int(ds.Extent(xAxis))
	h := int(ds.Extent(yAxis))
	acc := ds.Access()

	if !ds.rgbMerged {
		out := image.NewGray(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			acc.SetPosition(int64(y), yAxis)
			for x := 0; x < w; x++ {
				acc.SetPosition(int64(x), xAxis)
				out.SetGray(x, y, color.Gray{Y: clamp8(acc.Get())})
			}
		}
		return out, nil
	}

	chAxis := ds.ChannelAxis()
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		acc.SetPosition(int64(y), yAxis)
		for x := 0; x < w; x++ {
			acc.SetPosition(int64(x), xAxis)
			acc.SetPosition(0, chAxis)
			r := clamp8(acc.Get())
			acc.SetPosition(1, chAxis)
			g := clamp8(acc.Get())
			acc.SetPosition(2, chAxis)
			b := clamp8(acc.Get())
			out.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return out, nil
}

func clamp8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
