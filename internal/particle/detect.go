package particle

import (
	"fmt"
	"image"
	"sort"

	"github.com/ironsheep/region-tools-mcp/internal/dataset"
	"github.com/ironsheep/region-tools-mcp/internal/draw"
	"github.com/ironsheep/region-tools-mcp/internal/fill"
	"github.com/ironsheep/region-tools-mcp/internal/imaging"
)

// Marker values used while claiming regions of the thresholded plane.
// Foreground starts at 255; a region under analysis is repainted to
// markedValue, then to processedValue once measured, so the outer scan
// never claims the same region twice.
const (
	foregroundValue = 255
	markedValue     = 128
	processedValue  = 200
)

// Bounds is the bounding box of a particle in image coordinates:
// (X1, Y1) inclusive top-left, (X2, Y2) exclusive bottom-right.
type Bounds struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Point is a pixel coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Centroid is the center of mass of a particle's hole-filled pixels.
type Centroid struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Particle describes one detected region.
type Particle struct {
	// Bounds is the region's bounding box.
	Bounds Bounds `json:"bounds"`

	// Center is the geometric center of the bounding box.
	Center Point `json:"center"`

	// Width and Height are the bounding box extents in pixels.
	Width  int `json:"width"`
	Height int `json:"height"`

	// Area counts the particle's pixels after interior holes are
	// erased, so a ring and a disc of the same outline report the
	// same area.
	Area int `json:"area"`

	// Centroid is the center of mass of the hole-filled region.
	Centroid Centroid `json:"centroid"`

	// MaskBase64 is the hole-filled particle mask as base64 PNG,
	// sized to Bounds with foreground white.
	MaskBase64 string `json:"mask_base64"`
}

// DetectResult contains all particles found in an image.
type DetectResult struct {
	// Particles sorted by area, largest first.
	Particles []Particle `json:"particles"`

	// Count is the number of particles after filtering.
	Count int `json:"count"`
}

// Detect finds bright particles in an image.
//
// The image is thresholded at level (after an optional Gaussian blur of
// blurRadius pixels), foreground regions are grouped 8-connected, and
// each region is measured on its hole-filled mask. Regions whose
// hole-filled area is below minArea are dropped.
func Detect(img image.Image, level uint8, minArea int, blurRadius float64) (*DetectResult, error) {
	mask := BinaryMask(img, level, blurRadius)
	ds, err := dataset.FromGrayImage(mask)
	if err != nil {
		return nil, fmt.Errorf("failed to build threshold dataset: %w", err)
	}
	xAxis := ds.AxisIndex(dataset.AxisX)
	yAxis := ds.AxisIndex(dataset.AxisY)
	w, h := ds.Extent(xAxis), ds.Extent(yAxis)

	acc := ds.Access()
	particles := make([]Particle, 0)
	for y := int64(0); y < h; y++ {
		acc.SetPosition(y, yAxis)
		for x := int64(0); x < w; x++ {
			acc.SetPosition(x, xAxis)
			if acc.Get() != foregroundValue {
				continue
			}
			p, err := analyzeRegion(ds, x, y)
			if err != nil {
				return nil, err
			}
			if p.Area >= minArea {
				particles = append(particles, *p)
			}
		}
	}

	sort.Slice(particles, func(i, j int) bool {
		return particles[i].Area > particles[j].Area
	})

	return &DetectResult{
		Particles: particles,
		Count:     len(particles),
	}, nil
}

// runRecorder tracks the extent of everything drawn through it, giving
// the bounding box of a region as a side effect of filling it.
type runRecorder struct {
	*draw.Pen
	minU, maxU, minV, maxV int64
}

func (r *runRecorder) DrawRun(u1, u2, v int64) {
	if u1 < r.minU {
		r.minU = u1
	}
	if u2 > r.maxU {
		r.maxU = u2
	}
	if v < r.minV {
		r.minV = v
	}
	if v > r.maxV {
		r.maxV = v
	}
	r.Pen.DrawRun(u1, u2, v)
}

// analyzeRegion claims the 8-connected foreground region at the seed,
// replays it into a bounds-sized mask with interior holes erased, and
// measures the result.
func analyzeRegion(ds *dataset.Dataset, seedU, seedV int64) (*Particle, error) {
	position := make([]int64, ds.NumAxes())
	pen, err := draw.NewPen(ds, dataset.AxisX, dataset.AxisY, position)
	if err != nil {
		return nil, fmt.Errorf("failed to build region pen: %w", err)
	}
	rec := &runRecorder{Pen: pen, minU: seedU, maxU: seedU, minV: seedV, maxV: seedV}
	f := fill.New(rec)

	// claim the region and record its bounding box
	pen.SetGrayValue(markedValue)
	if !f.Fill8(seedU, seedV, position) {
		return nil, fmt.Errorf("seed (%d,%d) did not claim a region", seedU, seedV)
	}
	bounds := image.Rect(int(rec.minU), int(rec.minV), int(rec.maxU)+1, int(rec.maxV)+1)

	maskDS, err := dataset.New(
		[]dataset.Axis{dataset.AxisY, dataset.AxisX},
		[]int64{int64(bounds.Dy()), int64(bounds.Dx())},
		false,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build particle mask: %w", err)
	}
	maskPen, err := draw.NewPen(maskDS, dataset.AxisX, dataset.AxisY, []int64{0, 0})
	if err != nil {
		return nil, fmt.Errorf("failed to build mask pen: %w", err)
	}

	// replay into the mask, retiring the region to processedValue
	pen.SetGrayValue(processedValue)
	f.FillParticleRegion(seedU, seedV, position, markedValue, markedValue, maskPen, bounds)

	area, centroid, err := eraseMaskHoles(maskDS)
	if err != nil {
		return nil, err
	}
	centroid.X += float64(bounds.Min.X)
	centroid.Y += float64(bounds.Min.Y)

	maskImg, err := maskDS.ToImage()
	if err != nil {
		return nil, fmt.Errorf("failed to render particle mask: %w", err)
	}
	encoded, err := imaging.EncodePNGBase64(maskImg)
	if err != nil {
		return nil, err
	}

	return &Particle{
		Bounds: Bounds{
			X1: bounds.Min.X,
			Y1: bounds.Min.Y,
			X2: bounds.Max.X,
			Y2: bounds.Max.Y,
		},
		Center: Point{
			X: (bounds.Min.X + bounds.Max.X) / 2,
			Y: (bounds.Min.Y + bounds.Max.Y) / 2,
		},
		Width:      bounds.Dx(),
		Height:     bounds.Dy(),
		Area:       area,
		Centroid:   centroid,
		MaskBase64: encoded,
	}, nil
}

// eraseMaskHoles turns interior holes of a 0/255 particle mask into
// foreground and returns the resulting area and centroid (in mask
// coordinates). A hole is any background component not reachable from
// the mask border, found by flood filling the border background first.
func eraseMaskHoles(maskDS *dataset.Dataset) (int, Centroid, error) {
	const borderMark = 64

	pen, err := draw.NewPen(maskDS, dataset.AxisX, dataset.AxisY, []int64{0, 0})
	if err != nil {
		return 0, Centroid{}, fmt.Errorf("failed to build hole-fill pen: %w", err)
	}
	f := fill.New(pen)
	pen.SetGrayValue(borderMark)

	xAxis := maskDS.AxisIndex(dataset.AxisX)
	yAxis := maskDS.AxisIndex(dataset.AxisY)
	w, h := maskDS.Extent(xAxis), maskDS.Extent(yAxis)
	position := []int64{0, 0}

	acc := maskDS.Access()
	at := func(x, y int64) float64 {
		acc.SetPosition(x, xAxis)
		acc.SetPosition(y, yAxis)
		return acc.Get()
	}
	for x := int64(0); x < w; x++ {
		if at(x, 0) == 0 {
			f.Fill4(x, 0, position)
		}
		if at(x, h-1) == 0 {
			f.Fill4(x, h-1, position)
		}
	}
	for y := int64(0); y < h; y++ {
		if at(0, y) == 0 {
			f.Fill4(0, y, position)
		}
		if at(w-1, y) == 0 {
			f.Fill4(w-1, y, position)
		}
	}

	// remaining background is enclosed: promote it, restore the rest
	area := 0
	var sumX, sumY float64
	for y := int64(0); y < h; y++ {
		acc.SetPosition(y, yAxis)
		for x := int64(0); x < w; x++ {
			acc.SetPosition(x, xAxis)
			switch acc.Get() {
			case 0:
				acc.Set(255)
			case borderMark:
				acc.Set(0)
			}
			if acc.Get() == 255 {
				area++
				sumX += float64(x)
				sumY += float64(y)
			}
		}
	}
	if area == 0 {
		return 0, Centroid{}, nil
	}
	return area, Centroid{X: sumX / float64(area), Y: sumY / float64(area)}, nil
}
