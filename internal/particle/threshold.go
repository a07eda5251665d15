package particle

import (
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/segment"
)

// BinaryMask reduces an image to a black/white mask: pixels whose
// luminance is at or above level become foreground (255), everything
// else background (0). A blurRadius above zero applies a Gaussian blur
// before thresholding to suppress single-pixel speckle.
func BinaryMask(img image.Image, level uint8, blurRadius float64) *image.Gray {
	src := img
	if blurRadius > 0 {
		src = blur.Gaussian(src, blurRadius)
	}
	return segment.Threshold(effect.Grayscale(src), level)
}
