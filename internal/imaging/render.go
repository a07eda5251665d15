package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/region-tools-mcp/internal/dataset"
)

// RenderResult contains a rendered plane encoded as base64 PNG.
type RenderResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// RenderPlane encodes a dataset's X/Y plane as a base64 PNG. A non-nil
// region crops the output to that rectangle first (inclusive top-left,
// exclusive bottom-right); a scale other than 1.0 resizes the result
// with Lanczos resampling.
func RenderPlane(ds *dataset.Dataset, region *image.Rectangle, scale float64) (*RenderResult, error) {
	img, err := ds.ToImage()
	if err != nil {
		return nil, fmt.Errorf("failed to render plane: %w", err)
	}

	if region != nil {
		bounds := img.Bounds()
		if region.Min.X < bounds.Min.X || region.Min.Y < bounds.Min.Y ||
			region.Max.X > bounds.Max.X || region.Max.Y > bounds.Max.Y {
			return nil, fmt.Errorf("region (%d,%d)-(%d,%d) outside plane bounds (%d,%d)-(%d,%d)",
				region.Min.X, region.Min.Y, region.Max.X, region.Max.Y,
				bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
		}
		if region.Empty() {
			return nil, fmt.Errorf("invalid region: x1 must be < x2, y1 must be < y2")
		}
		img = imaging.Crop(img, *region)
	}

	if scale != 1.0 && scale > 0 {
		newWidth := int(float64(img.Bounds().Dx()) * scale)
		newHeight := int(float64(img.Bounds().Dy()) * scale)
		img = imaging.Resize(img, newWidth, newHeight, imaging.Lanczos)
	}

	encoded, err := EncodePNGBase64(img)
	if err != nil {
		return nil, err
	}
	return &RenderResult{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: encoded,
		MimeType:    "image/png",
	}, nil
}

// EncodePNGBase64 encodes an image as base64 PNG.
func EncodePNGBase64(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
