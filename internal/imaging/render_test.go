package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"testing"

	"github.com/ironsheep/region-tools-mcp/internal/dataset"
)

func buildGrayDataset(t *testing.T, w, h int64) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New([]dataset.Axis{dataset.AxisY, dataset.AxisX}, []int64{h, w}, false)
	if err != nil {
		t.Fatalf("failed to build dataset: %v", err)
	}
	return ds
}

func decodeResult(t *testing.T, r *RenderResult) image.Image {
	t.Helper()
	raw, err := base64.StdEncoding.DecodeString(r.ImageBase64)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("failed to decode PNG: %v", err)
	}
	return img
}

func TestRenderPlane(t *testing.T) {
	ds := buildGrayDataset(t, 4, 3)
	acc := ds.Access()
	acc.SetPosition(1, 0)
	acc.SetPosition(2, 1)
	acc.Set(255)

	result, err := RenderPlane(ds, nil, 1.0)
	if err != nil {
		t.Fatalf("RenderPlane failed: %v", err)
	}
	if result.Width != 4 || result.Height != 3 {
		t.Errorf("dimensions: got %dx%d, want 4x3", result.Width, result.Height)
	}
	if result.MimeType != "image/png" {
		t.Errorf("mime type: got %s, want image/png", result.MimeType)
	}

	img := decodeResult(t, result)
	r, _, _, _ := img.At(2, 1).RGBA()
	if r>>8 != 255 {
		t.Errorf("pixel (2,1): got %d, want 255", r>>8)
	}
}

func TestRenderPlaneCropAndScale(t *testing.T) {
	ds := buildGrayDataset(t, 8, 8)

	region := image.Rect(2, 2, 6, 6)
	result, err := RenderPlane(ds, &region, 2.0)
	if err != nil {
		t.Fatalf("RenderPlane failed: %v", err)
	}
	if result.Width != 8 || result.Height != 8 {
		t.Errorf("dimensions: got %dx%d, want 8x8 (4x4 crop at 2x)", result.Width, result.Height)
	}
}

func TestRenderPlaneRegionValidation(t *testing.T) {
	ds := buildGrayDataset(t, 4, 4)

	outside := image.Rect(0, 0, 5, 5)
	if _, err := RenderPlane(ds, &outside, 1.0); err == nil {
		t.Error("region outside the plane should fail")
	}

	empty := image.Rect(2, 2, 2, 2)
	if _, err := RenderPlane(ds, &empty, 1.0); err == nil {
		t.Error("empty region should fail")
	}
}
