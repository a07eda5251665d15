package server

import (
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"testing"
)

// createTestImageFile creates a solid-color test image file and returns its path
func createTestImageFile(t *testing.T, width, height int, c color.Color) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return writeImageFile(t, img)
}

// createParticleImageFile creates a black image with one white block
func createParticleImageFile(t *testing.T, width, height int, block image.Rectangle) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if image.Pt(x, y).In(block) {
				img.Set(x, y, color.White)
			} else {
				img.Set(x, y, color.Black)
			}
		}
	}
	return writeImageFile(t, img)
}

func writeImageFile(t *testing.T, img image.Image) string {
	t.Helper()

	tmpFile, err := os.CreateTemp(t.TempDir(), "handler-test-*.png")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer tmpFile.Close()

	if err := png.Encode(tmpFile, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return tmpFile.Name()
}

// callTool issues a tools/call request and returns the response
func callTool(t *testing.T, s *Server, name string, args map[string]interface{}) *MCPResponse {
	t.Helper()

	params, err := json.Marshal(map[string]interface{}{
		"name":      name,
		"arguments": args,
	})
	if err != nil {
		t.Fatalf("failed to marshal params: %v", err)
	}

	resp := s.handleToolsCall(&MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  params,
	})
	if resp == nil {
		t.Fatal("handleToolsCall returned nil")
	}
	return resp
}

// resultText extracts the JSON payload from a successful tool response
func resultText(t *testing.T, resp *MCPResponse) string {
	t.Helper()

	if resp.Error != nil {
		t.Fatalf("unexpected error: %+v", resp.Error)
	}
	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatalf("result is %T, want map", resp.Result)
	}
	content, ok := result["content"].([]map[string]interface{})
	if !ok || len(content) == 0 {
		t.Fatalf("missing content in result: %+v", result)
	}
	text, ok := content[0]["text"].(string)
	if !ok {
		t.Fatalf("content[0] has no text: %+v", content[0])
	}
	return text
}

func TestHandleToolsCall_ImageLoad(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 100, 80, color.RGBA{255, 0, 0, 255})

	resp := callTool(t, s, "image_load", map[string]interface{}{"path": imgPath})

	var info struct {
		Width  int    `json:"width"`
		Height int    `json:"height"`
		Format string `json:"format"`
	}
	if err := json.Unmarshal([]byte(resultText(t, resp)), &info); err != nil {
		t.Fatalf("failed to parse result: %v", err)
	}
	if info.Width != 100 || info.Height != 80 {
		t.Errorf("dimensions: got %dx%d, want 100x80", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("format: got %s, want png", info.Format)
	}
}

func TestHandleToolsCall_ImageDimensions(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 200, 150, color.RGBA{0, 255, 0, 255})

	resp := callTool(t, s, "image_dimensions", map[string]interface{}{"path": imgPath})

	var dims struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	}
	if err := json.Unmarshal([]byte(resultText(t, resp)), &dims); err != nil {
		t.Fatalf("failed to parse result: %v", err)
	}
	if dims.Width != 200 || dims.Height != 150 {
		t.Errorf("dimensions: got %dx%d, want 200x150", dims.Width, dims.Height)
	}
}

func TestHandleToolsCall_RegionFill(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 6, 4, color.RGBA{255, 0, 0, 255})

	args := map[string]interface{}{
		"path":  imgPath,
		"x":     0,
		"y":     0,
		"color": "#00ff00",
	}

	var fillResult struct {
		Changed      bool  `json:"changed"`
		PixelsFilled int64 `json:"pixels_filled"`
		Width        int   `json:"width"`
		Height       int   `json:"height"`
	}

	resp := callTool(t, s, "region_fill", args)
	if err := json.Unmarshal([]byte(resultText(t, resp)), &fillResult); err != nil {
		t.Fatalf("failed to parse result: %v", err)
	}
	if !fillResult.Changed {
		t.Error("first fill should change the image")
	}
	if fillResult.PixelsFilled != 24 {
		t.Errorf("pixels_filled: got %d, want 24", fillResult.PixelsFilled)
	}
	if fillResult.Width != 6 || fillResult.Height != 4 {
		t.Errorf("render size: got %dx%d, want 6x4", fillResult.Width, fillResult.Height)
	}

	// The working copy is now green, so the same fill is a no-op.
	resp = callTool(t, s, "region_fill", args)
	if err := json.Unmarshal([]byte(resultText(t, resp)), &fillResult); err != nil {
		t.Fatalf("failed to parse result: %v", err)
	}
	if fillResult.Changed {
		t.Error("repeated fill with the same color should report changed=false")
	}
	if fillResult.PixelsFilled != 0 {
		t.Errorf("degenerate fill painted %d pixels, want 0", fillResult.PixelsFilled)
	}
}

func TestHandleToolsCall_RegionFillGray(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 5, 5, color.Gray{Y: 10})

	resp := callTool(t, s, "region_fill", map[string]interface{}{
		"path":         imgPath,
		"x":            2,
		"y":            2,
		"connectivity": 8,
		"mode":         "gray",
		"gray":         200,
	})

	var fillResult struct {
		Changed bool `json:"changed"`
	}
	if err := json.Unmarshal([]byte(resultText(t, resp)), &fillResult); err != nil {
		t.Fatalf("failed to parse result: %v", err)
	}
	if !fillResult.Changed {
		t.Error("gray fill should change the image")
	}
}

func TestHandleToolsCall_RegionFillSeedOutOfBounds(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 4, 4, color.RGBA{255, 0, 0, 255})

	resp := callTool(t, s, "region_fill", map[string]interface{}{
		"path":  imgPath,
		"x":     10,
		"y":     0,
		"color": "#0000ff",
	})

	if resp.Error == nil {
		t.Fatal("expected error for out-of-bounds seed")
	}
	if resp.Error.Code != -32000 {
		t.Errorf("error code: got %d, want -32000", resp.Error.Code)
	}
}

func TestHandleToolsCall_RegionSampleColor(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 3, 3, color.RGBA{255, 0, 0, 255})

	resp := callTool(t, s, "region_sample_color", map[string]interface{}{
		"path": imgPath,
		"x":    1,
		"y":    1,
	})

	var sample struct {
		Hex string `json:"hex"`
	}
	if err := json.Unmarshal([]byte(resultText(t, resp)), &sample); err != nil {
		t.Fatalf("failed to parse result: %v", err)
	}
	if sample.Hex != "#ff0000" {
		t.Errorf("hex: got %s, want #ff0000", sample.Hex)
	}
}

func TestHandleToolsCall_ImageReloadResetsWorkingCopy(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 4, 4, color.RGBA{255, 0, 0, 255})

	fillArgs := map[string]interface{}{
		"path":  imgPath,
		"x":     0,
		"y":     0,
		"color": "#00ff00",
	}

	var fillResult struct {
		Changed bool `json:"changed"`
	}

	resp := callTool(t, s, "region_fill", fillArgs)
	if err := json.Unmarshal([]byte(resultText(t, resp)), &fillResult); err != nil {
		t.Fatalf("failed to parse result: %v", err)
	}
	if !fillResult.Changed {
		t.Fatal("first fill should change the image")
	}

	callTool(t, s, "image_reload", map[string]interface{}{"path": imgPath})

	// After reload the working copy is red again, so the fill repaints.
	resp = callTool(t, s, "region_fill", fillArgs)
	if err := json.Unmarshal([]byte(resultText(t, resp)), &fillResult); err != nil {
		t.Fatalf("failed to parse result: %v", err)
	}
	if !fillResult.Changed {
		t.Error("fill after reload should change the image again")
	}
}

func TestHandleToolsCall_ParticleDetect(t *testing.T) {
	s := New()
	imgPath := createParticleImageFile(t, 20, 20, image.Rect(5, 5, 10, 12))

	resp := callTool(t, s, "particle_detect", map[string]interface{}{
		"path": imgPath,
	})

	var result struct {
		Count     int `json:"count"`
		Particles []struct {
			Area   int `json:"area"`
			Width  int `json:"width"`
			Height int `json:"height"`
		} `json:"particles"`
	}
	if err := json.Unmarshal([]byte(resultText(t, resp)), &result); err != nil {
		t.Fatalf("failed to parse result: %v", err)
	}
	if result.Count != 1 {
		t.Fatalf("count: got %d, want 1", result.Count)
	}
	p := result.Particles[0]
	if p.Width != 5 || p.Height != 7 {
		t.Errorf("particle size: got %dx%d, want 5x7", p.Width, p.Height)
	}
	if p.Area != 35 {
		t.Errorf("area: got %d, want 35", p.Area)
	}
}

func TestHandleToolsCall_NonExistentFile(t *testing.T) {
	s := New()

	resp := callTool(t, s, "image_load", map[string]interface{}{
		"path": "/nonexistent/image.png",
	})

	if resp.Error == nil {
		t.Fatal("expected error for non-existent file")
	}
	if resp.Error.Code != -32000 {
		t.Errorf("error code: got %d, want -32000", resp.Error.Code)
	}
}

func TestHandleToolsCall_InvalidTool(t *testing.T) {
	s := New()

	resp := callTool(t, s, "nonexistent_tool", map[string]interface{}{})

	if resp.Error == nil {
		t.Fatal("expected error for unknown tool")
	}
	if resp.Error.Code != -32000 {
		t.Errorf("error code: got %d, want -32000", resp.Error.Code)
	}
}

func TestHandleToolsCall_InvalidParams(t *testing.T) {
	s := New()

	resp := s.handleToolsCall(&MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  json.RawMessage(`{"name": 42}`),
	})

	if resp.Error == nil {
		t.Fatal("expected error for malformed params")
	}
	if resp.Error.Code != -32602 {
		t.Errorf("error code: got %d, want -32602", resp.Error.Code)
	}
}
