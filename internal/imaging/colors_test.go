package imaging

import (
	"testing"

	"github.com/ironsheep/region-tools-mcp/internal/dataset"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		name    string
		hex     string
		wantR   uint8
		wantG   uint8
		wantB   uint8
		wantErr bool
	}{
		{"red with hash", "#FF0000", 255, 0, 0, false},
		{"green without hash", "00ff00", 0, 255, 0, false},
		{"mixed case", "#AbCdEf", 0xAB, 0xCD, 0xEF, false},
		{"empty", "", 0, 0, 0, true},
		{"too short", "#FFF0", 0, 0, 0, true},
		{"not hex", "#GGGGGG", 0, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseHexColor(tt.hex)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHexColor(%q) error = %v, wantErr = %v", tt.hex, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			r, g, b := c.RGB255()
			if r != tt.wantR || g != tt.wantG || b != tt.wantB {
				t.Errorf("ParseHexColor(%q): got (%d,%d,%d), want (%d,%d,%d)",
					tt.hex, r, g, b, tt.wantR, tt.wantG, tt.wantB)
			}
		})
	}
}

func TestFormatColor(t *testing.T) {
	c, err := ParseHexColor("#FF0000")
	if err != nil {
		t.Fatalf("ParseHexColor failed: %v", err)
	}

	result := FormatColor(c)
	if result.Hex != "#ff0000" {
		t.Errorf("hex: got %s, want #ff0000", result.Hex)
	}
	if result.RGB.R != 255 || result.RGB.G != 0 || result.RGB.B != 0 {
		t.Errorf("rgb: got (%d,%d,%d), want (255,0,0)", result.RGB.R, result.RGB.G, result.RGB.B)
	}
	if result.HSL.H != 0 || result.HSL.S != 100 || result.HSL.L != 50 {
		t.Errorf("hsl: got (%d,%d,%d), want (0,100,50)", result.HSL.H, result.HSL.S, result.HSL.L)
	}
}

func TestSamplePlaneColor(t *testing.T) {
	ds, err := dataset.New(
		[]dataset.Axis{dataset.AxisY, dataset.AxisX, dataset.AxisChannel},
		[]int64{2, 2, 3}, true)
	if err != nil {
		t.Fatalf("failed to build dataset: %v", err)
	}
	acc := ds.Access()
	acc.SetPosition(1, 0)
	acc.SetPosition(0, 1)
	acc.SetPosition(0, 2)
	acc.Set(255)

	result, err := SamplePlaneColor(ds, 0, 1)
	if err != nil {
		t.Fatalf("SamplePlaneColor failed: %v", err)
	}
	if result.Hex != "#ff0000" {
		t.Errorf("hex: got %s, want #ff0000", result.Hex)
	}

	if _, err := SamplePlaneColor(ds, 5, 0); err == nil {
		t.Error("sampling outside the plane should fail")
	}
}

func TestSamplePlaneColorGray(t *testing.T) {
	ds, err := dataset.New([]dataset.Axis{dataset.AxisY, dataset.AxisX}, []int64{1, 1}, false)
	if err != nil {
		t.Fatalf("failed to build dataset: %v", err)
	}
	ds.Access().Set(255)

	result, err := SamplePlaneColor(ds, 0, 0)
	if err != nil {
		t.Fatalf("SamplePlaneColor failed: %v", err)
	}
	if result.Hex != "#ffffff" {
		t.Errorf("hex: got %s, want #ffffff", result.Hex)
	}
}
