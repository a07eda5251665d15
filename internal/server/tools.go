package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions and format. Subsequent region operations on the same path reuse the loaded pixels.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_reload",
			Description: "Discard the working copy of an image, including any fills applied to it, and re-read the file on next use.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},

		// Region Operations
		{
			Name:        "region_fill",
			Description: "Flood-fill the connected region around a seed pixel with a new color or gray value. Fills accumulate on the image's working copy until image_reload.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "Seed X coordinate (0-based)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Seed Y coordinate (0-based)",
					},
					"connectivity": map[string]interface{}{
						"type":        "integer",
						"enum":        []int{4, 8},
						"description": "Region connectivity: 4 (orthogonal) or 8 (including diagonals). Default 4",
						"default":     4,
					},
					"mode": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"color", "gray"},
						"description": "Match and paint RGB colors, or luminance values. Default color",
						"default":     "color",
					},
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Paint color as hex \"#RRGGBB\" (color mode)",
					},
					"gray": map[string]interface{}{
						"type":        "number",
						"description": "Paint value 0-255 (gray mode)",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor for the returned image. Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "region_sample_color",
			Description: "Sample the color of one pixel on an image's working copy (reflecting any fills applied).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based)",
					},
					"mode": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"color", "gray"},
						"description": "Which working copy to sample. Default color",
						"default":     "color",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},

		// Particle Analysis
		{
			Name:        "particle_detect",
			Description: "Threshold an image and detect connected bright particles: bounding boxes, hole-filled areas, centroids, and per-particle masks.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"level": map[string]interface{}{
						"type":        "integer",
						"description": "Threshold level 0-255; luminance at or above it is foreground. Default 128",
						"default":     128,
					},
					"min_area": map[string]interface{}{
						"type":        "integer",
						"description": "Drop particles whose hole-filled area is below this. Default 0",
						"default":     0,
					},
					"blur_radius": map[string]interface{}{
						"type":        "number",
						"description": "Gaussian blur radius applied before thresholding to suppress speckle. Default 0 (off)",
						"default":     0,
					},
				},
				"required": []string{"path"},
			},
		},
	}
}
