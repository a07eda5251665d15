package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/region-tools-mcp/internal/dataset"
	"github.com/ironsheep/region-tools-mcp/internal/draw"
	"github.com/ironsheep/region-tools-mcp/internal/fill"
	"github.com/ironsheep/region-tools-mcp/internal/imaging"
	"github.com/ironsheep/region-tools-mcp/internal/particle"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "region_fill").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_reload":
		return s.handleImageReload(args)

	// Region Operations
	case "region_fill":
		return s.handleRegionFill(args)
	case "region_sample_color":
		return s.handleRegionSampleColor(args)

	// Particle Analysis
	case "particle_detect":
		return s.handleParticleDetect(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// workingDataset returns the mutable dataset for an image, converting
// it from the cached decode on first use. Color and gray working copies
// are independent.
func (s *Server) workingDataset(path, mode string) (*dataset.Dataset, error) {
	key := mode + ":" + path
	if ds, ok := s.datasets[key]; ok {
		return ds, nil
	}

	var (
		ds  *dataset.Dataset
		err error
	)
	switch mode {
	case "color":
		ds, err = imaging.LoadColorDataset(s.cache, path)
	case "gray":
		ds, err = imaging.LoadGrayDataset(s.cache, path)
	default:
		return nil, fmt.Errorf("unknown mode: %s (want \"color\" or \"gray\")", mode)
	}
	if err != nil {
		return nil, err
	}
	s.datasets[key] = ds
	return ds, nil
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

type imageReloadResult struct {
	Path     string `json:"path"`
	Reloaded bool   `json:"reloaded"`
}

func (s *Server) handleImageReload(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	s.cache.Evict(a.Path)
	delete(s.datasets, "color:"+a.Path)
	delete(s.datasets, "gray:"+a.Path)
	return &imageReloadResult{Path: a.Path, Reloaded: true}, nil
}

// === Region Operation Handlers ===

type regionFillArgs struct {
	Path         string  `json:"path"`
	X            int64   `json:"x"`
	Y            int64   `json:"y"`
	Connectivity int     `json:"connectivity"`
	Mode         string  `json:"mode"`
	Color        string  `json:"color"`
	Gray         float64 `json:"gray"`
	Scale        float64 `json:"scale"`
}

type regionFillResult struct {
	Changed      bool  `json:"changed"`
	PixelsFilled int64 `json:"pixels_filled"`
	imaging.RenderResult
}

// paintCounter counts the pixels painted through it.
type paintCounter struct {
	*draw.Pen
	painted int64
}

func (p *paintCounter) DrawRun(u1, u2, v int64) {
	p.painted += u2 - u1 + 1
	p.Pen.DrawRun(u1, u2, v)
}

func (s *Server) handleRegionFill(args json.RawMessage) (interface{}, error) {
	var a regionFillArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Connectivity == 0 {
		a.Connectivity = 4
	}
	if a.Mode == "" {
		a.Mode = "color"
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}

	ds, err := s.workingDataset(a.Path, a.Mode)
	if err != nil {
		return nil, err
	}
	position := make([]int64, ds.NumAxes())
	pen, err := draw.NewPen(ds, dataset.AxisX, dataset.AxisY, position)
	if err != nil {
		return nil, err
	}

	switch a.Mode {
	case "color":
		if a.Color == "" {
			return nil, fmt.Errorf("color mode requires a \"color\" argument")
		}
		c, err := imaging.ParseHexColor(a.Color)
		if err != nil {
			return nil, err
		}
		pen.SetColor(c)
	case "gray":
		pen.SetGrayValue(a.Gray)
	}

	// validate the seed here; the engine treats bad coordinates as a
	// broken invariant, not an input error
	if a.X < 0 || a.X > pen.MaxU() || a.Y < 0 || a.Y > pen.MaxV() {
		return nil, fmt.Errorf("seed (%d,%d) outside image bounds %dx%d",
			a.X, a.Y, pen.MaxU()+1, pen.MaxV()+1)
	}

	counter := &paintCounter{Pen: pen}
	f := fill.New(counter)
	var changed bool
	switch a.Connectivity {
	case 4:
		changed = f.Fill4(a.X, a.Y, position)
	case 8:
		changed = f.Fill8(a.X, a.Y, position)
	default:
		return nil, fmt.Errorf("connectivity must be 4 or 8, got %d", a.Connectivity)
	}

	render, err := imaging.RenderPlane(ds, nil, a.Scale)
	if err != nil {
		return nil, err
	}
	return &regionFillResult{
		Changed:      changed,
		PixelsFilled: counter.painted,
		RenderResult: *render,
	}, nil
}

type regionSampleColorArgs struct {
	Path string `json:"path"`
	X    int64  `json:"x"`
	Y    int64  `json:"y"`
	Mode string `json:"mode"`
}

func (s *Server) handleRegionSampleColor(args json.RawMessage) (interface{}, error) {
	var a regionSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Mode == "" {
		a.Mode = "color"
	}
	ds, err := s.workingDataset(a.Path, a.Mode)
	if err != nil {
		return nil, err
	}
	return imaging.SamplePlaneColor(ds, a.X, a.Y)
}

// === Particle Analysis Handlers ===

type particleDetectArgs struct {
	Path       string  `json:"path"`
	Level      *int    `json:"level"`
	MinArea    int     `json:"min_area"`
	BlurRadius float64 `json:"blur_radius"`
}

func (s *Server) handleParticleDetect(args json.RawMessage) (interface{}, error) {
	var a particleDetectArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	level := 128
	if a.Level != nil {
		level = *a.Level
	}
	if level < 0 || level > 255 {
		return nil, fmt.Errorf("level must be 0-255, got %d", level)
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return particle.Detect(img, uint8(level), a.MinArea, a.BlurRadius)
}
