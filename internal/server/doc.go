// Package server implements the MCP (Model Context Protocol) server for region tools.
//
// This package provides a JSON-RPC 2.0 server that exposes region fill and
// particle analysis capabilities through the MCP protocol. It's designed to
// work with Claude and other MCP-compatible clients, enabling AI systems to
// edit and analyze images with precision.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// The server provides 6 tools organized into categories:
//
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//   - image_reload: Drop cached state and re-read from disk
//
// Region Operations:
//   - region_fill: Flood-fill a connected region from a seed pixel
//   - region_sample_color: Get color at pixel
//
// Particle Analysis:
//   - particle_detect: Threshold an image and report connected particles
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded images. Images are cached
// by path and reused across multiple tool calls, avoiding redundant disk I/O.
// Fill operations work on a mutable per-image working copy, so consecutive
// region_fill calls accumulate like an editing session; image_reload discards
// both the decoded cache entry and any working copies.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
