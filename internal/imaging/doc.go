// Package imaging loads images into datasets and renders fill results
// back out of them.
//
// The package sits between the file system and the fill engine: the
// ImageCache decodes PNG/JPEG/GIF files once and hands out the decoded
// image, the dataset loaders convert images into the float64 datasets
// the engine operates on, and RenderPlane encodes a dataset's X/Y plane
// back into a base64 PNG payload for tool responses, optionally cropped
// and scaled.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left
// corner; X increases rightward and Y increases downward. Regions use
// an inclusive top-left and exclusive bottom-right corner.
//
// # Color Representation
//
// Paint colors arrive as hex strings ("#RRGGBB") and are parsed through
// go-colorful; sampled colors are reported as hex, 8-bit RGB and HSL
// together, so clients can pick whichever form suits them.
//
// # Thread Safety
//
// The ImageCache is safe for concurrent use. Everything else in the
// package is stateless.
package imaging
