// Package ydraw converts YAML drawing documents into the binary
// primitive stream evaluated on the GPU.
//
// A stream is a 16-byte header (version, primitive count, background
// color, flags) followed by one fixed-size record per primitive. The
// primitive kinds, their parameters and their document syntax are
// described by the schema package; colors use the packed ABGR format of
// the gfx package. The osc package wraps finished streams in terminal
// escape sequences for delivery.
package ydraw
