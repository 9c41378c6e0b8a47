// Package core holds the coverage-accumulation primitive shared by the
// backends: AlphaRuns, a run-length-encoded scanline buffer that the
// software backend's rasterizer (see backend.SoftwareBackend) fills
// incrementally as it sweeps a trapezoid's active edges, and that a
// future hardware backend could mirror with a per-workgroup
// accumulator. RLE storage makes the common case — long constant-alpha
// spans inside a filled trapezoid — cheap to both fill and walk,
// without materializing one byte per pixel.
package core
