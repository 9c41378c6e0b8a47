// Package native skeletons a GPU-accelerated rendering backend built on
// the gogpu framework (gpucontext device sharing, gputypes resource
// descriptors, wgpu device/queue acquisition and naga shader compilation).
// It type-checks against backend.Backend's real dependency surface, but
// Init and Render are stubs: this module stops short of actually driving
// a GPU, so every operation past shader compilation returns
// backend.ErrNotImplemented.
package native

import (
	"fmt"
	"sync"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/naga"

	"github.com/szledan/gepard-sub001/backend"
	"github.com/szledan/gepard-sub001/geom"
	"github.com/szledan/gepard-sub001/tessellate"
)

func init() {
	backend.Register("native", func() backend.Backend { return &Backend{} })
}

// trapezoidFillShaderWGSL is the WGSL compute kernel this backend would dispatch
// per render call: one invocation per scanline, accumulating coverage from
// the trapezoid list the way backend.SoftwareBackend does on the CPU.
const trapezoidFillShaderWGSL = `
// Per-scanline trapezoid coverage accumulation (sketch only; never submitted
// to a device by this module).
@compute @workgroup_size(64)
fn main(@builtin(global_invocation_id) id: vec3<u32>) {
}
`

// Backend is a GPU-accelerated rendering backend skeleton using the gogpu
// device-sharing protocol (gpucontext.DeviceProvider). Backend is safe for
// concurrent use.
type Backend struct {
	mu       sync.RWMutex
	provider gpucontext.DeviceProvider

	spirv       []uint32
	shaderReady bool
	initialized bool
}

// NewBackend creates a gogpu-backed rendering backend. provider supplies a
// shared GPU device and queue (see gpucontext.DeviceProvider); pass nil to
// have Init fail with backend.ErrNotImplemented, since this skeleton never
// creates its own device.
func NewBackend(provider gpucontext.DeviceProvider) *Backend {
	return &Backend{provider: provider}
}

// Name returns the backend identifier.
func (b *Backend) Name() string { return "native" }

// Init compiles the trapezoid-fill shader to SPIR-V via naga (a real
// compile, so the shader text is validated) but stops there: binding the
// shader to a pipeline and acquiring a device/queue from the provider are
// not implemented, so Init always returns backend.ErrNotImplemented.
func (b *Backend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.provider == nil {
		return fmt.Errorf("native: no device provider: %w", backend.ErrNotImplemented)
	}

	spirvBytes, err := naga.Compile(trapezoidFillShaderWGSL)
	if err != nil {
		return fmt.Errorf("native: shader compile failed: %w", err)
	}
	b.spirv = make([]uint32, len(spirvBytes)/4)
	for i := range b.spirv {
		b.spirv[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	b.shaderReady = true

	return fmt.Errorf("native: pipeline/device setup: %w", backend.ErrNotImplemented)
}

// Close releases no resources: nothing in this skeleton ever allocates a
// device-side object.
func (b *Backend) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.spirv = nil
	b.shaderReady = false
	b.initialized = false
}

// Render always returns backend.ErrNotImplemented: dispatching the compute
// pipeline and reading back the result texture are not implemented.
func (b *Backend) Render(tessellate.TrapezoidList, geom.BoundingBox, backend.Color, int) (*backend.Pixmap, error) {
	return nil, backend.ErrNotImplemented
}

// ShaderReady reports whether Init got far enough to compile the
// trapezoid-fill shader to SPIR-V.
func (b *Backend) ShaderReady() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.shaderReady
}
