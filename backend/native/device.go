package native

import (
	"fmt"

	"github.com/gogpu/gputypes"
	wgpucore "github.com/gogpu/wgpu/core"
	wgputypes "github.com/gogpu/wgpu/types"

	"github.com/szledan/gepard-sub001/backend"
)

// PreferredTextureFormat is the pixel format this backend would request
// for its render target, matching backend.Pixmap's RGBA8 layout.
func PreferredTextureFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// GPUInfo describes the adapter a real implementation of this backend
// would have selected.
type GPUInfo struct {
	Name       string
	DeviceType wgputypes.DeviceType
	Backend    wgputypes.Backend
}

// String renders a human-readable summary, mirroring the gogpu ecosystem's
// own adapter-info formatting.
func (g GPUInfo) String() string {
	return fmt.Sprintf("%s (%s, %s)", g.Name, g.DeviceType, g.Backend)
}

// describeAdapter would translate a wgpu adapter handle into a GPUInfo.
// This skeleton never holds a live adapter handle, so it always fails.
func describeAdapter(adapterID wgpucore.AdapterID) (GPUInfo, error) {
	_ = adapterID
	return GPUInfo{}, backend.ErrNotImplemented
}
