package ze

type ContextDesc struct {
	Flags uint32
}

type DeviceMemAllocFlags uint32

type DeviceMemAllocDesc struct {
	Flags   DeviceMemAllocFlags
	Ordinal uint32
}

type HostMemAllocFlags uint32

type HostMemAllocDesc struct {
	Flags HostMemAllocFlags
}

type MemoryType uint32

const (
	MemoryTypeUnknown MemoryType = 0
	MemoryTypeHost    MemoryType = 1
	MemoryTypeDevice  MemoryType = 2
	MemoryTypeShared  MemoryType = 3
)

func (t MemoryType) String() string {
	switch t {
	case MemoryTypeHost:
		return "host"
	case MemoryTypeDevice:
		return "device"
	case MemoryTypeShared:
		return "shared"
	default:
		return "unknown"
	}
}

type MemoryAllocationProperties struct {
	Type     MemoryType
	ID       uint64
	PageSize uint64
}

// IpcMemHandle is an inter-process memory token, not a dispatchable handle.
type IpcMemHandle struct {
	Data [64]byte
}

type IpcEventPoolHandle struct {
	Data [64]byte
}

type IpcMemoryFlags uint32

type MemoryFreePolicyExtFlags uint32

type MemoryFreeExtDesc struct {
	FreePolicy MemoryFreePolicyExtFlags
}

type MemoryAtomicAttrExpFlags uint32

type MemoryAdvice uint32

type MemoryAccessAttribute uint32

const (
	MemoryAccessAttributeNone      MemoryAccessAttribute = 0
	MemoryAccessAttributeReadWrite MemoryAccessAttribute = 1
	MemoryAccessAttributeReadOnly  MemoryAccessAttribute = 2
)

type PhysicalMemDesc struct {
	Flags uint32
	Size  uint64
}

type ImageType uint32

type ImageFormat struct {
	Layout uint32
	Type   uint32
}

type ImageDesc struct {
	Flags       uint32
	Type        ImageType
	Format      ImageFormat
	Width       uint64
	Height      uint32
	Depth       uint32
	ArrayLevels uint32
	MipLevels   uint32
}

type ImageProperties struct {
	SamplerFilterFlags uint32
}

type ImageAllocationExtProperties struct {
	ID uint64
}

type ImageMemoryPropertiesExp struct {
	Size       uint64
	RowPitch   uint64
	SlicePitch uint64
}

type ImageRegion struct {
	OriginX, OriginY, OriginZ uint32
	Width, Height, Depth      uint32
}

type CopyRegion struct {
	OriginX, OriginY, OriginZ uint32
	Width, Height, Depth      uint32
}

type SamplerDesc struct {
	AddressMode  uint32
	FilterMode   uint32
	IsNormalized Bool
}
