package ze

// InitFlags selects the driver types zeInit considers. Zero means all.
type InitFlags uint32

const (
	InitFlagGPUOnly InitFlags = 1 << 0
	InitFlagVPUOnly InitFlags = 1 << 1
)

// InitDriverTypeFlags selects driver types for zeInitDrivers.
type InitDriverTypeFlags uint32

const (
	InitDriverTypeFlagGPU InitDriverTypeFlags = 1 << 0
	InitDriverTypeFlagNPU InitDriverTypeFlags = 1 << 1
)

type InitDriverTypeDesc struct {
	Flags InitDriverTypeFlags
}

type UUID [16]byte

type DriverProperties struct {
	UUID          UUID
	DriverVersion uint32
}

type DriverIpcProperties struct {
	Flags uint32
}

type DriverExtensionProperties struct {
	Name    string
	Version uint32
}

type DeviceType uint32

const (
	DeviceTypeGPU  DeviceType = 1
	DeviceTypeCPU  DeviceType = 2
	DeviceTypeFPGA DeviceType = 3
	DeviceTypeMCA  DeviceType = 4
	DeviceTypeVPU  DeviceType = 5
)

type DeviceProperties struct {
	Type                     DeviceType
	VendorID                 uint32
	DeviceID                 uint32
	Flags                    uint32
	SubdeviceID              uint32
	CoreClockRate            uint32
	MaxMemAllocSize          uint64
	MaxHardwareContexts      uint32
	MaxCommandQueuePriority  uint32
	NumThreadsPerEU          uint32
	PhysicalEUSimdWidth      uint32
	NumEUsPerSubslice        uint32
	NumSubslicesPerSlice     uint32
	NumSlices                uint32
	TimerResolution          uint64
	TimestampValidBits       uint32
	KernelTimestampValidBits uint32
	UUID                     UUID
	Name                     string
}

type DeviceComputeProperties struct {
	MaxTotalGroupSize    uint32
	MaxGroupSizeX        uint32
	MaxGroupSizeY        uint32
	MaxGroupSizeZ        uint32
	MaxGroupCountX       uint32
	MaxGroupCountY       uint32
	MaxGroupCountZ       uint32
	MaxSharedLocalMemory uint32
	SubGroupSizes        []uint32
}

type DeviceModuleProperties struct {
	SPIRVVersionSupported uint32
	Flags                 uint32
	MaxArgumentsSize      uint32
	PrintfBufferSize      uint32
	NativeKernelSupported UUID
}

type CommandQueueGroupProperties struct {
	Flags                    uint32
	MaxMemoryFillPatternSize uint64
	NumQueues                uint32
}

type DeviceMemoryProperties struct {
	Flags        uint32
	MaxClockRate uint32
	MaxBusWidth  uint32
	TotalSize    uint64
	Name         string
}

type DeviceMemoryAccessProperties struct {
	HostAllocCapabilities               uint32
	DeviceAllocCapabilities             uint32
	SharedSingleDeviceAllocCapabilities uint32
	SharedCrossDeviceAllocCapabilities  uint32
	SharedSystemAllocCapabilities       uint32
}

type DeviceCacheProperties struct {
	Flags     uint32
	CacheSize uint64
}

type DeviceImageProperties struct {
	MaxImageDims1D      uint32
	MaxImageDims2D      uint32
	MaxImageDims3D      uint32
	MaxImageBufferSize  uint64
	MaxImageArraySlices uint32
	MaxSamplers         uint32
	MaxReadImageArgs    uint32
	MaxWriteImageArgs   uint32
}

type DeviceExternalMemoryProperties struct {
	MemoryAllocationImportTypes uint32
	MemoryAllocationExportTypes uint32
	ImageImportTypes            uint32
	ImageExportTypes            uint32
}

type DeviceP2PProperties struct {
	Flags uint32
}

type DeviceVectorWidthPropertiesExt struct {
	VectorWidthSize           uint32
	PreferredVectorWidthChar  uint32
	PreferredVectorWidthFloat uint32
	NativeVectorWidthFloat    uint32
}

type CacheExtRegion uint32

const (
	CacheExtRegionDefault     CacheExtRegion = 0
	CacheExtRegionReserved    CacheExtRegion = 1
	CacheExtRegionNonReserved CacheExtRegion = 2
)

type PCIAddressExt struct {
	Domain   uint32
	Bus      uint32
	Device   uint32
	Function uint32
}

type PCIExtProperties struct {
	Address PCIAddressExt
}

type ExternalSemaphoreExtDesc struct {
	Flags uint32
}

type ExternalSemaphoreSignalParamsExt struct {
	Value uint64
}

type ExternalSemaphoreWaitParamsExt struct {
	Value uint64
}

type FabricVertexExpProperties struct {
	UUID    UUID
	Type    uint32
	Remote  Bool
	Address PCIAddressExt
}

type FabricEdgeExpProperties struct {
	UUID      UUID
	Model     string
	Bandwidth uint32
	Latency   uint32
	Duplexity uint32
}
