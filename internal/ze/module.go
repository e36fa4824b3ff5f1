package ze

type ModuleFormat uint32

const (
	ModuleFormatILSPIRV ModuleFormat = 0
	ModuleFormatNative  ModuleFormat = 1
)

type ModuleDesc struct {
	Format      ModuleFormat
	InputModule []byte
	BuildFlags  string
}

type ModuleProperties struct {
	Flags uint32
}

type LinkageInspectionExtFlags uint32

type LinkageInspectionExtDesc struct {
	Flags LinkageInspectionExtFlags
}

type KernelFlags uint32

type KernelDesc struct {
	Flags      KernelFlags
	KernelName string
}

type CacheConfigFlags uint32

type KernelIndirectAccessFlags uint32

const (
	KernelIndirectAccessFlagHost   KernelIndirectAccessFlags = 1 << 0
	KernelIndirectAccessFlagDevice KernelIndirectAccessFlags = 1 << 1
	KernelIndirectAccessFlagShared KernelIndirectAccessFlags = 1 << 2
)

type KernelProperties struct {
	NumKernelArgs      uint32
	RequiredGroupSizeX uint32
	RequiredGroupSizeY uint32
	RequiredGroupSizeZ uint32
	MaxSubgroupSize    uint32
	LocalMemSize       uint32
	PrivateMemSize     uint32
	UUID               UUID
}

type RTASFormat uint32

type RTASAABB struct {
	Lower [3]float32
	Upper [3]float32
}

type RTASBuilderExtDesc struct {
	BuilderVersion uint32
}

type RTASBuilderExpDesc struct {
	BuilderVersion uint32
}

type RTASBuilderBuildOpExtDesc struct {
	RTASFormat    RTASFormat
	BuildQuality  uint32
	BuildFlags    uint32
	NumGeometries uint32
}

type RTASBuilderBuildOpExpDesc struct {
	RTASFormat    RTASFormat
	BuildQuality  uint32
	BuildFlags    uint32
	NumGeometries uint32
}

type RTASBuilderExtProperties struct {
	Flags                          uint32
	RTASBufferSizeBytesExpected    uint64
	RTASBufferSizeBytesMaxRequired uint64
	ScratchBufferSizeBytes         uint64
}

type RTASBuilderExpProperties struct {
	Flags                          uint32
	RTASBufferSizeBytesExpected    uint64
	RTASBufferSizeBytesMaxRequired uint64
	ScratchBufferSizeBytes         uint64
}

type RTASParallelOperationExtProperties struct {
	Flags          uint32
	MaxConcurrency uint32
}

type RTASParallelOperationExpProperties struct {
	Flags          uint32
	MaxConcurrency uint32
}
