package ze

import "math"

// Handle is an opaque object token. The zero value is the null handle.
type Handle uint64

const NullHandle Handle = 0

// TimeoutInfinite makes synchronization calls wait without a deadline.
const TimeoutInfinite uint64 = math.MaxUint64

type (
	DriverHandle                Handle
	DeviceHandle                Handle
	ContextHandle               Handle
	CommandQueueHandle          Handle
	CommandListHandle           Handle
	EventPoolHandle             Handle
	EventHandle                 Handle
	FenceHandle                 Handle
	ImageHandle                 Handle
	SamplerHandle               Handle
	ModuleHandle                Handle
	ModuleBuildLogHandle        Handle
	KernelHandle                Handle
	PhysicalMemHandle           Handle
	FabricVertexHandle          Handle
	FabricEdgeHandle            Handle
	RTASBuilderHandle           Handle
	RTASParallelOperationHandle Handle
	ExternalSemaphoreExtHandle  Handle
)

// Bool mirrors the 8-bit boolean of the C API.
type Bool uint8

const (
	False Bool = 0
	True  Bool = 1
)

func BoolOf(b bool) Bool {
	if b {
		return True
	}
	return False
}
