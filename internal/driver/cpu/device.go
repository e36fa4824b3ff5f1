package cpu

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/fxnlabs/level-zero-loader/internal/ze"
	"github.com/google/uuid"
)

const (
	vendorID       = 0x8086
	deviceID       = 0x0c90
	maxFillPattern = 128
	maxGroupSize   = 1024
	cacheLineSize  = 64
)

type device struct {
	driver  *Driver
	handle  ze.DeviceHandle
	ordinal uint32
	props   ze.DeviceProperties
	compute ze.DeviceComputeProperties
}

func newDevice(d *Driver, ordinal uint32) *device {
	id := uuid.NewSHA1(namespace, []byte(fmt.Sprintf("device/%d", ordinal)))
	cpus := uint32(runtime.NumCPU())
	return &device{
		driver:  d,
		ordinal: ordinal,
		props: ze.DeviceProperties{
			Type:                     ze.DeviceTypeCPU,
			VendorID:                 vendorID,
			DeviceID:                 deviceID,
			CoreClockRate:            1000,
			MaxMemAllocSize:          maxAllocSize,
			MaxHardwareContexts:      cpus,
			MaxCommandQueuePriority:  0,
			NumThreadsPerEU:          1,
			PhysicalEUSimdWidth:      8,
			NumEUsPerSubslice:        1,
			NumSubslicesPerSlice:     1,
			NumSlices:                cpus,
			TimerResolution:          1,
			TimestampValidBits:       64,
			KernelTimestampValidBits: 64,
			UUID:                     ze.UUID(id),
			Name:                     fmt.Sprintf("Host CPU (%s/%s)", runtime.GOOS, runtime.GOARCH),
		},
		compute: ze.DeviceComputeProperties{
			MaxTotalGroupSize:    maxGroupSize,
			MaxGroupSizeX:        maxGroupSize,
			MaxGroupSizeY:        maxGroupSize,
			MaxGroupSizeZ:        maxGroupSize,
			MaxGroupCountX:       1 << 31,
			MaxGroupCountY:       1 << 16,
			MaxGroupCountZ:       1 << 16,
			MaxSharedLocalMemory: 64 << 10,
			SubGroupSizes:        []uint32{1, 8, 16},
		},
	}
}

// synchronize waits for every queue created on the device.
func (dev *device) synchronize() ze.Result {
	d := dev.driver
	d.mu.RLock()
	var queues []*queue
	for _, obj := range d.objects {
		if q, ok := obj.(*queue); ok && q.dev == dev {
			queues = append(queues, q)
		}
	}
	d.mu.RUnlock()
	for _, q := range queues {
		if res := q.synchronize(ze.TimeoutInfinite); res != ze.ResultSuccess {
			return res
		}
	}
	return ze.ResultSuccess
}

// Global entry points.

func (d *Driver) globalInit(flags ze.InitFlags) ze.Result {
	if flags&ze.InitFlagVPUOnly != 0 && flags&ze.InitFlagGPUOnly == 0 {
		return ze.ResultErrorUninitialized
	}
	return ze.ResultSuccess
}

func (d *Driver) initDrivers(pCount *uint32, phDrivers []ze.DriverHandle, desc *ze.InitDriverTypeDesc) ze.Result {
	if desc == nil {
		return ze.ResultErrorInvalidNullPointer
	}
	if desc.Flags != 0 && desc.Flags&ze.InitDriverTypeFlagGPU == 0 {
		return fill(pCount, phDrivers, nil)
	}
	return d.driverGet(pCount, phDrivers)
}

// Driver entry points.

func (d *Driver) driverGet(pCount *uint32, phDrivers []ze.DriverHandle) ze.Result {
	return fill(pCount, phDrivers, []ze.DriverHandle{d.handle})
}

func (d *Driver) checkDriver(hDriver ze.DriverHandle) ze.Result {
	if hDriver != d.handle || hDriver == 0 {
		return ze.ResultErrorInvalidNullHandle
	}
	return ze.ResultSuccess
}

func (d *Driver) driverGetAPIVersion(hDriver ze.DriverHandle, version *ze.APIVersion) ze.Result {
	if res := d.checkDriver(hDriver); res != ze.ResultSuccess {
		return res
	}
	if version == nil {
		return ze.ResultErrorInvalidNullPointer
	}
	*version = APIVersion
	return ze.ResultSuccess
}

func (d *Driver) driverGetProperties(hDriver ze.DriverHandle, pDriverProperties *ze.DriverProperties) ze.Result {
	if res := d.checkDriver(hDriver); res != ze.ResultSuccess {
		return res
	}
	if pDriverProperties == nil {
		return ze.ResultErrorInvalidNullPointer
	}
	*pDriverProperties = ze.DriverProperties{
		UUID:          ze.UUID(uuid.NewSHA1(namespace, []byte("driver"))),
		DriverVersion: driverVersion,
	}
	return ze.ResultSuccess
}

func (d *Driver) driverGetIpcProperties(hDriver ze.DriverHandle, pIpcProperties *ze.DriverIpcProperties) ze.Result {
	if res := d.checkDriver(hDriver); res != ze.ResultSuccess {
		return res
	}
	if pIpcProperties == nil {
		return ze.ResultErrorInvalidNullPointer
	}
	*pIpcProperties = ze.DriverIpcProperties{}
	return ze.ResultSuccess
}

var extensions = []ze.DriverExtensionProperties{
	{Name: "ZEX_cpu_builtin_kernels", Version: uint32(ze.MakeVersion(1, 0))},
}

func (d *Driver) driverGetExtensionProperties(hDriver ze.DriverHandle, pCount *uint32, pExtensionProperties []ze.DriverExtensionProperties) ze.Result {
	if res := d.checkDriver(hDriver); res != ze.ResultSuccess {
		return res
	}
	return fill(pCount, pExtensionProperties, extensions)
}

func (d *Driver) driverGetLastErrorDescription(hDriver ze.DriverHandle, ppString *string) ze.Result {
	if res := d.checkDriver(hDriver); res != ze.ResultSuccess {
		return res
	}
	if ppString == nil {
		return ze.ResultErrorInvalidNullPointer
	}
	d.mu.RLock()
	*ppString = d.lastError
	d.mu.RUnlock()
	return ze.ResultSuccess
}

func (d *Driver) driverGetDefaultContext(hDriver ze.DriverHandle) ze.ContextHandle {
	if d.checkDriver(hDriver) != ze.ResultSuccess {
		return 0
	}
	return d.defaultCtx.handle
}

// Device entry points.

func (d *Driver) deviceGet(hDriver ze.DriverHandle, pCount *uint32, phDevices []ze.DeviceHandle) ze.Result {
	if res := d.checkDriver(hDriver); res != ze.ResultSuccess {
		return res
	}
	return fill(pCount, phDevices, []ze.DeviceHandle{d.dev.handle})
}

// withDevice resolves hDevice and a non-nil output pointer before calling fn.
func withDevice[T any](d *Driver, hDevice ze.DeviceHandle, out *T, fn func(dev *device) T) ze.Result {
	dev, ok := lookup[*device](d, ze.Handle(hDevice))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	if out == nil {
		return ze.ResultErrorInvalidNullPointer
	}
	*out = fn(dev)
	return ze.ResultSuccess
}

func (d *Driver) deviceGetRootDevice(hDevice ze.DeviceHandle, phRootDevice *ze.DeviceHandle) ze.Result {
	return withDevice(d, hDevice, phRootDevice, func(*device) ze.DeviceHandle { return 0 })
}

func (d *Driver) deviceGetSubDevices(hDevice ze.DeviceHandle, pCount *uint32, phSubdevices []ze.DeviceHandle) ze.Result {
	if _, ok := lookup[*device](d, ze.Handle(hDevice)); !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	return fill(pCount, phSubdevices, nil)
}

func (d *Driver) deviceGetProperties(hDevice ze.DeviceHandle, pDeviceProperties *ze.DeviceProperties) ze.Result {
	return withDevice(d, hDevice, pDeviceProperties, func(dev *device) ze.DeviceProperties { return dev.props })
}

func (d *Driver) deviceGetComputeProperties(hDevice ze.DeviceHandle, pComputeProperties *ze.DeviceComputeProperties) ze.Result {
	return withDevice(d, hDevice, pComputeProperties, func(dev *device) ze.DeviceComputeProperties {
		props := dev.compute
		props.SubGroupSizes = append([]uint32(nil), dev.compute.SubGroupSizes...)
		return props
	})
}

func (d *Driver) deviceGetModuleProperties(hDevice ze.DeviceHandle, pModuleProperties *ze.DeviceModuleProperties) ze.Result {
	return withDevice(d, hDevice, pModuleProperties, func(*device) ze.DeviceModuleProperties {
		return ze.DeviceModuleProperties{
			MaxArgumentsSize:      2048,
			NativeKernelSupported: ze.UUID(uuid.NewSHA1(namespace, []byte("native"))),
		}
	})
}

func (d *Driver) deviceGetCommandQueueGroupProperties(hDevice ze.DeviceHandle, pCount *uint32, pCommandQueueGroupProperties []ze.CommandQueueGroupProperties) ze.Result {
	if _, ok := lookup[*device](d, ze.Handle(hDevice)); !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	groups := []ze.CommandQueueGroupProperties{{
		Flags:                    0b0011,
		MaxMemoryFillPatternSize: maxFillPattern,
		NumQueues:                uint32(runtime.NumCPU()),
	}}
	return fill(pCount, pCommandQueueGroupProperties, groups)
}

func (d *Driver) deviceGetMemoryProperties(hDevice ze.DeviceHandle, pCount *uint32, pMemProperties []ze.DeviceMemoryProperties) ze.Result {
	if _, ok := lookup[*device](d, ze.Handle(hDevice)); !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	props := []ze.DeviceMemoryProperties{{TotalSize: totalMemory, Name: "host"}}
	return fill(pCount, pMemProperties, props)
}

func (d *Driver) deviceGetMemoryAccessProperties(hDevice ze.DeviceHandle, pMemAccessProperties *ze.DeviceMemoryAccessProperties) ze.Result {
	const rw = 0b0001
	return withDevice(d, hDevice, pMemAccessProperties, func(*device) ze.DeviceMemoryAccessProperties {
		return ze.DeviceMemoryAccessProperties{
			HostAllocCapabilities:               rw,
			DeviceAllocCapabilities:             rw,
			SharedSingleDeviceAllocCapabilities: rw,
		}
	})
}

func (d *Driver) deviceGetCacheProperties(hDevice ze.DeviceHandle, pCount *uint32, pCacheProperties []ze.DeviceCacheProperties) ze.Result {
	if _, ok := lookup[*device](d, ze.Handle(hDevice)); !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	return fill(pCount, pCacheProperties, []ze.DeviceCacheProperties{{CacheSize: 1 << 20}})
}

func (d *Driver) deviceGetImageProperties(hDevice ze.DeviceHandle, pImageProperties *ze.DeviceImageProperties) ze.Result {
	return withDevice(d, hDevice, pImageProperties, func(*device) ze.DeviceImageProperties {
		return ze.DeviceImageProperties{}
	})
}

func (d *Driver) deviceGetExternalMemoryProperties(hDevice ze.DeviceHandle, pExternalMemoryProperties *ze.DeviceExternalMemoryProperties) ze.Result {
	return withDevice(d, hDevice, pExternalMemoryProperties, func(*device) ze.DeviceExternalMemoryProperties {
		return ze.DeviceExternalMemoryProperties{}
	})
}

func (d *Driver) deviceGetP2PProperties(hDevice ze.DeviceHandle, hPeerDevice ze.DeviceHandle, pP2PProperties *ze.DeviceP2PProperties) ze.Result {
	if _, ok := lookup[*device](d, ze.Handle(hPeerDevice)); !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	return withDevice(d, hDevice, pP2PProperties, func(*device) ze.DeviceP2PProperties {
		return ze.DeviceP2PProperties{}
	})
}

func (d *Driver) deviceCanAccessPeer(hDevice ze.DeviceHandle, hPeerDevice ze.DeviceHandle, value *ze.Bool) ze.Result {
	peer, ok := lookup[*device](d, ze.Handle(hPeerDevice))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	return withDevice(d, hDevice, value, func(dev *device) ze.Bool { return ze.BoolOf(dev == peer) })
}

func (d *Driver) deviceGetStatus(hDevice ze.DeviceHandle) ze.Result {
	if _, ok := lookup[*device](d, ze.Handle(hDevice)); !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	return ze.ResultSuccess
}

func (d *Driver) deviceGetGlobalTimestamps(hDevice ze.DeviceHandle, hostTimestamp *uint64, deviceTimestamp *uint64) ze.Result {
	if _, ok := lookup[*device](d, ze.Handle(hDevice)); !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	if hostTimestamp == nil || deviceTimestamp == nil {
		return ze.ResultErrorInvalidNullPointer
	}
	now := d.now()
	*hostTimestamp, *deviceTimestamp = now, now
	return ze.ResultSuccess
}

func (d *Driver) deviceSetCacheAdviceExt(hDevice ze.DeviceHandle, ptr unsafe.Pointer, regionSize uint64, cacheRegion ze.CacheExtRegion) ze.Result {
	if _, ok := lookup[*device](d, ze.Handle(hDevice)); !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	if cacheRegion > ze.CacheExtRegionNonReserved {
		return ze.ResultErrorInvalidEnumeration
	}
	_, res := d.mem.span(ptr, regionSize)
	return res
}

func (d *Driver) deviceGetVectorWidthPropertiesExt(hDevice ze.DeviceHandle, pCount *uint32, pVectorWidthProperties []ze.DeviceVectorWidthPropertiesExt) ze.Result {
	if _, ok := lookup[*device](d, ze.Handle(hDevice)); !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	widths := []ze.DeviceVectorWidthPropertiesExt{{
		VectorWidthSize:           cacheLineSize,
		PreferredVectorWidthChar:  16,
		PreferredVectorWidthFloat: 4,
		NativeVectorWidthFloat:    4,
	}}
	return fill(pCount, pVectorWidthProperties, widths)
}

func (d *Driver) deviceSynchronize(hDevice ze.DeviceHandle) ze.Result {
	dev, ok := lookup[*device](d, ze.Handle(hDevice))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	return dev.synchronize()
}
