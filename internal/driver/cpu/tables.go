package cpu

import (
	"github.com/fxnlabs/level-zero-loader/internal/ddi"
)

// tables fills the entries the driver implements. Categories without a host
// equivalent are released so the loader reports them as absent.
func (d *Driver) tables() *ddi.Tables {
	t := ddi.NewTables()

	t.Global.Init = ddi.Impl[ddi.PfnInit](d.globalInit)
	t.Global.InitDrivers = ddi.Impl[ddi.PfnInitDrivers](d.initDrivers)

	t.Driver.Get = ddi.Impl[ddi.PfnDriverGet](d.driverGet)
	t.Driver.GetApiVersion = ddi.Impl[ddi.PfnDriverGetApiVersion](d.driverGetAPIVersion)
	t.Driver.GetProperties = ddi.Impl[ddi.PfnDriverGetProperties](d.driverGetProperties)
	t.Driver.GetIpcProperties = ddi.Impl[ddi.PfnDriverGetIpcProperties](d.driverGetIpcProperties)
	t.Driver.GetExtensionProperties = ddi.Impl[ddi.PfnDriverGetExtensionProperties](d.driverGetExtensionProperties)
	t.Driver.GetLastErrorDescription = ddi.Impl[ddi.PfnDriverGetLastErrorDescription](d.driverGetLastErrorDescription)
	t.Driver.GetDefaultContext = ddi.Impl[ddi.PfnDriverGetDefaultContext](d.driverGetDefaultContext)

	t.Device.Get = ddi.Impl[ddi.PfnDeviceGet](d.deviceGet)
	t.Device.GetRootDevice = ddi.Impl[ddi.PfnDeviceGetRootDevice](d.deviceGetRootDevice)
	t.Device.GetSubDevices = ddi.Impl[ddi.PfnDeviceGetSubDevices](d.deviceGetSubDevices)
	t.Device.GetProperties = ddi.Impl[ddi.PfnDeviceGetProperties](d.deviceGetProperties)
	t.Device.GetComputeProperties = ddi.Impl[ddi.PfnDeviceGetComputeProperties](d.deviceGetComputeProperties)
	t.Device.GetModuleProperties = ddi.Impl[ddi.PfnDeviceGetModuleProperties](d.deviceGetModuleProperties)
	t.Device.GetCommandQueueGroupProperties = ddi.Impl[ddi.PfnDeviceGetCommandQueueGroupProperties](d.deviceGetCommandQueueGroupProperties)
	t.Device.GetMemoryProperties = ddi.Impl[ddi.PfnDeviceGetMemoryProperties](d.deviceGetMemoryProperties)
	t.Device.GetMemoryAccessProperties = ddi.Impl[ddi.PfnDeviceGetMemoryAccessProperties](d.deviceGetMemoryAccessProperties)
	t.Device.GetCacheProperties = ddi.Impl[ddi.PfnDeviceGetCacheProperties](d.deviceGetCacheProperties)
	t.Device.GetImageProperties = ddi.Impl[ddi.PfnDeviceGetImageProperties](d.deviceGetImageProperties)
	t.Device.GetExternalMemoryProperties = ddi.Impl[ddi.PfnDeviceGetExternalMemoryProperties](d.deviceGetExternalMemoryProperties)
	t.Device.GetP2PProperties = ddi.Impl[ddi.PfnDeviceGetP2PProperties](d.deviceGetP2PProperties)
	t.Device.CanAccessPeer = ddi.Impl[ddi.PfnDeviceCanAccessPeer](d.deviceCanAccessPeer)
	t.Device.GetStatus = ddi.Impl[ddi.PfnDeviceGetStatus](d.deviceGetStatus)
	t.Device.GetGlobalTimestamps = ddi.Impl[ddi.PfnDeviceGetGlobalTimestamps](d.deviceGetGlobalTimestamps)
	t.Device.SetCacheAdviceExt = ddi.Impl[ddi.PfnDeviceSetCacheAdviceExt](d.deviceSetCacheAdviceExt)
	t.Device.GetVectorWidthPropertiesExt = ddi.Impl[ddi.PfnDeviceGetVectorWidthPropertiesExt](d.deviceGetVectorWidthPropertiesExt)
	t.Device.Synchronize = ddi.Impl[ddi.PfnDeviceSynchronize](d.deviceSynchronize)

	t.Context.Create = ddi.Impl[ddi.PfnContextCreate](d.contextCreate)
	t.Context.CreateEx = ddi.Impl[ddi.PfnContextCreateEx](d.contextCreateEx)
	t.Context.Destroy = ddi.Impl[ddi.PfnContextDestroy](d.contextDestroy)
	t.Context.GetStatus = ddi.Impl[ddi.PfnContextGetStatus](d.contextGetStatus)
	t.Context.SystemBarrier = ddi.Impl[ddi.PfnContextSystemBarrier](d.contextSystemBarrier)
	t.Context.MakeMemoryResident = ddi.Impl[ddi.PfnContextMakeMemoryResident](d.contextResidency)
	t.Context.EvictMemory = ddi.Impl[ddi.PfnContextEvictMemory](d.contextResidency)

	t.CommandQueue.Create = ddi.Impl[ddi.PfnCommandQueueCreate](d.commandQueueCreate)
	t.CommandQueue.Destroy = ddi.Impl[ddi.PfnCommandQueueDestroy](d.commandQueueDestroy)
	t.CommandQueue.ExecuteCommandLists = ddi.Impl[ddi.PfnCommandQueueExecuteCommandLists](d.commandQueueExecuteCommandLists)
	t.CommandQueue.Synchronize = ddi.Impl[ddi.PfnCommandQueueSynchronize](d.commandQueueSynchronize)
	t.CommandQueue.GetOrdinal = ddi.Impl[ddi.PfnCommandQueueGetOrdinal](d.commandQueueGetOrdinal)
	t.CommandQueue.GetIndex = ddi.Impl[ddi.PfnCommandQueueGetIndex](d.commandQueueGetIndex)

	t.CommandList.Create = ddi.Impl[ddi.PfnCommandListCreate](d.commandListCreate)
	t.CommandList.CreateImmediate = ddi.Impl[ddi.PfnCommandListCreateImmediate](d.commandListCreateImmediate)
	t.CommandList.Destroy = ddi.Impl[ddi.PfnCommandListDestroy](d.commandListDestroy)
	t.CommandList.Close = ddi.Impl[ddi.PfnCommandListClose](d.commandListClose)
	t.CommandList.Reset = ddi.Impl[ddi.PfnCommandListReset](d.commandListReset)
	t.CommandList.AppendWriteGlobalTimestamp = ddi.Impl[ddi.PfnCommandListAppendWriteGlobalTimestamp](d.commandListAppendWriteGlobalTimestamp)
	t.CommandList.AppendBarrier = ddi.Impl[ddi.PfnCommandListAppendBarrier](d.commandListAppendBarrier)
	t.CommandList.AppendMemoryCopy = ddi.Impl[ddi.PfnCommandListAppendMemoryCopy](d.commandListAppendMemoryCopy)
	t.CommandList.AppendMemoryFill = ddi.Impl[ddi.PfnCommandListAppendMemoryFill](d.commandListAppendMemoryFill)
	t.CommandList.AppendMemoryPrefetch = ddi.Impl[ddi.PfnCommandListAppendMemoryPrefetch](d.commandListAppendMemoryPrefetch)
	t.CommandList.AppendMemAdvise = ddi.Impl[ddi.PfnCommandListAppendMemAdvise](d.commandListAppendMemAdvise)
	t.CommandList.AppendSignalEvent = ddi.Impl[ddi.PfnCommandListAppendSignalEvent](d.commandListAppendSignalEvent)
	t.CommandList.AppendWaitOnEvents = ddi.Impl[ddi.PfnCommandListAppendWaitOnEvents](d.commandListAppendWaitOnEvents)
	t.CommandList.AppendEventReset = ddi.Impl[ddi.PfnCommandListAppendEventReset](d.commandListAppendEventReset)
	t.CommandList.AppendLaunchKernel = ddi.Impl[ddi.PfnCommandListAppendLaunchKernel](d.commandListAppendLaunchKernel)
	t.CommandList.HostSynchronize = ddi.Impl[ddi.PfnCommandListHostSynchronize](d.commandListHostSynchronize)
	t.CommandList.GetDeviceHandle = ddi.Impl[ddi.PfnCommandListGetDeviceHandle](d.commandListGetDeviceHandle)
	t.CommandList.GetContextHandle = ddi.Impl[ddi.PfnCommandListGetContextHandle](d.commandListGetContextHandle)
	t.CommandList.GetOrdinal = ddi.Impl[ddi.PfnCommandListGetOrdinal](d.commandListGetOrdinal)
	t.CommandList.ImmediateGetIndex = ddi.Impl[ddi.PfnCommandListImmediateGetIndex](d.commandListImmediateGetIndex)
	t.CommandList.IsImmediate = ddi.Impl[ddi.PfnCommandListIsImmediate](d.commandListIsImmediate)

	t.Event.Create = ddi.Impl[ddi.PfnEventCreate](d.eventCreate)
	t.Event.Destroy = ddi.Impl[ddi.PfnEventDestroy](d.eventDestroy)
	t.Event.HostSignal = ddi.Impl[ddi.PfnEventHostSignal](d.eventHostSignal)
	t.Event.HostSynchronize = ddi.Impl[ddi.PfnEventHostSynchronize](d.eventHostSynchronize)
	t.Event.QueryStatus = ddi.Impl[ddi.PfnEventQueryStatus](d.eventQueryStatus)
	t.Event.HostReset = ddi.Impl[ddi.PfnEventHostReset](d.eventHostReset)
	t.Event.QueryKernelTimestamp = ddi.Impl[ddi.PfnEventQueryKernelTimestamp](d.eventQueryKernelTimestamp)
	t.Event.GetEventPool = ddi.Impl[ddi.PfnEventGetEventPool](d.eventGetEventPool)
	t.Event.GetSignalScope = ddi.Impl[ddi.PfnEventGetSignalScope](d.eventGetSignalScope)
	t.Event.GetWaitScope = ddi.Impl[ddi.PfnEventGetWaitScope](d.eventGetWaitScope)

	t.EventPool.Create = ddi.Impl[ddi.PfnEventPoolCreate](d.eventPoolCreate)
	t.EventPool.Destroy = ddi.Impl[ddi.PfnEventPoolDestroy](d.eventPoolDestroy)
	t.EventPool.GetContextHandle = ddi.Impl[ddi.PfnEventPoolGetContextHandle](d.eventPoolGetContextHandle)
	t.EventPool.GetFlags = ddi.Impl[ddi.PfnEventPoolGetFlags](d.eventPoolGetFlags)

	t.Fence.Create = ddi.Impl[ddi.PfnFenceCreate](d.fenceCreate)
	t.Fence.Destroy = ddi.Impl[ddi.PfnFenceDestroy](d.fenceDestroy)
	t.Fence.HostSynchronize = ddi.Impl[ddi.PfnFenceHostSynchronize](d.fenceHostSynchronize)
	t.Fence.QueryStatus = ddi.Impl[ddi.PfnFenceQueryStatus](d.fenceQueryStatus)
	t.Fence.Reset = ddi.Impl[ddi.PfnFenceReset](d.fenceReset)

	t.Kernel.Create = ddi.Impl[ddi.PfnKernelCreate](d.kernelCreate)
	t.Kernel.Destroy = ddi.Impl[ddi.PfnKernelDestroy](d.kernelDestroy)
	t.Kernel.SetCacheConfig = ddi.Impl[ddi.PfnKernelSetCacheConfig](d.kernelSetCacheConfig)
	t.Kernel.SetGroupSize = ddi.Impl[ddi.PfnKernelSetGroupSize](d.kernelSetGroupSize)
	t.Kernel.SuggestGroupSize = ddi.Impl[ddi.PfnKernelSuggestGroupSize](d.kernelSuggestGroupSize)
	t.Kernel.SuggestMaxCooperativeGroupCount = ddi.Impl[ddi.PfnKernelSuggestMaxCooperativeGroupCount](d.kernelSuggestMaxCooperativeGroupCount)
	t.Kernel.SetArgumentValue = ddi.Impl[ddi.PfnKernelSetArgumentValue](d.kernelSetArgumentValue)
	t.Kernel.SetIndirectAccess = ddi.Impl[ddi.PfnKernelSetIndirectAccess](d.kernelSetIndirectAccess)
	t.Kernel.GetIndirectAccess = ddi.Impl[ddi.PfnKernelGetIndirectAccess](d.kernelGetIndirectAccess)
	t.Kernel.GetSourceAttributes = ddi.Impl[ddi.PfnKernelGetSourceAttributes](d.kernelGetSourceAttributes)
	t.Kernel.GetProperties = ddi.Impl[ddi.PfnKernelGetProperties](d.kernelGetProperties)
	t.Kernel.GetName = ddi.Impl[ddi.PfnKernelGetName](d.kernelGetName)

	t.KernelExp.SetGlobalOffsetExp = ddi.Impl[ddi.PfnKernelSetGlobalOffsetExp](d.kernelSetGlobalOffsetExp)
	t.KernelExp.SchedulingHintExp = ddi.Impl[ddi.PfnKernelSchedulingHintExp](d.kernelSchedulingHintExp)
	t.KernelExp.GetBinaryExp = ddi.Impl[ddi.PfnKernelGetBinaryExp](d.kernelGetBinaryExp)

	t.Mem.AllocShared = ddi.Impl[ddi.PfnMemAllocShared](d.memAllocShared)
	t.Mem.AllocDevice = ddi.Impl[ddi.PfnMemAllocDevice](d.memAllocDevice)
	t.Mem.AllocHost = ddi.Impl[ddi.PfnMemAllocHost](d.memAllocHost)
	t.Mem.Free = ddi.Impl[ddi.PfnMemFree](d.memFree)
	t.Mem.GetAllocProperties = ddi.Impl[ddi.PfnMemGetAllocProperties](d.memGetAllocProperties)
	t.Mem.GetAddressRange = ddi.Impl[ddi.PfnMemGetAddressRange](d.memGetAddressRange)
	t.Mem.FreeExt = ddi.Impl[ddi.PfnMemFreeExt](d.memFreeExt)

	t.Module.Create = ddi.Impl[ddi.PfnModuleCreate](d.moduleCreate)
	t.Module.Destroy = ddi.Impl[ddi.PfnModuleDestroy](d.moduleDestroy)
	t.Module.DynamicLink = ddi.Impl[ddi.PfnModuleDynamicLink](d.moduleDynamicLink)
	t.Module.GetNativeBinary = ddi.Impl[ddi.PfnModuleGetNativeBinary](d.moduleGetNativeBinary)
	t.Module.GetGlobalPointer = ddi.Impl[ddi.PfnModuleGetGlobalPointer](d.moduleGetGlobalPointer)
	t.Module.GetKernelNames = ddi.Impl[ddi.PfnModuleGetKernelNames](d.moduleGetKernelNames)
	t.Module.GetProperties = ddi.Impl[ddi.PfnModuleGetProperties](d.moduleGetProperties)
	t.Module.InspectLinkageExt = ddi.Impl[ddi.PfnModuleInspectLinkageExt](d.moduleInspectLinkageExt)

	t.ModuleBuildLog.Destroy = ddi.Impl[ddi.PfnModuleBuildLogDestroy](d.moduleBuildLogDestroy)
	t.ModuleBuildLog.GetString = ddi.Impl[ddi.PfnModuleBuildLogGetString](d.moduleBuildLogGetString)

	t.RTASBuilder = nil
	t.RTASBuilderExp = nil
	t.RTASParallelOperation = nil
	t.RTASParallelOperationExp = nil
	t.Image = nil
	t.ImageExp = nil
	t.Sampler = nil
	t.PhysicalMem = nil
	t.VirtualMem = nil
	t.FabricEdgeExp = nil
	t.FabricVertexExp = nil
	return t
}
