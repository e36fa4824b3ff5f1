package cpu

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"unsafe"

	"github.com/fxnlabs/level-zero-loader/internal/ze"
	"github.com/google/uuid"
)

const maxSubgroupSize = 16

// module is a native module: one builtin kernel name per line. Blank lines
// and lines starting with '#' are ignored.
type module struct {
	handle  ze.ModuleHandle
	ctx     *hostContext
	dev     *device
	binary  []byte
	kernels []string

	mu   sync.Mutex
	live int
}

type buildLog struct {
	handle ze.ModuleBuildLogHandle
	text   string
}

func parseModule(input []byte) ([]string, []string) {
	var names, unknown []string
	seen := make(map[string]bool)
	for _, line := range strings.Split(string(input), "\n") {
		name := strings.TrimSpace(line)
		if name == "" || strings.HasPrefix(name, "#") || seen[name] {
			continue
		}
		seen[name] = true
		if _, ok := builtins[name]; !ok {
			unknown = append(unknown, name)
			continue
		}
		names = append(names, name)
	}
	return names, unknown
}

func (d *Driver) newBuildLog(text string, ph *ze.ModuleBuildLogHandle) {
	if ph == nil {
		return
	}
	log := &buildLog{text: text}
	log.handle = ze.ModuleBuildLogHandle(d.register(log))
	*ph = log.handle
}

// copyBytes implements the size-then-fill protocol of byte outputs: a zero
// *pSize or a nil out asks for the size.
func copyBytes(pSize *uint64, out []byte, data []byte) ze.Result {
	if pSize == nil {
		return ze.ResultErrorInvalidNullPointer
	}
	if *pSize == 0 || out == nil {
		*pSize = uint64(len(data))
		return ze.ResultSuccess
	}
	n := min(*pSize, uint64(len(data)), uint64(len(out)))
	copy(out, data[:n])
	*pSize = n
	return ze.ResultSuccess
}

func cString(s string) []byte {
	return append([]byte(s), 0)
}

// Module entry points.

func (d *Driver) moduleCreate(hContext ze.ContextHandle, hDevice ze.DeviceHandle, desc *ze.ModuleDesc, phModule *ze.ModuleHandle, phBuildLog *ze.ModuleBuildLogHandle) ze.Result {
	ctx, ok := lookup[*hostContext](d, ze.Handle(hContext))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	dev, ok := lookup[*device](d, ze.Handle(hDevice))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	if desc == nil || phModule == nil {
		return ze.ResultErrorInvalidNullPointer
	}
	if len(desc.InputModule) == 0 {
		return ze.ResultErrorInvalidSize
	}

	switch desc.Format {
	case ze.ModuleFormatNative:
	case ze.ModuleFormatILSPIRV:
		msg := "SPIR-V input is not supported by the cpu driver"
		d.setLastError("%s", msg)
		d.newBuildLog(msg, phBuildLog)
		return ze.ResultErrorModuleBuildFailure
	default:
		return ze.ResultErrorInvalidEnumeration
	}

	names, unknown := parseModule(desc.InputModule)
	if len(unknown) > 0 {
		msg := fmt.Sprintf("unknown kernels: %s", strings.Join(unknown, ", "))
		d.setLastError("module build failed: %s", msg)
		d.newBuildLog(msg, phBuildLog)
		return ze.ResultErrorModuleBuildFailure
	}

	mod := &module{
		ctx:     ctx,
		dev:     dev,
		binary:  append([]byte(nil), desc.InputModule...),
		kernels: names,
	}
	mod.handle = ze.ModuleHandle(d.register(mod))
	if mod.handle == 0 {
		return ze.ResultErrorUninitialized
	}
	*phModule = mod.handle
	d.newBuildLog(fmt.Sprintf("built %d kernels", len(names)), phBuildLog)
	return ze.ResultSuccess
}

func (d *Driver) moduleDestroy(hModule ze.ModuleHandle) ze.Result {
	mod, ok := lookup[*module](d, ze.Handle(hModule))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	mod.mu.Lock()
	live := mod.live
	mod.mu.Unlock()
	if live > 0 {
		return ze.ResultErrorHandleObjectInUse
	}
	d.unregister(ze.Handle(hModule))
	return ze.ResultSuccess
}

func (d *Driver) modules(numModules uint32, phModules []ze.ModuleHandle) ([]*module, ze.Result) {
	if numModules == 0 || int(numModules) > len(phModules) {
		return nil, ze.ResultErrorInvalidSize
	}
	mods := make([]*module, 0, numModules)
	for _, h := range phModules[:numModules] {
		mod, ok := lookup[*module](d, ze.Handle(h))
		if !ok {
			return nil, ze.ResultErrorInvalidNullHandle
		}
		mods = append(mods, mod)
	}
	return mods, ze.ResultSuccess
}

// moduleDynamicLink succeeds for any set of native modules: builtin kernels
// have no imports.
func (d *Driver) moduleDynamicLink(numModules uint32, phModules []ze.ModuleHandle, phLinkLog *ze.ModuleBuildLogHandle) ze.Result {
	mods, res := d.modules(numModules, phModules)
	if res != ze.ResultSuccess {
		return res
	}
	d.newBuildLog(fmt.Sprintf("linked %d modules", len(mods)), phLinkLog)
	return ze.ResultSuccess
}

func (d *Driver) moduleInspectLinkageExt(pInspectDesc *ze.LinkageInspectionExtDesc, numModules uint32, phModules []ze.ModuleHandle, phLog *ze.ModuleBuildLogHandle) ze.Result {
	if pInspectDesc == nil || phLog == nil {
		return ze.ResultErrorInvalidNullPointer
	}
	mods, res := d.modules(numModules, phModules)
	if res != ze.ResultSuccess {
		return res
	}
	var b strings.Builder
	for _, mod := range mods {
		fmt.Fprintf(&b, "module %d exports: %s\n", mod.handle, strings.Join(mod.kernels, " "))
	}
	d.newBuildLog(b.String(), phLog)
	return ze.ResultSuccess
}

func (d *Driver) moduleGetNativeBinary(hModule ze.ModuleHandle, pSize *uint64, pModuleNativeBinary []byte) ze.Result {
	mod, ok := lookup[*module](d, ze.Handle(hModule))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	return copyBytes(pSize, pModuleNativeBinary, mod.binary)
}

func (d *Driver) moduleGetGlobalPointer(hModule ze.ModuleHandle, pGlobalName string, pSize *uint64, pptr *unsafe.Pointer) ze.Result {
	if _, ok := lookup[*module](d, ze.Handle(hModule)); !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	d.setLastError("module %d has no global %q", hModule, pGlobalName)
	return ze.ResultErrorInvalidArgument
}

func (d *Driver) moduleGetKernelNames(hModule ze.ModuleHandle, pCount *uint32, pNames []string) ze.Result {
	mod, ok := lookup[*module](d, ze.Handle(hModule))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	return fill(pCount, pNames, mod.kernels)
}

func (d *Driver) moduleGetProperties(hModule ze.ModuleHandle, pModuleProperties *ze.ModuleProperties) ze.Result {
	if _, ok := lookup[*module](d, ze.Handle(hModule)); !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	if pModuleProperties == nil {
		return ze.ResultErrorInvalidNullPointer
	}
	*pModuleProperties = ze.ModuleProperties{}
	return ze.ResultSuccess
}

func (d *Driver) moduleBuildLogDestroy(hModuleBuildLog ze.ModuleBuildLogHandle) ze.Result {
	if _, ok := lookup[*buildLog](d, ze.Handle(hModuleBuildLog)); !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	d.unregister(ze.Handle(hModuleBuildLog))
	return ze.ResultSuccess
}

func (d *Driver) moduleBuildLogGetString(hModuleBuildLog ze.ModuleBuildLogHandle, pSize *uint64, pBuildLog []byte) ze.Result {
	log, ok := lookup[*buildLog](d, ze.Handle(hModuleBuildLog))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	return copyBytes(pSize, pBuildLog, cString(log.text))
}

// Kernel entry points.

func (d *Driver) kernelCreate(hModule ze.ModuleHandle, desc *ze.KernelDesc, phKernel *ze.KernelHandle) ze.Result {
	mod, ok := lookup[*module](d, ze.Handle(hModule))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	if desc == nil || phKernel == nil {
		return ze.ResultErrorInvalidNullPointer
	}
	found := false
	for _, name := range mod.kernels {
		found = found || name == desc.KernelName
	}
	if !found {
		return ze.ResultErrorInvalidKernelName
	}

	k := newKernel(mod, desc.KernelName, builtins[desc.KernelName])
	k.handle = ze.KernelHandle(d.register(k))
	if k.handle == 0 {
		return ze.ResultErrorUninitialized
	}
	mod.mu.Lock()
	mod.live++
	mod.mu.Unlock()
	*phKernel = k.handle
	return ze.ResultSuccess
}

func (d *Driver) kernelDestroy(hKernel ze.KernelHandle) ze.Result {
	k, ok := lookup[*kernel](d, ze.Handle(hKernel))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	d.unregister(ze.Handle(hKernel))
	k.module.mu.Lock()
	k.module.live--
	k.module.mu.Unlock()
	return ze.ResultSuccess
}

// withKernel resolves hKernel and runs fn with the kernel locked.
func (d *Driver) withKernel(hKernel ze.KernelHandle, fn func(k *kernel) ze.Result) ze.Result {
	k, ok := lookup[*kernel](d, ze.Handle(hKernel))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	return fn(k)
}

func (d *Driver) kernelSetCacheConfig(hKernel ze.KernelHandle, flags ze.CacheConfigFlags) ze.Result {
	return d.withKernel(hKernel, func(k *kernel) ze.Result {
		k.cache = flags
		return ze.ResultSuccess
	})
}

func (d *Driver) kernelSetGroupSize(hKernel ze.KernelHandle, groupSizeX uint32, groupSizeY uint32, groupSizeZ uint32) ze.Result {
	if groupSizeX == 0 || groupSizeY == 0 || groupSizeZ == 0 {
		return ze.ResultErrorInvalidArgument
	}
	if uint64(groupSizeX)*uint64(groupSizeY)*uint64(groupSizeZ) > maxGroupSize {
		return ze.ResultErrorInvalidArgument
	}
	return d.withKernel(hKernel, func(k *kernel) ze.Result {
		k.groupSize = [3]uint32{groupSizeX, groupSizeY, groupSizeZ}
		return ze.ResultSuccess
	})
}

// suggestDim returns the largest divisor of global that fits in limit.
func suggestDim(global, limit uint32) uint32 {
	for size := min(global, limit); size > 1; size-- {
		if global%size == 0 {
			return size
		}
	}
	return 1
}

func (d *Driver) kernelSuggestGroupSize(hKernel ze.KernelHandle, globalSizeX uint32, globalSizeY uint32, globalSizeZ uint32, groupSizeX *uint32, groupSizeY *uint32, groupSizeZ *uint32) ze.Result {
	if _, ok := lookup[*kernel](d, ze.Handle(hKernel)); !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	if groupSizeX == nil || groupSizeY == nil || groupSizeZ == nil {
		return ze.ResultErrorInvalidNullPointer
	}
	if globalSizeX == 0 || globalSizeY == 0 || globalSizeZ == 0 {
		return ze.ResultErrorInvalidArgument
	}
	x := suggestDim(globalSizeX, maxGroupSize)
	y := suggestDim(globalSizeY, maxGroupSize/x)
	z := suggestDim(globalSizeZ, maxGroupSize/(x*y))
	*groupSizeX, *groupSizeY, *groupSizeZ = x, y, z
	return ze.ResultSuccess
}

func (d *Driver) kernelSuggestMaxCooperativeGroupCount(hKernel ze.KernelHandle, totalGroupCount *uint32) ze.Result {
	if _, ok := lookup[*kernel](d, ze.Handle(hKernel)); !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	if totalGroupCount == nil {
		return ze.ResultErrorInvalidNullPointer
	}
	*totalGroupCount = uint32(runtime.NumCPU())
	return ze.ResultSuccess
}

func (d *Driver) kernelSetArgumentValue(hKernel ze.KernelHandle, argIndex uint32, argSize uint64, pArgValue unsafe.Pointer) ze.Result {
	k, ok := lookup[*kernel](d, ze.Handle(hKernel))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	return k.setArg(argIndex, argSize, pArgValue)
}

func (d *Driver) kernelSetIndirectAccess(hKernel ze.KernelHandle, flags ze.KernelIndirectAccessFlags) ze.Result {
	return d.withKernel(hKernel, func(k *kernel) ze.Result {
		k.indirect = flags
		return ze.ResultSuccess
	})
}

func (d *Driver) kernelGetIndirectAccess(hKernel ze.KernelHandle, pFlags *ze.KernelIndirectAccessFlags) ze.Result {
	if pFlags == nil {
		return ze.ResultErrorInvalidNullPointer
	}
	return d.withKernel(hKernel, func(k *kernel) ze.Result {
		*pFlags = k.indirect
		return ze.ResultSuccess
	})
}

// kernelGetSourceAttributes reports an empty attribute string: builtin
// kernels carry no source attributes.
func (d *Driver) kernelGetSourceAttributes(hKernel ze.KernelHandle, pSize *uint32, pString *string) ze.Result {
	if _, ok := lookup[*kernel](d, ze.Handle(hKernel)); !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	if pSize == nil {
		return ze.ResultErrorInvalidNullPointer
	}
	if *pSize == 0 || pString == nil {
		*pSize = 1
		return ze.ResultSuccess
	}
	*pString = ""
	return ze.ResultSuccess
}

func (d *Driver) kernelGetProperties(hKernel ze.KernelHandle, pKernelProperties *ze.KernelProperties) ze.Result {
	if pKernelProperties == nil {
		return ze.ResultErrorInvalidNullPointer
	}
	return d.withKernel(hKernel, func(k *kernel) ze.Result {
		*pKernelProperties = ze.KernelProperties{
			NumKernelArgs:   uint32(len(k.def.args)),
			MaxSubgroupSize: maxSubgroupSize,
			UUID:            ze.UUID(uuid.NewSHA1(namespace, []byte("kernel/"+k.name))),
		}
		return ze.ResultSuccess
	})
}

func (d *Driver) kernelGetName(hKernel ze.KernelHandle, pSize *uint64, pName []byte) ze.Result {
	k, ok := lookup[*kernel](d, ze.Handle(hKernel))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	return copyBytes(pSize, pName, cString(k.name))
}

func (d *Driver) kernelSetGlobalOffsetExp(hKernel ze.KernelHandle, offsetX uint32, offsetY uint32, offsetZ uint32) ze.Result {
	return d.withKernel(hKernel, func(k *kernel) ze.Result {
		k.offset = [3]uint32{offsetX, offsetY, offsetZ}
		return ze.ResultSuccess
	})
}

func (d *Driver) kernelGetBinaryExp(hKernel ze.KernelHandle, pSize *uint64, pKernelBinary []byte) ze.Result {
	k, ok := lookup[*kernel](d, ze.Handle(hKernel))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	return copyBytes(pSize, pKernelBinary, []byte(k.name))
}

func (d *Driver) kernelSchedulingHintExp(hKernel ze.KernelHandle, pHint *ze.SchedulingHintExpDesc) ze.Result {
	if _, ok := lookup[*kernel](d, ze.Handle(hKernel)); !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	if pHint == nil {
		return ze.ResultErrorInvalidNullPointer
	}
	return ze.ResultSuccess
}
