package ze

type CommandQueueMode uint32

const (
	CommandQueueModeDefault      CommandQueueMode = 0
	CommandQueueModeSynchronous  CommandQueueMode = 1
	CommandQueueModeAsynchronous CommandQueueMode = 2
)

type CommandQueuePriority uint32

type CommandQueueDesc struct {
	Ordinal  uint32
	Index    uint32
	Flags    uint32
	Mode     CommandQueueMode
	Priority CommandQueuePriority
}

type CommandListDesc struct {
	CommandQueueGroupOrdinal uint32
	Flags                    uint32
}

type FenceDesc struct {
	Flags uint32
}

type EventPoolFlags uint32

const (
	EventPoolFlagHostVisible     EventPoolFlags = 1 << 0
	EventPoolFlagIPC             EventPoolFlags = 1 << 1
	EventPoolFlagKernelTimestamp EventPoolFlags = 1 << 2
)

type EventPoolDesc struct {
	Flags EventPoolFlags
	Count uint32
}

type EventScopeFlags uint32

const (
	EventScopeFlagSubdevice EventScopeFlags = 1 << 0
	EventScopeFlagDevice    EventScopeFlags = 1 << 1
	EventScopeFlagHost      EventScopeFlags = 1 << 2
)

type EventDesc struct {
	Index  uint32
	Signal EventScopeFlags
	Wait   EventScopeFlags
}

type KernelTimestampData struct {
	KernelStart uint64
	KernelEnd   uint64
}

type KernelTimestampResult struct {
	Global  KernelTimestampData
	Context KernelTimestampData
}

// GroupCount is the thread group dispatch size of a kernel launch.
type GroupCount struct {
	GroupCountX uint32
	GroupCountY uint32
	GroupCountZ uint32
}

type MutableCommandExpFlags uint32

type MutableCommandIDExpDesc struct {
	Flags MutableCommandExpFlags
}

type MutableCommandsExpDesc struct {
	Flags uint32
}

type SchedulingHintExpDesc struct {
	Flags uint32
}
