package ze

import "fmt"

// Result is the status code returned by every entry point.
type Result uint32

const (
	ResultSuccess                         Result = 0
	ResultNotReady                        Result = 1
	ResultErrorDeviceLost                 Result = 0x70000001
	ResultErrorOutOfHostMemory            Result = 0x70000002
	ResultErrorOutOfDeviceMemory          Result = 0x70000003
	ResultErrorModuleBuildFailure         Result = 0x70000004
	ResultErrorModuleLinkFailure          Result = 0x70000005
	ResultErrorNotAvailable               Result = 0x70010001
	ResultErrorUninitialized              Result = 0x78000001
	ResultErrorUnsupportedVersion         Result = 0x78000002
	ResultErrorUnsupportedFeature         Result = 0x78000003
	ResultErrorInvalidArgument            Result = 0x78000004
	ResultErrorInvalidNullHandle          Result = 0x78000005
	ResultErrorHandleObjectInUse          Result = 0x78000006
	ResultErrorInvalidNullPointer         Result = 0x78000007
	ResultErrorInvalidSize                Result = 0x78000008
	ResultErrorInvalidEnumeration         Result = 0x7800000c
	ResultErrorInvalidKernelName          Result = 0x78000011
	ResultErrorInvalidKernelArgumentIndex Result = 0x78000015
	ResultErrorInvalidModuleUnlinked      Result = 0x78000018
	ResultErrorUnknown                    Result = 0x7ffffffe
)

var resultNames = map[Result]string{
	ResultSuccess:                         "ZE_RESULT_SUCCESS",
	ResultNotReady:                        "ZE_RESULT_NOT_READY",
	ResultErrorDeviceLost:                 "ZE_RESULT_ERROR_DEVICE_LOST",
	ResultErrorOutOfHostMemory:            "ZE_RESULT_ERROR_OUT_OF_HOST_MEMORY",
	ResultErrorOutOfDeviceMemory:          "ZE_RESULT_ERROR_OUT_OF_DEVICE_MEMORY",
	ResultErrorModuleBuildFailure:         "ZE_RESULT_ERROR_MODULE_BUILD_FAILURE",
	ResultErrorModuleLinkFailure:          "ZE_RESULT_ERROR_MODULE_LINK_FAILURE",
	ResultErrorNotAvailable:               "ZE_RESULT_ERROR_NOT_AVAILABLE",
	ResultErrorUninitialized:              "ZE_RESULT_ERROR_UNINITIALIZED",
	ResultErrorUnsupportedVersion:         "ZE_RESULT_ERROR_UNSUPPORTED_VERSION",
	ResultErrorUnsupportedFeature:         "ZE_RESULT_ERROR_UNSUPPORTED_FEATURE",
	ResultErrorInvalidArgument:            "ZE_RESULT_ERROR_INVALID_ARGUMENT",
	ResultErrorInvalidNullHandle:          "ZE_RESULT_ERROR_INVALID_NULL_HANDLE",
	ResultErrorHandleObjectInUse:          "ZE_RESULT_ERROR_HANDLE_OBJECT_IN_USE",
	ResultErrorInvalidNullPointer:         "ZE_RESULT_ERROR_INVALID_NULL_POINTER",
	ResultErrorInvalidSize:                "ZE_RESULT_ERROR_INVALID_SIZE",
	ResultErrorInvalidEnumeration:         "ZE_RESULT_ERROR_INVALID_ENUMERATION",
	ResultErrorInvalidKernelName:          "ZE_RESULT_ERROR_INVALID_KERNEL_NAME",
	ResultErrorInvalidKernelArgumentIndex: "ZE_RESULT_ERROR_INVALID_KERNEL_ARGUMENT_INDEX",
	ResultErrorInvalidModuleUnlinked:      "ZE_RESULT_ERROR_INVALID_MODULE_UNLINKED",
	ResultErrorUnknown:                    "ZE_RESULT_ERROR_UNKNOWN",
}

func (r Result) String() string {
	if name, ok := resultNames[r]; ok {
		return name
	}
	return fmt.Sprintf("ZE_RESULT(0x%08x)", uint32(r))
}

// Error lets a failing Result travel as a Go error.
func (r Result) Error() string {
	return r.String()
}

// Err returns nil for ResultSuccess and the Result itself otherwise.
func (r Result) Err() error {
	if r == ResultSuccess {
		return nil
	}
	return r
}

// IsError reports whether r is an error code. ResultNotReady is not one.
func (r Result) IsError() bool {
	return r != ResultSuccess && r != ResultNotReady
}
