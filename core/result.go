// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import "fmt"

// Result is a native Vulkan result code (VkResult).
type Result int32

// Result codes the adapter can meet on its paths. The enumeration is
// not exhaustive, unknown codes are printed numerically.
const (
	Success                 Result = 0
	NotReady                Result = 1
	ErrorOutOfHostMemory    Result = -1
	ErrorOutOfDeviceMemory  Result = -2
	ErrorInitialization     Result = -3
	ErrorLayerNotPresent    Result = -6
	ErrorExtensionNotFound  Result = -7
	ErrorIncompatibleDriver Result = -9
	ErrorSurfaceLost        Result = -1000000000
	ErrorNativeWindowInUse  Result = -1000000001
)

func (r Result) String() string {
	switch r {
	case Success:
		return "VK_SUCCESS"
	case NotReady:
		return "VK_NOT_READY"
	case ErrorOutOfHostMemory:
		return "VK_ERROR_OUT_OF_HOST_MEMORY"
	case ErrorOutOfDeviceMemory:
		return "VK_ERROR_OUT_OF_DEVICE_MEMORY"
	case ErrorInitialization:
		return "VK_ERROR_INITIALIZATION_FAILED"
	case ErrorLayerNotPresent:
		return "VK_ERROR_LAYER_NOT_PRESENT"
	case ErrorExtensionNotFound:
		return "VK_ERROR_EXTENSION_NOT_PRESENT"
	case ErrorIncompatibleDriver:
		return "VK_ERROR_INCOMPATIBLE_DRIVER"
	case ErrorSurfaceLost:
		return "VK_ERROR_SURFACE_LOST_KHR"
	case ErrorNativeWindowInUse:
		return "VK_ERROR_NATIVE_WINDOW_IN_USE_KHR"
	}
	return fmt.Sprintf("VkResult(%d)", int32(r))
}
