// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vulkan

import (
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/devblok/vkwsi/core"
)

// The driver exposes raw C entry point addresses; purego turns them
// into callable Go functions. Each binding registers once per resolved
// address.

func bindProcAddr(addr uintptr) getInstanceProcAddrFunc {
	var fn func(instance uintptr, name string) uintptr
	purego.RegisterFunc(&fn, addr)
	return func(instance core.Instance, name string) core.ProcAddr {
		return core.ProcAddr(fn(uintptr(instance), name))
	}
}

func bindEnumerateProc(addr core.ProcAddr) enumerateExtensionsFunc {
	var fn func(layer *byte, count *uint32, props *extensionProperties) int32
	purego.RegisterFunc(&fn, uintptr(addr))
	return func(layer *byte, count *uint32, props *extensionProperties) core.Result {
		return core.Result(fn(layer, count, props))
	}
}

func bindCreateSurfaceProc(addr core.ProcAddr) createSurfaceFunc {
	var fn func(instance uintptr, info, allocator unsafe.Pointer, surface *uint64) int32
	purego.RegisterFunc(&fn, uintptr(addr))
	return func(instance core.Instance, info, allocator unsafe.Pointer, surface *core.Surface) core.Result {
		return core.Result(fn(uintptr(instance), info, allocator, (*uint64)(surface)))
	}
}

func bindDestroySurfaceProc(addr core.ProcAddr) destroySurfaceFunc {
	var fn func(instance uintptr, surface uint64, allocator unsafe.Pointer)
	purego.RegisterFunc(&fn, uintptr(addr))
	return func(instance core.Instance, surface core.Surface, allocator unsafe.Pointer) {
		fn(uintptr(instance), uint64(surface), allocator)
	}
}
