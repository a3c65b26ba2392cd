// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

//go:build windows

package vulkan

import (
	"golang.org/x/sys/windows"
)

func dylibOpen(path string) (uintptr, error) {
	handle, err := windows.LoadLibrary(path)
	if err != nil {
		return 0, err
	}
	return uintptr(handle), nil
}

func dylibClose(handle uintptr) error {
	if handle == 0 {
		return nil
	}
	return windows.FreeLibrary(windows.Handle(handle))
}

func dylibBootstrap(handle uintptr) (getInstanceProcAddrFunc, error) {
	proc, err := windows.GetProcAddress(windows.Handle(handle), procGetInstanceProcAddr)
	if err != nil {
		return nil, err
	}
	return bindProcAddr(proc), nil
}

// dylibStaticBootstrap looks the bootstrap up in the executable image,
// covering a statically linked driver. No handle is held in that case.
func dylibStaticBootstrap() (getInstanceProcAddrFunc, error) {
	module, err := windows.GetModuleHandle(nil)
	if err != nil {
		return nil, err
	}
	proc, err := windows.GetProcAddress(module, procGetInstanceProcAddr)
	if err != nil {
		return nil, err
	}
	return bindProcAddr(proc), nil
}
