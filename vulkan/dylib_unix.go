// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

//go:build !windows

package vulkan

import (
	"fmt"

	"github.com/ebitengine/purego"
)

func dylibOpen(path string) (uintptr, error) {
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_LOCAL)
	if err != nil {
		return 0, err
	}
	return handle, nil
}

func dylibClose(handle uintptr) error {
	if handle == 0 {
		return nil
	}
	return purego.Dlclose(handle)
}

func dylibBootstrap(handle uintptr) (getInstanceProcAddrFunc, error) {
	sym, err := purego.Dlsym(handle, procGetInstanceProcAddr)
	if err != nil {
		return nil, err
	}
	return bindProcAddr(sym), nil
}

// dylibStaticBootstrap looks the bootstrap up in the process image,
// covering a statically linked driver. No handle is held in that case.
func dylibStaticBootstrap() (getInstanceProcAddrFunc, error) {
	sym, err := purego.Dlsym(purego.RTLD_DEFAULT, procGetInstanceProcAddr)
	if err != nil {
		return nil, err
	}
	if sym == 0 {
		return nil, fmt.Errorf("%s not present in process image", procGetInstanceProcAddr)
	}
	return bindProcAddr(sym), nil
}
