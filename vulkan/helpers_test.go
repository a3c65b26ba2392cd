// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vulkan

import (
	"errors"
	"io"
	"testing"
	"unsafe"

	"github.com/sirupsen/logrus"

	"github.com/devblok/vkwsi/core"
)

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// fakeDriver stands in for the dynamic loading layer and the driver
// behind it. installFakeDriver swaps the package seams for the
// duration of one test.
type fakeDriver struct {
	// paths that dlopen succeeds for
	available map[string]bool

	// procs resolvable through the bootstrap, beyond the
	// enumeration entry point itself
	static           bool
	missingBootstrap bool
	missingEnumerate bool

	extensions      []string
	enumerateResult core.Result

	nextHandle uintptr
	opened     []string
	closed     []uintptr
}

func (d *fakeDriver) open(path string) (uintptr, error) {
	if !d.available[path] {
		return 0, errors.New("image not found: " + path)
	}
	d.nextHandle++
	d.opened = append(d.opened, path)
	return d.nextHandle, nil
}

func (d *fakeDriver) close(handle uintptr) error {
	d.closed = append(d.closed, handle)
	return nil
}

func (d *fakeDriver) procAddr(instance core.Instance, name string) core.ProcAddr {
	if name == procEnumerateExtensions && !d.missingEnumerate {
		return 1
	}
	return 0
}

func (d *fakeDriver) bootstrap(handle uintptr) (getInstanceProcAddrFunc, error) {
	if d.missingBootstrap {
		return nil, errors.New("symbol not found: " + procGetInstanceProcAddr)
	}
	return d.procAddr, nil
}

func (d *fakeDriver) staticBootstrap() (getInstanceProcAddrFunc, error) {
	if !d.static {
		return nil, errors.New(procGetInstanceProcAddr + " not present in process image")
	}
	return d.procAddr, nil
}

func (d *fakeDriver) enumerate(layer *byte, count *uint32, props *extensionProperties) core.Result {
	if d.enumerateResult != core.Success {
		return d.enumerateResult
	}
	if props == nil {
		*count = uint32(len(d.extensions))
		return core.Success
	}
	out := unsafe.Slice(props, *count)
	for i := range out {
		out[i] = extensionProperties{}
		copy(out[i].extensionName[:], d.extensions[i])
	}
	return core.Success
}

func installFakeDriver(t *testing.T, d *fakeDriver) {
	t.Helper()

	origOpen := dlOpen
	origClose := dlClose
	origBootstrap := dlBootstrap
	origStatic := dlStaticBootstrap
	origBind := bindEnumerate

	dlOpen = d.open
	dlClose = d.close
	dlBootstrap = d.bootstrap
	dlStaticBootstrap = d.staticBootstrap
	bindEnumerate = func(addr core.ProcAddr) enumerateExtensionsFunc {
		return d.enumerate
	}

	t.Cleanup(func() {
		dlOpen = origOpen
		dlClose = origClose
		dlBootstrap = origBootstrap
		dlStaticBootstrap = origStatic
		bindEnumerate = origBind
	})
}

// swapDefaultLibraryNames pins the candidate list so tests do not
// depend on the build platform.
func swapDefaultLibraryNames(t *testing.T, names []string) {
	t.Helper()
	orig := defaultLibraryNames
	defaultLibraryNames = names
	t.Cleanup(func() {
		defaultLibraryNames = orig
	})
}

func newTestLoader() *Loader {
	return NewLoader(core.LoaderConfiguration{Logger: quietLogger()})
}
