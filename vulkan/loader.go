// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package vulkan implements the window system integration adapter for
// the Vulkan API. It loads the driver library, negotiates the surface
// creation capabilities the driver supports and creates renderable
// surfaces on native windows.
package vulkan

import (
	"bytes"
	"fmt"

	"github.com/gobuffalo/envy"
	"github.com/sirupsen/logrus"

	"github.com/devblok/vkwsi/core"
)

// Bootstrap entry point names fixed by the Vulkan loader contract.
const (
	procGetInstanceProcAddr = "vkGetInstanceProcAddr"
	procEnumerateExtensions = "vkEnumerateInstanceExtensionProperties"
)

const maxExtensionNameSize = 256

// extensionProperties mirrors VkExtensionProperties.
type extensionProperties struct {
	extensionName [maxExtensionNameSize]byte
	specVersion   uint32
}

// getInstanceProcAddrFunc mirrors vkGetInstanceProcAddr.
type getInstanceProcAddrFunc func(instance core.Instance, name string) core.ProcAddr

// enumerateExtensionsFunc mirrors vkEnumerateInstanceExtensionProperties.
type enumerateExtensionsFunc func(layer *byte, count *uint32, props *extensionProperties) core.Result

// Native seams of the loader. Tests substitute these to drive the
// resolution logic without a driver.
var (
	dlOpen            = dylibOpen
	dlClose           = dylibClose
	dlBootstrap       = dylibBootstrap
	dlStaticBootstrap = dylibStaticBootstrap
	bindEnumerate     = bindEnumerateProc
)

// NewLoader creates an unloaded driver loader.
func NewLoader(cfg core.LoaderConfiguration) *Loader {
	if cfg.EnvironmentKey == "" {
		cfg.EnvironmentKey = core.DefaultEnvironmentKey
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}
	return &Loader{cfg: cfg, log: cfg.Logger}
}

// Loader owns the driver library of one device session. It is not safe
// for concurrent use; the owning windowing thread must serialize all
// calls, there is no locking discipline built in.
type Loader struct {
	cfg core.LoaderConfiguration
	log logrus.FieldLogger

	state  core.LoadState
	handle uintptr
	path   string

	procAddr  getInstanceProcAddrFunc
	enumerate enumerateExtensionsFunc
}

// LoadLibrary implements core.Loader. Resolution order: the path
// argument, the configured LibraryPath, the environment override, a
// static lookup in the process image, then the platform default
// library names. A failure leaves the loader unloaded.
func (l *Loader) LoadLibrary(path string) error {
	if l.state != core.LoadStateUnloaded {
		return core.ErrAlreadyLoaded
	}

	if path == "" {
		path = l.cfg.LibraryPath
	}
	if path == "" {
		path = envy.Get(l.cfg.EnvironmentKey, "")
	}

	switch {
	case path != "":
		handle, err := dlOpen(path)
		if err != nil {
			return &core.LoadError{Tried: []string{path}, Err: err}
		}
		l.handle, l.path = handle, path
		l.state = core.LoadStateDynamic
	default:
		if procAddr, err := dlStaticBootstrap(); err == nil {
			l.procAddr = procAddr
			l.state = core.LoadStateStatic
			l.log.Debug("vulkan bootstrap found in process image")
			break
		}
		var (
			tried   []string
			lastErr error
		)
		for _, candidate := range defaultLibraryNames {
			handle, err := dlOpen(candidate)
			if err != nil {
				l.log.WithField("library", candidate).Debug("vulkan driver candidate rejected")
				tried = append(tried, candidate)
				lastErr = err
				continue
			}
			l.handle, l.path = handle, candidate
			l.state = core.LoadStateDynamic
			break
		}
		if l.state == core.LoadStateUnloaded {
			return &core.LoadError{Tried: tried, Err: lastErr}
		}
	}

	if l.state == core.LoadStateDynamic {
		procAddr, err := dlBootstrap(l.handle)
		if err != nil {
			l.UnloadLibrary()
			return fmt.Errorf("%w: %s: %v", core.ErrMissingEntryPoint, procGetInstanceProcAddr, err)
		}
		l.procAddr = procAddr
	}

	// The enumeration entry point resolves through the bootstrap
	// with a null instance.
	addr := l.procAddr(core.NullInstance, procEnumerateExtensions)
	if addr == 0 {
		l.UnloadLibrary()
		return fmt.Errorf("%w: %s", core.ErrMissingEntryPoint, procEnumerateExtensions)
	}
	l.enumerate = bindEnumerate(addr)

	l.log.WithFields(logrus.Fields{
		"state":   l.state,
		"library": l.path,
	}).Info("vulkan driver loaded")
	return nil
}

// UnloadLibrary implements core.Loader. A static load holds no handle,
// so only the state is cleared. Idempotent, never fails.
func (l *Loader) UnloadLibrary() {
	switch l.state {
	case core.LoadStateUnloaded:
		return
	case core.LoadStateDynamic:
		if err := dlClose(l.handle); err != nil {
			l.log.WithError(err).Warn("vulkan driver close failed")
		}
	}
	l.handle = 0
	l.path = ""
	l.procAddr = nil
	l.enumerate = nil
	l.state = core.LoadStateUnloaded
	l.log.Debug("vulkan driver unloaded")
}

// State implements core.Loader.
func (l *Loader) State() core.LoadState {
	return l.state
}

// Path returns the library path in use, empty for static and unloaded
// states.
func (l *Loader) Path() string {
	return l.path
}

// ProcAddr implements core.Loader.
func (l *Loader) ProcAddr(instance core.Instance, name string) core.ProcAddr {
	if l.state == core.LoadStateUnloaded {
		return 0
	}
	return l.procAddr(instance, name)
}

// SupportedExtensions implements core.Loader with the usual two-call
// count then fill enumeration.
func (l *Loader) SupportedExtensions() ([]string, error) {
	if l.state == core.LoadStateUnloaded {
		return nil, core.ErrNotLoaded
	}

	var count uint32
	if res := l.enumerate(nil, &count, nil); res != core.Success {
		return nil, &core.DriverError{Call: procEnumerateExtensions, Code: res}
	}
	if count == 0 {
		return nil, nil
	}

	props := make([]extensionProperties, count)
	if res := l.enumerate(nil, &count, &props[0]); res != core.Success {
		return nil, &core.DriverError{Call: procEnumerateExtensions, Code: res}
	}

	names := make([]string, 0, count)
	for i := range props[:count] {
		names = append(names, cstring(props[i].extensionName[:]))
	}
	return names, nil
}

// cstring returns the string up to the first NUL.
func cstring(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}
