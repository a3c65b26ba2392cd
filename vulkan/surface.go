// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vulkan

import (
	"unsafe"

	"github.com/sirupsen/logrus"

	"github.com/devblok/vkwsi/core"
)

// Instance level entry points of the two creation paths and the
// generic destroy routine.
const (
	procCreateMetalSurface = "vkCreateMetalSurfaceEXT"
	procCreateMacOSSurface = "vkCreateMacOSSurfaceMVK"
	procDestroySurface     = "vkDestroySurfaceKHR"
)

// VkStructureType tags of the two create info records.
const (
	structureTypeMetalSurfaceCreateInfo uint32 = 1000217000
	structureTypeMacOSSurfaceCreateInfo uint32 = 1000123000
)

// metalSurfaceCreateInfo mirrors VkMetalSurfaceCreateInfoEXT.
type metalSurfaceCreateInfo struct {
	sType uint32
	pNext unsafe.Pointer
	flags uint32
	layer unsafe.Pointer
}

// macOSSurfaceCreateInfo mirrors VkMacOSSurfaceCreateInfoMVK.
type macOSSurfaceCreateInfo struct {
	sType uint32
	pNext unsafe.Pointer
	flags uint32
	view  unsafe.Pointer
}

// createSurfaceFunc is the shared shape of the two creation entry
// points, the create info record differs per path.
type createSurfaceFunc func(instance core.Instance, info, allocator unsafe.Pointer, surface *core.Surface) core.Result

// destroySurfaceFunc mirrors vkDestroySurfaceKHR.
type destroySurfaceFunc func(instance core.Instance, surface core.Surface, allocator unsafe.Pointer)

// creationPath couples a resolved creation function with the builder
// of its create info record, so the choice between the two paths is
// made once and carried as a value.
type creationPath struct {
	kind   core.SurfacePath
	proc   string
	create createSurfaceFunc
	info   func(view core.View) unsafe.Pointer
}

func metalCreateInfo(view core.View) unsafe.Pointer {
	return unsafe.Pointer(&metalSurfaceCreateInfo{
		sType: structureTypeMetalSurfaceCreateInfo,
		layer: view.Layer(),
	})
}

func macOSCreateInfo(view core.View) unsafe.Pointer {
	return unsafe.Pointer(&macOSSurfaceCreateInfo{
		sType: structureTypeMacOSSurfaceCreateInfo,
		view:  view.Handle(),
	})
}

// Native seams of the factory. Tests substitute these to drive the
// creation logic without a driver or a window server.
var (
	bindCreateSurface  = bindCreateSurfaceProc
	bindDestroySurface = bindDestroySurfaceProc
	newHostedView      = createHostedView
)

// NewSurfaceFactory creates a surface factory bound to a loader. A
// successfully loaded driver is a precondition for CreateSurface but
// not for construction.
func NewSurfaceFactory(loader core.Loader, cfg core.SurfaceConfiguration) *SurfaceFactory {
	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}
	return &SurfaceFactory{loader: loader, log: cfg.Logger}
}

// SurfaceFactory creates and destroys platform surfaces through the
// loader's entry points. Like the loader it must be confined to the
// windowing thread.
type SurfaceFactory struct {
	loader core.Loader
	log    logrus.FieldLogger
}

// resolveCreationPath resolves the creation entry points at instance
// level, independent of the global extension advert: a driver may list
// an extension string without exporting its function. The
// compositing-layer path is preferred.
func (f *SurfaceFactory) resolveCreationPath(instance core.Instance) (creationPath, error) {
	if addr := f.loader.ProcAddr(instance, procCreateMetalSurface); addr != 0 {
		return creationPath{
			kind:   core.SurfacePathMetal,
			proc:   procCreateMetalSurface,
			create: bindCreateSurface(addr),
			info:   metalCreateInfo,
		}, nil
	}
	if addr := f.loader.ProcAddr(instance, procCreateMacOSSurface); addr != 0 {
		return creationPath{
			kind:   core.SurfacePathMacOS,
			proc:   procCreateMacOSSurface,
			create: bindCreateSurface(addr),
			info:   macOSCreateInfo,
		}, nil
	}
	return creationPath{}, &core.UnsupportedDriverError{
		Missing: []string{core.ExtMetalSurface, core.ExtMacOSSurface},
	}
}

// CreateSurface implements core.SurfaceSource. On success the hosted
// view belongs to the window and the returned surface to the caller.
// On any failure after view creation the view is destroyed before
// returning; no retry is attempted.
func (f *SurfaceFactory) CreateSurface(instance core.Instance, window core.Window, allocator unsafe.Pointer) (core.Surface, error) {
	if f.loader.State() == core.LoadStateUnloaded {
		return core.NullSurface, core.ErrNotLoaded
	}

	path, err := f.resolveCreationPath(instance)
	if err != nil {
		return core.NullSurface, err
	}

	view, err := newHostedView(window)
	if err != nil {
		return core.NullSurface, &core.ViewCreationError{Err: err}
	}

	var surface core.Surface
	if res := path.create(instance, path.info(view), allocator, &surface); res != core.Success {
		view.Destroy()
		return core.NullSurface, &core.DriverError{Call: path.proc, Code: res}
	}

	view.Transfer()
	f.log.WithFields(logrus.Fields{
		"path":    path.kind,
		"surface": surface,
	}).Debug("vulkan surface created")
	return surface, nil
}

// DestroySurface implements core.SurfaceSource through the generic
// vkDestroySurfaceKHR routine. The hosted view is not touched: after a
// successful CreateSurface it is owned by the window and lives until
// the window goes away.
func (f *SurfaceFactory) DestroySurface(instance core.Instance, surface core.Surface, allocator unsafe.Pointer) {
	if f.loader.State() == core.LoadStateUnloaded {
		return
	}
	if surface == core.NullSurface {
		return
	}

	addr := f.loader.ProcAddr(instance, procDestroySurface)
	if addr == 0 {
		f.log.WithField("proc", procDestroySurface).Warn("vulkan surface destroy entry point missing")
		return
	}
	bindDestroySurface(addr)(instance, surface, allocator)
}

// InstanceExtensions implements core.SurfaceSource. The list always
// names the compositing-layer extension even though a driver might
// only implement the legacy path: it is the set a caller should
// request, whether each name is honored is settled later by
// negotiation and instance level resolution.
func (f *SurfaceFactory) InstanceExtensions() []string {
	return []string{core.ExtSurface, core.ExtMetalSurface}
}
