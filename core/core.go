// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package core defines the contracts of the Vulkan window system
// integration adapter. A Loader locates the Vulkan driver and exposes
// its bootstrap entry points, a SurfaceSource turns a native window
// into a renderable surface through them. Implementations live in the
// vulkan package, the interfaces here are what the bootstrap layer of
// an engine consumes.
package core

import "unsafe"

// Names of the instance extensions the adapter negotiates. MetalSurface
// is the modern compositing-layer path, MacOSSurface the legacy
// MoltenVK path. Drivers must advertise ExtSurface plus at least one
// of the other two.
const (
	ExtSurface      = "VK_KHR_surface"
	ExtMetalSurface = "VK_EXT_metal_surface"
	ExtMacOSSurface = "VK_MVK_macos_surface"
)

// Instance is a Vulkan instance handle (VkInstance). A null instance
// is valid for the global bootstrap queries.
type Instance uintptr

// NullInstance is the null VkInstance handle.
const NullInstance Instance = 0

// Surface is a Vulkan surface handle (VkSurfaceKHR). It is a
// non-dispatchable 64-bit handle owned by the caller once created.
type Surface uint64

// NullSurface is the null VkSurfaceKHR handle.
const NullSurface Surface = 0

// ProcAddr is a raw driver entry point address as returned by
// vkGetInstanceProcAddr. Zero means the entry point is not exported.
type ProcAddr uintptr

// LoadState describes how the driver library was obtained.
// Entry points are valid exactly while the state is not Unloaded.
type LoadState int

const (
	// LoadStateUnloaded means no driver is loaded and no entry
	// point may be called.
	LoadStateUnloaded LoadState = iota

	// LoadStateStatic means the bootstrap entry point was found in
	// the process image itself; there is no library handle to close.
	LoadStateStatic

	// LoadStateDynamic means a driver library was dlopened and its
	// handle is held until UnloadLibrary.
	LoadStateDynamic
)

func (s LoadState) String() string {
	switch s {
	case LoadStateUnloaded:
		return "unloaded"
	case LoadStateStatic:
		return "static"
	case LoadStateDynamic:
		return "dynamic"
	}
	return "unknown"
}

// SurfacePath identifies which of the two platform surface creation
// paths is in use.
type SurfacePath int

const (
	// SurfacePathNone means no creation path is available.
	SurfacePathNone SurfacePath = iota

	// SurfacePathMetal creates the surface from the view's
	// compositing layer (VK_EXT_metal_surface).
	SurfacePathMetal

	// SurfacePathMacOS creates the surface from the view itself
	// (VK_MVK_macos_surface, legacy).
	SurfacePathMacOS
)

func (p SurfacePath) String() string {
	switch p {
	case SurfacePathMetal:
		return ExtMetalSurface
	case SurfacePathMacOS:
		return ExtMacOSSurface
	}
	return "none"
}

// Capabilities is the outcome of a driver capability negotiation.
// It is transient, recomputed on every Validate call and never cached.
type Capabilities struct {
	Surface bool
	Metal   bool
	MacOS   bool
}

// Preferred returns the creation path to use. The compositing-layer
// path wins by convention when a driver advertises both, but both
// remain valid choices for the caller.
func (c Capabilities) Preferred() SurfacePath {
	switch {
	case c.Metal:
		return SurfacePathMetal
	case c.MacOS:
		return SurfacePathMacOS
	}
	return SurfacePathNone
}

// Loader locates the Vulkan driver library and exposes its bootstrap
// entry points. A Loader belongs to a single device session and must
// be confined to one thread; it does no locking of its own.
type Loader interface {
	// LoadLibrary resolves and loads the driver. An empty path lets
	// the loader fall back to the configured override, a static
	// process lookup and finally the platform default names.
	LoadLibrary(path string) error

	// UnloadLibrary releases the driver library. It is idempotent
	// and never fails, including when nothing was loaded.
	UnloadLibrary()

	// State reports how the driver was obtained.
	State() LoadState

	// ProcAddr resolves an entry point through the driver
	// bootstrap. It returns zero when the loader is unloaded or the
	// driver does not export the name.
	ProcAddr(instance Instance, name string) ProcAddr

	// SupportedExtensions enumerates the instance extensions the
	// driver supports globally, queried with a null instance.
	SupportedExtensions() ([]string, error)
}

// SurfaceSource creates and destroys renderable surfaces bound to
// native windows.
type SurfaceSource interface {
	// CreateSurface attaches a compositing view to window and binds
	// it to instance. The allocator pointer is passed through to
	// the driver untouched and may be nil.
	CreateSurface(instance Instance, window Window, allocator unsafe.Pointer) (Surface, error)

	// DestroySurface destroys a surface previously returned by
	// CreateSurface. A no-op when the loader is unloaded.
	DestroySurface(instance Instance, surface Surface, allocator unsafe.Pointer)

	// InstanceExtensions returns the fixed, ordered extension names
	// a caller should request when creating an instance. The list
	// is advisory and independent of loader state.
	InstanceExtensions() []string
}

// Window is a native window that can host a compositing view. On
// darwin the handle is an NSWindow pointer.
type Window interface {
	Handle() unsafe.Pointer
}

// View is a native compositing view created for a window. It starts
// out owned by its creator; exactly one of Transfer or Destroy must be
// called to settle ownership.
type View interface {
	// Handle returns the native view pointer.
	Handle() unsafe.Pointer

	// Layer returns the compositing layer pointer backing the view.
	Layer() unsafe.Pointer

	// Transfer relinquishes the creator's reference, leaving the
	// window hierarchy as the sole owner for the rest of the
	// window's lifetime.
	Transfer()

	// Destroy detaches the view from the window and releases it.
	Destroy()
}

// WindowHandle wraps a raw native window pointer as a Window.
type WindowHandle struct {
	Ptr unsafe.Pointer
}

// Handle implements Window.
func (w WindowHandle) Handle() unsafe.Pointer {
	return w.Ptr
}
