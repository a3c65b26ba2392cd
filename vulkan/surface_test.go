// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vulkan

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/devblok/vkwsi/core"
)

// fakeLoader satisfies core.Loader for factory tests and records the
// entry points the factory asks for.
type fakeLoader struct {
	state   core.LoadState
	procs   map[string]core.ProcAddr
	queried []string
}

func (f *fakeLoader) LoadLibrary(path string) error { return nil }
func (f *fakeLoader) UnloadLibrary()                {}

func (f *fakeLoader) State() core.LoadState {
	return f.state
}

func (f *fakeLoader) ProcAddr(instance core.Instance, name string) core.ProcAddr {
	f.queried = append(f.queried, name)
	return f.procs[name]
}

func (f *fakeLoader) SupportedExtensions() ([]string, error) {
	return nil, nil
}

type fakeView struct {
	handle    unsafe.Pointer
	layer     unsafe.Pointer
	transfers int
	destroys  int
}

func (v *fakeView) Handle() unsafe.Pointer { return v.handle }
func (v *fakeView) Layer() unsafe.Pointer  { return v.layer }
func (v *fakeView) Transfer()              { v.transfers++ }
func (v *fakeView) Destroy()               { v.destroys++ }

// surfaceHarness wires a factory with recording fakes behind the
// native seams.
type surfaceHarness struct {
	factory *SurfaceFactory
	loader  *fakeLoader
	view    *fakeView

	viewErr      error
	createResult core.Result
	createInfos  []unsafe.Pointer
	destroyed    []core.Surface
}

func newSurfaceHarness(t *testing.T, loader *fakeLoader) *surfaceHarness {
	t.Helper()

	var b [2]byte
	h := &surfaceHarness{
		loader: loader,
		view: &fakeView{
			handle: unsafe.Pointer(&b[0]),
			layer:  unsafe.Pointer(&b[1]),
		},
		createResult: core.Success,
	}
	h.factory = NewSurfaceFactory(loader, core.SurfaceConfiguration{Logger: quietLogger()})

	origCreate := bindCreateSurface
	origDestroy := bindDestroySurface
	origView := newHostedView

	bindCreateSurface = func(addr core.ProcAddr) createSurfaceFunc {
		return func(instance core.Instance, info, allocator unsafe.Pointer, surface *core.Surface) core.Result {
			h.createInfos = append(h.createInfos, info)
			if h.createResult == core.Success {
				*surface = core.Surface(0x1234)
			}
			return h.createResult
		}
	}
	bindDestroySurface = func(addr core.ProcAddr) destroySurfaceFunc {
		return func(instance core.Instance, surface core.Surface, allocator unsafe.Pointer) {
			h.destroyed = append(h.destroyed, surface)
		}
	}
	newHostedView = func(window core.Window) (core.View, error) {
		if h.viewErr != nil {
			return nil, h.viewErr
		}
		return h.view, nil
	}

	t.Cleanup(func() {
		bindCreateSurface = origCreate
		bindDestroySurface = origDestroy
		newHostedView = origView
	})
	return h
}

func loadedLoader(procs ...string) *fakeLoader {
	l := &fakeLoader{state: core.LoadStateDynamic, procs: map[string]core.ProcAddr{}}
	for i, name := range procs {
		l.procs[name] = core.ProcAddr(i + 1)
	}
	return l
}

func testWindow() core.Window {
	var w byte
	return core.WindowHandle{Ptr: unsafe.Pointer(&w)}
}

func TestCreateSurfaceNotLoaded(t *testing.T) {
	loader := &fakeLoader{state: core.LoadStateUnloaded}
	h := newSurfaceHarness(t, loader)

	_, err := h.factory.CreateSurface(core.NullInstance, testWindow(), nil)
	if !errors.Is(err, core.ErrNotLoaded) {
		t.Fatalf("got %v, want ErrNotLoaded", err)
	}
	if len(loader.queried) != 0 {
		t.Errorf("unloaded factory resolved procs: %v", loader.queried)
	}
}

func TestCreateSurfaceNoCreationProcs(t *testing.T) {
	loader := loadedLoader()
	h := newSurfaceHarness(t, loader)

	_, err := h.factory.CreateSurface(core.NullInstance, testWindow(), nil)

	var unsupported *core.UnsupportedDriverError
	if !errors.As(err, &unsupported) {
		t.Fatalf("got %v, want UnsupportedDriverError", err)
	}
	if len(unsupported.Missing) != 2 {
		t.Errorf("missing: got %v", unsupported.Missing)
	}
	want := []string{procCreateMetalSurface, procCreateMacOSSurface}
	if len(loader.queried) != 2 || loader.queried[0] != want[0] || loader.queried[1] != want[1] {
		t.Errorf("resolution order: got %v, want %v", loader.queried, want)
	}
}

func TestCreateSurfaceMetalPath(t *testing.T) {
	loader := loadedLoader(procCreateMetalSurface, procCreateMacOSSurface)
	h := newSurfaceHarness(t, loader)

	surface, err := h.factory.CreateSurface(core.Instance(7), testWindow(), nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if surface != core.Surface(0x1234) {
		t.Errorf("surface: got %#x", surface)
	}

	// Metal wins, the legacy proc is never resolved.
	if len(loader.queried) != 1 || loader.queried[0] != procCreateMetalSurface {
		t.Errorf("resolved procs: got %v", loader.queried)
	}

	if len(h.createInfos) != 1 {
		t.Fatalf("create calls: got %d", len(h.createInfos))
	}
	info := (*metalSurfaceCreateInfo)(h.createInfos[0])
	if info.sType != structureTypeMetalSurfaceCreateInfo {
		t.Errorf("sType: got %d", info.sType)
	}
	if info.layer != h.view.layer {
		t.Error("create info does not carry the view layer")
	}

	if h.view.transfers != 1 || h.view.destroys != 0 {
		t.Errorf("view ownership: transfers=%d destroys=%d", h.view.transfers, h.view.destroys)
	}
}

func TestCreateSurfaceLegacyPath(t *testing.T) {
	loader := loadedLoader(procCreateMacOSSurface)
	h := newSurfaceHarness(t, loader)

	if _, err := h.factory.CreateSurface(core.Instance(7), testWindow(), nil); err != nil {
		t.Fatalf("create: %v", err)
	}

	if len(h.createInfos) != 1 {
		t.Fatalf("create calls: got %d", len(h.createInfos))
	}
	info := (*macOSSurfaceCreateInfo)(h.createInfos[0])
	if info.sType != structureTypeMacOSSurfaceCreateInfo {
		t.Errorf("sType: got %d", info.sType)
	}
	if info.view != h.view.handle {
		t.Error("create info does not carry the view handle")
	}
}

func TestCreateSurfaceViewFailure(t *testing.T) {
	loader := loadedLoader(procCreateMetalSurface)
	h := newSurfaceHarness(t, loader)
	h.viewErr = errors.New("no content view")

	_, err := h.factory.CreateSurface(core.NullInstance, testWindow(), nil)

	var viewErr *core.ViewCreationError
	if !errors.As(err, &viewErr) {
		t.Fatalf("got %v, want ViewCreationError", err)
	}
	if len(h.createInfos) != 0 {
		t.Error("surface creation attempted after view failure")
	}
}

func TestCreateSurfaceDriverFailureDestroysViewOnce(t *testing.T) {
	loader := loadedLoader(procCreateMetalSurface)
	h := newSurfaceHarness(t, loader)
	h.createResult = core.ErrorNativeWindowInUse

	surface, err := h.factory.CreateSurface(core.NullInstance, testWindow(), nil)

	var driverErr *core.DriverError
	if !errors.As(err, &driverErr) {
		t.Fatalf("got %v, want DriverError", err)
	}
	if driverErr.Code != core.ErrorNativeWindowInUse {
		t.Errorf("code: got %s", driverErr.Code)
	}
	if surface != core.NullSurface {
		t.Errorf("surface on failure: got %#x", surface)
	}
	if h.view.destroys != 1 {
		t.Errorf("view destroys: got %d, want 1", h.view.destroys)
	}
	if h.view.transfers != 0 {
		t.Errorf("view transfers on failure: got %d", h.view.transfers)
	}
}

func TestDestroySurface(t *testing.T) {
	loader := loadedLoader(procDestroySurface)
	h := newSurfaceHarness(t, loader)

	h.factory.DestroySurface(core.Instance(7), core.Surface(0x1234), nil)
	if len(h.destroyed) != 1 || h.destroyed[0] != core.Surface(0x1234) {
		t.Errorf("destroyed surfaces: got %v", h.destroyed)
	}
}

func TestDestroySurfaceUnloaded(t *testing.T) {
	loader := &fakeLoader{state: core.LoadStateUnloaded}
	h := newSurfaceHarness(t, loader)

	h.factory.DestroySurface(core.Instance(7), core.Surface(0x1234), nil)
	if len(loader.queried) != 0 {
		t.Errorf("unloaded destroy resolved procs: %v", loader.queried)
	}
	if len(h.destroyed) != 0 {
		t.Errorf("unloaded destroy reached the driver: %v", h.destroyed)
	}
}

func TestDestroySurfaceNullHandle(t *testing.T) {
	loader := loadedLoader(procDestroySurface)
	h := newSurfaceHarness(t, loader)

	h.factory.DestroySurface(core.Instance(7), core.NullSurface, nil)
	if len(h.destroyed) != 0 {
		t.Errorf("null surface reached the driver: %v", h.destroyed)
	}
}

func TestDestroySurfaceMissingProc(t *testing.T) {
	loader := loadedLoader()
	h := newSurfaceHarness(t, loader)

	// Nothing to assert beyond not crashing and not calling through.
	h.factory.DestroySurface(core.Instance(7), core.Surface(0x1234), nil)
	if len(h.destroyed) != 0 {
		t.Errorf("missing proc reached the driver: %v", h.destroyed)
	}
}

func TestInstanceExtensionsFixed(t *testing.T) {
	for _, state := range []core.LoadState{
		core.LoadStateUnloaded,
		core.LoadStateStatic,
		core.LoadStateDynamic,
	} {
		loader := &fakeLoader{state: state}
		h := newSurfaceHarness(t, loader)

		names := h.factory.InstanceExtensions()
		if len(names) != 2 || names[0] != core.ExtSurface || names[1] != core.ExtMetalSurface {
			t.Errorf("state %s: got %v", state, names)
		}
	}
}
