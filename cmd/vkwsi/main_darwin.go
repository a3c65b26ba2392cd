// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"runtime"
	"unsafe"

	vk "github.com/devblok/vulkan"
	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/devblok/vkwsi/core"
	wsi "github.com/devblok/vkwsi/vulkan"
)

func init() {
	runtime.LockOSThread()
}

var applicationInfo = &vk.ApplicationInfo{
	SType:              vk.StructureTypeApplicationInfo,
	ApiVersion:         vk.MakeVersion(1, 0, 0),
	ApplicationVersion: vk.MakeVersion(1, 0, 0),
	PApplicationName:   "vkwsi\x00",
	PEngineName:        "vkwsi\x00",
}

func main() {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		log.Fatal(err)
	}
	defer sdl.Quit()

	loader := wsi.NewLoader(core.LoaderConfiguration{})
	if err := loader.LoadLibrary(""); err != nil {
		log.Fatal(err)
	}
	defer loader.UnloadLibrary()

	caps, err := wsi.Validate(loader.SupportedExtensions)
	if err != nil {
		log.Fatal(err)
	}
	log.WithField("path", caps.Preferred()).Info("driver negotiated")

	factory := wsi.NewSurfaceFactory(loader, core.SurfaceConfiguration{})

	/* Instance setup through the loader's own bootstrap */
	procAddr := loader.ProcAddr(core.NullInstance, "vkGetInstanceProcAddr")
	vk.SetGetInstanceProcAddr(unsafe.Pointer(uintptr(procAddr)))
	if err := vk.Init(); err != nil {
		log.Fatal("vk.Init(): " + err.Error())
	}

	extensions := []string{}
	for _, name := range factory.InstanceExtensions() {
		extensions = append(extensions, name+"\x00")
	}

	instanceInfo := vk.InstanceCreateInfo{
		SType:                   vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo:        applicationInfo,
		EnabledExtensionCount:   uint32(len(extensions)),
		PpEnabledExtensionNames: extensions,
	}

	var instance vk.Instance
	if err := vk.Error(vk.CreateInstance(&instanceInfo, nil, &instance)); err != nil {
		log.Fatal("vk.CreateInstance(): " + err.Error())
	}
	vk.InitInstance(instance)
	defer vk.DestroyInstance(instance, nil)

	window, err := sdl.CreateWindow("vkwsi",
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		800, 600,
		sdl.WINDOW_SHOWN)
	if err != nil {
		log.Fatal(err)
	}
	defer window.Destroy()

	info, err := window.GetWMInfo()
	if err != nil {
		log.Fatal(err)
	}
	cocoa := info.GetCocoaInfo()

	handle := core.Instance(uintptr(unsafe.Pointer(instance)))
	surface, err := factory.CreateSurface(handle, core.WindowHandle{Ptr: cocoa.Window}, nil)
	if err != nil {
		log.Fatal(err)
	}
	log.WithField("surface", surface).Info("surface created")

EventLoop:
	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch et := event.(type) {
			case *sdl.KeyboardEvent:
				if et.Keysym.Sym == sdl.K_ESCAPE {
					break EventLoop
				}
			case *sdl.QuitEvent:
				break EventLoop
			}
		}
		sdl.Delay(16)
	}

	factory.DestroySurface(handle, surface, nil)
}
