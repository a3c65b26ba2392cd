// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vulkan

import (
	"errors"
	"unsafe"

	"github.com/ebitengine/purego/objc"

	"github.com/devblok/vkwsi/core"
)

var (
	selAlloc               = objc.RegisterName("alloc")
	selRelease             = objc.RegisterName("release")
	selContentView         = objc.RegisterName("contentView")
	selBounds              = objc.RegisterName("bounds")
	selInitWithFrame       = objc.RegisterName("initWithFrame:")
	selLayer               = objc.RegisterName("layer")
	selSetLayer            = objc.RegisterName("setLayer:")
	selSetWantsLayer       = objc.RegisterName("setWantsLayer:")
	selSetAutoresizingMask = objc.RegisterName("setAutoresizingMask:")
	selAddSubview          = objc.RegisterName("addSubview:")
	selRemoveFromSuperview = objc.RegisterName("removeFromSuperview")
)

// NSAutoresizingMaskOptions
const (
	viewWidthSizable  = 1 << 1
	viewHeightSizable = 1 << 4
)

type cgPoint struct{ X, Y float64 }
type cgSize struct{ Width, Height float64 }

// cgRect mirrors CGRect for the initWithFrame: call.
type cgRect struct {
	Origin cgPoint
	Size   cgSize
}

// metalView is an NSView backed by a CAMetalLayer, attached to the
// content view of the hosting window. It comes into existence with two
// references: the alloc reference held here and the retain the view
// hierarchy takes on attach.
type metalView struct {
	view  objc.ID
	layer objc.ID
	owned bool
}

// createHostedView builds the metal view and attaches it to window,
// sized to the content view and autoresizing with it.
func createHostedView(window core.Window) (core.View, error) {
	if window == nil || window.Handle() == nil {
		return nil, errors.New("window has no native handle")
	}

	nsWindow := objc.ID(uintptr(window.Handle()))
	contentView := nsWindow.Send(selContentView)
	if contentView == 0 {
		return nil, errors.New("window has no content view")
	}
	bounds := objc.Send[cgRect](contentView, selBounds)

	view := objc.ID(objc.GetClass("NSView")).Send(selAlloc)
	view = objc.Send[objc.ID](view, selInitWithFrame, bounds)
	if view == 0 {
		return nil, errors.New("NSView initialisation failed")
	}

	layer := objc.ID(objc.GetClass("CAMetalLayer")).Send(selLayer)
	if layer == 0 {
		view.Send(selRelease)
		return nil, errors.New("CAMetalLayer is not available")
	}

	view.Send(selSetLayer, layer)
	view.Send(selSetWantsLayer, true)
	view.Send(selSetAutoresizingMask, uint64(viewWidthSizable|viewHeightSizable))
	contentView.Send(selAddSubview, view)

	return &metalView{view: view, layer: layer, owned: true}, nil
}

// Handle implements core.View.
func (v *metalView) Handle() unsafe.Pointer {
	return unsafe.Pointer(uintptr(v.view))
}

// Layer implements core.View.
func (v *metalView) Layer() unsafe.Pointer {
	return unsafe.Pointer(uintptr(v.layer))
}

// Transfer implements core.View. It drops the alloc reference, leaving
// the retain held by the window hierarchy as the only one.
func (v *metalView) Transfer() {
	if !v.owned {
		return
	}
	v.view.Send(selRelease)
	v.owned = false
}

// Destroy implements core.View. It detaches the view, dropping the
// hierarchy retain, then drops the alloc reference.
func (v *metalView) Destroy() {
	if !v.owned {
		return
	}
	v.view.Send(selRemoveFromSuperview)
	v.view.Send(selRelease)
	v.owned = false
}
