// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

//go:build !darwin

package vulkan

import (
	"errors"

	"github.com/devblok/vkwsi/core"
)

// The compositing view binds to AppKit and Metal. On other platforms
// the loader and negotiation still build and run, surface creation
// reports the missing view support.
func createHostedView(window core.Window) (core.View, error) {
	return nil, errors.New("metal compositing views require darwin")
}
