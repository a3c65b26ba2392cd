// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

//go:build !darwin && !windows

package vulkan

// Default driver library candidates, tried in order.
var defaultLibraryNames = []string{
	"libvulkan.so.1",
	"libvulkan.so",
}
