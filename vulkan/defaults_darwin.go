// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vulkan

// Default driver library candidates, tried in order. The Khronos
// loader names come first, MoltenVK directly as a fallback.
var defaultLibraryNames = []string{
	"vulkan.framework/vulkan",
	"libvulkan.1.dylib",
	"libvulkan.dylib",
	"MoltenVK.framework/MoltenVK",
	"libMoltenVK.dylib",
}
