// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vulkan

// Default driver library candidates, tried in order.
var defaultLibraryNames = []string{
	"vulkan-1.dll",
}
