// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vulkan

import "github.com/devblok/vkwsi/core"

// Validate negotiates the surface capabilities of the driver behind
// enumerate. The generic surface extension is required, as is at least
// one of the two platform creation paths; anything less fails with an
// UnsupportedDriverError naming what is absent. The result is
// recomputed on every call and never cached.
func Validate(enumerate func() ([]string, error)) (core.Capabilities, error) {
	names, err := enumerate()
	if err != nil {
		return core.Capabilities{}, err
	}

	caps := scanCapabilities(names)
	if !caps.Surface {
		return caps, &core.UnsupportedDriverError{
			Missing: []string{core.ExtSurface},
		}
	}
	if !caps.Metal && !caps.MacOS {
		return caps, &core.UnsupportedDriverError{
			Missing: []string{core.ExtMetalSurface, core.ExtMacOSSurface},
		}
	}
	return caps, nil
}

// scanCapabilities does an exact-string linear scan for the three
// extension names of interest.
func scanCapabilities(names []string) core.Capabilities {
	var caps core.Capabilities
	for _, name := range names {
		switch name {
		case core.ExtSurface:
			caps.Surface = true
		case core.ExtMetalSurface:
			caps.Metal = true
		case core.ExtMacOSSurface:
			caps.MacOS = true
		}
	}
	return caps
}
