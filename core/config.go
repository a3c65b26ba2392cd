// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import "github.com/sirupsen/logrus"

// DefaultEnvironmentKey is the environment variable consulted for a
// driver library override when no explicit path is configured.
const DefaultEnvironmentKey = "VULKAN_LIBRARY"

// Configuration bundles the adapter configuration.
type Configuration struct {
	Loader  LoaderConfiguration
	Surface SurfaceConfiguration
}

// LoaderConfiguration is used to configure driver library resolution.
type LoaderConfiguration struct {
	// LibraryPath explicitly selects the driver library. Takes
	// precedence over the environment override and the platform
	// defaults, but not over a path given to LoadLibrary directly.
	LibraryPath string

	// EnvironmentKey names the environment variable consulted when
	// no path is set. Defaults to DefaultEnvironmentKey.
	EnvironmentKey string

	// Logger receives resolution and lifecycle logs. Defaults to
	// the logrus standard logger.
	Logger logrus.FieldLogger
}

// SurfaceConfiguration is used to configure the surface factory.
type SurfaceConfiguration struct {
	// Logger receives surface lifecycle logs. Defaults to the
	// logrus standard logger.
	Logger logrus.FieldLogger
}
