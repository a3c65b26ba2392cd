// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"errors"
	"fmt"
	"strings"
)

// package errors
var (
	// ErrAlreadyLoaded is returned by LoadLibrary when a driver is
	// already loaded for the session.
	ErrAlreadyLoaded = errors.New("vulkan driver already loaded")

	// ErrNotLoaded is returned by operations that need a loaded
	// driver while the loader state is Unloaded.
	ErrNotLoaded = errors.New("vulkan driver not loaded")

	// ErrMissingEntryPoint is returned when a loaded driver does
	// not export a required bootstrap entry point.
	ErrMissingEntryPoint = errors.New("vulkan driver entry point missing")
)

// LoadError reports that no driver library candidate could be loaded.
// It carries the last underlying loader error.
type LoadError struct {
	// Tried lists the candidate paths in resolution order.
	Tried []string

	// Err is the error from the last attempted candidate.
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("vulkan driver load failed (tried %s): %v",
		strings.Join(e.Tried, ", "), e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// UnsupportedDriverError reports a driver that lacks the extensions or
// entry points needed to create a platform surface.
type UnsupportedDriverError struct {
	// Missing names the extensions the driver does not provide.
	Missing []string
}

func (e *UnsupportedDriverError) Error() string {
	return "vulkan driver does not support " + strings.Join(e.Missing, ", ")
}

// ViewCreationError reports a failure to create the native compositing
// view; surface creation was never attempted.
type ViewCreationError struct {
	Err error
}

func (e *ViewCreationError) Error() string {
	return fmt.Sprintf("compositing view creation failed: %v", e.Err)
}

func (e *ViewCreationError) Unwrap() error {
	return e.Err
}

// DriverError carries a non-success native result code returned by a
// driver call.
type DriverError struct {
	// Call is the driver entry point that failed.
	Call string

	// Code is the native result code.
	Code Result
}

func (e *DriverError) Error() string {
	return fmt.Sprintf("%s: %s", e.Call, e.Code)
}
