// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"encoding/json"
	"flag"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/devblok/vkwsi/core"
	"github.com/devblok/vkwsi/vulkan"
)

var (
	libraryPath = flag.String("library", "", "explicit driver library path")
	verbose     = flag.Bool("verbose", false, "log resolution steps")
)

type report struct {
	State        string            `json:"state"`
	Library      string            `json:"library,omitempty"`
	Extensions   []string          `json:"extensions"`
	Capabilities core.Capabilities `json:"capabilities"`
	Preferred    string            `json:"preferred"`
}

func main() {
	flag.Parse()
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	loader := vulkan.NewLoader(core.LoaderConfiguration{})
	if err := loader.LoadLibrary(*libraryPath); err != nil {
		log.Fatal(err)
	}
	defer loader.UnloadLibrary()

	extensions, err := loader.SupportedExtensions()
	if err != nil {
		log.Fatal(err)
	}

	caps, err := vulkan.Validate(loader.SupportedExtensions)
	if err != nil {
		log.WithError(err).Warn("driver cannot create platform surfaces")
	}

	bytes, err := json.Marshal(report{
		State:        loader.State().String(),
		Library:      loader.Path(),
		Extensions:   extensions,
		Capabilities: caps,
		Preferred:    caps.Preferred().String(),
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s", bytes)
}
