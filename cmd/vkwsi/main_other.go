// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

//go:build !darwin

package main

import log "github.com/sirupsen/logrus"

func main() {
	log.Fatal("the vkwsi demo binds to AppKit and Metal, build it on darwin")
}
