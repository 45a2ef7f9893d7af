// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package version exposes the library's version string, the spec.md §6
// public API's version() entry point.
package version

// These variables are set at build time using -ldflags.
// Example: go build -ldflags "-X github.com/VillePe/vefem-sub000/version.Version=1.0.0"
var (
	// Version is the semantic version of the kernel.
	Version = "0.1.0"

	// GitCommit is the git commit hash (set via ldflags).
	GitCommit = "unknown"

	// BuildTime is the time the binary was built (set via ldflags).
	BuildTime = "unknown"
)

// String returns the kernel's version, the spec.md §6 version() entry
// point.
func String() string {
	return Version
}
