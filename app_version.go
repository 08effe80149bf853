package main

import (
	"runtime/debug"
)

// version is injected with -ldflags "-X main.version=..."
var version string = ""

// appVersion prefers the module version recorded by go install, then the
// ldflags value.
func appVersion() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	if version != "" {
		return version
	}
	return "#UNAVAILABLE"
}
