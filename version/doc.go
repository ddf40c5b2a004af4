// Package version reports which enumkit build is running, either from
// -ldflags or from the module information the Go toolchain embeds.
package version
