// This file is part of Ultra64.
//
// Ultra64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Ultra64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Ultra64.  If not, see <https://www.gnu.org/licenses/>.

// Package version reports the version of the emulator. The version number
// is set at link time:
//
//	go build -ldflags "-X github.com/ultra64emu/ultra64/version.number=v0.1.0"
//
// Without a number the version is decided by the build information
// embedded by the Go toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Ultra64"

// set with -ldflags at link time.
var number string

var (
	version  string
	revision string
)

// Version returns the version string, the vcs revision and whether this is a
// numbered release.
//
// The version string is "unreleased" if the binary was built from a vcs
// checkout without a version number and "local" if there is no vcs
// information at all.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns the application name and version in a single line.
func String() string {
	if number != "" {
		return fmt.Sprintf("%s %s", ApplicationName, version)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, version, revision)
}

func init() {
	version, revision = fromBuildInfo(number, debug.ReadBuildInfo)
}

// fromBuildInfo decides the version and revision strings.
func fromBuildInfo(number string, read func() (*debug.BuildInfo, bool)) (string, string) {
	var vcs, modified bool
	var rev string

	if info, ok := read(); ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				rev = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	switch {
	case rev == "":
		rev = "no revision information"
	case modified:
		rev = fmt.Sprintf("%s+dirty", rev)
	}

	switch {
	case number != "":
		return number, rev
	case vcs:
		return "unreleased", rev
	}
	return "local", rev
}
