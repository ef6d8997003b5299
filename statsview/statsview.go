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

//go:build statsview

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/ultra64emu/ultra64/logger"
)

// milliseconds between samples. the emulator allocates very little once it
// is running so there is no need for the default rate
const sampleInterval = 2000

// Launch starts the stats server. The server runs for the lifetime of the
// process and is never stopped.
func Launch(output io.Writer) {
	viewer.SetConfiguration(
		viewer.WithAddr(Address),
		viewer.WithInterval(sampleInterval),
	)

	go func() {
		logger.Logf(logger.Allow, "statsview", "serving runtime stats at %s", Address)
		statsview.New().Start()
	}()

	_, _ = fmt.Fprintf(output, "runtime stats at http://%s%s\n", Address, url)
}

// Available is true when the binary was built with the statsview tag.
func Available() bool {
	return true
}
