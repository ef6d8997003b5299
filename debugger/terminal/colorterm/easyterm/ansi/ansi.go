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

// Package ansi defines ANSI control codes for styles and colours.
package ansi

import (
	"fmt"
	"strings"
)

// ansi colour.
const (
	colRed     = 1
	colGreen   = 2
	colYellow  = 3
	colBlue    = 4
	colMagenta = 5
	colCyan    = 6
	colWhite   = 7
)

// ansi target.
const (
	targetPen       = 3
	targetBrightPen = 9
)

var colours = map[string]int{
	"red":     colRed,
	"green":   colGreen,
	"yellow":  colYellow,
	"blue":    colBlue,
	"magenta": colMagenta,
	"cyan":    colCyan,
	"white":   colWhite,
}

// Pens is the table of colours to be used for text.
var Pens map[string]string

// DimPens is the table of pastel colours to be used for text.
var DimPens map[string]string

// PenStyles is the table of styles to be used for text.
var PenStyles = map[string]string{
	"bold":      "\033[1m",
	"underline": "\033[4m",
}

// NormalPen is the CSI sequence for regular text.
const NormalPen = "\033[0m"

// Cursor and line control sequences.
const (
	ClearLine         = "\033[2K"
	CursorStore       = "\0337"
	CursorRestore     = "\0338"
	CursorForwardOne  = "\033[1C"
	CursorBackwardOne = "\033[1D"
)

func init() {
	Pens = make(map[string]string)
	DimPens = make(map[string]string)
	for k, c := range colours {
		Pens[k] = fmt.Sprintf("\033[%d%dm", targetBrightPen, c)
		DimPens[k] = fmt.Sprintf("\033[%d%dm", targetPen, c)
	}
}

// CursorMove returns the sequence that moves the cursor n columns. Negative
// values move the cursor backwards.
func CursorMove(n int) string {
	switch {
	case n < 0:
		return fmt.Sprintf("\033[%dD", -n)
	case n > 0:
		return fmt.Sprintf("\033[%dC", n)
	}
	return ""
}

// Strip removes CSI sequences from the string.
func Strip(s string) string {
	b := strings.Builder{}
	for i := 0; i < len(s); i++ {
		if s[i] == '\033' && i+1 < len(s) && s[i+1] == '[' {
			i += 2
			for i < len(s) && (s[i] < 0x40 || s[i] > 0x7e) {
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
