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

package test

import "strings"

// CompareWriter collects everything written to it so that a test can check
// the output of a function that prints to an io.Writer.
type CompareWriter struct {
	buffer []byte
}

// Write implements the io.Writer interface. It never fails.
func (cw *CompareWriter) Write(p []byte) (int, error) {
	cw.buffer = append(cw.buffer, p...)
	return len(p), nil
}

// Clear forgets everything written so far.
func (cw *CompareWriter) Clear() {
	cw.buffer = cw.buffer[:0]
}

// Compare returns true if the collected output is exactly the string.
func (cw *CompareWriter) Compare(s string) bool {
	return s == string(cw.buffer)
}

// Lines returns the collected output split at newlines. A trailing newline
// does not produce an empty final line.
func (cw *CompareWriter) Lines() []string {
	s := strings.TrimSuffix(string(cw.buffer), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func (cw *CompareWriter) String() string {
	return string(cw.buffer)
}
