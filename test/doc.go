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

// Package test contains helper functions to remove common boilerplate from
// the package tests.
//
// The Expect*() functions report a test error and allow the test to continue.
// The Demand*() functions are fatal to the test and should be used when the
// value being tested is needed by later parts of the test.
//
// Success and failure are judged according to the type of value:
//
//	bool -> true is success
//	error -> nil is success
//
// The nil value is considered a success. This follows the convention of a nil
// error indicating that there was no error.
//
// The CompareWriter type implements io.Writer and is used to capture output
// for comparison with an expected string.
package test
