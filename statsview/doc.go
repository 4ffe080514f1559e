// This file is part of Gopher8080.
//
// Gopher8080 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8080 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8080.  If not, see <https://www.gnu.org/licenses/>.

// Package statsview provides a runtime statistics view of the running
// process, which is useful alongside the PERFORMANCE mode of the emulator.
// The view is served over HTTP by the go-echarts statsview package.
//
// Because of the size of the dependency the package does nothing unless the
// binary is compiled with the statsview build tag:
//
//	go build -tags statsview
package statsview
