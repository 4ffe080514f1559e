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

package ports

import (
	"fmt"

	"github.com/jetsetilly/gopher8080/logger"
)

// InputHook is called when the CPU executes an IN for the attached port.
type InputHook func() uint8

// OutputHook is called when the CPU executes an OUT for the attached port.
type OutputHook func(data uint8)

// Ports routes the 256 input and 256 output ports of the 8080 to hooks
// supplied by the host machine. An IN from a port with no hook returns zero.
// An OUT to a port with no hook is discarded, with a log entry the first time
// the port is touched.
type Ports struct {
	input  [256]InputHook
	output [256]OutputHook

	// catch-all hooks. a per-port hook takes precedence
	allInput  func(port uint8) uint8
	allOutput func(port uint8, data uint8)

	unhandled [256]bool
}

// NewPorts is the preferred method of initialisation for the Ports type.
func NewPorts() *Ports {
	return &Ports{}
}

// AttachInput registers a hook for IN instructions on the given port.
func (p *Ports) AttachInput(port uint8, hook InputHook) {
	p.input[port] = hook
}

// AttachOutput registers a hook for OUT instructions on the given port.
func (p *Ports) AttachOutput(port uint8, hook OutputHook) {
	p.output[port] = hook
}

// AttachAllInputs registers a catch-all hook for IN instructions on any port
// without a per-port hook.
func (p *Ports) AttachAllInputs(hook func(port uint8) uint8) {
	p.allInput = hook
}

// AttachAllOutputs registers a catch-all hook for OUT instructions on any
// port without a per-port hook.
func (p *Ports) AttachAllOutputs(hook func(port uint8, data uint8)) {
	p.allOutput = hook
}

// PortRead implements the bus.PortBus interface.
func (p *Ports) PortRead(port uint8) uint8 {
	if p.input[port] != nil {
		return p.input[port]()
	}
	if p.allInput != nil {
		return p.allInput(port)
	}
	return 0
}

// PortWrite implements the bus.PortBus interface.
func (p *Ports) PortWrite(port uint8, data uint8) {
	if p.output[port] != nil {
		p.output[port](data)
		return
	}
	if p.allOutput != nil {
		p.allOutput(port, data)
		return
	}
	if !p.unhandled[port] {
		p.unhandled[port] = true
		logger.Log("ports", fmt.Sprintf("output to unattached port %#02x discarded", port))
	}
}
