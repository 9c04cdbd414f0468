// This file is part of pnokernels.
//
// pnokernels is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// pnokernels is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with pnokernels.  If not, see <https://www.gnu.org/licenses/>.

package pno

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/jetsetilly/pnokernels/arm"
	"github.com/jetsetilly/pnokernels/kernels"
	"github.com/jetsetilly/pnokernels/logger"
)

// Kernel is implemented by the Software and Offloaded types.
type Kernel interface {
	// Call the kernel described by the parameter struct. Output fields in the
	// struct are updated before the function returns. The error is only
	// non-nil if validation is enabled and the parameters are invalid, or if
	// the native call could not be made
	Call(p kernels.Params) (uint32, error)

	// Stats returns the number of calls made to each kernel
	Stats() Stats

	// Offloaded returns true if kernels are run through the native call
	// marshaller
	Offloaded() bool
}

// Memory is the shared memory required by the Offloaded type.
type Memory interface {
	arm.SharedMemory
	PushBlock(size uint32) (uint32, error)
	PopBlock()
	AddNative(size uint32) (uint32, error)
}

// Stats is the number of calls made to each kernel.
type Stats map[kernels.ID]int

func (s Stats) String() string {
	ids := slices.Sorted(maps.Keys(s))
	b := strings.Builder{}
	for _, id := range ids {
		b.WriteString(fmt.Sprintf("%s: %d\n", id, s[id]))
	}
	return b.String()
}

// Total number of calls.
func (s Stats) Total() int {
	var n int
	for _, v := range s {
		n += v
	}
	return n
}

type options struct {
	validate bool
}

// Option changes the behaviour of the kernel created by NewKernel().
type Option func(*options)

// WithValidation causes the parameters of each call to be checked before the
// kernel is run. If the memory supports it, memory checking is also enabled.
func WithValidation(validate bool) Option {
	return func(o *options) {
		o.validate = validate
	}
}

// NewKernel returns an Offloaded kernel if useARM is true. Otherwise it
// returns a Software kernel.
func NewKernel(mem Memory, useARM bool, opts ...Option) (Kernel, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if c, ok := mem.(interface{ SetChecked(bool) }); ok && o.validate {
		c.SetChecked(true)
	}

	if useARM {
		logger.Logf(logger.Allow, "pno", "using native call marshaller (validation %v)", o.validate)
		return newOffloaded(mem, o)
	}

	logger.Logf(logger.Allow, "pno", "using software kernels (validation %v)", o.validate)
	return newSoftware(mem, o), nil
}

func validate(mem arm.SharedMemory, p kernels.Params) error {
	err := p.Validate(mem)
	if err != nil {
		logger.Log(logger.Allow, "pno", err)
		return fmt.Errorf("pno: %w", err)
	}
	return nil
}
