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
	"maps"

	"github.com/jetsetilly/pnokernels/arm"
	"github.com/jetsetilly/pnokernels/kernels"
)

// Software runs kernels directly.
type Software struct {
	mem   arm.SharedMemory
	opts  options
	stats Stats
}

func newSoftware(mem arm.SharedMemory, opts options) *Software {
	return &Software{
		mem:   mem,
		opts:  opts,
		stats: make(Stats),
	}
}

// Call implements the Kernel interface.
func (s *Software) Call(p kernels.Params) (uint32, error) {
	s.stats[p.ID()]++
	if s.opts.validate {
		if err := validate(s.mem, p); err != nil {
			return 0, err
		}
	}
	return p.Run(s.mem), nil
}

// Stats implements the Kernel interface.
func (s *Software) Stats() Stats {
	return maps.Clone(s.stats)
}

// Offloaded implements the Kernel interface.
func (s *Software) Offloaded() bool {
	return false
}
