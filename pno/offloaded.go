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
	"encoding/binary"
	"maps"

	"github.com/jetsetilly/pnokernels/arm"
	"github.com/jetsetilly/pnokernels/curated"
	"github.com/jetsetilly/pnokernels/dataarm"
	"github.com/jetsetilly/pnokernels/kernels"
	"github.com/jetsetilly/pnokernels/logger"
)

// Sentinel error patterns returned by the Offloaded type.
const (
	NoEntryPoint = "pno: no entry point for %s"
	NotNative    = "pno: address is not a native entry point (%#08x)"
)

// stub is written at every entry point in the native function table. It is
// the ARM instruction BX LR, little-endian.
const stub = 0xe12fff1e

// Offloaded runs kernels through the native call marshaller.
type Offloaded struct {
	mem   Memory
	opts  options
	stats Stats

	// entry point address for each kernel
	entries [kernels.NumIDs]uint32

	// kernel for each entry point address
	functions map[uint32]kernels.ID
}

func newOffloaded(mem Memory, opts options) (*Offloaded, error) {
	o := &Offloaded{
		mem:       mem,
		opts:      opts,
		stats:     make(Stats),
		functions: make(map[uint32]kernels.ID),
	}

	for id := range kernels.NumIDs {
		addr, err := o.mem.AddNative(4)
		if err != nil {
			return nil, curated.Errorf(NoEntryPoint, id)
		}
		binary.LittleEndian.PutUint32(arm.Bytes(mem, addr, 4), stub)
		o.entries[id] = addr
		o.functions[addr] = id
		logger.Logf(logger.Allow, "pno", "%s entry point: %#08x", id, addr)
	}

	return o, nil
}

// EntryPoint returns the address of the entry point for the kernel.
func (o *Offloaded) EntryPoint(id kernels.ID) uint32 {
	return o.entries[id]
}

// Call implements the Kernel interface.
func (o *Offloaded) Call(p kernels.Params) (uint32, error) {
	id := p.ID()
	o.stats[id]++

	size := p.Layout().Size()
	userData, err := o.mem.PushBlock(size)
	if err != nil {
		return 0, err
	}
	defer o.mem.PopBlock()

	blk := dataarm.Block(arm.Bytes(o.mem, userData, size))
	p.Encode(blk)

	result, err := o.Invoke(o.entries[id], userData)
	if err != nil {
		return 0, err
	}

	p.Decode(blk)

	return result, nil
}

// Invoke the native function at entry with a pointer to the parameter block.
// This is the native side of the call.
func (o *Offloaded) Invoke(entry uint32, userData uint32) (uint32, error) {
	if !o.mem.IsExecutable(entry) {
		return 0, curated.Errorf(NotNative, entry)
	}
	id, ok := o.functions[entry]
	if !ok {
		return 0, curated.Errorf(NotNative, entry)
	}

	p := kernels.New(id)
	blk := dataarm.Block(arm.Bytes(o.mem, userData, p.Layout().Size()))
	p.Decode(blk)

	if o.opts.validate {
		if err := validate(o.mem, p); err != nil {
			return 0, err
		}
	}

	result := p.Run(o.mem)
	p.Encode(blk)

	return result, nil
}

// Stats implements the Kernel interface.
func (o *Offloaded) Stats() Stats {
	return maps.Clone(o.stats)
}

// Offloaded implements the Kernel interface.
func (o *Offloaded) Offloaded() bool {
	return true
}
