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

package arm

import (
	"fmt"
	"slices"
	"sort"

	"github.com/jetsetilly/pnokernels/arm/memorymodel"
	"github.com/jetsetilly/pnokernels/assert"
	"github.com/jetsetilly/pnokernels/coprocessor/faults"
	"github.com/jetsetilly/pnokernels/curated"
	"github.com/jetsetilly/pnokernels/logger"
)

// Sentinel error patterns returned by Memory.
const (
	IllegalAddress = "arm: illegal address: %s"
	OutOfMemory    = "arm: out of memory: %s (%d bytes)"
	StackOverflow  = "arm: scratch stack overflow (%d bytes)"
	NotAllocated   = "arm: address not allocated (%#08x)"
)

// Region describes one contiguous area of shared memory.
type Region struct {
	Label  string
	Origin uint32
	Memtop uint32

	data []byte
}

func (r *Region) String() string {
	return fmt.Sprintf("%s: %#08x to %#08x", r.Label, r.Origin, r.Memtop)
}

// Size of region in bytes.
func (r *Region) Size() uint32 {
	return r.Memtop - r.Origin + 1
}

func (r *Region) contains(addr uint32) bool {
	return addr >= r.Origin && addr <= r.Memtop
}

// Memory implements the SharedMemory interface.
type Memory struct {
	mmap memorymodel.Map

	// heap regions sorted by origin
	heap []*Region

	// the scratch stack grows down from the top of the region. frames holds
	// the stack pointer before each push
	stack  *Region
	sp     uint32
	frames []uint32

	// native function table. entries are added by AddNative() and never
	// removed
	native    *Region
	nativeTop uint32

	checked bool

	// illegal accesses found by Check()
	Faults faults.Faults
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(mmap memorymodel.Map) *Memory {
	mem := &Memory{
		mmap: mmap,
		stack: &Region{
			Label:  "stack",
			Origin: mmap.StackOrigin,
			Memtop: mmap.StackMemtop,
		},
		native: &Region{
			Label:  "native",
			Origin: mmap.NativeOrigin,
			Memtop: mmap.NativeMemtop,
		},
		Faults: faults.NewFaults(),
	}

	mem.stack.data = make([]byte, mem.stack.Size())
	mem.native.data = make([]byte, mem.native.Size())
	mem.sp = mmap.StackMemtop + 1
	mem.nativeTop = mmap.NativeOrigin

	return mem
}

// Model returns the name of the memory model in use.
func (mem *Memory) Model() string {
	return mem.mmap.Model
}

// SetChecked enables the recording of illegal accesses by Check(). Checking
// is always enabled when built with the "assertions" tag.
func (mem *Memory) SetChecked(checked bool) {
	mem.checked = checked
}

// Checked returns true if calls to Check() will test the access.
func (mem *Memory) Checked() bool {
	return mem.checked || assert.Enabled
}

func align4(n uint32) uint32 {
	return (n + 3) &^ 3
}

// Alloc reserves size bytes in the heap and returns the address of the first
// byte. The address is always four byte aligned and the memory is zeroed.
func (mem *Memory) Alloc(label string, size uint32) (uint32, error) {
	size = max(align4(size), 4)

	addr := mem.mmap.HeapOrigin
	idx := 0
	for ; idx < len(mem.heap); idx++ {
		r := mem.heap[idx]
		if addr+size+mem.mmap.GuardGap <= r.Origin {
			break // for loop
		}
		addr = align4(r.Memtop + 1 + mem.mmap.GuardGap)
	}

	if addr < mem.mmap.HeapOrigin || addr+size-1 > mem.mmap.HeapMemtop {
		return 0, curated.Errorf(OutOfMemory, label, size)
	}

	r := &Region{
		Label:  label,
		Origin: addr,
		Memtop: addr + size - 1,
		data:   make([]byte, size),
	}
	mem.heap = slices.Insert(mem.heap, idx, r)

	logger.Logf(logger.Allow, "arm", "alloc %s", r)

	return addr, nil
}

// Free releases the region that begins at addr.
func (mem *Memory) Free(addr uint32) error {
	idx := slices.IndexFunc(mem.heap, func(r *Region) bool {
		return r.Origin == addr
	})
	if idx == -1 {
		return curated.Errorf(NotAllocated, addr)
	}
	logger.Logf(logger.Allow, "arm", "free %s", mem.heap[idx])
	mem.heap = slices.Delete(mem.heap, idx, idx+1)
	return nil
}

// Slice returns n bytes beginning at addr. See the Bytes() function.
func (mem *Memory) Slice(addr uint32, n uint32) []byte {
	return Bytes(mem, addr, n)
}

func (mem *Memory) findRegion(addr uint32) *Region {
	if mem.stack.contains(addr) {
		return mem.stack
	}
	if mem.native.contains(addr) {
		return mem.native
	}
	idx := sort.Search(len(mem.heap), func(i int) bool {
		return mem.heap[i].Memtop >= addr
	})
	if idx < len(mem.heap) && mem.heap[idx].contains(addr) {
		return mem.heap[idx]
	}
	return nil
}

// Region returns the region containing addr.
func (mem *Memory) Region(addr uint32) (Region, bool) {
	r := mem.findRegion(addr)
	if r == nil {
		return Region{}, false
	}
	return Region{Label: r.Label, Origin: r.Origin, Memtop: r.Memtop}, true
}

// Regions returns a summary of every allocated heap region in address order.
func (mem *Memory) Regions() []Region {
	rs := make([]Region, 0, len(mem.heap))
	for _, r := range mem.heap {
		rs = append(rs, Region{Label: r.Label, Origin: r.Origin, Memtop: r.Memtop})
	}
	return rs
}

// MapAddress implements the SharedMemory interface.
func (mem *Memory) MapAddress(addr uint32, write bool) (*[]byte, uint32) {
	r := mem.findRegion(addr)
	if r == nil {
		return nil, 0
	}
	return &r.data, addr - r.Origin
}

// IsExecutable implements the SharedMemory interface.
func (mem *Memory) IsExecutable(addr uint32) bool {
	return addr >= mem.native.Origin && addr < mem.nativeTop
}

// AddNative reserves size bytes in the native function table and returns the
// entry address.
func (mem *Memory) AddNative(size uint32) (uint32, error) {
	size = max(align4(size), 4)
	if mem.nativeTop+size-1 > mem.native.Memtop {
		return 0, curated.Errorf(OutOfMemory, mem.native.Label, size)
	}
	addr := mem.nativeTop
	mem.nativeTop += size
	return addr, nil
}

// PushBlock reserves a zeroed block of size bytes on the scratch stack. The
// block remains valid until the matching call to PopBlock().
func (mem *Memory) PushBlock(size uint32) (uint32, error) {
	size = align4(size)
	if mem.sp-mem.stack.Origin < size {
		mem.Faults.NewEntry("push block", faults.StackCollision, mem.sp, size)
		return 0, curated.Errorf(StackOverflow, size)
	}

	mem.frames = append(mem.frames, mem.sp)
	mem.sp -= size
	clear(mem.stack.data[mem.sp-mem.stack.Origin : mem.sp-mem.stack.Origin+size])

	return mem.sp, nil
}

// PopBlock releases the most recent block pushed by PushBlock().
func (mem *Memory) PopBlock() {
	assert.That(len(mem.frames) > 0, "arm: pop of empty scratch stack")
	if len(mem.frames) == 0 {
		return
	}
	mem.sp = mem.frames[len(mem.frames)-1]
	mem.frames = mem.frames[:len(mem.frames)-1]
}

// StackDepth returns the number of blocks currently on the scratch stack.
func (mem *Memory) StackDepth() int {
	return len(mem.frames)
}

// Check tests that the n bytes beginning at addr lie within a single region
// and that addr is a multiple of align. Illegal accesses are added to the
// fault log and returned as an IllegalAddress error. Check does nothing if
// checking is not enabled.
func (mem *Memory) Check(event string, addr uint32, n uint32, align uint32) error {
	if !mem.Checked() || n == 0 {
		return nil
	}

	var cat faults.Category

	if mem.mmap.IsNull(addr) {
		cat = faults.NullDereference
	} else if align > 1 && addr%align != 0 {
		cat = faults.MisalignedAccess
	} else if r := mem.findRegion(addr); r == nil {
		cat = faults.IllegalAddress
	} else if n-1 > r.Memtop-addr {
		cat = faults.RegionOverrun
	} else {
		return nil
	}

	e := mem.Faults.NewEntry(event, cat, addr, n)
	if e.Count == 1 {
		logger.Log(logger.Allow, "arm", e)
	}

	return curated.Errorf(IllegalAddress, e)
}
