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

import "fmt"

// SharedMemory represents the memory shared by the host and the ARM.
type SharedMemory interface {
	// Return memory block and the offset of addr within that block. Returns
	// nil if the address is not mapped.
	//
	// There is no indication of the width of the access. The caller must make
	// further boundary checks as appropriate.
	MapAddress(addr uint32, write bool) (*[]byte, uint32)

	// Return true if address contains a native entry point.
	IsExecutable(addr uint32) bool
}

// Bytes returns the n bytes beginning at addr. Panics if addr is not mapped
// or if the range runs past the end of the region.
func Bytes(mem SharedMemory, addr uint32, n uint32) []byte {
	b, o := mem.MapAddress(addr, false)
	if b == nil {
		panic(unmapped(addr))
	}
	return (*b)[o : o+n]
}

// From returns the bytes from addr to the end of its region. Used when the
// extent of the access is not known in advance.
func From(mem SharedMemory, addr uint32) []byte {
	b, o := mem.MapAddress(addr, true)
	if b == nil {
		panic(unmapped(addr))
	}
	return (*b)[o:]
}

type unmapped uint32

func (u unmapped) Error() string {
	return fmt.Sprintf("arm: unmapped address %#08x", uint32(u))
}
