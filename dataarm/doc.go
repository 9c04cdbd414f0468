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

// Package dataarm reads and writes the fields of parameter blocks passed to
// native kernels.
//
// A parameter block is a packed record with no padding between fields.
// Multi-byte fields are stored big-endian, which is the byte order of the
// 68k host, and must be swapped when read on the little-endian ARM. Pointer
// fields are 32-bit addresses in the shared address space. The total size of
// a block is rounded up to a multiple of four.
//
// The accessors do not check offsets. A block that is too short for the
// offset causes a runtime panic.
package dataarm
