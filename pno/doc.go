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

// Package pno dispatches kernel calls. A kernel can be run directly by the
// host (the Software type) or through the native call marshaller used by ARM
// equipped devices (the Offloaded type). Which one is used is decided once,
// by NewKernel(), and both produce identical results.
//
// The Offloaded type follows the calling convention of PalmOS native code.
// The kernel's parameter struct is encoded into a big-endian parameter block
// on the scratch stack in shared memory. The entry point for the kernel is
// called with the address of the block as the only argument. On the other
// side of the call the block is decoded into a fresh parameter struct and the
// kernel is run. Output fields are encoded back into the block, which the
// host decodes after the call returns.
package pno
