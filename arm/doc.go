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

// Package arm models the address space shared between the host and the ARM
// co-processor on PalmOS OS5 class devices. Kernels receive raw 32-bit
// addresses and resolve them through the SharedMemory interface, whether they
// are called directly by the host or through the native call marshaller.
//
// Memory is the only implementation of SharedMemory. Regions are allocated
// from a heap whose layout is described by the memorymodel package. A
// separate scratch stack holds parameter blocks for the duration of a single
// call.
//
// Accesses are unchecked by default. Out of range accesses cause a Go runtime
// panic. With checking enabled, via SetChecked() or the "assertions" build
// tag, the Check() function records illegal accesses in the fault log and
// returns an IllegalAddress error.
package arm
