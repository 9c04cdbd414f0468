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

// Package kernels is the library of pixel kernels. Each kernel is a small
// stateless transform over byte buffers in shared memory, described by a
// typed parameter struct.
//
// Parameter structs implement the Params interface. Run() is the body of the
// kernel and is the same code whether the kernel is called directly by the
// host or through the native call marshaller in the pno package. In the
// latter case the struct is encoded into a big-endian parameter block with
// Encode() and recreated on the other side of the call with Decode().
//
// Kernels do not check their arguments. Out of range accesses cause a runtime
// panic. Validate() can be used to check arguments and memory ranges before
// calling Run() and returns an InvalidArgument error on failure.
package kernels
