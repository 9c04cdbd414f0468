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

// Package resources finds the paths used to store preferences, frame dumps
// and profiling output.
//
// The base directory depends on how the program was compiled. Development
// builds keep resources in a hidden directory in the current working
// directory. Release builds (the "release" build tag) use the user's
// configuration directory. If a directory named by PortableDir exists in the
// working directory then it is used in either case.
package resources
