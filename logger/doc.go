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

// Package logger is the central log for the program. Packages record notable
// events (mode transitions, memory faults, native function registration)
// with a tag and a detail string:
//
//	logger.Logf(logger.Allow, "compositor", "transition to %s", mode)
//
// The log is bounded. Identical entries made in succession are folded into
// a single entry with a repeat count.
package logger
