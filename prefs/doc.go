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

// Package prefs facilitates the storage of preference values. Preference
// values are typed (Bool, Int, Float, String) or Generic, in which case the
// value is set and got through callback functions.
//
// Values are associated with a key in a Disk instance and saved to a plain
// text file with one "key :: value" entry per line. A Disk only rewrites the
// entries it knows about, so several Disk instances can safely share the same
// file.
//
// Preference values can be overridden from the command line with the
// PushCommandLineStack() function. The overrides are applied the next time a
// Disk is loaded.
package prefs
