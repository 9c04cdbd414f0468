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

package assert

import (
	"bytes"
	"runtime"
	"strconv"
)

// GetGoRoutineID returns an identify for a goroutine. it returns a result that
// is (a) different between goroutines and (b) consistent for a given
// goroutine. It should only ever be used for debugging or testing purposes.
func GetGoRoutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Owner records the goroutine that first claims a resource. Subsequent claims
// from a different goroutine cause a panic when assertions are enabled.
//
// The zero value is ready to use. Claim() does nothing unless the program has
// been built with the "assertions" build tag.
type Owner struct {
	id uint64
}

// Claim the resource for the calling goroutine.
func (o *Owner) Claim(resource string) {
	if !Enabled {
		return
	}
	id := GetGoRoutineID()
	if o.id == 0 {
		o.id = id
		return
	}
	if o.id != id {
		panic("assert: " + resource + " used from more than one goroutine")
	}
}

// Release forgets the owning goroutine.
func (o *Owner) Release() {
	o.id = 0
}
