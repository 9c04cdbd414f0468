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

package kernels

import (
	"github.com/jetsetilly/pnokernels/arm"
	"github.com/jetsetilly/pnokernels/dataarm"
)

var compressedLayout dataarm.Layout

var (
	compressedSrc      = compressedLayout.Ptr("src")
	compressedCompSize = compressedLayout.U32("compSize")
	compressedDst      = compressedLayout.Ptr("dst")
)

// Compressed is the parameter block shared by the three run-length decoders.
// CompSize bytes of compressed data at Src are decoded into Dst. The
// destination must be large enough for the decoded image. The result of the
// kernel is the number of bytes written to Dst.
type Compressed struct {
	Src      uint32
	CompSize uint32
	Dst      uint32
}

func (p *Compressed) encode(b dataarm.Block) {
	b.WritePtr(compressedSrc, p.Src)
	b.Write32(compressedCompSize, p.CompSize)
	b.WritePtr(compressedDst, p.Dst)
}

func (p *Compressed) decode(b dataarm.Block) {
	p.Src = b.ReadPtr(compressedSrc)
	p.CompSize = b.Read32(compressedCompSize)
	p.Dst = b.ReadPtr(compressedDst)
}

func (p *Compressed) validate(mem arm.SharedMemory, id ID, decodedLen func([]byte) (int, bool)) error {
	if p.CompSize == 0 {
		return nil
	}
	if err := checkRange(mem, id, p.Src, p.CompSize, 1); err != nil {
		return err
	}
	n, ok := decodedLen(arm.Bytes(mem, p.Src, p.CompSize))
	if !ok {
		return invalid(id, "compressed stream is truncated")
	}
	return checkRange(mem, id, p.Dst, uint32(n), 1)
}

func (p *Compressed) run(mem arm.SharedMemory, decode func(dst []byte, src []byte) int) uint32 {
	if p.CompSize == 0 {
		return 0
	}
	return uint32(decode(arm.From(mem, p.Dst), arm.Bytes(mem, p.Src, p.CompSize)))
}

// RLE0 decodes a stream where a zero byte is followed by a count of zero
// bytes to output. All other bytes are output verbatim.
type RLE0 Compressed

func (p *RLE0) ID() ID                          { return IDRLE0 }
func (p *RLE0) Layout() *dataarm.Layout         { return &compressedLayout }
func (p *RLE0) Encode(b dataarm.Block)          { (*Compressed)(p).encode(b) }
func (p *RLE0) Decode(b dataarm.Block)          { (*Compressed)(p).decode(b) }
func (p *RLE0) Run(mem arm.SharedMemory) uint32 { return (*Compressed)(p).run(mem, DecodeRLE0) }
func (p *RLE0) Validate(mem arm.SharedMemory) error {
	return (*Compressed)(p).validate(mem, IDRLE0, lenRLE0)
}

// RLE7 decodes a stream where bytes in the range 1 to 127 are followed by a
// colour that is repeated code+1 times. All other bytes are output verbatim.
type RLE7 Compressed

func (p *RLE7) ID() ID                          { return IDRLE7 }
func (p *RLE7) Layout() *dataarm.Layout         { return &compressedLayout }
func (p *RLE7) Encode(b dataarm.Block)          { (*Compressed)(p).encode(b) }
func (p *RLE7) Decode(b dataarm.Block)          { (*Compressed)(p).decode(b) }
func (p *RLE7) Run(mem arm.SharedMemory) uint32 { return (*Compressed)(p).run(mem, DecodeRLE7) }
func (p *RLE7) Validate(mem arm.SharedMemory) error {
	return (*Compressed)(p).validate(mem, IDRLE7, lenRLE7)
}

// Tony decodes a stream of alternating flat and verbatim runs. A flat run is
// a count followed by a single colour, unless the count is zero. A verbatim
// run is a count followed by that many bytes.
type Tony Compressed

func (p *Tony) ID() ID                          { return IDTony }
func (p *Tony) Layout() *dataarm.Layout         { return &compressedLayout }
func (p *Tony) Encode(b dataarm.Block)          { (*Compressed)(p).encode(b) }
func (p *Tony) Decode(b dataarm.Block)          { (*Compressed)(p).decode(b) }
func (p *Tony) Run(mem arm.SharedMemory) uint32 { return (*Compressed)(p).run(mem, DecodeTony) }
func (p *Tony) Validate(mem arm.SharedMemory) error {
	return (*Compressed)(p).validate(mem, IDTony, lenTony)
}

// DecodeRLE0 decodes src into dst and returns the number of bytes written. A
// zero byte at the end of src with no count is ignored.
func DecodeRLE0(dst []byte, src []byte) int {
	var o int
	for i := 0; i < len(src); {
		c := src[i]
		i++
		if c != 0 {
			dst[o] = c
			o++
			continue // for loop
		}
		if i >= len(src) {
			break // for loop
		}
		n := int(src[i])
		i++
		clear(dst[o : o+n])
		o += n
	}
	return o
}

func lenRLE0(src []byte) (int, bool) {
	var o int
	for i := 0; i < len(src); i++ {
		if src[i] != 0 {
			o++
			continue // for loop
		}
		i++
		if i >= len(src) {
			return o, false
		}
		o += int(src[i])
	}
	return o, true
}

// DecodeRLE7 decodes src into dst and returns the number of bytes written. A
// run code at the end of src with no colour is ignored.
func DecodeRLE7(dst []byte, src []byte) int {
	var o int
	for i := 0; i < len(src); {
		c := src[i]
		i++
		if c > 127 || c == 0 {
			dst[o] = c
			o++
			continue // for loop
		}
		if i >= len(src) {
			break // for loop
		}
		n := int(c) + 1
		f := src[i]
		i++
		d := dst[o : o+n]
		for j := range d {
			d[j] = f
		}
		o += n
	}
	return o
}

func lenRLE7(src []byte) (int, bool) {
	var o int
	for i := 0; i < len(src); i++ {
		c := src[i]
		if c > 127 || c == 0 {
			o++
			continue // for loop
		}
		i++
		if i >= len(src) {
			return o, false
		}
		o += int(c) + 1
	}
	return o, true
}

// DecodeTony decodes src into dst and returns the number of bytes written.
// Runs that extend beyond the end of src are cut short.
func DecodeTony(dst []byte, src []byte) int {
	var o int
	for i := 0; i < len(src); {
		numFlat := int(src[i])
		i++
		if numFlat > 0 {
			if i >= len(src) {
				break // for loop
			}
			f := src[i]
			i++
			d := dst[o : o+numFlat]
			for j := range d {
				d[j] = f
			}
			o += numFlat
		}
		if i < len(src) {
			numNoFlat := int(src[i])
			i++
			n := copy(dst[o:o+numNoFlat], src[i:min(i+numNoFlat, len(src))])
			i += numNoFlat
			o += n
		}
	}
	return o
}

func lenTony(src []byte) (int, bool) {
	var o int
	for i := 0; i < len(src); {
		numFlat := int(src[i])
		i++
		if numFlat > 0 {
			if i >= len(src) {
				return o, false
			}
			i++
			o += numFlat
		}
		if i < len(src) {
			numNoFlat := int(src[i])
			i++
			if i+numNoFlat > len(src) {
				return o, false
			}
			i += numNoFlat
			o += numNoFlat
		}
	}
	return o, true
}
