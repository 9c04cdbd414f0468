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
	"errors"
)

// runLength returns the number of bytes from the start of b that equal b[0],
// up to limit.
func runLength(b []byte, limit int) int {
	n := 1
	for n < len(b) && n < limit && b[n] == b[0] {
		n++
	}
	return n
}

// EncodeRLE0 produces a stream that DecodeRLE0 will decode to src.
func EncodeRLE0(src []byte) []byte {
	enc := make([]byte, 0, len(src))
	for i := 0; i < len(src); {
		if src[i] != 0 {
			enc = append(enc, src[i])
			i++
			continue // for loop
		}
		n := runLength(src[i:], 255)
		enc = append(enc, 0, byte(n))
		i += n
	}
	return enc
}

// ErrUnencodable is returned by EncodeRLE7 when the input cannot be
// represented.
var ErrUnencodable = errors.New("kernels: rle7: single byte in the range 1 to 127 cannot be encoded")

// EncodeRLE7 produces a stream that DecodeRLE7 will decode to src. The format
// has no representation for a single byte in the range 1 to 127 that is not
// part of a longer run, and ErrUnencodable is returned if one is found.
func EncodeRLE7(src []byte) ([]byte, error) {
	enc := make([]byte, 0, len(src))
	for i := 0; i < len(src); {
		c := src[i]
		n := runLength(src[i:], 128)
		switch {
		case n >= 2:
			enc = append(enc, byte(n-1), c)
			i += n
		case c > 127 || c == 0:
			enc = append(enc, c)
			i++
		default:
			return nil, ErrUnencodable
		}
	}
	return enc, nil
}

// EncodeTony produces a stream that DecodeTony will decode to src.
func EncodeTony(src []byte) []byte {
	enc := make([]byte, 0, len(src))
	for i := 0; i < len(src); {
		if n := runLength(src[i:], 255); n >= 2 {
			enc = append(enc, byte(n), src[i])
			i += n
		} else {
			enc = append(enc, 0)
		}

		if i >= len(src) {
			break // for loop
		}

		// verbatim bytes continue until the next run of two or more
		j := i
		for j < len(src) && j-i < 255 && runLength(src[j:], 2) < 2 {
			j++
		}
		enc = append(enc, byte(j-i))
		enc = append(enc, src[i:j]...)
		i = j
	}
	return enc
}
