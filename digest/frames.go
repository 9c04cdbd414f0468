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

package digest

import (
	"crypto/sha1"
	"fmt"
	"image"

	"github.com/jetsetilly/pnokernels/surface"
)

// Frames is an implementation of the Digest interface for a sequence of
// composited frames. The hash of each frame is chained with the hash of the
// previous frame.
type Frames struct {
	digest   [sha1.Size]byte
	pixels   []byte
	frameNum int
}

// NewFrames is the preferred method of initialisation for the Frames type.
func NewFrames() *Frames {
	return &Frames{}
}

// Hash implements digest.Digest interface
func (dig *Frames) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface
func (dig *Frames) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.frameNum = 0
}

// FrameNum returns the number of frames added since the last reset.
func (dig *Frames) FrameNum() int {
	return dig.frameNum
}

// AddFrame adds the area of the surface to the digest. The area is clipped to
// the surface.
func (dig *Frames) AddFrame(pix surface.Pixels, area image.Rectangle) {
	area = area.Intersect(image.Rect(0, 0, pix.Width, pix.Height))
	bpp := int(pix.Depth)

	// length of pixels array contains enough room for the previous frames
	// digest value
	l := len(dig.digest) + area.Dx()*area.Dy()*bpp
	if cap(dig.pixels) < l {
		dig.pixels = make([]byte, l)
	}
	dig.pixels = dig.pixels[:l]

	// chain fingerprints by copying the value of the last fingerprint
	// to the head of the frame data
	i := copy(dig.pixels, dig.digest[:])
	for y := area.Min.Y; y < area.Max.Y; y++ {
		i += copy(dig.pixels[i:], pix.Row(y)[area.Min.X*bpp:area.Max.X*bpp])
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.frameNum++
}

// Sum returns the hash of a single surface without chaining.
func Sum(pix surface.Pixels) string {
	dig := NewFrames()
	dig.AddFrame(pix, image.Rect(0, 0, pix.Width, pix.Height))
	return dig.Hash()
}
