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

// Package screendump writes images of surfaces to BMP files. Images are
// created with the Image() or IndexedImage() functions of surface.Pixels.
package screendump

import (
	"fmt"
	"image"
	"io"
	"os"

	"github.com/jetsetilly/pnokernels/logger"
	"github.com/jetsetilly/pnokernels/resources"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// Write the image to w in the BMP format. The image is enlarged by zoom, which
// is treated as one if it is less than one.
func Write(w io.Writer, img image.Image, zoom int) error {
	if zoom > 1 {
		b := img.Bounds()
		z := image.NewRGBA(image.Rect(0, 0, b.Dx()*zoom, b.Dy()*zoom))
		draw.NearestNeighbor.Scale(z, z.Bounds(), img, b, draw.Src, nil)
		img = z
	}

	if err := bmp.Encode(w, img); err != nil {
		return fmt.Errorf("screendump: %w", err)
	}
	return nil
}

// Save the image to a uniquely named file in the resources directory. The
// filename is returned.
func Save(img image.Image, label string, zoom int) (string, error) {
	fn, err := resources.JoinPath("dumps", resources.UniqueFilename("frame", label)+".bmp")
	if err != nil {
		return "", fmt.Errorf("screendump: %w", err)
	}

	f, err := os.Create(fn)
	if err != nil {
		return "", fmt.Errorf("screendump: %w", err)
	}
	defer f.Close()

	if err := Write(f, img, zoom); err != nil {
		return "", err
	}

	logger.Logf(logger.Allow, "screendump", "saved %s", fn)

	return fn, nil
}
