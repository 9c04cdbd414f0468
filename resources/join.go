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

package resources

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// PortableDir takes precedence over the build specific base path if it
// exists.
const PortableDir = "pnokernels_resources"

func checkPortable() bool {
	info, err := os.Stat(PortableDir)
	return err == nil && info.IsDir()
}

// JoinPath prepends the resource base path to the supplied path elements. The
// directory of the final path is created if necessary but the file itself is
// not.
func JoinPath(path ...string) (string, error) {
	p := filepath.Join(path...)

	var b string

	if checkPortable() {
		b = PortableDir
	} else {
		var err error
		b, err = resourcePath()
		if err != nil {
			return "", fmt.Errorf("resources: %w", err)
		}
	}

	// do not prepend base path if it is already present
	if !strings.HasPrefix(p, b) {
		p = filepath.Join(b, p)
	}

	if _, err := os.Stat(p); err == nil {
		return p, nil
	}

	if err := os.MkdirAll(filepath.Dir(p), 0700); err != nil {
		return "", fmt.Errorf("resources: %w", err)
	}

	return p, nil
}

// UniqueFilename creates a filename that should not collide with any other
// file created by the program, assuming a functioning clock. The format is:
//
//	prepend_label_YYYYMMDD_HHMMSS
//
// If label is empty the format is prepend_YYYYMMDD_HHMMSS.
func UniqueFilename(prepend string, label string) string {
	n := time.Now()
	timestamp := fmt.Sprintf("%04d%02d%02d_%02d%02d%02d", n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second())

	label = strings.TrimSpace(label)
	if len(label) > 0 {
		return fmt.Sprintf("%s_%s_%s", prepend, label, timestamp)
	}
	return fmt.Sprintf("%s_%s", prepend, timestamp)
}
