// This file is part of Gopher8080.
//
// Gopher8080 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8080 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8080.  If not, see <https://www.gnu.org/licenses/>.

package romloader

import (
	"crypto/sha1"
	"fmt"
	"os"

	"github.com/jetsetilly/gopher8080/curated"
)

// Loader gathers one or more ROM images from disk ready for loading into the
// machine's address space. Multi-file programs (the Space Invaders set for
// instance) list their files in ascending address order.
type Loader struct {
	// filenames of the ROM images, in the order they should appear in memory
	Filenames []string

	// the loaded images, in the same order as Filenames. subsequent calls to
	// Load() return this data without touching the disk again
	Images [][]byte

	// SHA1 hash of each loaded image, in the same order as Filenames
	Hashes []string
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filenames ...string) Loader {
	return Loader{
		Filenames: filenames,
	}
}

// Load the ROM images from disk. The images are retained by the Loader so a
// second call is cheap.
func (ld *Loader) Load() ([][]byte, error) {
	if ld.Images != nil {
		return ld.Images, nil
	}

	images := make([][]byte, 0, len(ld.Filenames))
	hashes := make([]string, 0, len(ld.Filenames))

	for _, fn := range ld.Filenames {
		d, err := os.ReadFile(fn)
		if err != nil {
			return nil, curated.Errorf(curated.ImageUnreadable, err)
		}
		images = append(images, d)
		hashes = append(hashes, fmt.Sprintf("%x", sha1.Sum(d)))
	}

	ld.Images = images
	ld.Hashes = hashes

	return ld.Images, nil
}

// Size returns the total number of bytes across all loaded images. Returns
// zero if Load() has not yet been called.
func (ld *Loader) Size() int {
	sz := 0
	for _, d := range ld.Images {
		sz += len(d)
	}
	return sz
}
