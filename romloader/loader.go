// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package romloader is concerned with getting ROM files off the disk and
// into the machine. It deliberately knows nothing about what the bytes
// mean; whether the program fits in the address space is the hardware's
// decision.
package romloader

import (
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/logger"
)

// Error patterns raised by the romloader package.
const (
	UnreadableROM = "romloader: %v"
)

// Loader is used to specify the ROM file to attach to the machine. A Loader
// can be Load()ed more than once; later loads re-read the file from disk.
type Loader struct {
	// filename of the ROM to load
	Filename string

	// copy of the loaded data. valid after a successful Load()
	Data []uint8

	// SHA1 of the loaded data. valid after a successful Load(). useful for
	// logs and for telling similarly named ROM files apart
	Hash string
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{Filename: filename}
}

// ShortName returns a shortened version of the ROM filename, suitable for
// window titles and log entries.
func (ld Loader) ShortName() string {
	sn := filepath.Base(ld.Filename)
	return strings.TrimSuffix(sn, filepath.Ext(ld.Filename))
}

// Load the ROM file from disk. A failure to read the file is reported with
// the UnreadableROM pattern and leaves the Data and Hash fields untouched.
func (ld *Loader) Load() error {
	data, err := os.ReadFile(ld.Filename)
	if err != nil {
		return curated.Errorf(UnreadableROM, err)
	}

	ld.Data = data
	ld.Hash = fmt.Sprintf("%x", sha1.Sum(data))

	logger.Logf("romloader", "%s (%d bytes, SHA1 %s)", ld.ShortName(), len(ld.Data), ld.Hash)

	return nil
}
