// This file is part of Ultra64.
//
// Ultra64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Ultra64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Ultra64.  If not, see <https://www.gnu.org/licenses/>.

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/ultra64emu/ultra64/curated"
	"github.com/ultra64emu/ultra64/logger"
)

// Sentinal error patterns.
const (
	UnrecognisedByteOrder = "cartridgeloader: unrecognised byte order (%08x)"
	UnexpectedHash        = "cartridgeloader: unexpected hash value"
)

// Loader is used to specify the cartridge to use when attaching to the
// console.
type Loader struct {
	// filename of cartridge to load.
	Filename string

	// byte order of the file. a value of Auto means the order will be
	// decided by the first word of the data. after a load operation the
	// value will be the order that was used
	ByteOrder ByteOrder

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the normalised data
	Hash string

	// copy of the loaded data in big-endian order. subsequent calls to Load()
	// will not reload the data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
//
// The byte order is decided by the file extension. Extensions that do not
// imply an order leave the decision to Load().
func NewLoader(filename string) Loader {
	return Loader{
		Filename:  filename,
		ByteOrder: orderFromExtension(path.Ext(filename)),
	}
}

// ShortName returns a shortened version of the Loader filename.
func (cl Loader) ShortName() string {
	shortCartName := path.Base(cl.Filename)
	shortCartName = strings.TrimSuffix(shortCartName, path.Ext(cl.Filename))
	return shortCartName
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the cartridge data. Loader filenames with a valid schema will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	scheme := "file"

	url, err := url.Parse(cl.Filename)
	if err == nil {
		scheme = url.Scheme
	}

	var data []byte

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(cl.Filename)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}
		defer resp.Body.Close()

		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}

	case "file":
		fallthrough

	case "":
		data, err = os.ReadFile(cl.Filename)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}

	default:
		return curated.Errorf("cartridgeloader: %v", fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	return cl.fromBytes(data)
}

// LoadBytes uses the supplied data rather than reading from Filename. Useful
// for testing and for images that have already been read by some other
// means. The data is copied before being normalised.
func (cl *Loader) LoadBytes(data []byte) error {
	d := make([]byte, len(data))
	copy(d, data)
	return cl.fromBytes(d)
}

func (cl *Loader) fromBytes(data []byte) error {
	// the first word decides the order even if the extension suggested
	// something different. an extension is only trusted when the first word
	// is not recognised
	order, ok := orderFromMagic(data)
	if !ok {
		if cl.ByteOrder == Auto {
			var m uint32
			for i := 0; i < 4 && i < len(data); i++ {
				m = m<<8 | uint32(data[i])
			}
			return curated.Errorf(UnrecognisedByteOrder, m)
		}
		order = cl.ByteOrder
	}

	normalise(data, order)

	hash := fmt.Sprintf("%x", sha1.Sum(data))

	// check for hash consistency
	if cl.Hash != "" && cl.Hash != hash {
		return curated.Errorf(UnexpectedHash)
	}

	cl.Hash = hash
	cl.ByteOrder = order
	cl.Data = data

	logger.Logf(logger.Allow, "loader", "%s: %d bytes (%s)", cl.ShortName(), len(cl.Data), cl.ByteOrder)

	return nil
}
