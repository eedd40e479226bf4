// Package loader provides ROM image loading for the machine.
//
// ROM images are raw, unframed byte sequences executed from BaseAddress;
// there is no header or checksum to parse. The loader only reads the file
// and validates that the image fits in the loadable window.
package loader

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/chippie-emu/chippie/emu"
)

// ROM is a program image ready to hand to the interpreter.
type ROM struct {
	// Name identifies the image in logs and window titles.
	Name string

	// Data is the raw image, loaded verbatim at BaseAddress.
	Data []byte
}

// Load reads a ROM image from disk.
func Load(path string) (*ROM, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rom image: %w", err)
	}

	if len(data) > emu.MaxROMSize {
		return nil, fmt.Errorf("%s: %w", path, emu.ErrROMTooLarge)
	}

	return &ROM{
		Name: filepath.Base(path),
		Data: data,
	}, nil
}
