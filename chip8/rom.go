package chip8

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/valerio/go-chip8/chip8/vm"
)

// MaxROMSize is the space available between ProgramStart and the end of memory.
const MaxROMSize = vm.MemorySize - vm.ProgramStart

// LoadROM reads a raw CHIP-8 program and returns a full memory image with
// the program placed at vm.ProgramStart.
func LoadROM(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrROMNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rom %s: %w", path, err)
	}

	return NewImage(data)
}

// NewImage places program at vm.ProgramStart in a zeroed memory image.
func NewImage(program []byte) ([]byte, error) {
	if len(program) > MaxROMSize {
		return nil, fmt.Errorf("%w: %d bytes, at most %d fit", ErrROMTooLarge, len(program), MaxROMSize)
	}
	if len(program) == 0 {
		slog.Warn("ROM is empty")
	}

	image := make([]byte, vm.MemorySize)
	copy(image[vm.ProgramStart:], program)
	return image, nil
}
