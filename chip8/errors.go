package chip8

import "errors"

var (
	// ErrROMNotFound is returned when the ROM path is not a regular file.
	ErrROMNotFound = errors.New("rom not found")
	// ErrROMTooLarge is returned when the ROM doesn't fit above ProgramStart.
	ErrROMTooLarge = errors.New("rom too large")
	// ErrInvalidConfig wraps every configuration validation failure.
	ErrInvalidConfig = errors.New("invalid config")
)
