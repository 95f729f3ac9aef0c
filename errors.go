package fasthex

import (
	"errors"
	"fmt"
)

// Decode and encode errors.
var (
	// ErrOddLength indicates hex text with an odd number of digits.
	ErrOddLength = errors.New("fasthex: odd length hex string")

	// ErrInvalidCharacter indicates a byte outside [0-9a-fA-F].
	// Returned wrapped in *InvalidByteError.
	ErrInvalidCharacter = errors.New("fasthex: invalid hex character")

	// ErrInvalidBufferLength indicates an output slice of the wrong size.
	// Returned wrapped in *BufferLengthError.
	ErrInvalidBufferLength = errors.New("fasthex: invalid buffer length")
)

// InvalidByteError reports the first byte of the input that is not a hex digit.
//
// Index is measured in the caller's input, so a stripped "0x" prefix counts
// toward it: decoding "0xzz" reports index 2.
type InvalidByteError struct {
	Char  byte
	Index int
}

// Error implements the error interface
func (e *InvalidByteError) Error() string {
	return fmt.Sprintf("fasthex: invalid character %q at position %d", e.Char, e.Index)
}

// Unwrap returns ErrInvalidCharacter
func (e *InvalidByteError) Unwrap() error {
	return ErrInvalidCharacter
}

// BufferLengthError reports an output slice whose length does not match the input.
type BufferLengthError struct {
	Want int
	Got  int
}

// Error implements the error interface
func (e *BufferLengthError) Error() string {
	return fmt.Sprintf("fasthex: invalid buffer length %d, want %d", e.Got, e.Want)
}

// Unwrap returns ErrInvalidBufferLength
func (e *BufferLengthError) Unwrap() error {
	return ErrInvalidBufferLength
}
