package dsl

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrInvalidEncoding is returned when a DSL file is not valid UTF-16.
var ErrInvalidEncoding = errors.New("invalid UTF-16 encoding")

// DecodeError reports the line on which undecodable input was found.
type DecodeError struct {
	Line int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, ErrInvalidEncoding)
}

func (e *DecodeError) Unwrap() error {
	return ErrInvalidEncoding
}

// NewDecoder returns a reader producing UTF-8 from UTF-16 input.
// A byte order mark selects the byte order and is dropped; without one the input is read as little-endian.
// Undecodable input is replaced with U+FFFD, so CheckEncoding should validate the input first.
func NewDecoder(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder())
}

// CheckEncoding reads the whole UTF-16 stream and returns a *DecodeError
// for the first line holding an unpaired surrogate or an odd trailing byte.
// The byte order is chosen the same way as NewDecoder does.
func CheckEncoding(r io.Reader) error {
	reader := bufio.NewReader(r)
	order := detectByteOrder(reader)

	line := 1
	pendingHigh := false
	unit := make([]byte, 2)
	for {
		_, err := io.ReadFull(reader, unit)
		if errors.Is(err, io.EOF) {
			if pendingHigh {
				return &DecodeError{Line: line}
			}
			return nil
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return &DecodeError{Line: line}
		}
		if err != nil {
			return fmt.Errorf("io.ReadFull > %w", err)
		}

		u := order.Uint16(unit)
		switch {
		case u >= highSurrogateMin && u <= highSurrogateMax:
			if pendingHigh {
				return &DecodeError{Line: line}
			}
			pendingHigh = true
		case u >= lowSurrogateMin && u <= lowSurrogateMax:
			if !pendingHigh {
				return &DecodeError{Line: line}
			}
			pendingHigh = false
		default:
			if pendingHigh {
				return &DecodeError{Line: line}
			}
			if u == '\n' {
				line++
			}
		}
	}
}

const (
	highSurrogateMin = 0xD800
	highSurrogateMax = 0xDBFF
	lowSurrogateMin  = 0xDC00
	lowSurrogateMax  = 0xDFFF
)

// detectByteOrder consumes a byte order mark if there is one.
func detectByteOrder(r *bufio.Reader) binary.ByteOrder {
	bom, _ := r.Peek(2)
	if len(bom) == 2 {
		switch {
		case bom[0] == 0xFF && bom[1] == 0xFE:
			_, _ = r.Discard(2)
			return binary.LittleEndian
		case bom[0] == 0xFE && bom[1] == 0xFF:
			_, _ = r.Discard(2)
			return binary.BigEndian
		}
	}
	return binary.LittleEndian
}
