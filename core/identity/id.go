package identity

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrMalformedIdentifier is returned when a string cannot be parsed as an ID.
var ErrMalformedIdentifier = errors.New("malformed identifier")

// ID is a player identifier.
type ID uuid.UUID

// Nil is the zero ID.
var Nil ID

// Parse parses the canonical string form of an ID.
func Parse(s string) (ID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return Nil, fmt.Errorf("%w: %q: %v", ErrMalformedIdentifier, s, err)
	}
	return ID(u), nil
}

// MustParse is like Parse but panics on error. Intended for tests and constants.
func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// FromHalves builds an ID from its most and least significant 64 bits.
func FromHalves(msb, lsb uint64) ID {
	var id ID
	binary.BigEndian.PutUint64(id[:8], msb)
	binary.BigEndian.PutUint64(id[8:], lsb)
	return id
}

// Halves returns the most and least significant 64 bits of the ID.
func (id ID) Halves() (msb, lsb uint64) {
	return binary.BigEndian.Uint64(id[:8]), binary.BigEndian.Uint64(id[8:])
}

// Version returns the version nibble (bits 48-51).
func (id ID) Version() int {
	return int(uuid.UUID(id).Version())
}

// IsNil reports whether id is the zero ID.
func (id ID) IsNil() bool {
	return id == Nil
}

func (id ID) String() string {
	return uuid.UUID(id).String()
}

// MarshalText implements encoding.TextMarshaler.
func (id ID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
