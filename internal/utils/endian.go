// Package utils provides shared byte-level helpers for the brawllib decoders.
package utils

import (
	"encoding/binary"
	"fmt"
)

// ReadU8 reads a single byte at the specified offset.
func ReadU8(data []byte, offset int) (uint8, error) {
	if offset < 0 || offset >= len(data) {
		return 0, fmt.Errorf("read of 1 byte at offset %d out of range for %d byte buffer", offset, len(data))
	}
	return data[offset], nil
}

// ReadU16BE reads a big-endian 16-bit value at the specified offset.
func ReadU16BE(data []byte, offset int) (uint16, error) {
	if offset < 0 || offset+2 > len(data) {
		return 0, fmt.Errorf("read of 2 bytes at offset %d out of range for %d byte buffer", offset, len(data))
	}
	return binary.BigEndian.Uint16(data[offset:]), nil
}

// ReadI16BE reads a big-endian signed 16-bit value at the specified offset.
func ReadI16BE(data []byte, offset int) (int16, error) {
	v, err := ReadU16BE(data, offset)
	return int16(v), err
}

// ReadU32BE reads a big-endian 32-bit value at the specified offset.
func ReadU32BE(data []byte, offset int) (uint32, error) {
	if offset < 0 || offset+4 > len(data) {
		return 0, fmt.Errorf("read of 4 bytes at offset %d out of range for %d byte buffer", offset, len(data))
	}
	return binary.BigEndian.Uint32(data[offset:]), nil
}

// ReadI32BE reads a big-endian signed 32-bit value at the specified offset.
func ReadI32BE(data []byte, offset int) (int32, error) {
	v, err := ReadU32BE(data, offset)
	return int32(v), err
}
