package types

import (
	"encoding/binary"
)

// Proto-wire-shaped encoding helpers. Expected values handed to the proof
// verifier must be encoded deterministically and identically on both chains;
// these helpers emit the standard varint/length-delimited layout with fields
// in ascending order and zero values omitted.

const (
	wireVarint = 0
	wireBytes  = 2
)

func appendTag(b []byte, field, wireType int) []byte {
	return binary.AppendUvarint(b, uint64(field)<<3|uint64(wireType))
}

func appendVarintField(b []byte, field int, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = appendTag(b, field, wireVarint)
	return binary.AppendUvarint(b, v)
}

func appendBytesField(b []byte, field int, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	b = appendTag(b, field, wireBytes)
	b = binary.AppendUvarint(b, uint64(len(v)))
	return append(b, v...)
}

func appendStringField(b []byte, field int, v string) []byte {
	return appendBytesField(b, field, []byte(v))
}

// appendHeightField encodes a height as a nested message with the revision
// number in field 1 and the revision height in field 2. Zero heights are
// omitted entirely.
func appendHeightField(b []byte, field int, h Height) []byte {
	if h.IsZero() {
		return b
	}
	var inner []byte
	inner = appendVarintField(inner, 1, h.RevisionNumber)
	inner = appendVarintField(inner, 2, h.RevisionHeight)
	return appendBytesField(b, field, inner)
}
