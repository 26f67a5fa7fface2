package commitment

import (
	"crypto/sha256"
	"encoding/binary"
)

// PacketCommitment computes the digest a chain stores for a sent packet:
// sha256 over the big-endian timeout timestamp in nanoseconds, the
// big-endian timeout revision number and height, and the sha256 of the
// packet data, concatenated in that order.
//
// The layout is an interoperability contract. Both chains derive the digest
// independently and any deviation breaks cross-chain compatibility.
func PacketCommitment(timeoutTimestamp, timeoutRevisionNumber, timeoutRevisionHeight uint64, data []byte) []byte {
	buf := make([]byte, 24, 24+sha256.Size)
	binary.BigEndian.PutUint64(buf[0:8], timeoutTimestamp)
	binary.BigEndian.PutUint64(buf[8:16], timeoutRevisionNumber)
	binary.BigEndian.PutUint64(buf[16:24], timeoutRevisionHeight)

	dataHash := sha256.Sum256(data)
	buf = append(buf, dataHash[:]...)

	commit := sha256.Sum256(buf)
	return commit[:]
}

// AcknowledgementCommitment computes the digest a chain stores for a written
// acknowledgement: sha256 over the raw acknowledgement bytes, no framing.
func AcknowledgementCommitment(ack []byte) []byte {
	commit := sha256.Sum256(ack)
	return commit[:]
}
