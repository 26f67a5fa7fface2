package types

import (
	"time"

	"github.com/relaycore/relaycore/commitment"
)

// Timestamp is a wall-clock instant in nanoseconds since the Unix epoch.
// Heights and timestamps travel together in delay checks, so both use
// checked arithmetic.
type Timestamp uint64

// TimestampFromTime converts a time.Time to a Timestamp.
func TimestampFromTime(t time.Time) Timestamp {
	return Timestamp(t.UnixNano())
}

// Time converts the timestamp back to a time.Time.
func (t Timestamp) Time() time.Time {
	return time.Unix(0, int64(t)).UTC()
}

// Add returns the timestamp d after t. The second result is false when the
// sum does not fit in the nanosecond range; callers must treat that as a
// deadline that can never be reached, not as a wrapped value.
func (t Timestamp) Add(d time.Duration) (Timestamp, bool) {
	if d < 0 {
		return 0, false
	}
	sum := t + Timestamp(d)
	if sum < t {
		return 0, false
	}
	return sum, true
}

// Packet is a cross-chain datagram. It is immutable once constructed; the
// commitment digest derived from it is what the sending chain stores.
type Packet struct {
	Sequence           uint64
	SourcePort         PortID
	SourceChannel      ChannelID
	DestinationPort    PortID
	DestinationChannel ChannelID
	Data               []byte
	TimeoutHeight      Height
	TimeoutTimestamp   Timestamp
}

// Commitment returns the digest the sending chain stores for this packet.
func (p Packet) Commitment() []byte {
	return commitment.PacketCommitment(
		uint64(p.TimeoutTimestamp),
		p.TimeoutHeight.RevisionNumber,
		p.TimeoutHeight.RevisionHeight,
		p.Data,
	)
}
