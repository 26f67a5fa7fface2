package types

import (
	"time"

	"github.com/relaycore/relaycore/commitment"
)

// ConnectionState is the lifecycle state of a connection end.
type ConnectionState uint32

const (
	ConnectionUninitialized ConnectionState = iota
	ConnectionInit
	ConnectionTryOpen
	ConnectionOpen
)

// ConnectionCounterparty identifies the remote end of a connection and the
// commitment prefix under which the remote chain stores its protocol state.
type ConnectionCounterparty struct {
	ClientID     ClientID
	ConnectionID ConnectionID
	Prefix       commitment.MerklePrefix
}

// ConnectionEnd links a local light client to a counterparty and carries the
// delay period every proof over this connection must respect.
type ConnectionEnd struct {
	State        ConnectionState
	ClientID     ClientID
	Counterparty ConnectionCounterparty
	DelayPeriod  time.Duration
}

// EncodeVec returns the deterministic encoding of the connection end used as
// the expected value in membership proofs. The delay period is encoded in
// nanoseconds.
func (c ConnectionEnd) EncodeVec() []byte {
	var b []byte
	b = appendStringField(b, 1, string(c.ClientID))
	b = appendVarintField(b, 2, uint64(c.State))

	var cp []byte
	cp = appendStringField(cp, 1, string(c.Counterparty.ClientID))
	cp = appendStringField(cp, 2, string(c.Counterparty.ConnectionID))
	cp = appendBytesField(cp, 3, c.Counterparty.Prefix.KeyPrefix)
	b = appendBytesField(b, 3, cp)

	b = appendVarintField(b, 4, uint64(c.DelayPeriod))
	return b
}
