package types

// ChannelState is the lifecycle state of a channel end.
type ChannelState uint32

const (
	ChannelUninitialized ChannelState = iota
	ChannelInit
	ChannelTryOpen
	ChannelOpen
	ChannelClosed
)

// ChannelOrder is the packet delivery ordering of a channel.
type ChannelOrder uint32

const (
	OrderNone ChannelOrder = iota
	OrderUnordered
	OrderOrdered
)

// ChannelCounterparty identifies the remote end of a channel.
type ChannelCounterparty struct {
	PortID    PortID
	ChannelID ChannelID
}

// ChannelEnd is one side of a channel. Channel proofs compare an expected
// ChannelEnd by value against what the counterparty committed.
type ChannelEnd struct {
	State          ChannelState
	Ordering       ChannelOrder
	Counterparty   ChannelCounterparty
	ConnectionHops []ConnectionID
	Version        string
}

// EncodeVec returns the deterministic encoding of the channel end used as
// the expected value in membership proofs.
func (c ChannelEnd) EncodeVec() []byte {
	var b []byte
	b = appendVarintField(b, 1, uint64(c.State))
	b = appendVarintField(b, 2, uint64(c.Ordering))

	var cp []byte
	cp = appendStringField(cp, 1, string(c.Counterparty.PortID))
	cp = appendStringField(cp, 2, string(c.Counterparty.ChannelID))
	b = appendBytesField(b, 3, cp)

	for _, hop := range c.ConnectionHops {
		b = appendStringField(b, 4, string(hop))
	}
	b = appendStringField(b, 5, c.Version)
	return b
}
