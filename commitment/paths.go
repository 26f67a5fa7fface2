package commitment

import "fmt"

// Canonical key prefixes for counterparty protocol state. The grammar is an
// interoperability contract: both chains must derive identical leaf keys.
const (
	KeyClientStorePrefix      = "clients"
	KeyClientState            = "clientState"
	KeyConsensusStatePrefix   = "consensusStates"
	KeyConnectionPrefix       = "connections"
	KeyChannelEndPrefix       = "channelEnds"
	KeyPacketCommitmentPrefix = "commitments"
	KeyPacketAckPrefix        = "acks"
	KeyPacketReceiptPrefix    = "receipts"
	KeyNextSeqRecvPrefix      = "nextSequenceRecv"
)

// ClientStatePath returns the path of the full client state recorded for
// clientID on the counterparty.
func ClientStatePath(clientID string) string {
	return fmt.Sprintf("%s/%s/%s", KeyClientStorePrefix, clientID, KeyClientState)
}

// ConsensusStatePath returns the path of the consensus state recorded for
// clientID at the given revision/height pair.
func ConsensusStatePath(clientID string, revisionNumber, revisionHeight uint64) string {
	return fmt.Sprintf("%s/%s/%s/%d-%d", KeyClientStorePrefix, clientID, KeyConsensusStatePrefix, revisionNumber, revisionHeight)
}

// ConnectionPath returns the path of a connection end.
func ConnectionPath(connectionID string) string {
	return fmt.Sprintf("%s/%s", KeyConnectionPrefix, connectionID)
}

// ChannelPath returns the path of a channel end.
func ChannelPath(portID, channelID string) string {
	return fmt.Sprintf("%s/%s", KeyChannelEndPrefix, channelSuffix(portID, channelID))
}

// PacketCommitmentPath returns the path of a sent packet's commitment digest.
func PacketCommitmentPath(portID, channelID string, sequence uint64) string {
	return fmt.Sprintf("%s/%s/%s/%d", KeyPacketCommitmentPrefix, channelSuffix(portID, channelID), "sequences", sequence)
}

// PacketAcknowledgementPath returns the path of a written acknowledgement.
func PacketAcknowledgementPath(portID, channelID string, sequence uint64) string {
	return fmt.Sprintf("%s/%s/%s/%d", KeyPacketAckPrefix, channelSuffix(portID, channelID), "sequences", sequence)
}

// PacketReceiptPath returns the path of a packet receipt. Absence of a value
// at this path proves the packet was never received.
func PacketReceiptPath(portID, channelID string, sequence uint64) string {
	return fmt.Sprintf("%s/%s/%s/%d", KeyPacketReceiptPrefix, channelSuffix(portID, channelID), "sequences", sequence)
}

// NextSequenceRecvPath returns the path of the next-sequence-receive counter
// of an ordered channel.
func NextSequenceRecvPath(portID, channelID string) string {
	return fmt.Sprintf("%s/%s", KeyNextSeqRecvPrefix, channelSuffix(portID, channelID))
}

func channelSuffix(portID, channelID string) string {
	return fmt.Sprintf("ports/%s/channels/%s", portID, channelID)
}
