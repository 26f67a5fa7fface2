package types

// Wire-level messages consumed by the proof verifiers. Proof fields are
// opaque serialized Merkle proofs; the verifier converts them to the
// structured form before use.

// MsgRecvPacket claims a packet was sent on the counterparty: the proof
// shows the packet commitment present in the counterparty's state.
type MsgRecvPacket struct {
	Packet          Packet
	ProofCommitment []byte
	ProofHeight     Height
}

// MsgAcknowledgement claims the counterparty wrote an acknowledgement for a
// packet this chain sent.
type MsgAcknowledgement struct {
	Packet          Packet
	Acknowledgement []byte
	ProofAcked      []byte
	ProofHeight     Height
}

// MsgTimeout claims a packet this chain sent was never received before its
// timeout. On ordered channels the proof shows the counterparty's
// next-sequence-receive counter; on unordered channels it shows the absence
// of a packet receipt.
type MsgTimeout struct {
	Packet           Packet
	NextSequenceRecv uint64
	ProofUnreceived  []byte
	ProofHeight      Height
}
