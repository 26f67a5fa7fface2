package verifier

import (
	"context"
	"encoding/binary"

	"github.com/relaycore/relaycore/commitment"
	"github.com/relaycore/relaycore/types"
)

// VerifyPacketRecvProof verifies that the counterparty committed the packet
// in msg before it may be received locally: the packet's commitment digest
// must be present at the commitment path of the sending port and channel.
func (v *Verifier) VerifyPacketRecvProof(ctx context.Context, connection *types.ConnectionEnd, msg *types.MsgRecvPacket) error {
	clientState, consensusState, err := v.trustedClientAndConsensusState(ctx, connection.ClientID, msg.ProofHeight, connection)
	if err != nil {
		return err
	}

	proof, err := commitment.UnmarshalMerkleProof(msg.ProofCommitment)
	if err != nil {
		return err
	}
	path, err := connection.Counterparty.Prefix.Apply(commitment.PacketCommitmentPath(
		msg.Packet.SourcePort.String(), msg.Packet.SourceChannel.String(), msg.Packet.Sequence))
	if err != nil {
		return err
	}

	if err := proof.VerifyMembership(clientState.ProofSpecs, consensusState.Root, path, msg.Packet.Commitment()); err != nil {
		return err
	}

	v.log.Debug("verified packet recv proof",
		"client", connection.ClientID, "sequence", msg.Packet.Sequence, "height", msg.ProofHeight)
	return nil
}

// VerifyPacketAckProof verifies that the counterparty wrote the claimed
// acknowledgement for a packet this chain sent.
func (v *Verifier) VerifyPacketAckProof(ctx context.Context, connection *types.ConnectionEnd, msg *types.MsgAcknowledgement) error {
	clientState, consensusState, err := v.trustedClientAndConsensusState(ctx, connection.ClientID, msg.ProofHeight, connection)
	if err != nil {
		return err
	}

	proof, err := commitment.UnmarshalMerkleProof(msg.ProofAcked)
	if err != nil {
		return err
	}
	path, err := connection.Counterparty.Prefix.Apply(commitment.PacketAcknowledgementPath(
		msg.Packet.DestinationPort.String(), msg.Packet.DestinationChannel.String(), msg.Packet.Sequence))
	if err != nil {
		return err
	}

	if err := proof.VerifyMembership(clientState.ProofSpecs, consensusState.Root, path, msg.Acknowledgement); err != nil {
		return err
	}

	v.log.Debug("verified packet ack proof",
		"client", connection.ClientID, "sequence", msg.Packet.Sequence, "height", msg.ProofHeight)
	return nil
}

// VerifyPacketTimeoutProof verifies, for an ordered channel, that the
// counterparty's next-sequence-receive counter proves the packet was never
// received before it timed out.
func (v *Verifier) VerifyPacketTimeoutProof(ctx context.Context, connection *types.ConnectionEnd, msg *types.MsgTimeout) error {
	clientState, consensusState, err := v.trustedClientAndConsensusState(ctx, connection.ClientID, msg.ProofHeight, connection)
	if err != nil {
		return err
	}

	seqBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(seqBytes, msg.NextSequenceRecv)

	proof, err := commitment.UnmarshalMerkleProof(msg.ProofUnreceived)
	if err != nil {
		return err
	}
	path, err := connection.Counterparty.Prefix.Apply(commitment.NextSequenceRecvPath(
		msg.Packet.DestinationPort.String(), msg.Packet.DestinationChannel.String()))
	if err != nil {
		return err
	}

	if err := proof.VerifyMembership(clientState.ProofSpecs, consensusState.Root, path, seqBytes); err != nil {
		return err
	}

	v.log.Debug("verified packet timeout proof",
		"client", connection.ClientID, "sequence", msg.Packet.Sequence, "next_seq_recv", msg.NextSequenceRecv)
	return nil
}

// VerifyPacketTimeoutAbsenceProof verifies, for an unordered channel, that
// no receipt exists for the packet on the counterparty: a non-membership
// proof at the receipt path.
func (v *Verifier) VerifyPacketTimeoutAbsenceProof(ctx context.Context, connection *types.ConnectionEnd, msg *types.MsgTimeout) error {
	clientState, consensusState, err := v.trustedClientAndConsensusState(ctx, connection.ClientID, msg.ProofHeight, connection)
	if err != nil {
		return err
	}

	proof, err := commitment.UnmarshalMerkleProof(msg.ProofUnreceived)
	if err != nil {
		return err
	}
	path, err := connection.Counterparty.Prefix.Apply(commitment.PacketReceiptPath(
		msg.Packet.DestinationPort.String(), msg.Packet.DestinationChannel.String(), msg.Packet.Sequence))
	if err != nil {
		return err
	}

	if err := proof.VerifyNonMembership(clientState.ProofSpecs, consensusState.Root, path); err != nil {
		return err
	}

	v.log.Debug("verified packet timeout absence proof",
		"client", connection.ClientID, "sequence", msg.Packet.Sequence, "height", msg.ProofHeight)
	return nil
}
