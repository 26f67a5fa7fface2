// Package verifier is the trust boundary of the cross-chain protocol. Every
// externally supplied claim about counterparty state — packets sent,
// acknowledgements written, channel, connection, client, or consensus state
// — passes through a Verifier before it may change local state.
//
// Verification resolves the trusted client and consensus state for the
// claimed proof height, rejecting frozen clients, unverified consensus
// states, untrusted heights, and proofs presented before the connection's
// delay period has elapsed, and only then checks the Merkle proof itself
// against the trusted root.
package verifier

import (
	"context"

	errorsmod "cosmossdk.io/errors"

	"github.com/relaycore/relaycore/commitment"
	"github.com/relaycore/relaycore/log"
	"github.com/relaycore/relaycore/types"
)

// Verifier verifies counterparty state claims against locally recorded
// trust material. It holds no mutable state of its own and is safe for
// concurrent use; all reads go through the StateReader snapshot.
type Verifier struct {
	state  StateReader
	config Config
	log    *log.Logger
}

// New creates a Verifier over the given state snapshot.
func New(state StateReader, config Config) (*Verifier, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	logger := config.Logger
	if logger == nil {
		logger = log.Default().Module("verifier")
	}
	return &Verifier{
		state:  state,
		config: config,
		log:    logger,
	}, nil
}

// trustedClientAndConsensusState resolves the trust material for a proof at
// height over the given connection. The checks run strictly in sequence —
// frozen client, verified consensus state, height bound, delay period — and
// the first failure short-circuits the remaining reads.
func (v *Verifier) trustedClientAndConsensusState(
	ctx context.Context,
	clientID types.ClientID,
	height types.Height,
	connection *types.ConnectionEnd,
) (*types.ClientState, *types.ConsensusState, error) {
	clientState, err := v.state.ClientState(ctx, clientID)
	if err != nil {
		return nil, nil, errorsmod.Wrapf(ErrClientNotFound, "client %s: %v", clientID, err)
	}

	if clientState.IsFrozen() {
		v.log.Warn("rejected proof for frozen client", "client", clientID, "frozen_height", clientState.FrozenHeight)
		return nil, nil, errorsmod.Wrapf(ErrFrozenClient, "client %s frozen at height %s", clientID, clientState.FrozenHeight)
	}

	consensusState, err := v.state.VerifiedConsensusState(ctx, clientID, height)
	if err != nil {
		return nil, nil, errorsmod.Wrapf(ErrConsensusStateNotFound, "client %s at height %s: %v", clientID, height, err)
	}

	if err := clientState.VerifyHeight(height); err != nil {
		return nil, nil, err
	}

	currentTime, err := v.state.BlockTimestamp(ctx)
	if err != nil {
		return nil, nil, err
	}
	currentHeight, err := v.state.BlockHeight(ctx)
	if err != nil {
		return nil, nil, err
	}
	processedHeight, err := v.state.ClientUpdateHeight(ctx, clientID, height)
	if err != nil {
		return nil, nil, errorsmod.Wrapf(ErrConsensusStateNotFound, "update height for client %s at height %s: %v", clientID, height, err)
	}
	processedTime, err := v.state.ClientUpdateTime(ctx, clientID, height)
	if err != nil {
		return nil, nil, errorsmod.Wrapf(ErrConsensusStateNotFound, "update time for client %s at height %s: %v", clientID, height, err)
	}

	delayBlocks := CalculateBlockDelay(connection.DelayPeriod, v.config.MaxExpectedTimePerBlock)

	// The current height is a local chain height; compare it within the
	// processed height's revision.
	if err := verifyDelayPassed(
		currentTime,
		types.NewHeight(processedHeight.RevisionNumber, currentHeight),
		processedTime,
		processedHeight,
		connection.DelayPeriod,
		delayBlocks,
	); err != nil {
		return nil, nil, err
	}

	return clientState, consensusState, nil
}

// VerifyChannelProof verifies that the counterparty committed the expected
// channel end for (portID, channelID) at proofHeight.
func (v *Verifier) VerifyChannelProof(
	ctx context.Context,
	connection *types.ConnectionEnd,
	proofBytes []byte,
	proofHeight types.Height,
	portID types.PortID,
	channelID types.ChannelID,
	expectedChannel *types.ChannelEnd,
) error {
	clientState, consensusState, err := v.trustedClientAndConsensusState(ctx, connection.ClientID, proofHeight, connection)
	if err != nil {
		return err
	}

	proof, err := commitment.UnmarshalMerkleProof(proofBytes)
	if err != nil {
		return err
	}
	path, err := connection.Counterparty.Prefix.Apply(commitment.ChannelPath(portID.String(), channelID.String()))
	if err != nil {
		return err
	}

	if err := proof.VerifyMembership(clientState.ProofSpecs, consensusState.Root, path, expectedChannel.EncodeVec()); err != nil {
		return err
	}

	v.log.Debug("verified channel proof", "client", connection.ClientID, "port", portID, "channel", channelID, "height", proofHeight)
	return nil
}

// VerifyConnectionState verifies that the counterparty committed the
// expected connection end. The trusted client and consensus state are
// supplied by the caller, which resolved them during the handshake.
func VerifyConnectionState(
	clientState *types.ClientState,
	height types.Height,
	prefix commitment.MerklePrefix,
	proof commitment.MerkleProof,
	root commitment.MerkleRoot,
	connectionID types.ConnectionID,
	expectedConnection *types.ConnectionEnd,
) error {
	if err := clientState.VerifyHeight(height); err != nil {
		return err
	}
	path, err := prefix.Apply(commitment.ConnectionPath(connectionID.String()))
	if err != nil {
		return err
	}
	return proof.VerifyMembership(clientState.ProofSpecs, root, path, expectedConnection.EncodeVec())
}

// VerifyClientFullState verifies that the counterparty committed the
// expected client state for its view of this chain.
func VerifyClientFullState(
	clientState *types.ClientState,
	height types.Height,
	prefix commitment.MerklePrefix,
	proof commitment.MerkleProof,
	root commitment.MerkleRoot,
	clientID types.ClientID,
	expectedClientState *types.ClientState,
) error {
	if err := clientState.VerifyHeight(height); err != nil {
		return err
	}
	value, err := expectedClientState.EncodeVec()
	if err != nil {
		return errorsmod.Wrapf(ErrEncodingFailure, "expected client state: %v", err)
	}
	path, err := prefix.Apply(commitment.ClientStatePath(clientID.String()))
	if err != nil {
		return err
	}
	return proof.VerifyMembership(clientState.ProofSpecs, root, path, value)
}

// VerifyClientConsensusState verifies that the counterparty committed the
// expected consensus state for its view of this chain at consensusHeight.
func VerifyClientConsensusState(
	clientState *types.ClientState,
	height types.Height,
	prefix commitment.MerklePrefix,
	proof commitment.MerkleProof,
	root commitment.MerkleRoot,
	clientID types.ClientID,
	consensusHeight types.Height,
	expectedConsensusState *types.ConsensusState,
) error {
	if err := clientState.VerifyHeight(height); err != nil {
		return err
	}
	path, err := prefix.Apply(commitment.ConsensusStatePath(clientID.String(), consensusHeight.RevisionNumber, consensusHeight.RevisionHeight))
	if err != nil {
		return err
	}
	return proof.VerifyMembership(clientState.ProofSpecs, root, path, expectedConsensusState.EncodeVec())
}
