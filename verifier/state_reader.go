package verifier

import (
	"context"

	"github.com/relaycore/relaycore/types"
)

// StateReader is the read-only view of locally recorded trust material the
// verifier needs. Implementations serve an immutable, versioned snapshot:
// all methods are idempotent, side-effect free, and safe for concurrent use.
// Reads may suspend on I/O; they must honor ctx cancellation.
//
// Any StateReader works with the Verifier; there is no per-implementation
// wiring beyond satisfying this interface.
type StateReader interface {
	// ClientState returns the client state recorded for clientID.
	ClientState(ctx context.Context, clientID types.ClientID) (*types.ClientState, error)

	// VerifiedConsensusState returns the consensus state recorded and
	// verified for clientID at height. A consensus state that was merely
	// claimed but never verified must not be returned.
	VerifiedConsensusState(ctx context.Context, clientID types.ClientID, height types.Height) (*types.ConsensusState, error)

	// ClientUpdateHeight returns the local chain height at which the
	// consensus state for (clientID, height) was first recorded.
	ClientUpdateHeight(ctx context.Context, clientID types.ClientID, height types.Height) (types.Height, error)

	// ClientUpdateTime returns the local chain time at which the consensus
	// state for (clientID, height) was first recorded.
	ClientUpdateTime(ctx context.Context, clientID types.ClientID, height types.Height) (types.Timestamp, error)

	// BlockHeight returns the current local chain height.
	BlockHeight(ctx context.Context) (uint64, error)

	// BlockTimestamp returns the current local chain time.
	BlockTimestamp(ctx context.Context) (types.Timestamp, error)
}
