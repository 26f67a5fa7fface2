// Package state provides an in-memory snapshot of the trust material the
// verifier reads: client states, verified consensus states, client update
// records, and the current chain height and time. The client-update
// subsystem populates it; the verifier only reads it.
package state

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/relaycore/relaycore/types"
)

// ErrNotFound is returned for any lookup of trust material that was never
// recorded.
var ErrNotFound = errors.New("state: not found")

// consensusKey addresses per-height records of one client.
type consensusKey struct {
	client types.ClientID
	height types.Height
}

// Snapshot is an in-memory implementation of the verifier's state-read
// contract. Reads are safe for concurrent use; writes are expected to stop
// before verification begins, matching the immutable-snapshot model.
type Snapshot struct {
	mu            sync.RWMutex
	clients       map[types.ClientID]*types.ClientState
	consensus     map[consensusKey]*types.ConsensusState
	updateHeights map[consensusKey]types.Height
	updateTimes   map[consensusKey]types.Timestamp
	blockHeight   uint64
	blockTime     types.Timestamp
}

// NewSnapshot creates an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		clients:       make(map[types.ClientID]*types.ClientState),
		consensus:     make(map[consensusKey]*types.ConsensusState),
		updateHeights: make(map[consensusKey]types.Height),
		updateTimes:   make(map[consensusKey]types.Timestamp),
	}
}

// SetClientState records the client state for clientID.
func (s *Snapshot) SetClientState(clientID types.ClientID, cs *types.ClientState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients[clientID] = cs
}

// SetConsensusState records a verified consensus state for clientID at
// height.
func (s *Snapshot) SetConsensusState(clientID types.ClientID, height types.Height, cs *types.ConsensusState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.consensus[consensusKey{client: clientID, height: height}] = cs
}

// RecordUpdate records the local chain height and time at which the
// consensus state for (clientID, height) was first stored.
func (s *Snapshot) RecordUpdate(clientID types.ClientID, height types.Height, processedHeight types.Height, processedTime types.Timestamp) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := consensusKey{client: clientID, height: height}
	s.updateHeights[key] = processedHeight
	s.updateTimes[key] = processedTime
}

// SetBlock records the current local chain height and time.
func (s *Snapshot) SetBlock(height uint64, timestamp types.Timestamp) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blockHeight = height
	s.blockTime = timestamp
}

// ClientState returns the client state recorded for clientID.
func (s *Snapshot) ClientState(ctx context.Context, clientID types.ClientID) (*types.ClientState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	cs, ok := s.clients[clientID]
	if !ok {
		return nil, fmt.Errorf("%w: client %s", ErrNotFound, clientID)
	}
	return cs, nil
}

// VerifiedConsensusState returns the consensus state recorded for clientID
// at height.
func (s *Snapshot) VerifiedConsensusState(ctx context.Context, clientID types.ClientID, height types.Height) (*types.ConsensusState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	cs, ok := s.consensus[consensusKey{client: clientID, height: height}]
	if !ok {
		return nil, fmt.Errorf("%w: consensus state for client %s at %s", ErrNotFound, clientID, height)
	}
	return cs, nil
}

// ClientUpdateHeight returns the local height at which (clientID, height)
// was recorded.
func (s *Snapshot) ClientUpdateHeight(ctx context.Context, clientID types.ClientID, height types.Height) (types.Height, error) {
	if err := ctx.Err(); err != nil {
		return types.Height{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.updateHeights[consensusKey{client: clientID, height: height}]
	if !ok {
		return types.Height{}, fmt.Errorf("%w: update height for client %s at %s", ErrNotFound, clientID, height)
	}
	return h, nil
}

// ClientUpdateTime returns the local time at which (clientID, height) was
// recorded.
func (s *Snapshot) ClientUpdateTime(ctx context.Context, clientID types.ClientID, height types.Height) (types.Timestamp, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.updateTimes[consensusKey{client: clientID, height: height}]
	if !ok {
		return 0, fmt.Errorf("%w: update time for client %s at %s", ErrNotFound, clientID, height)
	}
	return t, nil
}

// BlockHeight returns the current local chain height.
func (s *Snapshot) BlockHeight(ctx context.Context) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.blockHeight, nil
}

// BlockTimestamp returns the current local chain time.
func (s *Snapshot) BlockTimestamp(ctx context.Context) (types.Timestamp, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.blockTime, nil
}
