package verifier

import (
	errorsmod "cosmossdk.io/errors"
)

const codespace = "verifier"

// Verification errors. Every error is terminal for the verification call:
// the associated protocol message must be rejected in its entirety, and any
// retry is the caller's decision.
var (
	// ErrClientNotFound: no client state is recorded for the referenced
	// client identifier.
	ErrClientNotFound = errorsmod.Register(codespace, 2, "client not found")

	// ErrConsensusStateNotFound: no verified consensus state or update
	// record exists for the referenced (client, height).
	ErrConsensusStateNotFound = errorsmod.Register(codespace, 3, "consensus state not found")

	// ErrFrozenClient: the client was frozen for misbehaviour. Checked
	// before any proof work, regardless of proof validity.
	ErrFrozenClient = errorsmod.Register(codespace, 4, "client is frozen")

	// ErrDelayNotElapsed: the connection's delay period has not passed in
	// time, in blocks, or both.
	ErrDelayNotElapsed = errorsmod.Register(codespace, 5, "delay period not elapsed")

	// ErrEncodingFailure: an expected value failed to serialize. This is an
	// internal invariant violation, not bad user input.
	ErrEncodingFailure = errorsmod.Register(codespace, 6, "encoding failure")
)
