package types

import (
	errorsmod "cosmossdk.io/errors"
)

const codespace = "types"

var (
	// ErrInvalidHeight is returned when a proof height exceeds what the
	// local light client considers trustworthy, or fails a monotonicity
	// check.
	ErrInvalidHeight = errorsmod.Register(codespace, 2, "invalid height")

	// ErrInvalidIdentifier is returned for empty or malformed protocol
	// identifiers.
	ErrInvalidIdentifier = errorsmod.Register(codespace, 3, "invalid identifier")
)
