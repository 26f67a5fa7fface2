package commitment

import (
	errorsmod "cosmossdk.io/errors"
)

const codespace = "commitment"

// Commitment errors. ErrInvalidProof covers every case where a structurally
// valid proof fails to verify; ErrMalformedProof covers proof bytes that do
// not decode into the structured form at all.
var (
	ErrInvalidProof   = errorsmod.Register(codespace, 2, "invalid proof")
	ErrMalformedProof = errorsmod.Register(codespace, 3, "malformed proof")
	ErrInvalidPrefix  = errorsmod.Register(codespace, 4, "invalid prefix")
	ErrInvalidPath    = errorsmod.Register(codespace, 5, "invalid merkle path")
	ErrInvalidRoot    = errorsmod.Register(codespace, 6, "invalid merkle root")
)
