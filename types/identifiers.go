package types

import (
	errorsmod "cosmossdk.io/errors"
)

// Protocol identifiers. Distinct types keep ports, channels, clients, and
// connections from being confused at call sites; the underlying values are
// the canonical string identifiers used in paths.
type (
	ClientID     string
	ConnectionID string
	PortID       string
	ChannelID    string
)

func (id ClientID) String() string     { return string(id) }
func (id ConnectionID) String() string { return string(id) }
func (id PortID) String() string       { return string(id) }
func (id ChannelID) String() string    { return string(id) }

// ValidateIdentifier rejects empty identifiers and identifiers containing a
// path separator, which would break the canonical path grammar.
func ValidateIdentifier(id string) error {
	if id == "" {
		return errorsmod.Wrap(ErrInvalidIdentifier, "identifier must not be empty")
	}
	for i := 0; i < len(id); i++ {
		if id[i] == '/' {
			return errorsmod.Wrapf(ErrInvalidIdentifier, "identifier %q must not contain '/'", id)
		}
	}
	return nil
}
