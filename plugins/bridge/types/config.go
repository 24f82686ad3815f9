package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Config is the singleton bridge configuration. Owner is the only identity
// allowed to mutate it or to run owner-only operations. SignerThreshold of 0
// means the threshold is derived from the loaded signer count, see
// MajorityThreshold.
type Config struct {
	Owner             sdk.AccAddress `json:"owner"`
	SourceChainID     string         `json:"source_chain_id"`
	TransportChannel  string         `json:"transport_channel"`
	IBCTimeoutSeconds uint64         `json:"ibc_timeout_seconds"`
	SignerThreshold   uint32         `json:"signer_threshold,omitempty"`
}

func (c Config) String() string {
	return fmt.Sprintf("Config{%s#%s#%s#%d#%d}",
		c.Owner.String(), c.SourceChainID, c.TransportChannel, c.IBCTimeoutSeconds, c.SignerThreshold)
}

// Validate checks every field invariant. It is applied both at genesis and on
// every UpdateConfig so a partially valid config can never be committed.
func (c Config) Validate() sdk.Error {
	if len(c.Owner) != sdk.AddrLen {
		return ErrInvalidConfiguration("owner address is invalid")
	}
	if len(c.SourceChainID) == 0 {
		return ErrInvalidConfiguration("source chain id must not be empty")
	}
	if len(c.TransportChannel) == 0 {
		return ErrInvalidConfiguration("transport channel must not be empty")
	}
	if c.IBCTimeoutSeconds < MinIBCTimeoutSeconds || c.IBCTimeoutSeconds > MaxIBCTimeoutSeconds {
		return ErrInvalidIBCTimeout(c.IBCTimeoutSeconds)
	}
	if c.SignerThreshold != 0 && c.SignerThreshold < MinSignerThreshold {
		return ErrInvalidConfiguration(
			fmt.Sprintf("signer threshold must be at least %d", MinSignerThreshold))
	}
	return nil
}

// MajorityThreshold returns the number of valid signatures required to accept
// an attestation given the loaded signer count. An explicit threshold in the
// config wins; otherwise a strict majority of signers is required, never less
// than MinSignerThreshold.
func (c Config) MajorityThreshold(signerCount int) int {
	if c.SignerThreshold != 0 {
		return int(c.SignerThreshold)
	}
	var threshold int
	if signerCount%2 == 0 {
		threshold = signerCount/2 + 1
	} else {
		threshold = (signerCount + 1) / 2
	}
	if threshold < MinSignerThreshold {
		threshold = MinSignerThreshold
	}
	return threshold
}
