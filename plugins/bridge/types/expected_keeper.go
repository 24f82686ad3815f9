package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// DenomFactory is the token-factory capability the bridge mints and burns
// wrapped denoms through. Minting always lands on the bridge account first;
// delivery to the final recipient is a separate bank transfer.
type DenomFactory interface {
	// CreateDenom registers a new wrapped denom owned by creator and returns
	// its full spelling.
	CreateDenom(ctx sdk.Context, creator sdk.AccAddress, subDenom string) (string, sdk.Error)

	// SetDenomMetadata attaches display metadata to an existing denom.
	SetDenomMetadata(ctx sdk.Context, denom, name, symbol, description string, displayExponent uint8) sdk.Error

	// MintCoins mints amount of denom to the denom owner's account.
	MintCoins(ctx sdk.Context, denom string, amount int64) sdk.Error

	// BurnCoins burns amount of denom from the denom owner's account.
	BurnCoins(ctx sdk.Context, denom string, amount int64) sdk.Error
}

// TransportKeeper is the asynchronous message-transport capability used for
// outbound transfers. Dispatch is fire-and-forget; the (channel, sequence)
// correlation arrives later through the TransportApplication callbacks.
type TransportKeeper interface {
	// HasChannel reports whether the channel exists and is open.
	HasChannel(ctx sdk.Context, channelID string) bool

	// GetMinTransferFee returns the current minimum fee schedule required to
	// relay one transfer over the channel.
	GetMinTransferFee(ctx sdk.Context, channelID string) (TransferFee, sdk.Error)

	// SendTransfer dispatches funds over the channel with the given memo and
	// relative timeout. The fee schedule is escrowed by the caller.
	SendTransfer(ctx sdk.Context, channelID string, sender sdk.AccAddress,
		receiver string, funds sdk.Coin, fees TransferFee, memo string, timeoutSeconds uint64) sdk.Error

	// ResubmitFailure asks the transport layer to retry a previously failed
	// delivery by its opaque failure identifier.
	ResubmitFailure(ctx sdk.Context, sender sdk.AccAddress, failureID uint64) sdk.Error
}

// TransportApplication is implemented by the bridge and registered with the
// transport layer so asynchronous outcomes and dispatch confirmations flow
// back into it. Payloads are the transport layer's JSON callback bodies.
type TransportApplication interface {
	OnAcknowledged(ctx sdk.Context, payload []byte) sdk.Error
	OnError(ctx sdk.Context, payload []byte) sdk.Error
	OnTimeout(ctx sdk.Context, payload []byte) sdk.Error
	OnReply(ctx sdk.Context, replyID uint64, payload []byte) sdk.Error
}
