package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// TransferFee is the escrowed fee schedule for one outbound transfer, split
// by the branch the transport layer may take. Whichever branch does not fire
// is refunded at reconciliation time.
type TransferFee struct {
	RecvFee    sdk.Coins `json:"recv_fee"`
	AckFee     sdk.Coins `json:"ack_fee"`
	TimeoutFee sdk.Coins `json:"timeout_fee"`
}

// Total sums the three buckets for the given denom.
func (f TransferFee) Total(denom string) int64 {
	return f.RecvFee.AmountOf(denom) + f.AckFee.AmountOf(denom) + f.TimeoutFee.AmountOf(denom)
}

// InFlightAsset is the ledger record for an outbound transfer awaiting its
// asynchronous outcome. The escrow stays with the bridge account until
// exactly one of the success, error or timeout reconciliations removes the
// record.
type InFlightAsset struct {
	Sender sdk.AccAddress `json:"sender"`
	Funds  sdk.Coin       `json:"funds"`
	Fees   TransferFee    `json:"fees"`
}

func (a InFlightAsset) String() string {
	return fmt.Sprintf("InFlightAsset{%s#%s}", a.Sender.String(), a.Funds.String())
}

// PendingOutbound stages an InFlightAsset between the transfer dispatch and
// the confirmation that carries its (channel, sequence) identifiers. The
// slot holds at most one payload; a dispatch while it is occupied is
// rejected rather than silently overwritten.
type PendingOutbound struct {
	Asset InFlightAsset `json:"asset"`
}
