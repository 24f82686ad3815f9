package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// OwnershipProposal is the transient record of a two-phase ownership
// transfer. It exists between ProposeOwner and the matching ClaimOwner or
// DropOwnerProposal, and can no longer be claimed past ExpireHeight.
type OwnershipProposal struct {
	Proposed     sdk.AccAddress `json:"proposed"`
	ExpireHeight int64          `json:"expire_height"`
}
