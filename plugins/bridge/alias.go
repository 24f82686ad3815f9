package bridge

import (
	"github.com/astermint/node/plugins/bridge/keeper"
	"github.com/astermint/node/plugins/bridge/types"
)

var (
	NewKeeper    = keeper.NewKeeper
	VerifySingle = keeper.VerifySingle
)

type (
	Keeper = keeper.Keeper

	LinkTokenMsg    = types.LinkTokenMsg
	EnableTokenMsg  = types.EnableTokenMsg
	DisableTokenMsg = types.DisableTokenMsg
	ReceiveMsg      = types.ReceiveMsg
	SendMsg         = types.SendMsg
	RetrySendMsg    = types.RetrySendMsg

	AddSignerMsg         = types.AddSignerMsg
	RemoveSignerMsg      = types.RemoveSignerMsg
	UpdateConfigMsg      = types.UpdateConfigMsg
	ProposeOwnerMsg      = types.ProposeOwnerMsg
	DropOwnerProposalMsg = types.DropOwnerProposalMsg
	ClaimOwnerMsg        = types.ClaimOwnerMsg

	Config        = types.Config
	TokenMetadata = types.TokenMetadata
	SignerEntry   = types.SignerEntry
	TransferFee   = types.TransferFee
)
