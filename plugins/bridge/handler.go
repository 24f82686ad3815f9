package bridge

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	cmmtypes "github.com/astermint/node/common/types"
	"github.com/astermint/node/plugins/bridge/types"
)

func NewHandler(keeper Keeper) sdk.Handler {
	return func(ctx sdk.Context, msg sdk.Msg) sdk.Result {
		switch msg := msg.(type) {
		case types.LinkTokenMsg:
			return handleLinkToken(ctx, keeper, msg)
		case types.EnableTokenMsg:
			return handleEnableToken(ctx, keeper, msg)
		case types.DisableTokenMsg:
			return handleDisableToken(ctx, keeper, msg)
		case types.ReceiveMsg:
			return handleReceive(ctx, keeper, msg)
		case types.SendMsg:
			return handleSend(ctx, keeper, msg)
		case types.RetrySendMsg:
			return handleRetrySend(ctx, keeper, msg)
		case types.AddSignerMsg:
			return handleAddSigner(ctx, keeper, msg)
		case types.RemoveSignerMsg:
			return handleRemoveSigner(ctx, keeper, msg)
		case types.UpdateConfigMsg:
			return handleUpdateConfig(ctx, keeper, msg)
		case types.ProposeOwnerMsg:
			return handleProposeOwner(ctx, keeper, msg)
		case types.DropOwnerProposalMsg:
			return handleDropOwnerProposal(ctx, keeper, msg)
		case types.ClaimOwnerMsg:
			return handleClaimOwner(ctx, keeper, msg)
		default:
			errMsg := "Unrecognized bridge msg type"
			return sdk.ErrUnknownRequest(errMsg).Result()
		}
	}
}

func handleLinkToken(ctx sdk.Context, keeper Keeper, msg types.LinkTokenMsg) sdk.Result {
	if err := keeper.ProcessLinkToken(ctx, msg); err != nil {
		return err.Result()
	}
	return sdk.Result{}
}

func handleEnableToken(ctx sdk.Context, keeper Keeper, msg types.EnableTokenMsg) sdk.Result {
	if err := keeper.ProcessEnableToken(ctx, msg); err != nil {
		return err.Result()
	}
	return sdk.Result{}
}

func handleDisableToken(ctx sdk.Context, keeper Keeper, msg types.DisableTokenMsg) sdk.Result {
	if err := keeper.ProcessDisableToken(ctx, msg); err != nil {
		return err.Result()
	}
	return sdk.Result{}
}

func handleReceive(ctx sdk.Context, keeper Keeper, msg types.ReceiveMsg) sdk.Result {
	if err := keeper.ProcessReceive(ctx, msg); err != nil {
		return err.Result()
	}
	if ctx.IsDeliverTx() {
		publishTransferEvent(ctx, keeper, transferInType, msg.Ticker, msg.Amount,
			msg.TransactionHash, msg.DestinationAddr.String())
	}
	return sdk.Result{}
}

func handleSend(ctx sdk.Context, keeper Keeper, msg types.SendMsg) sdk.Result {
	if err := keeper.ProcessSend(ctx, msg); err != nil {
		return err.Result()
	}
	if ctx.IsDeliverTx() {
		var bridged sdk.Coin
		for _, coin := range msg.Funds {
			if coin.Denom != cmmtypes.NativeTokenSymbol {
				bridged = coin
			}
		}
		ticker, _ := keeper.GetMapped(ctx, bridged.Denom)
		publishTransferEvent(ctx, keeper, transferOutType, ticker, bridged.Amount,
			msg.From.String(), msg.DestinationAddr)
	}
	return sdk.Result{}
}

func handleRetrySend(ctx sdk.Context, keeper Keeper, msg types.RetrySendMsg) sdk.Result {
	if err := keeper.ProcessRetrySend(ctx, msg); err != nil {
		return err.Result()
	}
	return sdk.Result{}
}

func handleAddSigner(ctx sdk.Context, keeper Keeper, msg types.AddSignerMsg) sdk.Result {
	if err := keeper.ProcessAddSigner(ctx, msg); err != nil {
		return err.Result()
	}
	return sdk.Result{}
}

func handleRemoveSigner(ctx sdk.Context, keeper Keeper, msg types.RemoveSignerMsg) sdk.Result {
	if err := keeper.ProcessRemoveSigner(ctx, msg); err != nil {
		return err.Result()
	}
	return sdk.Result{}
}

func handleUpdateConfig(ctx sdk.Context, keeper Keeper, msg types.UpdateConfigMsg) sdk.Result {
	if err := keeper.ProcessUpdateConfig(ctx, msg); err != nil {
		return err.Result()
	}
	return sdk.Result{}
}

func handleProposeOwner(ctx sdk.Context, keeper Keeper, msg types.ProposeOwnerMsg) sdk.Result {
	if err := keeper.ProcessProposeOwner(ctx, msg); err != nil {
		return err.Result()
	}
	return sdk.Result{}
}

func handleDropOwnerProposal(ctx sdk.Context, keeper Keeper, msg types.DropOwnerProposalMsg) sdk.Result {
	if err := keeper.ProcessDropOwnerProposal(ctx, msg); err != nil {
		return err.Result()
	}
	return sdk.Result{}
}

func handleClaimOwner(ctx sdk.Context, keeper Keeper, msg types.ClaimOwnerMsg) sdk.Result {
	if err := keeper.ProcessClaimOwner(ctx, msg); err != nil {
		return err.Result()
	}
	return sdk.Result{}
}
