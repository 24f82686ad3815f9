package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	cmmtypes "github.com/astermint/node/common/types"
	"github.com/astermint/node/plugins/bridge/types"
)

// Reconciliation for in-flight transfers. Exactly one of the three outcomes
// removes a ledger entry; a second delivery of the same outcome finds no
// entry and fails loudly, which keeps double refunds structurally
// impossible.

func (k Keeper) takeInFlight(ctx sdk.Context, channelID string, sequence uint64) (types.InFlightAsset, sdk.Error) {
	asset, ok := k.GetInFlight(ctx, channelID, sequence)
	if !ok {
		return types.InFlightAsset{}, types.ErrUnknownInFlight(channelID, sequence)
	}
	k.DeleteInFlight(ctx, channelID, sequence)
	return asset, nil
}

func (k Keeper) refund(ctx sdk.Context, to sdk.AccAddress, coins sdk.Coins) sdk.Error {
	if coins.IsZero() {
		return nil
	}
	_, err := k.BankKeeper.SendCoins(ctx, types.BridgeAccount, to, coins)
	return err
}

// ReconcileSuccess handles an acknowledged transfer: the funds stay burned
// and only the unused timeout-fee bucket goes back to the sender.
func (k Keeper) ReconcileSuccess(ctx sdk.Context, channelID string, sequence uint64) sdk.Error {
	asset, err := k.takeInFlight(ctx, channelID, sequence)
	if err != nil {
		return err
	}
	return k.refund(ctx, asset.Sender, asset.Fees.TimeoutFee)
}

// ReconcileError undoes a failed transfer: the burned funds are minted back
// to the sender, along with the unused timeout-fee bucket and the one-unit
// native buffer that never left the chain.
func (k Keeper) ReconcileError(ctx sdk.Context, channelID string, sequence uint64) sdk.Error {
	asset, err := k.takeInFlight(ctx, channelID, sequence)
	if err != nil {
		return err
	}
	return k.compensate(ctx, asset, asset.Fees.TimeoutFee)
}

// ReconcileTimeout is the same compensating action as ReconcileError except
// the unused bucket is the ack-fee.
func (k Keeper) ReconcileTimeout(ctx sdk.Context, channelID string, sequence uint64) sdk.Error {
	asset, err := k.takeInFlight(ctx, channelID, sequence)
	if err != nil {
		return err
	}
	return k.compensate(ctx, asset, asset.Fees.AckFee)
}

func (k Keeper) compensate(ctx sdk.Context, asset types.InFlightAsset, unusedFee sdk.Coins) sdk.Error {
	if err := k.DenomFactory.MintCoins(ctx, asset.Funds.Denom, asset.Funds.Amount); err != nil {
		return err
	}
	if _, err := k.BankKeeper.SendCoins(ctx, types.BridgeAccount, asset.Sender,
		sdk.Coins{asset.Funds}); err != nil {
		return err
	}

	refund := unusedFee.Plus(sdk.Coins{sdk.Coin{Denom: cmmtypes.NativeTokenSymbol, Amount: 1}})
	return k.refund(ctx, asset.Sender, refund)
}
