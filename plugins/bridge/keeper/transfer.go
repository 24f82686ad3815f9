package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	cmmtypes "github.com/astermint/node/common/types"
	"github.com/astermint/node/plugins/bridge/types"
)

// ProcessLinkToken verifies the link attestation and dispatches the wrapped
// denom creation. The token metadata is parked in the pending-link slot
// until CompleteTokenLink consumes the creation confirmation.
func (k Keeper) ProcessLinkToken(ctx sdk.Context, msg types.LinkTokenMsg) sdk.Error {
	config, err := k.GetConfig(ctx)
	if err != nil {
		return err
	}
	if msg.SourceChainID != config.SourceChainID {
		return types.ErrInvalidConfiguration(
			fmt.Sprintf("unexpected source chain %s, bridge is configured for %s", msg.SourceChainID, config.SourceChainID))
	}

	if _, ok := k.GetMapped(ctx, msg.Token.Ticker); ok {
		return types.ErrTokenAlreadyExists(msg.Token.Ticker)
	}
	if pending, ok := k.GetPendingLink(ctx); ok {
		return types.ErrInvalidConfiguration(
			fmt.Sprintf("link of %s is still awaiting confirmation", pending.Ticker))
	}

	attestation := types.LinkAttestation(config.SourceChainID, msg.Token.Ticker,
		msg.Token.Decimals, ctx.BlockHeader().ChainID, types.BridgeAccount)
	if err := k.VerifyAttestation(ctx, attestation, msg.Signatures); err != nil {
		return err
	}

	k.SetPendingLink(ctx, msg.Token)
	if _, err := k.DenomFactory.CreateDenom(ctx, types.BridgeAccount, msg.Token.Ticker); err != nil {
		return err
	}
	return nil
}

// CompleteTokenLink finishes a link once the denom creation confirmation
// arrives with the new denom spelling. It records both mapping directions,
// attaches display metadata and frees the pending slot.
func (k Keeper) CompleteTokenLink(ctx sdk.Context, denom string) sdk.Error {
	token, ok := k.GetPendingLink(ctx)
	if !ok {
		return types.ErrIBCResponseFail("no token link is awaiting confirmation")
	}

	if err := k.DenomFactory.SetDenomMetadata(ctx, denom, token.Name, token.Ticker,
		fmt.Sprintf("%s bridged from the hub chain", token.Name), token.Decimals); err != nil {
		return err
	}

	k.SetTokenMapping(ctx, token.Ticker, denom)
	k.ClearPendingLink(ctx)
	return nil
}

// ProcessReceive settles an inbound transfer. The transaction hash is
// recorded before signature verification on purpose: once the structural
// checks pass the hash is burned, so two racing submissions can not both
// reach the mint even if both carry valid signatures.
func (k Keeper) ProcessReceive(ctx sdk.Context, msg types.ReceiveMsg) sdk.Error {
	config, err := k.GetConfig(ctx)
	if err != nil {
		return err
	}
	if msg.SourceChainID != config.SourceChainID {
		return types.ErrInvalidConfiguration(
			fmt.Sprintf("unexpected source chain %s, bridge is configured for %s", msg.SourceChainID, config.SourceChainID))
	}

	if k.IsDisabled(ctx, msg.Ticker) {
		return types.ErrTokenDisabled(msg.Ticker)
	}
	if msg.Amount <= 0 {
		return types.ErrZeroAmount()
	}
	if len(msg.DestinationAddr) != sdk.AddrLen {
		return types.ErrInvalidDestinationAddr(msg.DestinationAddr.String())
	}

	denom, ok := k.GetMapped(ctx, msg.Ticker)
	if !ok {
		return types.ErrTokenDoesNotExist(msg.Ticker)
	}

	if k.IsHandled(ctx, msg.SourceChainID, msg.TransactionHash) {
		return types.ErrTransactionAlreadyHandled(msg.TransactionHash)
	}
	k.MarkHandled(ctx, msg.SourceChainID, msg.TransactionHash)

	attestation := types.ReceiveAttestation(config.SourceChainID, msg.TransactionHash,
		msg.Ticker, msg.Amount, ctx.BlockHeader().ChainID, types.BridgeAccount, msg.DestinationAddr)
	if err := k.VerifyAttestation(ctx, attestation, msg.Signatures); err != nil {
		return err
	}

	// the factory can only mint to the bridge account, delivery is a
	// separate transfer
	if err := k.DenomFactory.MintCoins(ctx, denom, msg.Amount); err != nil {
		return err
	}
	_, err = k.BankKeeper.SendCoins(ctx, types.BridgeAccount, msg.DestinationAddr,
		sdk.Coins{sdk.Coin{Denom: denom, Amount: msg.Amount}})
	return err
}

// splitSendFunds picks apart the two attached coins into the wrapped token
// going back to the hub and the native fee coin.
func splitSendFunds(funds sdk.Coins) (bridged sdk.Coin, fee sdk.Coin, err sdk.Error) {
	if len(funds) != 2 {
		return sdk.Coin{}, sdk.Coin{}, types.ErrInvalidFunds()
	}
	for _, coin := range funds {
		if coin.Amount <= 0 {
			return sdk.Coin{}, sdk.Coin{}, types.ErrInvalidFunds()
		}
		if coin.Denom == cmmtypes.NativeTokenSymbol {
			fee = coin
		} else {
			bridged = coin
		}
	}
	if fee.Denom == "" || bridged.Denom == "" {
		return sdk.Coin{}, sdk.Coin{}, types.ErrInvalidFunds()
	}
	return bridged, fee, nil
}

// ProcessSend burns the attached wrapped token and dispatches the outbound
// transfer carrying the indexer memo. The escrow is staged in the
// pending-outbound slot until the dispatch confirmation delivers the
// (channel, sequence) tuple.
func (k Keeper) ProcessSend(ctx sdk.Context, msg types.SendMsg) sdk.Error {
	config, err := k.GetConfig(ctx)
	if err != nil {
		return err
	}

	bridged, fee, err := splitSendFunds(msg.Funds)
	if err != nil {
		return err
	}

	ticker, ok := k.GetMapped(ctx, bridged.Denom)
	if !ok {
		return types.ErrTokenDoesNotExist(bridged.Denom)
	}
	if k.IsDisabled(ctx, ticker) || k.IsDisabled(ctx, bridged.Denom) {
		return types.ErrTokenDisabled(ticker)
	}

	if _, ok := k.GetPendingOutbound(ctx); ok {
		return types.ErrInvalidConfiguration("an outbound transfer is still awaiting dispatch confirmation")
	}

	fees, err := k.Transport.GetMinTransferFee(ctx, config.TransportChannel)
	if err != nil {
		return err
	}
	totalFee := fees.Total(cmmtypes.NativeTokenSymbol)
	// one unit of the native token rides along with the transfer itself
	if fee.Amount-1 < totalFee {
		return types.ErrInsufficientFunds(totalFee + 1)
	}

	memo := types.BuildTransferMemo(config.SourceChainID, ticker, bridged.Amount,
		msg.DestinationAddr, ctx.BlockHeader().ChainID, msg.From)

	if _, err := k.BankKeeper.SendCoins(ctx, msg.From, types.BridgeAccount, msg.Funds); err != nil {
		return err
	}
	if err := k.DenomFactory.BurnCoins(ctx, bridged.Denom, bridged.Amount); err != nil {
		return err
	}

	k.SetPendingOutbound(ctx, types.PendingOutbound{
		Asset: types.InFlightAsset{
			Sender: msg.From,
			Funds:  bridged,
			Fees:   fees,
		},
	})

	return k.Transport.SendTransfer(ctx, config.TransportChannel, types.BridgeAccount,
		msg.DestinationAddr, sdk.Coin{Denom: cmmtypes.NativeTokenSymbol, Amount: 1},
		fees, memo, config.IBCTimeoutSeconds)
}

// CompleteSendDispatch moves the staged escrow into the in-flight ledger
// under the (channel, sequence) the transport layer assigned.
func (k Keeper) CompleteSendDispatch(ctx sdk.Context, channelID string, sequence uint64) sdk.Error {
	pending, ok := k.GetPendingOutbound(ctx)
	if !ok {
		return types.ErrIBCResponseFail("no outbound transfer is awaiting dispatch confirmation")
	}
	if _, ok := k.GetInFlight(ctx, channelID, sequence); ok {
		return types.ErrIBCResponseFail(
			fmt.Sprintf("in-flight entry for channel %s sequence %d already exists", channelID, sequence))
	}

	k.SetInFlight(ctx, channelID, sequence, pending.Asset)
	k.ClearPendingOutbound(ctx)
	return nil
}

// ProcessRetrySend is a pass-through to the transport layer, no local state
// changes.
func (k Keeper) ProcessRetrySend(ctx sdk.Context, msg types.RetrySendMsg) sdk.Error {
	return k.Transport.ResubmitFailure(ctx, msg.From, msg.FailureID)
}
