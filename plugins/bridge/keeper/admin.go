package keeper

import (
	"bytes"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/astermint/node/plugins/bridge/types"
)

func (k Keeper) checkOwner(ctx sdk.Context, from sdk.AccAddress) sdk.Error {
	config, err := k.GetConfig(ctx)
	if err != nil {
		return err
	}
	if !bytes.Equal(config.Owner, from) {
		return sdk.ErrUnauthorized("only the bridge owner may run this operation")
	}
	return nil
}

// ProcessAddSigner registers a trusted attestor key. Both the key and the
// label must be unique among the loaded signers.
func (k Keeper) ProcessAddSigner(ctx sdk.Context, msg types.AddSignerMsg) sdk.Error {
	if err := k.checkOwner(ctx, msg.From); err != nil {
		return err
	}

	entry := types.SignerEntry{PubKey: msg.PubKey, Label: msg.Label}
	if err := entry.Validate(); err != nil {
		return err
	}
	if _, ok := k.GetSigner(ctx, msg.PubKey); ok {
		return types.ErrInvalidConfiguration(
			fmt.Sprintf("signer key %s is already registered", entry.EncodedPubKey()))
	}
	if k.HasSignerLabel(ctx, msg.Label) {
		return types.ErrInvalidConfiguration(
			fmt.Sprintf("signer label %s is already in use", msg.Label))
	}

	k.SetSigner(ctx, entry)
	return nil
}

func (k Keeper) ProcessRemoveSigner(ctx sdk.Context, msg types.RemoveSignerMsg) sdk.Error {
	if err := k.checkOwner(ctx, msg.From); err != nil {
		return err
	}

	if _, ok := k.GetSigner(ctx, msg.PubKey); !ok {
		return types.ErrInvalidConfiguration("signer key is not registered")
	}
	k.DeleteSigner(ctx, msg.PubKey)
	return nil
}

// ProcessDisableToken bars a linked token from bridging. Disabling an
// already disabled token is rejected, not treated as a no-op.
func (k Keeper) ProcessDisableToken(ctx sdk.Context, msg types.DisableTokenMsg) sdk.Error {
	if err := k.checkOwner(ctx, msg.From); err != nil {
		return err
	}

	denom, ok := k.GetMapped(ctx, msg.Ticker)
	if !ok {
		return types.ErrTokenDoesNotExist(msg.Ticker)
	}
	if k.IsDisabled(ctx, msg.Ticker) || k.IsDisabled(ctx, denom) {
		return types.ErrInvalidConfiguration(
			fmt.Sprintf("token %s is already disabled", msg.Ticker))
	}

	k.SetDisabled(ctx, msg.Ticker, denom)
	return nil
}

func (k Keeper) ProcessEnableToken(ctx sdk.Context, msg types.EnableTokenMsg) sdk.Error {
	if err := k.checkOwner(ctx, msg.From); err != nil {
		return err
	}

	denom, ok := k.GetMapped(ctx, msg.Ticker)
	if !ok {
		return types.ErrTokenDoesNotExist(msg.Ticker)
	}
	if !k.IsDisabled(ctx, msg.Ticker) && !k.IsDisabled(ctx, denom) {
		return types.ErrInvalidConfiguration(
			fmt.Sprintf("token %s is not disabled", msg.Ticker))
	}

	k.DeleteDisabled(ctx, msg.Ticker, denom)
	return nil
}

// ProcessUpdateConfig applies the non-zero fields of the message on top of
// the stored config and commits only if the merged config validates, so an
// update is never partially applied.
func (k Keeper) ProcessUpdateConfig(ctx sdk.Context, msg types.UpdateConfigMsg) sdk.Error {
	if err := k.checkOwner(ctx, msg.From); err != nil {
		return err
	}

	config, err := k.GetConfig(ctx)
	if err != nil {
		return err
	}

	if msg.SourceChainID != "" {
		config.SourceChainID = msg.SourceChainID
	}
	if msg.TransportChannel != "" {
		if !k.Transport.HasChannel(ctx, msg.TransportChannel) {
			return types.ErrInvalidConfiguration(
				fmt.Sprintf("transport channel %s does not exist", msg.TransportChannel))
		}
		config.TransportChannel = msg.TransportChannel
	}
	if msg.IBCTimeoutSeconds != 0 {
		config.IBCTimeoutSeconds = msg.IBCTimeoutSeconds
	}
	if msg.SignerThreshold != 0 {
		config.SignerThreshold = msg.SignerThreshold
	}

	if err := config.Validate(); err != nil {
		return err
	}
	k.SetConfig(ctx, config)
	return nil
}

//----------------------------------------
// Two-phase ownership transfer

func (k Keeper) ProcessProposeOwner(ctx sdk.Context, msg types.ProposeOwnerMsg) sdk.Error {
	if err := k.checkOwner(ctx, msg.From); err != nil {
		return err
	}
	k.SetOwnershipProposal(ctx, types.OwnershipProposal{
		Proposed:     msg.NewOwner,
		ExpireHeight: ctx.BlockHeight() + types.OwnershipProposalBlocks,
	})
	return nil
}

func (k Keeper) ProcessDropOwnerProposal(ctx sdk.Context, msg types.DropOwnerProposalMsg) sdk.Error {
	if err := k.checkOwner(ctx, msg.From); err != nil {
		return err
	}
	if _, ok := k.GetOwnershipProposal(ctx); !ok {
		return types.ErrInvalidConfiguration("no ownership proposal is pending")
	}
	k.ClearOwnershipProposal(ctx)
	return nil
}

func (k Keeper) ProcessClaimOwner(ctx sdk.Context, msg types.ClaimOwnerMsg) sdk.Error {
	proposal, ok := k.GetOwnershipProposal(ctx)
	if !ok {
		return types.ErrInvalidConfiguration("no ownership proposal is pending")
	}
	if !bytes.Equal(proposal.Proposed, msg.From) {
		return sdk.ErrUnauthorized("only the proposed owner may claim ownership")
	}
	if ctx.BlockHeight() > proposal.ExpireHeight {
		return types.ErrInvalidConfiguration("ownership proposal has expired")
	}

	config, err := k.GetConfig(ctx)
	if err != nil {
		return err
	}
	config.Owner = msg.From
	k.SetConfig(ctx, config)
	k.ClearOwnershipProposal(ctx)
	return nil
}
