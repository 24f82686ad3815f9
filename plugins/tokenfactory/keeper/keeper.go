package keeper

import (
	"encoding/json"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/x/bank"

	"github.com/astermint/node/plugins/tokenfactory/types"
	"github.com/astermint/node/wire"
)

func denomKey(denom string) []byte {
	return []byte("denom:" + denom)
}

// Keeper owns the factory denom records and the mint/burn primitive. Mints
// always land on the creator account and burns always draw from it, so the
// creator is the only escrow point for factory supply.
type Keeper struct {
	cdc *wire.Codec

	storeKey sdk.StoreKey

	BankKeeper bank.Keeper
}

func NewKeeper(cdc *wire.Codec, storeKey sdk.StoreKey, bankKeeper bank.Keeper) Keeper {
	return Keeper{
		cdc:        cdc,
		storeKey:   storeKey,
		BankKeeper: bankKeeper,
	}
}

// CreateDenom registers a new denom under the creator namespace and returns
// its full spelling.
func (k Keeper) CreateDenom(ctx sdk.Context, creator sdk.AccAddress, subDenom string) (string, sdk.Error) {
	if err := types.ValidateSubDenom(subDenom); err != nil {
		return "", err
	}

	denom := types.BuildDenom(creator, subDenom)
	store := ctx.KVStore(k.storeKey)
	if store.Get(denomKey(denom)) != nil {
		return "", types.ErrDenomAlreadyExists(denom)
	}

	record := types.Denom{
		Denom:    denom,
		Creator:  creator,
		SubDenom: subDenom,
	}
	bz, err := json.Marshal(record)
	if err != nil {
		return "", sdk.ErrInternal(fmt.Sprintf("marshal denom record error, err=%s", err.Error()))
	}
	store.Set(denomKey(denom), bz)
	return denom, nil
}

func (k Keeper) GetDenom(ctx sdk.Context, denom string) (types.Denom, sdk.Error) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(denomKey(denom))
	if bz == nil {
		return types.Denom{}, types.ErrDenomDoesNotExist(denom)
	}

	var record types.Denom
	err := json.Unmarshal(bz, &record)
	if err != nil {
		return types.Denom{}, sdk.ErrInternal(fmt.Sprintf("unmarshal denom record error, err=%s", err.Error()))
	}
	return record, nil
}

func (k Keeper) SetDenomMetadata(ctx sdk.Context, denom, name, symbol, description string, displayExponent uint8) sdk.Error {
	record, err := k.GetDenom(ctx, denom)
	if err != nil {
		return err
	}

	record.Metadata = types.DenomMetadata{
		Name:            name,
		Symbol:          symbol,
		Description:     description,
		DisplayExponent: displayExponent,
	}
	bz, marshalErr := json.Marshal(record)
	if marshalErr != nil {
		return sdk.ErrInternal(fmt.Sprintf("marshal denom record error, err=%s", marshalErr.Error()))
	}
	ctx.KVStore(k.storeKey).Set(denomKey(denom), bz)
	return nil
}

// MintCoins creates amount of denom on the creator account.
func (k Keeper) MintCoins(ctx sdk.Context, denom string, amount int64) sdk.Error {
	if amount <= 0 {
		return types.ErrInvalidAmount("mint amount must be positive")
	}
	record, err := k.GetDenom(ctx, denom)
	if err != nil {
		return err
	}

	_, _, err = k.BankKeeper.AddCoins(ctx, record.Creator, sdk.Coins{sdk.Coin{Denom: denom, Amount: amount}})
	return err
}

// BurnCoins destroys amount of denom held by the creator account.
func (k Keeper) BurnCoins(ctx sdk.Context, denom string, amount int64) sdk.Error {
	if amount <= 0 {
		return types.ErrInvalidAmount("burn amount must be positive")
	}
	record, err := k.GetDenom(ctx, denom)
	if err != nil {
		return err
	}

	_, _, err = k.BankKeeper.SubtractCoins(ctx, record.Creator, sdk.Coins{sdk.Coin{Denom: denom, Amount: amount}})
	return err
}
