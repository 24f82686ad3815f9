package keeper

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/cosmos/cosmos-sdk/pubsub"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/x/bank"

	"github.com/astermint/node/plugins/bridge/types"
	"github.com/astermint/node/wire"
)

// Keeper maintains the link to data storage and
// exposes getter/setter methods for the various parts of the state machine
type Keeper struct {
	cdc *wire.Codec // The wire codec for binary encoding/decoding.

	storeKey sdk.StoreKey // The key used to access the store from the Context.

	// The reference to the CoinKeeper to modify balances
	BankKeeper bank.Keeper

	DenomFactory types.DenomFactory

	Transport types.TransportKeeper

	PbsbServer *pubsub.Server
}

func (k *Keeper) SetPbsbServer(server *pubsub.Server) {
	k.PbsbServer = server
}

// NewKeeper creates new instances of the bridge Keeper
func NewKeeper(cdc *wire.Codec, storeKey sdk.StoreKey, bankKeeper bank.Keeper,
	denomFactory types.DenomFactory, transport types.TransportKeeper) Keeper {
	return Keeper{
		cdc:          cdc,
		storeKey:     storeKey,
		BankKeeper:   bankKeeper,
		DenomFactory: denomFactory,
		Transport:    transport,
	}
}

//----------------------------------------
// Config

func (k Keeper) SetConfig(ctx sdk.Context, config types.Config) {
	store := ctx.KVStore(k.storeKey)
	bz, err := json.Marshal(config)
	if err != nil {
		panic(err)
	}
	store.Set(types.ConfigKey, bz)
}

func (k Keeper) GetConfig(ctx sdk.Context) (types.Config, sdk.Error) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.ConfigKey)
	if bz == nil {
		return types.Config{}, types.ErrInvalidConfiguration("bridge config is not set")
	}

	var config types.Config
	err := json.Unmarshal(bz, &config)
	if err != nil {
		return types.Config{}, sdk.ErrInternal(fmt.Sprintf("unmarshal bridge config error, err=%s", err.Error()))
	}
	return config, nil
}

//----------------------------------------
// Signer registry

func (k Keeper) SetSigner(ctx sdk.Context, entry types.SignerEntry) {
	store := ctx.KVStore(k.storeKey)
	bz, err := json.Marshal(entry)
	if err != nil {
		panic(err)
	}
	store.Set(types.GetSignerKey(entry.PubKey), bz)
}

func (k Keeper) GetSigner(ctx sdk.Context, pubKey []byte) (types.SignerEntry, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.GetSignerKey(pubKey))
	if bz == nil {
		return types.SignerEntry{}, false
	}

	var entry types.SignerEntry
	err := json.Unmarshal(bz, &entry)
	if err != nil {
		panic(fmt.Errorf("unmarshal signer entry error, err=%s", err.Error()))
	}
	return entry, true
}

func (k Keeper) DeleteSigner(ctx sdk.Context, pubKey []byte) {
	store := ctx.KVStore(k.storeKey)
	store.Delete(types.GetSignerKey(pubKey))
}

// GetSigners returns all loaded signer entries in ascending public key
// order. The verifier depends on this ordering being stable.
func (k Keeper) GetSigners(ctx sdk.Context) []types.SignerEntry {
	store := ctx.KVStore(k.storeKey)
	iterator := sdk.KVStorePrefixIterator(store, types.SignerKeyPrefix)
	defer iterator.Close()

	var entries []types.SignerEntry
	for ; iterator.Valid(); iterator.Next() {
		var entry types.SignerEntry
		err := json.Unmarshal(iterator.Value(), &entry)
		if err != nil {
			panic(fmt.Errorf("unmarshal signer entry error, err=%s", err.Error()))
		}
		entries = append(entries, entry)
	}
	return entries
}

// HasSignerLabel reports whether any loaded signer already carries the
// label. A linear scan is fine at committee scale.
func (k Keeper) HasSignerLabel(ctx sdk.Context, label string) bool {
	for _, entry := range k.GetSigners(ctx) {
		if entry.Label == label {
			return true
		}
	}
	return false
}

//----------------------------------------
// Token mapping

// SetTokenMapping records both lookup directions so either spelling
// resolves in one read.
func (k Keeper) SetTokenMapping(ctx sdk.Context, ticker, denom string) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.GetMappingKey(ticker), []byte(denom))
	store.Set(types.GetMappingKey(denom), []byte(ticker))
}

func (k Keeper) GetMapped(ctx sdk.Context, symbol string) (string, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.GetMappingKey(symbol))
	if bz == nil {
		return "", false
	}
	return string(bz), true
}

//----------------------------------------
// Disabled set

// SetDisabled bars both spellings of a linked token from bridging.
func (k Keeper) SetDisabled(ctx sdk.Context, ticker, denom string) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.GetDisabledKey(ticker), []byte{1})
	store.Set(types.GetDisabledKey(denom), []byte{1})
}

func (k Keeper) DeleteDisabled(ctx sdk.Context, ticker, denom string) {
	store := ctx.KVStore(k.storeKey)
	store.Delete(types.GetDisabledKey(ticker))
	store.Delete(types.GetDisabledKey(denom))
}

func (k Keeper) IsDisabled(ctx sdk.Context, symbol string) bool {
	store := ctx.KVStore(k.storeKey)
	return store.Get(types.GetDisabledKey(symbol)) != nil
}

//----------------------------------------
// Replay guard

func (k Keeper) MarkHandled(ctx sdk.Context, sourceChainID, txHash string) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.GetHandledTransactionKey(sourceChainID, txHash), []byte{1})
}

func (k Keeper) IsHandled(ctx sdk.Context, sourceChainID, txHash string) bool {
	store := ctx.KVStore(k.storeKey)
	return store.Get(types.GetHandledTransactionKey(sourceChainID, txHash)) != nil
}

//----------------------------------------
// Pending link slot

func (k Keeper) SetPendingLink(ctx sdk.Context, token types.TokenMetadata) {
	store := ctx.KVStore(k.storeKey)
	bz, err := json.Marshal(token)
	if err != nil {
		panic(err)
	}
	store.Set(types.PendingLinkKey, bz)
}

func (k Keeper) GetPendingLink(ctx sdk.Context) (types.TokenMetadata, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.PendingLinkKey)
	if bz == nil {
		return types.TokenMetadata{}, false
	}

	var token types.TokenMetadata
	err := json.Unmarshal(bz, &token)
	if err != nil {
		panic(fmt.Errorf("unmarshal pending link error, err=%s", err.Error()))
	}
	return token, true
}

func (k Keeper) ClearPendingLink(ctx sdk.Context) {
	store := ctx.KVStore(k.storeKey)
	store.Delete(types.PendingLinkKey)
}

//----------------------------------------
// Pending outbound slot

func (k Keeper) SetPendingOutbound(ctx sdk.Context, pending types.PendingOutbound) {
	store := ctx.KVStore(k.storeKey)
	bz, err := json.Marshal(pending)
	if err != nil {
		panic(err)
	}
	store.Set(types.PendingOutboundKey, bz)
}

func (k Keeper) GetPendingOutbound(ctx sdk.Context) (types.PendingOutbound, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.PendingOutboundKey)
	if bz == nil {
		return types.PendingOutbound{}, false
	}

	var pending types.PendingOutbound
	err := json.Unmarshal(bz, &pending)
	if err != nil {
		panic(fmt.Errorf("unmarshal pending outbound error, err=%s", err.Error()))
	}
	return pending, true
}

func (k Keeper) ClearPendingOutbound(ctx sdk.Context) {
	store := ctx.KVStore(k.storeKey)
	store.Delete(types.PendingOutboundKey)
}

//----------------------------------------
// In-flight ledger

func (k Keeper) SetInFlight(ctx sdk.Context, channelID string, sequence uint64, asset types.InFlightAsset) {
	store := ctx.KVStore(k.storeKey)
	bz, err := json.Marshal(asset)
	if err != nil {
		panic(err)
	}
	store.Set(types.GetInFlightKey(channelID, sequence), bz)
}

func (k Keeper) GetInFlight(ctx sdk.Context, channelID string, sequence uint64) (types.InFlightAsset, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.GetInFlightKey(channelID, sequence))
	if bz == nil {
		return types.InFlightAsset{}, false
	}

	var asset types.InFlightAsset
	err := json.Unmarshal(bz, &asset)
	if err != nil {
		panic(fmt.Errorf("unmarshal in-flight asset error, err=%s", err.Error()))
	}
	return asset, true
}

func (k Keeper) DeleteInFlight(ctx sdk.Context, channelID string, sequence uint64) {
	store := ctx.KVStore(k.storeKey)
	store.Delete(types.GetInFlightKey(channelID, sequence))
}

//----------------------------------------
// Ownership proposal

func (k Keeper) SetOwnershipProposal(ctx sdk.Context, proposal types.OwnershipProposal) {
	store := ctx.KVStore(k.storeKey)
	bz, err := json.Marshal(proposal)
	if err != nil {
		panic(err)
	}
	store.Set(types.OwnershipProposalKey, bz)
}

func (k Keeper) GetOwnershipProposal(ctx sdk.Context) (types.OwnershipProposal, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.OwnershipProposalKey)
	if bz == nil {
		return types.OwnershipProposal{}, false
	}

	var proposal types.OwnershipProposal
	err := json.Unmarshal(bz, &proposal)
	if err != nil {
		panic(fmt.Errorf("unmarshal ownership proposal error, err=%s", err.Error()))
	}
	return proposal, true
}

func (k Keeper) ClearOwnershipProposal(ctx sdk.Context) {
	store := ctx.KVStore(k.storeKey)
	store.Delete(types.OwnershipProposalKey)
}

//----------------------------------------
// Paginated listings

func clampLimit(limit int) int {
	if limit <= 0 {
		return types.DefaultQueryLimit
	}
	if limit > types.MaxQueryLimit {
		return types.MaxQueryLimit
	}
	return limit
}

// ListTokenMappings returns mapping entries in ascending key order, starting
// strictly after startAfter when it is non-empty.
func (k Keeper) ListTokenMappings(ctx sdk.Context, startAfter string, limit int) []types.TokenMappingEntry {
	return k.listStringEntries(ctx, types.MappingKeyPrefix, startAfter, limit)
}

// ListDisabled returns disabled-set entries with the same pagination
// contract as ListTokenMappings. Values are empty, only keys matter.
func (k Keeper) ListDisabled(ctx sdk.Context, startAfter string, limit int) []string {
	limit = clampLimit(limit)
	store := ctx.KVStore(k.storeKey)
	iterator := sdk.KVStorePrefixIterator(store, types.DisabledKeyPrefix)
	defer iterator.Close()

	var symbols []string
	for ; iterator.Valid() && len(symbols) < limit; iterator.Next() {
		symbol := string(bytes.TrimPrefix(iterator.Key(), types.DisabledKeyPrefix))
		if startAfter != "" && symbol <= startAfter {
			continue
		}
		symbols = append(symbols, symbol)
	}
	return symbols
}

// ListSigners returns signer entries paginated by public key. The cursor is
// the base64 spelling of the last key seen, compared on the raw bytes so the
// cursor order matches the store order.
func (k Keeper) ListSigners(ctx sdk.Context, startAfter string, limit int) []types.SignerEntry {
	limit = clampLimit(limit)
	cursor, _ := base64.StdEncoding.DecodeString(startAfter)

	var entries []types.SignerEntry
	for _, entry := range k.GetSigners(ctx) {
		if len(cursor) > 0 && bytes.Compare(entry.PubKey, cursor) <= 0 {
			continue
		}
		entries = append(entries, entry)
		if len(entries) == limit {
			break
		}
	}
	return entries
}

func (k Keeper) listStringEntries(ctx sdk.Context, prefix []byte, startAfter string, limit int) []types.TokenMappingEntry {
	limit = clampLimit(limit)
	store := ctx.KVStore(k.storeKey)
	iterator := sdk.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	var entries []types.TokenMappingEntry
	for ; iterator.Valid() && len(entries) < limit; iterator.Next() {
		key := string(bytes.TrimPrefix(iterator.Key(), prefix))
		if startAfter != "" && key <= startAfter {
			continue
		}
		entries = append(entries, types.TokenMappingEntry{Key: key, Value: string(iterator.Value())})
	}
	return entries
}
