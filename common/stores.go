package common

import sdk "github.com/cosmos/cosmos-sdk/types"

const (
	MainStoreName         = "main"
	AccountStoreName      = "acc"
	BridgeStoreName       = "bridge"
	TokenFactoryStoreName = "tokenfactory"
)

var (
	// keys to access the substores
	MainStoreKey         = sdk.NewKVStoreKey(MainStoreName)
	AccountStoreKey      = sdk.NewKVStoreKey(AccountStoreName)
	BridgeStoreKey       = sdk.NewKVStoreKey(BridgeStoreName)
	TokenFactoryStoreKey = sdk.NewKVStoreKey(TokenFactoryStoreName)
)
