package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/tendermint/tendermint/crypto"
)

var (
	// BridgeAccount escrows inbound mints before delivery and outbound
	// funds and fees until their transfer outcome is known
	BridgeAccount = sdk.AccAddress(crypto.AddressHash([]byte("AstermintBridgeAccount")))
)
