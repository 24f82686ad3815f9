package types

import (
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Attestations are the canonical byte strings the off-chain observer
// committee signs. Every field that could be replayed or redirected is bound
// into the payload, and the concatenation order is part of the protocol:
// any change breaks signature verification against deployed observers.

// LinkAttestation binds a token link request to this chain and bridge
// identity.
//
//	sourceChainID || ticker || decimals || localChainID || bridgeAddr
func LinkAttestation(sourceChainID, ticker string, decimals uint8, localChainID string, bridgeAddr sdk.AccAddress) []byte {
	msg := sourceChainID + ticker + strconv.FormatUint(uint64(decimals), 10) +
		localChainID + bridgeAddr.String()
	return []byte(msg)
}

// ReceiveAttestation binds an inbound transfer to its source transaction,
// amount and destination.
//
//	sourceChainID || txHash || ticker || amount || localChainID || bridgeAddr || destAddr
func ReceiveAttestation(sourceChainID, txHash, ticker string, amount int64, localChainID string, bridgeAddr, destAddr sdk.AccAddress) []byte {
	msg := sourceChainID + txHash + ticker + strconv.FormatInt(amount, 10) +
		localChainID + bridgeAddr.String() + destAddr.String()
	return []byte(msg)
}
