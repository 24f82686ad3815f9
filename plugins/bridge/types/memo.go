package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BuildTransferMemo renders the URN payload attached to outbound transfers.
// The hub-side indexer parses this string, so the field set and ordering are
// a wire contract and must not change:
//
//	urn:bridge:{bridgeChainID}@v1;recv$tic={ticker},amt={amount},dst={dst},rch={localChainID},src={sender}
func BuildTransferMemo(bridgeChainID, ticker string, amount int64, dst string, localChainID string, sender sdk.AccAddress) string {
	return fmt.Sprintf("urn:bridge:%s@v1;recv$tic=%s,amt=%d,dst=%s,rch=%s,src=%s",
		bridgeChainID, ticker, amount, dst, localChainID, sender.String())
}
