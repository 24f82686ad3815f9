package bridge

import (
	"github.com/cosmos/cosmos-sdk/baseapp"
	"github.com/cosmos/cosmos-sdk/pubsub"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	BridgeTransferTopic = pubsub.Topic("bridge-transfer")

	transferInType  string = "TI"
	transferOutType string = "TO"

	reconcileSuccessType string = "RS"
	reconcileErrorType   string = "RE"
	reconcileTimeoutType string = "RT"
)

// BridgeTransferEvent is published on every settled inbound transfer,
// dispatched outbound transfer and reconciliation, for off-chain consumers.
type BridgeTransferEvent struct {
	TxHash string
	Type   string
	Ticker string
	Amount int64
	From   string
	To     string
}

func (event BridgeTransferEvent) GetTopic() pubsub.Topic {
	return BridgeTransferTopic
}

func publishTransferEvent(ctx sdk.Context, keeper Keeper, eventType, ticker string, amount int64, from, to string) {
	if keeper.PbsbServer == nil {
		return
	}
	txHash := ctx.Value(baseapp.TxHashKey)
	txHashStr, ok := txHash.(string)
	if !ok {
		ctx.Logger().With("module", "bridge").Error("failed to get txhash, will not publish bridge transfer event")
		return
	}
	keeper.PbsbServer.Publish(BridgeTransferEvent{
		TxHash: txHashStr,
		Type:   eventType,
		Ticker: ticker,
		Amount: amount,
		From:   from,
		To:     to,
	})
}
