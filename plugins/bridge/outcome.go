package bridge

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/tidwall/gjson"

	"github.com/astermint/node/common/log"
	"github.com/astermint/node/plugins/bridge/types"
)

var _ types.TransportApplication = TransportApp{}

// TransportApp is the callback surface registered with the transport layer.
// Outcome payloads are the transport's JSON callback bodies carrying the
// (channel, sequence) identifiers of the transfer they settle.
type TransportApp struct {
	keeper Keeper
}

func NewTransportApp(keeper Keeper) TransportApp {
	return TransportApp{keeper: keeper}
}

// extractCorrelation pulls the channel and sequence out of a callback
// payload. A payload missing either field is malformed and must be rejected
// rather than guessed at.
func extractCorrelation(payload []byte) (string, uint64, sdk.Error) {
	channel := gjson.GetBytes(payload, "source_channel")
	if !channel.Exists() || channel.String() == "" {
		return "", 0, types.ErrIBCResponseFail("callback payload is missing source_channel")
	}
	sequence := gjson.GetBytes(payload, "sequence")
	if !sequence.Exists() {
		return "", 0, types.ErrIBCResponseFail("callback payload is missing sequence")
	}
	return channel.String(), sequence.Uint(), nil
}

func (app TransportApp) OnAcknowledged(ctx sdk.Context, payload []byte) sdk.Error {
	channelID, sequence, err := extractCorrelation(payload)
	if err != nil {
		return err
	}

	if err := app.keeper.ReconcileSuccess(ctx, channelID, sequence); err != nil {
		log.With("module", "bridge").Error("failed to reconcile acknowledged transfer",
			"channel", channelID, "sequence", sequence, "err", err.Error())
		return err
	}
	if ctx.IsDeliverTx() {
		publishTransferEvent(ctx, app.keeper, reconcileSuccessType, "", 0,
			channelID, fmt.Sprintf("%d", sequence))
	}
	return nil
}

func (app TransportApp) OnError(ctx sdk.Context, payload []byte) sdk.Error {
	channelID, sequence, err := extractCorrelation(payload)
	if err != nil {
		return err
	}

	if err := app.keeper.ReconcileError(ctx, channelID, sequence); err != nil {
		log.With("module", "bridge").Error("failed to reconcile errored transfer",
			"channel", channelID, "sequence", sequence, "err", err.Error())
		return err
	}
	if ctx.IsDeliverTx() {
		publishTransferEvent(ctx, app.keeper, reconcileErrorType, "", 0,
			channelID, fmt.Sprintf("%d", sequence))
	}
	return nil
}

func (app TransportApp) OnTimeout(ctx sdk.Context, payload []byte) sdk.Error {
	channelID, sequence, err := extractCorrelation(payload)
	if err != nil {
		return err
	}

	if err := app.keeper.ReconcileTimeout(ctx, channelID, sequence); err != nil {
		log.With("module", "bridge").Error("failed to reconcile timed out transfer",
			"channel", channelID, "sequence", sequence, "err", err.Error())
		return err
	}
	if ctx.IsDeliverTx() {
		publishTransferEvent(ctx, app.keeper, reconcileTimeoutType, "", 0,
			channelID, fmt.Sprintf("%d", sequence))
	}
	return nil
}

// OnReply consumes dispatch confirmations. CreateDenomReplyID carries the
// full spelling of a freshly created denom, TransferDispatchReplyID carries
// the (channel, sequence) assigned to an outbound transfer.
func (app TransportApp) OnReply(ctx sdk.Context, replyID uint64, payload []byte) sdk.Error {
	switch replyID {
	case types.CreateDenomReplyID:
		denom := gjson.GetBytes(payload, "denom")
		if !denom.Exists() || denom.String() == "" {
			return types.ErrIBCResponseFail("denom creation reply is missing denom")
		}
		return app.keeper.CompleteTokenLink(ctx, denom.String())
	case types.TransferDispatchReplyID:
		channelID, sequence, err := extractCorrelation(payload)
		if err != nil {
			return err
		}
		return app.keeper.CompleteSendDispatch(ctx, channelID, sequence)
	default:
		return types.ErrInvalidReplyId(replyID)
	}
}
