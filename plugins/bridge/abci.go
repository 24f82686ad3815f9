package bridge

import (
	"encoding/base64"
	"fmt"
	"strconv"

	abci "github.com/tendermint/tendermint/abci/types"

	sdk "github.com/cosmos/cosmos-sdk/types"

	app "github.com/astermint/node/common/types"
	"github.com/astermint/node/plugins/bridge/types"
)

func createAbciQueryHandler(keeper Keeper) app.AbciQueryHandler {
	return func(app app.ChainApp, req abci.RequestQuery, path []string) (res *abci.ResponseQuery) {
		// expects at least two query path segments.
		if path[0] != abciQueryPrefix || len(path) < 2 {
			return nil
		}
		switch path[1] {
		case "config": // args: ["bridge", "config"]
			ctx := app.GetContextForCheckState()
			config, err := keeper.GetConfig(ctx)
			if err != nil {
				return &abci.ResponseQuery{
					Code: uint32(err.ABCICode()),
					Log:  err.Error(),
				}
			}
			return marshalQueryResult(app, config)
		case "signers": // args: ["bridge", "signers", <start_after>, <limit>]
			startAfter, limit, errRes := parsePageArgs(path)
			if errRes != nil {
				return errRes
			}
			ctx := app.GetContextForCheckState()
			return marshalQueryResult(app, keeper.ListSigners(ctx, startAfter, limit))
		case "tokens": // args: ["bridge", "tokens", <start_after>, <limit>]
			startAfter, limit, errRes := parsePageArgs(path)
			if errRes != nil {
				return errRes
			}
			ctx := app.GetContextForCheckState()
			return marshalQueryResult(app, keeper.ListTokenMappings(ctx, startAfter, limit))
		case "disabled": // args: ["bridge", "disabled", <start_after>, <limit>]
			startAfter, limit, errRes := parsePageArgs(path)
			if errRes != nil {
				return errRes
			}
			ctx := app.GetContextForCheckState()
			return marshalQueryResult(app, keeper.ListDisabled(ctx, startAfter, limit))
		case "verify": // args: ["bridge", "verify", <pubkey>, <signature>, <message>]
			// path args are url-safe base64 since std base64 may contain '/'.
			if len(path) < 5 {
				return &abci.ResponseQuery{
					Code: uint32(sdk.CodeUnknownRequest),
					Log: fmt.Sprintf(
						"%s %s query requires pubkey, signature and message path args",
						abciQueryPrefix, path[1]),
				}
			}
			pubKey, err := base64.RawURLEncoding.DecodeString(path[2])
			if err != nil {
				return &abci.ResponseQuery{
					Code: uint32(sdk.CodeUnknownRequest),
					Log:  "unable to decode pubkey",
				}
			}
			signature, err := base64.RawURLEncoding.DecodeString(path[3])
			if err != nil {
				return &abci.ResponseQuery{
					Code: uint32(sdk.CodeUnknownRequest),
					Log:  "unable to decode signature",
				}
			}
			message, err := base64.RawURLEncoding.DecodeString(path[4])
			if err != nil {
				return &abci.ResponseQuery{
					Code: uint32(sdk.CodeUnknownRequest),
					Log:  "unable to decode message",
				}
			}
			return marshalQueryResult(app, VerifySingle(pubKey, signature, message))
		default:
			return &abci.ResponseQuery{
				Code: uint32(sdk.ABCICodeOK),
				Info: fmt.Sprintf("Unknown `%s` query path: %v", abciQueryPrefix, path),
			}
		}
	}
}

func parsePageArgs(path []string) (startAfter string, limit int, errRes *abci.ResponseQuery) {
	limit = types.DefaultQueryLimit
	if len(path) >= 3 {
		startAfter = path[2]
	}
	if len(path) >= 4 {
		parsed, err := strconv.Atoi(path[3])
		if err != nil || parsed <= 0 {
			return "", 0, &abci.ResponseQuery{
				Code: uint32(sdk.CodeUnknownRequest),
				Log:  "unable to parse limit",
			}
		}
		limit = parsed
	}
	return startAfter, limit, nil
}

func marshalQueryResult(app app.ChainApp, result interface{}) *abci.ResponseQuery {
	bz, err := app.GetCodec().MarshalBinaryLengthPrefixed(result)
	if err != nil {
		return &abci.ResponseQuery{
			Code: uint32(sdk.CodeInternal),
			Log:  err.Error(),
		}
	}
	return &abci.ResponseQuery{
		Code:  uint32(sdk.ABCICodeOK),
		Value: bz,
	}
}
