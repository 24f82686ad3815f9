package app

import (
	"encoding/json"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/crypto/ed25519"
	dbm "github.com/tendermint/tendermint/libs/db"
	"github.com/tendermint/tendermint/libs/log"

	cmmtypes "github.com/astermint/node/common/types"
	"github.com/astermint/node/plugins/bridge"
	bridgetypes "github.com/astermint/node/plugins/bridge/types"
)

const (
	testChainID = "astermint-1"
	testChannel = "channel-0"
)

type stubTransport struct{}

func (stubTransport) HasChannel(ctx sdk.Context, channelID string) bool {
	return channelID == testChannel
}

func (stubTransport) GetMinTransferFee(ctx sdk.Context, channelID string) (bridgetypes.TransferFee, sdk.Error) {
	return bridgetypes.TransferFee{}, nil
}

func (stubTransport) SendTransfer(ctx sdk.Context, channelID string, sender sdk.AccAddress,
	receiver string, funds sdk.Coin, fees bridgetypes.TransferFee, memo string, timeoutSeconds uint64) sdk.Error {
	return nil
}

func (stubTransport) ResubmitFailure(ctx sdk.Context, sender sdk.AccAddress, failureID uint64) sdk.Error {
	return nil
}

func newTestApp(t *testing.T) (*AstermintApp, sdk.AccAddress) {
	db := dbm.NewMemDB()
	app := NewAstermintApp(log.NewNopLogger(), db, stubTransport{})

	pub := ed25519.GenPrivKey().PubKey()
	owner := sdk.AccAddress(pub.Address())

	state := GenesisState{
		Accounts: []GenesisAccount{{
			Address: owner,
			Coins:   sdk.Coins{sdk.Coin{Denom: cmmtypes.NativeTokenSymbol, Amount: 100000}},
		}},
		BridgeGenesis: bridge.GenesisState{
			Config: bridgetypes.Config{
				Owner:             owner,
				SourceChainID:     "gaialocal-1",
				TransportChannel:  testChannel,
				IBCTimeoutSeconds: 300,
			},
		},
	}
	stateBytes, err := json.Marshal(state)
	require.NoError(t, err)

	app.InitChain(abci.RequestInitChain{ChainId: testChainID, AppStateBytes: stateBytes})
	app.Commit()
	return app, owner
}

func TestQueryRoutesToBridgeHandler(t *testing.T) {
	app, owner := newTestApp(t)

	res := app.Query(abci.RequestQuery{Path: "/bridge/config"})
	require.Equal(t, uint32(sdk.ABCICodeOK), res.Code, res.Log)

	var config bridgetypes.Config
	require.NoError(t, app.Codec.UnmarshalBinaryLengthPrefixed(res.Value, &config))
	require.Equal(t, owner, config.Owner)
	require.Equal(t, testChannel, config.TransportChannel)
}

func TestQueryUnknownPathFallsThrough(t *testing.T) {
	app, _ := newTestApp(t)

	res := app.Query(abci.RequestQuery{Path: "/nosuchprefix/whatever"})
	require.NotEqual(t, uint32(sdk.ABCICodeOK), res.Code)
}

func TestExportAppState(t *testing.T) {
	app, owner := newTestApp(t)

	raw, err := app.ExportAppState()
	require.NoError(t, err)

	var state GenesisState
	require.NoError(t, json.Unmarshal(raw, &state))
	require.Len(t, state.Accounts, 1)
	require.Equal(t, owner, state.Accounts[0].Address)
	require.Equal(t, owner, state.BridgeGenesis.Config.Owner)
}

func TestRegisterQueryHandlerRejectsDuplicates(t *testing.T) {
	app, _ := newTestApp(t)

	require.Panics(t, func() {
		app.RegisterQueryHandler("bridge", func(cmmtypes.ChainApp, abci.RequestQuery, []string) *abci.ResponseQuery {
			return nil
		})
	})
}
