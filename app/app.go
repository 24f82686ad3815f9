package app

import (
	"os"

	"github.com/cosmos/cosmos-sdk/baseapp"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/x/auth"
	"github.com/cosmos/cosmos-sdk/x/bank"
	abci "github.com/tendermint/tendermint/abci/types"
	dbm "github.com/tendermint/tendermint/libs/db"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/astermint/node/common"
	bnclog "github.com/astermint/node/common/log"
	"github.com/astermint/node/common/types"
	"github.com/astermint/node/plugins/bridge"
	bridgetypes "github.com/astermint/node/plugins/bridge/types"
	tfkeeper "github.com/astermint/node/plugins/tokenfactory/keeper"
	"github.com/astermint/node/wire"
)

const (
	appName = "Astermint"
)

// default home directories for expected binaries
var (
	DefaultCLIHome  = os.ExpandEnv("$HOME/.astercli")
	DefaultNodeHome = os.ExpandEnv("$HOME/.asterd")
)

var _ types.ChainApp = (*AstermintApp)(nil)

// AstermintApp is the spoke chain ABCI application hosting the bridge
// settlement plugin.
type AstermintApp struct {
	*baseapp.BaseApp
	Codec *wire.Codec

	// keepers
	AccountKeeper      auth.AccountKeeper
	CoinKeeper         bank.Keeper
	TokenFactoryKeeper tfkeeper.Keeper
	BridgeKeeper       bridge.Keeper

	// query handlers keyed by their path prefix
	queryHandlers map[string]types.AbciQueryHandler
}

// NewAstermintApp creates the application. The transport capability is
// injected: the bridge settles against whatever carries its packets.
func NewAstermintApp(logger log.Logger, db dbm.DB, transport bridgetypes.TransportKeeper,
	baseAppOptions ...func(*baseapp.BaseApp)) *AstermintApp {

	cdc := MakeCodec()

	bnclog.InitLogger(logger.With("module", "main"))

	app := &AstermintApp{
		BaseApp: baseapp.NewBaseApp(appName, logger, db,
			auth.DefaultTxDecoder(cdc), sdk.CollectConfig{}, baseAppOptions...),
		Codec:         cdc,
		queryHandlers: make(map[string]types.AbciQueryHandler),
	}

	app.AccountKeeper = auth.NewAccountKeeper(cdc, common.AccountStoreKey, auth.ProtoBaseAccount)
	app.CoinKeeper = bank.NewBaseKeeper(app.AccountKeeper)
	app.TokenFactoryKeeper = tfkeeper.NewKeeper(cdc, common.TokenFactoryStoreKey, app.CoinKeeper)
	app.BridgeKeeper = bridge.NewKeeper(cdc, common.BridgeStoreKey,
		app.CoinKeeper, app.TokenFactoryKeeper, transport)

	bridge.InitPlugin(app, app.BridgeKeeper)

	app.SetInitChainer(app.initChainerFn())
	app.SetAnteHandler(auth.NewAnteHandler(app.AccountKeeper))
	app.MountStoresIAVL(common.MainStoreKey, common.AccountStoreKey,
		common.BridgeStoreKey, common.TokenFactoryStoreKey)

	if err := app.LoadLatestVersion(common.MainStoreKey); err != nil {
		panic(err)
	}
	app.SetAccountStoreCache(cdc, app.GetCommitMultiStore().GetKVStore(common.AccountStoreKey), defaultAccountCacheSize)
	return app
}

const defaultAccountCacheSize = 30000

// MakeCodec creates a custom tx codec.
func MakeCodec() *wire.Codec {
	cdc := wire.NewCodec()

	sdk.RegisterCodec(cdc) // Register Msgs
	bank.RegisterCodec(cdc)
	bridge.RegisterWire(cdc)
	auth.RegisterBaseAccount(cdc)
	return cdc
}

func (app *AstermintApp) GetCodec() *wire.Codec {
	return app.Codec
}

func (app *AstermintApp) GetRouter() baseapp.Router {
	return app.Router()
}

func (app *AstermintApp) GetContextForCheckState() sdk.Context {
	return app.CheckState.Ctx
}

// RegisterQueryHandler registers an abci query handler, implements ChainApp.
func (app *AstermintApp) RegisterQueryHandler(prefix string, handler types.AbciQueryHandler) {
	if _, ok := app.queryHandlers[prefix]; ok {
		panic("registerQueryHandler: prefix `" + prefix + "` is already registered")
	}
	app.queryHandlers[prefix] = handler
}

// Query implements the ABCI interface, routing registered prefixes to their
// plugin handler and everything else to the baseapp.
func (app *AstermintApp) Query(req abci.RequestQuery) (res abci.ResponseQuery) {
	defer func() {
		if r := recover(); r != nil {
			app.Logger.Error("internal error caused by query", "req", req, "stack", r)
			res = sdk.ErrInternal("internal error").QueryResult()
		}
	}()

	path := baseapp.SplitPath(req.Path)
	if len(path) > 0 {
		if handler, ok := app.queryHandlers[path[0]]; ok {
			if res := handler(app, req, path); res != nil {
				return *res
			}
		}
	}
	return app.BaseApp.Query(req)
}
