package app

import (
	"encoding/json"

	sdk "github.com/cosmos/cosmos-sdk/types"
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/astermint/node/plugins/bridge"
)

// GenesisAccount is an account seeded at chain start.
type GenesisAccount struct {
	Address sdk.AccAddress `json:"address"`
	Coins   sdk.Coins      `json:"coins"`
}

func NewGenesisAccount(acc sdk.Account) GenesisAccount {
	return GenesisAccount{
		Address: acc.GetAddress(),
		Coins:   acc.GetCoins(),
	}
}

// GenesisState is the full application state at chain start.
type GenesisState struct {
	Accounts      []GenesisAccount    `json:"accounts"`
	BridgeGenesis bridge.GenesisState `json:"bridge"`
}

// initChainerFn performs custom logic for chain initialization.
func (app *AstermintApp) initChainerFn() sdk.InitChainer {
	return func(ctx sdk.Context, req abci.RequestInitChain) abci.ResponseInitChain {
		var genesisState GenesisState
		if err := json.Unmarshal(req.AppStateBytes, &genesisState); err != nil {
			panic(err)
		}

		for _, gacc := range genesisState.Accounts {
			acc := app.AccountKeeper.NewAccountWithAddress(ctx, gacc.Address)
			if err := acc.SetCoins(gacc.Coins); err != nil {
				panic(err)
			}
			app.AccountKeeper.SetAccount(ctx, acc)
		}

		bridge.InitGenesis(ctx, app.BridgeKeeper, genesisState.BridgeGenesis)
		return abci.ResponseInitChain{}
	}
}

// ExportAppState exports the application state to json.
func (app *AstermintApp) ExportAppState() (appState json.RawMessage, err error) {
	ctx := app.NewContext(sdk.RunTxModeCheck, abci.Header{})

	accounts := []GenesisAccount{}
	app.AccountKeeper.IterateAccounts(ctx, func(acc sdk.Account) (stop bool) {
		accounts = append(accounts, NewGenesisAccount(acc))
		return false
	})

	genState := GenesisState{
		Accounts:      accounts,
		BridgeGenesis: bridge.ExportGenesis(ctx, app.BridgeKeeper),
	}
	return json.Marshal(genState)
}
