package bridge

import (
	"bytes"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/astermint/node/plugins/bridge/types"
)

type GenesisState struct {
	Config  types.Config        `json:"config"`
	Signers []types.SignerEntry `json:"signers"`
}

func DefaultGenesisState(owner sdk.AccAddress, sourceChainID, transportChannel string) GenesisState {
	return GenesisState{
		Config: types.Config{
			Owner:             owner,
			SourceChainID:     sourceChainID,
			TransportChannel:  transportChannel,
			IBCTimeoutSeconds: types.MinIBCTimeoutSeconds,
		},
		Signers: nil,
	}
}

func InitGenesis(ctx sdk.Context, keeper Keeper, data GenesisState) {
	if err := data.Config.Validate(); err != nil {
		panic(err)
	}
	if !keeper.Transport.HasChannel(ctx, data.Config.TransportChannel) {
		panic(fmt.Sprintf("transport channel %s does not exist", data.Config.TransportChannel))
	}
	keeper.SetConfig(ctx, data.Config)

	for i, signer := range data.Signers {
		if err := signer.Validate(); err != nil {
			panic(err)
		}
		for _, prev := range data.Signers[:i] {
			if bytes.Equal(prev.PubKey, signer.PubKey) {
				panic(fmt.Sprintf("duplicate signer key %s", signer.EncodedPubKey()))
			}
			if prev.Label == signer.Label {
				panic(fmt.Sprintf("duplicate signer label %s", signer.Label))
			}
		}
		keeper.SetSigner(ctx, signer)
	}
}

func ExportGenesis(ctx sdk.Context, keeper Keeper) GenesisState {
	config, err := keeper.GetConfig(ctx)
	if err != nil {
		panic(err)
	}
	return GenesisState{
		Config:  config,
		Signers: keeper.GetSigners(ctx),
	}
}
