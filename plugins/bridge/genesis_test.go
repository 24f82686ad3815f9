package bridge

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/crypto/ed25519"

	"github.com/astermint/node/plugins/bridge/types"
)

func genSignerEntry(label string) types.SignerEntry {
	pub := ed25519.GenPrivKey().PubKey().(ed25519.PubKeyEd25519)
	return types.SignerEntry{PubKey: pub[:], Label: label}
}

func TestGenesisRoundTrip(t *testing.T) {
	ctx, k, _, owner := setupOutcomeTest(t)

	state := DefaultGenesisState(owner, testSourceChainID, testChannel)
	state.Signers = []types.SignerEntry{genSignerEntry("alpha"), genSignerEntry("beta")}

	InitGenesis(ctx, k, state)

	exported := ExportGenesis(ctx, k)
	require.Equal(t, state.Config, exported.Config)
	require.Len(t, exported.Signers, 2)
}

func TestGenesisRejectsBadState(t *testing.T) {
	ctx, k, _, owner := setupOutcomeTest(t)

	unknownChannel := DefaultGenesisState(owner, testSourceChainID, "channel-99")
	require.Panics(t, func() { InitGenesis(ctx, k, unknownChannel) })

	duplicated := DefaultGenesisState(owner, testSourceChainID, testChannel)
	entry := genSignerEntry("alpha")
	duplicated.Signers = []types.SignerEntry{entry, entry}
	require.Panics(t, func() { InitGenesis(ctx, k, duplicated) })
}
