package keeper

import (
	"encoding/base64"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/x/auth"
	"github.com/cosmos/cosmos-sdk/x/bank"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/crypto/ed25519"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/astermint/node/common/testutils"
	cmmtypes "github.com/astermint/node/common/types"
	"github.com/astermint/node/plugins/bridge/types"
	tfkeeper "github.com/astermint/node/plugins/tokenfactory/keeper"
	"github.com/astermint/node/wire"
)

const (
	testChainID       = "astermint-1"
	testSourceChainID = "gaialocal-1"
	testChannel       = "channel-0"
)

type sentTransfer struct {
	ChannelID string
	Receiver  string
	Funds     sdk.Coin
	Memo      string
	Timeout   uint64
}

// fakeTransport is a recording stand-in for the asynchronous transport
// capability. Dispatches are captured, confirmations are driven by the test.
type fakeTransport struct {
	channels    map[string]bool
	minFee      types.TransferFee
	sent        []sentTransfer
	resubmitted []uint64
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{
		channels: map[string]bool{testChannel: true},
		minFee: types.TransferFee{
			RecvFee:    sdk.Coins{sdk.Coin{Denom: cmmtypes.NativeTokenSymbol, Amount: 100}},
			AckFee:     sdk.Coins{sdk.Coin{Denom: cmmtypes.NativeTokenSymbol, Amount: 100}},
			TimeoutFee: sdk.Coins{sdk.Coin{Denom: cmmtypes.NativeTokenSymbol, Amount: 200}},
		},
	}
}

func (t *fakeTransport) HasChannel(ctx sdk.Context, channelID string) bool {
	return t.channels[channelID]
}

func (t *fakeTransport) GetMinTransferFee(ctx sdk.Context, channelID string) (types.TransferFee, sdk.Error) {
	if !t.channels[channelID] {
		return types.TransferFee{}, types.ErrInvalidConfiguration("transport channel does not exist")
	}
	return t.minFee, nil
}

func (t *fakeTransport) SendTransfer(ctx sdk.Context, channelID string, sender sdk.AccAddress,
	receiver string, funds sdk.Coin, fees types.TransferFee, memo string, timeoutSeconds uint64) sdk.Error {
	t.sent = append(t.sent, sentTransfer{
		ChannelID: channelID,
		Receiver:  receiver,
		Funds:     funds,
		Memo:      memo,
		Timeout:   timeoutSeconds,
	})
	return nil
}

func (t *fakeTransport) ResubmitFailure(ctx sdk.Context, sender sdk.AccAddress, failureID uint64) sdk.Error {
	t.resubmitted = append(t.resubmitted, failureID)
	return nil
}

func setup() (sdk.Context, Keeper, *fakeTransport, auth.AccountKeeper, sdk.AccAddress) {
	ms, capKey, capKey2, capKey3 := testutils.SetupThreeMultiStoreForUnitTest()
	cdc := wire.NewCodec()
	auth.RegisterBaseAccount(cdc)

	accountKeeper := auth.NewAccountKeeper(cdc, capKey2, auth.ProtoBaseAccount)
	bankKeeper := bank.NewBaseKeeper(accountKeeper)
	factory := tfkeeper.NewKeeper(cdc, capKey3, bankKeeper)
	transport := newFakeTransport()
	k := NewKeeper(cdc, capKey, bankKeeper, factory, transport)

	accountStore := ms.GetKVStore(capKey2)
	accountStoreCache := auth.NewAccountStoreCache(cdc, accountStore, 10)
	ctx := sdk.NewContext(ms, abci.Header{ChainID: testChainID, Height: 1},
		sdk.RunTxModeDeliver, log.NewNopLogger()).
		WithAccountCache(auth.NewAccountCache(accountStoreCache))

	_, ownerAcc := testutils.NewAccount(ctx, accountKeeper, 100000)
	owner := ownerAcc.GetAddress()
	k.SetConfig(ctx, types.Config{
		Owner:             owner,
		SourceChainID:     testSourceChainID,
		TransportChannel:  testChannel,
		IBCTimeoutSeconds: 300,
	})

	return ctx, k, transport, accountKeeper, owner
}

// addTestSigner registers a fresh observer key and returns its private key
// for signing attestations.
func addTestSigner(ctx sdk.Context, k Keeper, label string) ed25519.PrivKeyEd25519 {
	priv := ed25519.GenPrivKey()
	pub := priv.PubKey().(ed25519.PubKeyEd25519)
	k.SetSigner(ctx, types.SignerEntry{PubKey: pub[:], Label: label})
	return priv
}

func signAttestation(priv ed25519.PrivKeyEd25519, message []byte) string {
	sig, err := priv.Sign(message)
	if err != nil {
		panic(err)
	}
	return base64.StdEncoding.EncodeToString(sig)
}
