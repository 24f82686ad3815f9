package keeper

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/crypto/ed25519"

	"github.com/astermint/node/common/testutils"
	cmmtypes "github.com/astermint/node/common/types"
	"github.com/astermint/node/plugins/bridge/types"
	tftypes "github.com/astermint/node/plugins/tokenfactory/types"
)

func linkTestToken(t *testing.T, ctx sdk.Context, k Keeper, from sdk.AccAddress, privs ...ed25519.PrivKeyEd25519) string {
	attestation := types.LinkAttestation(testSourceChainID, "TESTTOKEN", 6, testChainID, types.BridgeAccount)
	signatures := make([]string, 0, len(privs))
	for _, priv := range privs {
		signatures = append(signatures, signAttestation(priv, attestation))
	}

	msg := types.NewLinkTokenMsg(from, testSourceChainID, types.TokenMetadata{
		Ticker:   "TESTTOKEN",
		Name:     "Test Token",
		ImageURL: "https://example.org/test.png",
		Decimals: 6,
	}, signatures)
	require.Nil(t, k.ProcessLinkToken(ctx, msg))

	// deliver the creation confirmation the way the reply handler would
	denom := tftypes.BuildDenom(types.BridgeAccount, "TESTTOKEN")
	require.Nil(t, k.CompleteTokenLink(ctx, denom))
	return denom
}

func TestLinkTokenFlow(t *testing.T) {
	ctx, k, _, _, owner := setup()
	privA := addTestSigner(ctx, k, "observer-a")
	privB := addTestSigner(ctx, k, "observer-b")

	denom := linkTestToken(t, ctx, k, owner, privA, privB)

	// both directions resolve after completion
	mapped, ok := k.GetMapped(ctx, "TESTTOKEN")
	require.True(t, ok)
	require.Equal(t, denom, mapped)
	mapped, ok = k.GetMapped(ctx, denom)
	require.True(t, ok)
	require.Equal(t, "TESTTOKEN", mapped)

	// the pending slot is free again
	_, ok = k.GetPendingLink(ctx)
	require.False(t, ok)

	// relinking the same ticker is rejected
	attestation := types.LinkAttestation(testSourceChainID, "TESTTOKEN", 6, testChainID, types.BridgeAccount)
	msg := types.NewLinkTokenMsg(owner, testSourceChainID, testLinkMetadata("TESTTOKEN"),
		[]string{signAttestation(privA, attestation), signAttestation(privB, attestation)})
	err := k.ProcessLinkToken(ctx, msg)
	require.NotNil(t, err)
	require.Equal(t, types.CodeTokenAlreadyExists, err.Code())
}

func testLinkMetadata(ticker string) types.TokenMetadata {
	return types.TokenMetadata{
		Ticker:   ticker,
		Name:     "Test Token",
		ImageURL: "https://example.org/test.png",
		Decimals: 6,
	}
}

func TestLinkTokenThreshold(t *testing.T) {
	ctx, k, _, _, owner := setup()
	privA := addTestSigner(ctx, k, "observer-a")
	addTestSigner(ctx, k, "observer-b")

	attestation := types.LinkAttestation(testSourceChainID, "TESTTOKEN", 6, testChainID, types.BridgeAccount)
	msg := types.NewLinkTokenMsg(owner, testSourceChainID, testLinkMetadata("TESTTOKEN"),
		[]string{signAttestation(privA, attestation)})

	err := k.ProcessLinkToken(ctx, msg)
	require.NotNil(t, err)
	require.Equal(t, types.CodeThresholdNotMet, err.Code())

	_, ok := k.GetPendingLink(ctx)
	require.False(t, ok)
}

func TestLinkTokenPendingSlot(t *testing.T) {
	ctx, k, _, _, owner := setup()
	privA := addTestSigner(ctx, k, "observer-a")
	privB := addTestSigner(ctx, k, "observer-b")

	attestation := types.LinkAttestation(testSourceChainID, "AAA", 6, testChainID, types.BridgeAccount)
	msg := types.NewLinkTokenMsg(owner, testSourceChainID, testLinkMetadata("AAA"),
		[]string{signAttestation(privA, attestation), signAttestation(privB, attestation)})
	require.Nil(t, k.ProcessLinkToken(ctx, msg))

	// a second link before the first confirmation lands is rejected
	attestation = types.LinkAttestation(testSourceChainID, "BBB", 6, testChainID, types.BridgeAccount)
	msg = types.NewLinkTokenMsg(owner, testSourceChainID, testLinkMetadata("BBB"),
		[]string{signAttestation(privA, attestation), signAttestation(privB, attestation)})
	err := k.ProcessLinkToken(ctx, msg)
	require.NotNil(t, err)
	require.Equal(t, types.CodeInvalidConfiguration, err.Code())
}

func receiveSignatures(privs []ed25519.PrivKeyEd25519, txHash string, amount int64, dest sdk.AccAddress) []string {
	attestation := types.ReceiveAttestation(testSourceChainID, txHash, "TESTTOKEN", amount,
		testChainID, types.BridgeAccount, dest)
	signatures := make([]string, 0, len(privs))
	for _, priv := range privs {
		signatures = append(signatures, signAttestation(priv, attestation))
	}
	return signatures
}

func TestReceiveMintsToDestination(t *testing.T) {
	ctx, k, _, accountKeeper, owner := setup()
	privA := addTestSigner(ctx, k, "observer-a")
	privB := addTestSigner(ctx, k, "observer-b")
	denom := linkTestToken(t, ctx, k, owner, privA, privB)

	_, destAcc := testutils.NewAccount(ctx, accountKeeper, 0)
	dest := destAcc.GetAddress()

	privs := []ed25519.PrivKeyEd25519{privA, privB}
	msg := types.NewReceiveMsg(owner, testSourceChainID, "ABC123", "TESTTOKEN", 1000, dest,
		receiveSignatures(privs, "ABC123", 1000, dest))
	require.Nil(t, k.ProcessReceive(ctx, msg))

	require.Equal(t, int64(1000), k.BankKeeper.GetCoins(ctx, dest).AmountOf(denom))
	require.Equal(t, int64(0), k.BankKeeper.GetCoins(ctx, types.BridgeAccount).AmountOf(denom))

	// identical replay is rejected no matter how many signatures it carries
	err := k.ProcessReceive(ctx, msg)
	require.NotNil(t, err)
	require.Equal(t, types.CodeTransactionAlreadyHandled, err.Code())
	require.Equal(t, int64(1000), k.BankKeeper.GetCoins(ctx, dest).AmountOf(denom))
}

func TestReceiveRecordsHashBeforeVerification(t *testing.T) {
	ctx, k, _, accountKeeper, owner := setup()
	privA := addTestSigner(ctx, k, "observer-a")
	privB := addTestSigner(ctx, k, "observer-b")
	linkTestToken(t, ctx, k, owner, privA, privB)

	_, destAcc := testutils.NewAccount(ctx, accountKeeper, 0)
	dest := destAcc.GetAddress()

	// only one signature, verification fails after the hash is recorded
	msg := types.NewReceiveMsg(owner, testSourceChainID, "ABC123", "TESTTOKEN", 1000, dest,
		receiveSignatures([]ed25519.PrivKeyEd25519{privA}, "ABC123", 1000, dest))
	err := k.ProcessReceive(ctx, msg)
	require.NotNil(t, err)
	require.Equal(t, types.CodeThresholdNotMet, err.Code())
	require.True(t, k.IsHandled(ctx, testSourceChainID, "ABC123"))
}

func TestReceiveOrderedChecks(t *testing.T) {
	ctx, k, _, accountKeeper, owner := setup()
	privA := addTestSigner(ctx, k, "observer-a")
	privB := addTestSigner(ctx, k, "observer-b")
	linkTestToken(t, ctx, k, owner, privA, privB)

	_, destAcc := testutils.NewAccount(ctx, accountKeeper, 0)
	dest := destAcc.GetAddress()
	privs := []ed25519.PrivKeyEd25519{privA, privB}

	// zero amount
	msg := types.NewReceiveMsg(owner, testSourceChainID, "H1", "TESTTOKEN", 0, dest,
		receiveSignatures(privs, "H1", 0, dest))
	err := k.ProcessReceive(ctx, msg)
	require.NotNil(t, err)
	require.Equal(t, types.CodeZeroAmount, err.Code())

	// invalid destination
	msg = types.NewReceiveMsg(owner, testSourceChainID, "H2", "TESTTOKEN", 10, sdk.AccAddress{1, 2},
		receiveSignatures(privs, "H2", 10, sdk.AccAddress{1, 2}))
	err = k.ProcessReceive(ctx, msg)
	require.NotNil(t, err)
	require.Equal(t, types.CodeInvalidDestinationAddr, err.Code())

	// unmapped ticker
	msg = types.NewReceiveMsg(owner, testSourceChainID, "H3", "NOTLINKED", 10, dest, []string{"c2ln", "c2lu"})
	err = k.ProcessReceive(ctx, msg)
	require.NotNil(t, err)
	require.Equal(t, types.CodeTokenDoesNotExist, err.Code())

	// disabled token wins over every later check
	require.Nil(t, k.ProcessDisableToken(ctx, types.NewDisableTokenMsg(owner, "TESTTOKEN")))
	msg = types.NewReceiveMsg(owner, testSourceChainID, "H4", "TESTTOKEN", 0, dest, []string{"c2ln"})
	err = k.ProcessReceive(ctx, msg)
	require.NotNil(t, err)
	require.Equal(t, types.CodeTokenDisabled, err.Code())
}

// fundSender delivers freshly minted wrapped tokens to an account so it can
// bridge them back.
func fundSender(t *testing.T, ctx sdk.Context, k Keeper, denom string, to sdk.AccAddress, amount int64) {
	require.Nil(t, k.DenomFactory.MintCoins(ctx, denom, amount))
	_, err := k.BankKeeper.SendCoins(ctx, types.BridgeAccount, to,
		sdk.Coins{sdk.Coin{Denom: denom, Amount: amount}})
	require.Nil(t, err)
}

func TestSendFeeBoundary(t *testing.T) {
	ctx, k, transport, accountKeeper, owner := setup()
	privA := addTestSigner(ctx, k, "observer-a")
	privB := addTestSigner(ctx, k, "observer-b")
	denom := linkTestToken(t, ctx, k, owner, privA, privB)

	_, senderAcc := testutils.NewAccount(ctx, accountKeeper, 100000)
	sender := senderAcc.GetAddress()
	fundSender(t, ctx, k, denom, sender, 500)

	totalFee := transport.minFee.Total(cmmtypes.NativeTokenSymbol)

	// no headroom for the one-unit transfer buffer
	funds := sdk.Coins{
		sdk.Coin{Denom: denom, Amount: 100},
		sdk.Coin{Denom: cmmtypes.NativeTokenSymbol, Amount: totalFee},
	}.Sort()
	err := k.ProcessSend(ctx, types.NewSendMsg(sender, "cosmos1dest", funds))
	require.NotNil(t, err)
	require.Equal(t, types.CodeInsufficientFunds, err.Code())

	// exactly one unit of headroom passes
	funds = sdk.Coins{
		sdk.Coin{Denom: denom, Amount: 100},
		sdk.Coin{Denom: cmmtypes.NativeTokenSymbol, Amount: totalFee + 1},
	}.Sort()
	require.Nil(t, k.ProcessSend(ctx, types.NewSendMsg(sender, "cosmos1dest", funds)))

	require.Len(t, transport.sent, 1)
	dispatch := transport.sent[0]
	require.Equal(t, testChannel, dispatch.ChannelID)
	require.Equal(t, "cosmos1dest", dispatch.Receiver)
	require.Equal(t, sdk.Coin{Denom: cmmtypes.NativeTokenSymbol, Amount: 1}, dispatch.Funds)
	require.Equal(t, uint64(300), dispatch.Timeout)
	require.Equal(t,
		"urn:bridge:"+testSourceChainID+"@v1;recv$tic=TESTTOKEN,amt=100,dst=cosmos1dest,rch="+testChainID+",src="+sender.String(),
		dispatch.Memo)

	// the bridged coins are burned, not parked on the bridge account
	require.Equal(t, int64(400), k.BankKeeper.GetCoins(ctx, sender).AmountOf(denom))
	require.Equal(t, int64(0), k.BankKeeper.GetCoins(ctx, types.BridgeAccount).AmountOf(denom))
}

func TestSendInvalidFunds(t *testing.T) {
	ctx, k, _, accountKeeper, owner := setup()
	privA := addTestSigner(ctx, k, "observer-a")
	privB := addTestSigner(ctx, k, "observer-b")
	denom := linkTestToken(t, ctx, k, owner, privA, privB)

	_, senderAcc := testutils.NewAccount(ctx, accountKeeper, 100000)
	sender := senderAcc.GetAddress()
	fundSender(t, ctx, k, denom, sender, 500)

	tests := []sdk.Coins{
		// single coin
		{sdk.Coin{Denom: denom, Amount: 100}},
		// fee token only
		{sdk.Coin{Denom: cmmtypes.NativeTokenSymbol, Amount: 500}},
		// zero bridged amount
		sdk.Coins{
			sdk.Coin{Denom: denom, Amount: 0},
			sdk.Coin{Denom: cmmtypes.NativeTokenSymbol, Amount: 500},
		}.Sort(),
	}

	for i, funds := range tests {
		err := k.ProcessSend(ctx, types.NewSendMsg(sender, "cosmos1dest", funds))
		require.NotNil(t, err, "test: %v", i)
		require.Equal(t, types.CodeInvalidFunds, err.Code(), "test: %v", i)
	}
}

func TestSendDisabledToken(t *testing.T) {
	ctx, k, _, accountKeeper, owner := setup()
	privA := addTestSigner(ctx, k, "observer-a")
	privB := addTestSigner(ctx, k, "observer-b")
	denom := linkTestToken(t, ctx, k, owner, privA, privB)

	_, senderAcc := testutils.NewAccount(ctx, accountKeeper, 100000)
	sender := senderAcc.GetAddress()
	fundSender(t, ctx, k, denom, sender, 500)

	require.Nil(t, k.ProcessDisableToken(ctx, types.NewDisableTokenMsg(owner, "TESTTOKEN")))

	funds := sdk.Coins{
		sdk.Coin{Denom: denom, Amount: 100},
		sdk.Coin{Denom: cmmtypes.NativeTokenSymbol, Amount: 1000},
	}.Sort()
	err := k.ProcessSend(ctx, types.NewSendMsg(sender, "cosmos1dest", funds))
	require.NotNil(t, err)
	require.Equal(t, types.CodeTokenDisabled, err.Code())
}

func TestSendPendingSlotAndDispatch(t *testing.T) {
	ctx, k, transport, accountKeeper, owner := setup()
	privA := addTestSigner(ctx, k, "observer-a")
	privB := addTestSigner(ctx, k, "observer-b")
	denom := linkTestToken(t, ctx, k, owner, privA, privB)

	_, senderAcc := testutils.NewAccount(ctx, accountKeeper, 100000)
	sender := senderAcc.GetAddress()
	fundSender(t, ctx, k, denom, sender, 500)

	funds := sdk.Coins{
		sdk.Coin{Denom: denom, Amount: 100},
		sdk.Coin{Denom: cmmtypes.NativeTokenSymbol, Amount: 1000},
	}.Sort()
	require.Nil(t, k.ProcessSend(ctx, types.NewSendMsg(sender, "cosmos1dest", funds)))

	// a second dispatch while the staging slot is occupied is rejected
	err := k.ProcessSend(ctx, types.NewSendMsg(sender, "cosmos1dest", funds))
	require.NotNil(t, err)
	require.Equal(t, types.CodeInvalidConfiguration, err.Code())
	require.Len(t, transport.sent, 1)

	// the dispatch confirmation keys the staged escrow into the ledger
	require.Nil(t, k.CompleteSendDispatch(ctx, testChannel, 7))
	asset, ok := k.GetInFlight(ctx, testChannel, 7)
	require.True(t, ok)
	require.Equal(t, sender, asset.Sender)
	require.Equal(t, sdk.Coin{Denom: denom, Amount: 100}, asset.Funds)
	require.Equal(t, transport.minFee, asset.Fees)

	_, ok = k.GetPendingOutbound(ctx)
	require.False(t, ok)

	// a stray confirmation with nothing staged fails loudly
	err = k.CompleteSendDispatch(ctx, testChannel, 8)
	require.NotNil(t, err)
	require.Equal(t, types.CodeIBCResponseFail, err.Code())
}

func TestRetrySend(t *testing.T) {
	ctx, k, transport, _, owner := setup()

	require.Nil(t, k.ProcessRetrySend(ctx, types.NewRetrySendMsg(owner, 42)))
	require.Equal(t, []uint64{42}, transport.resubmitted)
}
