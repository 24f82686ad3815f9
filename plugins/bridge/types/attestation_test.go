package types

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/x/mock"
	"github.com/stretchr/testify/require"
)

func TestAttestationLayout(t *testing.T) {
	_, addrs, _, _ := mock.CreateGenAccounts(2, sdk.Coins{})
	bridgeAddr, destAddr := addrs[0], addrs[1]

	link := LinkAttestation("gaialocal-1", "TESTTOKEN", 6, "astermint-1", bridgeAddr)
	require.Equal(t, "gaialocal-1TESTTOKEN6astermint-1"+bridgeAddr.String(), string(link))

	recv := ReceiveAttestation("gaialocal-1", "ABC123", "TESTTOKEN", 1000, "astermint-1", bridgeAddr, destAddr)
	require.Equal(t,
		"gaialocal-1ABC123TESTTOKEN1000astermint-1"+bridgeAddr.String()+destAddr.String(),
		string(recv))

	// any field change must produce a different payload
	other := ReceiveAttestation("gaialocal-1", "ABC123", "TESTTOKEN", 1001, "astermint-1", bridgeAddr, destAddr)
	require.NotEqual(t, string(recv), string(other))
}

func TestBuildTransferMemo(t *testing.T) {
	_, addrs, _, _ := mock.CreateGenAccounts(1, sdk.Coins{})
	sender := addrs[0]

	memo := BuildTransferMemo("gaialocal-1", "TESTTOKEN", 1000, "cosmos1dest", "astermint-1", sender)
	require.Equal(t,
		"urn:bridge:gaialocal-1@v1;recv$tic=TESTTOKEN,amt=1000,dst=cosmos1dest,rch=astermint-1,src="+sender.String(),
		memo)
}
