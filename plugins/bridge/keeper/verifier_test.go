package keeper

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/crypto/ed25519"

	"github.com/astermint/node/plugins/bridge/types"
)

func TestVerifyAttestationThreshold(t *testing.T) {
	ctx, k, _, _, _ := setup()

	privA := addTestSigner(ctx, k, "observer-a")
	privB := addTestSigner(ctx, k, "observer-b")
	privC := addTestSigner(ctx, k, "observer-c")

	message := []byte("attestation payload")
	sigA := signAttestation(privA, message)
	sigB := signAttestation(privB, message)
	sigC := signAttestation(privC, message)

	// 3 signers, derived threshold is 2
	require.Nil(t, k.VerifyAttestation(ctx, message, []string{sigA, sigB}))
	require.Nil(t, k.VerifyAttestation(ctx, message, []string{sigB, sigC}))

	err := k.VerifyAttestation(ctx, message, []string{sigA})
	require.NotNil(t, err)
	require.Equal(t, types.CodeThresholdNotMet, err.Code())

	err = k.VerifyAttestation(ctx, message, nil)
	require.NotNil(t, err)
	require.Equal(t, types.CodeThresholdNotMet, err.Code())
}

func TestVerifyAttestationMonotonicity(t *testing.T) {
	ctx, k, _, _, _ := setup()

	privA := addTestSigner(ctx, k, "observer-a")
	privB := addTestSigner(ctx, k, "observer-b")
	privC := addTestSigner(ctx, k, "observer-c")
	addTestSigner(ctx, k, "observer-d")

	message := []byte("attestation payload")
	sigA := signAttestation(privA, message)
	sigB := signAttestation(privB, message)
	sigC := signAttestation(privC, message)

	// 4 signers, derived threshold is 3
	base := []string{sigA, sigB, sigC}
	require.Nil(t, k.VerifyAttestation(ctx, message, base))

	// adding more valid signatures never breaks a passing set
	privE := addTestSigner(ctx, k, "observer-e")
	sigE := signAttestation(privE, message)
	require.Nil(t, k.VerifyAttestation(ctx, message, append([]string{sigE}, base...)))

	// removing signers below the threshold flips the same set to rejection
	pubB := privB.PubKey().(ed25519.PubKeyEd25519)
	pubC := privC.PubKey().(ed25519.PubKeyEd25519)
	k.DeleteSigner(ctx, pubB[:])
	k.DeleteSigner(ctx, pubC[:])

	// 3 signers remain but only sigA matches a loaded key
	err := k.VerifyAttestation(ctx, message, base)
	require.NotNil(t, err)
	require.Equal(t, types.CodeThresholdNotMet, err.Code())
}

func TestVerifyAttestationDuplicates(t *testing.T) {
	ctx, k, _, _, _ := setup()

	privA := addTestSigner(ctx, k, "observer-a")
	addTestSigner(ctx, k, "observer-b")

	message := []byte("attestation payload")
	sigA := signAttestation(privA, message)

	err := k.VerifyAttestation(ctx, message, []string{sigA, sigA})
	require.NotNil(t, err)
	require.Equal(t, types.CodeDuplicateSignatures, err.Code())
}

func TestVerifyAttestationNoSigners(t *testing.T) {
	ctx, k, _, _, _ := setup()

	err := k.VerifyAttestation(ctx, []byte("attestation payload"), []string{"c2ln", "c2lu"})
	require.NotNil(t, err)
	require.Equal(t, types.CodeNoSigners, err.Code())
}

func TestVerifyAttestationBadEncoding(t *testing.T) {
	ctx, k, _, _, _ := setup()

	privA := addTestSigner(ctx, k, "observer-a")
	addTestSigner(ctx, k, "observer-b")

	message := []byte("attestation payload")
	sigA := signAttestation(privA, message)

	err := k.VerifyAttestation(ctx, message, []string{sigA, "not-base64!!"})
	require.NotNil(t, err)
	require.Equal(t, types.CodeInvalidSignature, err.Code())
}

func TestVerifyAttestationWrongMessage(t *testing.T) {
	ctx, k, _, _, _ := setup()

	privA := addTestSigner(ctx, k, "observer-a")
	privB := addTestSigner(ctx, k, "observer-b")

	message := []byte("attestation payload")
	sigA := signAttestation(privA, message)
	sigB := signAttestation(privB, []byte("a different payload"))

	err := k.VerifyAttestation(ctx, message, []string{sigA, sigB})
	require.NotNil(t, err)
	require.Equal(t, types.CodeThresholdNotMet, err.Code())
}

func TestVerifyAttestationExplicitThreshold(t *testing.T) {
	ctx, k, _, _, _ := setup()

	config, err := k.GetConfig(ctx)
	require.Nil(t, err)
	config.SignerThreshold = 3
	k.SetConfig(ctx, config)

	privA := addTestSigner(ctx, k, "observer-a")
	privB := addTestSigner(ctx, k, "observer-b")
	privC := addTestSigner(ctx, k, "observer-c")

	message := []byte("attestation payload")
	sigA := signAttestation(privA, message)
	sigB := signAttestation(privB, message)
	sigC := signAttestation(privC, message)

	verifyErr := k.VerifyAttestation(ctx, message, []string{sigA, sigB})
	require.NotNil(t, verifyErr)
	require.Equal(t, types.CodeThresholdNotMet, verifyErr.Code())

	require.Nil(t, k.VerifyAttestation(ctx, message, []string{sigA, sigB, sigC}))
}

func TestVerifySingle(t *testing.T) {
	priv := ed25519.GenPrivKey()
	pub := priv.PubKey().(ed25519.PubKeyEd25519)

	message := []byte("diagnostic payload")
	sig, err := priv.Sign(message)
	require.NoError(t, err)

	require.True(t, VerifySingle(pub[:], sig, message))
	require.False(t, VerifySingle(pub[:], sig, []byte("tampered payload")))
	require.False(t, VerifySingle(pub[:31], sig, message))
}
