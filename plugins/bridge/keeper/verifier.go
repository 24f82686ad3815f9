package keeper

import (
	"encoding/base64"
	"fmt"
	"sort"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/tendermint/tendermint/crypto/ed25519"

	"github.com/astermint/node/plugins/bridge/types"
)

// VerifyAttestation decides whether the supplied observer signatures form a
// quorum over message. Signatures are base64 encoded ed25519 signatures.
//
// The matching walks the loaded signer keys in ascending order and claims at
// most one signature per key, returning as soon as the threshold is reached
// so surplus signatures cost nothing. Both the key and signature counts are
// operator scale, so the quadratic matching is acceptable.
func (k Keeper) VerifyAttestation(ctx sdk.Context, message []byte, signatures []string) sdk.Error {
	if len(signatures) == 0 {
		return types.ErrThresholdNotMet()
	}

	sorted := make([]string, len(signatures))
	copy(sorted, signatures)
	sort.Strings(sorted)
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return types.ErrDuplicateSignatures()
		}
	}

	signers := k.GetSigners(ctx)
	if len(signers) == 0 {
		return types.ErrNoSigners()
	}

	config, err := k.GetConfig(ctx)
	if err != nil {
		return err
	}
	threshold := config.MajorityThreshold(len(signers))

	// cheap reject before any crypto work
	if len(sorted) < threshold {
		return types.ErrThresholdNotMet()
	}

	candidates := make([][]byte, 0, len(sorted))
	for _, encoded := range sorted {
		sig, decodeErr := base64.StdEncoding.DecodeString(encoded)
		if decodeErr != nil {
			return types.ErrInvalidSignature(fmt.Sprintf("signature is not valid base64: %s", decodeErr.Error()))
		}
		candidates = append(candidates, sig)
	}

	verified := 0
	for _, signer := range signers {
		pubKey := signer.Ed25519PubKey()
		for i, sig := range candidates {
			if sig == nil {
				continue
			}
			if pubKey.VerifyBytes(message, sig) {
				candidates[i] = nil
				verified++
				break
			}
		}
		if verified >= threshold {
			return nil
		}
	}

	return types.ErrThresholdNotMet()
}

// VerifySingle checks one signature against one public key, without touching
// state. It backs the diagnostic query used to validate observer tooling.
func VerifySingle(pubKey, signature, message []byte) bool {
	if len(pubKey) != ed25519.PubKeyEd25519Size {
		return false
	}
	var key ed25519.PubKeyEd25519
	copy(key[:], pubKey)
	return key.VerifyBytes(message, signature)
}
