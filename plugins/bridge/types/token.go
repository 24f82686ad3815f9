package types

import (
	"encoding/base64"
	"fmt"
	"regexp"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/tendermint/tendermint/crypto/ed25519"
)

var tickerRegexp = regexp.MustCompile(`^[A-Z0-9]{1,10}$`)

// TokenMetadata describes a hub token being linked for bridging. It is held
// as the pending-link record between the create-denom dispatch and its
// asynchronous confirmation.
type TokenMetadata struct {
	Ticker   string `json:"ticker"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
	Decimals uint8  `json:"decimals"`
}

func (t TokenMetadata) String() string {
	return fmt.Sprintf("TokenMetadata{%s#%s#%d}", t.Ticker, t.Name, t.Decimals)
}

func (t TokenMetadata) Validate() sdk.Error {
	if !tickerRegexp.MatchString(t.Ticker) {
		return ErrInvalidConfiguration(
			fmt.Sprintf("ticker %s is invalid, expected 1-10 uppercase alphanumerics", t.Ticker))
	}
	if len(t.Name) == 0 {
		return ErrInvalidConfiguration("token name must not be empty")
	}
	if t.Decimals > 18 {
		return ErrInvalidConfiguration("token decimals must be no more than 18")
	}
	return nil
}

// SignerEntry pairs a trusted attestor public key with a human readable
// label. The map of entries is keyed by the raw public key bytes, so keys
// are unique by construction. Label uniqueness is enforced on registration.
type SignerEntry struct {
	PubKey []byte `json:"pub_key"`
	Label  string `json:"label"`
}

func (s SignerEntry) String() string {
	return fmt.Sprintf("Signer{%s#%s}", s.EncodedPubKey(), s.Label)
}

// EncodedPubKey returns the base64 spelling of the key, the form it travels
// in over queries and messages.
func (s SignerEntry) EncodedPubKey() string {
	return base64.StdEncoding.EncodeToString(s.PubKey)
}

func (s SignerEntry) Validate() sdk.Error {
	if len(s.PubKey) != ed25519.PubKeyEd25519Size {
		return ErrInvalidConfiguration(
			fmt.Sprintf("public key must be %d bytes, got %d", ed25519.PubKeyEd25519Size, len(s.PubKey)))
	}
	if len(s.Label) == 0 {
		return ErrInvalidConfiguration("signer label must not be empty")
	}
	return nil
}

// Ed25519PubKey loads the entry's key into the tendermint key type used for
// verification.
func (s SignerEntry) Ed25519PubKey() ed25519.PubKeyEd25519 {
	var pub ed25519.PubKeyEd25519
	copy(pub[:], s.PubKey)
	return pub
}

// TokenMappingEntry is one direction of the bidirectional ticker/denom map,
// in the shape the Tokens query returns it.
type TokenMappingEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
