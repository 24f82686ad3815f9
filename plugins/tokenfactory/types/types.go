package types

import (
	"fmt"
	"regexp"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// DenomPrefix is the namespace every factory denom lives under:
	// factory/{creator}/{subdenom}
	DenomPrefix = "factory"
)

var subDenomRegexp = regexp.MustCompile(`^[a-zA-Z0-9/._-]{1,44}$`)

// DenomMetadata is the human readable description attached to a denom.
// DisplayExponent is the power of ten between the base unit and the display
// unit.
type DenomMetadata struct {
	Name            string `json:"name"`
	Symbol          string `json:"symbol"`
	Description     string `json:"description"`
	DisplayExponent uint8  `json:"display_exponent"`
}

// Denom is the stored record of a factory-created denom. Only the creator
// account can receive mints and fund burns.
type Denom struct {
	Denom    string         `json:"denom"`
	Creator  sdk.AccAddress `json:"creator"`
	SubDenom string         `json:"sub_denom"`
	Metadata DenomMetadata  `json:"metadata,omitempty"`
}

func (d Denom) String() string {
	return fmt.Sprintf("Denom{%s#%s}", d.Denom, d.Creator.String())
}

// BuildDenom composes the full denom spelling for a creator and subdenom.
func BuildDenom(creator sdk.AccAddress, subDenom string) string {
	return fmt.Sprintf("%s/%s/%s", DenomPrefix, creator.String(), subDenom)
}

func ValidateSubDenom(subDenom string) sdk.Error {
	if !subDenomRegexp.MatchString(subDenom) {
		return ErrInvalidSubDenom(subDenom)
	}
	return nil
}
