package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	DefaultCodespace sdk.CodespaceType = 17

	CodeDenomAlreadyExists sdk.CodeType = 1
	CodeDenomDoesNotExist  sdk.CodeType = 2
	CodeInvalidSubDenom    sdk.CodeType = 3
	CodeInvalidAmount      sdk.CodeType = 4
)

func ErrDenomAlreadyExists(denom string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeDenomAlreadyExists, fmt.Sprintf("denom %s already exists", denom))
}

func ErrDenomDoesNotExist(denom string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeDenomDoesNotExist, fmt.Sprintf("denom %s does not exist", denom))
}

func ErrInvalidSubDenom(subDenom string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeInvalidSubDenom, fmt.Sprintf("subdenom %s is invalid", subDenom))
}

func ErrInvalidAmount(msg string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeInvalidAmount, msg)
}
