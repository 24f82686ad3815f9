package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	DefaultCodespace sdk.CodespaceType = 16

	CodeInvalidIBCTimeout         sdk.CodeType = 1
	CodeInvalidConfiguration      sdk.CodeType = 2
	CodeTokenAlreadyExists        sdk.CodeType = 3
	CodeTokenDoesNotExist         sdk.CodeType = 4
	CodeTokenDisabled             sdk.CodeType = 5
	CodeZeroAmount                sdk.CodeType = 6
	CodeInvalidDestinationAddr    sdk.CodeType = 7
	CodeTransactionAlreadyHandled sdk.CodeType = 8
	CodeInvalidFunds              sdk.CodeType = 9
	CodeInsufficientFunds         sdk.CodeType = 10
	CodeThresholdNotMet           sdk.CodeType = 11
	CodeDuplicateSignatures       sdk.CodeType = 12
	CodeNoSigners                 sdk.CodeType = 13
	CodeInvalidSignature          sdk.CodeType = 14
	CodeIBCResponseFail           sdk.CodeType = 15
	CodeInvalidReplyId            sdk.CodeType = 16
	CodeUnknownInFlight           sdk.CodeType = 17
)

//----------------------------------------
// Error constructors

func ErrInvalidIBCTimeout(timeout uint64) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeInvalidIBCTimeout,
		fmt.Sprintf("invalid IBC timeout: %d, must be between %d and %d seconds",
			timeout, MinIBCTimeoutSeconds, MaxIBCTimeoutSeconds))
}

func ErrInvalidConfiguration(reason string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeInvalidConfiguration, fmt.Sprintf("invalid bridge configuration: %s", reason))
}

func ErrTokenAlreadyExists(ticker string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeTokenAlreadyExists, fmt.Sprintf("the token '%s' is already linked", ticker))
}

func ErrTokenDoesNotExist(ticker string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeTokenDoesNotExist, fmt.Sprintf("the token '%s' has not been linked for bridging", ticker))
}

func ErrTokenDisabled(ticker string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeTokenDisabled, fmt.Sprintf("this token has been disabled from bridging: %s", ticker))
}

func ErrZeroAmount() sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeZeroAmount, "can not bridge 0 tokens")
}

func ErrInvalidDestinationAddr(msg string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeInvalidDestinationAddr, fmt.Sprintf("invalid destination address: %s", msg))
}

func ErrTransactionAlreadyHandled(txHash string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeTransactionAlreadyHandled, fmt.Sprintf("the transaction has already been handled: %s", txHash))
}

func ErrInvalidFunds() sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeInvalidFunds,
		"invalid funds, expected the fee token and a bridged token to be sent together")
}

func ErrInsufficientFunds(expected int64) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeInsufficientFunds,
		fmt.Sprintf("insufficient funds to cover the bridging cost, expected at least %d of the fee token", expected))
}

func ErrThresholdNotMet() sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeThresholdNotMet, "insufficient valid signatures to confirm the message")
}

func ErrDuplicateSignatures() sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeDuplicateSignatures, "duplicated signatures are not allowed")
}

func ErrNoSigners() sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeNoSigners, "no signers are loaded")
}

func ErrInvalidSignature(msg string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeInvalidSignature, msg)
}

func ErrIBCResponseFail(detail string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeIBCResponseFail, fmt.Sprintf("failed to handle IBC transfer response: %s", detail))
}

func ErrInvalidReplyId(id uint64) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeInvalidReplyId, fmt.Sprintf("invalid reply ID: %d", id))
}

func ErrUnknownInFlight(channelID string, sequence uint64) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeUnknownInFlight,
		fmt.Sprintf("no in-flight transfer for channel %s sequence %d", channelID, sequence))
}
