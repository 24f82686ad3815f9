package types

import (
	"fmt"
)

const (
	keySigner      = "signer:"
	keyMapping     = "mapping:%s"
	keyDisabled    = "disabled:%s"
	keyHandledTx   = "handled:%s:%s"
	keyInFlight    = "inflight:%s:%d"
)

var (
	ConfigKey            = []byte("config")
	PendingLinkKey       = []byte("pendingLink")
	PendingOutboundKey   = []byte("pendingOutbound")
	OwnershipProposalKey = []byte("ownershipProposal")

	SignerKeyPrefix   = []byte(keySigner)
	MappingKeyPrefix  = []byte("mapping:")
	DisabledKeyPrefix = []byte("disabled:")
)

func GetSignerKey(pubKey []byte) []byte {
	return append([]byte(keySigner), pubKey...)
}

func GetMappingKey(symbol string) []byte {
	return []byte(fmt.Sprintf(keyMapping, symbol))
}

func GetDisabledKey(symbol string) []byte {
	return []byte(fmt.Sprintf(keyDisabled, symbol))
}

func GetHandledTransactionKey(sourceChainID, txHash string) []byte {
	return []byte(fmt.Sprintf(keyHandledTx, sourceChainID, txHash))
}

func GetInFlightKey(channelID string, sequence uint64) []byte {
	return []byte(fmt.Sprintf(keyInFlight, channelID, sequence))
}
