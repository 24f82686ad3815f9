package types

import (
	"encoding/json"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = LinkTokenMsg{}

// LinkTokenMsg registers a hub token for bridging. The attached signatures
// must form a quorum over the link attestation before a wrapped denom is
// created.
type LinkTokenMsg struct {
	From          sdk.AccAddress `json:"from"`
	SourceChainID string         `json:"source_chain_id"`
	Token         TokenMetadata  `json:"token"`
	Signatures    []string       `json:"signatures"`
}

func NewLinkTokenMsg(from sdk.AccAddress, sourceChainID string, token TokenMetadata, signatures []string) LinkTokenMsg {
	return LinkTokenMsg{
		From:          from,
		SourceChainID: sourceChainID,
		Token:         token,
		Signatures:    signatures,
	}
}

// nolint
func (msg LinkTokenMsg) Route() string                { return RouteBridge }
func (msg LinkTokenMsg) Type() string                 { return LinkTokenMsgType }
func (msg LinkTokenMsg) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.From} }
func (msg LinkTokenMsg) String() string {
	return fmt.Sprintf("LinkToken{%v#%s#%s#%d}", msg.From, msg.SourceChainID, msg.Token.Ticker, len(msg.Signatures))
}

func (msg LinkTokenMsg) GetInvolvedAddresses() []sdk.AccAddress { return msg.GetSigners() }

// GetSignBytes - Get the bytes for the message signer to sign on
func (msg LinkTokenMsg) GetSignBytes() []byte {
	b, err := json.Marshal(msg)
	if err != nil {
		panic(err)
	}
	return b
}

// ValidateBasic is used to quickly disqualify obviously invalid messages quickly
func (msg LinkTokenMsg) ValidateBasic() sdk.Error {
	if len(msg.From) != sdk.AddrLen {
		return sdk.ErrInvalidAddress(fmt.Sprintf("address length should be %d", sdk.AddrLen))
	}
	if len(msg.SourceChainID) == 0 {
		return ErrInvalidConfiguration("source chain id must not be empty")
	}
	if err := msg.Token.Validate(); err != nil {
		return err
	}
	if len(msg.Signatures) == 0 {
		return ErrThresholdNotMet()
	}
	return nil
}

var _ sdk.Msg = EnableTokenMsg{}

// EnableTokenMsg lifts a previous disable for a linked token. Owner only.
type EnableTokenMsg struct {
	From   sdk.AccAddress `json:"from"`
	Ticker string         `json:"ticker"`
}

func NewEnableTokenMsg(from sdk.AccAddress, ticker string) EnableTokenMsg {
	return EnableTokenMsg{From: from, Ticker: ticker}
}

// nolint
func (msg EnableTokenMsg) Route() string                { return RouteBridge }
func (msg EnableTokenMsg) Type() string                 { return EnableTokenMsgType }
func (msg EnableTokenMsg) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.From} }
func (msg EnableTokenMsg) String() string {
	return fmt.Sprintf("EnableToken{%v#%s}", msg.From, msg.Ticker)
}

func (msg EnableTokenMsg) GetInvolvedAddresses() []sdk.AccAddress { return msg.GetSigners() }

func (msg EnableTokenMsg) GetSignBytes() []byte {
	b, err := json.Marshal(msg)
	if err != nil {
		panic(err)
	}
	return b
}

func (msg EnableTokenMsg) ValidateBasic() sdk.Error {
	if len(msg.From) != sdk.AddrLen {
		return sdk.ErrInvalidAddress(fmt.Sprintf("address length should be %d", sdk.AddrLen))
	}
	if len(msg.Ticker) == 0 {
		return ErrInvalidConfiguration("ticker must not be empty")
	}
	return nil
}

var _ sdk.Msg = DisableTokenMsg{}

// DisableTokenMsg bars a linked token from bridging in both directions.
// Owner only.
type DisableTokenMsg struct {
	From   sdk.AccAddress `json:"from"`
	Ticker string         `json:"ticker"`
}

func NewDisableTokenMsg(from sdk.AccAddress, ticker string) DisableTokenMsg {
	return DisableTokenMsg{From: from, Ticker: ticker}
}

// nolint
func (msg DisableTokenMsg) Route() string                { return RouteBridge }
func (msg DisableTokenMsg) Type() string                 { return DisableTokenMsgType }
func (msg DisableTokenMsg) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.From} }
func (msg DisableTokenMsg) String() string {
	return fmt.Sprintf("DisableToken{%v#%s}", msg.From, msg.Ticker)
}

func (msg DisableTokenMsg) GetInvolvedAddresses() []sdk.AccAddress { return msg.GetSigners() }

func (msg DisableTokenMsg) GetSignBytes() []byte {
	b, err := json.Marshal(msg)
	if err != nil {
		panic(err)
	}
	return b
}

func (msg DisableTokenMsg) ValidateBasic() sdk.Error {
	if len(msg.From) != sdk.AddrLen {
		return sdk.ErrInvalidAddress(fmt.Sprintf("address length should be %d", sdk.AddrLen))
	}
	if len(msg.Ticker) == 0 {
		return ErrInvalidConfiguration("ticker must not be empty")
	}
	return nil
}

var _ sdk.Msg = ReceiveMsg{}

// ReceiveMsg settles an inbound transfer from the hub chain: a quorum of
// observer signatures over the receive attestation releases a mint of the
// wrapped denom to the destination address.
type ReceiveMsg struct {
	From            sdk.AccAddress `json:"from"`
	SourceChainID   string         `json:"source_chain_id"`
	TransactionHash string         `json:"transaction_hash"`
	Ticker          string         `json:"ticker"`
	Amount          int64          `json:"amount"`
	DestinationAddr sdk.AccAddress `json:"destination_addr"`
	Signatures      []string       `json:"signatures"`
}

func NewReceiveMsg(from sdk.AccAddress, sourceChainID, txHash, ticker string,
	amount int64, destinationAddr sdk.AccAddress, signatures []string) ReceiveMsg {
	return ReceiveMsg{
		From:            from,
		SourceChainID:   sourceChainID,
		TransactionHash: txHash,
		Ticker:          ticker,
		Amount:          amount,
		DestinationAddr: destinationAddr,
		Signatures:      signatures,
	}
}

// nolint
func (msg ReceiveMsg) Route() string                { return RouteBridge }
func (msg ReceiveMsg) Type() string                 { return ReceiveMsgType }
func (msg ReceiveMsg) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.From} }
func (msg ReceiveMsg) String() string {
	return fmt.Sprintf("Receive{%v#%s#%s#%s#%d#%s}",
		msg.From, msg.SourceChainID, msg.TransactionHash, msg.Ticker, msg.Amount, msg.DestinationAddr.String())
}

func (msg ReceiveMsg) GetInvolvedAddresses() []sdk.AccAddress {
	return append(msg.GetSigners(), msg.DestinationAddr)
}

// GetSignBytes - Get the bytes for the message signer to sign on
func (msg ReceiveMsg) GetSignBytes() []byte {
	b, err := json.Marshal(msg)
	if err != nil {
		panic(err)
	}
	return b
}

// ValidateBasic is used to quickly disqualify obviously invalid messages quickly
func (msg ReceiveMsg) ValidateBasic() sdk.Error {
	if len(msg.From) != sdk.AddrLen {
		return sdk.ErrInvalidAddress(fmt.Sprintf("address length should be %d", sdk.AddrLen))
	}
	if len(msg.SourceChainID) == 0 {
		return ErrInvalidConfiguration("source chain id must not be empty")
	}
	if len(msg.TransactionHash) == 0 {
		return ErrInvalidConfiguration("transaction hash must not be empty")
	}
	if len(msg.Ticker) == 0 {
		return ErrInvalidConfiguration("ticker must not be empty")
	}
	if len(msg.Signatures) == 0 {
		return ErrThresholdNotMet()
	}
	return nil
}

var _ sdk.Msg = SendMsg{}

// SendMsg returns a wrapped token to the hub chain. Funds must carry exactly
// two coins: the wrapped token to bridge back and the native fee token.
type SendMsg struct {
	From            sdk.AccAddress `json:"from"`
	DestinationAddr string         `json:"destination_addr"`
	Funds           sdk.Coins      `json:"funds"`
}

func NewSendMsg(from sdk.AccAddress, destinationAddr string, funds sdk.Coins) SendMsg {
	return SendMsg{From: from, DestinationAddr: destinationAddr, Funds: funds}
}

// nolint
func (msg SendMsg) Route() string                { return RouteBridge }
func (msg SendMsg) Type() string                 { return SendMsgType }
func (msg SendMsg) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.From} }
func (msg SendMsg) String() string {
	return fmt.Sprintf("Send{%v#%s#%s}", msg.From, msg.DestinationAddr, msg.Funds.String())
}

func (msg SendMsg) GetInvolvedAddresses() []sdk.AccAddress {
	return append(msg.GetSigners(), BridgeAccount)
}

func (msg SendMsg) GetSignBytes() []byte {
	b, err := json.Marshal(msg)
	if err != nil {
		panic(err)
	}
	return b
}

func (msg SendMsg) ValidateBasic() sdk.Error {
	if len(msg.From) != sdk.AddrLen {
		return sdk.ErrInvalidAddress(fmt.Sprintf("address length should be %d", sdk.AddrLen))
	}
	if len(msg.DestinationAddr) == 0 {
		return ErrInvalidDestinationAddr("destination address must not be empty")
	}
	if !msg.Funds.IsValid() {
		return ErrInvalidFunds()
	}
	return nil
}

var _ sdk.Msg = RetrySendMsg{}

// RetrySendMsg asks the transport layer to resubmit a failed outbound
// delivery by its failure identifier. No local state changes.
type RetrySendMsg struct {
	From      sdk.AccAddress `json:"from"`
	FailureID uint64         `json:"failure_id"`
}

func NewRetrySendMsg(from sdk.AccAddress, failureID uint64) RetrySendMsg {
	return RetrySendMsg{From: from, FailureID: failureID}
}

// nolint
func (msg RetrySendMsg) Route() string                { return RouteBridge }
func (msg RetrySendMsg) Type() string                 { return RetrySendMsgType }
func (msg RetrySendMsg) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.From} }
func (msg RetrySendMsg) String() string {
	return fmt.Sprintf("RetrySend{%v#%d}", msg.From, msg.FailureID)
}

func (msg RetrySendMsg) GetInvolvedAddresses() []sdk.AccAddress { return msg.GetSigners() }

func (msg RetrySendMsg) GetSignBytes() []byte {
	b, err := json.Marshal(msg)
	if err != nil {
		panic(err)
	}
	return b
}

func (msg RetrySendMsg) ValidateBasic() sdk.Error {
	if len(msg.From) != sdk.AddrLen {
		return sdk.ErrInvalidAddress(fmt.Sprintf("address length should be %d", sdk.AddrLen))
	}
	return nil
}

var _ sdk.Msg = AddSignerMsg{}

// AddSignerMsg registers a trusted attestor public key. Owner only.
type AddSignerMsg struct {
	From   sdk.AccAddress `json:"from"`
	PubKey []byte         `json:"pub_key"`
	Label  string         `json:"label"`
}

func NewAddSignerMsg(from sdk.AccAddress, pubKey []byte, label string) AddSignerMsg {
	return AddSignerMsg{From: from, PubKey: pubKey, Label: label}
}

// nolint
func (msg AddSignerMsg) Route() string                { return RouteBridge }
func (msg AddSignerMsg) Type() string                 { return AddSignerMsgType }
func (msg AddSignerMsg) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.From} }
func (msg AddSignerMsg) String() string {
	return fmt.Sprintf("AddSigner{%v#%s}", msg.From, SignerEntry{PubKey: msg.PubKey, Label: msg.Label}.String())
}

func (msg AddSignerMsg) GetInvolvedAddresses() []sdk.AccAddress { return msg.GetSigners() }

func (msg AddSignerMsg) GetSignBytes() []byte {
	b, err := json.Marshal(msg)
	if err != nil {
		panic(err)
	}
	return b
}

func (msg AddSignerMsg) ValidateBasic() sdk.Error {
	if len(msg.From) != sdk.AddrLen {
		return sdk.ErrInvalidAddress(fmt.Sprintf("address length should be %d", sdk.AddrLen))
	}
	return SignerEntry{PubKey: msg.PubKey, Label: msg.Label}.Validate()
}

var _ sdk.Msg = RemoveSignerMsg{}

// RemoveSignerMsg drops a trusted attestor public key. Owner only.
type RemoveSignerMsg struct {
	From   sdk.AccAddress `json:"from"`
	PubKey []byte         `json:"pub_key"`
}

func NewRemoveSignerMsg(from sdk.AccAddress, pubKey []byte) RemoveSignerMsg {
	return RemoveSignerMsg{From: from, PubKey: pubKey}
}

// nolint
func (msg RemoveSignerMsg) Route() string                { return RouteBridge }
func (msg RemoveSignerMsg) Type() string                 { return RemoveSignerMsgType }
func (msg RemoveSignerMsg) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.From} }
func (msg RemoveSignerMsg) String() string {
	return fmt.Sprintf("RemoveSigner{%v#%s}", msg.From, SignerEntry{PubKey: msg.PubKey}.EncodedPubKey())
}

func (msg RemoveSignerMsg) GetInvolvedAddresses() []sdk.AccAddress { return msg.GetSigners() }

func (msg RemoveSignerMsg) GetSignBytes() []byte {
	b, err := json.Marshal(msg)
	if err != nil {
		panic(err)
	}
	return b
}

func (msg RemoveSignerMsg) ValidateBasic() sdk.Error {
	if len(msg.From) != sdk.AddrLen {
		return sdk.ErrInvalidAddress(fmt.Sprintf("address length should be %d", sdk.AddrLen))
	}
	if len(msg.PubKey) == 0 {
		return ErrInvalidConfiguration("public key must not be empty")
	}
	return nil
}

var _ sdk.Msg = UpdateConfigMsg{}

// UpdateConfigMsg mutates the bridge configuration. Zero-valued fields are
// left unchanged; any field actually changed is re-validated against its
// invariant before commit. Owner only.
type UpdateConfigMsg struct {
	From              sdk.AccAddress `json:"from"`
	SourceChainID     string         `json:"source_chain_id,omitempty"`
	TransportChannel  string         `json:"transport_channel,omitempty"`
	IBCTimeoutSeconds uint64         `json:"ibc_timeout_seconds,omitempty"`
	SignerThreshold   uint32         `json:"signer_threshold,omitempty"`
}

func NewUpdateConfigMsg(from sdk.AccAddress, sourceChainID, transportChannel string,
	ibcTimeoutSeconds uint64, signerThreshold uint32) UpdateConfigMsg {
	return UpdateConfigMsg{
		From:              from,
		SourceChainID:     sourceChainID,
		TransportChannel:  transportChannel,
		IBCTimeoutSeconds: ibcTimeoutSeconds,
		SignerThreshold:   signerThreshold,
	}
}

// nolint
func (msg UpdateConfigMsg) Route() string                { return RouteBridge }
func (msg UpdateConfigMsg) Type() string                 { return UpdateConfigMsgType }
func (msg UpdateConfigMsg) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.From} }
func (msg UpdateConfigMsg) String() string {
	return fmt.Sprintf("UpdateConfig{%v#%s#%s#%d#%d}",
		msg.From, msg.SourceChainID, msg.TransportChannel, msg.IBCTimeoutSeconds, msg.SignerThreshold)
}

func (msg UpdateConfigMsg) GetInvolvedAddresses() []sdk.AccAddress { return msg.GetSigners() }

func (msg UpdateConfigMsg) GetSignBytes() []byte {
	b, err := json.Marshal(msg)
	if err != nil {
		panic(err)
	}
	return b
}

func (msg UpdateConfigMsg) ValidateBasic() sdk.Error {
	if len(msg.From) != sdk.AddrLen {
		return sdk.ErrInvalidAddress(fmt.Sprintf("address length should be %d", sdk.AddrLen))
	}
	return nil
}

var _ sdk.Msg = ProposeOwnerMsg{}

// ProposeOwnerMsg starts a two-phase ownership transfer. Owner only.
type ProposeOwnerMsg struct {
	From     sdk.AccAddress `json:"from"`
	NewOwner sdk.AccAddress `json:"new_owner"`
}

func NewProposeOwnerMsg(from, newOwner sdk.AccAddress) ProposeOwnerMsg {
	return ProposeOwnerMsg{From: from, NewOwner: newOwner}
}

// nolint
func (msg ProposeOwnerMsg) Route() string                { return RouteBridge }
func (msg ProposeOwnerMsg) Type() string                 { return ProposeOwnerMsgType }
func (msg ProposeOwnerMsg) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.From} }
func (msg ProposeOwnerMsg) String() string {
	return fmt.Sprintf("ProposeOwner{%v#%v}", msg.From, msg.NewOwner)
}

func (msg ProposeOwnerMsg) GetInvolvedAddresses() []sdk.AccAddress {
	return append(msg.GetSigners(), msg.NewOwner)
}

func (msg ProposeOwnerMsg) GetSignBytes() []byte {
	b, err := json.Marshal(msg)
	if err != nil {
		panic(err)
	}
	return b
}

func (msg ProposeOwnerMsg) ValidateBasic() sdk.Error {
	if len(msg.From) != sdk.AddrLen {
		return sdk.ErrInvalidAddress(fmt.Sprintf("address length should be %d", sdk.AddrLen))
	}
	if len(msg.NewOwner) != sdk.AddrLen {
		return sdk.ErrInvalidAddress(fmt.Sprintf("new owner address length should be %d", sdk.AddrLen))
	}
	return nil
}

var _ sdk.Msg = DropOwnerProposalMsg{}

// DropOwnerProposalMsg cancels a pending ownership transfer. Owner only.
type DropOwnerProposalMsg struct {
	From sdk.AccAddress `json:"from"`
}

func NewDropOwnerProposalMsg(from sdk.AccAddress) DropOwnerProposalMsg {
	return DropOwnerProposalMsg{From: from}
}

// nolint
func (msg DropOwnerProposalMsg) Route() string                { return RouteBridge }
func (msg DropOwnerProposalMsg) Type() string                 { return DropProposalMsgType }
func (msg DropOwnerProposalMsg) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.From} }
func (msg DropOwnerProposalMsg) String() string {
	return fmt.Sprintf("DropOwnerProposal{%v}", msg.From)
}

func (msg DropOwnerProposalMsg) GetInvolvedAddresses() []sdk.AccAddress { return msg.GetSigners() }

func (msg DropOwnerProposalMsg) GetSignBytes() []byte {
	b, err := json.Marshal(msg)
	if err != nil {
		panic(err)
	}
	return b
}

func (msg DropOwnerProposalMsg) ValidateBasic() sdk.Error {
	if len(msg.From) != sdk.AddrLen {
		return sdk.ErrInvalidAddress(fmt.Sprintf("address length should be %d", sdk.AddrLen))
	}
	return nil
}

var _ sdk.Msg = ClaimOwnerMsg{}

// ClaimOwnerMsg completes an ownership transfer. Must be signed by the
// proposed owner.
type ClaimOwnerMsg struct {
	From sdk.AccAddress `json:"from"`
}

func NewClaimOwnerMsg(from sdk.AccAddress) ClaimOwnerMsg {
	return ClaimOwnerMsg{From: from}
}

// nolint
func (msg ClaimOwnerMsg) Route() string                { return RouteBridge }
func (msg ClaimOwnerMsg) Type() string                 { return ClaimOwnerMsgType }
func (msg ClaimOwnerMsg) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.From} }
func (msg ClaimOwnerMsg) String() string {
	return fmt.Sprintf("ClaimOwner{%v}", msg.From)
}

func (msg ClaimOwnerMsg) GetInvolvedAddresses() []sdk.AccAddress { return msg.GetSigners() }

func (msg ClaimOwnerMsg) GetSignBytes() []byte {
	b, err := json.Marshal(msg)
	if err != nil {
		panic(err)
	}
	return b
}

func (msg ClaimOwnerMsg) ValidateBasic() sdk.Error {
	if len(msg.From) != sdk.AddrLen {
		return sdk.ErrInvalidAddress(fmt.Sprintf("address length should be %d", sdk.AddrLen))
	}
	return nil
}
