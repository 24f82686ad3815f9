package bridge

import (
	"github.com/astermint/node/wire"
)

// Register concrete types on wire codec
func RegisterWire(cdc *wire.Codec) {
	cdc.RegisterConcrete(LinkTokenMsg{}, "bridge/LinkTokenMsg", nil)
	cdc.RegisterConcrete(EnableTokenMsg{}, "bridge/EnableTokenMsg", nil)
	cdc.RegisterConcrete(DisableTokenMsg{}, "bridge/DisableTokenMsg", nil)
	cdc.RegisterConcrete(ReceiveMsg{}, "bridge/ReceiveMsg", nil)
	cdc.RegisterConcrete(SendMsg{}, "bridge/SendMsg", nil)
	cdc.RegisterConcrete(RetrySendMsg{}, "bridge/RetrySendMsg", nil)
	cdc.RegisterConcrete(AddSignerMsg{}, "bridge/AddSignerMsg", nil)
	cdc.RegisterConcrete(RemoveSignerMsg{}, "bridge/RemoveSignerMsg", nil)
	cdc.RegisterConcrete(UpdateConfigMsg{}, "bridge/UpdateConfigMsg", nil)
	cdc.RegisterConcrete(ProposeOwnerMsg{}, "bridge/ProposeOwnerMsg", nil)
	cdc.RegisterConcrete(DropOwnerProposalMsg{}, "bridge/DropOwnerProposalMsg", nil)
	cdc.RegisterConcrete(ClaimOwnerMsg{}, "bridge/ClaimOwnerMsg", nil)
}
