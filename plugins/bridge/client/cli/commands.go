package cli

import (
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/spf13/cobra"
)

func AddCommands(cmd *cobra.Command, cdc *codec.Codec) {
	bridgeCmd := &cobra.Command{
		Use:   "bridge",
		Short: "bridge commands",
	}

	bridgeCmd.AddCommand(
		client.PostCommands(
			LinkTokenCmd(cdc),
			EnableTokenCmd(cdc),
			DisableTokenCmd(cdc),
			ReceiveCmd(cdc),
			SendCmd(cdc),
			RetrySendCmd(cdc),
			AddSignerCmd(cdc),
			RemoveSignerCmd(cdc),
			UpdateConfigCmd(cdc),
			ProposeOwnerCmd(cdc),
			DropOwnerProposalCmd(cdc),
			ClaimOwnerCmd(cdc),
		)...,
	)

	bridgeCmd.AddCommand(client.LineBreak)

	bridgeCmd.AddCommand(
		client.GetCommands(
			QueryConfigCmd(cdc),
			QuerySignersCmd(cdc),
			QueryTokensCmd(cdc),
			QueryDisabledCmd(cdc),
		)...,
	)
	cmd.AddCommand(bridgeCmd)
}
