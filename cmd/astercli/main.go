package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tendermint/tendermint/libs/cli"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/keys"
	"github.com/cosmos/cosmos-sdk/client/rpc"
	"github.com/cosmos/cosmos-sdk/client/tx"
	"github.com/cosmos/cosmos-sdk/version"
	authcmd "github.com/cosmos/cosmos-sdk/x/auth/client/cli"
	bankcmd "github.com/cosmos/cosmos-sdk/x/bank/client/cli"

	"github.com/astermint/node/app"
	"github.com/astermint/node/common"
	bridgecmd "github.com/astermint/node/plugins/bridge/client/cli"
	nodeversion "github.com/astermint/node/version"
)

// rootCmd is the entry point for this binary
var (
	rootCmd = &cobra.Command{
		Use:   "astercli",
		Short: "Astermint light-client",
	}

	nodeVersionCmd = &cobra.Command{
		Use:   "node-version",
		Short: "Print the node release the client was built against",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(nodeversion.Version)
		},
	}
)

func main() {
	// disable sorting
	cobra.EnableCommandSorting = false

	// get the codec
	cdc := app.MakeCodec()

	// add standard rpc, and tx commands
	rpc.AddCommands(rootCmd)
	rootCmd.AddCommand(client.LineBreak)
	tx.AddCommands(rootCmd, cdc)
	rootCmd.AddCommand(client.LineBreak)

	rootCmd.AddCommand(
		client.GetCommands(
			authcmd.GetAccountCmd(common.AccountStoreName, cdc, authcmd.GetAccountDecoder(cdc)),
		)...)
	rootCmd.AddCommand(
		client.PostCommands(
			bankcmd.SendTxCmd(cdc),
		)...)

	bridgecmd.AddCommands(rootCmd, cdc)

	// add version and key info
	rootCmd.AddCommand(
		client.LineBreak,
		keys.Commands(),
		client.LineBreak,
		version.VersionCmd,
		nodeVersionCmd,
	)

	// prepare and add flags
	executor := cli.PrepareMainCmd(rootCmd, "AC", app.DefaultCLIHome)
	err := executor.Execute()
	if err != nil {
		panic(err)
	}
}
