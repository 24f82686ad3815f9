package cli

import (
	"fmt"

	"github.com/cosmos/cosmos-sdk/client/context"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cliutils "github.com/astermint/node/common/client/context"
	"github.com/astermint/node/plugins/bridge/types"
	"github.com/astermint/node/wire"
)

const (
	flagStartAfter = "start-after"
	flagLimit      = "limit"
)

func queryAndPrint(cdc *codec.Codec, path string, result interface{}) error {
	cliCtx := context.NewCLIContext().WithCodec(cdc)

	res, err := cliutils.QueryWithData(cliCtx, path, nil)
	if err != nil {
		return err
	}
	if err := cdc.UnmarshalBinaryLengthPrefixed(res, result); err != nil {
		return err
	}

	output, err := wire.MarshalJSONIndent(cdc, result)
	if err != nil {
		return err
	}
	fmt.Println(string(output))
	return nil
}

func pagePath(base string) string {
	return fmt.Sprintf("%s/%s/%d",
		base, viper.GetString(flagStartAfter), viper.GetInt(flagLimit))
}

func addPageFlags(cmd *cobra.Command) {
	cmd.Flags().String(flagStartAfter, "", "return entries after this key, exclusive")
	cmd.Flags().Int(flagLimit, types.DefaultQueryLimit, "maximum number of entries to return")
}

func QueryConfigCmd(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "query bridge configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			var config types.Config
			return queryAndPrint(cdc, "/bridge/config", &config)
		},
	}
}

func QuerySignersCmd(cdc *codec.Codec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "signers",
		Short: "query registered attestation signers",
		RunE: func(cmd *cobra.Command, args []string) error {
			var signers []types.SignerEntry
			return queryAndPrint(cdc, pagePath("/bridge/signers"), &signers)
		},
	}
	addPageFlags(cmd)
	return cmd
}

func QueryTokensCmd(cdc *codec.Codec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "query linked token mappings",
		RunE: func(cmd *cobra.Command, args []string) error {
			var mappings []types.TokenMappingEntry
			return queryAndPrint(cdc, pagePath("/bridge/tokens"), &mappings)
		},
	}
	addPageFlags(cmd)
	return cmd
}

func QueryDisabledCmd(cdc *codec.Codec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "disabled",
		Short: "query disabled tickers",
		RunE: func(cmd *cobra.Command, args []string) error {
			var disabled []string
			return queryAndPrint(cdc, pagePath("/bridge/disabled"), &disabled)
		},
	}
	addPageFlags(cmd)
	return cmd
}
