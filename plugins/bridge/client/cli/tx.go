package cli

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/astermint/node/common/client"
	"github.com/astermint/node/plugins/bridge/types"
)

const (
	flagSourceChainID   = "source-chain-id"
	flagTicker          = "ticker"
	flagTokenName       = "token-name"
	flagImageURL        = "image-url"
	flagDecimals        = "decimals"
	flagSignatures      = "signatures"
	flagTransactionHash = "tx-hash"
	flagAmount          = "amount"
	flagToAddress       = "to"
	flagFailureID       = "failure-id"
	flagPubKey          = "pubkey"
	flagLabel           = "label"
	flagChannelID       = "channel-id"
	flagIBCTimeout      = "ibc-timeout"
	flagSignerThreshold = "signer-threshold"
)

func splitSignatures(raw string) []string {
	if len(raw) == 0 {
		return nil
	}
	parts := strings.Split(raw, ",")
	signatures := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if len(part) > 0 {
			signatures = append(signatures, part)
		}
	}
	return signatures
}

func LinkTokenCmd(cdc *codec.Codec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "link",
		Short: "register a source chain token under a local denom",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, txBldr := client.PrepareCtx(cdc)

			from, err := cliCtx.GetFromAddress()
			if err != nil {
				return err
			}

			token := types.TokenMetadata{
				Ticker:   viper.GetString(flagTicker),
				Name:     viper.GetString(flagTokenName),
				ImageURL: viper.GetString(flagImageURL),
				Decimals: uint8(viper.GetInt(flagDecimals)),
			}
			msg := types.NewLinkTokenMsg(from, viper.GetString(flagSourceChainID),
				token, splitSignatures(viper.GetString(flagSignatures)))

			sdkErr := msg.ValidateBasic()
			if sdkErr != nil {
				return fmt.Errorf("%v", sdkErr.Data())
			}
			return client.SendOrPrintTx(cliCtx, txBldr, msg)
		},
	}

	cmd.Flags().String(flagSourceChainID, "", "chain id of the source chain")
	cmd.Flags().String(flagTicker, "", "ticker of the source chain token")
	cmd.Flags().String(flagTokenName, "", "display name of the token")
	cmd.Flags().String(flagImageURL, "", "image url of the token")
	cmd.Flags().Int(flagDecimals, 0, "decimals of the source chain token")
	cmd.Flags().String(flagSignatures, "", "comma separated base64 signer signatures")

	return cmd
}

func EnableTokenCmd(cdc *codec.Codec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enable",
		Short: "re-enable transfers of a disabled token",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, txBldr := client.PrepareCtx(cdc)

			from, err := cliCtx.GetFromAddress()
			if err != nil {
				return err
			}

			msg := types.NewEnableTokenMsg(from, viper.GetString(flagTicker))
			sdkErr := msg.ValidateBasic()
			if sdkErr != nil {
				return fmt.Errorf("%v", sdkErr.Data())
			}
			return client.SendOrPrintTx(cliCtx, txBldr, msg)
		},
	}

	cmd.Flags().String(flagTicker, "", "ticker of the token")
	return cmd
}

func DisableTokenCmd(cdc *codec.Codec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "disable",
		Short: "disable transfers of a linked token",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, txBldr := client.PrepareCtx(cdc)

			from, err := cliCtx.GetFromAddress()
			if err != nil {
				return err
			}

			msg := types.NewDisableTokenMsg(from, viper.GetString(flagTicker))
			sdkErr := msg.ValidateBasic()
			if sdkErr != nil {
				return fmt.Errorf("%v", sdkErr.Data())
			}
			return client.SendOrPrintTx(cliCtx, txBldr, msg)
		},
	}

	cmd.Flags().String(flagTicker, "", "ticker of the token")
	return cmd
}

func ReceiveCmd(cdc *codec.Codec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "receive",
		Short: "relay an inbound transfer observed on the source chain",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, txBldr := client.PrepareCtx(cdc)

			from, err := cliCtx.GetFromAddress()
			if err != nil {
				return err
			}

			to, err := sdk.AccAddressFromBech32(viper.GetString(flagToAddress))
			if err != nil {
				return err
			}

			msg := types.NewReceiveMsg(from,
				viper.GetString(flagSourceChainID),
				viper.GetString(flagTransactionHash),
				viper.GetString(flagTicker),
				viper.GetInt64(flagAmount),
				to,
				splitSignatures(viper.GetString(flagSignatures)))

			sdkErr := msg.ValidateBasic()
			if sdkErr != nil {
				return fmt.Errorf("%v", sdkErr.Data())
			}
			return client.SendOrPrintTx(cliCtx, txBldr, msg)
		},
	}

	cmd.Flags().String(flagSourceChainID, "", "chain id of the source chain")
	cmd.Flags().String(flagTransactionHash, "", "source chain transaction hash")
	cmd.Flags().String(flagTicker, "", "ticker of the token")
	cmd.Flags().Int64(flagAmount, 0, "amount to mint")
	cmd.Flags().String(flagToAddress, "", "destination address")
	cmd.Flags().String(flagSignatures, "", "comma separated base64 signer signatures")

	return cmd
}

func SendCmd(cdc *codec.Codec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send",
		Short: "send a linked token back to the source chain",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, txBldr := client.PrepareCtx(cdc)

			from, err := cliCtx.GetFromAddress()
			if err != nil {
				return err
			}

			funds, err := sdk.ParseCoins(viper.GetString(flagAmount))
			if err != nil {
				return err
			}

			msg := types.NewSendMsg(from, viper.GetString(flagToAddress), funds)
			sdkErr := msg.ValidateBasic()
			if sdkErr != nil {
				return fmt.Errorf("%v", sdkErr.Data())
			}
			return client.SendOrPrintTx(cliCtx, txBldr, msg)
		},
	}

	cmd.Flags().String(flagAmount, "", "funds to send, the bridged coin plus the fee coin")
	cmd.Flags().String(flagToAddress, "", "destination address on the source chain")

	return cmd
}

func RetrySendCmd(cdc *codec.Codec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "retry-send",
		Short: "resubmit a failed outbound dispatch",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, txBldr := client.PrepareCtx(cdc)

			from, err := cliCtx.GetFromAddress()
			if err != nil {
				return err
			}

			msg := types.NewRetrySendMsg(from, viper.GetUint64(flagFailureID))
			sdkErr := msg.ValidateBasic()
			if sdkErr != nil {
				return fmt.Errorf("%v", sdkErr.Data())
			}
			return client.SendOrPrintTx(cliCtx, txBldr, msg)
		},
	}

	cmd.Flags().Uint64(flagFailureID, 0, "failure id of the dispatch to retry")
	return cmd
}

func AddSignerCmd(cdc *codec.Codec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-signer",
		Short: "add an attestation signer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, txBldr := client.PrepareCtx(cdc)

			from, err := cliCtx.GetFromAddress()
			if err != nil {
				return err
			}

			pubKey, err := base64.StdEncoding.DecodeString(viper.GetString(flagPubKey))
			if err != nil {
				return err
			}

			msg := types.NewAddSignerMsg(from, pubKey, viper.GetString(flagLabel))
			sdkErr := msg.ValidateBasic()
			if sdkErr != nil {
				return fmt.Errorf("%v", sdkErr.Data())
			}
			return client.SendOrPrintTx(cliCtx, txBldr, msg)
		},
	}

	cmd.Flags().String(flagPubKey, "", "base64 ed25519 public key of the signer")
	cmd.Flags().String(flagLabel, "", "label of the signer")

	return cmd
}

func RemoveSignerCmd(cdc *codec.Codec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-signer",
		Short: "remove an attestation signer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, txBldr := client.PrepareCtx(cdc)

			from, err := cliCtx.GetFromAddress()
			if err != nil {
				return err
			}

			pubKey, err := base64.StdEncoding.DecodeString(viper.GetString(flagPubKey))
			if err != nil {
				return err
			}

			msg := types.NewRemoveSignerMsg(from, pubKey)
			sdkErr := msg.ValidateBasic()
			if sdkErr != nil {
				return fmt.Errorf("%v", sdkErr.Data())
			}
			return client.SendOrPrintTx(cliCtx, txBldr, msg)
		},
	}

	cmd.Flags().String(flagPubKey, "", "base64 ed25519 public key of the signer")
	return cmd
}

func UpdateConfigCmd(cdc *codec.Codec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-config",
		Short: "update bridge configuration, zero valued flags stay unchanged",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, txBldr := client.PrepareCtx(cdc)

			from, err := cliCtx.GetFromAddress()
			if err != nil {
				return err
			}

			msg := types.NewUpdateConfigMsg(from,
				viper.GetString(flagSourceChainID),
				viper.GetString(flagChannelID),
				viper.GetUint64(flagIBCTimeout),
				uint32(viper.GetInt(flagSignerThreshold)))

			sdkErr := msg.ValidateBasic()
			if sdkErr != nil {
				return fmt.Errorf("%v", sdkErr.Data())
			}
			return client.SendOrPrintTx(cliCtx, txBldr, msg)
		},
	}

	cmd.Flags().String(flagSourceChainID, "", "chain id of the source chain")
	cmd.Flags().String(flagChannelID, "", "transport channel id")
	cmd.Flags().Uint64(flagIBCTimeout, 0, "transfer timeout in seconds")
	cmd.Flags().Int(flagSignerThreshold, 0, "explicit signature threshold, 0 for majority")

	return cmd
}

func ProposeOwnerCmd(cdc *codec.Codec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "propose-owner",
		Short: "propose a new bridge owner",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, txBldr := client.PrepareCtx(cdc)

			from, err := cliCtx.GetFromAddress()
			if err != nil {
				return err
			}

			newOwner, err := sdk.AccAddressFromBech32(viper.GetString(flagToAddress))
			if err != nil {
				return err
			}

			msg := types.NewProposeOwnerMsg(from, newOwner)
			sdkErr := msg.ValidateBasic()
			if sdkErr != nil {
				return fmt.Errorf("%v", sdkErr.Data())
			}
			return client.SendOrPrintTx(cliCtx, txBldr, msg)
		},
	}

	cmd.Flags().String(flagToAddress, "", "address of the proposed owner")
	return cmd
}

func DropOwnerProposalCmd(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "drop-owner-proposal",
		Short: "withdraw the pending owner proposal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, txBldr := client.PrepareCtx(cdc)

			from, err := cliCtx.GetFromAddress()
			if err != nil {
				return err
			}

			msg := types.NewDropOwnerProposalMsg(from)
			sdkErr := msg.ValidateBasic()
			if sdkErr != nil {
				return fmt.Errorf("%v", sdkErr.Data())
			}
			return client.SendOrPrintTx(cliCtx, txBldr, msg)
		},
	}
}

func ClaimOwnerCmd(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "claim-owner",
		Short: "claim bridge ownership as the proposed owner",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, txBldr := client.PrepareCtx(cdc)

			from, err := cliCtx.GetFromAddress()
			if err != nil {
				return err
			}

			msg := types.NewClaimOwnerMsg(from)
			sdkErr := msg.ValidateBasic()
			if sdkErr != nil {
				return fmt.Errorf("%v", sdkErr.Data())
			}
			return client.SendOrPrintTx(cliCtx, txBldr, msg)
		},
	}
}
