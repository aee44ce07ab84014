package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/w3sdev/circle-go/compliance"
	"github.com/w3sdev/circle-go/validation"
)

const (
	chainFlagName          = "chain"
	idempotencyKeyFlagName = "idempotency-key"
)

var complianceCmd = &cobra.Command{
	Use:   "compliance",
	Short: "Compliance Engine screening",
}

var screenAddressCmd = &cobra.Command{
	Use:   "screen-address",
	Short: "Screen a blockchain address against the compliance rule set",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTracked(cmd, func(ctx context.Context) error {
			address, _ := cmd.Flags().GetString(addressFlagName)
			chainRaw, _ := cmd.Flags().GetString(chainFlagName)
			idempotencyKey, _ := cmd.Flags().GetString(idempotencyKeyFlagName)

			v := validation.New().
				Required(addressFlagName, address).
				Required(chainFlagName, chainRaw).
				OptionalUUID(idempotencyKeyFlagName, idempotencyKey)
			if err := v.Validate(); err != nil {
				return err
			}
			chain, err := compliance.ParseChain(chainRaw)
			if err != nil {
				return err
			}

			client, err := newComplianceClient()
			if err != nil {
				return err
			}
			result, err := client.ScreenAddress(ctx, compliance.ScreenAddressRequest{
				IdempotencyKey: idempotencyKey,
				Address:        address,
				Chain:          chain,
			})
			if err != nil {
				return err
			}
			return printResult(cmd, result)
		})
	},
}

func init() {
	rootCmd.AddCommand(complianceCmd)
	complianceCmd.AddCommand(screenAddressCmd)

	screenAddressCmd.Flags().String(addressFlagName, "", "Blockchain address to screen")
	screenAddressCmd.Flags().String(chainFlagName, "", "Chain the address lives on, for example ETH or MATIC")
	screenAddressCmd.Flags().String(idempotencyKeyFlagName, "", "UUIDv4 idempotency key (generated when omitted)")
}
