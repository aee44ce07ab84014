package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/w3sdev/circle-go/buidl"
	"github.com/w3sdev/circle-go/validation"
	"github.com/w3sdev/circle-go/w3s"
)

const (
	walletAddressesFlagName = "wallet-addresses"
	transferTypeFlagName    = "transfer-type"
	userOpHashFlagName      = "user-op-hash"
	sendersFlagName         = "senders"
	standardFlagName        = "standard"
	nameFlagName            = "name"
)

var buidlCmd = &cobra.Command{
	Use:   "buidl",
	Short: "Buidl wallet transfers, user operations and balances",
}

var buidlListTransfersCmd = &cobra.Command{
	Use:   "list-transfers",
	Short: "List transfers for a set of wallet addresses",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTracked(cmd, func(ctx context.Context) error {
			params, err := buidlTransfersParams(cmd)
			if err != nil {
				return err
			}
			client, err := newBuidlClient()
			if err != nil {
				return err
			}
			transfers, err := client.ListTransfers(ctx, params)
			if err != nil {
				return err
			}
			return printResult(cmd, transfers)
		})
	},
}

var buidlGetTransferCmd = &cobra.Command{
	Use:   "get-transfer <transfer-id>",
	Short: "Get a single transfer by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTracked(cmd, func(ctx context.Context) error {
			if _, err := validation.ValidateUUID("transfer-id", args[0]); err != nil {
				return err
			}
			client, err := newBuidlClient()
			if err != nil {
				return err
			}
			transfer, err := client.GetTransfer(ctx, args[0])
			if err != nil {
				return err
			}
			return printResult(cmd, transfer)
		})
	},
}

var buidlListUserOpsCmd = &cobra.Command{
	Use:   "list-user-ops",
	Short: "List user operations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTracked(cmd, func(ctx context.Context) error {
			params, err := buidlUserOpsParams(cmd)
			if err != nil {
				return err
			}
			client, err := newBuidlClient()
			if err != nil {
				return err
			}
			ops, err := client.ListUserOps(ctx, params)
			if err != nil {
				return err
			}
			return printResult(cmd, ops)
		})
	},
}

var buidlGetUserOpCmd = &cobra.Command{
	Use:   "get-user-op <user-op-id>",
	Short: "Get a single user operation by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTracked(cmd, func(ctx context.Context) error {
			if _, err := validation.ValidateUUID("user-op-id", args[0]); err != nil {
				return err
			}
			client, err := newBuidlClient()
			if err != nil {
				return err
			}
			op, err := client.GetUserOp(ctx, args[0])
			if err != nil {
				return err
			}
			return printResult(cmd, op)
		})
	},
}

var buidlWalletBalancesCmd = &cobra.Command{
	Use:   "wallet-balances",
	Short: "List token balances for a wallet, by id or by blockchain and address",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTracked(cmd, func(ctx context.Context) error {
			walletID, blockchain, address, err := buidlWalletSelector(cmd)
			if err != nil {
				return err
			}
			params, err := buidlBalancesParams(cmd)
			if err != nil {
				return err
			}
			client, err := newBuidlClient()
			if err != nil {
				return err
			}

			var balances []buidl.Balance
			if walletID != "" {
				balances, err = client.ListWalletBalances(ctx, walletID, params)
			} else {
				balances, err = client.ListWalletBalancesByAddress(ctx, blockchain, address, params)
			}
			if err != nil {
				return err
			}
			return printResult(cmd, balances)
		})
	},
}

var buidlWalletNftsCmd = &cobra.Command{
	Use:   "wallet-nfts",
	Short: "List NFTs held by a wallet, by id or by blockchain and address",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTracked(cmd, func(ctx context.Context) error {
			walletID, blockchain, address, err := buidlWalletSelector(cmd)
			if err != nil {
				return err
			}
			params, err := buidlNftsParams(cmd)
			if err != nil {
				return err
			}
			client, err := newBuidlClient()
			if err != nil {
				return err
			}

			var nfts []buidl.Nft
			if walletID != "" {
				nfts, err = client.ListWalletNfts(ctx, walletID, params)
			} else {
				nfts, err = client.ListWalletNftsByAddress(ctx, blockchain, address, params)
			}
			if err != nil {
				return err
			}
			return printResult(cmd, nfts)
		})
	},
}

func init() {
	rootCmd.AddCommand(buidlCmd)
	buidlCmd.AddCommand(buidlListTransfersCmd)
	buidlCmd.AddCommand(buidlGetTransferCmd)
	buidlCmd.AddCommand(buidlListUserOpsCmd)
	buidlCmd.AddCommand(buidlGetUserOpCmd)
	buidlCmd.AddCommand(buidlWalletBalancesCmd)
	buidlCmd.AddCommand(buidlWalletNftsCmd)

	f := buidlListTransfersCmd.Flags()
	f.String(walletAddressesFlagName, "", "Comma-separated wallet addresses (required)")
	f.String(blockchainFlagName, "", "Filter by blockchain, for example ETH-SEPOLIA")
	f.String(stateFlagName, "", "Filter by transfer state")
	f.String(transferTypeFlagName, "", "Filter by direction: INBOUND or OUTBOUND")
	f.String(txHashFlagName, "", "Filter by transaction hash")
	f.String(userOpHashFlagName, "", "Filter by user operation hash")
	addPageFlags(buidlListTransfersCmd)

	f = buidlListUserOpsCmd.Flags()
	f.String(blockchainFlagName, "", "Filter by blockchain")
	f.String(refIDFlagName, "", "Filter by reference id")
	f.String(sendersFlagName, "", "Comma-separated smart account addresses")
	f.String(stateFlagName, "", "Filter by user operation state")
	f.String(txHashFlagName, "", "Filter by transaction hash")
	f.String(userOpHashFlagName, "", "Filter by user operation hash")
	addPageFlags(buidlListUserOpsCmd)

	for _, cmd := range []*cobra.Command{buidlWalletBalancesCmd, buidlWalletNftsCmd} {
		f = cmd.Flags()
		f.String(walletIDFlagName, "", "Wallet id to query")
		f.String(blockchainFlagName, "", "Blockchain of the wallet address")
		f.String(addressFlagName, "", "Wallet address to query")
		f.String(standardFlagName, "", "Filter by token standard")
		f.String(nameFlagName, "", "Filter by token name")
		f.String(tokenAddressFlagName, "", "Filter by token contract address")
		addPageFlags(cmd)
	}
}

func buidlTransfersParams(cmd *cobra.Command) (buidl.ListTransfersParams, error) {
	f := cmd.Flags()
	var p buidl.ListTransfersParams
	p.WalletAddresses, _ = f.GetString(walletAddressesFlagName)
	p.TxHash, _ = f.GetString(txHashFlagName)
	p.UserOpHash, _ = f.GetString(userOpHashFlagName)

	v := validation.New().Required(walletAddressesFlagName, p.WalletAddresses)
	if err := v.Validate(); err != nil {
		return buidl.ListTransfersParams{}, err
	}

	if raw, _ := f.GetString(blockchainFlagName); raw != "" {
		chain, err := buidl.ParseBlockchain(raw)
		if err != nil {
			return buidl.ListTransfersParams{}, err
		}
		p.Blockchain = chain
	}
	if raw, _ := f.GetString(stateFlagName); raw != "" {
		state, err := buidl.ParseTransferState(raw)
		if err != nil {
			return buidl.ListTransfersParams{}, err
		}
		p.State = state
	}
	if raw, _ := f.GetString(transferTypeFlagName); raw != "" {
		t, err := buidl.ParseTransferType(raw)
		if err != nil {
			return buidl.ListTransfersParams{}, err
		}
		p.TransferType = t
	}

	page, err := pageParams(cmd)
	if err != nil {
		return buidl.ListTransfersParams{}, err
	}
	p.Page = page
	return p, nil
}

func buidlUserOpsParams(cmd *cobra.Command) (buidl.ListUserOpsParams, error) {
	f := cmd.Flags()
	var p buidl.ListUserOpsParams
	p.RefID, _ = f.GetString(refIDFlagName)
	p.Senders, _ = f.GetString(sendersFlagName)
	p.TxHash, _ = f.GetString(txHashFlagName)
	p.UserOpHash, _ = f.GetString(userOpHashFlagName)

	if raw, _ := f.GetString(blockchainFlagName); raw != "" {
		chain, err := buidl.ParseBlockchain(raw)
		if err != nil {
			return buidl.ListUserOpsParams{}, err
		}
		p.Blockchain = chain
	}
	if raw, _ := f.GetString(stateFlagName); raw != "" {
		state, err := buidl.ParseUserOpState(raw)
		if err != nil {
			return buidl.ListUserOpsParams{}, err
		}
		p.State = state
	}

	page, err := pageParams(cmd)
	if err != nil {
		return buidl.ListUserOpsParams{}, err
	}
	p.Page = page
	return p, nil
}

// buidlWalletSelector resolves the wallet targeted by a balances or nfts
// command: either --wallet-id, or --blockchain with --address.
func buidlWalletSelector(cmd *cobra.Command) (string, buidl.Blockchain, string, error) {
	f := cmd.Flags()
	walletID, _ := f.GetString(walletIDFlagName)
	chainRaw, _ := f.GetString(blockchainFlagName)
	address, _ := f.GetString(addressFlagName)

	v := validation.New()
	v.Custom(walletID != "" || (chainRaw != "" && address != ""),
		walletIDFlagName, "set --wallet-id, or --blockchain and --address together")
	v.Custom(walletID == "" || (chainRaw == "" && address == ""),
		walletIDFlagName, "--wallet-id and --blockchain/--address are mutually exclusive")
	if walletID != "" {
		v.RequiredUUID(walletIDFlagName, walletID)
	}
	if err := v.Validate(); err != nil {
		return "", "", "", err
	}

	if walletID != "" {
		return walletID, "", "", nil
	}
	chain, err := buidl.ParseBlockchain(chainRaw)
	if err != nil {
		return "", "", "", err
	}
	return "", chain, address, nil
}

func buidlBalancesParams(cmd *cobra.Command) (buidl.ListBalancesParams, error) {
	f := cmd.Flags()
	var p buidl.ListBalancesParams
	p.Name, _ = f.GetString(nameFlagName)
	p.TokenAddress, _ = f.GetString(tokenAddressFlagName)

	if raw, _ := f.GetString(standardFlagName); raw != "" {
		std, err := buidl.ParseFtStandard(raw)
		if err != nil {
			return buidl.ListBalancesParams{}, err
		}
		p.Standard = w3s.Ptr(std)
	}

	page, err := pageParams(cmd)
	if err != nil {
		return buidl.ListBalancesParams{}, err
	}
	p.Page = page
	return p, nil
}

func buidlNftsParams(cmd *cobra.Command) (buidl.ListNftsParams, error) {
	f := cmd.Flags()
	var p buidl.ListNftsParams
	p.Name, _ = f.GetString(nameFlagName)
	p.TokenAddress, _ = f.GetString(tokenAddressFlagName)

	if raw, _ := f.GetString(standardFlagName); raw != "" {
		std, err := buidl.ParseNftStandard(raw)
		if err != nil {
			return buidl.ListNftsParams{}, err
		}
		p.Standard = std
	}

	page, err := pageParams(cmd)
	if err != nil {
		return buidl.ListNftsParams{}, err
	}
	p.Page = page
	return p, nil
}
