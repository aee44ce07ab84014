package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/w3sdev/circle-go/developer"
	"github.com/w3sdev/circle-go/validation"
)

const (
	walletSetIDFlagName        = "wallet-set-id"
	custodyTypeFlagName        = "custody-type"
	destinationAddressFlagName = "destination-address"
	sourceAddressFlagName      = "source-address"
	operationFlagName          = "operation"
	transactionTypeFlagName    = "transaction-type"
	includeAllFlagName         = "include-all"
	walletIDsFlagName          = "wallet-ids"
)

var developerCmd = &cobra.Command{
	Use:   "developer",
	Short: "Developer-controlled wallets, transactions and tokens",
}

var developerListWalletSetsCmd = &cobra.Command{
	Use:   "list-wallet-sets",
	Short: "List wallet sets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTracked(cmd, func(ctx context.Context) error {
			page, err := pageParams(cmd)
			if err != nil {
				return err
			}
			client, err := newDeveloperClient()
			if err != nil {
				return err
			}
			sets, err := client.ListWalletSets(ctx, developer.ListWalletSetsParams{Page: page})
			if err != nil {
				return err
			}
			return printResult(cmd, sets)
		})
	},
}

var developerGetWalletSetCmd = &cobra.Command{
	Use:   "get-wallet-set <wallet-set-id>",
	Short: "Get a wallet set by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTracked(cmd, func(ctx context.Context) error {
			if _, err := validation.ValidateUUID("wallet-set-id", args[0]); err != nil {
				return err
			}
			client, err := newDeveloperClient()
			if err != nil {
				return err
			}
			set, err := client.GetWalletSet(ctx, args[0])
			if err != nil {
				return err
			}
			return printResult(cmd, set)
		})
	},
}

var developerListWalletsCmd = &cobra.Command{
	Use:   "list-wallets",
	Short: "List developer-controlled wallets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTracked(cmd, func(ctx context.Context) error {
			params, err := developerWalletsParams(cmd)
			if err != nil {
				return err
			}
			client, err := newDeveloperClient()
			if err != nil {
				return err
			}
			wallets, err := client.ListWallets(ctx, params)
			if err != nil {
				return err
			}
			return printResult(cmd, wallets)
		})
	},
}

var developerGetWalletCmd = &cobra.Command{
	Use:   "get-wallet <wallet-id>",
	Short: "Get a wallet by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTracked(cmd, func(ctx context.Context) error {
			if _, err := validation.ValidateUUID("wallet-id", args[0]); err != nil {
				return err
			}
			client, err := newDeveloperClient()
			if err != nil {
				return err
			}
			wallet, err := client.GetWallet(ctx, args[0])
			if err != nil {
				return err
			}
			return printResult(cmd, wallet)
		})
	},
}

var developerListTransactionsCmd = &cobra.Command{
	Use:   "list-transactions",
	Short: "List transactions across wallets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTracked(cmd, func(ctx context.Context) error {
			params, err := developerTransactionsParams(cmd)
			if err != nil {
				return err
			}
			client, err := newDeveloperClient()
			if err != nil {
				return err
			}
			txs, err := client.ListTransactions(ctx, params)
			if err != nil {
				return err
			}
			return printResult(cmd, txs)
		})
	},
}

var developerGetTransactionCmd = &cobra.Command{
	Use:   "get-transaction <transaction-id>",
	Short: "Get a transaction by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTracked(cmd, func(ctx context.Context) error {
			if _, err := validation.ValidateUUID("transaction-id", args[0]); err != nil {
				return err
			}
			client, err := newDeveloperClient()
			if err != nil {
				return err
			}
			tx, err := client.GetTransaction(ctx, args[0])
			if err != nil {
				return err
			}
			return printResult(cmd, tx)
		})
	},
}

var developerGetTokenCmd = &cobra.Command{
	Use:   "get-token <token-id>",
	Short: "Get token metadata by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTracked(cmd, func(ctx context.Context) error {
			if _, err := validation.ValidateUUID("token-id", args[0]); err != nil {
				return err
			}
			client, err := newDeveloperClient()
			if err != nil {
				return err
			}
			token, err := client.GetToken(ctx, args[0])
			if err != nil {
				return err
			}
			return printResult(cmd, token)
		})
	},
}

var developerValidateAddressCmd = &cobra.Command{
	Use:   "validate-address",
	Short: "Check whether an address is valid on a blockchain",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTracked(cmd, func(ctx context.Context) error {
			address, _ := cmd.Flags().GetString(addressFlagName)
			chainRaw, _ := cmd.Flags().GetString(blockchainFlagName)

			v := validation.New().
				Required(addressFlagName, address).
				Required(blockchainFlagName, chainRaw)
			if err := v.Validate(); err != nil {
				return err
			}
			chain, err := developer.ParseBlockchain(chainRaw)
			if err != nil {
				return err
			}

			client, err := newDeveloperClient()
			if err != nil {
				return err
			}
			valid, err := client.ValidateAddress(ctx, developer.ValidateAddressRequest{
				Blockchain: chain,
				Address:    address,
			})
			if err != nil {
				return err
			}
			return printResult(cmd, struct {
				IsValid bool `json:"isValid"`
			}{IsValid: valid})
		})
	},
}

func init() {
	rootCmd.AddCommand(developerCmd)
	developerCmd.AddCommand(developerListWalletSetsCmd)
	developerCmd.AddCommand(developerGetWalletSetCmd)
	developerCmd.AddCommand(developerListWalletsCmd)
	developerCmd.AddCommand(developerGetWalletCmd)
	developerCmd.AddCommand(developerListTransactionsCmd)
	developerCmd.AddCommand(developerGetTransactionCmd)
	developerCmd.AddCommand(developerGetTokenCmd)
	developerCmd.AddCommand(developerValidateAddressCmd)

	addPageFlags(developerListWalletSetsCmd)

	f := developerListWalletsCmd.Flags()
	f.String(blockchainFlagName, "", "Filter by blockchain")
	f.String(addressFlagName, "", "Filter by wallet address")
	f.String(walletSetIDFlagName, "", "Filter by wallet set id")
	f.String(refIDFlagName, "", "Filter by reference id")
	f.String(stateFlagName, "", "Filter by wallet state: LIVE or ARCHIVED")
	f.String(custodyTypeFlagName, "", "Filter by custody type: DEVELOPER or ENDUSER")
	addPageFlags(developerListWalletsCmd)

	f = developerListTransactionsCmd.Flags()
	f.String(blockchainFlagName, "", "Filter by blockchain")
	f.String(custodyTypeFlagName, "", "Filter by custody type")
	f.String(destinationAddressFlagName, "", "Filter by destination address")
	f.Bool(includeAllFlagName, false, "Include transactions of archived wallets")
	f.String(operationFlagName, "", "Filter by operation")
	f.String(refIDFlagName, "", "Filter by reference id")
	f.String(sourceAddressFlagName, "", "Filter by source address")
	f.String(stateFlagName, "", "Filter by transaction state")
	f.String(tokenAddressFlagName, "", "Filter by token contract address")
	f.String(txHashFlagName, "", "Filter by transaction hash")
	f.String(transactionTypeFlagName, "", "Filter by direction: INBOUND or OUTBOUND")
	f.String(walletIDsFlagName, "", "Comma-separated wallet ids")
	addPageFlags(developerListTransactionsCmd)

	f = developerValidateAddressCmd.Flags()
	f.String(blockchainFlagName, "", "Blockchain to validate against")
	f.String(addressFlagName, "", "Address to validate")
}

func developerWalletsParams(cmd *cobra.Command) (developer.ListWalletsParams, error) {
	f := cmd.Flags()
	var p developer.ListWalletsParams
	p.Address, _ = f.GetString(addressFlagName)
	p.WalletSetID, _ = f.GetString(walletSetIDFlagName)
	p.RefID, _ = f.GetString(refIDFlagName)

	if raw, _ := f.GetString(blockchainFlagName); raw != "" {
		chain, err := developer.ParseBlockchain(raw)
		if err != nil {
			return developer.ListWalletsParams{}, err
		}
		p.Blockchain = chain
	}
	if raw, _ := f.GetString(stateFlagName); raw != "" {
		state, err := developer.ParseWalletState(raw)
		if err != nil {
			return developer.ListWalletsParams{}, err
		}
		p.State = state
	}
	if raw, _ := f.GetString(custodyTypeFlagName); raw != "" {
		ct, err := developer.ParseCustodyType(raw)
		if err != nil {
			return developer.ListWalletsParams{}, err
		}
		p.CustodyType = ct
	}

	page, err := pageParams(cmd)
	if err != nil {
		return developer.ListWalletsParams{}, err
	}
	p.Page = page
	return p, nil
}

func developerTransactionsParams(cmd *cobra.Command) (developer.ListTransactionsParams, error) {
	f := cmd.Flags()
	var p developer.ListTransactionsParams
	p.DestinationAddress, _ = f.GetString(destinationAddressFlagName)
	p.IncludeAll, _ = f.GetBool(includeAllFlagName)
	p.RefID, _ = f.GetString(refIDFlagName)
	p.SourceAddress, _ = f.GetString(sourceAddressFlagName)
	p.TokenAddress, _ = f.GetString(tokenAddressFlagName)
	p.TransactionHash, _ = f.GetString(txHashFlagName)
	p.WalletIDs, _ = f.GetString(walletIDsFlagName)

	if raw, _ := f.GetString(blockchainFlagName); raw != "" {
		chain, err := developer.ParseBlockchain(raw)
		if err != nil {
			return developer.ListTransactionsParams{}, err
		}
		p.Blockchain = chain
	}
	if raw, _ := f.GetString(custodyTypeFlagName); raw != "" {
		ct, err := developer.ParseCustodyType(raw)
		if err != nil {
			return developer.ListTransactionsParams{}, err
		}
		p.CustodyType = ct
	}
	if raw, _ := f.GetString(operationFlagName); raw != "" {
		op, err := developer.ParseOperation(raw)
		if err != nil {
			return developer.ListTransactionsParams{}, err
		}
		p.Operation = op
	}
	if raw, _ := f.GetString(stateFlagName); raw != "" {
		state, err := developer.ParseTransactionState(raw)
		if err != nil {
			return developer.ListTransactionsParams{}, err
		}
		p.State = state
	}
	if raw, _ := f.GetString(transactionTypeFlagName); raw != "" {
		t, err := developer.ParseTransactionType(raw)
		if err != nil {
			return developer.ListTransactionsParams{}, err
		}
		p.TransactionType = t
	}

	page, err := pageParams(cmd)
	if err != nil {
		return developer.ListTransactionsParams{}, err
	}
	p.Page = page
	return p, nil
}
