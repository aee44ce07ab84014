package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/w3sdev/circle-go/user"
	"github.com/w3sdev/circle-go/validation"
)

const (
	userIDFlagName    = "user-id"
	pinStatusFlagName = "pin-status"
	scaCoreFlagName   = "sca-core"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "User-controlled wallets, sessions and transactions",
}

var userCreateUserCmd = &cobra.Command{
	Use:   "create-user",
	Short: "Register a new end user",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTracked(cmd, func(ctx context.Context) error {
			userID, _ := cmd.Flags().GetString(userIDFlagName)
			if err := validation.Required(userIDFlagName, userID); err != nil {
				return err
			}
			client, err := newUserClient()
			if err != nil {
				return err
			}
			endUser, err := client.CreateUser(ctx, user.CreateUserRequest{UserID: userID})
			if err != nil {
				return err
			}
			return printResult(cmd, endUser)
		})
	},
}

var userGetUserCmd = &cobra.Command{
	Use:   "get-user <user-id>",
	Short: "Get an end user by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTracked(cmd, func(ctx context.Context) error {
			if err := validation.Required("user-id", args[0]); err != nil {
				return err
			}
			client, err := newUserClient()
			if err != nil {
				return err
			}
			endUser, err := client.GetUser(ctx, args[0])
			if err != nil {
				return err
			}
			return printResult(cmd, endUser)
		})
	},
}

var userListUsersCmd = &cobra.Command{
	Use:   "list-users",
	Short: "List end users",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTracked(cmd, func(ctx context.Context) error {
			var params user.ListUsersParams
			if raw, _ := cmd.Flags().GetString(pinStatusFlagName); raw != "" {
				ps, err := user.ParsePinStatus(raw)
				if err != nil {
					return err
				}
				params.PinStatus = ps
			}
			page, err := pageParams(cmd)
			if err != nil {
				return err
			}
			params.Page = page

			client, err := newUserClient()
			if err != nil {
				return err
			}
			users, err := client.ListUsers(ctx, params)
			if err != nil {
				return err
			}
			return printResult(cmd, users)
		})
	},
}

var userTokenCmd = &cobra.Command{
	Use:   "user-token",
	Short: "Mint a session token for an end user",
	Long: `Mint a session token for an end user. The token authorizes
user-controlled commands for a limited time and is printed together with
the SDK encryption key.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTracked(cmd, func(ctx context.Context) error {
			userID, _ := cmd.Flags().GetString(userIDFlagName)
			if err := validation.Required(userIDFlagName, userID); err != nil {
				return err
			}
			client, err := newUserClient()
			if err != nil {
				return err
			}
			token, err := client.GetUserToken(ctx, user.GetUserTokenRequest{UserID: userID})
			if err != nil {
				return err
			}
			return printResult(cmd, token)
		})
	},
}

var userListWalletsCmd = &cobra.Command{
	Use:   "list-wallets",
	Short: "List the wallets of the session user",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTracked(cmd, func(ctx context.Context) error {
			userToken, err := requireUserToken()
			if err != nil {
				return err
			}
			params, err := userWalletsParams(cmd)
			if err != nil {
				return err
			}
			client, err := newUserClient()
			if err != nil {
				return err
			}
			wallets, err := client.ListWallets(ctx, userToken, params)
			if err != nil {
				return err
			}
			return printResult(cmd, wallets)
		})
	},
}

var userGetWalletCmd = &cobra.Command{
	Use:   "get-wallet <wallet-id>",
	Short: "Get one of the session user's wallets by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTracked(cmd, func(ctx context.Context) error {
			if _, err := validation.ValidateUUID("wallet-id", args[0]); err != nil {
				return err
			}
			userToken, err := requireUserToken()
			if err != nil {
				return err
			}
			client, err := newUserClient()
			if err != nil {
				return err
			}
			wallet, err := client.GetWallet(ctx, userToken, args[0])
			if err != nil {
				return err
			}
			return printResult(cmd, wallet)
		})
	},
}

var userListTransactionsCmd = &cobra.Command{
	Use:   "list-transactions",
	Short: "List the session user's transactions",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTracked(cmd, func(ctx context.Context) error {
			userToken, err := requireUserToken()
			if err != nil {
				return err
			}
			params, err := userTransactionsParams(cmd)
			if err != nil {
				return err
			}
			client, err := newUserClient()
			if err != nil {
				return err
			}
			txs, err := client.ListTransactions(ctx, userToken, params)
			if err != nil {
				return err
			}
			return printResult(cmd, txs)
		})
	},
}

var userGetTransactionCmd = &cobra.Command{
	Use:   "get-transaction <transaction-id>",
	Short: "Get one of the session user's transactions by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTracked(cmd, func(ctx context.Context) error {
			if _, err := validation.ValidateUUID("transaction-id", args[0]); err != nil {
				return err
			}
			userToken, err := requireUserToken()
			if err != nil {
				return err
			}
			client, err := newUserClient()
			if err != nil {
				return err
			}
			tx, err := client.GetTransaction(ctx, userToken, args[0])
			if err != nil {
				return err
			}
			return printResult(cmd, tx)
		})
	},
}

var userValidateAddressCmd = &cobra.Command{
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
			chain, err := user.ParseBlockchain(chainRaw)
			if err != nil {
				return err
			}

			client, err := newUserClient()
			if err != nil {
				return err
			}
			valid, err := client.ValidateAddress(ctx, user.ValidateAddressRequest{
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

var userInspectTokenCmd = &cobra.Command{
	Use:   "inspect-token [token]",
	Short: "Decode a user session token without calling the API",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTracked(cmd, func(ctx context.Context) error {
			raw := settings.UserToken
			if len(args) == 1 {
				raw = args[0]
			}
			if err := validation.Required("token", raw); err != nil {
				return err
			}
			info, err := user.InspectToken(raw)
			if err != nil {
				return err
			}
			return printResult(cmd, info)
		})
	},
}

func init() {
	rootCmd.AddCommand(userCmd)
	userCmd.AddCommand(userCreateUserCmd)
	userCmd.AddCommand(userGetUserCmd)
	userCmd.AddCommand(userListUsersCmd)
	userCmd.AddCommand(userTokenCmd)
	userCmd.AddCommand(userListWalletsCmd)
	userCmd.AddCommand(userGetWalletCmd)
	userCmd.AddCommand(userListTransactionsCmd)
	userCmd.AddCommand(userGetTransactionCmd)
	userCmd.AddCommand(userValidateAddressCmd)
	userCmd.AddCommand(userInspectTokenCmd)

	userCreateUserCmd.Flags().String(userIDFlagName, "", "Application-chosen id for the new user")
	userTokenCmd.Flags().String(userIDFlagName, "", "Id of the user to mint a token for")

	userListUsersCmd.Flags().String(pinStatusFlagName, "", "Filter by PIN status: ENABLED, UNSET or LOCKED")
	addPageFlags(userListUsersCmd)

	f := userListWalletsCmd.Flags()
	f.String(addressFlagName, "", "Filter by wallet address")
	f.String(blockchainFlagName, "", "Filter by blockchain")
	f.String(scaCoreFlagName, "", "Filter by SCA version")
	f.String(walletSetIDFlagName, "", "Filter by wallet set id")
	f.String(refIDFlagName, "", "Filter by reference id")
	addPageFlags(userListWalletsCmd)

	f = userListTransactionsCmd.Flags()
	f.String(blockchainFlagName, "", "Filter by blockchain")
	f.String(destinationAddressFlagName, "", "Filter by destination address")
	f.Bool(includeAllFlagName, false, "Include transactions across the whole wallet set")
	f.String(operationFlagName, "", "Filter by operation")
	f.String(stateFlagName, "", "Filter by transaction state")
	f.String(txHashFlagName, "", "Filter by transaction hash")
	f.String(transactionTypeFlagName, "", "Filter by direction: INBOUND or OUTBOUND")
	f.String(userIDFlagName, "", "Filter by end user id")
	f.String(walletIDsFlagName, "", "Comma-separated wallet ids")
	addPageFlags(userListTransactionsCmd)

	f = userValidateAddressCmd.Flags()
	f.String(blockchainFlagName, "", "Blockchain to validate against")
	f.String(addressFlagName, "", "Address to validate")
}

func userWalletsParams(cmd *cobra.Command) (user.ListWalletsParams, error) {
	f := cmd.Flags()
	var p user.ListWalletsParams
	p.Address, _ = f.GetString(addressFlagName)
	p.WalletSetID, _ = f.GetString(walletSetIDFlagName)
	p.RefID, _ = f.GetString(refIDFlagName)

	if raw, _ := f.GetString(blockchainFlagName); raw != "" {
		chain, err := user.ParseBlockchain(raw)
		if err != nil {
			return user.ListWalletsParams{}, err
		}
		p.Blockchain = chain
	}
	if raw, _ := f.GetString(scaCoreFlagName); raw != "" {
		core, err := user.ParseScaCore(raw)
		if err != nil {
			return user.ListWalletsParams{}, err
		}
		p.ScaCore = core
	}

	page, err := pageParams(cmd)
	if err != nil {
		return user.ListWalletsParams{}, err
	}
	p.Page = page
	return p, nil
}

func userTransactionsParams(cmd *cobra.Command) (user.ListTransactionsParams, error) {
	f := cmd.Flags()
	var p user.ListTransactionsParams
	p.DestinationAddress, _ = f.GetString(destinationAddressFlagName)
	p.IncludeAll, _ = f.GetBool(includeAllFlagName)
	p.TxHash, _ = f.GetString(txHashFlagName)
	p.UserID, _ = f.GetString(userIDFlagName)
	p.WalletIDs, _ = f.GetString(walletIDsFlagName)

	if raw, _ := f.GetString(blockchainFlagName); raw != "" {
		chain, err := user.ParseBlockchain(raw)
		if err != nil {
			return user.ListTransactionsParams{}, err
		}
		p.Blockchain = chain
	}
	if raw, _ := f.GetString(operationFlagName); raw != "" {
		op, err := user.ParseOperation(raw)
		if err != nil {
			return user.ListTransactionsParams{}, err
		}
		p.Operation = op
	}
	if raw, _ := f.GetString(stateFlagName); raw != "" {
		state, err := user.ParseTransactionState(raw)
		if err != nil {
			return user.ListTransactionsParams{}, err
		}
		p.State = state
	}
	if raw, _ := f.GetString(transactionTypeFlagName); raw != "" {
		t, err := user.ParseTransactionType(raw)
		if err != nil {
			return user.ListTransactionsParams{}, err
		}
		p.TxType = t
	}

	page, err := pageParams(cmd)
	if err != nil {
		return user.ListTransactionsParams{}, err
	}
	p.Page = page
	return p, nil
}
