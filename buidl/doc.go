// Package buidl provides the typed client for the Circle Buidl Wallets API.
//
// The surface is read-only: transfers, ERC-4337 user operations, and token
// balances and NFTs, keyed either by wallet UUID or by blockchain and
// address. All methods delegate to the shared w3s core client.
//
//	client, err := buidl.New(w3s.Config{APIKey: apiKey})
//	if err != nil {
//		return err
//	}
//	transfers, err := client.ListTransfers(ctx, buidl.ListTransfersParams{
//		WalletAddresses: "0x4b6c0b0078b63f881503e7fd3a9a1061065db242",
//	})
package buidl
