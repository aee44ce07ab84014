package main

import (
	"github.com/spf13/cobra"

	"github.com/w3sdev/circle-go/validation"
	"github.com/w3sdev/circle-go/w3s"
)

const (
	fromFlagName       = "from"
	toFlagName         = "to"
	pageBeforeFlagName = "page-before"
	pageAfterFlagName  = "page-after"
	pageSizeFlagName   = "page-size"
)

// Filter flags shared across surfaces.
const (
	addressFlagName      = "address"
	blockchainFlagName   = "blockchain"
	stateFlagName        = "state"
	walletIDFlagName     = "wallet-id"
	tokenAddressFlagName = "token-address"
	refIDFlagName        = "ref-id"
	txHashFlagName       = "tx-hash"
)

// addPageFlags registers the shared pagination flags on a list command.
func addPageFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String(fromFlagName, "", "Return items created at or after this time (ISO 8601)")
	f.String(toFlagName, "", "Return items created at or before this time (ISO 8601)")
	f.String(pageBeforeFlagName, "", "Cursor for the page before this item id")
	f.String(pageAfterFlagName, "", "Cursor for the page after this item id")
	f.Int(pageSizeFlagName, 0, "Items per page, between 1 and 50")
}

// pageParams reads the pagination flags back off a list command.
func pageParams(cmd *cobra.Command) (w3s.PageParams, error) {
	f := cmd.Flags()
	var p w3s.PageParams
	p.From, _ = f.GetString(fromFlagName)
	p.To, _ = f.GetString(toFlagName)
	p.PageBefore, _ = f.GetString(pageBeforeFlagName)
	p.PageAfter, _ = f.GetString(pageAfterFlagName)
	p.PageSize, _ = f.GetInt(pageSizeFlagName)

	v := validation.New()
	if p.PageSize != 0 {
		v.Range(pageSizeFlagName, p.PageSize, 1, 50)
	}
	v.Custom(p.PageBefore == "" || p.PageAfter == "",
		pageBeforeFlagName, "page-before and page-after are mutually exclusive")
	if err := v.Validate(); err != nil {
		return w3s.PageParams{}, err
	}
	return p, nil
}
