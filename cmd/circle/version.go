package main

import (
	"github.com/spf13/cobra"

	"github.com/w3sdev/circle-go/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResult(cmd, version.Get())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
