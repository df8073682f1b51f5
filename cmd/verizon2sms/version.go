package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const licenseText = `Copyright Mesh Intelligence Inc., 2026.

verizon2sms is free software; you can redistribute it and/or modify
it under the terms of the MIT License.
`

func versionText() string {
	return fmt.Sprintf("verizon2sms %s\n\n%s", version, licenseText)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of verizon2sms",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), versionText())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
