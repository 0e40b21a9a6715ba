/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package main is the offer-converter command, which converts credential offers between
// the legacy CRED_OFFER schema and issue-credential offer-credential messages.
package main

import (
	"github.com/hyperledger/aries-framework-go/component/log"
	"github.com/spf13/cobra"

	"github.com/hyperledger/aries-credoffer/cmd/offer-converter/convertcmd"
)

func main() {
	rootCmd := &cobra.Command{
		Use: "offer-converter",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
	}

	logger := log.New("aries-framework/offer-converter")

	rootCmd.AddCommand(convertcmd.FromLegacyCmd(), convertcmd.ToLegacyCmd())

	if err := rootCmd.Execute(); err != nil {
		logger.Fatalf("Failed to run offer-converter: %s", err)
	}
}
