package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check an inquiry without sending it",
	Run: func(cmd *cobra.Command, args []string) {
		state, err := stateFromFlags(cmd)
		if err != nil {
			logger.Error("Failed to read flags: %v", err)
			os.Exit(1)
		}

		if !state.Validate() {
			printFieldErrors(cmd.OutOrStdout(), state.Errors)
			os.Exit(1)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Inquiry is valid")
	},
}
