package main

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/vorolab/site/internal/client"
)

const defaultServer = "http://localhost:8080"

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Validate and send an inquiry",
	Long: `Validate an inquiry and send it to the relay.

Nothing is sent while any field is invalid.

Example:
  inquiry submit --name "Jane Doe" --business "Doe Bakery" \
    --phone "+1 (555) 123-4567" -m "We need a new website"`,
	Run: func(cmd *cobra.Command, args []string) {
		state, err := stateFromFlags(cmd)
		if err != nil {
			logger.Error("Failed to read flags: %v", err)
			os.Exit(1)
		}

		if !state.Validate() {
			fmt.Fprintln(cmd.ErrOrStderr(), "Please fix the following fields:")
			printFieldErrors(cmd.ErrOrStderr(), state.Errors)
			os.Exit(1)
		}

		serverURL, _ := cmd.Flags().GetString("server")
		relay := client.New(serverURL, nil)
		logger.Debug("Submitting inquiry to %s", serverURL)

		s := spinner.New(spinner.CharSets[14], 120*time.Millisecond)
		s.Suffix = " Sending..."
		s.Start()
		err = state.Submit(cmd.Context(), relay)
		s.Stop()

		if err != nil {
			logger.Debug("Submission failed: %v", err)
			fmt.Fprintln(cmd.ErrOrStderr(), state.Feedback())
			os.Exit(1)
		}

		fmt.Fprintln(cmd.OutOrStdout(), state.Feedback())
	},
}
