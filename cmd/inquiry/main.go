package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vorolab/site/internal/logging"
	"github.com/vorolab/site/internal/version"
)

var logger *logging.Logger

func initLogger() {
	logConfig := logging.DefaultConfig()
	logConfig.Level = logging.LevelWarn
	if verbose {
		logConfig.Level = logging.LevelDebug
	}

	l, err := logging.NewLogger(logConfig)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger = l
}

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "inquiry",
	Short: "Voro Lab inquiry CLI",
	Long: `Send and check Voro Lab website inquiries from the terminal.

The CLI applies the same rules as the website form before anything is sent
to the relay.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogger()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "inquiry version: %s\n", version.Info())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	bindInquiryFlags(submitCmd)
	submitCmd.Flags().String("server", defaultServer, "Base URL of the inquiry relay")
	bindInquiryFlags(validateCmd)

	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
