package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hwdbcheck",
	Short: "hwdb hardware database validator",
	Long: `hwdbcheck validates udev hwdb source files before they ship.

It parses each file's match groups, runs every property value through its
typed grammar, and checks the cross-cutting rules the grammar cannot see:
duplicated match patterns, duplicated properties, wheel-click pairings,
mount matrix sanity and keycode-name legitimacy.

All findings across all files are reported in one pass; the exit code is
the only pass/fail signal.

Exit Codes:
  0  - All files validated clean
  1  - Validation findings, or general error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or no input files`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
