package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/askit/cmd/askit/commands"
	"github.com/teranos/askit/logger"
)

var rootCmd = &cobra.Command{
	Use:   "askit",
	Short: "askit - compile-time rewriting of LLM marker calls",
	Long: `askit rewrites Go source that calls the Ask/LLM/Define marker forms.

Each marker call is detected in the AST, its template variables are resolved
against the surrounding scope, and the call is rewritten in place: redirected
to a previously generated implementation module when one exists on disk, or
inlined with a run-time type descriptor otherwise. Metadata describing every
rewritten call is emitted as a JSONL sidecar for downstream generators.

Examples:
  askit rewrite ./...              # Dry run, print transformed units to stdout
  askit rewrite -w ./...           # Rewrite units in place
  askit rewrite --watch ./...      # Re-run the pass on source changes
  askit version                    # Show version information`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonOutput, _ := cmd.Flags().GetBool("json")
		if err := logger.Initialize(jsonOutput, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().Bool("json", false, "Emit logs as JSON")

	rootCmd.AddCommand(commands.RewriteCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
