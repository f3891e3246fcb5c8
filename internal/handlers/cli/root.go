package cli

import (
	"fmt"

	"github.com/AntonioJCosta/sonarsweep/internal/core/ports"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the sonarsweep command. It takes no arguments and
// prints the number of increasing measurements read from source.
func NewRootCommand(
	version string,
	countService ports.IncreaseCountService,
	source ports.LineSource,
) *cobra.Command {
	return &cobra.Command{
		Use:   "sonarsweep",
		Short: "sonarsweep counts how often a measurement increases.",
		Long: `sonarsweep reads one integer per line from 001.input.txt in the
current directory and prints how many readings are strictly greater than the
reading before them.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if countService == nil {
				return fmt.Errorf("increase count service not initialized")
			}
			if source == nil {
				return fmt.Errorf("measurement source not initialized")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRootCmd(cmd, args, countService, source)
		},
	}
}

// runRootCmd writes nothing to stdout unless the whole input was counted.
func runRootCmd(
	cmd *cobra.Command,
	_ []string,
	countService ports.IncreaseCountService,
	source ports.LineSource,
) error {
	report, err := countService.CountIncreases(source)
	if err != nil {
		return fmt.Errorf("could not count increases: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), report.Increases)
	return nil
}
