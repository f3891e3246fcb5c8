package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AntonioJCosta/sonarsweep/internal/config"
	"github.com/AntonioJCosta/sonarsweep/internal/core/domain/measurement"
	"github.com/AntonioJCosta/sonarsweep/internal/core/services/increasecount"
	"github.com/AntonioJCosta/sonarsweep/internal/handlers/cli"
	"github.com/AntonioJCosta/sonarsweep/internal/handlers/ui"
	"github.com/AntonioJCosta/sonarsweep/internal/log"
	"github.com/AntonioJCosta/sonarsweep/internal/repositories/measurements"
	"go.uber.org/zap"
)

// Version is set at build time
var Version = "dev"

func main() {
	os.Exit(run(config.Default(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes sonarsweep and returns the process exit status.
func run(cfg config.Config, args []string, stdout, stderr io.Writer) int {
	logger, err := log.NewLogger(log.WithLogLevel(cfg.LogLevel), log.WithOutput(stderr))
	if err != nil {
		fmt.Fprintf(stderr, "Error initializing logger: %v\n", err)
		return 1
	}
	logger = logger.With(zap.String("app", "sonarsweep"))
	defer logger.Sync()

	source, err := measurements.NewFileSource(cfg.InputPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error initializing measurement source: %v\n", err)
		return 1
	}

	countSvc := increasecount.NewService(logger)
	rootCmd := cli.NewRootCommand(Version, countSvc, source)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		logger.Debug("run failed", zap.String("kind", errorKind(err)), zap.Error(err))
		fmt.Fprintln(stderr, ui.ErrorColor("Error: "+err.Error()))
		if hint := errorHint(err); hint != "" {
			fmt.Fprintln(stderr, ui.DetailColor(hint))
		}
		return 1
	}
	return 0
}

func errorKind(err error) string {
	var fae *measurement.FileAccessError
	var pe *measurement.ParseError
	switch {
	case errors.As(err, &fae):
		return "file_access"
	case errors.As(err, &pe):
		return "parse"
	default:
		return "usage"
	}
}

func errorHint(err error) string {
	var fae *measurement.FileAccessError
	if errors.As(err, &fae) && errors.Is(err, os.ErrNotExist) {
		return fmt.Sprintf("Place the measurements in %s, one integer per line.", fae.Path)
	}
	return ""
}
