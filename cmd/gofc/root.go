package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const usageText = `Usage: gofc [options] path_a path_b
Options:
  /B    Binary comparison
  /C    Case-insensitive comparison
  /W    Ignore whitespace differences
  /L    ASCII text comparison
  /N    Show line numbers in text mode
  /T    Do not expand tabs
  /U    Unicode text comparison
  /nnnn Set resync line threshold (default 2)
  /LBn  Set internal buffer size for text lines (default 100)
(If neither L, B or U is specified, auto-detect is used)

Both '/' and '-' prefixes are accepted, matching fc.exe.`

// newRootCmd builds the cobra tree used for everything gofc's own
// pflag-style parser can own cleanly: --help, --version, and the
// diffbatch subcommand. The default two-path invocation with its
// legacy `/B`-style switches never reaches cobra — see main.go.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "gofc",
		Short:   "Compare two files line-by-line or byte-by-byte",
		Long:    usageText,
		Version: "1.0.0",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.AddCommand(newDiffBatchCmd())
	return root
}

func newLogger(verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: !verbose})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
	return log
}

func printUsageError(err error) {
	fmt.Println(usageText)
	logrus.StandardLogger().Errorf("%v", err)
}
