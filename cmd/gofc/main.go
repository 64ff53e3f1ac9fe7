// Command gofc is a Go port of the classic fc file-comparison utility,
// backed by the modules/fcdiff comparison engine.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/zbalkan/gofc/modules/fcdiff"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run dispatches between the cobra-owned surface (help, version, and
// the supplemented diffbatch subcommand, all of which use conventional
// --long-flag syntax pflag parses fine) and the legacy two-path
// invocation, whose `/B`-style single-token switches are pre-scanned
// from argv before anything resembling a flag parser sees them.
func run(argv []string) int {
	if len(argv) > 0 {
		switch argv[0] {
		case "diffbatch", "help", "-h", "--help", "version", "--version":
			if err := newRootCmd().Execute(); err != nil {
				return 2
			}
			return 0
		}
	}
	return runLegacy(argv)
}

func runLegacy(argv []string) int {
	configPath, explicitConfig, rest := extractConfigFlag(argv)
	cfg, err := loadConfig(configPath, explicitConfig)
	if err != nil {
		printUsageError(err)
		return -1
	}

	parsed, err := parseLegacyArgs(rest)
	if err != nil {
		printUsageError(err)
		return -1
	}
	if cfg.ResyncLines > 0 && parsed.ResyncLines == fcdiff.DefaultResyncLines {
		parsed.ResyncLines = cfg.ResyncLines
	}
	if cfg.BufferLines > 0 && parsed.BufferLines == fcdiff.DefaultBufferLines {
		parsed.BufferLines = cfg.BufferLines
	}

	log := newLogger(cfg.Verbose)
	color := newColorizer(!cfg.Color)
	showLineNumbers := parsed.Flags&fcdiff.ShowLineNumbers != 0

	fcCfg := fcdiff.NewConfig(func(ctx *fcdiff.UserContext, block fcdiff.DiffBlock) {
		fmt.Println(summarize(ctx, block, showLineNumbers, color))
	})
	fcCfg.Mode = parsed.Mode
	fcCfg.Flags = parsed.Flags
	fcCfg.ResyncLines = parsed.ResyncLines
	fcCfg.BufferLines = parsed.BufferLines
	fcCfg.Trace = func(format string, args ...any) { log.Debugf(format, args...) }
	progress := &binaryProgress{}
	fcCfg.Progress = progress.report

	result, err := fcdiff.Compare(context.Background(), parsed.PathA, parsed.PathB, fcCfg)
	if err != nil {
		log.Errorf("comparison failed: %v", err)
	}
	switch result {
	case fcdiff.Identical:
		return 0
	case fcdiff.Different:
		return 1
	case fcdiff.IOError, fcdiff.MemoryError:
		fmt.Fprintf(os.Stderr, "Error during comparison: %v\n", err)
		return 2
	default:
		return -1
	}
}

// extractConfigFlag pulls the first --config=PATH or --config PATH out
// of the legacy argument list, wherever it appears, since those tokens start with "--"
// and would otherwise collide with the `/`-or-`-` prefixed option
// grammar parseLegacyArgs expects everywhere else in the slice.
func extractConfigFlag(argv []string) (path string, explicit bool, rest []string) {
	path = defaultConfigPath()
	for i := 0; i < len(argv); i++ {
		tok := argv[i]
		switch {
		case tok == "--config" && i+1 < len(argv):
			path, explicit = argv[i+1], true
			rest = append(rest, argv[:i]...)
			rest = append(rest, argv[i+2:]...)
			return path, explicit, rest
		case strings.HasPrefix(tok, "--config="):
			path, explicit = strings.TrimPrefix(tok, "--config="), true
			rest = append(rest, argv[:i]...)
			rest = append(rest, argv[i+1:]...)
			return path, explicit, rest
		}
	}
	return path, false, argv
}

