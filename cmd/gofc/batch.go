package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/zbalkan/gofc/modules/fcdiff"
	"golang.org/x/sync/errgroup"
)

type batchPair struct {
	PathA, PathB string
}

type batchResult struct {
	batchPair
	Result fcdiff.Result
	Err    error
}

var errDifferencesFound = errors.New("one or more pairs differed")

// newDiffBatchCmd is the supplemented multi-pair mode: src/fc/fc.c's
// wmain only ever accepts exactly two operands, so this lives entirely
// in cmd/gofc rather than touching the engine's two-path contract.
func newDiffBatchCmd() *cobra.Command {
	var (
		listPath string
		workers  int
		verbose  bool
	)
	cmd := &cobra.Command{
		Use:   "diffbatch",
		Short: "Compare many file pairs concurrently",
		Long: `Reads "pathA<TAB>pathB" pairs, one per line, from --file or stdin and
runs an independent comparison per pair concurrently. Each goroutine
owns its own Config, which is exactly the reentrancy guarantee the
comparison engine documents.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(verbose)
			var r io.Reader = os.Stdin
			if listPath != "" {
				f, err := os.Open(listPath)
				if err != nil {
					return fmt.Errorf("open %s: %w", listPath, err)
				}
				defer f.Close()
				r = f
			}
			pairs, err := readPairs(r)
			if err != nil {
				return err
			}
			results := runBatch(cmd.Context(), pairs, workers, log)
			differed := 0
			for _, res := range results {
				switch {
				case res.Err != nil:
					fmt.Printf("%s\t%s\terror: %v\n", res.PathA, res.PathB, res.Err)
				case res.Result == fcdiff.Different:
					differed++
					fmt.Printf("%s\t%s\tdifferent\n", res.PathA, res.PathB)
				default:
					fmt.Printf("%s\t%s\tidentical\n", res.PathA, res.PathB)
				}
			}
			if differed > 0 {
				return errDifferencesFound
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&listPath, "file", "f", "", "file of tab-separated path pairs (default: stdin)")
	cmd.Flags().IntVarP(&workers, "workers", "j", 4, "maximum concurrent comparisons")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func readPairs(r io.Reader) ([]batchPair, error) {
	var pairs []batchPair
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.SplitN(line, "\t", 2)
		if len(fields) != 2 {
			return nil, fmt.Errorf("malformed pair line: %q", line)
		}
		pairs = append(pairs, batchPair{PathA: strings.TrimSpace(fields[0]), PathB: strings.TrimSpace(fields[1])})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return pairs, nil
}

// runBatch fans out one goroutine per pair, bounded by workers. A
// per-pair comparison error is recorded in that pair's result rather
// than aborting the rest of the batch.
func runBatch(ctx context.Context, pairs []batchPair, workers int, log *logrus.Logger) []batchResult {
	results := make([]batchResult, len(pairs))
	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, pair := range pairs {
		g.Go(func() error {
			log.Debugf("comparing %s vs %s", pair.PathA, pair.PathB)
			res, err := fcdiff.CompareUTF8(gctx, pair.PathA, pair.PathB, 0, func(*fcdiff.UserContext, fcdiff.DiffBlock) {})
			results[i] = batchResult{batchPair: pair, Result: res, Err: err}
			return nil
		})
	}
	_ = g.Wait()
	return results
}
