package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/manifold/attach/pkg/attachment"
	"github.com/spf13/cobra"
)

type benchOptions struct {
	size   int
	loops  int
	shared bool
}

func newBenchCommand(root *rootOptions) *cobra.Command {
	opts := &benchOptions{}
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time insertion, lookup and type checks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.size <= 0 || opts.loops <= 0 {
				return fmt.Errorf("size and loops must be positive, got %d and %d", opts.size, opts.loops)
			}
			return runBench(cmd, root, opts)
		},
	}
	cmd.Flags().IntVarP(&opts.size, "size", "n", 10000, "number of attachments")
	cmd.Flags().IntVarP(&opts.loops, "loops", "l", 10, "lookup and type check passes")
	cmd.Flags().BoolVar(&opts.shared, "shared", false, "measure SharedSet instead of Set")
	return cmd
}

func runBench(cmd *cobra.Command, root *rootOptions, opts *benchOptions) error {
	var c attachment.Container = attachment.New(attachment.WithLogger(root.logger))
	kind := "Set"
	if opts.shared {
		c = attachment.NewShared(attachment.WithLogger(root.logger))
		kind = "SharedSet"
	}

	rnd := rand.New(rand.NewSource(42))
	names := make([]string, opts.size)
	values := make([]int, opts.size)
	for i := range names {
		names[i] = fmt.Sprintf("item_%d", i)
		values[i] = rnd.Intn(1000) + 1
	}

	start := time.Now()
	for i, name := range names {
		attachment.Put(c, name, values[i])
	}
	insert := time.Since(start)

	start = time.Now()
	for l := 0; l < opts.loops; l++ {
		for i, name := range names {
			h, ok := attachment.Get[int](c, name)
			if !ok || h.Value() != values[i] {
				return fmt.Errorf("data mismatch for %s", name)
			}
			h.Release()
		}
	}
	lookup := time.Since(start) / time.Duration(opts.loops)

	start = time.Now()
	for l := 0; l < opts.loops; l++ {
		for _, name := range names {
			if !attachment.Has[int](c, name) {
				return fmt.Errorf("type check failed for %s", name)
			}
		}
	}
	typeCheck := time.Since(start) / time.Duration(opts.loops)

	root.logger.Debugw("bench finished", "kind", kind, "size", opts.size, "loops", opts.loops)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s performance results:\n", kind)
	fmt.Fprintf(out, "  Insertion: %s\n", insert)
	fmt.Fprintf(out, "  Lookup: %s per iteration\n", lookup)
	fmt.Fprintf(out, "  Type check: %s per iteration\n", typeCheck)
	return nil
}
