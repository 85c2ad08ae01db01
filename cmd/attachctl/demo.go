package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/manifold/attach/pkg/attachment"
	"github.com/manifold/attach/pkg/manifold"
	"github.com/spf13/cobra"
)

func newDemoCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through attaching, sharing and mutating values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, opts)
		},
	}
}

func runDemo(cmd *cobra.Command, opts *rootOptions) error {
	out := cmd.OutOrStdout()
	log := opts.logger

	root := manifold.New("root", attachment.WithLogger(log))
	svc := manifold.New("service", attachment.WithLogger(log))
	root.AppendChild(svc)

	manifold.Attach(root, "region", "eu-west")
	manifold.Attach(svc, "count", int32(42))
	svc.SetAttribute("owner", "ops")

	for item := range svc.Attachments().AllMut() {
		if p, ok := attachment.Mutable[int32](item); ok {
			*p++
		}
	}
	count, ok := attachment.Lookup[int32](svc.Attachments(), "count")
	if !ok {
		return fmt.Errorf("count attachment missing after mutation")
	}
	log.Debugw("mutated in place", "name", "count", "value", count)
	fmt.Fprintf(out, "count: %d\n", count)

	svc.Inherit()
	region, _ := manifold.Find[string](svc, "region")
	fmt.Fprintf(out, "region: %s\n", region)

	h, ok := manifold.Attachment[string](svc, "region")
	if !ok {
		return fmt.Errorf("region attachment not inherited")
	}
	fmt.Fprintf(out, "region holders: %d\n", h.Refs())
	h.Release()

	cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
	manifold.Walk(root, func(o manifold.Object) {
		cfg.Fdump(out, o.Snapshot())
	})
	return nil
}
