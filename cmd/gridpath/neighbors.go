package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridastar/grid"
)

type neighborsOptions struct {
	*rootOptions
	node string
}

func newNeighborsCmd(root *rootOptions) *cobra.Command {
	opts := &neighborsOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "neighbors",
		Short: "List the cells reachable in one move from a cell",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runNeighbors(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.node, "node", "", "cell to expand (x,y)")
	_ = cmd.MarkFlagRequired("node")

	return cmd
}

func runNeighbors(cmd *cobra.Command, opts *neighborsOptions) error {
	n, err := grid.ParseNode(opts.node)
	if err != nil {
		return err
	}
	s, err := opts.load()
	if err != nil {
		return err
	}
	w, err := s.Build()
	if err != nil {
		return err
	}

	var buf []grid.Node
	if err := w.Expander.Neighbors(w.Graph, n, &buf); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	st := newStyles(out, opts.plain)
	fmt.Fprintln(out, st.title.Render(fmt.Sprintf("%v: %d reachable", n, len(buf))))
	for _, m := range buf {
		c, err := w.Graph.Transition(n, m)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  %v cost=%g\n", m, c)
	}

	return nil
}
