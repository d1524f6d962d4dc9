package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridastar/regions"
)

type regionsOptions struct {
	*rootOptions
	minSize int
}

func newRegionsCmd(root *rootOptions) *cobra.Command {
	opts := &regionsOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "regions",
		Short: "List islands of cells joined by two-way passable moves",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRegions(cmd, opts)
		},
	}
	cmd.Flags().IntVar(&opts.minSize, "min-size", 2, "hide islands with fewer cells")

	return cmd
}

func runRegions(cmd *cobra.Command, opts *regionsOptions) error {
	s, err := opts.load()
	if err != nil {
		return err
	}
	w, err := s.Build()
	if err != nil {
		return err
	}
	comps, err := regions.Components(w.Graph, w.Expander)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	st := newStyles(out, opts.plain)
	shown := 0
	for _, c := range comps {
		if len(c) < opts.minSize {
			continue
		}
		shown++
		fmt.Fprintf(out, "  island at %v: %d cells\n", c[0], len(c))
	}
	fmt.Fprintln(out, st.title.Render(fmt.Sprintf("%d islands (%d total)", shown, len(comps))))

	return nil
}
