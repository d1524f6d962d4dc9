package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridastar/config"
	"github.com/katalvlaran/gridastar/regions"
)

type findOptions struct {
	*rootOptions
	from      string
	to        string
	priority  string
	heuristic string
}

func newFindCmd(root *rootOptions) *cobra.Command {
	opts := &findOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Search a path from start to end and draw it on the grid",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFind(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.from, "from", "", "override start cell (x,y)")
	cmd.Flags().StringVar(&opts.to, "to", "", "override end cell (x,y)")
	cmd.Flags().StringVar(&opts.priority, "priority", "", "override priority policy (exact|truncate)")
	cmd.Flags().StringVar(&opts.heuristic, "heuristic", "", "override heuristic")

	return cmd
}

// apply copies non-empty flag overrides onto s.
func (o *findOptions) apply(s *config.Scenario) {
	if o.from != "" {
		s.Start = o.from
	}
	if o.to != "" {
		s.End = o.to
	}
	if o.priority != "" {
		s.Priority = o.priority
	}
	if o.heuristic != "" {
		s.Heuristic = o.heuristic
	}
}

func runFind(cmd *cobra.Command, opts *findOptions) error {
	s, err := opts.load()
	if err != nil {
		return err
	}
	opts.apply(&s)

	w, err := s.Build()
	if err != nil {
		return err
	}
	path, stats, err := w.Finder.FindWithStats(w.Graph, w.Options)
	if err != nil {
		return fmt.Errorf("find %v -> %v: %w", w.Options.Start, w.Options.End, err)
	}

	out := cmd.OutOrStdout()
	st := newStyles(out, opts.plain)
	if path == nil {
		fmt.Fprintln(out, st.fail.Render(fmt.Sprintf("no path %v -> %v", w.Options.Start, w.Options.End)))
		route, blocked, err := regions.Breach(w.Graph, w.Expander, w.Options.Start, w.Options.End)
		if err == nil {
			fmt.Fprintf(out, "fewest blocked moves to cross: %d via %v\n", blocked, route)
		}
	} else {
		fmt.Fprintln(out, st.title.Render("path"), path.String())
		fmt.Fprintln(out, st.title.Render("cost"), fmt.Sprintf("%g", path.Cost))
	}
	fmt.Fprintln(out, st.muted.Render(fmt.Sprintf("expanded=%d pushed=%d stale=%d", stats.Expanded, stats.Pushed, stats.Stale)))
	fmt.Fprintln(out, st.renderGrid(s, w.Options, path))

	return nil
}
