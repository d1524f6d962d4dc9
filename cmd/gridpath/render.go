package main

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/katalvlaran/gridastar/astar"
	"github.com/katalvlaran/gridastar/config"
	"github.com/katalvlaran/gridastar/grid"
)

// Cell glyphs.
const (
	glyphFree  = '.'
	glyphWall  = '#'
	glyphPath  = '*'
	glyphStart = 'S'
	glyphEnd   = 'E'
)

var (
	colorPath  = lipgloss.Color("#2CD7C7")
	colorWall  = lipgloss.Color("#2C4A54")
	colorEnd   = lipgloss.Color("#F4D03F")
	colorError = lipgloss.Color("#E74C3C")
)

type styles struct {
	title lipgloss.Style
	muted lipgloss.Style
	fail  lipgloss.Style
	path  lipgloss.Style
	wall  lipgloss.Style
	end   lipgloss.Style
	box   lipgloss.Style
}

// newStyles binds styles to out so colors follow its terminal capabilities.
func newStyles(out io.Writer, plain bool) styles {
	r := lipgloss.NewRenderer(out)
	if plain {
		r.SetColorProfile(termenv.Ascii)
	}

	return styles{
		title: r.NewStyle().Bold(true).Foreground(colorPath),
		muted: r.NewStyle().Foreground(colorWall),
		fail:  r.NewStyle().Bold(true).Foreground(colorError),
		path:  r.NewStyle().Foreground(colorPath),
		wall:  r.NewStyle().Foreground(colorWall),
		end:   r.NewStyle().Bold(true).Foreground(colorEnd),
		box:   r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorWall).Padding(0, 1),
	}
}

// layout draws the scenario as text rows, highest y first.
func layout(s config.Scenario, opts *astar.Options, path *astar.GraphPath) [][]rune {
	rows := make([][]rune, s.Height)
	for i := range rows {
		rows[i] = []rune(strings.Repeat(string(glyphFree), s.Width))
	}
	put := func(n grid.Node, r rune) {
		if n.X >= 0 && n.Y >= 0 && n.X < s.Width && n.Y < s.Height {
			rows[s.Height-1-n.Y][n.X] = r
		}
	}

	for n := range s.WallSet() {
		put(n, glyphWall)
	}
	if path != nil {
		for _, n := range path.Nodes {
			put(n, glyphPath)
		}
	}
	put(opts.Start, glyphStart)
	put(opts.End, glyphEnd)

	return rows
}

// renderGrid styles the layout and frames it.
func (st styles) renderGrid(s config.Scenario, opts *astar.Options, path *astar.GraphPath) string {
	var sb strings.Builder
	for i, row := range layout(s, opts, path) {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, r := range row {
			switch r {
			case glyphWall:
				sb.WriteString(st.wall.Render(string(r)))
			case glyphPath:
				sb.WriteString(st.path.Render(string(r)))
			case glyphStart, glyphEnd:
				sb.WriteString(st.end.Render(string(r)))
			default:
				sb.WriteRune(r)
			}
		}
	}

	return st.box.Render(sb.String())
}
