package cli

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/clowdgraph/clowd/pkg/graph"
	"github.com/clowdgraph/clowd/pkg/graphio"
)

// List styles.
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	listSourceStyle   = lipgloss.NewStyle().Foreground(colorGreen)
	listSinkStyle     = lipgloss.NewStyle().Foreground(colorBlue)
)

// exploreCommand creates the interactive explore command.
func (c *CLI) exploreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "explore <graph.json>",
		Short: "Browse a graph's items and neighbors interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graphio.ReadFile(args[0])
			if err != nil {
				return err
			}
			if g.IsEmpty() {
				printInfo("Graph is empty, nothing to explore")
				return nil
			}

			model := newExploreModel(g)
			_, err = tea.NewProgram(model).Run()
			return err
		},
	}
}

// exploreModel is the bubbletea model for graph browsing. The left column
// lists all items; the detail pane shows the selected item's neighbors.
type exploreModel struct {
	graph   *graph.Graph[string, string]
	items   []string
	sources map[string]bool
	sinks   map[string]bool
	cursor  int
	offset  int
	height  int
}

func newExploreModel(g *graph.Graph[string, string]) exploreModel {
	items := g.Items()
	slices.Sort(items)

	toSet := func(list []string) map[string]bool {
		set := make(map[string]bool, len(list))
		for _, it := range list {
			set[it] = true
		}
		return set
	}

	return exploreModel{
		graph:   g,
		items:   items,
		sources: toSet(g.Sources()),
		sinks:   toSet(g.Sinks()),
		height:  15,
	}
}

func (m exploreModel) Init() tea.Cmd {
	return nil
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "g":
			m.cursor, m.offset = 0, 0
		case "G":
			m.cursor = len(m.items) - 1
			if m.cursor >= m.height {
				m.offset = m.cursor - m.height + 1
			}
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 8
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m exploreModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Explore Graph"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  g/G first/last  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.items) {
		end = len(m.items)
	}

	for i := m.offset; i < end; i++ {
		item := m.items[i]

		cursor := "  "
		style := listNormalStyle
		if i == m.cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}

		tag := ""
		switch {
		case m.sources[item] && m.sinks[item]:
			tag = listDimStyle.Render(" (isolated)")
		case m.sources[item]:
			tag = listSourceStyle.Render(" (source)")
		case m.sinks[item]:
			tag = listSinkStyle.Render(" (sink)")
		}

		b.WriteString(cursor + style.Render(item) + tag + "\n")
	}

	b.WriteString("\n")
	b.WriteString(m.detailView())
	return b.String()
}

// detailView renders the selected item's neighborhood.
func (m exploreModel) detailView() string {
	item := m.items[m.cursor]
	var b strings.Builder

	succ := m.graph.SuccessorsOf(item)
	pred := m.graph.PredecessorsOf(item)

	b.WriteString(listDimStyle.Render(fmt.Sprintf("%s: %d out, %d in", item, len(succ), len(pred))))
	b.WriteString("\n")

	slices.SortFunc(succ, neighborOrder)
	for _, nb := range succ {
		b.WriteString("  " + listDimStyle.Render(iconArrow) + " " + listNormalStyle.Render(nb.Item) + listDimStyle.Render(edgeTag(nb)) + "\n")
	}
	slices.SortFunc(pred, neighborOrder)
	for _, nb := range pred {
		b.WriteString("  " + listDimStyle.Render("←") + " " + listNormalStyle.Render(nb.Item) + listDimStyle.Render(edgeTag(nb)) + "\n")
	}

	return b.String()
}

func neighborOrder(a, b graph.Neighbor[string, string]) int {
	if c := strings.Compare(a.Item, b.Item); c != 0 {
		return c
	}
	return strings.Compare(a.Label, b.Label)
}

func edgeTag(nb graph.Neighbor[string, string]) string {
	if nb.Label == "" {
		return ""
	}
	return fmt.Sprintf(" [%s]", nb.Label)
}
