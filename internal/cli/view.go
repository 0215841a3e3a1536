package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cladegram/pkg/newick"
	"github.com/matzehuels/cladegram/pkg/render/ascii"
	"github.com/matzehuels/cladegram/pkg/timetree"
)

// newViewCmd creates the view command for interactive tree browsing.
func newViewCmd() *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Browse a tree interactively in the terminal",
		Long: `View opens a tree in an interactive terminal viewer. The drawing can be
resized, relabeled and ladderized on the fly, and scrolled when it is
taller than the window.

Keys:
  up/down, j/k   scroll
  +/-            grow or shrink the drawing
  l              toggle leaf labels
  d              toggle dot leaders
  s              cycle clade sorting (off, ascending, descending)
  q              quit`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}

			text, err := readInput(input)
			if err != nil {
				return err
			}
			t, err := newick.Parse(text)
			if err != nil {
				return err
			}

			model := newViewModel(t, width)
			_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", ascii.DefaultWidth, "initial render width in columns")

	return cmd
}

// sort modes cycled by the "s" key.
const (
	sortOff = iota
	sortAscending
	sortDescending
)

// viewModel is the bubbletea model for the interactive tree viewer.
type viewModel struct {
	tree     *timetree.Tree
	width    int
	labels   bool
	dots     bool
	sortMode int

	lines  []string
	errMsg string

	height int // visible rows for the drawing
	offset int // scroll offset
}

func newViewModel(t *timetree.Tree, width int) viewModel {
	m := viewModel{
		tree:   t,
		width:  width,
		labels: true,
		dots:   true,
		height: 20,
	}
	m.redraw()
	return m
}

// redraw re-renders the drawing with the current settings.
func (m *viewModel) redraw() {
	t := m.tree
	switch m.sortMode {
	case sortAscending:
		t = t.Sorted(false)
	case sortDescending:
		t = t.Sorted(true)
	}

	var opts []ascii.Option
	opts = append(opts, ascii.WithWidth(m.width))
	if !m.labels {
		opts = append(opts, ascii.WithoutLabels())
	}
	if !m.dots {
		opts = append(opts, ascii.WithoutDots())
	}

	lines, err := ascii.Render(t, opts...)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.errMsg = ""
	m.lines = lines
	if m.offset > m.maxOffset() {
		m.offset = m.maxOffset()
	}
}

func (m *viewModel) maxOffset() int {
	if len(m.lines) <= m.height {
		return 0
	}
	return len(m.lines) - m.height
}

func (m viewModel) Init() tea.Cmd {
	return nil
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.offset > 0 {
				m.offset--
			}
		case "down", "j":
			if m.offset < m.maxOffset() {
				m.offset++
			}
		case "+", "=":
			m.width += 10
			m.redraw()
		case "-":
			if m.width > 12 {
				m.width -= 10
				m.redraw()
			}
		case "l":
			m.labels = !m.labels
			m.redraw()
		case "d":
			m.dots = !m.dots
			m.redraw()
		case "s":
			m.sortMode = (m.sortMode + 1) % 3
			m.redraw()
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 5
		if m.height < 5 {
			m.height = 5
		}
		if msg.Width > 20 && m.width > msg.Width-2 {
			m.width = msg.Width - 2
			m.redraw()
		}
	}
	return m, nil
}

func (m viewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("%d leaves · height %g", m.tree.LeafCount(), m.tree.Height())))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ scroll  +/- width  l labels  d dots  s sort  q quit"))
	b.WriteString("\n\n")

	if m.errMsg != "" {
		b.WriteString(StyleWarning.Render(m.errMsg))
		b.WriteString("\n")
		return b.String()
	}

	end := m.offset + m.height
	if end > len(m.lines) {
		end = len(m.lines)
	}
	for _, line := range m.lines[m.offset:end] {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("width %d · sort %s", m.width, sortName(m.sortMode))))
	return b.String()
}

func sortName(mode int) string {
	switch mode {
	case sortAscending:
		return "ascending"
	case sortDescending:
		return "descending"
	default:
		return "off"
	}
}
