package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/dominauta/padring/pkg/pad"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// PadListModel - Interactive pad prototype selection
// =============================================================================

// PadListModel is the bubbletea model for interactive pad selection.
type PadListModel struct {
	library  *pad.Library
	names    []string
	Cursor   int
	Selected *pad.Pad
	Height   int
	Offset   int
}

// NewPadListModel creates a new pad list model over the library.
func NewPadListModel(lib *pad.Library) PadListModel {
	return PadListModel{
		library: lib,
		names:   lib.Names(),
		Height:  15,
	}
}

func (m PadListModel) Init() tea.Cmd {
	return nil
}

func (m PadListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.names)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			p, err := m.library.Get(m.names[m.Cursor])
			if err != nil {
				return m, nil
			}
			m.Selected = p
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m PadListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Pad Prototype"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.names) {
		end = len(m.names)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		name := m.names[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		isDefault := ""
		if name == m.library.Default() {
			isDefault = "✓"
		}

		size := "—"
		ports := "—"
		if p, err := m.library.Get(name); err == nil {
			size = fmt.Sprintf("%.6g × %.6g", p.Size.Width, p.Size.Height)
			ports = strings.Join(padPortNames(p), ", ")
		}

		rows = append(rows, []string{cursor, name, size, isDefault, ports})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Pad", "Size", "Default", "Ports").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(m.names) {
				return lipgloss.NewStyle()
			}

			base := lipgloss.NewStyle()
			if actualIdx == m.Cursor {
				return base.Foreground(colorGreen).Bold(true)
			}
			if col == 3 {
				return base.Foreground(colorDim)
			}
			return base.Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.names))))

	return b.String()
}
