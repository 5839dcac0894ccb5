package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/pageorder/pkg/order"
	"github.com/matzehuels/pageorder/pkg/pipeline"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// BrowseModel - Interactive result browser
// =============================================================================

// BrowseModel is the bubbletea model for paging through a run's results.
type BrowseModel struct {
	Summary *pipeline.Summary
	Cursor  int
	Height  int
	Offset  int

	// Filter limits the list to one status when set.
	Filter *order.Status

	// Detail shows the violated rules of the selected sequence.
	Detail bool

	rows []pipeline.SequenceResult
}

// NewBrowseModel creates a new browse model.
func NewBrowseModel(sum *pipeline.Summary) BrowseModel {
	m := BrowseModel{
		Summary: sum,
		Height:  15,
	}
	m.rows = m.filtered()
	return m
}

func (m BrowseModel) filtered() []pipeline.SequenceResult {
	if m.Filter == nil {
		return m.Summary.Results
	}
	var out []pipeline.SequenceResult
	for _, r := range m.Summary.Results {
		if r.Status == *m.Filter {
			out = append(out, r)
		}
	}
	return out
}

func (m BrowseModel) Init() tea.Cmd {
	return nil
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < len(m.rows)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter", " ":
			m.Detail = !m.Detail
		case "tab":
			m.Filter = nextFilter(m.Filter)
			m.rows = m.filtered()
			m.Cursor, m.Offset = 0, 0
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 10
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

// nextFilter cycles all → ordered → corrected → inconsistent → invalid → all.
func nextFilter(f *order.Status) *order.Status {
	var next order.Status
	switch {
	case f == nil:
		next = order.StatusOrdered
	case *f == order.StatusInvalid:
		return nil
	default:
		next = *f + 1
	}
	return &next
}

func (m BrowseModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Sequences"))
	if m.Filter != nil {
		b.WriteString(listDimStyle.Render("  (" + m.Filter.String() + ")"))
	}
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ details  tab filter  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.rows))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		r := m.rows[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		out, middle, moved := "-", "-", ""
		if !r.Failed() {
			out = r.Output.String()
			middle = strconv.Itoa(r.Middle)
		}
		if r.Displacement > 0 {
			moved = strconv.Itoa(r.Displacement)
		}
		rows = append(rows, []string{cursor, strconv.Itoa(r.Index), r.Input.String(), r.Status.String(), out, middle, moved})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "#", "Input", "Status", "Ordered", "Middle", "Swaps").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			idx := m.Offset + row
			if idx >= len(m.rows) {
				return lipgloss.NewStyle()
			}
			base := lipgloss.NewStyle().Foreground(statusColor(m.rows[idx].Status))
			if idx == m.Cursor {
				return base.Bold(true)
			}
			if col == 1 || col == 6 {
				return base.Foreground(colorDim)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n")

	if m.Detail && m.Cursor < len(m.rows) {
		b.WriteString(m.detailView(m.rows[m.Cursor]))
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s %s   %s %s\n",
		listDimStyle.Render("ordered sum"), StyleNumber.Render(strconv.Itoa(m.Summary.OrderedMiddleSum)),
		listDimStyle.Render("corrected sum"), StyleNumber.Render(strconv.Itoa(m.Summary.CorrectedMiddleSum))))
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", min(m.Cursor+1, len(m.rows)), len(m.rows))))

	return b.String()
}

func (m BrowseModel) detailView(r pipeline.SequenceResult) string {
	var b strings.Builder
	b.WriteString("\n")
	switch {
	case r.Failed():
		b.WriteString(StyleWarning.Render(fmt.Sprintf("  %s: %s", r.Code, r.Error)))
		b.WriteString("\n")
	case len(r.Violations) == 0:
		b.WriteString(StyleSuccess.Render("  respects every applicable rule"))
		b.WriteString("\n")
	}
	if len(r.Violations) > 0 {
		b.WriteString(listDimStyle.Render("  breaks "))
		b.WriteString(StyleValue.Render(joinRules(r.Violations)))
		b.WriteString("\n")
	}
	return b.String()
}

func statusColor(s order.Status) lipgloss.Color {
	switch s {
	case order.StatusOrdered:
		return colorGreen
	case order.StatusCorrected:
		return colorYellow
	default:
		return colorRed
	}
}
