package ui

import (
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"saveworks/ds"
)

const (
	BrowseStateList   = "list"
	BrowseStateDetail = "detail"
)

const (
	// lines used by the title, the status line and the help line
	chromeHeight  = 4
	defaultHeight = 24
	labelWidthMax = 60
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("237"))
	helpStyle     = lipgloss.NewStyle().Faint(true)
	detailStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
)

type SaveBrowser struct {
	title  string
	rows   []Row
	cursor int
	offset int
	height int
	state  string
}

func CreateSaveBrowser(title string, rows []Row) SaveBrowser {
	return SaveBrowser{
		title:  title,
		rows:   rows,
		height: defaultHeight,
		state:  BrowseStateList,
	}
}

func (s SaveBrowser) pageSize() int {
	size := s.height - chromeHeight
	if size < 1 {
		return 1
	}
	return size
}

func (s *SaveBrowser) moveTo(cursor int) {
	if cursor >= len(s.rows) {
		cursor = len(s.rows) - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	s.cursor = cursor
	if s.cursor < s.offset {
		s.offset = s.cursor
	}
	if s.cursor >= s.offset+s.pageSize() {
		s.offset = s.cursor - s.pageSize() + 1
	}
}

func (s SaveBrowser) Init() tea.Cmd {
	return nil
}

func (s SaveBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.height = msg.Height
		s.moveTo(s.cursor)
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return s, tea.Quit
		case "up", "k":
			s.moveTo(s.cursor - 1)
		case "down", "j":
			s.moveTo(s.cursor + 1)
		case "pgup":
			s.moveTo(s.cursor - s.pageSize())
		case "pgdown":
			s.moveTo(s.cursor + s.pageSize())
		case "home", "g":
			s.moveTo(0)
		case "end", "G":
			s.moveTo(len(s.rows) - 1)
		case "enter":
			if len(s.rows) > 0 {
				s.state = BrowseStateDetail
			}
		case "esc":
			s.state = BrowseStateList
		}
	}
	return s, nil
}

func (s SaveBrowser) View() string {
	output := titleStyle.Render(s.title) + "\n"

	switch s.state {
	case BrowseStateList:
		output += s.viewList()
		output += helpStyle.Render("↑/↓ move • pgup/pgdown page • enter details • q quit")
	case BrowseStateDetail:
		row := s.rows[s.cursor]
		output += detailStyle.Render(labelStyle.Render(row.Label)+"\n"+valueStyle.Render(row.Value)) + "\n"
		output += helpStyle.Render("esc back • q quit")
	default:
		err := ds.ErrUnreachableCode{Caller: fmt.Sprintf("SaveBrowser.View state %q", s.state)}
		log.Panic(err)
	}

	return output
}

func (s SaveBrowser) viewList() string {
	if len(s.rows) == 0 {
		return "The save is empty.\n\n"
	}

	end := s.offset + s.pageSize()
	if end > len(s.rows) {
		end = len(s.rows)
	}
	visible := s.rows[s.offset:end]

	labelWidth := lo.Max(lo.Map(visible, func(row Row, _ int) int {
		return lipgloss.Width(row.Label)
	}))
	labelWidth = lo.Min([]int{labelWidth, labelWidthMax})

	lines := lo.Map(visible, func(row Row, i int) string {
		label := truncate(row.Label, labelWidth)
		if pad := labelWidth - lipgloss.Width(label); pad > 0 {
			label += strings.Repeat(" ", pad)
		}
		if s.offset+i == s.cursor {
			return selectedStyle.Render("> " + label + "  " + row.Value)
		}
		return "  " + labelStyle.Render(label) + "  " + valueStyle.Render(row.Value)
	})

	status := fmt.Sprintf("%d/%d", s.cursor+1, len(s.rows))
	return strings.Join(lines, "\n") + "\n" + helpStyle.Render(status) + "\n"
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}
