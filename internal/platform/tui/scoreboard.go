package tui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickpong/internal/storage"
)

const dateLayout = "Jan 02 15:04"

// ScoreboardKeyMap defines the key bindings for the results screen.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows recent rounds and overall stats.
type ScoreboardModel struct {
	rounds   []storage.Round
	stats    storage.Stats
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel creates a results screen for already loaded data.
func NewScoreboardModel(rounds []storage.Round, stats storage.Stats, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		rounds: rounds,
		stats:  stats,
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	return m
}

// createTable builds the table for the current size and rows.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Result", Width: 8},
		{Title: "Score", Width: 8},
		{Title: "Difficulty", Width: 10},
		{Title: "Date", Width: 14},
	}

	rows := make([]table.Row, len(m.rounds))
	for i, r := range m.rounds {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			r.Outcome,
			fmt.Sprintf("%d-%d", r.HumanScore, r.ComputerScore),
			r.Difficulty,
			r.CreatedAt.Format(dateLayout),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Init initializes the results screen.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the results screen.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the results screen.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render("BRICKPONG RESULTS"))
	b.WriteString("\n")
	b.WriteString(statsLine(m.stats))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.rounds) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4)
		b.WriteString(boxStyle.Render(emptyStyle.Render("No rounds recorded yet.\nPlay a game to fill this table!")))
	} else {
		b.WriteString(boxStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func statsLine(st storage.Stats) string {
	return fmt.Sprintf("%d rounds: %d won, %d lost, %d tied", st.Rounds, st.Wins, st.Losses, st.Ties)
}

// RunScoreboard shows the results screen until the user quits.
func RunScoreboard(rounds []storage.Round, stats storage.Stats) error {
	p := tea.NewProgram(
		NewScoreboardModel(rounds, stats, 80, 24),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

// WriteResults prints results as plain text, for output that is not a terminal.
func WriteResults(w io.Writer, rounds []storage.Round, stats storage.Stats) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, statsLine(stats))
	if len(rounds) > 0 {
		fmt.Fprintln(tw, "#\tRESULT\tSCORE\tDIFFICULTY\tDATE")
	}
	for i, r := range rounds {
		fmt.Fprintf(tw, "%d\t%s\t%d-%d\t%s\t%s\n",
			i+1, r.Outcome, r.HumanScore, r.ComputerScore, r.Difficulty, r.CreatedAt.Format(dateLayout))
	}
	return tw.Flush()
}
