// Package repl implements the interactive calculator loop.
package repl

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/intexpr/arith"
	"github.com/ardnew/intexpr/log"
)

const (
	evalPrompt   = "➜ "
	searchPrompt = "(search) "
)

func helpMessage() string {
	return `
: Commands (prefix with ':'):

  :help     Print this cruft
  :clear    Clear screen
  :quit     Exit REPL

Usage:
  Type an expression to evaluate it
  Division truncates toward zero
  Use Up/Down arrows for history navigation
  Press Ctrl+R to fuzzy-search history (Enter accepts, Esc cancels)
  Press Ctrl+C on empty line or Ctrl+D to exit
`
}

// Styles.
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	searchPromptStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("5")).
				Bold(true)
	inputStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	resultStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
)

// formatCommand formats the input echo line with prompt and input styled.
func formatCommand(input string) string {
	return promptStyle.Render(evalPrompt) + inputStyle.Render(input)
}

// model is the Bubble Tea model for the REPL.
type model struct {
	ctxFunc      func() context.Context
	input        textinput.Model
	logger       log.Logger
	history      *History
	historyIdx   int
	searching    bool          // whether Ctrl+R search mode is active
	matches      fuzzy.Matches // current fuzzy match results
	matchIdx     int           // selected match index
	searchText   string        // input text before search began
	searchCursor int           // cursor position before search began
	width        int           // terminal width for ellipsization
	quitting     bool
}

// Run starts the REPL with history persisted under cacheDir.
func Run(
	ctx context.Context,
	cacheDir string,
	logger log.Logger,
) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	logger.TraceContext(
		ctx,
		"repl start",
		slog.String("cache_dir", cacheDir),
	)

	history := NewHistory(filepath.Join(cacheDir, baseHistory))
	if err := history.Load(); err != nil {
		fmt.Printf("Warning: could not load history: %v\n", err)
	}

	logger.TraceContext(
		ctx,
		"repl history loaded",
		slog.Int("entry_count", history.Len()),
	)

	m := newModel(ctx, history, logger)

	p := tea.NewProgram(m, tea.WithContext(ctx))
	_, err = p.Run()

	return err
}

const defaultWidth = 80

func newModel(
	ctx context.Context,
	history *History,
	logger log.Logger,
) model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(evalPrompt)
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = defaultWidth

	return model{
		ctxFunc:    func() context.Context { return ctx },
		input:      ti,
		logger:     logger,
		history:    history,
		historyIdx: history.Len(),
		width:      defaultWidth,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - len(evalPrompt) - 2

		return m, nil
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	// Input line.
	b.WriteString(m.input.View())
	b.WriteString("\n")

	// Hint line.
	switch {
	case m.searching:
		if len(m.matches) > 0 {
			b.WriteString(renderMatchBar(m.matches, m.matchIdx, m.width))
		} else {
			b.WriteString(hintStyle.Render("no matches"))
		}

		b.WriteString("\n")

	case m.historyIdx < m.history.Len():
		// Show history position indicator
		pos := m.historyIdx + 1 // 1-based for display
		total := m.history.Len()
		hint := fmt.Sprintf("%s/%d",
			lipgloss.NewStyle().Bold(true).Render(strconv.Itoa(pos)),
			total)
		b.WriteString(hintStyle.Render(hint))
		b.WriteString("\n")

	case strings.TrimSpace(m.input.Value()) == "":
		hint := "Type an expression, :help for commands, Ctrl+R to search"
		b.WriteString(hintStyle.Render(hint))
		b.WriteString("\n")

	default:
		b.WriteString("\n")
	}

	return b.String()
}

// renderMatchBar renders the fuzzy match candidates horizontally with the
// selected candidate highlighted, truncated to the terminal width.
func renderMatchBar(matches fuzzy.Matches, selected, width int) string {
	var b strings.Builder

	for i, match := range matches {
		var entry string
		if i == selected {
			entry = selectedStyle.Render(match.Str)
		} else {
			entry = hintStyle.Render(match.Str)
		}

		if i > 0 {
			b.WriteString("  ")
		}

		b.WriteString(entry)

		if lipgloss.Width(b.String()) >= width {
			break
		}
	}

	return b.String()
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	m.logger.TraceContext(
		m.ctxFunc(),
		"repl keypress",
		slog.String("key", msg.String()),
		slog.Int("type", int(msg.Type)),
	)

	switch msg.Type {
	case tea.KeyCtrlC:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		if m.searching {
			m = m.cancelSearch()
		}

		m.input.SetValue("")
		m.historyIdx = m.history.Len()

		return m, nil

	case tea.KeyCtrlD:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		return m, nil

	case tea.KeyCtrlR:
		if !m.searching {
			return m.startSearch(), nil
		}

		// Cycle to the next (older) match.
		if len(m.matches) > 0 {
			m.matchIdx = (m.matchIdx + 1) % len(m.matches)
		}

		return m, nil

	case tea.KeyEsc:
		if m.searching {
			return m.cancelSearch(), nil
		}

		m.input.SetValue("")
		m.historyIdx = m.history.Len()

		return m, nil

	case tea.KeyEnter:
		if m.searching {
			return m.acceptMatch(), nil
		}

		return m.executeInput()

	case tea.KeyUp:
		if m.searching {
			if len(m.matches) > 0 {
				m.matchIdx = (m.matchIdx + 1) % len(m.matches)
			}

			return m, nil
		}

		return m.historyPrev()

	case tea.KeyDown:
		if m.searching {
			if len(m.matches) > 0 {
				m.matchIdx = (m.matchIdx + len(m.matches) - 1) % len(m.matches)
			}

			return m, nil
		}

		return m.historyNext()
	}

	// For any other key (runes, backspace, delete, arrows, etc.),
	// update input and recompute search matches if searching.
	var cmd tea.Cmd

	m.historyIdx = m.history.Len()
	m.input, cmd = m.input.Update(msg)

	if m.searching {
		m = m.refreshSearch()
	}

	return m, cmd
}

// startSearch enters fuzzy history search mode, preserving the current
// input so Esc can restore it.
func (m model) startSearch() model {
	m.searching = true
	m.searchText = m.input.Value()
	m.searchCursor = m.input.Position()
	m.matchIdx = 0

	m.input.Prompt = searchPromptStyle.Render(searchPrompt)
	m.input.SetValue("")

	return m.refreshSearch()
}

// cancelSearch leaves search mode and restores the pre-search input.
func (m model) cancelSearch() model {
	m.searching = false
	m.matches = nil

	m.input.Prompt = promptStyle.Render(evalPrompt)
	m.input.SetValue(m.searchText)
	m.input.SetCursor(m.searchCursor)

	return m
}

// acceptMatch leaves search mode with the selected match as input.
func (m model) acceptMatch() model {
	line := ""
	if m.matchIdx < len(m.matches) {
		line = m.matches[m.matchIdx].Str
	}

	m.searching = false
	m.matches = nil

	m.input.Prompt = promptStyle.Render(evalPrompt)

	if line == "" {
		m.input.SetValue(m.searchText)
		m.input.SetCursor(m.searchCursor)
	} else {
		m.input.SetValue(line)
		m.input.SetCursor(len(line))
	}

	return m
}

// refreshSearch recomputes fuzzy matches for the current search query.
// An empty query matches the most recent entries in order.
func (m model) refreshSearch() model {
	lines := m.history.Lines()

	// Most recent first.
	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}

	query := m.input.Value()
	if query == "" {
		m.matches = make(fuzzy.Matches, len(lines))
		for i, line := range lines {
			m.matches[i] = fuzzy.Match{Str: line, Index: i}
		}
	} else {
		m.matches = fuzzy.Find(query, lines)
	}

	if m.matchIdx >= len(m.matches) {
		m.matchIdx = 0
	}

	return m
}

func (m model) executeInput() (model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	if input == "" {
		return m, nil
	}

	m.input.SetValue("")

	if strings.HasPrefix(input, ":") {
		m.logger.TraceContext(
			m.ctxFunc(),
			"repl command",
			slog.String("input", input),
		)

		return m.executeCommand(strings.TrimPrefix(input, ":"))
	}

	_, _ = m.history.Write(input)
	m.historyIdx = m.history.Len()
	m.logger.TraceContext(
		m.ctxFunc(),
		"repl eval",
		slog.String("input", input),
	)

	// Echo the input
	echoCmd := tea.Println(formatCommand(input))

	expr, err := arith.Parse(input)
	if err != nil {
		m.logger.TraceContext(
			m.ctxFunc(),
			"repl eval result",
			slog.String("result_type", "error"),
			slog.String("error", err.Error()),
		)

		return m, tea.Sequence(
			echoCmd,
			tea.Println(errorStyle.Render("error: "+err.Error())),
		)
	}

	value, err := evaluate(expr)
	if err != nil {
		return m, tea.Sequence(
			echoCmd,
			tea.Println(errorStyle.Render("error: "+err.Error())),
		)
	}

	m.logger.TraceContext(
		m.ctxFunc(),
		"repl eval result",
		slog.Int("value", value),
	)

	return m, tea.Sequence(
		echoCmd,
		tea.Println(resultStyle.Render(strconv.Itoa(value))),
	)
}

func (m model) executeCommand(input string) (model, tea.Cmd) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return m, nil
	}

	echoCmd := tea.Println(formatCommand(":" + input))

	switch parts[0] {
	case "q", "quit", "exit":
		m.quitting = true

		return m, tea.Sequence(echoCmd, tea.Quit)

	case "h", "help":
		return m, tea.Sequence(echoCmd, tea.Println(helpMessage()))

	case "c", "clear":
		return m, tea.ClearScreen

	default:
		return m, tea.Println(
			errorStyle.Render("Unknown command: " + parts[0] + " (try ':help')"),
		)
	}
}

func (m model) historyPrev() (model, tea.Cmd) {
	if m.historyIdx > 0 {
		m.historyIdx--

		if line, err := m.history.GetLine(m.historyIdx); err == nil {
			m.input.SetValue(line)
			m.input.SetCursor(len(line))
		}
	}

	return m, nil
}

func (m model) historyNext() (model, tea.Cmd) {
	if m.historyIdx < m.history.Len()-1 {
		m.historyIdx++

		if line, err := m.history.GetLine(m.historyIdx); err == nil {
			m.input.SetValue(line)
			m.input.SetCursor(len(line))
		}
	} else {
		m.historyIdx = m.history.Len()
		m.input.SetValue("")
	}

	return m, nil
}

// evaluate computes the value of expr, converting evaluation faults such as
// integer division by zero into an error.
func evaluate(expr arith.Expr) (value int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	return expr.Eval(), nil
}
