// Package tui implements the interactive dashboard: type an amount,
// watch both solvers decompose it and race each other.
package tui

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Jozeph555/coincalc/internal/coinchange"
	apperrors "github.com/Jozeph555/coincalc/internal/errors"
	"github.com/Jozeph555/coincalc/internal/format"
	"github.com/Jozeph555/coincalc/internal/orchestration"
	"github.com/Jozeph555/coincalc/internal/sysmon"
)

// sysTickInterval is the refresh period for the system stats header.
const sysTickInterval = 2 * time.Second

type keyMap struct {
	Submit key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "solve"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

type solveDoneMsg struct {
	amount  int
	results []orchestration.SolveResult
}

type sysTickMsg sysmon.Stats

// Model is the root bubbletea model for the dashboard.
type Model struct {
	ctx     context.Context
	solvers []coinchange.Solver

	input   textinput.Model
	keys    keyMap
	styles  styles
	sys     sysmon.Stats
	width   int
	amount  int
	results []orchestration.SolveResult
	solved  bool
	errText string
}

// NewModel builds the initial dashboard model.
func NewModel(ctx context.Context, solvers []coinchange.Solver) Model {
	input := textinput.New()
	input.Placeholder = "amount, e.g. 113"
	input.CharLimit = 12
	input.Width = 24
	input.Focus()

	return Model{
		ctx:     ctx,
		solvers: solvers,
		input:   input,
		keys:    defaultKeyMap(),
		styles:  newStyles(),
		sys:     sysmon.Sample(),
	}
}

// Init starts cursor blinking and the system stats ticker.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickSys())
}

func tickSys() tea.Cmd {
	return tea.Tick(sysTickInterval, func(time.Time) tea.Msg {
		return sysTickMsg(sysmon.Sample())
	})
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case solveDoneMsg:
		m.amount = msg.amount
		m.results = msg.results
		m.solved = true
		return m, nil
	case sysTickMsg:
		m.sys = sysmon.Stats(msg)
		return m, tickSys()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	raw := strings.TrimSpace(m.input.Value())
	if raw == "" {
		return m, nil
	}
	amount, err := strconv.Atoi(raw)
	if err != nil {
		m.errText = fmt.Sprintf("%q is not an integer", raw)
		return m, nil
	}
	m.errText = ""
	return m, runSolve(m.ctx, m.solvers, amount)
}

// runSolve executes the comparison off the UI loop. The solvers finish in
// microseconds to milliseconds, so a single command (no progress
// streaming) keeps the dashboard simple.
func runSolve(ctx context.Context, solvers []coinchange.Solver, amount int) tea.Cmd {
	return func() tea.Msg {
		results := orchestration.ExecuteComparison(ctx, solvers, amount,
			orchestration.NullProgressReporter{}, orchestration.NopMetricsRecorder{}, io.Discard)
		return solveDoneMsg{amount: amount, results: results}
	}
}

// View renders the dashboard.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render("coincalc"))
	b.WriteString("  ")
	b.WriteString(m.styles.header.Render(m.sys.String()))
	b.WriteString("\n\n")

	b.WriteString(m.styles.value.Render("Amount: "))
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.errText != "" {
		b.WriteString(m.styles.failure.Render(m.errText))
		b.WriteString("\n")
	}

	if m.solved {
		b.WriteString("\n")
		b.WriteString(m.styles.panel.Render(m.renderResults()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.help.Render("enter: solve • q: quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderResults() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Amount %d\n", m.amount)
	for i, res := range m.results {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.styles.solver.Render(res.Name))
		b.WriteString("\n")
		if res.Err != nil {
			b.WriteString(m.styles.failure.Render("  " + res.Err.Error()))
			continue
		}
		fmt.Fprintf(&b, "  %s\n", m.styles.value.Render(res.Breakdown.String()))
		fmt.Fprintf(&b, "  %s",
			m.styles.success.Render(fmt.Sprintf("%d coins in %s",
				res.Breakdown.Coins(), format.FormatSeconds(res.Duration))))
	}
	return b.String()
}

// Run launches the dashboard and blocks until the user quits.
// It returns a process exit code.
func Run(ctx context.Context, solvers []coinchange.Solver) int {
	p := tea.NewProgram(NewModel(ctx, solvers), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if apperrors.IsContextError(err) {
			return apperrors.ExitErrorCanceled
		}
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}
