package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Jozeph555/coincalc/internal/coinchange"
	"github.com/Jozeph555/coincalc/internal/orchestration"
)

func testSolvers() []coinchange.Solver {
	return orchestration.GetSolversToRun("all", coinchange.NewDefaultFactory())
}

func TestSubmit_InvalidInput(t *testing.T) {
	m := NewModel(context.Background(), testSolvers())
	m.input.SetValue("abc")

	updated, cmd := m.submit()

	got := updated.(Model)
	if got.errText == "" {
		t.Error("non-integer input should set the error text")
	}
	if cmd != nil {
		t.Error("invalid input must not trigger a solve")
	}
}

func TestSubmit_EmptyInputIsIgnored(t *testing.T) {
	m := NewModel(context.Background(), testSolvers())
	_, cmd := m.submit()
	if cmd != nil {
		t.Error("empty input must not trigger a solve")
	}
}

func TestRunSolve_ProducesResults(t *testing.T) {
	cmd := runSolve(context.Background(), testSolvers(), 113)
	msg := cmd()

	done, ok := msg.(solveDoneMsg)
	if !ok {
		t.Fatalf("got %T, want solveDoneMsg", msg)
	}
	if done.amount != 113 {
		t.Errorf("amount = %d, want 113", done.amount)
	}
	if len(done.results) != 2 {
		t.Fatalf("got %d results, want 2", len(done.results))
	}
	for _, res := range done.results {
		if res.Err != nil {
			t.Errorf("solver %s failed: %v", res.Name, res.Err)
		}
	}
}

func TestUpdate_SolveDoneRendersResults(t *testing.T) {
	m := NewModel(context.Background(), testSolvers())

	msg := runSolve(context.Background(), testSolvers(), 113)()
	updated, _ := m.Update(msg)

	view := updated.(Model).View()
	for _, want := range []string{"Amount 113", "{50:2, 10:1, 2:1, 1:1}", "5 coins"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestUpdate_QuitKey(t *testing.T) {
	m := NewModel(context.Background(), testSolvers())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should produce tea.QuitMsg")
	}
}
