package repl

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lookbusy1344/bigint/config"
)

func newSimTUI(t *testing.T) *TUI {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init: %v", err)
	}
	t.Cleanup(screen.Fini)

	return NewTUIWithScreen(NewSession(config.DefaultConfig()), screen)
}

func TestHandleCommandEvaluatesExpression(t *testing.T) {
	tui := newSimTUI(t)
	tui.CommandInput.SetText("6 * 7")

	done := make(chan struct{}, 1)
	go func() {
		tui.handleCommand(tcell.KeyEnter)
		done <- struct{}{}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("handleCommand blocked for more than 2 seconds")
	}

	if !strings.Contains(tui.OutputView.GetText(true), "42") {
		t.Errorf("output view = %q, want it to contain 42", tui.OutputView.GetText(true))
	}
	if tui.CommandInput.GetText() != "" {
		t.Errorf("command input not cleared: %q", tui.CommandInput.GetText())
	}
}

func TestHandleCommandReportsErrors(t *testing.T) {
	tui := newSimTUI(t)
	tui.CommandInput.SetText("1 / 0")
	tui.handleCommand(tcell.KeyEnter)

	if !strings.Contains(tui.OutputView.GetText(true), "Error") {
		t.Errorf("output view = %q, want an Error line", tui.OutputView.GetText(true))
	}
}

func TestHandleCommandIgnoresNonEnterKeys(t *testing.T) {
	tui := newSimTUI(t)
	tui.CommandInput.SetText("1 + 1")
	tui.handleCommand(tcell.KeyEscape)

	if tui.CommandInput.GetText() != "1 + 1" {
		t.Error("non-Enter key should leave the input field untouched")
	}
}
