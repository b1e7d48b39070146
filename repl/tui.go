package repl

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// TUI is the full-screen calculator console: an output/history pane, a
// registers pane and a command input line, laid out the way the teacher
// project's debugger TUI arranges its source/register/command panels.
type TUI struct {
	Session *Session

	App   *tview.Application
	Pages *tview.Pages

	MainLayout   *tview.Flex
	OutputView   *tview.TextView
	RegisterView *tview.TextView
	CommandInput *tview.InputField
}

// NewTUI creates a calculator TUI driving s.
func NewTUI(s *Session) *TUI {
	t := &TUI{
		Session: s,
		App:     tview.NewApplication(),
	}

	t.initializeViews()
	t.buildLayout()
	t.setupKeyBindings()

	return t
}

// NewTUIWithScreen is NewTUI against a caller-supplied tcell.Screen, so
// tests can drive the TUI against a tcell.SimulationScreen instead of a
// real terminal.
func NewTUIWithScreen(s *Session, screen tcell.Screen) *TUI {
	t := &TUI{
		Session: s,
		App:     tview.NewApplication().SetScreen(screen),
	}

	t.initializeViews()
	t.buildLayout()
	t.setupKeyBindings()

	return t
}

func (t *TUI) initializeViews() {
	t.OutputView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(true)
	t.OutputView.SetBorder(true).SetTitle(" History ")

	t.RegisterView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true)
	t.RegisterView.SetBorder(true).SetTitle(" Registers ")

	t.CommandInput = tview.NewInputField().
		SetLabel("> ").
		SetFieldWidth(0)
	t.CommandInput.SetBorder(true).SetTitle(" Expression ")
	t.CommandInput.SetDoneFunc(t.handleCommand)
}

func (t *TUI) buildLayout() {
	top := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(t.OutputView, 0, 3, false).
		AddItem(t.RegisterView, 0, 1, false)

	t.MainLayout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(top, 0, 4, false).
		AddItem(t.CommandInput, 3, 0, true)

	t.Pages = tview.NewPages().
		AddPage("main", t.MainLayout, true, true)
}

func (t *TUI) setupKeyBindings() {
	t.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlC:
			t.App.Stop()
			return nil
		case tcell.KeyCtrlL:
			t.RefreshAll()
			return nil
		}
		return event
	})
}

func (t *TUI) handleCommand(key tcell.Key) {
	if key != tcell.KeyEnter {
		return
	}
	line := t.CommandInput.GetText()
	t.CommandInput.SetText("")
	if line == "" {
		return
	}
	if line == "quit" || line == "q" || line == "exit" {
		t.App.Stop()
		return
	}

	result, err := t.Session.Execute(line)
	if err != nil {
		fmt.Fprintf(t.OutputView, "[red]%s[white]\n[red]Error: %v[white]\n", line, err)
	} else {
		fmt.Fprintf(t.OutputView, "%s\n%s\n", line, result)
	}
	t.OutputView.ScrollToEnd()
	t.RefreshAll()
}

// RefreshAll redraws the registers pane and repaints the screen.
func (t *TUI) RefreshAll() {
	t.RegisterView.Clear()
	fmt.Fprint(t.RegisterView, t.Session.formatRegisters())
	t.App.Draw()
}

// Run starts the TUI event loop.
func (t *TUI) Run() error {
	fmt.Fprintln(t.OutputView, "[green]bigintctl[white] — arbitrary-precision calculator")
	fmt.Fprintln(t.OutputView, "Type an expression, \"name = expr\" to store it, or quit to exit.")
	t.RefreshAll()

	return t.App.SetRoot(t.Pages, true).SetFocus(t.CommandInput).Run()
}

// Stop ends the TUI event loop.
func (t *TUI) Stop() {
	t.App.Stop()
}

// RunTUI is the entry point used by cmd/bigintctl.
func RunTUI(s *Session) error {
	return NewTUI(s).Run()
}
