// Package tui is the terminal front end: it turns key presses into button
// presses on a calc.Machine and draws what the machine renders.
package tui

import (
	"context"
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jaskcalc/internal/arith"
	"github.com/jask/jaskcalc/internal/calc"
	"github.com/jask/jaskcalc/internal/config"
	"github.com/jask/jaskcalc/internal/database/repository"
	"github.com/jask/jaskcalc/internal/service"
)

// App is the Bubble Tea model. It is also the machine's Renderer.
type App struct {
	ctx      context.Context
	cfg      config.Config
	services Services
	machine  *calc.Machine
	keys     keyMap
	help     help.Model

	display  string
	result   string
	pressed  string
	tape     []repository.Entry
	showTape bool
	confirm  bool
	status   string
	width    int
}

// Services are optional; a zero value runs the calculator without a tape.
// Err records why the tape could not be opened, and is shown in the status
// line instead of stopping the calculator.
type Services struct {
	Tape        *service.TapeService
	Maintenance *service.MaintenanceService
	Err         error
}

type tapeMsg []repository.Entry

type recordedMsg struct {
	entry repository.Entry
}

type resetMsg struct {
	removed int64
}

type errMsg struct{ error }

// New builds the model around a fresh calculator state.
func New(ctx context.Context, cfg config.Config, services Services) *App {
	a := &App{
		ctx:      ctx,
		cfg:      cfg,
		services: services,
		keys:     newKeyMap(),
		help:     help.New(),
		showTape: cfg.History.Enabled,
	}
	a.help.Styles.ShortKey = helpKeyStyle
	a.help.Styles.ShortDesc = helpDescStyle
	a.help.Styles.ShortSeparator = helpSepStyle
	a.help.Styles.FullKey = helpKeyStyle
	a.help.Styles.FullDesc = helpDescStyle
	a.help.Styles.FullSeparator = helpSepStyle
	a.machine = calc.New(calc.NewState(), a, cfg.CalcOptions())
	if services.Err != nil {
		a.status = "error: " + services.Err.Error()
	}
	return a
}

// RenderDisplay implements calc.Renderer.
func (a *App) RenderDisplay(text string) { a.display = text }

// RenderResult implements calc.Renderer.
func (a *App) RenderResult(text string) { a.result = text }

// State exposes the calculator state, mostly for tests.
func (a *App) State() calc.State { return a.machine.State() }

func (a *App) Init() tea.Cmd {
	return a.loadTape()
}

func (a *App) loadTape() tea.Cmd {
	if !a.cfg.History.Enabled || a.services.Tape == nil {
		return nil
	}
	return func() tea.Msg {
		entries, err := a.services.Tape.Recent(a.ctx, a.cfg.History.Limit)
		if err != nil {
			return errMsg{fmt.Errorf("load tape: %w", err)}
		}
		return tapeMsg(entries)
	}
}

func (a *App) recordCmd(ev calc.Evaluation) tea.Cmd {
	if !a.cfg.History.Enabled || a.services.Tape == nil {
		return nil
	}
	return func() tea.Msg {
		e, err := a.services.Tape.Record(a.ctx, ev)
		if err != nil {
			return errMsg{fmt.Errorf("record %s: %w", ev, err)}
		}
		return recordedMsg{entry: e}
	}
}

func (a *App) resetCmd() tea.Cmd {
	return func() tea.Msg {
		if a.services.Maintenance == nil {
			return errMsg{fmt.Errorf("tape not configured")}
		}
		n, err := a.services.Maintenance.Reset(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return resetMsg{removed: n}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.help.Width = m.Width
		return a, nil
	case tea.KeyMsg:
		if a.confirm {
			return a.handleConfirmKey(m)
		}
		return a.handleKey(m)
	case tapeMsg:
		a.tape = m
		return a, nil
	case recordedMsg:
		return a, a.loadTape()
	case resetMsg:
		a.tape = nil
		a.status = fmt.Sprintf("tape wiped (%d entries)", m.removed)
		return a, nil
	case errMsg:
		log.Printf("tui: %v", m.error)
		a.status = "error: " + m.Error()
		return a, nil
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
		return a, nil
	case key.Matches(m, a.keys.Tape):
		if !a.cfg.History.Enabled {
			a.status = a.tapeUnavailable()
			return a, nil
		}
		a.showTape = !a.showTape
		return a, a.loadTape()
	case key.Matches(m, a.keys.Reset):
		if a.services.Maintenance == nil {
			a.status = a.tapeUnavailable()
			return a, nil
		}
		a.confirm = true
		return a, nil
	}

	b, ok := a.buttonFor(m)
	if !ok {
		return a, nil
	}
	return a, a.press(b)
}

func (a *App) tapeUnavailable() string {
	if a.services.Err != nil {
		return "error: " + a.services.Err.Error()
	}
	return "history is disabled"
}

func (a *App) handleConfirmKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Confirm):
		a.confirm = false
		return a, a.resetCmd()
	case key.Matches(m, a.keys.Cancel):
		a.confirm = false
		a.status = ""
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	}
	return a, nil
}

// buttonFor maps a key press onto a calculator button.
func (a *App) buttonFor(m tea.KeyMsg) (calc.Button, bool) {
	switch {
	case key.Matches(m, a.keys.Digit):
		return calc.Digit(m.String()), true
	case key.Matches(m, a.keys.Operator):
		op, err := arith.ParseOperator(m.String())
		if err != nil {
			return calc.Button{}, false
		}
		return calc.Operator(op), true
	case key.Matches(m, a.keys.Equal):
		return calc.Equal(), true
	case key.Matches(m, a.keys.Clear):
		return calc.Clear(), true
	}
	return calc.Button{}, false
}

func (a *App) press(b calc.Button) tea.Cmd {
	a.pressed = b.Label()
	a.status = ""
	ev, err := a.machine.Press(b)
	if err != nil {
		a.status = err.Error()
		return nil
	}
	if ev == nil {
		return nil
	}
	return a.recordCmd(*ev)
}
