// Package menu implements the typewright TUI: a menu for assembling a
// quicktype invocation, a spinner while the tool runs, and a popup viewer
// for the highlighted result.
package menu

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/qtwr/typewright/config"
	"github.com/qtwr/typewright/runner"
	"github.com/qtwr/typewright/source"
)

type phase uint8

const (
	phaseMenu phase = iota
	phaseRunning
	phaseResult
)

// Config configures the menu Model.
type Config struct {
	// App holds the user defaults the fields are seeded from.
	App config.Config

	Style Style
	Keys  KeyMap

	// Log receives debug events; nil means no logging.
	Log *zap.SugaredLogger
}

// Model is the Bubble Tea component for the whole front end.
type Model struct {
	cfg Config

	fieldList []field
	focus     int

	phase  phase
	spin   spinner.Model
	vp     viewport.Model
	result runner.Result
	runErr error

	// status is a one-line footer note (validation errors, save results).
	status    string
	statusErr bool
	width     int
	height    int
}

func New(cfg Config) Model {
	if cfg.Log == nil {
		cfg.Log = zap.NewNop().Sugar()
	}
	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(cfg.Style.Title))

	m := Model{
		cfg:       cfg,
		fieldList: newFields(cfg.App),
		spin:      sp,
		vp:        viewport.New(0, 0),
	}
	m.syncFocus()
	return m
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

// runDoneMsg carries the runner outcome back into Update.
type runDoneMsg struct {
	res runner.Result
	err error
}

func runCmd(req request, log *zap.SugaredLogger) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		payload, err := source.Load(ctx, req.input, nil)
		if err != nil {
			log.Debugw("load input failed", "kind", req.input.Kind.String(), "err", err)
			return runDoneMsg{err: err}
		}

		log.Debugw("running quicktype",
			"tool", req.opts.Tool,
			"args", req.opts.Args(payload.Paths),
			"stdin_bytes", len(payload.Data),
		)
		res, err := runner.Run(ctx, req.opts, payload.Data, payload.Paths)
		return runDoneMsg{res: res, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.setSize(msg.Width, msg.Height), nil

	case runDoneMsg:
		m.phase = phaseResult
		m.result = msg.res
		m.runErr = msg.err
		m.rebuildResultView()
		return m, nil

	case spinner.TickMsg:
		if m.phase != phaseRunning {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m.updateFocusedInput(msg)
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	keys := m.cfg.Keys

	// ctrl+c always quits; plain q only where no text field can want it.
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.phase {
	case phaseRunning:
		// The run is not cancellable mid-flight; only quit works.
		return m, nil

	case phaseResult:
		switch {
		case key.Matches(msg, keys.Back):
			m.phase = phaseMenu
			return m, nil
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Save):
			m.saveResult()
			m.rebuildResultView()
			return m, nil
		}
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd
	}

	// phaseMenu
	switch {
	case key.Matches(msg, keys.Run):
		return m.startRun()
	case key.Matches(msg, keys.Up):
		m.moveFocus(-1)
		return m, nil
	case key.Matches(msg, keys.Down):
		m.moveFocus(1)
		return m, nil
	}

	f := &m.fieldList[m.focus]
	switch f.kind {
	case fieldCycle:
		switch {
		case key.Matches(msg, keys.Prev):
			f.selected = (f.selected + len(f.choices) - 1) % len(f.choices)
			return m, nil
		case key.Matches(msg, keys.Next), key.Matches(msg, keys.Toggle):
			f.selected = (f.selected + 1) % len(f.choices)
			return m, nil
		}

	case fieldToggle:
		if key.Matches(msg, keys.Toggle) || key.Matches(msg, keys.Prev) || key.Matches(msg, keys.Next) {
			f.on = !f.on
			return m, nil
		}

	case fieldAction:
		if key.Matches(msg, keys.Toggle) {
			return m.startRun()
		}

	case fieldText:
		if msg.String() == "enter" {
			m.moveFocus(1)
			return m, nil
		}
		var cmd tea.Cmd
		f.input, cmd = f.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

// updateFocusedInput forwards non-key messages (cursor blink) to the focused
// text field.
func (m Model) updateFocusedInput(msg tea.Msg) (Model, tea.Cmd) {
	if m.phase != phaseMenu {
		return m, nil
	}
	f := &m.fieldList[m.focus]
	if f.kind != fieldText {
		return m, nil
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return m, cmd
}

func (m *Model) startRunValidate() (request, bool) {
	req, err := buildRequest(m.fieldList, m.cfg.App)
	if err != nil {
		m.setStatus(err.Error(), true)
		return request{}, false
	}
	return req, true
}

func (m Model) startRun() (Model, tea.Cmd) {
	req, ok := m.startRunValidate()
	if !ok {
		return m, nil
	}
	m.phase = phaseRunning
	m.setStatus("", false)
	return m, tea.Batch(m.spin.Tick, runCmd(req, m.cfg.Log))
}

func (m *Model) moveFocus(delta int) {
	m.focus = (m.focus + delta + len(m.fieldList)) % len(m.fieldList)
	m.syncFocus()
}

// syncFocus keeps exactly the focused text field in input focus so only it
// blinks and consumes runes.
func (m *Model) syncFocus() {
	for i := range m.fieldList {
		f := &m.fieldList[i]
		if f.kind != fieldText {
			continue
		}
		if i == m.focus {
			f.input.Focus()
		} else {
			f.input.Blur()
		}
	}
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m Model) setSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width = width
	m.height = height
	m.rebuildResultView()
	return m
}
