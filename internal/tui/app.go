package tui

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/nameform/internal/form"
	"github.com/jask/nameform/internal/logging"
)

const (
	defaultInputWidth = 40
	maxInputWidth     = 60
)

// Options configures the form screen.
type Options struct {
	Title  string
	Keys   *KeyRegistry
	Logger *slog.Logger
}

// Model is the Bubble Tea model for the form screen. It renders the latest
// snapshot from the session's store and forwards keystrokes back to the
// session as events.
type Model struct {
	session *form.Session
	keys    *KeyRegistry
	logger  *slog.Logger
	title   string

	state   form.State
	version uint64
	updates <-chan form.Snapshot
	cancel  func()

	inputs [3]textinput.Model
	focus  form.Field

	width    int
	height   int
	quitting bool
}

type stateMsg struct {
	snap form.Snapshot
}

type sessionEndedMsg struct{}

func New(session *form.Session, opts Options) *Model {
	if opts.Keys == nil {
		opts.Keys = NewKeyRegistry()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if strings.TrimSpace(opts.Title) == "" {
		opts.Title = "Formulir Nama"
	}

	updates, cancel := session.Store().Subscribe(1)
	snap := session.Store().Snapshot()
	m := &Model{
		session: session,
		keys:    opts.Keys,
		logger:  opts.Logger,
		title:   opts.Title,
		state:   snap.State,
		version: snap.Version,
		updates: updates,
		cancel:  cancel,
	}
	for _, f := range form.Fields() {
		inp := textinput.New()
		inp.Prompt = ""
		inp.Placeholder = f.Label()
		inp.Width = defaultInputWidth
		inp.SetValue(m.state.Value(f))
		m.inputs[f] = inp
	}
	m.inputs[form.FirstName].Focus()
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForState())
}

// State returns the snapshot the screen currently renders.
func (m *Model) State() form.State { return m.state }

// Focused returns the field that receives keystrokes.
func (m *Model) Focused() form.Field { return m.focus }

// Close drops the store subscription.
func (m *Model) Close() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

func (m *Model) waitForState() tea.Cmd {
	ch := m.updates
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return sessionEndedMsg{}
		}
		return stateMsg{snap: s}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg:
		m.apply(msg.snap)
		return m, m.waitForState()
	case sessionEndedMsg:
		m.quitting = true
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeInputs()
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if b := m.keys.Lookup(msg.String()); b != nil {
		switch b.Action {
		case actionQuit:
			m.quitting = true
			m.Close()
			return m, tea.Quit
		case actionNextField:
			return m, m.moveFocus(1)
		case actionPrevField:
			return m, m.moveFocus(-1)
		case actionSubmit:
			m.apply(m.session.Send(form.Submitted{}))
			m.logger.Debug("submit from terminal", "errors", m.state.HasErrors())
			return m, nil
		}
	}

	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if after := m.inputs[m.focus].Value(); after != before {
		m.apply(m.session.Send(form.FieldChanged{Field: m.focus, Value: after}))
	}
	return m, cmd
}

func (m *Model) moveFocus(dir int) tea.Cmd {
	n := len(m.inputs)
	m.inputs[m.focus].Blur()
	m.focus = form.Field((int(m.focus) + dir + n) % n)
	return m.inputs[m.focus].Focus()
}

// apply adopts snap unless the model already shows the same or a later
// version. Snapshots from the subscription can arrive after the model has
// applied a newer one returned by its own Send.
func (m *Model) apply(snap form.Snapshot) {
	if snap.Version <= m.version {
		return
	}
	m.state = snap.State
	m.version = snap.Version
	m.syncInputs()
}

// syncInputs copies state values into inputs that disagree with it.
func (m *Model) syncInputs() {
	for _, f := range form.Fields() {
		if v := m.state.Value(f); m.inputs[f].Value() != v {
			m.inputs[f].SetValue(v)
		}
	}
}

func (m *Model) resizeInputs() {
	w := defaultInputWidth
	if m.width > 0 {
		w = m.width - 12
	}
	if w > maxInputWidth {
		w = maxInputWidth
	}
	if w < 10 {
		w = 10
	}
	for i := range m.inputs {
		m.inputs[i].Width = w
	}
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	sections := []string{titleStyle.Render(m.title), ""}
	for _, f := range form.Fields() {
		sections = append(sections, m.renderField(f))
	}
	sections = append(sections, "", buttonStyle.Render("Submit"))
	if name := m.state.FullName; strings.TrimSpace(name) != "" {
		sections = append(sections, "", fullNameStyle.Render("Nama Lengkap: "+name))
	}
	body := appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
	return body + "\n" + m.renderFooter()
}

func (m *Model) renderField(f form.Field) string {
	errMsg := m.state.Err(f)
	label := labelStyle
	box := inputBoxStyle
	switch {
	case errMsg != "":
		label = labelErrStyle
		box = inputBoxErrStyle
	case f == m.focus:
		label = labelFocusStyle
		box = inputBoxFocusStyle
	}
	lines := []string{label.Render(f.Label()), box.Render(m.inputs[f].View())}
	if errMsg != "" {
		lines = append(lines, errorTextStyle.Render(errMsg))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) renderFooter() string {
	text := renderHelp(m.keys.HelpBindings())
	if m.width == 0 {
		return footerStyle.Render(text)
	}
	return footerStyle.Width(m.width).Render(text)
}

func renderHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(help.Key)+" "+helpDescStyle.Render(help.Desc))
	}
	return strings.Join(parts, "  ")
}
