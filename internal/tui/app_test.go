package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/nameform/internal/form"
)

// ---------------------------------------------------------------------------
// Test helpers
// ---------------------------------------------------------------------------

func newTestModel(t *testing.T) (*Model, *form.Session) {
	t.Helper()
	session := form.NewSession(form.NewController(form.Options{}), nil)
	t.Cleanup(session.End)
	m := New(session, Options{Title: "Test Form"})
	t.Cleanup(m.Close)
	return m, session
}

func press(t *testing.T, m *Model, k tea.KeyType) tea.Cmd {
	t.Helper()
	_, cmd := m.Update(tea.KeyMsg{Type: k})
	return cmd
}

func typeText(t *testing.T, m *Model, text string) {
	t.Helper()
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func plainView(m *Model) string {
	return ansi.Strip(m.View())
}

// ---------------------------------------------------------------------------
// Editing and submit flow
// ---------------------------------------------------------------------------

func TestTypingForwardsFieldChanges(t *testing.T) {
	m, session := newTestModel(t)

	typeText(t, m, "Ana")
	if got := session.State().FirstName; got != "Ana" {
		t.Fatalf("session first name = %q, want %q", got, "Ana")
	}
	if got := m.State().FirstName; got != "Ana" {
		t.Fatalf("model first name = %q, want %q", got, "Ana")
	}
}

func TestFocusCycles(t *testing.T) {
	m, _ := newTestModel(t)

	press(t, m, tea.KeyTab)
	if m.Focused() != form.LastName {
		t.Fatalf("focus after tab = %v, want last_name", m.Focused())
	}
	press(t, m, tea.KeyDown)
	press(t, m, tea.KeyTab)
	if m.Focused() != form.FirstName {
		t.Fatalf("focus should wrap to first_name, got %v", m.Focused())
	}
	press(t, m, tea.KeyShiftTab)
	if m.Focused() != form.Email {
		t.Fatalf("shift+tab should wrap to email, got %v", m.Focused())
	}
	press(t, m, tea.KeyUp)
	if m.Focused() != form.LastName {
		t.Fatalf("up should move to last_name, got %v", m.Focused())
	}
}

func TestSubmitShowsInlineErrors(t *testing.T) {
	m, _ := newTestModel(t)

	press(t, m, tea.KeyEnter)
	view := plainView(m)
	for _, msg := range []string{form.MsgFirstNameRequired, form.MsgLastNameRequired, form.MsgEmailInvalid} {
		if !strings.Contains(view, msg) {
			t.Errorf("view missing %q:\n%s", msg, view)
		}
	}
	if strings.Contains(view, "Nama Lengkap:") {
		t.Errorf("full name must not render after failed submit:\n%s", view)
	}

	typeText(t, m, "A")
	view = plainView(m)
	if strings.Contains(view, form.MsgFirstNameRequired) {
		t.Errorf("editing first name should clear its error:\n%s", view)
	}
	if !strings.Contains(view, form.MsgLastNameRequired) || !strings.Contains(view, form.MsgEmailInvalid) {
		t.Errorf("other errors should stay:\n%s", view)
	}
}

func TestFullFlowRendersFullName(t *testing.T) {
	m, session := newTestModel(t)

	typeText(t, m, " Ana ")
	press(t, m, tea.KeyTab)
	press(t, m, tea.KeyTab)
	typeText(t, m, "bad")
	press(t, m, tea.KeyEnter)

	st := session.State()
	if st.ErrLastName != form.MsgLastNameRequired || st.ErrEmail != form.MsgEmailInvalid {
		t.Fatalf("unexpected errors after first submit: %+v", st)
	}

	press(t, m, tea.KeyShiftTab)
	typeText(t, m, "Silva")
	press(t, m, tea.KeyTab)
	for i := 0; i < 3; i++ {
		press(t, m, tea.KeyBackspace)
	}
	typeText(t, m, "ana@example.com")
	press(t, m, tea.KeyEnter)

	st = session.State()
	if st.FullName != "Ana Silva" {
		t.Fatalf("full name = %q, want %q", st.FullName, "Ana Silva")
	}
	if st.HasErrors() {
		t.Fatalf("expected no errors, got %v", st.Errors())
	}
	if view := plainView(m); !strings.Contains(view, "Nama Lengkap: Ana Silva") {
		t.Fatalf("view missing full name:\n%s", view)
	}
}

func TestViewShowsLabelsTitleAndHelp(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	view := plainView(m)
	for _, want := range []string{"Test Form", "Nama Depan", "Nama Belakang", "Email", "Submit", "enter submit", "tab next field", "esc quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestQuitKeys(t *testing.T) {
	for _, k := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m, _ := newTestModel(t)
		cmd := press(t, m, k)
		if cmd == nil {
			t.Fatalf("%v: expected quit command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%v: expected tea.QuitMsg", k)
		}
		if m.View() != "" {
			t.Fatalf("%v: view should be empty after quit", k)
		}
	}
}

func TestKeyOverridesDriveModel(t *testing.T) {
	session := form.NewSession(form.NewController(form.Options{}), nil)
	t.Cleanup(session.End)
	keys := NewKeyRegistry()
	if err := keys.ApplyOverrides(map[string][]string{"submit": {"ctrl+s"}}); err != nil {
		t.Fatalf("ApplyOverrides: %v", err)
	}
	m := New(session, Options{Keys: keys})
	t.Cleanup(m.Close)

	press(t, m, tea.KeyEnter)
	if session.State().HasErrors() {
		t.Fatal("enter should no longer submit")
	}
	press(t, m, tea.KeyCtrlS)
	if !session.State().HasErrors() {
		t.Fatal("ctrl+s should submit")
	}
}

// ---------------------------------------------------------------------------
// Store subscription
// ---------------------------------------------------------------------------

func TestExternalStateChangeSyncsInputs(t *testing.T) {
	m, session := newTestModel(t)

	session.Edit(form.LastName, "Silva")
	msg := m.waitForState()()
	sm, ok := msg.(stateMsg)
	if !ok {
		t.Fatalf("expected stateMsg, got %T", msg)
	}
	_, cmd := m.Update(sm)
	if cmd == nil {
		t.Fatal("expected the model to keep waiting for updates")
	}
	if got := m.inputs[form.LastName].Value(); got != "Silva" {
		t.Fatalf("last name input = %q, want %q", got, "Silva")
	}
}

func TestLateSnapshotDoesNotRollBackTyping(t *testing.T) {
	m, session := newTestModel(t)
	m.Update(m.waitForState()())

	typeText(t, m, "a")
	late := m.waitForState()()
	if sm, ok := late.(stateMsg); !ok || sm.snap.State.FirstName != "a" {
		t.Fatalf("expected pending snapshot for %q, got %#v", "a", late)
	}
	typeText(t, m, "b")

	m.Update(late)
	if got := m.inputs[form.FirstName].Value(); got != "ab" {
		t.Fatalf("input after late snapshot = %q, want %q", got, "ab")
	}
	if got := m.State().FirstName; got != "ab" {
		t.Fatalf("model state after late snapshot = %q, want %q", got, "ab")
	}

	typeText(t, m, "c")
	if got := session.State().FirstName; got != "abc" {
		t.Fatalf("typed a, b, c but session holds %q", got)
	}
	if got := m.inputs[form.FirstName].Value(); got != "abc" {
		t.Fatalf("input = %q, want %q", got, "abc")
	}

	m.Update(m.waitForState()())
	if got := m.inputs[form.FirstName].Value(); got != "abc" {
		t.Fatalf("input after catching up = %q, want %q", got, "abc")
	}
}

func TestSessionEndQuits(t *testing.T) {
	m, session := newTestModel(t)
	session.End()

	var msg tea.Msg
	for i := 0; i < 3; i++ {
		msg = m.waitForState()()
		if _, ok := msg.(sessionEndedMsg); ok {
			break
		}
	}
	if _, ok := msg.(sessionEndedMsg); !ok {
		t.Fatalf("expected sessionEndedMsg, got %T", msg)
	}
	_, cmd := m.Update(msg)
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected quit after session end")
	}
}
